package dto

import (
	"time"

	"finsight/internal/models"

	"github.com/google/uuid"
)

// CreateGoalRequest is the payload for creating a savings goal. Creating an
// active goal displaces the user's previous active goal.
type CreateGoalRequest struct {
	Name          string     `json:"name" validate:"required,max=120"`
	TargetAmount  float64    `json:"targetAmount" validate:"required,gt=0"`
	CurrentAmount float64    `json:"currentAmount" validate:"omitempty,gte=0"`
	Deadline      *time.Time `json:"deadline,omitempty"`
}

// UpdateGoalProgressRequest updates the saved amount on a goal
type UpdateGoalProgressRequest struct {
	CurrentAmount float64 `json:"currentAmount" validate:"gte=0"`
}

// GoalResponse is the client view of a savings goal
type GoalResponse struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"userId"`
	Name          string     `json:"name"`
	TargetAmount  string     `json:"targetAmount"`
	CurrentAmount string     `json:"currentAmount"`
	Remaining     string     `json:"remaining"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	IsActive      bool       `json:"isActive"`
	IsAchieved    bool       `json:"isAchieved"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// NewGoalResponse converts a model to its response form
func NewGoalResponse(goal *models.Goal) GoalResponse {
	return GoalResponse{
		ID:            goal.ID,
		UserID:        goal.UserID,
		Name:          goal.Name,
		TargetAmount:  goal.TargetAmount.StringFixed(2),
		CurrentAmount: goal.CurrentAmount.StringFixed(2),
		Remaining:     goal.RemainingAmount().StringFixed(2),
		Deadline:      goal.Deadline,
		IsActive:      goal.IsActive,
		IsAchieved:    goal.IsAchieved(),
		CreatedAt:     goal.CreatedAt,
	}
}
