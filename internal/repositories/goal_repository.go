package repositories

import (
	"errors"
	"fmt"

	"finsight/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
)

// goalRepository implements GoalRepositoryInterface
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository
func NewGoalRepository(db *gorm.DB) GoalRepositoryInterface {
	return &goalRepository{
		db: db,
	}
}

// Create persists a goal. An active goal displaces the user's previous
// active goal inside the same database transaction so the single-active
// invariant holds even under concurrent creates.
func (r *goalRepository) Create(goal *models.Goal) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if goal.IsActive {
			if err := tx.Model(&models.Goal{}).
				Where("user_id = ? AND is_active = ?", goal.UserID, true).
				Update("is_active", false).Error; err != nil {
				return fmt.Errorf("failed to deactivate previous goal: %w", err)
			}
		}
		if err := tx.Create(goal).Error; err != nil {
			return fmt.Errorf("failed to create goal: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a goal by ID
func (r *goalRepository) GetByID(id uuid.UUID) (*models.Goal, error) {
	goal := &models.Goal{ID: id}
	if err := r.db.First(goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	return goal, nil
}

// GetActiveByUserID retrieves the user's single active goal
func (r *goalRepository) GetActiveByUserID(userID uuid.UUID) (*models.Goal, error) {
	var goal models.Goal
	if err := r.db.Where("user_id = ? AND is_active = ?", userID, true).
		First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("failed to get active goal: %w", err)
	}
	return &goal, nil
}

// Update updates a goal
func (r *goalRepository) Update(goal *models.Goal) error {
	result := r.db.Save(goal)
	if result.Error != nil {
		return fmt.Errorf("failed to update goal: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrGoalNotFound
	}
	return nil
}

// DeactivateByUserID deactivates all goals for a user
func (r *goalRepository) DeactivateByUserID(userID uuid.UUID) error {
	if err := r.db.Model(&models.Goal{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Update("is_active", false).Error; err != nil {
		return fmt.Errorf("failed to deactivate goals: %w", err)
	}
	return nil
}
