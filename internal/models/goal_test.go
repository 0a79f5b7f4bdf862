package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoal_Validate(t *testing.T) {
	validUserID := uuid.New()

	tests := []struct {
		name    string
		goal    Goal
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid goal",
			goal: Goal{
				UserID:        validUserID,
				Name:          "Emergency fund",
				TargetAmount:  decimal.NewFromInt(10000),
				CurrentAmount: decimal.NewFromInt(2000),
				IsActive:      true,
			},
			wantErr: false,
		},
		{
			name: "valid goal with zero progress",
			goal: Goal{
				UserID:       validUserID,
				Name:         "House deposit",
				TargetAmount: decimal.NewFromInt(50000),
			},
			wantErr: false,
		},
		{
			name: "missing user ID",
			goal: Goal{
				Name:         "Emergency fund",
				TargetAmount: decimal.NewFromInt(10000),
			},
			wantErr: true,
			errMsg:  "user ID is required",
		},
		{
			name: "missing name",
			goal: Goal{
				UserID:       validUserID,
				TargetAmount: decimal.NewFromInt(10000),
			},
			wantErr: true,
			errMsg:  "goal name is required",
		},
		{
			name: "zero target amount",
			goal: Goal{
				UserID:       validUserID,
				Name:         "Emergency fund",
				TargetAmount: decimal.Zero,
			},
			wantErr: true,
			errMsg:  "target amount must be positive",
		},
		{
			name: "negative target amount",
			goal: Goal{
				UserID:       validUserID,
				Name:         "Emergency fund",
				TargetAmount: decimal.NewFromInt(-100),
			},
			wantErr: true,
			errMsg:  "target amount must be positive",
		},
		{
			name: "negative current amount",
			goal: Goal{
				UserID:        validUserID,
				Name:          "Emergency fund",
				TargetAmount:  decimal.NewFromInt(10000),
				CurrentAmount: decimal.NewFromInt(-50),
			},
			wantErr: true,
			errMsg:  "current amount cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.goal.Validate()
			if tt.wantErr {
				require.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestGoal_RemainingAmount(t *testing.T) {
	tests := []struct {
		name     string
		target   int64
		current  int64
		expected int64
	}{
		{"partway there", 10000, 2000, 8000},
		{"untouched", 10000, 0, 10000},
		{"exactly met", 10000, 10000, 0},
		{"overshot floors at zero", 10000, 12000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goal := Goal{
				TargetAmount:  decimal.NewFromInt(tt.target),
				CurrentAmount: decimal.NewFromInt(tt.current),
			}
			assert.True(t, goal.RemainingAmount().Equal(decimal.NewFromInt(tt.expected)))
		})
	}
}

func TestGoal_IsAchieved(t *testing.T) {
	tests := []struct {
		name     string
		target   int64
		current  int64
		expected bool
	}{
		{"below target", 10000, 9999, false},
		{"at target", 10000, 10000, true},
		{"above target", 10000, 10001, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goal := Goal{
				TargetAmount:  decimal.NewFromInt(tt.target),
				CurrentAmount: decimal.NewFromInt(tt.current),
			}
			assert.Equal(t, tt.expected, goal.IsAchieved())
		})
	}
}

func TestGoal_BeforeCreate(t *testing.T) {
	goal := Goal{
		UserID:       uuid.New(),
		Name:         "Emergency fund",
		TargetAmount: decimal.NewFromInt(10000),
	}

	// Simulate BeforeCreate hook
	err := goal.BeforeCreate(nil)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, goal.ID)
	assert.NotZero(t, goal.CreatedAt)
	assert.NotZero(t, goal.UpdatedAt)
}

func TestGoal_BeforeUpdate(t *testing.T) {
	goal := Goal{
		UserID:       uuid.New(),
		Name:         "Emergency fund",
		TargetAmount: decimal.NewFromInt(10000),
		UpdatedAt:    time.Now().Add(-1 * time.Hour),
	}

	originalUpdatedAt := goal.UpdatedAt

	err := goal.BeforeUpdate(nil)
	require.NoError(t, err)

	assert.True(t, goal.UpdatedAt.After(originalUpdatedAt))
}
