package repositories

import (
	"testing"

	"finsight/internal/database"
	"finsight/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// GoalRepositorySuite defines the test suite for GoalRepository
type GoalRepositorySuite struct {
	suite.Suite
	db     *database.DB
	repo   GoalRepositoryInterface
	userID uuid.UUID
}

// SetupTest runs before each test in the suite
func (s *GoalRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewGoalRepository(s.db.DB)
	s.userID = uuid.New()
}

// TearDownTest runs after each test in the suite
func (s *GoalRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestGoalRepositorySuite runs the test suite
func TestGoalRepositorySuite(t *testing.T) {
	suite.Run(t, new(GoalRepositorySuite))
}

func (s *GoalRepositorySuite) newGoal(name string) *models.Goal {
	return &models.Goal{
		UserID:        s.userID,
		Name:          name,
		TargetAmount:  decimal.NewFromInt(10000),
		CurrentAmount: decimal.NewFromInt(2000),
		IsActive:      true,
	}
}

func (s *GoalRepositorySuite) TestCreate() {
	goal := s.newGoal("Emergency fund")

	err := s.repo.Create(goal)
	s.NoError(err)
	s.NotEqual(uuid.Nil, goal.ID)
	s.NotZero(goal.CreatedAt)
}

func (s *GoalRepositorySuite) TestCreate_DisplacesPreviousActiveGoal() {
	first := s.newGoal("Emergency fund")
	s.NoError(s.repo.Create(first))

	second := s.newGoal("House deposit")
	s.NoError(s.repo.Create(second))

	active, err := s.repo.GetActiveByUserID(s.userID)
	s.NoError(err)
	s.Equal(second.ID, active.ID)

	// The first goal still exists but is no longer active
	stored, err := s.repo.GetByID(first.ID)
	s.NoError(err)
	s.False(stored.IsActive)
}

func (s *GoalRepositorySuite) TestCreate_InactiveGoalLeavesActiveAlone() {
	active := s.newGoal("Emergency fund")
	s.NoError(s.repo.Create(active))

	archived := s.newGoal("Old goal")
	archived.IsActive = false
	s.NoError(s.repo.Create(archived))

	current, err := s.repo.GetActiveByUserID(s.userID)
	s.NoError(err)
	s.Equal(active.ID, current.ID)
}

func (s *GoalRepositorySuite) TestGetActiveByUserID_NotFound() {
	_, err := s.repo.GetActiveByUserID(uuid.New())
	s.ErrorIs(err, ErrGoalNotFound)
}

func (s *GoalRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrGoalNotFound)
}

func (s *GoalRepositorySuite) TestUpdate() {
	goal := s.newGoal("Emergency fund")
	s.NoError(s.repo.Create(goal))

	goal.CurrentAmount = decimal.NewFromInt(3500)
	s.NoError(s.repo.Update(goal))

	stored, err := s.repo.GetByID(goal.ID)
	s.NoError(err)
	s.True(stored.CurrentAmount.Equal(decimal.NewFromInt(3500)))
}

func (s *GoalRepositorySuite) TestDeactivateByUserID() {
	goal := s.newGoal("Emergency fund")
	s.NoError(s.repo.Create(goal))

	s.NoError(s.repo.DeactivateByUserID(s.userID))

	_, err := s.repo.GetActiveByUserID(s.userID)
	s.ErrorIs(err, ErrGoalNotFound)
}
