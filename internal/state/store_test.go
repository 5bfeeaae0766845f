package state

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/earnbase/earnbot/internal/domain"
)

const chatID int64 = 42

func TestSetAppliesOnlyForCurrentGeneration(t *testing.T) {
	s := NewStore()

	gen := s.Activate(chatID)
	require.True(t, s.SetTasks(chatID, gen, []domain.Task{{ID: "t1"}}))
	assert.Len(t, s.Tasks(chatID), 1)

	// A new activation invalidates results still in flight for the old one.
	next := s.Activate(chatID)
	assert.False(t, s.SetTasks(chatID, gen, []domain.Task{{ID: "stale"}}))
	assert.False(t, s.SetProfile(chatID, gen, &domain.UserProfile{Username: "stale"}))
	assert.False(t, s.SetLeaderboard(chatID, gen, []domain.LeaderboardEntry{{Username: "stale"}}))

	// The old slice survives until a current-generation load replaces it.
	require.Len(t, s.Tasks(chatID), 1)
	assert.Equal(t, "t1", s.Tasks(chatID)[0].ID)

	require.True(t, s.SetTasks(chatID, next, []domain.Task{{ID: "t2"}, {ID: "t3"}}))
	assert.Len(t, s.Tasks(chatID), 2)
}

func TestGenerationDoesNotAdvanceOnRead(t *testing.T) {
	s := NewStore()

	gen := s.Activate(chatID)
	assert.Equal(t, gen, s.Generation(chatID))
	assert.Equal(t, gen, s.Generation(chatID))

	// Refreshes after a mutating action reuse the active generation.
	require.True(t, s.SetProfile(chatID, s.Generation(chatID), &domain.UserProfile{Username: "w"}))
	assert.Equal(t, "w", s.Profile(chatID).Username)
}

func TestSlicesReplacedWholesale(t *testing.T) {
	s := NewStore()

	gen := s.Activate(chatID)
	require.True(t, s.SetProfile(chatID, gen, &domain.UserProfile{
		Username: "a",
		Balance:  decimal.RequireFromString("10"),
	}))
	require.True(t, s.SetProfile(chatID, gen, &domain.UserProfile{Username: "b"}))

	p := s.Profile(chatID)
	assert.Equal(t, "b", p.Username)
	assert.True(t, p.Balance.IsZero())
}

func TestTaskByID(t *testing.T) {
	s := NewStore()

	gen := s.Activate(chatID)
	require.True(t, s.SetTasks(chatID, gen, []domain.Task{{ID: "t1", Title: "one"}, {ID: "t2", Title: "two"}}))

	task, err := s.TaskByID(chatID, "t2")
	require.NoError(t, err)
	assert.Equal(t, "two", task.Title)

	_, err = s.TaskByID(chatID, "missing")
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestActivateAbandonsInputFlow(t *testing.T) {
	s := NewStore()

	s.SetInput(chatID, InputState{Mode: InputWithdrawAmount})
	assert.Equal(t, InputWithdrawAmount, s.Input(chatID).Mode)

	s.Activate(chatID)
	assert.Equal(t, InputNone, s.Input(chatID).Mode)
}

func TestInputCarriesFlowFields(t *testing.T) {
	s := NewStore()

	s.SetInput(chatID, InputState{
		Mode:   InputWithdrawDetails,
		Amount: decimal.RequireFromString("7.50"),
		Method: domain.MethodNagad,
	})

	input := s.Input(chatID)
	assert.Equal(t, InputWithdrawDetails, input.Mode)
	assert.True(t, input.Amount.Equal(decimal.RequireFromString("7.50")))
	assert.Equal(t, domain.MethodNagad, input.Method)

	s.ClearInput(chatID)
	assert.Equal(t, InputState{}, s.Input(chatID))
}

func TestClearDropsEverything(t *testing.T) {
	s := NewStore()

	gen := s.Activate(chatID)
	require.True(t, s.SetTasks(chatID, gen, []domain.Task{{ID: "t1"}}))
	s.SetInput(chatID, InputState{Mode: InputSubmission, TaskID: "t1"})

	s.Clear(chatID)
	assert.Nil(t, s.Profile(chatID))
	assert.Empty(t, s.Tasks(chatID))
	assert.Equal(t, InputState{}, s.Input(chatID))
	assert.Equal(t, uint64(0), s.Generation(chatID))
}

func TestChatsAreIndependent(t *testing.T) {
	s := NewStore()

	genA := s.Activate(1)
	genB := s.Activate(2)
	require.True(t, s.SetTasks(1, genA, []domain.Task{{ID: "a"}}))
	require.True(t, s.SetTasks(2, genB, []domain.Task{{ID: "b"}}))

	s.Activate(1)
	assert.False(t, s.SetTasks(1, genA, nil))
	assert.True(t, s.SetLeaderboard(2, genB, nil))
	assert.Equal(t, "b", s.Tasks(2)[0].ID)
}
