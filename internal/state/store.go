// Package state holds the last-successful data slices for each chat. Slices
// are replaced wholesale on successful loads only; a failed load leaves the
// previous slice intact. Every view activation bumps a per-chat generation,
// and a load that finishes after the user has moved on applies nothing.
package state

import (
	"sync"

	"github.com/earnbase/earnbot/internal/domain"
)

type chatState struct {
	profile     *domain.UserProfile
	tasks       []domain.Task
	leaderboard []domain.LeaderboardEntry
	generation  uint64
	input       InputState
}

type Store struct {
	mu    sync.Mutex
	chats map[int64]*chatState
}

func NewStore() *Store {
	return &Store{chats: make(map[int64]*chatState)}
}

func (s *Store) chat(chatID int64) *chatState {
	cs, ok := s.chats[chatID]
	if !ok {
		cs = &chatState{}
		s.chats[chatID] = cs
	}
	return cs
}

// Activate marks a view switch for the chat: the generation advances and any
// in-progress input flow is abandoned. Returns the new generation; loads
// started for this activation must present it when applying results.
func (s *Store) Activate(chatID int64) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	cs := s.chat(chatID)
	cs.generation++
	cs.input = InputState{}
	return cs.generation
}

// Generation returns the current generation without advancing it. Used by
// refreshes after mutating actions, which belong to the active view.
func (s *Store) Generation(chatID int64) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chat(chatID).generation
}

// SetProfile replaces the profile slice if gen is still current. Reports
// whether the result was applied.
func (s *Store) SetProfile(chatID int64, gen uint64, profile *domain.UserProfile) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	cs := s.chat(chatID)
	if cs.generation != gen {
		return false
	}
	cs.profile = profile
	return true
}

// SetTasks replaces the task list if gen is still current.
func (s *Store) SetTasks(chatID int64, gen uint64, tasks []domain.Task) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	cs := s.chat(chatID)
	if cs.generation != gen {
		return false
	}
	cs.tasks = tasks
	return true
}

// SetLeaderboard replaces the leaderboard if gen is still current.
func (s *Store) SetLeaderboard(chatID int64, gen uint64, entries []domain.LeaderboardEntry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	cs := s.chat(chatID)
	if cs.generation != gen {
		return false
	}
	cs.leaderboard = entries
	return true
}

func (s *Store) Profile(chatID int64) *domain.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chat(chatID).profile
}

func (s *Store) Tasks(chatID int64) []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chat(chatID).tasks
}

// TaskByID finds a task in the last-fetched list. Returns ErrTaskNotFound
// when the task is absent, which covers stale keyboards after a refetch.
func (s *Store) TaskByID(chatID int64, taskID string) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.chat(chatID).tasks {
		if t.ID == taskID {
			return t, nil
		}
	}
	return domain.Task{}, domain.ErrTaskNotFound
}

func (s *Store) Leaderboard(chatID int64) []domain.LeaderboardEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chat(chatID).leaderboard
}

// Clear drops everything held for the chat. Used on sign-out.
func (s *Store) Clear(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.chats, chatID)
}
