package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameStore_SaveScore(t *testing.T) {
	s := NewGameStore()

	t.Run("RankComputedFromInsertedEntry", func(t *testing.T) {
		// seeded leaderboard for game 1: 95, 92, 87
		rank, ok := s.SaveScore("1", "u9", "Noah", 90)
		require.True(t, ok)
		assert.Equal(t, 3, rank)
	})

	t.Run("TopScoreRanksFirst", func(t *testing.T) {
		rank, ok := s.SaveScore("1", "u9", "Noah", 100)
		require.True(t, ok)
		assert.Equal(t, 1, rank)
	})

	t.Run("TieKeepsEarlierSubmissionAhead", func(t *testing.T) {
		s := NewGameStore()
		first, ok := s.SaveScore("3", "ua", "Emma", 80)
		require.True(t, ok)
		second, ok := s.SaveScore("3", "ub", "Lucas", 80)
		require.True(t, ok)
		assert.Equal(t, 1, first)
		assert.Equal(t, 2, second)
	})

	t.Run("UnknownGame", func(t *testing.T) {
		_, ok := s.SaveScore("404", "u1", "Emma", 10)
		assert.False(t, ok)
	})
}

func TestGameStore_Leaderboard(t *testing.T) {
	s := NewGameStore()

	t.Run("SortedDescending", func(t *testing.T) {
		scores, ok := s.Leaderboard("2", 0)
		require.True(t, ok)
		require.Len(t, scores, 3)
		for i := 1; i < len(scores); i++ {
			assert.GreaterOrEqual(t, scores[i-1].Score, scores[i].Score)
		}
	})

	t.Run("Limit", func(t *testing.T) {
		scores, ok := s.Leaderboard("2", 2)
		require.True(t, ok)
		assert.Len(t, scores, 2)
	})

	t.Run("UnknownGame", func(t *testing.T) {
		_, ok := s.Leaderboard("404", 0)
		assert.False(t, ok)
	})
}

func TestGameStore_ListFiltersNothing(t *testing.T) {
	s := NewGameStore()
	games := s.List()
	require.Len(t, games, 3)
	assert.Equal(t, "Puzzle des nombres", games[0].Title)
}
