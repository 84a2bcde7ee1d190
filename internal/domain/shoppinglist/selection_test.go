package shoppinglist

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// SelectionTestSuite provides a test suite for the bounded recipe selection
type SelectionTestSuite struct {
	suite.Suite

	selection *Selection
}

func (suite *SelectionTestSuite) SetupTest() {
	suite.selection = NewSelection()
}

func (suite *SelectionTestSuite) TestAdding() {
	suite.Run("WithinLimit_ShouldAccept", func() {
		s := NewSelection()

		for i := 0; i < MaxSelection; i++ {
			require.NoError(suite.T(), s.TryAdd(uuid.New()))
		}

		assert.Equal(suite.T(), MaxSelection, s.Count())
	})

	suite.Run("BeyondLimit_ShouldReturnError", func() {
		s := NewSelection()
		for i := 0; i < MaxSelection; i++ {
			require.NoError(suite.T(), s.TryAdd(uuid.New()))
		}

		err := s.TryAdd(uuid.New())

		assert.Equal(suite.T(), ErrSelectionLimit, err)
		assert.Equal(suite.T(), MaxSelection, s.Count())
	})

	suite.Run("DuplicateID_ShouldBeIdempotent", func() {
		s := NewSelection()
		id := uuid.New()

		require.NoError(suite.T(), s.TryAdd(id))
		require.NoError(suite.T(), s.TryAdd(id))

		assert.Equal(suite.T(), 1, s.Count())
	})

	suite.Run("DuplicateOfFullSelection_ShouldNotError", func() {
		s := NewSelection()
		first := uuid.New()
		require.NoError(suite.T(), s.TryAdd(first))
		for i := 1; i < MaxSelection; i++ {
			require.NoError(suite.T(), s.TryAdd(uuid.New()))
		}

		assert.NoError(suite.T(), s.TryAdd(first))
	})
}

func (suite *SelectionTestSuite) TestRemoval() {
	suite.Run("ExistingID_ShouldRemoveAndPreserveOrder", func() {
		s := NewSelection()
		first, second, third := uuid.New(), uuid.New(), uuid.New()
		require.NoError(suite.T(), s.TryAdd(first))
		require.NoError(suite.T(), s.TryAdd(second))
		require.NoError(suite.T(), s.TryAdd(third))

		s.Remove(second)

		assert.Equal(suite.T(), []uuid.UUID{first, third}, s.IDs())
	})

	suite.Run("UnknownID_ShouldBeNoOp", func() {
		s := NewSelection()
		require.NoError(suite.T(), s.TryAdd(uuid.New()))

		s.Remove(uuid.New())

		assert.Equal(suite.T(), 1, s.Count())
	})

	suite.Run("Clear_ShouldEmptySelection", func() {
		s := NewSelection()
		require.NoError(suite.T(), s.TryAdd(uuid.New()))
		require.NoError(suite.T(), s.TryAdd(uuid.New()))

		s.Clear()

		assert.Equal(suite.T(), 0, s.Count())
		assert.Empty(suite.T(), s.IDs())
	})
}

func (suite *SelectionTestSuite) TestSubscription() {
	suite.Run("ChangesNotifySubscribers", func() {
		s := NewSelection()
		var snapshots [][]uuid.UUID
		s.Subscribe(func(ids []uuid.UUID) {
			snapshots = append(snapshots, ids)
		})

		id := uuid.New()
		require.NoError(suite.T(), s.TryAdd(id))
		s.Remove(id)

		require.Len(suite.T(), snapshots, 2)
		assert.Equal(suite.T(), []uuid.UUID{id}, snapshots[0])
		assert.Empty(suite.T(), snapshots[1])
	})

	suite.Run("NoOpChanges_ShouldNotNotify", func() {
		s := NewSelection()
		calls := 0
		s.Subscribe(func([]uuid.UUID) { calls++ })

		id := uuid.New()
		require.NoError(suite.T(), s.TryAdd(id))
		require.NoError(suite.T(), s.TryAdd(id))
		s.Remove(uuid.New())
		s.Clear()
		s.Clear()

		assert.Equal(suite.T(), 2, calls)
	})
}

func TestSelectionTestSuite(t *testing.T) {
	suite.Run(t, new(SelectionTestSuite))
}
