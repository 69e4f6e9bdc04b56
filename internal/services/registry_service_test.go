package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edutrack/ledger-service/internal/models"
)

func TestRegistryService_GetOrCreateRoll(t *testing.T) {
	ctx := context.Background()

	t.Run("allocates sequential student rolls", func(t *testing.T) {
		m, _ := newTestEnv(t)
		first, err := m.Registry().GetOrCreateRoll(ctx, "alice", models.RoleStudent, true)
		require.NoError(t, err)
		assert.Equal(t, "20250001", first)

		second, err := m.Registry().GetOrCreateRoll(ctx, "bob", models.RoleStudent, true)
		require.NoError(t, err)
		assert.Equal(t, "20250002", second)
	})

	t.Run("same name returns same roll", func(t *testing.T) {
		m, _ := newTestEnv(t)
		first, err := m.Registry().GetOrCreateRoll(ctx, "alice", models.RoleStudent, true)
		require.NoError(t, err)
		again, err := m.Registry().GetOrCreateRoll(ctx, "alice", models.RoleStudent, true)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	})

	t.Run("namespaces are independent", func(t *testing.T) {
		m, _ := newTestEnv(t)
		student, err := m.Registry().GetOrCreateRoll(ctx, "pat", models.RoleStudent, true)
		require.NoError(t, err)
		teacher, err := m.Registry().GetOrCreateRoll(ctx, "pat", models.RoleTeacher, true)
		require.NoError(t, err)
		admin, err := m.Registry().GetOrCreateRoll(ctx, "pat", models.RoleAdmin, true)
		require.NoError(t, err)

		assert.Equal(t, "20250001", student)
		assert.Equal(t, "T0001", teacher)
		assert.Equal(t, "A0001", admin)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		m, _ := newTestEnv(t)
		_, err := m.Registry().GetOrCreateRoll(ctx, "alice", models.Role("janitor"), true)
		assert.ErrorIs(t, err, ErrUnknownRole)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		m, _ := newTestEnv(t)
		_, err := m.Registry().GetOrCreateRoll(ctx, "   ", models.RoleStudent, true)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("counter survives reload", func(t *testing.T) {
		m, _ := newTestEnv(t)
		_, err := m.Registry().GetOrCreateRoll(ctx, "alice", models.RoleStudent, true)
		require.NoError(t, err)
		_, err = m.Registry().GetOrCreateRoll(ctx, "bob", models.RoleStudent, true)
		require.NoError(t, err)

		third, err := m.Registry().GetOrCreateRoll(ctx, "carol", models.RoleStudent, true)
		require.NoError(t, err)
		assert.Equal(t, "20250003", third)
	})
}

func TestRegistryService_FindRoll(t *testing.T) {
	ctx := context.Background()

	t.Run("finds existing roll without allocating", func(t *testing.T) {
		m, _ := newTestEnv(t)
		roll, err := m.Registry().GetOrCreateRoll(ctx, "alice", models.RoleStudent, true)
		require.NoError(t, err)

		found, err := m.Registry().FindRoll(ctx, "alice", models.RoleStudent)
		require.NoError(t, err)
		assert.Equal(t, roll, found)
	})

	t.Run("unknown name is ErrRollNotFound", func(t *testing.T) {
		m, _ := newTestEnv(t)
		_, err := m.Registry().FindRoll(ctx, "nobody", models.RoleStudent)
		assert.ErrorIs(t, err, ErrRollNotFound)
	})

	t.Run("lookup does not consume a counter value", func(t *testing.T) {
		m, _ := newTestEnv(t)
		_, err := m.Registry().FindRoll(ctx, "nobody", models.RoleStudent)
		require.ErrorIs(t, err, ErrRollNotFound)

		roll, err := m.Registry().GetOrCreateRoll(ctx, "alice", models.RoleStudent, true)
		require.NoError(t, err)
		assert.Equal(t, "20250001", roll)
	})
}
