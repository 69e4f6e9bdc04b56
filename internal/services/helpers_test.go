package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edutrack/ledger-service/internal/models"
	"github.com/edutrack/ledger-service/internal/repositories"
	"github.com/edutrack/ledger-service/internal/repositories/filestore"
	"github.com/edutrack/ledger-service/internal/validator"
)

// newTestEnv wires the full service stack over a throwaway file store.
func newTestEnv(t *testing.T) (ServiceManager, repositories.Repository) {
	t.Helper()
	repo, err := filestore.New(t.TempDir())
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServiceManager(repo, logger, validator.New()), repo
}

// enrollStudent registers a roll for name, creates the section and enrolls,
// returning the allocated roll.
func enrollStudent(t *testing.T, m ServiceManager, name, section string) string {
	t.Helper()
	ctx := context.Background()
	roll, err := m.Registry().GetOrCreateRoll(ctx, name, models.RoleStudent, true)
	require.NoError(t, err)
	if _, err := m.Catalog().AddSection(ctx, &AddSectionRequest{Code: section}); err != nil {
		require.ErrorIs(t, err, ErrDuplicateSection)
	}
	_, err = m.Enrollment().Enroll(ctx, &EnrollRequest{Roll: roll, Section: section})
	require.NoError(t, err)
	return roll
}
