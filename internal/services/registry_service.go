package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/edutrack/ledger-service/internal/models"
	"github.com/edutrack/ledger-service/internal/repositories"
)

type registryService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

// NewRegistryService builds the roll-number registry service.
func NewRegistryService(repo repositories.Repository, logger *slog.Logger) RegistryService {
	return &registryService{repo: repo, logger: logger}
}

func (s *registryService) GetOrCreateRoll(ctx context.Context, name string, role models.Role, createIfMissing bool) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", NewValidationError("name", "is required", name)
	}
	if _, err := models.ParseRole(string(role)); err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}

	reg, lerr := s.repo.Rolls().Load(ctx)
	reg, err := recoverLoad(s.logger, reg, lerr)
	if err != nil {
		return "", err
	}

	ns := reg.Namespace(role)
	if roll, ok := ns.Names[name]; ok {
		return roll, nil
	}
	if !createIfMissing {
		return "", ErrRollNotFound
	}

	// Counter values are issued exactly once; the roll string is derived
	// from the counter alone, so it can never collide or be reused.
	ns.Counter++
	roll := fmt.Sprintf(role.RollFormat(), ns.Counter)
	ns.Names[name] = roll

	if err := s.repo.Rolls().Save(ctx, reg); err != nil {
		return "", persistErr(err)
	}
	s.logger.Info("roll allocated", "name", name, "role", role, "roll", roll)
	return roll, nil
}

func (s *registryService) FindRoll(ctx context.Context, name string, role models.Role) (string, error) {
	return s.GetOrCreateRoll(ctx, name, role, false)
}
