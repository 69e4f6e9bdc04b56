package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/edutrack/ledger-service/internal/models"
	"github.com/edutrack/ledger-service/internal/repositories"
	"github.com/edutrack/ledger-service/internal/validator"
)

type teacherService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	catalog   CatalogService
}

// NewTeacherService builds the teacher section-assignment service.
func NewTeacherService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator, catalog CatalogService) TeacherService {
	return &teacherService{repo: repo, logger: logger, validator: v, catalog: catalog}
}

// AssignSections overwrites a teacher's section set with the sorted,
// deduplicated input. Every section must already exist in the catalog.
func (s *teacherService) AssignSections(ctx context.Context, req *AssignSectionsRequest) ([]string, error) {
	if verrs := s.validator.Validate(req); verrs != nil {
		return nil, verrs
	}
	teacher := strings.TrimSpace(req.Teacher)

	sections, err := s.catalog.ListSections(ctx)
	if err != nil {
		return nil, err
	}
	known := make(map[string]bool, len(sections))
	for _, sec := range sections {
		known[sec.Code] = true
	}

	set := map[string]bool{}
	for _, raw := range req.Sections {
		code := strings.ToUpper(strings.TrimSpace(raw))
		if code == "" {
			continue
		}
		if !known[code] {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSection, code)
		}
		set[code] = true
	}
	chosen := make([]string, 0, len(set))
	for code := range set {
		chosen = append(chosen, code)
	}
	sort.Strings(chosen)

	assignments, lerr := s.repo.TeacherSections().Load(ctx)
	assignments, err = recoverLoad(s.logger, assignments, lerr)
	if err != nil {
		return nil, err
	}
	found := false
	for i := range assignments {
		if assignments[i].Teacher == teacher {
			assignments[i].Sections = chosen
			found = true
			break
		}
	}
	if !found {
		assignments = append(assignments, models.TeacherSections{Teacher: teacher, Sections: chosen})
	}
	if err := s.repo.TeacherSections().Save(ctx, assignments); err != nil {
		return nil, persistErr(err)
	}
	s.logger.Info("teacher sections assigned", "teacher", teacher, "sections", chosen)
	return chosen, nil
}

func (s *teacherService) SectionsFor(ctx context.Context, teacher string) ([]string, error) {
	teacher = strings.TrimSpace(teacher)
	assignments, lerr := s.repo.TeacherSections().Load(ctx)
	assignments, err := recoverLoad(s.logger, assignments, lerr)
	if err != nil {
		return nil, err
	}
	for _, a := range assignments {
		if a.Teacher == teacher {
			return append([]string(nil), a.Sections...), nil
		}
	}
	return nil, nil
}
