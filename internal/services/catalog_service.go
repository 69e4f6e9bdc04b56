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

type catalogService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

// NewCatalogService builds the subject/section catalog service.
func NewCatalogService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator) CatalogService {
	return &catalogService{repo: repo, logger: logger, validator: v}
}

func (s *catalogService) ListSubjects(ctx context.Context) ([]models.Subject, error) {
	subjects, lerr := s.repo.Subjects().Load(ctx)
	return recoverLoad(s.logger, subjects, lerr)
}

func (s *catalogService) ResolveCode(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", NewValidationError("name", "is required", name)
	}
	subjects, err := s.ListSubjects(ctx)
	if err != nil {
		return "", err
	}
	for _, sub := range subjects {
		if strings.EqualFold(sub.Name, name) {
			return sub.Code, nil
		}
	}
	if code, ok := models.SubjectNameToCode[name]; ok {
		return code, nil
	}
	// Deterministic fallback; deliberately does not register the subject.
	return models.FallbackCode(name), nil
}

func (s *catalogService) AddSubject(ctx context.Context, req *AddSubjectRequest) (*models.Subject, error) {
	if verrs := s.validator.Validate(req); verrs != nil {
		return nil, verrs
	}
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	name := strings.TrimSpace(req.Name)

	subjects, err := s.ListSubjects(ctx)
	if err != nil {
		return nil, err
	}
	for _, sub := range subjects {
		if strings.EqualFold(sub.Code, code) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCode, code)
		}
	}

	subject := models.Subject{Code: code, Name: name}
	subjects = append(subjects, subject)
	if err := s.repo.Subjects().Save(ctx, subjects); err != nil {
		return nil, persistErr(err)
	}
	s.logger.Info("subject added", "code", code, "name", name)
	return &subject, nil
}

func (s *catalogService) AddSection(ctx context.Context, req *AddSectionRequest) (*models.Section, error) {
	if verrs := s.validator.Validate(req); verrs != nil {
		return nil, verrs
	}
	code := strings.ToUpper(strings.TrimSpace(req.Code))

	sections, lerr := s.repo.Sections().Load(ctx)
	sections, err := recoverLoad(s.logger, sections, lerr)
	if err != nil {
		return nil, err
	}
	for _, sec := range sections {
		if sec.Code == code {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSection, code)
		}
	}

	section := models.Section{Code: code, Curriculum: models.FamilyCurriculum(code)}
	sections = append(sections, section)
	if err := s.repo.Sections().Save(ctx, sections); err != nil {
		return nil, persistErr(err)
	}
	s.logger.Info("section created", "code", code, "curriculum_size", len(section.Curriculum))
	return &section, nil
}

func (s *catalogService) ListSections(ctx context.Context) ([]models.Section, error) {
	sections, lerr := s.repo.Sections().Load(ctx)
	sections, err := recoverLoad(s.logger, sections, lerr)
	if err != nil {
		return nil, err
	}
	sort.Slice(sections, func(i, j int) bool { return sections[i].Code < sections[j].Code })
	return sections, nil
}

func (s *catalogService) SetCurriculum(ctx context.Context, req *SetCurriculumRequest) error {
	if verrs := s.validator.Validate(req); verrs != nil {
		return verrs
	}
	code := strings.ToUpper(strings.TrimSpace(req.Section))

	sections, lerr := s.repo.Sections().Load(ctx)
	sections, err := recoverLoad(s.logger, sections, lerr)
	if err != nil {
		return err
	}
	for i := range sections {
		if sections[i].Code == code {
			// Already-enrolled students keep their captured curriculum;
			// this edit only affects future enrollments.
			sections[i].Curriculum = append([]string(nil), req.Subjects...)
			if err := s.repo.Sections().Save(ctx, sections); err != nil {
				return persistErr(err)
			}
			s.logger.Info("curriculum updated", "section", code, "subjects", len(req.Subjects))
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownSection, code)
}

func (s *catalogService) CurriculumForSection(ctx context.Context, sectionCode string) ([]string, error) {
	code := strings.ToUpper(strings.TrimSpace(sectionCode))

	sections, lerr := s.repo.Sections().Load(ctx)
	sections, err := recoverLoad(s.logger, sections, lerr)
	if err != nil {
		return nil, err
	}
	for _, sec := range sections {
		if sec.Code == code && len(sec.Curriculum) > 0 {
			return append([]string(nil), sec.Curriculum...), nil
		}
	}
	return models.FamilyCurriculum(code), nil
}
