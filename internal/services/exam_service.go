package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/edutrack/ledger-service/internal/models"
	"github.com/edutrack/ledger-service/internal/repositories"
	"github.com/edutrack/ledger-service/internal/validator"
)

const notSet = "Not set"

type examService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	catalog   CatalogService
}

// NewExamService builds the exam schedule service.
func NewExamService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator, catalog CatalogService) ExamService {
	return &examService{repo: repo, logger: logger, validator: v, catalog: catalog}
}

func (s *examService) SetExamDate(ctx context.Context, req *SetExamDateRequest) (*models.ExamDate, error) {
	if verrs := s.validator.Validate(req); verrs != nil {
		return nil, verrs
	}
	if _, err := time.Parse(models.DateLayout, req.ExamDate); err != nil {
		return nil, NewValidationError("exam_date", "must be a valid DD/MM/YYYY date", req.ExamDate)
	}
	code := strings.ToUpper(strings.TrimSpace(req.SubjectCode))

	subjects, err := s.catalog.ListSubjects(ctx)
	if err != nil {
		return nil, err
	}
	name := ""
	for _, sub := range subjects {
		if strings.EqualFold(sub.Code, code) {
			name = sub.Name
			break
		}
	}
	if name == "" {
		return nil, fmt.Errorf("%w: %s", ErrSubjectNotFound, code)
	}

	dates, lerr := s.repo.ExamDates().Load(ctx)
	dates, err = recoverLoad(s.logger, dates, lerr)
	if err != nil {
		return nil, err
	}
	entry := models.ExamDate{SubjectCode: code, SubjectName: name, ExamDate: req.ExamDate}
	found := false
	for i := range dates {
		if dates[i].SubjectCode == code {
			dates[i] = entry
			found = true
			break
		}
	}
	if !found {
		dates = append(dates, entry)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].SubjectCode < dates[j].SubjectCode })

	if err := s.repo.ExamDates().Save(ctx, dates); err != nil {
		return nil, persistErr(err)
	}
	s.logger.Info("exam date set", "subject", code, "date", req.ExamDate)
	return &entry, nil
}

func (s *examService) AllExamDates(ctx context.Context) ([]ExamEntry, error) {
	subjects, err := s.catalog.ListSubjects(ctx)
	if err != nil {
		return nil, err
	}
	byCode, err := s.examMap(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]ExamEntry, 0, len(subjects))
	for _, sub := range subjects {
		entries = append(entries, ExamEntry{
			SubjectCode: sub.Code,
			SubjectName: sub.Name,
			ExamDate:    dateOrNotSet(byCode, sub.Code),
		})
	}
	return entries, nil
}

// SectionExamDates joins the section's curriculum with the exam map. A
// section with no allocation falls back to the full catalog, flagged via
// SectionSpecific=false.
func (s *examService) SectionExamDates(ctx context.Context, sectionCode string) (*SectionExamSchedule, error) {
	code := strings.ToUpper(strings.TrimSpace(sectionCode))
	curriculum, err := s.catalog.CurriculumForSection(ctx, code)
	if err != nil {
		return nil, err
	}

	if len(curriculum) == 0 {
		entries, err := s.AllExamDates(ctx)
		if err != nil {
			return nil, err
		}
		return &SectionExamSchedule{Section: code, SectionSpecific: false, Entries: entries}, nil
	}

	byCode, err := s.examMap(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]ExamEntry, 0, len(curriculum))
	for _, subjectName := range curriculum {
		subjectCode, err := s.catalog.ResolveCode(ctx, subjectName)
		if err != nil {
			return nil, err
		}
		entries = append(entries, ExamEntry{
			SubjectCode: subjectCode,
			SubjectName: subjectName,
			ExamDate:    dateOrNotSet(byCode, subjectCode),
		})
	}
	return &SectionExamSchedule{Section: code, SectionSpecific: true, Entries: entries}, nil
}

func (s *examService) examMap(ctx context.Context) (map[string]string, error) {
	dates, lerr := s.repo.ExamDates().Load(ctx)
	dates, err := recoverLoad(s.logger, dates, lerr)
	if err != nil {
		return nil, err
	}
	byCode := make(map[string]string, len(dates))
	for _, d := range dates {
		byCode[d.SubjectCode] = d.ExamDate
	}
	return byCode, nil
}

func dateOrNotSet(byCode map[string]string, code string) string {
	if d, ok := byCode[code]; ok && d != "" {
		return d
	}
	return notSet
}
