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

type attendanceService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

// NewAttendanceService builds the attendance ledger service.
func NewAttendanceService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator) AttendanceService {
	return &attendanceService{repo: repo, logger: logger, validator: v}
}

// MarkSession records one session for the resolved subject: working days
// always advance by one, present days only when present is true. Operator
// confirmation is the caller's precondition; by the time this runs the
// mutation is committed unconditionally.
func (s *attendanceService) MarkSession(ctx context.Context, req *MarkSessionRequest) (*SubjectAttendanceReport, error) {
	if verrs := s.validator.Validate(req); verrs != nil {
		return nil, verrs
	}

	records, rec, err := s.loadRecord(ctx, req.Roll)
	if err != nil {
		return nil, err
	}
	code, ok := rec.ResolveSubject(strings.TrimSpace(req.SubjectKey))
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSubjectNotFound, req.SubjectKey)
	}

	sa := rec.Subjects[code]
	sa.TotalWorkingDays++
	if req.Present {
		sa.TotalPresentDays++
	}
	sa.Recompute(time.Now())

	if err := s.repo.Attendance().Save(ctx, records); err != nil {
		return nil, persistErr(err)
	}
	s.logger.Info("session marked",
		"roll", rec.Roll,
		"subject", code,
		"present", req.Present,
		"percentage", sa.AttendancePercentage)
	return reportFor(code, sa), nil
}

// SetTotals replaces both counters outright. This is the correction path;
// it shares nothing with MarkSession except the percentage formula, which
// both must converge on.
func (s *attendanceService) SetTotals(ctx context.Context, req *SetTotalsRequest) (*SubjectAttendanceReport, error) {
	if verrs := s.validator.Validate(req); verrs != nil {
		return nil, verrs
	}
	if req.WorkingDays < 0 || req.PresentDays < 0 || req.PresentDays > req.WorkingDays {
		return nil, fmt.Errorf("%w: %d present of %d working", ErrInvalidCounters, req.PresentDays, req.WorkingDays)
	}

	records, rec, err := s.loadRecord(ctx, req.Roll)
	if err != nil {
		return nil, err
	}
	code, ok := rec.ResolveSubject(strings.TrimSpace(req.SubjectKey))
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSubjectNotFound, req.SubjectKey)
	}

	sa := rec.Subjects[code]
	sa.TotalWorkingDays = req.WorkingDays
	sa.TotalPresentDays = req.PresentDays
	sa.Recompute(time.Now())

	if err := s.repo.Attendance().Save(ctx, records); err != nil {
		return nil, persistErr(err)
	}
	s.logger.Info("totals corrected",
		"roll", rec.Roll,
		"subject", code,
		"working", req.WorkingDays,
		"present", req.PresentDays,
		"percentage", sa.AttendancePercentage)
	return reportFor(code, sa), nil
}

func (s *attendanceService) Summarize(ctx context.Context, roll string) (*AttendanceSummary, error) {
	_, rec, err := s.loadRecord(ctx, roll)
	if err != nil {
		return nil, err
	}

	summary := &AttendanceSummary{Roll: rec.Roll, Name: rec.Name, Section: rec.Section}
	for code, sa := range rec.Subjects {
		summary.Subjects = append(summary.Subjects, *reportFor(code, sa))
	}
	sort.Slice(summary.Subjects, func(i, j int) bool {
		return summary.Subjects[i].SubjectCode < summary.Subjects[j].SubjectCode
	})
	return summary, nil
}

func (s *attendanceService) Records(ctx context.Context) ([]*models.AttendanceRecord, error) {
	records, lerr := s.repo.Attendance().Load(ctx)
	return recoverLoad(s.logger, records, lerr)
}

// loadRecord returns the whole ledger plus the record for roll, so the
// caller can mutate in place and save the slice it was handed.
func (s *attendanceService) loadRecord(ctx context.Context, roll string) ([]*models.AttendanceRecord, *models.AttendanceRecord, error) {
	roll = strings.TrimSpace(roll)
	records, lerr := s.repo.Attendance().Load(ctx)
	records, err := recoverLoad(s.logger, records, lerr)
	if err != nil {
		return nil, nil, err
	}
	for _, rec := range records {
		if rec.Roll == roll {
			return records, rec, nil
		}
	}
	return nil, nil, fmt.Errorf("%w: %s", ErrStudentNotFound, roll)
}

func reportFor(code string, sa *models.SubjectAttendance) *SubjectAttendanceReport {
	return &SubjectAttendanceReport{
		SubjectCode: code,
		SubjectName: sa.SubjectName,
		WorkingDays: sa.TotalWorkingDays,
		PresentDays: sa.TotalPresentDays,
		Percentage:  sa.AttendancePercentage,
		LastUpdated: sa.LastUpdated,
	}
}
