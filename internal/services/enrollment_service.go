package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/edutrack/ledger-service/internal/models"
	"github.com/edutrack/ledger-service/internal/repositories"
	"github.com/edutrack/ledger-service/internal/validator"
)

// enrollmentService is the single write path for section membership. The
// binding, the student-subject profile and the attendance record all
// encode the section independently; routing every mutation through here is
// what keeps the three stores consistent.
type enrollmentService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	catalog   CatalogService
}

// NewEnrollmentService builds the enrollment coordinator.
func NewEnrollmentService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator, catalog CatalogService) EnrollmentService {
	return &enrollmentService{repo: repo, logger: logger, validator: v, catalog: catalog}
}

// Enroll binds roll to section and materializes the curriculum into the
// profile cache and the ledger. When the section has no curriculum the
// binding is still written and ErrEmptyCurriculum is returned: an
// intentional partial-success state that InitializeAll can later repair.
func (s *enrollmentService) Enroll(ctx context.Context, req *EnrollRequest) (*EnrollResult, error) {
	if verrs := s.validator.Validate(req); verrs != nil {
		return nil, verrs
	}
	roll := strings.TrimSpace(req.Roll)
	sectionCode := strings.ToUpper(strings.TrimSpace(req.Section))

	sections, err := s.catalog.ListSections(ctx)
	if err != nil {
		return nil, err
	}
	known := false
	for _, sec := range sections {
		if sec.Code == sectionCode {
			known = true
			break
		}
	}
	if !known {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSection, sectionCode)
	}

	if err := s.writeBinding(ctx, roll, sectionCode); err != nil {
		return nil, err
	}

	curriculum, err := s.catalog.CurriculumForSection(ctx, sectionCode)
	if err != nil {
		return nil, err
	}
	if len(curriculum) == 0 {
		// The binding above stands; only the materialization is skipped.
		return nil, fmt.Errorf("%w: %s", ErrEmptyCurriculum, sectionCode)
	}

	if err := s.writeProfile(ctx, roll, sectionCode, curriculum); err != nil {
		return nil, err
	}

	created, err := s.ensureRecord(ctx, roll, sectionCode, curriculum)
	if err != nil {
		return nil, err
	}

	s.logger.Info("enrolled",
		"roll", roll,
		"section", sectionCode,
		"subjects", len(curriculum),
		"record_created", created)
	return &EnrollResult{
		Roll:          roll,
		Section:       sectionCode,
		Curriculum:    curriculum,
		RecordCreated: created,
	}, nil
}

func (s *enrollmentService) Binding(ctx context.Context, roll string) (string, error) {
	roll = strings.TrimSpace(roll)
	bindings, lerr := s.repo.Enrollments().Load(ctx)
	bindings, err := recoverLoad(s.logger, bindings, lerr)
	if err != nil {
		return "", err
	}
	for _, b := range bindings {
		if b.Roll == roll {
			return b.Section, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrRollNotFound, roll)
}

// InitializeAll sweeps every recorded enrollment and backfills attendance
// records that are missing, using the same create-if-absent rule as
// Enroll. Bindings whose section has no curriculum are skipped; records
// that already exist are left untouched and not counted.
func (s *enrollmentService) InitializeAll(ctx context.Context) (int, error) {
	bindings, lerr := s.repo.Enrollments().Load(ctx)
	bindings, err := recoverLoad(s.logger, bindings, lerr)
	if err != nil {
		return 0, err
	}

	records, lerr := s.repo.Attendance().Load(ctx)
	records, err = recoverLoad(s.logger, records, lerr)
	if err != nil {
		return 0, err
	}
	byRoll := make(map[string]*models.AttendanceRecord, len(records))
	for _, rec := range records {
		byRoll[rec.Roll] = rec
	}

	resolve, err := s.codeResolver(ctx)
	if err != nil {
		return 0, err
	}

	created := 0
	now := time.Now()
	for _, b := range bindings {
		if _, ok := byRoll[b.Roll]; ok {
			continue
		}
		curriculum, err := s.catalog.CurriculumForSection(ctx, b.Section)
		if err != nil {
			return 0, err
		}
		if len(curriculum) == 0 {
			continue
		}
		name, err := s.studentName(ctx, b.Roll)
		if err != nil {
			return 0, err
		}
		rec := models.NewAttendanceRecord(b.Roll, name, b.Section, curriculum, resolve, now)
		records = append(records, rec)
		byRoll[b.Roll] = rec
		created++
	}

	if created > 0 {
		if err := s.repo.Attendance().Save(ctx, records); err != nil {
			return 0, persistErr(err)
		}
	}
	s.logger.Info("bulk attendance initialization finished", "created", created, "bindings", len(bindings))
	return created, nil
}

func (s *enrollmentService) writeBinding(ctx context.Context, roll, sectionCode string) error {
	bindings, lerr := s.repo.Enrollments().Load(ctx)
	bindings, err := recoverLoad(s.logger, bindings, lerr)
	if err != nil {
		return err
	}
	found := false
	for i := range bindings {
		if bindings[i].Roll == roll {
			bindings[i].Section = sectionCode
			found = true
			break
		}
	}
	if !found {
		bindings = append(bindings, models.EnrollmentBinding{Roll: roll, Section: sectionCode})
	}
	if err := s.repo.Enrollments().Save(ctx, bindings); err != nil {
		return persistErr(err)
	}
	return nil
}

func (s *enrollmentService) writeProfile(ctx context.Context, roll, sectionCode string, curriculum []string) error {
	profiles, lerr := s.repo.Profiles().Load(ctx)
	profiles, err := recoverLoad(s.logger, profiles, lerr)
	if err != nil {
		return err
	}
	profile := models.StudentSubjectProfile{
		Roll:     roll,
		Section:  sectionCode,
		Subjects: append([]string(nil), curriculum...),
	}
	found := false
	for i := range profiles {
		if profiles[i].Roll == roll {
			profiles[i] = profile
			found = true
			break
		}
	}
	if !found {
		profiles = append(profiles, profile)
	}
	if err := s.repo.Profiles().Save(ctx, profiles); err != nil {
		return persistErr(err)
	}
	return nil
}

// ensureRecord creates a zeroed attendance record for roll if none exists,
// or updates only the section field of an existing one. Existing subject
// counters are never reset: re-enrollment preserves attendance history
// verbatim, even for subjects no longer in the new curriculum.
func (s *enrollmentService) ensureRecord(ctx context.Context, roll, sectionCode string, curriculum []string) (bool, error) {
	records, lerr := s.repo.Attendance().Load(ctx)
	records, err := recoverLoad(s.logger, records, lerr)
	if err != nil {
		return false, err
	}

	for _, rec := range records {
		if rec.Roll == roll {
			rec.Section = sectionCode
			if err := s.repo.Attendance().Save(ctx, records); err != nil {
				return false, persistErr(err)
			}
			return false, nil
		}
	}

	resolve, err := s.codeResolver(ctx)
	if err != nil {
		return false, err
	}
	name, err := s.studentName(ctx, roll)
	if err != nil {
		return false, err
	}
	records = append(records, models.NewAttendanceRecord(roll, name, sectionCode, curriculum, resolve, time.Now()))
	if err := s.repo.Attendance().Save(ctx, records); err != nil {
		return false, persistErr(err)
	}
	return true, nil
}

// codeResolver snapshots the subject catalog once and returns the
// name→code resolution used for ledger keys: catalog entry, then the fixed
// table, then the synthesized fallback.
func (s *enrollmentService) codeResolver(ctx context.Context) (func(string) string, error) {
	subjects, err := s.catalog.ListSubjects(ctx)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]string, len(subjects))
	for _, sub := range subjects {
		byName[strings.ToLower(sub.Name)] = sub.Code
	}
	return func(name string) string {
		if code, ok := byName[strings.ToLower(name)]; ok {
			return code
		}
		if code, ok := models.SubjectNameToCode[name]; ok {
			return code
		}
		return models.FallbackCode(name)
	}, nil
}

// studentName reverse-resolves a roll to the username it was issued to,
// falling back to the roll itself for rolls imported from outside the
// registry.
func (s *enrollmentService) studentName(ctx context.Context, roll string) (string, error) {
	reg, lerr := s.repo.Rolls().Load(ctx)
	reg, err := recoverLoad(s.logger, reg, lerr)
	if err != nil {
		return "", err
	}
	for name, r := range reg.Namespace(models.RoleStudent).Names {
		if r == roll {
			return name, nil
		}
	}
	return roll, nil
}
