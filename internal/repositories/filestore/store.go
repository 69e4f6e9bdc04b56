package filestore

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/edutrack/ledger-service/internal/models"
	"github.com/edutrack/ledger-service/internal/repositories"
)

// Store is the file-backed Repository implementation. One JSONL file per
// entity lives under the data directory.
type Store struct {
	dir string

	rolls           *rollStore
	subjects        *lineStore[models.Subject]
	sections        *lineStore[models.Section]
	enrollments     *lineStore[models.EnrollmentBinding]
	profiles        *lineStore[models.StudentSubjectProfile]
	attendance      *lineStore[*models.AttendanceRecord]
	teacherSections *lineStore[models.TeacherSections]
	examDates       *lineStore[models.ExamDate]
	topics          *lineStore[models.Topic]
}

// New creates the data directory if needed and returns a Store over it.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dir, err)
	}
	return &Store{
		dir:             dir,
		rolls:           &rollStore{ls: newLineStore[models.RollNamespace](dir, "rollnumbers.jsonl")},
		subjects:        newLineStore[models.Subject](dir, "subjects.jsonl"),
		sections:        newLineStore[models.Section](dir, "sections.jsonl"),
		enrollments:     newLineStore[models.EnrollmentBinding](dir, "enrollments.jsonl"),
		profiles:        newLineStore[models.StudentSubjectProfile](dir, "studentsubjects.jsonl"),
		attendance:      newLineStore[*models.AttendanceRecord](dir, "attendance.jsonl"),
		teacherSections: newLineStore[models.TeacherSections](dir, "teachersections.jsonl"),
		examDates:       newLineStore[models.ExamDate](dir, "examdates.jsonl"),
		topics:          newLineStore[models.Topic](dir, "topics.jsonl"),
	}, nil
}

func (s *Store) Rolls() repositories.RollStore                     { return s.rolls }
func (s *Store) Subjects() repositories.SubjectStore               { return s.subjects }
func (s *Store) Sections() repositories.SectionStore               { return s.sections }
func (s *Store) Enrollments() repositories.EnrollmentStore         { return s.enrollments }
func (s *Store) Profiles() repositories.ProfileStore               { return s.profiles }
func (s *Store) Attendance() repositories.AttendanceStore          { return s.attendance }
func (s *Store) TeacherSections() repositories.TeacherSectionStore { return s.teacherSections }
func (s *Store) ExamDates() repositories.ExamDateStore             { return s.examDates }
func (s *Store) Topics() repositories.TopicStore                   { return s.topics }

// Ping verifies the data directory still exists and is a directory.
func (s *Store) Ping(ctx context.Context) error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return fmt.Errorf("data dir %s: %w", s.dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("data dir %s: not a directory", s.dir)
	}
	return nil
}

// Close is a no-op; files are opened per operation.
func (s *Store) Close() error { return nil }

// rollStore adapts the namespace-per-line file to the RollRegistry model.
type rollStore struct {
	ls *lineStore[models.RollNamespace]
}

func (s *rollStore) Load(ctx context.Context) (*models.RollRegistry, error) {
	lines, err := s.ls.Load(ctx)
	if err != nil {
		return models.NewRollRegistry(), err
	}
	reg := models.NewRollRegistry()
	for i := range lines {
		ns := lines[i]
		if _, err := models.ParseRole(string(ns.Role)); err != nil {
			// Foreign namespace lines are preserved nowhere: the registry
			// only ever contains the three known roles.
			continue
		}
		slot := reg.Namespace(ns.Role)
		slot.Counter = ns.Counter
		if ns.Names != nil {
			slot.Names = ns.Names
		}
	}
	return reg, nil
}

func (s *rollStore) Save(ctx context.Context, reg *models.RollRegistry) error {
	lines := make([]models.RollNamespace, 0, len(reg.Namespaces))
	for _, role := range models.AllRoles {
		lines = append(lines, *reg.Namespace(role))
	}
	sort.SliceStable(lines, func(i, j int) bool { return lines[i].Role < lines[j].Role })
	return s.ls.Save(ctx, lines)
}
