package repositories

import (
	"context"

	"github.com/edutrack/ledger-service/internal/models"
)

// Every store follows the same contract: Load reads the entire backing
// file and Save overwrites it wholesale. There is no partial update and no
// append path; a mutation is always a load → modify → save cycle performed
// by exactly one logical writer.
//
// A missing file loads as the empty value with a nil error. A file that
// exists but cannot be parsed loads as the empty value with a *LoadError,
// leaving the recovery decision to the caller.

// RollStore persists the role-namespaced roll-number registry.
type RollStore interface {
	Load(ctx context.Context) (*models.RollRegistry, error)
	Save(ctx context.Context, reg *models.RollRegistry) error
}

// SubjectStore persists the subject catalog in insertion order.
type SubjectStore interface {
	Load(ctx context.Context) ([]models.Subject, error)
	Save(ctx context.Context, subjects []models.Subject) error
}

// SectionStore persists section codes with their curricula.
type SectionStore interface {
	Load(ctx context.Context) ([]models.Section, error)
	Save(ctx context.Context, sections []models.Section) error
}

// EnrollmentStore persists the authoritative roll→section bindings.
type EnrollmentStore interface {
	Load(ctx context.Context) ([]models.EnrollmentBinding, error)
	Save(ctx context.Context, bindings []models.EnrollmentBinding) error
}

// ProfileStore persists the materialized student-subject profiles.
type ProfileStore interface {
	Load(ctx context.Context) ([]models.StudentSubjectProfile, error)
	Save(ctx context.Context, profiles []models.StudentSubjectProfile) error
}

// AttendanceStore persists the per-student attendance ledger.
type AttendanceStore interface {
	Load(ctx context.Context) ([]*models.AttendanceRecord, error)
	Save(ctx context.Context, records []*models.AttendanceRecord) error
}

// TeacherSectionStore persists teacher→sections assignments.
type TeacherSectionStore interface {
	Load(ctx context.Context) ([]models.TeacherSections, error)
	Save(ctx context.Context, assignments []models.TeacherSections) error
}

// ExamDateStore persists the subject-code→exam-date schedule.
type ExamDateStore interface {
	Load(ctx context.Context) ([]models.ExamDate, error)
	Save(ctx context.Context, dates []models.ExamDate) error
}

// TopicStore persists the covered-topics log.
type TopicStore interface {
	Load(ctx context.Context) ([]models.Topic, error)
	Save(ctx context.Context, topics []models.Topic) error
}

// Repository aggregates the per-entity stores.
type Repository interface {
	Rolls() RollStore
	Subjects() SubjectStore
	Sections() SectionStore
	Enrollments() EnrollmentStore
	Profiles() ProfileStore
	Attendance() AttendanceStore
	TeacherSections() TeacherSectionStore
	ExamDates() ExamDateStore
	Topics() TopicStore

	// Ping verifies the backing directory is usable.
	Ping(ctx context.Context) error

	Close() error
}
