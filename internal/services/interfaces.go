package services

import (
	"context"

	"github.com/edutrack/ledger-service/internal/models"
)

// ===== REQUEST DTOs =====

type AddSubjectRequest struct {
	Code string `json:"code" validate:"required,max=16"`
	Name string `json:"name" validate:"required,max=100"`
}

type AddSectionRequest struct {
	Code string `json:"code" validate:"required,max=8"`
}

type SetCurriculumRequest struct {
	Section  string   `json:"section" validate:"required,max=8"`
	Subjects []string `json:"subjects" validate:"required,min=1,dive,required"`
}

type EnrollRequest struct {
	Roll    string `json:"roll" validate:"required,max=16"`
	Section string `json:"section" validate:"required,max=8"`
}

type MarkSessionRequest struct {
	Roll       string `json:"roll" validate:"required,max=16"`
	SubjectKey string `json:"subject_key" validate:"required,max=100"`
	Present    bool   `json:"present"`
}

type SetTotalsRequest struct {
	Roll        string `json:"roll" validate:"required,max=16"`
	SubjectKey  string `json:"subject_key" validate:"required,max=100"`
	WorkingDays int    `json:"working_days" validate:"min=0"`
	PresentDays int    `json:"present_days" validate:"min=0"`
}

type SetExamDateRequest struct {
	SubjectCode string `json:"subject_code" validate:"required,max=16"`
	ExamDate    string `json:"exam_date" validate:"required"`
}

type AssignSectionsRequest struct {
	Teacher  string   `json:"teacher" validate:"required,max=64"`
	Sections []string `json:"sections" validate:"required,min=1,dive,required"`
}

type AddTopicRequest struct {
	Teacher string `json:"teacher" validate:"required,max=64"`
	Section string `json:"section" validate:"required,max=8"`
	Topic   string `json:"topic" validate:"required,max=200"`
}

// ===== RESPONSE DTOs =====

// EnrollResult describes what an enrollment materialized.
type EnrollResult struct {
	Roll          string   `json:"roll"`
	Section       string   `json:"section"`
	Curriculum    []string `json:"curriculum"`
	RecordCreated bool     `json:"record_created"`
}

// AttendanceSummary is the read-only per-subject breakdown for one roll.
type AttendanceSummary struct {
	Roll     string                    `json:"roll"`
	Name     string                    `json:"name"`
	Section  string                    `json:"section"`
	Subjects []SubjectAttendanceReport `json:"subjects"`
}

// SubjectAttendanceReport is one summarized ledger row.
type SubjectAttendanceReport struct {
	SubjectCode string  `json:"subject_code"`
	SubjectName string  `json:"subject_name"`
	WorkingDays int     `json:"total_working_days"`
	PresentDays int     `json:"total_present_days"`
	Percentage  float64 `json:"attendance_percentage"`
	LastUpdated string  `json:"last_updated"`
}

// ExamEntry pairs a subject with its scheduled date ("Not set" when none).
type ExamEntry struct {
	SubjectCode string `json:"subject_code"`
	SubjectName string `json:"subject_name"`
	ExamDate    string `json:"exam_date"`
}

// SectionExamSchedule is a section's exam view. SectionSpecific is false
// when the section has no curriculum allocation and the full subject
// catalog is shown instead.
type SectionExamSchedule struct {
	Section         string      `json:"section"`
	SectionSpecific bool        `json:"section_specific"`
	Entries         []ExamEntry `json:"entries"`
}

// ===== SERVICE INTERFACES =====

// RegistryService allocates and resolves roll numbers per role namespace.
type RegistryService interface {
	// GetOrCreateRoll returns the existing roll for (name, role), or
	// allocates one when createIfMissing is true. With createIfMissing
	// false it behaves like FindRoll.
	GetOrCreateRoll(ctx context.Context, name string, role models.Role, createIfMissing bool) (string, error)
	// FindRoll is the read-only lookup; ErrRollNotFound when absent.
	FindRoll(ctx context.Context, name string, role models.Role) (string, error)
}

// CatalogService owns subjects, sections and curricula.
type CatalogService interface {
	ListSubjects(ctx context.Context) ([]models.Subject, error)
	// ResolveCode maps a subject name to its canonical code, falling back
	// to a deterministic synthesized code. It never registers a subject.
	ResolveCode(ctx context.Context, name string) (string, error)
	AddSubject(ctx context.Context, req *AddSubjectRequest) (*models.Subject, error)
	AddSection(ctx context.Context, req *AddSectionRequest) (*models.Section, error)
	ListSections(ctx context.Context) ([]models.Section, error)
	SetCurriculum(ctx context.Context, req *SetCurriculumRequest) error
	// CurriculumForSection returns the ordered subject names for the
	// section: explicit map first, then the family table, else empty.
	CurriculumForSection(ctx context.Context, sectionCode string) ([]string, error)
}

// EnrollmentService binds rolls to sections and materializes the binding
// into the profile cache and the attendance ledger. It also hosts the bulk
// initializer, which shares the create-if-absent record primitive.
type EnrollmentService interface {
	Enroll(ctx context.Context, req *EnrollRequest) (*EnrollResult, error)
	// Binding returns the authoritative section for a roll;
	// ErrRollNotFound when the roll has never been enrolled.
	Binding(ctx context.Context, roll string) (string, error)
	// InitializeAll backfills missing attendance records for every
	// recorded enrollment and returns how many records it created.
	InitializeAll(ctx context.Context) (int, error)
}

// AttendanceService owns the per-student per-subject session counters.
type AttendanceService interface {
	MarkSession(ctx context.Context, req *MarkSessionRequest) (*SubjectAttendanceReport, error)
	SetTotals(ctx context.Context, req *SetTotalsRequest) (*SubjectAttendanceReport, error)
	Summarize(ctx context.Context, roll string) (*AttendanceSummary, error)
	// Records exposes the whole ledger read-only, for reporting callers.
	Records(ctx context.Context) ([]*models.AttendanceRecord, error)
}

// ExamService keeps the subject exam schedule.
type ExamService interface {
	SetExamDate(ctx context.Context, req *SetExamDateRequest) (*models.ExamDate, error)
	AllExamDates(ctx context.Context) ([]ExamEntry, error)
	SectionExamDates(ctx context.Context, sectionCode string) (*SectionExamSchedule, error)
}

// TeacherService keeps teacher→section assignments.
type TeacherService interface {
	AssignSections(ctx context.Context, req *AssignSectionsRequest) ([]string, error)
	SectionsFor(ctx context.Context, teacher string) ([]string, error)
}

// TopicService logs topics covered per section.
type TopicService interface {
	AddTopic(ctx context.Context, req *AddTopicRequest) (*models.Topic, error)
	TopicsForSection(ctx context.Context, sectionCode string) ([]models.Topic, error)
}

// ===== SERVICE MANAGER =====

// ServiceManager wires and exposes all engine services.
type ServiceManager interface {
	Registry() RegistryService
	Catalog() CatalogService
	Enrollment() EnrollmentService
	Attendance() AttendanceService
	Exams() ExamService
	Teachers() TeacherService
	Topics() TopicService

	HealthCheck(ctx context.Context) error
}
