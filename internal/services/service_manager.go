package services

import (
	"context"
	"log/slog"

	"github.com/edutrack/ledger-service/internal/repositories"
	"github.com/edutrack/ledger-service/internal/validator"
)

// serviceManager implements ServiceManager.
type serviceManager struct {
	repo   repositories.Repository
	logger *slog.Logger

	registry   RegistryService
	catalog    CatalogService
	enrollment EnrollmentService
	attendance AttendanceService
	exams      ExamService
	teachers   TeacherService
	topics     TopicService
}

// NewServiceManager wires every engine service over the given repository.
func NewServiceManager(repo repositories.Repository, logger *slog.Logger, v *validator.Validator) ServiceManager {
	catalog := NewCatalogService(repo, logger, v)
	teachers := NewTeacherService(repo, logger, v, catalog)
	return &serviceManager{
		repo:       repo,
		logger:     logger,
		registry:   NewRegistryService(repo, logger),
		catalog:    catalog,
		enrollment: NewEnrollmentService(repo, logger, v, catalog),
		attendance: NewAttendanceService(repo, logger, v),
		exams:      NewExamService(repo, logger, v, catalog),
		teachers:   teachers,
		topics:     NewTopicService(repo, logger, v, teachers),
	}
}

func (m *serviceManager) Registry() RegistryService     { return m.registry }
func (m *serviceManager) Catalog() CatalogService       { return m.catalog }
func (m *serviceManager) Enrollment() EnrollmentService { return m.enrollment }
func (m *serviceManager) Attendance() AttendanceService { return m.attendance }
func (m *serviceManager) Exams() ExamService            { return m.exams }
func (m *serviceManager) Teachers() TeacherService      { return m.teachers }
func (m *serviceManager) Topics() TopicService          { return m.topics }

func (m *serviceManager) HealthCheck(ctx context.Context) error {
	return m.repo.Ping(ctx)
}
