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

type topicService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	teachers  TeacherService
}

// NewTopicService builds the covered-topics log service.
func NewTopicService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator, teachers TeacherService) TopicService {
	return &topicService{repo: repo, logger: logger, validator: v, teachers: teachers}
}

// AddTopic appends a covered-topic entry. The teacher must be assigned to
// the section they are logging for.
func (s *topicService) AddTopic(ctx context.Context, req *AddTopicRequest) (*models.Topic, error) {
	if verrs := s.validator.Validate(req); verrs != nil {
		return nil, verrs
	}
	teacher := strings.TrimSpace(req.Teacher)
	section := strings.ToUpper(strings.TrimSpace(req.Section))

	assigned, err := s.teachers.SectionsFor(ctx, teacher)
	if err != nil {
		return nil, err
	}
	ok := false
	for _, sec := range assigned {
		if sec == section {
			ok = true
			break
		}
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s / %s", ErrNotAssigned, teacher, section)
	}

	topics, lerr := s.repo.Topics().Load(ctx)
	topics, err = recoverLoad(s.logger, topics, lerr)
	if err != nil {
		return nil, err
	}
	entry := models.Topic{
		Section: section,
		Teacher: teacher,
		Topic:   strings.TrimSpace(req.Topic),
		Date:    time.Now().Format(models.DateLayout),
	}
	topics = append(topics, entry)
	if err := s.repo.Topics().Save(ctx, topics); err != nil {
		return nil, persistErr(err)
	}
	s.logger.Info("topic logged", "teacher", teacher, "section", section, "topic", entry.Topic)
	return &entry, nil
}

func (s *topicService) TopicsForSection(ctx context.Context, sectionCode string) ([]models.Topic, error) {
	section := strings.ToUpper(strings.TrimSpace(sectionCode))
	topics, lerr := s.repo.Topics().Load(ctx)
	topics, err := recoverLoad(s.logger, topics, lerr)
	if err != nil {
		return nil, err
	}
	var out []models.Topic
	for _, t := range topics {
		if t.Section == section {
			out = append(out, t)
		}
	}
	return out, nil
}
