package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edutrack/ledger-service/internal/models"
)

func TestAttendanceService_MarkSession(t *testing.T) {
	ctx := context.Background()

	t.Run("present session advances both counters", func(t *testing.T) {
		m, _ := newTestEnv(t)
		roll := enrollStudent(t, m, "alice", "AI")

		report, err := m.Attendance().MarkSession(ctx, &MarkSessionRequest{Roll: roll, SubjectKey: "TMA101", Present: true})
		require.NoError(t, err)
		assert.Equal(t, 1, report.WorkingDays)
		assert.Equal(t, 1, report.PresentDays)
		assert.Equal(t, 100.0, report.Percentage)
		assert.Equal(t, time.Now().Format(models.DateLayout), report.LastUpdated)
	})

	t.Run("absent session advances only working days", func(t *testing.T) {
		m, _ := newTestEnv(t)
		roll := enrollStudent(t, m, "alice", "AI")

		report, err := m.Attendance().MarkSession(ctx, &MarkSessionRequest{Roll: roll, SubjectKey: "TMA101", Present: false})
		require.NoError(t, err)
		assert.Equal(t, 1, report.WorkingDays)
		assert.Equal(t, 0, report.PresentDays)
		assert.Equal(t, 0.0, report.Percentage)
	})

	t.Run("subject resolves by name as well as code", func(t *testing.T) {
		m, _ := newTestEnv(t)
		roll := enrollStudent(t, m, "alice", "AI")

		byName, err := m.Attendance().MarkSession(ctx, &MarkSessionRequest{Roll: roll, SubjectKey: "basic maths", Present: true})
		require.NoError(t, err)
		assert.Equal(t, "TMA101", byName.SubjectCode)
		assert.Equal(t, 1, byName.WorkingDays)

		byCode, err := m.Attendance().MarkSession(ctx, &MarkSessionRequest{Roll: roll, SubjectKey: "TMA101", Present: true})
		require.NoError(t, err)
		assert.Equal(t, 2, byCode.WorkingDays)
	})

	t.Run("unknown student", func(t *testing.T) {
		m, _ := newTestEnv(t)
		_, err := m.Attendance().MarkSession(ctx, &MarkSessionRequest{Roll: "20259999", SubjectKey: "TMA101", Present: true})
		assert.ErrorIs(t, err, ErrStudentNotFound)
	})

	t.Run("unknown subject leaves the ledger unchanged", func(t *testing.T) {
		m, _ := newTestEnv(t)
		roll := enrollStudent(t, m, "alice", "AI")

		_, err := m.Attendance().MarkSession(ctx, &MarkSessionRequest{Roll: roll, SubjectKey: "Quantum Computing", Present: true})
		assert.ErrorIs(t, err, ErrSubjectNotFound)

		summary, err := m.Attendance().Summarize(ctx, roll)
		require.NoError(t, err)
		for _, sub := range summary.Subjects {
			assert.Equal(t, 0, sub.WorkingDays)
		}
	})
}

func TestAttendanceService_SetTotals(t *testing.T) {
	ctx := context.Background()

	t.Run("overwrites counters and recomputes", func(t *testing.T) {
		m, _ := newTestEnv(t)
		roll := enrollStudent(t, m, "alice", "AI")

		report, err := m.Attendance().SetTotals(ctx, &SetTotalsRequest{Roll: roll, SubjectKey: "TMA101", WorkingDays: 10, PresentDays: 7})
		require.NoError(t, err)
		assert.Equal(t, 10, report.WorkingDays)
		assert.Equal(t, 7, report.PresentDays)
		assert.Equal(t, 70.0, report.Percentage)
	})

	t.Run("present exceeding working is rejected before mutation", func(t *testing.T) {
		m, _ := newTestEnv(t)
		roll := enrollStudent(t, m, "alice", "AI")
		_, err := m.Attendance().SetTotals(ctx, &SetTotalsRequest{Roll: roll, SubjectKey: "TMA101", WorkingDays: 5, PresentDays: 8})
		assert.ErrorIs(t, err, ErrInvalidCounters)

		summary, err := m.Attendance().Summarize(ctx, roll)
		require.NoError(t, err)
		for _, sub := range summary.Subjects {
			assert.Equal(t, 0, sub.WorkingDays)
		}
	})

	t.Run("zero working days resets percentage", func(t *testing.T) {
		m, _ := newTestEnv(t)
		roll := enrollStudent(t, m, "alice", "AI")
		_, err := m.Attendance().SetTotals(ctx, &SetTotalsRequest{Roll: roll, SubjectKey: "TMA101", WorkingDays: 10, PresentDays: 7})
		require.NoError(t, err)

		report, err := m.Attendance().SetTotals(ctx, &SetTotalsRequest{Roll: roll, SubjectKey: "TMA101", WorkingDays: 0, PresentDays: 0})
		require.NoError(t, err)
		assert.Equal(t, 0.0, report.Percentage)
	})
}

func TestAttendanceService_Summarize(t *testing.T) {
	ctx := context.Background()

	t.Run("subjects are sorted by code", func(t *testing.T) {
		m, _ := newTestEnv(t)
		roll := enrollStudent(t, m, "alice", "AI")

		summary, err := m.Attendance().Summarize(ctx, roll)
		require.NoError(t, err)
		for i := 1; i < len(summary.Subjects); i++ {
			assert.Less(t, summary.Subjects[i-1].SubjectCode, summary.Subjects[i].SubjectCode)
		}
	})

	t.Run("unknown roll", func(t *testing.T) {
		m, _ := newTestEnv(t)
		_, err := m.Attendance().Summarize(ctx, "20259999")
		assert.ErrorIs(t, err, ErrStudentNotFound)
	})
}
