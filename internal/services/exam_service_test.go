package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExamService_SetExamDate(t *testing.T) {
	ctx := context.Background()

	t.Run("sets and updates a date", func(t *testing.T) {
		m, _ := newTestEnv(t)
		_, err := m.Catalog().AddSubject(ctx, &AddSubjectRequest{Code: "TMA101", Name: "Basic Maths"})
		require.NoError(t, err)

		entry, err := m.Exams().SetExamDate(ctx, &SetExamDateRequest{SubjectCode: "tma101", ExamDate: "15/12/2025"})
		require.NoError(t, err)
		assert.Equal(t, "TMA101", entry.SubjectCode)
		assert.Equal(t, "Basic Maths", entry.SubjectName)
		assert.Equal(t, "15/12/2025", entry.ExamDate)

		entry, err = m.Exams().SetExamDate(ctx, &SetExamDateRequest{SubjectCode: "TMA101", ExamDate: "20/12/2025"})
		require.NoError(t, err)
		assert.Equal(t, "20/12/2025", entry.ExamDate)

		all, err := m.Exams().AllExamDates(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "20/12/2025", all[0].ExamDate)
	})

	t.Run("subject must exist in the catalog", func(t *testing.T) {
		m, _ := newTestEnv(t)
		_, err := m.Exams().SetExamDate(ctx, &SetExamDateRequest{SubjectCode: "TMA101", ExamDate: "15/12/2025"})
		assert.ErrorIs(t, err, ErrSubjectNotFound)
	})

	t.Run("malformed date is invalid input", func(t *testing.T) {
		m, _ := newTestEnv(t)
		_, err := m.Catalog().AddSubject(ctx, &AddSubjectRequest{Code: "TMA101", Name: "Basic Maths"})
		require.NoError(t, err)

		_, err = m.Exams().SetExamDate(ctx, &SetExamDateRequest{SubjectCode: "TMA101", ExamDate: "2025-12-15"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestExamService_AllExamDates(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestEnv(t)

	_, err := m.Catalog().AddSubject(ctx, &AddSubjectRequest{Code: "TMA101", Name: "Basic Maths"})
	require.NoError(t, err)
	_, err = m.Catalog().AddSubject(ctx, &AddSubjectRequest{Code: "TCA101", Name: "C Lang"})
	require.NoError(t, err)
	_, err = m.Exams().SetExamDate(ctx, &SetExamDateRequest{SubjectCode: "TMA101", ExamDate: "15/12/2025"})
	require.NoError(t, err)

	entries, err := m.Exams().AllExamDates(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byCode := map[string]string{}
	for _, e := range entries {
		byCode[e.SubjectCode] = e.ExamDate
	}
	assert.Equal(t, "15/12/2025", byCode["TMA101"])
	assert.Equal(t, "Not set", byCode["TCA101"])
}

func TestExamService_SectionExamDates(t *testing.T) {
	ctx := context.Background()

	t.Run("restricted to the section curriculum", func(t *testing.T) {
		m, _ := newTestEnv(t)
		_, err := m.Catalog().AddSection(ctx, &AddSectionRequest{Code: "AI"})
		require.NoError(t, err)

		schedule, err := m.Exams().SectionExamDates(ctx, "ai")
		require.NoError(t, err)
		assert.True(t, schedule.SectionSpecific)
		assert.Equal(t, "AI", schedule.Section)
		require.Len(t, schedule.Entries, 5)
		assert.Equal(t, "TMA101", schedule.Entries[0].SubjectCode)
		assert.Equal(t, "Not set", schedule.Entries[0].ExamDate)
	})

	t.Run("no curriculum falls back to the full catalog", func(t *testing.T) {
		m, _ := newTestEnv(t)
		_, err := m.Catalog().AddSection(ctx, &AddSectionRequest{Code: "Z9"})
		require.NoError(t, err)
		_, err = m.Catalog().AddSubject(ctx, &AddSubjectRequest{Code: "TMA101", Name: "Basic Maths"})
		require.NoError(t, err)

		schedule, err := m.Exams().SectionExamDates(ctx, "Z9")
		require.NoError(t, err)
		assert.False(t, schedule.SectionSpecific)
		require.Len(t, schedule.Entries, 1)
	})
}
