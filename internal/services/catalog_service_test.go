package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_AddSubject(t *testing.T) {
	ctx := context.Background()

	t.Run("stores uppercased code", func(t *testing.T) {
		m, _ := newTestEnv(t)
		sub, err := m.Catalog().AddSubject(ctx, &AddSubjectRequest{Code: "tma101", Name: "Basic Maths"})
		require.NoError(t, err)
		assert.Equal(t, "TMA101", sub.Code)
		assert.Equal(t, "Basic Maths", sub.Name)
	})

	t.Run("duplicate code is rejected case-insensitively", func(t *testing.T) {
		m, _ := newTestEnv(t)
		_, err := m.Catalog().AddSubject(ctx, &AddSubjectRequest{Code: "TMA101", Name: "Basic Maths"})
		require.NoError(t, err)
		_, err = m.Catalog().AddSubject(ctx, &AddSubjectRequest{Code: "tma101", Name: "Other Maths"})
		assert.ErrorIs(t, err, ErrDuplicateCode)
	})

	t.Run("missing fields fail validation", func(t *testing.T) {
		m, _ := newTestEnv(t)
		_, err := m.Catalog().AddSubject(ctx, &AddSubjectRequest{Code: "", Name: ""})
		assert.Error(t, err)
	})
}

func TestCatalogService_AddSection(t *testing.T) {
	ctx := context.Background()

	t.Run("family code auto-populates curriculum", func(t *testing.T) {
		m, _ := newTestEnv(t)
		sec, err := m.Catalog().AddSection(ctx, &AddSectionRequest{Code: "ai"})
		require.NoError(t, err)
		assert.Equal(t, "AI", sec.Code)
		assert.Equal(t, []string{"Basic Maths", "English-I", "C Lang", "Electronics", "Computer Networking"}, sec.Curriculum)
	})

	t.Run("non-family code starts empty", func(t *testing.T) {
		m, _ := newTestEnv(t)
		sec, err := m.Catalog().AddSection(ctx, &AddSectionRequest{Code: "Z9"})
		require.NoError(t, err)
		assert.Empty(t, sec.Curriculum)
	})

	t.Run("duplicate section is rejected", func(t *testing.T) {
		m, _ := newTestEnv(t)
		_, err := m.Catalog().AddSection(ctx, &AddSectionRequest{Code: "AI"})
		require.NoError(t, err)
		_, err = m.Catalog().AddSection(ctx, &AddSectionRequest{Code: "ai"})
		assert.ErrorIs(t, err, ErrDuplicateSection)
	})
}

func TestCatalogService_SetCurriculum(t *testing.T) {
	ctx := context.Background()

	t.Run("overrides the family default for future lookups", func(t *testing.T) {
		m, _ := newTestEnv(t)
		_, err := m.Catalog().AddSection(ctx, &AddSectionRequest{Code: "AI"})
		require.NoError(t, err)

		err = m.Catalog().SetCurriculum(ctx, &SetCurriculumRequest{Section: "AI", Subjects: []string{"Basic Maths", "DSA"}})
		require.NoError(t, err)

		got, err := m.Catalog().CurriculumForSection(ctx, "AI")
		require.NoError(t, err)
		assert.Equal(t, []string{"Basic Maths", "DSA"}, got)
	})

	t.Run("unknown section is rejected", func(t *testing.T) {
		m, _ := newTestEnv(t)
		err := m.Catalog().SetCurriculum(ctx, &SetCurriculumRequest{Section: "Z9", Subjects: []string{"DSA"}})
		assert.ErrorIs(t, err, ErrUnknownSection)
	})
}

func TestCatalogService_CurriculumForSection(t *testing.T) {
	ctx := context.Background()

	t.Run("family fallback without a stored section", func(t *testing.T) {
		m, _ := newTestEnv(t)
		got, err := m.Catalog().CurriculumForSection(ctx, "bv")
		require.NoError(t, err)
		assert.Equal(t, []string{"English-V", "Machine Learning", "Algorithm", "OOP", "Database"}, got)
	})

	t.Run("unknown section yields empty", func(t *testing.T) {
		m, _ := newTestEnv(t)
		got, err := m.Catalog().CurriculumForSection(ctx, "Z9")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestCatalogService_ResolveCode(t *testing.T) {
	ctx := context.Background()

	t.Run("catalog entry wins", func(t *testing.T) {
		m, _ := newTestEnv(t)
		_, err := m.Catalog().AddSubject(ctx, &AddSubjectRequest{Code: "XMA999", Name: "Basic Maths"})
		require.NoError(t, err)

		code, err := m.Catalog().ResolveCode(ctx, "basic maths")
		require.NoError(t, err)
		assert.Equal(t, "XMA999", code)
	})

	t.Run("fixed table covers standard names", func(t *testing.T) {
		m, _ := newTestEnv(t)
		code, err := m.Catalog().ResolveCode(ctx, "Operating System")
		require.NoError(t, err)
		assert.Equal(t, "TOS01", code)
	})

	t.Run("fallback synthesizes a code without registering", func(t *testing.T) {
		m, _ := newTestEnv(t)
		code, err := m.Catalog().ResolveCode(ctx, "Quantum Computing")
		require.NoError(t, err)
		assert.Equal(t, "QUANTUM_COMPUTING", code)

		subjects, err := m.Catalog().ListSubjects(ctx)
		require.NoError(t, err)
		assert.Empty(t, subjects)
	})

	t.Run("blank name is invalid", func(t *testing.T) {
		m, _ := newTestEnv(t)
		_, err := m.Catalog().ResolveCode(ctx, "  ")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
