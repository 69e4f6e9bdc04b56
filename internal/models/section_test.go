package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFamilyCurriculum(t *testing.T) {
	t.Run("first year family", func(t *testing.T) {
		want := []string{"Basic Maths", "English-I", "C Lang", "Electronics", "Computer Networking"}
		for _, code := range []string{"AI", "BI", "CI", "DI"} {
			assert.Equal(t, want, FamilyCurriculum(code), "section %s", code)
		}
	})

	t.Run("third semester family", func(t *testing.T) {
		got := FamilyCurriculum("CIII")
		assert.Equal(t, []string{"DSA", "English-III", "Maths-III", "Artificial Intelligence", "Operating System"}, got)
	})

	t.Run("fifth semester family", func(t *testing.T) {
		got := FamilyCurriculum("DV")
		assert.Equal(t, []string{"English-V", "Machine Learning", "Algorithm", "OOP", "Database"}, got)
	})

	t.Run("unknown code gets nil", func(t *testing.T) {
		assert.Nil(t, FamilyCurriculum("Z9"))
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		first := FamilyCurriculum("AI")
		first[0] = "mutated"
		assert.Equal(t, "Basic Maths", FamilyCurriculum("AI")[0])
	})
}

func TestFallbackCode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "spaces to underscores", in: "Quantum Computing", want: "QUANTUM_COMPUTING"},
		{name: "already uppercase", in: "DSA", want: "DSA"},
		{name: "trims whitespace", in: "  C Lang  ", want: "C_LANG"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FallbackCode(tt.in))
		})
	}
}

func TestRollFormat(t *testing.T) {
	assert.Equal(t, "20250001", fmt.Sprintf(RoleStudent.RollFormat(), 1))
	assert.Equal(t, "T0007", fmt.Sprintf(RoleTeacher.RollFormat(), 7))
	assert.Equal(t, "A0123", fmt.Sprintf(RoleAdmin.RollFormat(), 123))
}
