package models

// Section is an uppercase section code with its curriculum: the ordered
// list of subject names taught in that section. A curriculum captured into
// a student's profile or ledger at enrollment time is not retroactively
// synced when the section is edited later; that drift is intentional.
type Section struct {
	Code       string   `json:"code"`
	Curriculum []string `json:"curriculum"`
}

// familyCurricula maps the standard section families to their fixed
// curricula. Sections created with one of these codes are auto-populated.
var familyCurricula = map[string][]string{
	"AI": {"Basic Maths", "English-I", "C Lang", "Electronics", "Computer Networking"},
	"AIII": {"DSA", "English-III", "Maths-III", "Artificial Intelligence", "Operating System"},
	"AV": {"English-V", "Machine Learning", "Algorithm", "OOP", "Database"},
}

// familyAliases lists every member of each section family keyed by its
// representative code.
var familyAliases = map[string]string{
	"AI": "AI", "BI": "AI", "CI": "AI", "DI": "AI",
	"AIII": "AIII", "BIII": "AIII", "CIII": "AIII", "DIII": "AIII",
	"AV": "AV", "BV": "AV", "CV": "AV", "DV": "AV",
}

// FamilyCurriculum returns the fixed curriculum for a section code that
// belongs to one of the standard families (first-year I, third-semester
// III, fifth-semester V sections), or nil when the code is not part of any
// family.
func FamilyCurriculum(code string) []string {
	rep, ok := familyAliases[code]
	if !ok {
		return nil
	}
	src := familyCurricula[rep]
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// EnrollmentBinding is the authoritative roll→section record: the single
// source of truth for what section a student is in.
type EnrollmentBinding struct {
	Roll    string `json:"roll"`
	Section string `json:"section"`
}

// StudentSubjectProfile is the materialized curriculum-at-enrollment-time
// cache for one roll. It is re-derived wholesale whenever the roll's
// enrollment binding changes.
type StudentSubjectProfile struct {
	Roll     string   `json:"roll"`
	Section  string   `json:"section"`
	Subjects []string `json:"subjects"`
}
