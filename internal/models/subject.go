package models

import "strings"

// Subject is a catalog entry. Code is the unique uppercase canonical id
// (e.g. TMA101); subjects are created by administrative action and never
// physically deleted by the engine.
type Subject struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// SubjectNameToCode is the fixed table mapping the standard curriculum
// subject names to their canonical codes. Names outside this table resolve
// to a synthesized fallback code (see FallbackCode).
var SubjectNameToCode = map[string]string{
	"Basic Maths":             "TMA101",
	"English-I":               "TEA101",
	"C Lang":                  "TCA101",
	"Electronics":             "TEC101",
	"English-III":             "TEA301",
	"Maths-III":               "TMA301",
	"Computer Networking":     "TCN101",
	"DSA":                     "TCS101",
	"Artificial Intelligence": "TAI101",
	"Operating System":        "TOS01",
	"English-V":               "TEA501",
	"Machine Learning":        "TML101",
	"Algorithm":               "TAL101",
	"OOP":                     "TOP101",
	"Database":                "TDB101",
}

// FallbackCode synthesizes a deterministic code for a subject name that has
// no canonical entry: uppercased, spaces replaced with underscores. The
// result identifies the subject in ledger keys but does NOT register it in
// the catalog.
func FallbackCode(name string) string {
	return strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(name)), " ", "_")
}
