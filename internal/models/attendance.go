package models

import (
	"math"
	"strings"
	"time"
)

// DateLayout is the day-granularity stamp format used across the ledger
// and the exam schedule.
const DateLayout = "02/01/2006"

// SubjectAttendance is the per-subject session counter pair with its
// derived percentage. Invariant after every successful mutation:
// 0 <= TotalPresentDays <= TotalWorkingDays, and AttendancePercentage is
// round(present/working*100, 2), or 0.0 while no sessions are recorded.
type SubjectAttendance struct {
	SubjectName          string  `json:"subject_name"`
	TotalWorkingDays     int     `json:"total_working_days"`
	TotalPresentDays     int     `json:"total_present_days"`
	AttendancePercentage float64 `json:"attendance_percentage"`
	LastUpdated          string  `json:"last_updated"`
}

// Recompute rederives the percentage from the counters and stamps the
// record with today's date. Both mutation paths (single-session increment
// and absolute overwrite) converge on this formula.
func (sa *SubjectAttendance) Recompute(now time.Time) {
	sa.AttendancePercentage = Percentage(sa.TotalPresentDays, sa.TotalWorkingDays)
	sa.LastUpdated = now.Format(DateLayout)
}

// Percentage is round(present/working*100, 2); 0.0 when working is zero.
func Percentage(present, working int) float64 {
	if working <= 0 {
		return 0.0
	}
	return math.Round(float64(present)/float64(working)*100*100) / 100
}

// AttendanceRecord is one student's ledger entry: identity snapshot plus
// the subject-code→counters map. Entries are created once per
// (roll, subject code) pair and only ever updated, never removed.
type AttendanceRecord struct {
	Roll     string                        `json:"roll"`
	Name     string                        `json:"name"`
	Section  string                        `json:"section"`
	Subjects map[string]*SubjectAttendance `json:"subjects"`
}

// NewAttendanceRecord builds a zeroed record for a roll enrolled into
// section with the given curriculum. Subjects are keyed by resolved code;
// resolve maps a subject name to its canonical or fallback code.
func NewAttendanceRecord(roll, name, section string, curriculum []string, resolve func(string) string, now time.Time) *AttendanceRecord {
	rec := &AttendanceRecord{
		Roll:     roll,
		Name:     name,
		Section:  section,
		Subjects: make(map[string]*SubjectAttendance, len(curriculum)),
	}
	for _, subjectName := range curriculum {
		rec.Subjects[resolve(subjectName)] = &SubjectAttendance{
			SubjectName: subjectName,
			LastUpdated: now.Format(DateLayout),
		}
	}
	return rec
}

// ResolveSubject finds the ledger key for subjectKey: exact code match
// first, then case-insensitive subject-name match. Returns the key and
// whether one was found.
func (r *AttendanceRecord) ResolveSubject(subjectKey string) (string, bool) {
	if _, ok := r.Subjects[subjectKey]; ok {
		return subjectKey, true
	}
	for code, sa := range r.Subjects {
		if strings.EqualFold(sa.SubjectName, subjectKey) {
			return code, true
		}
	}
	return "", false
}
