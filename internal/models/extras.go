package models

// TeacherSections maps a teacher username to the sorted set of section
// codes they are assigned to.
type TeacherSections struct {
	Teacher  string   `json:"teacher"`
	Sections []string `json:"sections"`
}

// ExamDate records the scheduled exam date for one subject, keyed by
// uppercase subject code. Dates use DateLayout (DD/MM/YYYY).
type ExamDate struct {
	SubjectCode string `json:"subject_code"`
	SubjectName string `json:"subject_name"`
	ExamDate    string `json:"exam_date"`
}

// Topic is one covered-topic log entry for a section.
type Topic struct {
	Section string `json:"section"`
	Teacher string `json:"teacher"`
	Topic   string `json:"topic"`
	Date    string `json:"date"`
}
