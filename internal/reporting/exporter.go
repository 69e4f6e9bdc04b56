// Package reporting builds read-only exports of the attendance ledger. It
// only ever consumes the ledger's read projection; it never mutates
// engine state.
package reporting

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/edutrack/ledger-service/internal/services"
)

const sheetName = "Attendance"

var headers = []string{
	"Roll", "Name", "Section",
	"Subject Code", "Subject",
	"Working Days", "Present Days", "Percentage", "Last Updated",
}

// Exporter writes attendance workbooks.
type Exporter struct {
	attendance services.AttendanceService
	logger     *slog.Logger
}

// NewExporter builds an Exporter over the ledger's read projection.
func NewExporter(attendance services.AttendanceService, logger *slog.Logger) *Exporter {
	return &Exporter{attendance: attendance, logger: logger}
}

// ExportWorkbook writes the full ledger to an xlsx file at path, one row
// per (roll, subject) pair, and returns the number of data rows written.
func (e *Exporter) ExportWorkbook(ctx context.Context, path string) (int, error) {
	records, err := e.attendance.Records(ctx)
	if err != nil {
		return 0, err
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Roll < records[j].Roll })

	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", sheetName)

	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return 0, fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return 0, fmt.Errorf("write header: %w", err)
		}
	}

	row := 2
	for _, rec := range records {
		codes := make([]string, 0, len(rec.Subjects))
		for code := range rec.Subjects {
			codes = append(codes, code)
		}
		sort.Strings(codes)
		for _, code := range codes {
			sa := rec.Subjects[code]
			values := []interface{}{
				rec.Roll, rec.Name, rec.Section,
				code, sa.SubjectName,
				sa.TotalWorkingDays, sa.TotalPresentDays, sa.AttendancePercentage, sa.LastUpdated,
			}
			for col, v := range values {
				cell, err := excelize.CoordinatesToCellName(col+1, row)
				if err != nil {
					return 0, fmt.Errorf("data cell: %w", err)
				}
				if err := f.SetCellValue(sheetName, cell, v); err != nil {
					return 0, fmt.Errorf("write row %d: %w", row, err)
				}
			}
			row++
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("create export dir: %w", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return 0, fmt.Errorf("save workbook: %w", err)
	}

	rows := row - 2
	e.logger.Info("attendance exported", "path", path, "rows", rows)
	return rows, nil
}
