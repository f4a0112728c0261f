// Package xlsxexport builds the drawing-register workbook offered on
// project pages and by the export CLI.
package xlsxexport

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/domain"
)

// columns defines the register header row.
var columns = []string{
	"Drawing",
	"Category",
	"Status",
	"Revision",
	"Past Revisions",
	"Due Date",
	"Issued Date",
	"Last Updated",
	"Overdue",
}

// Writer builds a single-sheet drawing register workbook.
type Writer struct {
	file  *excelize.File
	sheet string
	row   int
}

// NewWriter creates a Writer with the given sheet name.
func NewWriter(sheetName string) (*Writer, error) {
	f := excelize.NewFile()
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("naming sheet: %w", err)
	}
	return &Writer{file: f, sheet: sheetName, row: 1}, nil
}

// WriteHeader writes the bold header row and sets column widths.
func (w *Writer) WriteHeader() error {
	style, err := w.file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, w.row)
		if err != nil {
			return err
		}
		if err := w.file.SetCellValue(w.sheet, cell, col); err != nil {
			return err
		}
		if err := w.file.SetCellStyle(w.sheet, cell, cell, style); err != nil {
			return err
		}
	}
	if err := w.file.SetColWidth(w.sheet, "A", "A", 36); err != nil {
		return err
	}
	if err := w.file.SetColWidth(w.sheet, "B", "I", 16); err != nil {
		return err
	}

	w.row++
	return nil
}

// WriteViews appends one row per drawing view.
func (w *Writer) WriteViews(views []domain.DrawingView) error {
	for i := range views {
		if err := w.writeRow(viewToRow(&views[i])); err != nil {
			return err
		}
	}
	return nil
}

// WriteTo serializes the workbook to wr.
func (w *Writer) WriteTo(wr io.Writer) (int64, error) {
	return w.file.WriteTo(wr)
}

// Close releases the underlying workbook resources.
func (w *Writer) Close() error {
	return w.file.Close()
}

func (w *Writer) writeRow(values []interface{}) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, w.row)
		if err != nil {
			return err
		}
		if err := w.file.SetCellValue(w.sheet, cell, v); err != nil {
			return err
		}
	}
	w.row++
	return nil
}

// viewToRow converts one drawing view to register cells. The status column
// carries the derived display label, never the raw lifecycle booleans, so
// the register always matches what the cards show.
func viewToRow(v *domain.DrawingView) []interface{} {
	return []interface{}{
		v.Drawing.Name,
		v.Drawing.Category,
		v.Display.Label,
		strconv.Itoa(v.Drawing.CurrentRevision),
		strconv.Itoa(len(v.Drawing.RevisionHistory)),
		formatDate(v.Drawing.DueDate),
		formatDate(v.Drawing.IssuedDate),
		formatDate(v.Drawing.UpdatedAt),
		formatBool(v.Overdue),
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatBool(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a project name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for Content-Disposition.
// Format: {sanitized_project_name}_register_{YYYY-MM-DD}.xlsx
func BuildFilename(projectName string, now time.Time) string {
	return fmt.Sprintf("%s_register_%s.xlsx", SanitizeFilename(projectName), now.Format("2006-01-02"))
}
