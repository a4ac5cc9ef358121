// Package spreadsheet reads the roster and score workbooks professors upload.
package spreadsheet

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

var (
	// ErrColumnMissing reports a workbook without the expected header columns.
	ErrColumnMissing = errors.New("required column missing")
	// ErrEmptySheet reports a workbook without any data rows.
	ErrEmptySheet = errors.New("sheet has no data rows")
)

// RosterRow is one student from a roster workbook (Name/Email columns).
type RosterRow struct {
	Name  string
	Email string
}

// ScoreRow is one student from a scores workbook (Name/Marks columns).
type ScoreRow struct {
	Name  string
	Marks int
}

// HasAllowedExtension reports whether the filename carries one of the two
// accepted spreadsheet extensions.
func HasAllowedExtension(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xls":
		return true
	}
	return false
}

// ParseRoster reads Name/Email pairs from the first sheet of a workbook.
func ParseRoster(r io.Reader) ([]RosterRow, error) {
	rows, header, err := readSheet(r)
	if err != nil {
		return nil, err
	}

	nameIdx, ok := header["Name"]
	if !ok {
		return nil, fmt.Errorf("%w: Name", ErrColumnMissing)
	}
	emailIdx, ok := header["Email"]
	if !ok {
		return nil, fmt.Errorf("%w: Email", ErrColumnMissing)
	}

	var roster []RosterRow
	for _, row := range rows {
		name := cellAt(row, nameIdx)
		email := cellAt(row, emailIdx)
		if name == "" && email == "" {
			continue
		}
		roster = append(roster, RosterRow{Name: name, Email: email})
	}
	return roster, nil
}

// ParseScores reads Name/Marks pairs from the first sheet of a workbook.
// Marks cells are coerced to integers; fractional values are truncated.
func ParseScores(r io.Reader) ([]ScoreRow, error) {
	rows, header, err := readSheet(r)
	if err != nil {
		return nil, err
	}

	nameIdx, ok := header["Name"]
	if !ok {
		return nil, fmt.Errorf("%w: Name", ErrColumnMissing)
	}
	marksIdx, ok := header["Marks"]
	if !ok {
		return nil, fmt.Errorf("%w: Marks", ErrColumnMissing)
	}

	var scores []ScoreRow
	for _, row := range rows {
		name := cellAt(row, nameIdx)
		if name == "" {
			continue
		}
		marks, err := coerceInt(cellAt(row, marksIdx))
		if err != nil {
			return nil, fmt.Errorf("invalid marks for %q: %w", name, err)
		}
		scores = append(scores, ScoreRow{Name: name, Marks: marks})
	}
	return scores, nil
}

// readSheet opens the workbook and returns its data rows plus a map of
// header name to column index.
func readSheet(r io.Reader) ([][]string, map[string]int, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil, ErrEmptySheet
	}

	header := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		header[cleanHeader(name)] = i
	}
	return rows[1:], header, nil
}

// cleanHeader strips the UTF-8 BOM some exports prepend, plus padding.
func cleanHeader(h string) string {
	h = strings.ReplaceAll(h, "\ufeff", "")
	return strings.TrimSpace(h)
}

func cellAt(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func coerceInt(cell string) (int, error) {
	if v, err := strconv.Atoi(cell); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}
