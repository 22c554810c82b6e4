package spreadsheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"chatbot-trainprep/internal/models"
)

var ErrColumnNotFound = errors.New("column not found")

// Columns names the header cells holding the question and the answer.
type Columns struct {
	Sheet    string
	Question string
	Answer   string
}

// ReadRows loads every data row of the sheet. The first row is the header;
// columns other than Question and Answer are ignored and row order is kept.
// Files ending in .csv are read as CSV, everything else as an Excel workbook.
func ReadRows(path string, cols Columns) ([]models.TrainingRow, error) {
	var (
		records [][]string
		err     error
	)
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		records, err = readCSV(path)
	} else {
		records, err = readWorkbook(path, cols.Sheet)
	}
	if err != nil {
		return nil, err
	}
	return toRows(records, cols)
}

func readWorkbook(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	var records [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func toRows(records [][]string, cols Columns) ([]models.TrainingRow, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: sheet is empty", ErrColumnNotFound)
	}

	header := records[0]
	qIdx := indexOf(header, cols.Question)
	if qIdx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, cols.Question)
	}
	aIdx := indexOf(header, cols.Answer)
	if aIdx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, cols.Answer)
	}

	rows := make([]models.TrainingRow, 0, len(records)-1)
	for i, rec := range records[1:] {
		rows = append(rows, models.TrainingRow{
			Line:     i + 2,
			Question: cell(rec, qIdx),
			Answer:   cell(rec, aIdx),
		})
	}
	return rows, nil
}

func indexOf(header []string, name string) int {
	for i, h := range header {
		if strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")) == name {
			return i
		}
	}
	return -1
}

// cell tolerates short rows; excelize drops trailing empty cells.
func cell(rec []string, idx int) string {
	if idx < len(rec) {
		return rec[idx]
	}
	return ""
}
