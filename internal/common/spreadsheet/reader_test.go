package spreadsheet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"chatbot-trainprep/internal/models"
)

var defaultColumns = Columns{Question: "Question", Answer: "Answer"}

func writeWorkbook(t *testing.T, sheet string, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
	}
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cellRef, &row))
	}

	path := filepath.Join(t.TempDir(), "faq.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "faq.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadRows_Workbook(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", [][]interface{}{
		{"ID", "Question", "Answer"},
		{1, "What is a heart attack?", "A blockage of blood flow."},
		{2, "Hello", "Hi!"},
	})

	rows, err := ReadRows(path, defaultColumns)
	require.NoError(t, err)
	assert.Equal(t, []models.TrainingRow{
		{Line: 2, Question: "What is a heart attack?", Answer: "A blockage of blood flow."},
		{Line: 3, Question: "Hello", Answer: "Hi!"},
	}, rows)
}

func TestReadRows_WorkbookShortRow(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", [][]interface{}{
		{"Question", "Answer"},
		{"Question without answer"},
	})

	rows, err := ReadRows(path, defaultColumns)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Question without answer", rows[0].Question)
	assert.Equal(t, "", rows[0].Answer)
}

func TestReadRows_NamedSheet(t *testing.T) {
	path := writeWorkbook(t, "FAQ", [][]interface{}{
		{"Answer", "Question"},
		{"Hi!", "Hello"},
	})

	rows, err := ReadRows(path, Columns{Sheet: "FAQ", Question: "Question", Answer: "Answer"})
	require.NoError(t, err)
	assert.Equal(t, []models.TrainingRow{{Line: 2, Question: "Hello", Answer: "Hi!"}}, rows)
}

func TestReadRows_CSV(t *testing.T) {
	path := writeCSV(t, "\ufeffQuestion, Answer ,Notes\n"+
		"\"What is a stroke?\",\"Loss of blood flow to the brain, often sudden.\",x\n"+
		"Hello,Hi!\n")

	rows, err := ReadRows(path, defaultColumns)
	require.NoError(t, err)
	assert.Equal(t, []models.TrainingRow{
		{Line: 2, Question: "What is a stroke?", Answer: "Loss of blood flow to the brain, often sudden."},
		{Line: 3, Question: "Hello", Answer: "Hi!"},
	}, rows)
}

func TestReadRows_MissingColumn(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no answer column", "Question,Reply\nhi,hello\n"},
		{"no question column", "Prompt,Answer\nhi,hello\n"},
		{"empty file", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadRows(writeCSV(t, tt.content), defaultColumns)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrColumnNotFound)
		})
	}
}

func TestReadRows_UnreadableWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("not a zip archive"), 0644))

	_, err := ReadRows(path, defaultColumns)
	assert.Error(t, err)
}
