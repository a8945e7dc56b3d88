package report_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"go-ems/internal/payroll"
	"go-ems/internal/report"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

var sampleTxns = []payroll.TransactionResponse{
	{
		EmployeeID:    "EMP001",
		EmployeeName:  "Alice",
		Amount:        5000,
		Month:         "2024-03",
		ProcessedDate: "2024-03-31T10:00:00Z",
	},
	{
		EmployeeID:    "EMP002",
		EmployeeName:  "Bob",
		Amount:        1234.56,
		Month:         "2024-03",
		ProcessedDate: "2024-03-31T11:00:00Z",
	},
}

func readRows(t *testing.T, data []byte) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	assert.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Report")
	assert.NoError(t, err)
	return rows
}

func TestBuildXLSX_EmptyInput(t *testing.T) {
	data, err := report.BuildXLSX(nil)
	assert.NoError(t, err)

	rows := readRows(t, data)
	assert.Len(t, rows, 1)
	assert.Equal(t, []string{"ID", "Name", "Amount", "Month", "Date"}, rows[0])
}

func TestBuildXLSX_RowsMatchInputOrder(t *testing.T) {
	data, err := report.BuildXLSX(sampleTxns)
	assert.NoError(t, err)

	rows := readRows(t, data)
	assert.Len(t, rows, len(sampleTxns)+1)

	assert.Equal(t, []string{"EMP001", "Alice", "5000", "2024-03", "2024-03-31T10:00:00Z"}, rows[1])
	assert.Equal(t, []string{"EMP002", "Bob", "1234.56", "2024-03", "2024-03-31T11:00:00Z"}, rows[2])
}

func TestBuildXLSX_Deterministic(t *testing.T) {
	first, err := report.BuildXLSX(sampleTxns)
	assert.NoError(t, err)
	second, err := report.BuildXLSX(sampleTxns)
	assert.NoError(t, err)

	// Byte-identity is not guaranteed by the format, but the table is.
	assert.Equal(t, readRows(t, first), readRows(t, second))
}

func TestBuildCSV_EmptyInput(t *testing.T) {
	data, err := report.BuildCSV(nil)
	assert.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, []string{"ID", "Name", "Amount", "Month", "Date"}, records[0])
}

func TestBuildCSV_RowsMatchInputOrder(t *testing.T) {
	data, err := report.BuildCSV(sampleTxns)
	assert.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, len(sampleTxns)+1)
	assert.Equal(t, []string{"EMP001", "Alice", "5000", "2024-03", "2024-03-31T10:00:00Z"}, records[1])
	assert.Equal(t, []string{"EMP002", "Bob", "1234.56", "2024-03", "2024-03-31T11:00:00Z"}, records[2])
}
