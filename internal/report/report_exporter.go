package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"go-ems/internal/payroll"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Report"

var headerColumns = []string{"ID", "Name", "Amount", "Month", "Date"}

// BuildXLSX renders payroll transactions as an in-memory workbook: one sheet
// named "Report", the fixed header row, then one row per transaction in input
// order. Values are copied verbatim; nothing is aggregated or recomputed.
func BuildXLSX(txns []payroll.TransactionResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetName)

	for i, col := range headerColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, col); err != nil {
			return nil, err
		}
	}

	for i, txn := range txns {
		row := i + 2
		values := []any{txn.EmployeeID, txn.EmployeeName, txn.Amount, txn.Month, txn.ProcessedDate}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// BuildCSV renders the same table as UTF-8 CSV.
func BuildCSV(txns []payroll.TransactionResponse) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(headerColumns); err != nil {
		return nil, err
	}
	for _, txn := range txns {
		record := []string{
			txn.EmployeeID,
			txn.EmployeeName,
			strconv.FormatFloat(txn.Amount, 'f', -1, 64),
			txn.Month,
			txn.ProcessedDate,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
