package dataset

import (
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

// FileRecord is one row of the filename/label report.
type FileRecord struct {
	Filename string
	Label    string
}

// LabelFromFilename derives a label from a filename: the segment after the
// last underscore of the base name, or empty when there is no underscore.
func LabelFromFilename(name string) string {
	base := BaseName(name)
	idx := strings.LastIndex(base, "_")
	if idx < 0 {
		return ""
	}
	return base[idx+1:]
}

// ScanFolder lists the regular files of dir with their derived labels, in
// directory order.
func ScanFolder(dir string) ([]FileRecord, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read folder %s: %w", dir, err)
	}

	var records []FileRecord
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		records = append(records, FileRecord{
			Filename: entry.Name(),
			Label:    LabelFromFilename(entry.Name()),
		})
	}
	return records, nil
}

// WriteWorkbook writes the records to an xlsx workbook with a filename and a
// label column on a "File Data" sheet.
func WriteWorkbook(records []FileRecord, path string) error {
	const sheet = "File Data"

	wb := excelize.NewFile()
	defer func() { _ = wb.Close() }()

	index, err := wb.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("cannot create sheet: %w", err)
	}
	wb.SetActiveSheet(index)
	if err := wb.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("cannot drop default sheet: %w", err)
	}

	if err := wb.SetCellValue(sheet, "A1", "filename"); err != nil {
		return err
	}
	if err := wb.SetCellValue(sheet, "B1", "label"); err != nil {
		return err
	}

	for i, record := range records {
		row := i + 2
		if err := wb.SetCellValue(sheet, fmt.Sprintf("A%d", row), record.Filename); err != nil {
			return err
		}
		if err := wb.SetCellValue(sheet, fmt.Sprintf("B%d", row), record.Label); err != nil {
			return err
		}
	}

	if err := wb.SaveAs(path); err != nil {
		return fmt.Errorf("cannot save workbook: %w", err)
	}
	return nil
}
