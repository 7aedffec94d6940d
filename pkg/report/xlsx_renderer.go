package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Renderer interface {
	Render(sheet Sheet, path string) error
}

type XlsxRendererImpl struct {
}

func NewXlsxRenderer() *XlsxRendererImpl {
	return &XlsxRendererImpl{}
}

// Render writes the sheet as a single-sheet workbook. Hours are numeric cells,
// absent hours are left empty.
func (r *XlsxRendererImpl) Render(sheet Sheet, path string) error {
	if path == "" {
		return errors.New("output path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	file := excelize.NewFile()
	defer func() {
		_ = file.Close()
	}()

	if err := file.SetSheetName(file.GetSheetName(0), sheet.Name); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	for col, title := range sheet.Headers {
		if err := setCell(file, sheet.Name, col+1, 1, title); err != nil {
			return err
		}
	}

	rows := make([]Row, 0, len(sheet.Rows)+1)
	rows = append(rows, sheet.Rows...)
	rows = append(rows, sheet.Totals)
	for i, row := range rows {
		rowNum := i + 2
		if err := setCell(file, sheet.Name, 1, rowNum, row.Label); err != nil {
			return err
		}
		for j, value := range row.Values {
			hours, ok := value.Get()
			if !ok {
				continue
			}
			if err := setCell(file, sheet.Name, j+2, rowNum, hours); err != nil {
				return err
			}
		}
	}

	for i, width := range sheet.ColumnWidths() {
		colName, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("convert column %d: %w", i+1, err)
		}
		if err := file.SetColWidth(sheet.Name, colName, colName, float64(width)); err != nil {
			return fmt.Errorf("set width for %s: %w", colName, err)
		}
	}

	if err := file.SaveAs(path); err != nil {
		log.Errorf("Error writing report %s: %v", path, err)
		return fmt.Errorf("save xlsx: %w", err)
	}
	return nil
}

func setCell(file *excelize.File, sheetName string, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("convert cell (%d,%d): %w", col, row, err)
	}
	if err := file.SetCellValue(sheetName, cell, value); err != nil {
		return fmt.Errorf("write %s: %w", cell, err)
	}
	return nil
}
