package render

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"smartsales365/internal/domain/prompt"
	"smartsales365/internal/domain/reportdata"
)

const excelSheet = "Reporte"

// ExcelRenderer writes the dataset to a single-sheet workbook: title and
// description at the top, then the summary pairs, then each detail table.
type ExcelRenderer struct{}

func NewExcelRenderer() *ExcelRenderer {
	return &ExcelRenderer{}
}

func (r *ExcelRenderer) Render(params prompt.Params, data reportdata.Dataset) ([]byte, error) {
	l := buildLayout(params, data)

	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(excelSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDDDDD"}},
	})
	if err != nil {
		return nil, err
	}

	row := 1
	if err := f.SetCellValue(excelSheet, cell(1, row), l.title); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(excelSheet, cell(1, row), cell(1, row), titleStyle); err != nil {
		return nil, err
	}
	row++

	if params.Description != "" {
		if err := f.SetCellValue(excelSheet, cell(1, row), params.Description); err != nil {
			return nil, err
		}
		row++
	}
	row++

	for _, pair := range l.summary {
		if err := f.SetCellValue(excelSheet, cell(1, row), pair[0]); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(excelSheet, cell(2, row), pair[1]); err != nil {
			return nil, err
		}
		row++
	}

	for _, t := range l.tables {
		if len(t.rows) == 0 {
			continue
		}
		row++
		if err := f.SetCellValue(excelSheet, cell(1, row), t.title); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(excelSheet, cell(1, row), cell(1, row), titleStyle); err != nil {
			return nil, err
		}
		row++

		for col, h := range t.header {
			if err := f.SetCellValue(excelSheet, cell(col+1, row), h); err != nil {
				return nil, err
			}
		}
		if err := f.SetCellStyle(excelSheet, cell(1, row), cell(len(t.header), row), headerStyle); err != nil {
			return nil, err
		}
		row++

		for _, line := range t.rows {
			for col, v := range line {
				if err := f.SetCellValue(excelSheet, cell(col+1, row), v); err != nil {
					return nil, err
				}
			}
			row++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *ExcelRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (r *ExcelRenderer) FileExtension() string {
	return "xlsx"
}

func cell(col, row int) string {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Sprintf("A%d", row)
	}
	return name
}
