package report

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/martinsuchenak/vedgeip/internal/model"
)

// SheetName is the single worksheet in the spreadsheet report
const SheetName = "vEdgeData"

type sheetStyles struct {
	header int
	base   int
	wrap   int
}

// WriteSpreadsheet writes one row per device to an .xlsx file at path.
// Devices without interfaces keep their row with empty interface cells.
func WriteSpreadsheet(devices *model.DeviceSet, path string, keys []string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	styles, err := newSheetStyles(f)
	if err != nil {
		return err
	}

	for col, title := range model.HeaderRow(keys) {
		if err := setCell(f, col+1, 1, title, styles.header); err != nil {
			return err
		}
	}

	row := 2
	for _, device := range devices.Devices() {
		col := 1
		for _, key := range keys {
			if err := setCell(f, col, row, device.Field(key), styles.base); err != nil {
				return err
			}
			col++
		}
		if device.HasInterfaces() {
			names := strings.Join(device.Interfaces.Names(), "\n")
			addrs := strings.Join(device.Interfaces.Addresses(), "\n")
			if err := setCell(f, col, row, names, styles.wrap); err != nil {
				return err
			}
			if err := setCell(f, col+1, row, addrs, styles.wrap); err != nil {
				return err
			}
		}
		row++
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving spreadsheet: %w", err)
	}
	return nil
}

func newSheetStyles(f *excelize.File) (sheetStyles, error) {
	var s sheetStyles
	var err error

	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	if s.header, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 12},
		Border: border,
	}); err != nil {
		return s, fmt.Errorf("creating header style: %w", err)
	}
	if s.base, err = f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "center", Horizontal: "left"},
	}); err != nil {
		return s, fmt.Errorf("creating base style: %w", err)
	}
	if s.wrap, err = f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "center", Horizontal: "left", WrapText: true},
	}); err != nil {
		return s, fmt.Errorf("creating wrap style: %w", err)
	}
	return s, nil
}

func setCell(f *excelize.File, col, row int, value string, style int) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(SheetName, cell, value); err != nil {
		return fmt.Errorf("writing %s: %w", cell, err)
	}
	return f.SetCellStyle(SheetName, cell, cell, style)
}
