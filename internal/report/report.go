package report

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

var ErrNoRecords = errors.New("no attendance records to export")

const (
	defaultSheet    = "Sheet1"
	unassignedSheet = "Unassigned"
	maxSheetName    = 31
)

var headers = []string{"Record ID", "Employee", "Email", "Date", "Check In", "Check Out", "Hours Worked"}

// AttendanceRow is one line of the attendance export.
type AttendanceRow struct {
	ID          uint
	Department  string
	Employee    string
	Email       string
	Date        string
	CheckIn     string
	CheckOut    string
	HoursWorked string
}

// Generator holds the workbook being built.
type Generator struct {
	file *excelize.File
}

func NewGenerator() *Generator {
	return &Generator{file: excelize.NewFile()}
}

// AttendanceWorkbook renders rows into an xlsx workbook with one sheet per
// department, sheets ordered by name. Rows keep their given order inside a
// sheet.
func AttendanceWorkbook(rows []AttendanceRow) (*bytes.Buffer, error) {
	if len(rows) == 0 {
		return nil, ErrNoRecords
	}

	byDepartment := make(map[string][]AttendanceRow)
	for _, row := range rows {
		name := sheetName(row.Department)
		byDepartment[name] = append(byDepartment[name], row)
	}

	gen := NewGenerator()
	defer gen.file.Close()

	if err := gen.addSheets(byDepartment); err != nil {
		return nil, fmt.Errorf("failed to add sheets: %w", err)
	}

	if _, ok := byDepartment[defaultSheet]; !ok {
		if err := gen.file.DeleteSheet(defaultSheet); err != nil {
			return nil, fmt.Errorf("failed to delete default sheet: %w", err)
		}
	}
	gen.file.SetActiveSheet(0)

	buffer, err := gen.file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buffer, nil
}

func (g *Generator) addSheets(byDepartment map[string][]AttendanceRow) error {
	names := make([]string, 0, len(byDepartment))
	for name := range byDepartment {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		rows := byDepartment[name]
		if name != defaultSheet {
			if _, err := g.file.NewSheet(name); err != nil {
				return fmt.Errorf("failed to create sheet '%s': %w", name, err)
			}
		}

		if err := g.setupSheet(name, i+1, len(rows)); err != nil {
			return fmt.Errorf("failed to setup sheet '%s': %w", name, err)
		}

		for i, row := range rows {
			if err := g.addRow(name, i+2, row); err != nil { // row 1 is the header
				return fmt.Errorf("failed to add row %d: %w", i+2, err)
			}
		}
	}
	return nil
}

// setupSheet writes the styled header row and wraps the sheet in a table.
// Table names must be unique within the workbook, hence seq.
func (g *Generator) setupSheet(name string, seq, rowCount int) error {
	headerStyle, err := g.file.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Vertical: "center", Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err = g.file.SetSheetRow(name, "A1", &headers); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}
	if err = g.file.SetCellStyle(name, "A1", "G1", headerStyle); err != nil {
		return fmt.Errorf("failed to style headers: %w", err)
	}

	widths := map[string]float64{"A": 12, "B": 28, "C": 32, "D": 14, "E": 22, "F": 22, "G": 14}
	for col, width := range widths {
		if err = g.file.SetColWidth(name, col, col, width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	if err = g.file.AddTable(name, &excelize.Table{
		Range:     fmt.Sprintf("A1:G%d", rowCount+1),
		Name:      fmt.Sprintf("attendance_%d", seq),
		StyleName: "TableStyleMedium9",
	}); err != nil {
		return fmt.Errorf("failed to add table: %w", err)
	}
	return nil
}

func (g *Generator) addRow(name string, rowNum int, row AttendanceRow) error {
	data := []interface{}{
		row.ID,
		row.Employee,
		row.Email,
		row.Date,
		row.CheckIn,
		row.CheckOut,
		row.HoursWorked,
	}
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	return g.file.SetSheetRow(name, cell, &data)
}

// sheetName makes a department usable as a worksheet name.
func sheetName(department string) string {
	name := strings.TrimSpace(department)
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(`:\/?*[]`, r) {
			return '_'
		}
		return r
	}, name)
	if name == "" {
		return unassignedSheet
	}
	if utf8.RuneCountInString(name) > maxSheetName {
		name = string([]rune(name)[:maxSheetName])
	}
	return name
}
