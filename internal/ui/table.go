package ui

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// Table is a wrapper around tablewriter for consistent table formatting.
type Table struct {
	writer *tablewriter.Table
}

// NewTable creates a new table with headers, rendering to w.
func NewTable(w io.Writer, headers []string) *Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(headers)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetColumnSeparator("  ")
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)

	headerColors := make([]tablewriter.Colors, len(headers))
	for i := range headerColors {
		headerColors[i] = tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor}
	}
	table.SetHeaderColor(headerColors...)

	return &Table{writer: table}
}

// AddRow adds a row to the table.
func (t *Table) AddRow(row []string) {
	t.writer.Append(row)
}

// AddColoredRow adds a row with custom colors.
func (t *Table) AddColoredRow(row []string, colors []tablewriter.Colors) {
	t.writer.Rich(row, colors)
}

// Render prints the table.
func (t *Table) Render() {
	t.writer.Render()
}

// TableColor provides color constants for table cells.
var TableColor = struct {
	Green  tablewriter.Colors
	Yellow tablewriter.Colors
	Red    tablewriter.Colors
	Cyan   tablewriter.Colors
	Dim    tablewriter.Colors
	Normal tablewriter.Colors
}{
	Green:  tablewriter.Colors{tablewriter.FgGreenColor},
	Yellow: tablewriter.Colors{tablewriter.FgYellowColor},
	Red:    tablewriter.Colors{tablewriter.FgRedColor},
	Cyan:   tablewriter.Colors{tablewriter.FgCyanColor},
	Dim:    tablewriter.Colors{tablewriter.FgHiBlackColor},
	Normal: tablewriter.Colors{},
}

// StateTableColor returns the cell color for a workspace state name.
func StateTableColor(state string) tablewriter.Colors {
	switch state {
	case "focused":
		return TableColor.Green
	case "urgent":
		return TableColor.Red
	case "visible":
		return TableColor.Cyan
	case "inactive_group", "ellipsis":
		return TableColor.Dim
	default:
		return TableColor.Normal
	}
}
