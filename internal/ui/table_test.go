package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/olekukonko/tablewriter"
)

func TestNewTable(t *testing.T) {
	var buf bytes.Buffer
	table := NewTable(&buf, []string{"Name", "State", "Width"})
	if table == nil || table.writer == nil {
		t.Fatal("NewTable did not initialize writer")
	}

	table.AddRow([]string{"1:web", "focused", "5"})
	table.AddColoredRow(
		[]string{"2:mail", "urgent", "6"},
		[]tablewriter.Colors{TableColor.Normal, StateTableColor("urgent"), TableColor.Normal},
	)
	table.Render()

	got := buf.String()
	for _, want := range []string{"1:web", "2:mail", "focused"} {
		if !strings.Contains(got, want) {
			t.Errorf("Render() output %q should contain %q", got, want)
		}
	}
}

func TestStateTableColor(t *testing.T) {
	tests := []struct {
		state string
		want  tablewriter.Colors
	}{
		{"focused", TableColor.Green},
		{"urgent", TableColor.Red},
		{"visible", TableColor.Cyan},
		{"ellipsis", TableColor.Dim},
		{"unfocused", TableColor.Normal},
	}

	for _, tt := range tests {
		got := StateTableColor(tt.state)
		if len(got) != len(tt.want) || (len(got) > 0 && got[0] != tt.want[0]) {
			t.Errorf("StateTableColor(%q) = %v, want %v", tt.state, got, tt.want)
		}
	}
}
