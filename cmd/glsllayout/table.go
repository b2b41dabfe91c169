package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/wippyai/gpu-layout/layout"
	"github.com/wippyai/gpu-layout/schema"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#87CEEB")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))
)

// row is one member placement, with offsets relative to the outermost
// struct.
type row struct {
	name   string
	typ    string
	offset uint32
	align  uint32
	size   uint32
	stride uint32
	depth  int
}

// structRows lists the members of t, expanding nested struct members in
// place below their parent.
func structRows(c *layout.Calculator, t *layout.Type) []row {
	var rows []row
	var walk func(t *layout.Type, base uint32, depth int)
	walk = func(t *layout.Type, base uint32, depth int) {
		for _, f := range c.Fields(t) {
			rows = append(rows, row{
				name:   f.Name,
				typ:    f.Type.String(),
				offset: base + f.Offset,
				align:  f.Rule.Align,
				size:   f.Rule.Size,
				stride: f.Stride,
				depth:  depth,
			})
			if f.Type.Kind == layout.KindStruct {
				walk(f.Type, base+f.Offset, depth+1)
			}
		}
	}
	walk(t, 0, 0)
	return rows
}

func renderStruct(c *layout.Calculator, t *layout.Type) string {
	info := c.Calculate(t)

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("FIELD", "TYPE", "OFFSET", "ALIGN", "SIZE", "STRIDE").
		StyleFunc(func(r, _ int) lipgloss.Style {
			if r == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, r := range structRows(c, t) {
		stride := "-"
		if r.stride != 0 {
			stride = strconv.FormatUint(uint64(r.stride), 10)
		}
		tbl.Row(
			strings.Repeat("  ", r.depth)+r.name,
			r.typ,
			strconv.FormatUint(uint64(r.offset), 10),
			strconv.FormatUint(uint64(r.align), 10),
			strconv.FormatUint(uint64(r.size), 10),
			stride,
		)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(t.Name + " " + c.Standard().String()))
	b.WriteString(" ")
	b.WriteString(summaryStyle.Render(fmt.Sprintf("align %d, size %d", info.Align, info.Size)))
	b.WriteString("\n")
	b.WriteString(tbl.Render())
	b.WriteString("\n")
	return b.String()
}

func printTables(w io.Writer, s *schema.Schema, only string, stds []layout.Standard) error {
	structs := s.Structs()
	if only != "" {
		t, err := s.Lookup(only)
		if err != nil {
			return err
		}
		structs = []*layout.Type{t}
	}

	for _, std := range stds {
		c := layout.NewCalculator(std)
		for _, t := range structs {
			if _, err := io.WriteString(w, renderStruct(c, t)+"\n"); err != nil {
				return err
			}
		}
	}
	return nil
}
