package inspect

import (
	"fmt"
	"io"
	"strings"

	"github.com/elf-tools/elfscan/lib/elfutil"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
)

// absentCell marks a field a single file does not carry, so columns stay
// aligned when other files do carry it.
const absentCell = "-"

// fieldSpec ties a report row to the header field it renders. format
// returns ok=false when the field is absent for this header.
type fieldSpec struct {
	label  string
	format func(h *elfutil.Header) (string, bool)
}

func decimal(v interface{}) (string, bool) { return fmt.Sprintf("%d", v), true }
func hex(v interface{}) (string, bool)     { return fmt.Sprintf("%#x", v), true }

// fieldSpecs lists the report rows in header order.
var fieldSpecs = []fieldSpec{
	{"Architecture", func(h *elfutil.Header) (string, bool) { return elfutil.ClassName(h.Class), true }},
	{"Endian", func(h *elfutil.Header) (string, bool) { return elfutil.DataName(h.Data), true }},
	{"ELF Header Version", func(h *elfutil.Header) (string, bool) { return decimal(h.HeaderVersion) }},
	{"File Type", func(h *elfutil.Header) (string, bool) { return elfutil.TypeName(h.Type), true }},
	{"Machine Type", func(h *elfutil.Header) (string, bool) { return elfutil.MachineName(h.Machine) }},
	{"Object File Version", func(h *elfutil.Header) (string, bool) { return hex(h.Version) }},
	{"Entry Point", func(h *elfutil.Header) (string, bool) { return hex(h.Entry) }},
	{"Program Header Offset", func(h *elfutil.Header) (string, bool) { return hex(h.Phoff) }},
	{"Section Header Offset", func(h *elfutil.Header) (string, bool) { return hex(h.Shoff) }},
	{"Flags", func(h *elfutil.Header) (string, bool) { return decimal(h.Flags) }},
	{"Header's Size", func(h *elfutil.Header) (string, bool) { return fmt.Sprintf("%d bytes", h.Ehsize), true }},
	{"Per Program Header's Size", func(h *elfutil.Header) (string, bool) { return fmt.Sprintf("%d bytes", h.Phentsize), true }},
	{"Program Header's Number", func(h *elfutil.Header) (string, bool) { return decimal(h.Phnum) }},
	{"Per Section Header's Size", func(h *elfutil.Header) (string, bool) { return fmt.Sprintf("%d bytes", h.Shentsize), true }},
	{"Section Header's Number", func(h *elfutil.Header) (string, bool) { return decimal(h.Shnum) }},
	{"Entry Index", func(h *elfutil.Header) (string, bool) { return decimal(h.Shstrndx) }},
}

// Table builds the field-per-row, file-per-column comparison for every
// decoded file. A row whose field is absent in every file is dropped;
// per-file absence renders as "-". Returns "" when nothing decoded.
func (r *Report) Table() string {
	decoded := r.Headers()
	if len(decoded) == 0 {
		return ""
	}

	header := make([]string, 0, len(decoded)+1)
	header = append(header, "File")
	for _, o := range decoded {
		header = append(header, o.Path)
	}

	rows := make([][]string, 0, len(fieldSpecs))
	for _, spec := range fieldSpecs {
		row := []string{spec.label}
		present := false
		for _, o := range decoded {
			cell, ok := spec.format(o.Header)
			if !ok {
				cell = absentCell
			} else {
				present = true
			}
			row = append(row, cell)
		}
		if present {
			rows = append(rows, row)
		}
	}

	return buildTable(header, rows)
}

// buildTable renders header and rows as a bordered table string.
func buildTable(header []string, rows [][]string) string {
	builder := &strings.Builder{}
	table := tablewriter.NewWriter(builder)
	table.SetHeader(header)
	table.SetBorder(true)
	table.SetRowLine(false)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk(rows)
	table.Render()
	return builder.String()
}

// Render writes the comparison table followed by one line per rejected
// file. Files that failed the signature check never make it into the
// table.
func (r *Report) Render(w io.Writer) {
	if table := r.Table(); table != "" {
		fmt.Fprint(w, table)
	}
	for _, o := range r.Failures() {
		fmt.Fprintln(w, FailureLine(o))
	}
}

// FailureLine formats a rejected file for display.
func FailureLine(o Outcome) string {
	if errors.Is(o.Err, elfutil.ErrNotELF) {
		return fmt.Sprintf("%s is not an ELF file", o.Path)
	}
	return fmt.Sprintf("%s: %v", o.Path, o.Err)
}
