package inspect

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/pavver/flexbuf/internal/linebuf"
)

const cellsPerRow = 40

// Render writes a self-contained HTML snapshot of the buffer state: the
// geometry, the cell grid colored per owning record, and a table of active
// records. filter may be nil to include every record.
func Render(w io.Writer, st linebuf.State, filter *Filter) error {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<title>flexbuf snapshot</title>\n<style>\n")
	b.WriteString(styleSheet)
	b.WriteString("</style>\n</head>\n<body>\n")

	fmt.Fprintf(&b, "  <p class=\"meta\">Capacity: %d, MaxRecords: %d</p>\n", st.Capacity, st.MaxRecords)
	fmt.Fprintf(&b, "  <p class=\"meta\">OldestIndex: %d, NewestIndex: %d, ActiveRecords: %d</p>\n",
		st.OldestIndex, st.NewestIndex, len(st.Records))

	b.WriteString("  <p class=\"meta\">Buffer cells:</p>\n")
	renderCellGrid(&b, st)

	b.WriteString("  <p class=\"meta\">Records:</p>\n")
	renderRecordTable(&b, st, filter)

	b.WriteString("</body>\n</html>\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func renderCellGrid(b *strings.Builder, st linebuf.State) {
	b.WriteString("  <table id=\"Buffer\">\n")
	for i := 0; i < st.Capacity; i++ {
		if i%cellsPerRow == 0 {
			if i > 0 {
				b.WriteString("    </tr>\n")
			}
			b.WriteString("    <tr>\n")
		}
		classes := []string{"buffer-cell"}
		if owner, ok := st.CellOwner(i); ok {
			if owner.Start == i {
				classes = append(classes, "record-first-cell")
			}
			if owner.End == i {
				classes = append(classes, "record-last-cell")
			}
			classes = append(classes, fmt.Sprintf("color-%d", owner.ID%10))
		}
		fmt.Fprintf(b, "      <td class=%q><span>%s</span></td>\n",
			strings.Join(classes, " "), escapeCell(st.Cells[i]))
	}
	if st.Capacity > 0 {
		b.WriteString("    </tr>\n")
	}
	b.WriteString("  </table>\n")
}

func renderRecordTable(b *strings.Builder, st linebuf.State, filter *Filter) {
	b.WriteString("  <table id=\"Records\">\n    <tr>\n")
	for _, h := range []string{"index", "id", "start", "end", "length", "data"} {
		fmt.Fprintf(b, "      <th><span>%s</span></th>\n", h)
	}
	b.WriteString("    </tr>\n")
	for _, r := range st.Records {
		if !filter.Matches(r) {
			continue
		}
		fmt.Fprintf(b, "    <tr class=\"color-%d\">\n", r.ID%10)
		fmt.Fprintf(b, "      <td><span>%d</span></td>\n", r.Index)
		fmt.Fprintf(b, "      <td><span>%d</span></td>\n", r.ID)
		fmt.Fprintf(b, "      <td><span>%d</span></td>\n", r.Start)
		fmt.Fprintf(b, "      <td><span>%d</span></td>\n", r.End)
		fmt.Fprintf(b, "      <td><span>%d</span></td>\n", r.Length)
		fmt.Fprintf(b, "      <td><span>%s</span></td>\n", escapeData(r.Data))
		b.WriteString("    </tr>\n")
	}
	b.WriteString("  </table>\n")
}

// RenderText writes a compact plain-text snapshot suitable for terminals.
// filter may be nil to include every record.
func RenderText(w io.Writer, st linebuf.State, filter *Filter) error {
	var b strings.Builder
	fmt.Fprintf(&b, "capacity=%d maxRecords=%d oldestIndex=%d newestIndex=%d active=%d\n",
		st.Capacity, st.MaxRecords, st.OldestIndex, st.NewestIndex, len(st.Records))
	for _, r := range st.Records {
		if !filter.Matches(r) {
			continue
		}
		frag := ""
		if r.Fragmented {
			frag = " fragmented"
		}
		fmt.Fprintf(&b, "#%d id=%d [%d,%d] len=%d%s %q\n",
			r.Index, r.ID, r.Start, r.End, r.Length, frag, r.Data)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// escapeCell renders one arena cell; control characters common in captured
// text are shown symbolically, everything else non-printable as a dot.
func escapeCell(c byte) string {
	switch c {
	case 0:
		return `\0`
	case '\n':
		return `\n`
	case '\r':
		return `\r`
	case '\t':
		return `\t`
	}
	if c < 0x20 || c > 0x7e {
		return "."
	}
	return html.EscapeString(string(c))
}

func escapeData(data []byte) string {
	var b strings.Builder
	for _, c := range data {
		b.WriteString(escapeCell(c))
	}
	return b.String()
}

const styleSheet = `body { font-family: monospace; margin: 8px; }
p.meta { margin: 4px; }
table { border-collapse: collapse; margin: 4px; }
td, th { border: 1px solid #999; padding: 2px 4px; text-align: center; }
td.buffer-cell { min-width: 14px; }
td.record-first-cell { border-left: 3px solid #000; }
td.record-last-cell { border-right: 3px solid #000; }
.color-0 { background: #ffd9d9; }
.color-1 { background: #ffedd9; }
.color-2 { background: #fffbd9; }
.color-3 { background: #e3ffd9; }
.color-4 { background: #d9fff4; }
.color-5 { background: #d9f2ff; }
.color-6 { background: #d9deff; }
.color-7 { background: #edd9ff; }
.color-8 { background: #ffd9f6; }
.color-9 { background: #e8e8e8; }
`
