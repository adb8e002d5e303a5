package diagfmt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"tjs/internal/diag"
	"tjs/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Для каждой диагностики печатает:
//
//	<path>:<line>:<col>: <sev>[<CODE>]: <Message>
//	  <line> | <source line>
//	         |    ^~~~
//
// Подчёркивание учитывает широкие (East Asian) руны и табы.
// Цвет включается опцией.
func Pretty(w io.Writer, bag *diag.Bag, file *source.File, opts PrettyOpts) error {
	bw := bufio.NewWriter(w)
	p := newPainter(opts.Color)
	for _, d := range bag.Items() {
		p.diagnostic(bw, d, file, opts)
	}
	return bw.Flush()
}

// PrettyOne форматирует одну диагностику.
func PrettyOne(w io.Writer, d diag.Diagnostic, file *source.File, opts PrettyOpts) error {
	bw := bufio.NewWriter(w)
	newPainter(opts.Color).diagnostic(bw, d, file, opts)
	return bw.Flush()
}

type painter struct {
	sev    map[diag.Severity]*color.Color
	gutter *color.Color
	note   *color.Color
}

func newPainter(enabled bool) painter {
	p := painter{
		sev: map[diag.Severity]*color.Color{
			diag.SevError:   color.New(color.FgRed, color.Bold),
			diag.SevWarning: color.New(color.FgYellow, color.Bold),
			diag.SevInfo:    color.New(color.FgCyan, color.Bold),
		},
		gutter: color.New(color.FgBlue),
		note:   color.New(color.FgGreen),
	}
	for _, c := range p.all() {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p painter) all() []*color.Color {
	return []*color.Color{p.sev[diag.SevError], p.sev[diag.SevWarning], p.sev[diag.SevInfo], p.gutter, p.note}
}

func (p painter) severity(s diag.Severity) *color.Color {
	if c, ok := p.sev[s]; ok {
		return c
	}
	return p.sev[diag.SevError]
}

func (p painter) diagnostic(w *bufio.Writer, d diag.Diagnostic, file *source.File, opts PrettyOpts) {
	name := displayName(file, opts.PathMode)
	sevColor := p.severity(d.Severity)
	label := sevColor.Sprint(d.Severity.Label() + "[" + d.Code.ID() + "]")

	if !d.HasSpan || file == nil {
		fmt.Fprintf(w, "%s: %s: %s\n", name, label, d.Message)
		return
	}

	start, end := file.Resolve(d.Primary)
	fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", name, start.Line, start.Col, label, d.Message)
	p.excerpt(w, file, start, end, sevColor)

	if opts.ShowNotes {
		for _, n := range d.Notes {
			nstart, _ := file.Resolve(n.Span)
			fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", p.note.Sprint("note:"), name, nstart.Line, nstart.Col, n.Msg)
		}
	}
}

// excerpt печатает строку источника и подчёркивание под span.
func (p painter) excerpt(w *bufio.Writer, file *source.File, start, end source.LineCol, c *color.Color) {
	line := file.GetLine(start.Line)
	num := strconv.FormatUint(uint64(start.Line), 10)
	pad := strings.Repeat(" ", len(num))

	fmt.Fprintf(w, " %s %s %s\n", p.gutter.Sprint(num), p.gutter.Sprint("|"), line)

	startIdx := clampCol(start.Col, line)
	endIdx := len(line)
	if end.Line == start.Line {
		endIdx = clampCol(end.Col, line)
	}
	endIdx = max(endIdx, startIdx)

	marker := "^" + strings.Repeat("~", max(displayWidth(line[startIdx:endIdx])-1, 0))
	fmt.Fprintf(w, " %s %s %s%s\n", pad, p.gutter.Sprint("|"), indentFor(line[:startIdx]), c.Sprint(marker))
}

// clampCol переводит 1-based колонку в байтовый индекс внутри line.
func clampCol(col uint32, line string) int {
	if col == 0 {
		return 0
	}
	return min(int(col-1), len(line))
}

// indentFor повторяет табы и ширину рун префикса пробелами.
func indentFor(prefix string) string {
	var sb strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			sb.WriteByte('\t')
			continue
		}
		sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return sb.String()
}

func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}
