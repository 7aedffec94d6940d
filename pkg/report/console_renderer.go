package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	styleHeader = lipgloss.NewStyle().Foreground(lipgloss.Color("#fe8019")).Bold(true)
	styleDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("#928374"))
	styleTotals = lipgloss.NewStyle().Foreground(lipgloss.Color("#ebdbb2")).Bold(true)
	stylePlain  = lipgloss.NewStyle()
)

const colGap = 2

// ConsoleRenderer prints a sheet as an aligned table, styled only on a terminal.
type ConsoleRenderer struct {
	out    io.Writer
	styled bool
}

func NewConsoleRenderer(out io.Writer) *ConsoleRenderer {
	styled := false
	if f, ok := out.(*os.File); ok {
		styled = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &ConsoleRenderer{out: out, styled: styled}
}

func (c *ConsoleRenderer) style(s lipgloss.Style) lipgloss.Style {
	if c.styled {
		return s
	}
	return stylePlain
}

func (c *ConsoleRenderer) Print(title string, sheet Sheet) error {
	_, err := fmt.Fprint(c.out, c.Format(title, sheet))
	return err
}

func (c *ConsoleRenderer) Format(title string, sheet Sheet) string {
	widths := sheet.ColumnWidths()
	cells := sheet.Cells()

	var b strings.Builder
	b.WriteString(c.style(styleHeader).Render(title))
	b.WriteString("\n")

	writeLine(&b, sheet.Headers, widths, c.style(styleHeader))
	for i, w := range widths {
		b.WriteString(c.style(styleDim).Render(strings.Repeat("─", w)))
		if i < len(widths)-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")

	for i, line := range cells {
		style := stylePlain
		if i == len(cells)-1 {
			style = c.style(styleTotals)
		}
		writeLine(&b, line, widths, style)
	}
	return b.String()
}

func writeLine(b *strings.Builder, cells []string, widths []int, style lipgloss.Style) {
	for i, cell := range cells {
		b.WriteString(style.Render(cell))
		if i < len(cells)-1 {
			pad := widths[i] - lipgloss.Width(cell)
			if pad < 0 {
				pad = 0
			}
			b.WriteString(strings.Repeat(" ", pad+colGap))
		}
	}
	b.WriteString("\n")
}
