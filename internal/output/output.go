package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes command results in one of two modes: structured JSON
// for scripts and agents, or styled text for people. Commands build one
// Printer per invocation and route all of their output through it.
type Printer struct {
	out      io.Writer
	errOut   io.Writer
	jsonMode bool
	tty      bool
	styles   *Styles
}

// Styles is the lipgloss palette for human output. Zero-value styles
// render plain text, which is what non-TTY output gets.
type Styles struct {
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Bold    lipgloss.Style
	Dim     lipgloss.Style
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Key     lipgloss.Style
	Value   lipgloss.Style
	Border  lipgloss.Color
	Accent  lipgloss.Style
}

// newStyles builds the palette. Without a TTY every style stays at its
// zero value so piped output carries no escape codes.
func newStyles(tty bool) *Styles {
	if !tty {
		return &Styles{}
	}
	return &Styles{
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Bold:    lipgloss.NewStyle().Bold(true),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Muted:   lipgloss.NewStyle().Faint(true),
		Key:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Value:   lipgloss.NewStyle(),
		Border:  lipgloss.Color("8"),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	}
}

// NewPrinter creates a Printer on the given writer. jsonMode selects
// structured output; isTTY enables colors for human output.
func NewPrinter(writer io.Writer, jsonMode bool, isTTY bool) *Printer {
	return &Printer{
		out:      writer,
		errOut:   writer,
		jsonMode: jsonMode,
		tty:      isTTY,
		styles:   newStyles(isTTY),
	}
}

// WithStderr routes human-mode errors and warnings to a separate
// writer. JSON mode keeps everything on the main writer so consumers
// read a single stream. Returns the printer for chaining.
func (p *Printer) WithStderr(w io.Writer) *Printer {
	p.errOut = w
	return p
}

// IsJSON reports whether the printer is in JSON mode.
func (p *Printer) IsJSON() bool {
	return p.jsonMode
}

// IsTTY reports whether the printer was built for a terminal.
func (p *Printer) IsTTY() bool {
	return p.tty
}

// Success writes a success result. JSON mode encodes the whole map.
// Human mode prints a "message" key when present, otherwise one
// "key: value" line per entry in sorted key order.
func (p *Printer) Success(data map[string]any) error {
	if p.jsonMode {
		return p.writeJSON(data)
	}

	if msg, ok := data["message"].(string); ok {
		mustWrite(fmt.Fprintln(p.out, p.styles.Success.Render(msg)))
		return nil
	}

	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		mustWrite(fmt.Fprintf(p.out, "%s: %v\n", p.styles.Bold.Render(key), data[key]))
	}
	return nil
}

// Error writes an error. JSON mode emits {"error": ..., "code": N} on
// the main writer so the structured stream stays complete; human mode
// writes a styled line to the error writer. Errors without an exit
// code are treated as user errors.
func (p *Printer) Error(err error) {
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		exitErr = &ExitError{Code: ExitUserError, Message: err.Error()}
	}

	if p.jsonMode {
		mustWrite(p.out.Write(ErrorJSON(exitErr.Message, exitErr.Code)))
		mustWrite(fmt.Fprintln(p.out))
		return
	}

	mustWrite(fmt.Fprintf(p.errOut, "%s: %s\n", p.styles.Error.Render("Error"), exitErr.Message))
}

// Warn writes a non-fatal warning. JSON mode emits a {"warning": ...}
// object; human mode writes a styled line to the error writer so
// warnings never mix into piped output.
func (p *Printer) Warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if p.jsonMode {
		_ = p.writeJSON(map[string]any{"warning": msg})
		return
	}
	mustWrite(fmt.Fprintf(p.errOut, "%s: %s\n", p.styles.Warning.Render("Warning"), msg))
}

// Print writes formatted text to the output without a newline.
func (p *Printer) Print(format string, args ...any) {
	mustWrite(fmt.Fprintf(p.out, format, args...))
}

// Println writes a line to the output.
func (p *Printer) Println(args ...any) {
	mustWrite(fmt.Fprintln(p.out, args...))
}

// WriteJSON encodes any value as indented JSON. Use it for result
// structs; Success covers the map case.
func (p *Printer) WriteJSON(data any) error {
	return p.writeJSON(data)
}

func (p *Printer) writeJSON(data any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// ErrorJSON renders the error payload: {"error": message, "code": N}.
func ErrorJSON(message string, code int) []byte {
	result, _ := json.Marshal(map[string]any{
		"error": message,
		"code":  code,
	})
	return result
}

// Table writes rows aligned under bold headers. Column widths follow
// the widest cell; columns are separated by two spaces.
func (p *Printer) Table(headers []string, rows [][]string) {
	if len(headers) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	p.tableRow(headers, widths, p.styles.Bold)
	for _, row := range rows {
		p.tableRow(row, widths, p.styles.Value)
	}
}

// tableRow writes one padded table line. The last cell is not padded,
// keeping line ends clean.
func (p *Printer) tableRow(cells []string, widths []int, style lipgloss.Style) {
	parts := make([]string, 0, len(cells))
	for i, cell := range cells {
		if i >= len(widths) {
			break
		}
		if i == len(widths)-1 {
			parts = append(parts, style.Render(cell))
			continue
		}
		parts = append(parts, style.Render(fmt.Sprintf("%-*s", widths[i], cell)))
	}
	mustWrite(fmt.Fprintln(p.out, strings.Join(parts, "  ")))
}

// Box writes content under a title. On a TTY the content gets a
// rounded lipgloss border; piped output gets plain text.
func (p *Printer) Box(title string, content string) {
	if !p.tty {
		if title != "" {
			mustWrite(fmt.Fprintln(p.out, title))
			mustWrite(fmt.Fprintln(p.out))
		}
		mustWrite(fmt.Fprintln(p.out, content))
		return
	}

	body := content
	if title != "" {
		body = p.styles.Title.Render(title) + "\n\n" + content
	}
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.styles.Border).
		Padding(0, 1)
	mustWrite(fmt.Fprintln(p.out, frame.Render(body)))
}

// Section writes an underlined section header preceded by a blank line.
func (p *Printer) Section(title string) {
	mustWrite(fmt.Fprintln(p.out))
	mustWrite(fmt.Fprintln(p.out, p.styles.Title.Render(title)))
	mustWrite(fmt.Fprintln(p.out, p.styles.Muted.Render(strings.Repeat("─", len(title)))))
}

// KeyValue writes one "Key: value" line.
func (p *Printer) KeyValue(key string, value string) {
	mustWrite(fmt.Fprintf(p.out, "%s %s\n", p.styles.Key.Render(key+":"), p.styles.Value.Render(value)))
}

// mustWrite panics on write failure. Printers write to stdout, stderr,
// or test buffers; a failed write there is not recoverable.
func mustWrite(_ int, err error) {
	if err != nil {
		panic(fmt.Sprintf("write failed: %v", err))
	}
}
