// Package viewer implements a read-only terminal file viewer that
// highlights every detected URL and tracks the link under the cursor.
package viewer

import (
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/JackWReid/urlfind"
	"github.com/JackWReid/urlfind/internal/terminal"
)

// Styling for link spans. The span under the cursor is shown in
// reverse video on top of the link style.
const (
	styleLink   = "\x1b[4;34m"
	styleActive = "\x1b[7;4;34m"
	styleReset  = "\x1b[0m"
)

// Viewer is the top-level state of one viewing session.
type Viewer struct {
	name  string
	lines []string
	spans [][]urlfind.Span // per line, forward order

	top     int // first visible buffer line
	curLine int
	curCol  int
	status  string // transient message shown until the next keypress

	term *terminal.Terminal
	quit bool
}

// New loads path and locates the URLs on every line.
func New(path string) (*Viewer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	v := &Viewer{
		name:  path,
		lines: lines,
		spans: make([][]urlfind.Span, len(lines)),
	}
	for i, line := range lines {
		v.spans[i] = urlfind.FindAll(line)
	}
	return v, nil
}

// Run enters raw mode and drives the event loop until the user quits.
func (v *Viewer) Run() error {
	t, err := terminal.New()
	if err != nil {
		return err
	}
	v.term = t
	defer t.Restore()

	for !v.quit {
		v.draw()
		ev, err := t.ReadEvent()
		if err != nil {
			return err
		}
		v.status = ""
		v.handle(ev)
	}
	return nil
}

func (v *Viewer) draw() {
	v.term.Resize()
	width, height := v.term.Width(), v.term.Height()
	rows := height - 1 // bottom row is the status bar
	if rows < 1 {
		rows = 1
	}
	v.scrollTo(rows)

	var b strings.Builder
	b.WriteString("\x1b[H\x1b[2J")

	for row := 0; row < rows; row++ {
		i := v.top + row
		if i < len(v.lines) {
			active := -1
			if i == v.curLine {
				active = spanIndexAt(v.spans[i], v.curCol)
			}
			b.WriteString(renderLine(v.lines[i], v.spans[i], active, width))
		}
		b.WriteString("\r\n")
	}
	b.WriteString(v.statusLine(width))

	// Place and show the cursor last so it lands on the current cell.
	b.WriteString(fmt.Sprintf("\x1b[%d;%dH\x1b[?25h", v.curLine-v.top+1, v.curCol+1))
	os.Stdout.WriteString(b.String())
}

func (v *Viewer) handle(ev terminal.InputEvent) {
	if ev.Type == terminal.EventMouse {
		v.handleMouse(ev.Mouse)
		return
	}

	switch ev.Key.Type {
	case terminal.KeyRune:
		switch ev.Key.Rune {
		case 'q':
			v.quit = true
		case 'y':
			v.copyLink()
		}
	case terminal.KeyEscape:
		v.quit = true
	case terminal.KeyEnter:
		v.copyLink()
	case terminal.KeyUp:
		v.moveCursor(-1, 0)
	case terminal.KeyDown:
		v.moveCursor(1, 0)
	case terminal.KeyLeft:
		v.moveCursor(0, -1)
	case terminal.KeyRight:
		v.moveCursor(0, 1)
	case terminal.KeyHome:
		v.curCol = 0
	case terminal.KeyEnd:
		v.curCol = maxCol(v.lines[v.curLine])
	case terminal.KeyPgUp:
		v.moveCursor(-v.pageRows(), 0)
	case terminal.KeyPgDn:
		v.moveCursor(v.pageRows(), 0)
	}
}

func (v *Viewer) handleMouse(mouse terminal.MouseEvent) {
	switch mouse.Button {
	case terminal.MouseLeft:
		if mouse.Press {
			// Terminal coordinates are 1-based.
			v.curLine = clamp(v.top+mouse.Row-1, 0, len(v.lines)-1)
			v.curCol = clamp(mouse.Col-1, 0, maxCol(v.lines[v.curLine]))
		}
	case terminal.MouseWheelUp:
		v.moveCursor(-3, 0)
	case terminal.MouseWheelDown:
		v.moveCursor(3, 0)
	}
}

func (v *Viewer) moveCursor(dl, dc int) {
	v.curLine = clamp(v.curLine+dl, 0, len(v.lines)-1)
	v.curCol = clamp(v.curCol+dc, 0, maxCol(v.lines[v.curLine]))
}

// copyLink puts the URL under the cursor on the system clipboard.
func (v *Viewer) copyLink() {
	i := spanIndexAt(v.spans[v.curLine], v.curCol)
	if i < 0 {
		v.status = "no link under cursor"
		return
	}
	url := v.spans[v.curLine][i].URL
	if err := clipboard.WriteAll(url); err != nil {
		v.status = fmt.Sprintf("clipboard: %v", err)
		return
	}
	v.status = "copied " + url
}

// pageRows returns the number of content rows per page.
func (v *Viewer) pageRows() int {
	rows := v.term.Height() - 1
	if rows < 1 {
		rows = 1
	}
	return rows
}

// scrollTo adjusts the scroll offset so the cursor stays visible
// within the given number of content rows.
func (v *Viewer) scrollTo(rows int) {
	if v.curLine < v.top {
		v.top = v.curLine
	}
	if v.curLine >= v.top+rows {
		v.top = v.curLine - rows + 1
	}
}

func (v *Viewer) statusLine(width int) string {
	left := fmt.Sprintf(" %s  %d:%d", v.name, v.curLine+1, v.curCol+1)

	right := v.status
	if right == "" {
		if i := spanIndexAt(v.spans[v.curLine], v.curCol); i >= 0 {
			right = v.spans[v.curLine][i].URL
		} else {
			right = "q quit · enter copy link"
		}
	}

	text := left + "  " + right
	runes := []rune(text)
	if width > 0 && len(runes) > width {
		runes = runes[:width]
	}
	pad := width - len(runes)
	if pad < 0 {
		pad = 0
	}
	return "\x1b[7m" + string(runes) + strings.Repeat(" ", pad) + styleReset
}

// spanIndexAt returns the index of the span covering col, or -1.
func spanIndexAt(spans []urlfind.Span, col int) int {
	for i, sp := range spans {
		if sp.Contains(col) {
			return i
		}
	}
	return -1
}

// renderLine styles the URL spans of a single display line, clipped
// to width columns. active is the index of the span under the cursor,
// or -1.
func renderLine(line string, spans []urlfind.Span, active int, width int) string {
	runes := []rune(line)
	if width > 0 && len(runes) > width {
		runes = runes[:width]
	}

	var b strings.Builder
	current := ""
	for i, r := range runes {
		style := ""
		if si := spanIndexAt(spans, i); si >= 0 {
			if si == active {
				style = styleActive
			} else {
				style = styleLink
			}
		}
		if style != current {
			b.WriteString(styleReset)
			b.WriteString(style)
			current = style
		}
		b.WriteRune(r)
	}
	if current != "" {
		b.WriteString(styleReset)
	}
	return b.String()
}

// maxCol returns the largest valid cursor column on line.
func maxCol(line string) int {
	n := len([]rune(line)) - 1
	if n < 0 {
		n = 0
	}
	return n
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
