// ABOUTME: Bubbletea model for the picture explorer
// ABOUTME: Handles selection, zoom, coordinate entry and half-block rendering
package ui

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jes4go/jes4go/pkg/picture"
)

// headerLines is the height of the info panel above the image
const headerLines = 4

// field is the coordinate text box being edited
type field int

const (
	fieldNone field = iota
	fieldX
	fieldY
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))
	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))
	editStyle = lipgloss.NewStyle().
			Reverse(true)
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
	helpStyle = lipgloss.NewStyle().Faint(true)
)

// Model represents the explorer TUI state
type Model struct {
	ex *picture.Explorer

	// Coordinate text boxes
	editing field
	xText   string
	yText   string
	status  string

	// Scroll offset of the viewport in zoomed display pixels
	offX int
	offY int

	// Dimensions
	width  int
	height int
}

// Init sets the terminal title
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.ex.Title())
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.scrollToSelection()
	}

	return m, nil
}

// View renders the TUI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString(m.renderCoordinates())
	b.WriteString(m.renderColorInfo())
	b.WriteString(m.renderHelp())
	b.WriteString(m.renderImage())
	return b.String()
}

// renderHeader renders the title and zoom level
func (m Model) renderHeader() string {
	w, h := m.ex.Picture().Size()
	return titleStyle.Render(truncate(m.ex.Title(), 40)) +
		valueStyle.Render(fmt.Sprintf("  %dx%d  zoom %d%%", w, h, m.ex.Zoom())) + "\n"
}

// renderCoordinates renders the X and Y text boxes
func (m Model) renderCoordinates() string {
	return labelStyle.Render("X: ") + m.renderField(fieldX, m.xText) + "   " +
		labelStyle.Render("Y: ") + m.renderField(fieldY, m.yText) + "\n"
}

func (m Model) renderField(f field, text string) string {
	box := fmt.Sprintf("[%5s]", text)
	if m.editing == f {
		return editStyle.Render(box)
	}
	return valueStyle.Render(box)
}

// renderColorInfo renders the RGB readout and the paint chip
func (m Model) renderColorInfo() string {
	c := m.ex.Color()
	chip := lipgloss.NewStyle().
		Background(lipgloss.Color(hexColor(c.R, c.G, c.B))).
		Render("    ")
	return valueStyle.Render(m.ex.Readout()) + " " + chip + "\n"
}

// renderHelp renders keyboard shortcuts or the last input error
func (m Model) renderHelp() string {
	if m.status != "" {
		return errorStyle.Render(m.status) + "\n"
	}
	if m.editing != fieldNone {
		return helpStyle.Render("0-9:type  tab:next field  enter:go  esc:cancel") + "\n"
	}
	return helpStyle.Render("←↑↓→:move  click:select (again: lower row)  +/-,1-7:zoom  tab:edit X/Y  q:quit") + "\n"
}

// renderImage renders the visible part of the zoomed picture, two display
// pixels per cell using the upper half block
func (m Model) renderImage() string {
	view := m.ex.View()
	bounds := view.Bounds()
	cols, rows := m.viewportSize()

	var b strings.Builder
	for r := 0; r < rows; r++ {
		top := m.offY + 2*r
		if top >= bounds.Dy() {
			break
		}
		for c := 0; c < cols; c++ {
			x := m.offX + c
			if x >= bounds.Dx() {
				break
			}
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(pixelHex(view, x, top)))
			if top+1 < bounds.Dy() {
				style = style.Background(lipgloss.Color(pixelHex(view, x, top+1)))
			}
			b.WriteString(style.Render("▀"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// handleKey handles keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.editing != fieldNone {
		m.handleEditKey(msg)
		return m, nil
	}

	m.status = ""
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "left":
		m.ex.Move(-1, 0)
	case "right":
		m.ex.Move(1, 0)
	case "up":
		m.ex.Move(0, -1)
	case "down":
		m.ex.Move(0, 1)
	case "+", "=":
		m.ex.ZoomIn()
	case "-", "_":
		m.ex.ZoomOut()
	case "1", "2", "3", "4", "5", "6", "7":
		i, _ := strconv.Atoi(msg.String())
		m.ex.SetZoom(picture.ZoomLevels[i-1])
	case "tab":
		m.editing = fieldX
		return m, nil
	case "shift+tab":
		m.editing = fieldY
		return m, nil
	default:
		return m, nil
	}

	m.syncFields()
	m.scrollToSelection()
	return m, nil
}

// handleEditKey edits the focused coordinate box
func (m *Model) handleEditKey(msg tea.KeyMsg) {
	text := &m.xText
	if m.editing == fieldY {
		text = &m.yText
	}

	switch msg.Type {
	case tea.KeyTab, tea.KeyShiftTab:
		if m.editing == fieldX {
			m.editing = fieldY
		} else {
			m.editing = fieldX
		}
	case tea.KeyEnter:
		m.editing = fieldNone
		if err := m.ex.SelectText(m.xText, m.yText); err != nil {
			m.status = err.Error()
		} else {
			m.status = ""
		}
		m.syncFields()
		m.scrollToSelection()
	case tea.KeyEsc:
		m.editing = fieldNone
		m.syncFields()
	case tea.KeyBackspace:
		if len(*text) > 0 {
			*text = (*text)[:len(*text)-1]
		}
	case tea.KeyRunes:
		if len(*text) < 6 {
			*text += string(msg.Runes)
		}
	}
}

// handleMouse selects the pixel under a left click or drag. A cell shows
// two display rows; clicking the cell that holds the selection again
// switches to its other row.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Button != tea.MouseButtonLeft {
		return
	}
	if msg.Action != tea.MouseActionPress && msg.Action != tea.MouseActionMotion {
		return
	}

	row := msg.Y - headerLines
	if row < 0 || msg.X < 0 {
		return
	}

	w, h := m.ex.ScaledSize()
	dx := m.offX + msg.X
	dy := m.offY + 2*row
	if dx >= w || dy >= h {
		return
	}
	if msg.Action == tea.MouseActionPress && dy+1 < h {
		if selX, selY := m.ex.DisplayPosition(); selX == dx && selY == dy {
			dy++
		}
	}

	m.editing = fieldNone
	m.status = ""
	m.ex.SelectDisplay(dx, dy)
	m.syncFields()
}

// syncFields shows the selected pixel in the coordinate boxes
func (m *Model) syncFields() {
	x, y := m.ex.Selected()
	m.xText = strconv.Itoa(x)
	m.yText = strconv.Itoa(y)
}

// viewportSize returns the image area in cells
func (m Model) viewportSize() (int, int) {
	return max(0, m.width), max(0, m.height-headerLines)
}

// scrollToSelection adjusts the offset so the selected pixel is visible
func (m *Model) scrollToSelection() {
	cols, rows := m.viewportSize()
	if cols == 0 || rows == 0 {
		return
	}
	viewW, viewH := cols, 2*rows
	dx, dy := m.ex.DisplayPosition()

	if dx < m.offX {
		m.offX = dx
	} else if dx >= m.offX+viewW {
		m.offX = dx - viewW + 1
	}
	if dy < m.offY {
		m.offY = dy
	} else if dy >= m.offY+viewH {
		m.offY = dy - viewH + 1
	}

	w, h := m.ex.ScaledSize()
	m.offX = clamp(m.offX, 0, max(0, w-viewW))
	m.offY = clamp(m.offY, 0, max(0, h-viewH))
}

// Utility functions
func pixelHex(img image.Image, x, y int) string {
	r, g, b, _ := img.At(img.Bounds().Min.X+x, img.Bounds().Min.Y+y).RGBA()
	return hexColor(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

func hexColor(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func truncate(s string, length int) string {
	r := []rune(s)
	if len(r) <= length {
		return s
	}
	return string(r[:length-3]) + "..."
}
