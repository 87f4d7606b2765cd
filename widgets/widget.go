package widgets

import "github.com/charmbracelet/lipgloss"

// Widget renders itself into at most width columns and height rows.
type Widget interface {
	Render(width, height int) string
}

// Text is a pre-rendered string used as a widget.
type Text string

func (t Text) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	return fitCanvas(string(t), width, height)
}

// SeatColors gives each seat a stable color across blocks, chart and table.
var SeatColors = []lipgloss.Color{"39", "208", "170", "78"}

// SeatColor returns the color for seat, cycling if needed.
func SeatColor(seat int) lipgloss.Color {
	if seat < 0 {
		seat = -seat
	}
	return SeatColors[seat%len(SeatColors)]
}

var (
	DimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	TitleStyle = lipgloss.NewStyle().Bold(true)
)
