package chaos

import (
	"image/color"
	"strconv"
)

// StatsOverlay displays real-time engine statistics
type StatsOverlay struct {
	Visible bool

	// FPS tracking
	FrameCount    int
	LastFPSUpdate float64
	CurrentFPS    float64

	// Position and styling
	PanelX      float64
	PanelY      float64
	LineHeight  float64
	PanelWidth  float64
	PanelHeight float64
}

// StatLine is one label/value row of the panel.
type StatLine struct {
	Label string
	Value string
	Color color.Color
}

var (
	statLabelColor  = color.RGBA{0xcc, 0xcc, 0xcc, 0xff}
	statAccentColor = color.RGBA{0x00, 0xaa, 0xff, 0xff}
	statPanelColor  = color.RGBA{0x00, 0x00, 0x00, 0xbf}
	statGreen       = color.RGBA{0x00, 0xff, 0x00, 0xff}
	statGrey        = color.RGBA{0xaa, 0xaa, 0xaa, 0xff}
	statWhite       = color.RGBA{0xff, 0xff, 0xff, 0xff}
	statRed         = color.RGBA{0xff, 0x00, 0x66, 0xff}
	statYellow      = color.RGBA{0xff, 0xff, 0x00, 0xff}
)

// NewStatsOverlay creates a hidden stats overlay instance
func NewStatsOverlay() *StatsOverlay {
	return &StatsOverlay{
		PanelX:      16,
		PanelY:      16,
		LineHeight:  18,
		PanelWidth:  264,
		PanelHeight: 220,
	}
}

// Toggle toggles the stats overlay visibility
func (s *StatsOverlay) Toggle() {
	s.Visible = !s.Visible
}

// UpdateFPS counts one frame at the host timestamp currentTime (ms).
func (s *StatsOverlay) UpdateFPS(currentTime float64) {
	s.FrameCount++

	// Update FPS every second
	elapsed := currentTime - s.LastFPSUpdate
	if elapsed >= 1000 {
		s.CurrentFPS = float64(s.FrameCount) / (elapsed / 1000)
		s.FrameCount = 0
		s.LastFPSUpdate = currentTime
	}
}

// Lines formats a snapshot into panel rows.
func (s *StatsOverlay) Lines(snap Snapshot) []StatLine {
	audioState, audioColor := "off", statRed
	switch {
	case snap.AudioReady:
		audioState, audioColor = "on", statGreen
	case snap.AudioEnabled:
		audioState, audioColor = "no device", statYellow
	}
	return []StatLine{
		{"FPS", strconv.FormatFloat(s.CurrentFPS, 'f', 1, 64), statGreen},
		{"Effect", snap.Effect.String(), statWhite},
		{"Generation", strconv.FormatUint(snap.Generation, 10), statGrey},
		{"Frames", strconv.Itoa(snap.Frames), statGrey},
		{"Entities", strconv.Itoa(snap.Entities), statAccentColor},
		{"Labels", strconv.Itoa(snap.Labels), statAccentColor},
		{"Sustained", strconv.Itoa(snap.Sustained), statYellow},
		{"Audio", audioState, audioColor},
		{"Volume", strconv.Itoa(int(snap.Volume+0.5)) + "%", statWhite},
	}
}

// Render draws the panel onto surf, which is cleared first. A hidden
// overlay only clears.
func (s *StatsOverlay) Render(surf Surface, snap Snapshot) {
	surf.Clear()
	if !s.Visible {
		return
	}

	// Panel background and border
	surf.FillRect(s.PanelX, s.PanelY, s.PanelWidth, s.PanelHeight, statPanelColor)
	x0, y0 := s.PanelX, s.PanelY
	x1, y1 := s.PanelX+s.PanelWidth, s.PanelY+s.PanelHeight
	surf.StrokeLine(x0, y0, x1, y0, 1, statAccentColor)
	surf.StrokeLine(x1, y0, x1, y1, 1, statAccentColor)
	surf.StrokeLine(x1, y1, x0, y1, 1, statAccentColor)
	surf.StrokeLine(x0, y1, x0, y0, 1, statAccentColor)

	// Title
	surf.FillText("CHAOS STATS [F10]", s.PanelX+10, s.PanelY+20, statAccentColor)
	surf.StrokeLine(s.PanelX+10, s.PanelY+28, s.PanelX+s.PanelWidth-10, s.PanelY+28, 1, statGrey)

	y := s.PanelY + 46
	for _, line := range s.Lines(snap) {
		s.drawStatLine(surf, line, y)
		y += s.LineHeight
	}
}

// drawStatLine draws a single stat line with label and value
func (s *StatsOverlay) drawStatLine(surf Surface, line StatLine, y float64) {
	surf.FillText(line.Label+":", s.PanelX+15, y, statLabelColor)
	surf.FillText(line.Value, s.PanelX+130, y, line.Color)
}
