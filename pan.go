package scrollreel

// Panel layout for the horizontal strip, relative to the viewport.
const (
	panelWidthFrac = 0.6
	panelGapFrac   = 0.05
)

// PanStrip is the wide row of panels that translates horizontally while its
// section is pinned.
type PanStrip struct {
	Panels []string
	// Offset is the current horizontal translation (<= 0).
	Offset float64
}

// Width returns the full strip width for the viewport width: every panel plus
// gaps, with a gap at both ends.
func (s *PanStrip) Width(viewportW float64) float64 {
	if s == nil || len(s.Panels) == 0 {
		return 0
	}
	n := float64(len(s.Panels))
	return n*viewportW*panelWidthFrac + (n+1)*viewportW*panelGapFrac
}

// Overflow returns how far the strip extends past the viewport.
func (s *PanStrip) Overflow(viewportW float64) float64 {
	return max(s.Width(viewportW)-viewportW, 0)
}

// Apply sets Offset for progress so that progress 1 brings the strip's right
// edge to the viewport's right edge.
func (s *PanStrip) Apply(progress, viewportW float64) {
	s.Offset = -s.Overflow(viewportW) * clamp01(progress)
}

// PanelRect returns the screen rectangle of panel i given the section's
// screen Y and the viewport size.
func (s *PanStrip) PanelRect(i int, sectionY, viewportW, viewportH float64) Rect {
	w := viewportW * panelWidthFrac
	gap := viewportW * panelGapFrac
	h := viewportH * 0.6
	return Rect{
		X:      s.Offset + gap + float64(i)*(w+gap),
		Y:      sectionY + (viewportH-h)/2,
		Width:  w,
		Height: h,
	}
}
