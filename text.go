package scrollreel

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// TextAlign controls horizontal alignment of a text block.
type TextAlign uint8

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// uiFace is the bitmap face every label is drawn with.
var uiFace = text.NewGoXFace(basicfont.Face7x13)

// uiLineHeight is the line advance of uiFace in pixels.
const uiLineHeight = 16

// TextBlock is a block of text positioned in screen space.
type TextBlock struct {
	Content string
	Align   TextAlign
	// WrapWidth breaks lines at word boundaries when positive.
	WrapWidth float64
	Color     Color
}

// MeasureString returns the advance width of a single line of s.
func MeasureString(s string) float64 {
	return text.Advance(s, uiFace)
}

// lines returns the block split on newlines and wrapped to WrapWidth.
func (tb *TextBlock) lines() []string {
	var out []string
	for _, para := range strings.Split(tb.Content, "\n") {
		if tb.WrapWidth <= 0 {
			out = append(out, para)
			continue
		}
		out = append(out, wrapLine(para, tb.WrapWidth)...)
	}
	return out
}

// Measure returns the size of the laid-out block.
func (tb *TextBlock) Measure() (w, h float64) {
	lines := tb.lines()
	for _, l := range lines {
		w = max(w, MeasureString(l))
	}
	return w, float64(len(lines)) * uiLineHeight
}

// Draw renders the block with its top edge at y. x is the left edge, the
// center or the right edge depending on Align.
func (tb *TextBlock) Draw(dst *ebiten.Image, x, y float64) {
	if tb.Color.A <= 0 {
		return
	}
	for i, l := range tb.lines() {
		lx := x
		switch tb.Align {
		case TextAlignCenter:
			lx -= MeasureString(l) / 2
		case TextAlignRight:
			lx -= MeasureString(l)
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(lx, y+float64(i)*uiLineHeight)
		op.ColorScale.ScaleWithColor(tb.Color.toRGBA())
		text.Draw(dst, l, uiFace, op)
	}
}

// wrapLine greedily breaks s into lines no wider than width. A single word
// wider than width gets a line of its own.
func wrapLine(s string, width float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var out []string
	cur := words[0]
	for _, w := range words[1:] {
		next := cur + " " + w
		if MeasureString(next) > width {
			out = append(out, cur)
			cur = w
			continue
		}
		cur = next
	}
	return append(out, cur)
}
