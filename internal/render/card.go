package render

import (
	"bytes"
	"fmt"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// Card geometry in pixels.
const (
	cardWidth   = 1080
	cardPadding = 56
	cardBandH   = 170
	cardScale   = 2.6 // points to pixels
)

type cardLine struct {
	kind  Kind
	text  string
	lines []string
	h     float64
}

// PNG renders text as a single tall image suitable for sharing in a chat
// app. Layout follows the PDF styles.
func (r *Renderer) PNG(text string, hdr Header) ([]byte, error) {
	if r.font.TTF == nil {
		return nil, &RenderError{Format: "png", Err: errNoFont}
	}
	faces := make(map[Kind]font.Face, len(styles))
	for k, st := range styles {
		faces[k] = truetype.NewFace(r.font.TTF, &truetype.Options{Size: st.size * cardScale})
	}
	titleFace := truetype.NewFace(r.font.TTF, &truetype.Options{Size: 17 * cardScale})
	subFace := truetype.NewFace(r.font.TTF, &truetype.Options{Size: 10 * cardScale})

	inner := float64(cardWidth - 2*cardPadding)
	measure := gg.NewContext(1, 1)

	var blocks []cardLine
	height := float64(cardBandH + cardPadding)
	for _, line := range Parse(text) {
		b := cardLine{kind: line.Kind, text: printable(line.Text)}
		switch line.Kind {
		case KindSpace:
			b.h = 18
		case KindRule:
			b.h = 30
		default:
			face := faces[line.Kind]
			measure.SetFontFace(face)
			b.lines = wrapCard(measure, b.text, inner-24)
			if len(b.lines) == 0 {
				b.lines = []string{""}
			}
			b.h = float64(len(b.lines))*measure.FontHeight()*1.45 + 12
			if line.Kind != KindBody {
				b.h += 14
			}
		}
		blocks = append(blocks, b)
		height += b.h
	}
	height += cardPadding

	dc := gg.NewContext(cardWidth, int(height))
	dc.SetRGB255(colorBody.r, colorBody.g, colorBody.b)
	dc.Clear()

	dc.SetRGB255(colorBand.r, colorBand.g, colorBand.b)
	dc.DrawRectangle(0, 0, cardWidth, cardBandH)
	dc.Fill()
	dc.SetRGB255(255, 255, 255)
	dc.SetFontFace(titleFace)
	dc.DrawStringAnchored(printable(hdr.Title), cardWidth/2, cardBandH*0.42, 0.5, 0.5)
	dc.SetFontFace(subFace)
	dc.DrawStringAnchored(printable(hdr.subtitle()), cardWidth/2, cardBandH*0.75, 0.5, 0.5)

	y := float64(cardBandH + cardPadding)
	for _, b := range blocks {
		switch b.kind {
		case KindSpace:
		case KindRule:
			dc.SetRGB255(colorRule.r, colorRule.g, colorRule.b)
			dc.SetLineWidth(2)
			dc.DrawLine(cardPadding, y+b.h/2, cardWidth-cardPadding, y+b.h/2)
			dc.Stroke()
		default:
			st := styles[b.kind]
			if b.kind != KindBody {
				dc.SetRGB255(st.fill.r, st.fill.g, st.fill.b)
				dc.DrawRoundedRectangle(cardPadding, y, inner, b.h-8, 14)
				dc.Fill()
			}
			dc.SetFontFace(faces[b.kind])
			dc.SetRGB255(33, 33, 33)
			lineH := dc.FontHeight() * 1.45
			ty := y + 12
			if b.kind != KindBody {
				ty += 7
			}
			for _, l := range b.lines {
				dc.DrawStringAnchored(l, cardPadding+12, ty, 0, 1)
				ty += lineH
			}
		}
		y += b.h
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, &RenderError{Format: "png", Err: fmt.Errorf("encode: %w", err)}
	}
	return buf.Bytes(), nil
}

// wrapCard wraps on spaces, then breaks any line still wider than width
// by rune. Korean is often written in long runs without spaces.
func wrapCard(dc *gg.Context, text string, width float64) []string {
	var out []string
	for _, line := range dc.WordWrap(text, width) {
		if w, _ := dc.MeasureString(line); w <= width {
			out = append(out, line)
			continue
		}
		var cur []rune
		for _, r := range line {
			next := append(cur, r)
			if w, _ := dc.MeasureString(string(next)); w > width && len(cur) > 0 {
				out = append(out, string(cur))
				next = []rune{r}
			}
			cur = next
		}
		if len(cur) > 0 {
			out = append(out, string(cur))
		}
	}
	return out
}
