package render

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

// Header is the colored band at the top of every document.
type Header struct {
	Title     string
	ChildName string
	Date      time.Time
}

func (h Header) subtitle() string {
	date := h.Date.Format("2006년 01월 02일")
	if h.ChildName == "" {
		return date
	}
	return h.ChildName + " · " + date
}

type rgb struct{ r, g, b int }

var (
	colorBand = rgb{74, 144, 226}
	colorH1   = rgb{214, 234, 248}
	colorH2   = rgb{255, 249, 219}
	colorH3   = rgb{226, 245, 226}
	colorBody = rgb{255, 255, 255}
	colorRule = rgb{200, 200, 200}
)

// style is how one kind of line is drawn, shared by the PDF and PNG
// writers. Sizes are points.
type style struct {
	size float64
	fill rgb
}

var styles = map[Kind]style{
	KindHeading1: {size: 16, fill: colorH1},
	KindHeading2: {size: 13, fill: colorH2},
	KindHeading3: {size: 11.5, fill: colorH3},
	KindBody:     {size: 10.5, fill: colorBody},
}

const pdfFamily = "leo"

var errNoFont = errors.New("font not parsed")

// Renderer writes documents with one font.
type Renderer struct {
	font *Font
}

// NewRenderer creates a Renderer. A nil font selects the bundled one.
func NewRenderer(font *Font) *Renderer {
	if font == nil {
		font = DefaultFont()
	}
	return &Renderer{font: font}
}

// Font returns the renderer's font.
func (r *Renderer) Font() *Font { return r.font }

// PDF renders text as a paginated A4 document.
func (r *Renderer) PDF(text string, hdr Header) ([]byte, error) {
	if r.font.TTF == nil {
		return nil, &RenderError{Format: "pdf", Err: errNoFont}
	}
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddUTF8FontFromBytes(pdfFamily, "", r.font.Data)
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 18)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont(pdfFamily, "", 8)
		pdf.SetTextColor(150, 150, 150)
		pdf.CellFormat(0, 6, fmt.Sprintf("%d / {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFillColor(colorBand.r, colorBand.g, colorBand.b)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont(pdfFamily, "", 17)
	pdf.CellFormat(0, 13, printable(hdr.Title), "", 1, "C", true, 0, "")
	pdf.SetFont(pdfFamily, "", 10)
	pdf.CellFormat(0, 8, printable(hdr.subtitle()), "", 1, "C", true, 0, "")
	pdf.Ln(5)
	pdf.SetTextColor(33, 33, 33)

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()

	for _, line := range Parse(text) {
		switch line.Kind {
		case KindSpace:
			pdf.Ln(3)
		case KindRule:
			y := pdf.GetY() + 2
			pdf.SetDrawColor(colorRule.r, colorRule.g, colorRule.b)
			pdf.Line(left, y, pageW-right, y)
			pdf.Ln(4)
		case KindHeading1:
			st := styles[line.Kind]
			pdf.SetFont(pdfFamily, "", st.size)
			pdf.SetFillColor(st.fill.r, st.fill.g, st.fill.b)
			pdf.CellFormat(0, 11, printable(line.Text), "", 1, "L", true, 0, "")
			pdf.Ln(2)
		case KindHeading2, KindHeading3:
			st := styles[line.Kind]
			pdf.SetFont(pdfFamily, "", st.size)
			pdf.SetFillColor(st.fill.r, st.fill.g, st.fill.b)
			pdf.MultiCell(0, st.size*0.65, printable(line.Text), "", "L", true)
			pdf.Ln(1.5)
		default:
			st := styles[KindBody]
			pdf.SetFont(pdfFamily, "", st.size)
			pdf.MultiCell(0, 6, printable(line.Text), "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &RenderError{Format: "pdf", Err: err}
	}
	return buf.Bytes(), nil
}
