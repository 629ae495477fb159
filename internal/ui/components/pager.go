package components

import "strings"

// Pager scrolls pre-rendered text inside a fixed height.
type Pager struct {
	lines  []string
	offset int
}

// NewPager splits content into lines.
func NewPager(content string) Pager {
	return Pager{lines: strings.Split(strings.TrimRight(content, "\n"), "\n")}
}

// SetContent replaces the text and returns to the top.
func (p *Pager) SetContent(content string) {
	*p = NewPager(content)
}

// ScrollUp moves the window up by n lines.
func (p *Pager) ScrollUp(n int) {
	p.offset -= n
	if p.offset < 0 {
		p.offset = 0
	}
}

// ScrollDown moves the window down by n lines, stopping at the last line.
func (p *Pager) ScrollDown(n int) {
	p.offset += n
	if max := len(p.lines) - 1; p.offset > max {
		p.offset = max
	}
	if p.offset < 0 {
		p.offset = 0
	}
}

// Offset is the index of the first visible line.
func (p Pager) Offset() int { return p.offset }

// View returns at most height lines starting at the offset.
func (p Pager) View(height int) string {
	if height <= 0 || len(p.lines) == 0 {
		return ""
	}
	end := p.offset + height
	if end > len(p.lines) {
		end = len(p.lines)
	}
	return strings.Join(p.lines[p.offset:end], "\n")
}
