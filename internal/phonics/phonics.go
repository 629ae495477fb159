// Package phonics holds the weekly phonics rotation used by elementary
// missions.
package phonics

import (
	"strings"
	"time"
)

// Pattern is one slot of the rotation.
type Pattern struct {
	Name  string
	Words []string
	Hint  string
}

// WordList joins the example words for embedding into a prompt.
func (p Pattern) WordList() string {
	return strings.Join(p.Words, ", ")
}

// table is the fixed six-week rotation. Order is significant: the slot for a
// week is week mod len(table).
var table = []Pattern{
	{
		Name:  "short a (-at)",
		Words: []string{"cat", "hat", "bat", "mat", "sat"},
		Hint:  "a는 입을 크게 벌리고 짧게 '애'",
	},
	{
		Name:  "short i (-ig)",
		Words: []string{"pig", "big", "dig", "wig", "fig"},
		Hint:  "i는 짧게 '이'",
	},
	{
		Name:  "short o (-op)",
		Words: []string{"hop", "top", "mop", "pop", "stop"},
		Hint:  "o는 입을 동그랗게 짧게 '아'",
	},
	{
		Name:  "sh",
		Words: []string{"ship", "shop", "fish", "shell", "shoe"},
		Hint:  "sh는 조용히 하라고 할 때처럼 '쉬'",
	},
	{
		Name:  "ch",
		Words: []string{"chip", "chin", "chop", "lunch", "cheese"},
		Hint:  "ch는 기차 소리처럼 '취'",
	},
	{
		Name:  "magic e",
		Words: []string{"cake", "bike", "home", "cute", "lake"},
		Hint:  "끝에 e가 붙으면 앞 모음이 자기 이름 소리를 내요",
	},
}

// Len is the rotation length.
func Len() int { return len(table) }

// All returns a copy of the rotation table.
func All() []Pattern {
	out := make([]Pattern, len(table))
	copy(out, table)
	return out
}

// ForWeek returns the pattern for an ISO week number. Negative weeks wrap
// the same way positive ones do.
func ForWeek(week int) Pattern {
	i := week % len(table)
	if i < 0 {
		i += len(table)
	}
	return table[i]
}

// ForDate returns the pattern for the ISO week containing t.
func ForDate(t time.Time) Pattern {
	_, week := t.ISOWeek()
	return ForWeek(week)
}
