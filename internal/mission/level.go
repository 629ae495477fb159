package mission

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidLevel is returned for a difficulty the generator does not know.
var ErrInvalidLevel = errors.New("invalid difficulty level")

// Level is the per-request difficulty.
type Level string

const (
	LevelEasy   Level = "easy"
	LevelNormal Level = "normal"
	LevelHard   Level = "hard"
)

// Levels lists the difficulties in increasing order.
var Levels = []Level{LevelEasy, LevelNormal, LevelHard}

var levelGuides = map[Level]string{
	LevelEasy:   "아주 쉽게, 문제 1개씩만",
	LevelNormal: "적당하게, 문제 2개씩",
	LevelHard:   "조금 도전적으로, 심화 문제 포함",
}

var levelLabels = map[Level]string{
	LevelEasy:   "쉬움",
	LevelNormal: "보통",
	LevelHard:   "어려움",
}

// ParseLevel accepts the English identifiers and the Korean labels.
func ParseLevel(s string) (Level, error) {
	s = strings.TrimSpace(s)
	for _, l := range Levels {
		if strings.EqualFold(s, string(l)) || s == levelLabels[l] {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	_, ok := levelGuides[l]
	return ok
}

// Guide is the quantity and pacing phrase embedded in the prompt.
func (l Level) Guide() string { return levelGuides[l] }

// Label is the Korean display name.
func (l Level) Label() string { return levelLabels[l] }
