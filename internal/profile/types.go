package profile

import "slices"

// Category selects the mission template a child gets.
type Category string

const (
	CategoryElementary Category = "elementary"
	CategoryPreschool  Category = "preschool"
	// CategoryGeneral is the single-child profile built from CHILD_NAME and
	// CHILD_GRADE when no profile document exists.
	CategoryGeneral Category = "general"
)

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryElementary, CategoryPreschool, CategoryGeneral:
		return true
	}
	return false
}

// Default themes applied when a document leaves a child's list empty.
var (
	DefaultPreschoolTheme = "동물 친구들"
	DefaultGeneralThemes  = []string{"마인크래프트", "로블록스"}
)

// Child is one child's profile. Profiles are loaded once and treated as
// read-only for the rest of the process.
type Child struct {
	ID               string   `json:"id" yaml:"id"`
	Name             string   `json:"name" yaml:"name"`
	Grade            string   `json:"grade" yaml:"grade"`
	Category         Category `json:"category" yaml:"category"`
	AttentionSupport bool     `json:"attention_support" yaml:"attention_support"`
	Themes           []string `json:"themes" yaml:"themes"`
}

// HasTheme reports whether theme is one of the child's preferred themes.
func (c Child) HasTheme(theme string) bool {
	return slices.Contains(c.Themes, theme)
}

// document is the on-disk shape of the profile list.
type document struct {
	Children []Child `json:"children" yaml:"children"`
}
