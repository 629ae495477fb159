package profile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/mungbws1031/leo-study/internal/pkg/logger"
)

// Env carries the single-child fallback values read from CHILD_NAME and
// CHILD_GRADE.
type Env struct {
	ChildName  string
	ChildGrade string
}

// Store holds the loaded profiles in document order.
type Store struct {
	children []Child
	byID     map[string]int
}

// NewStore builds a Store from already validated profiles.
func NewStore(children []Child) *Store {
	s := &Store{children: children, byID: make(map[string]int, len(children))}
	for i, c := range children {
		s.byID[c.ID] = i
	}
	return s
}

// All returns a copy of every profile in document order.
func (s *Store) All() []Child {
	out := make([]Child, len(s.children))
	copy(out, s.children)
	return out
}

// Get looks a profile up by id.
func (s *Store) Get(id string) (Child, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Child{}, false
	}
	return s.children[i], true
}

// Load reads the profile document at path. A missing file selects the
// defaults quietly; an unreadable or invalid one is logged as a ConfigError
// and the defaults are used instead. Load never fails.
func Load(path string, env Env, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Warn("profile document unreadable, using defaults",
				"error", (&ConfigError{Path: path, Err: err}).Error())
		} else {
			log.Debug("no profile document, using defaults", "path", path)
		}
		return NewStore(Defaults(env))
	}

	children, err := Parse(data)
	if err != nil {
		var cfgErr *ConfigError
		if errors.As(err, &cfgErr) {
			cfgErr.Path = path
		}
		log.Warn("profile document invalid, using defaults", "error", err.Error())
		return NewStore(Defaults(env))
	}
	log.Info("profiles loaded", "path", path, "count", len(children))
	return NewStore(children)
}

// Parse decodes a YAML or JSON profile document, validates it against the
// document schema and applies per-category defaults. Errors are
// *ConfigError.
func Parse(data []byte) ([]Child, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &ConfigError{Err: fmt.Errorf("decode: %w", err)}
	}

	// Round-trip through JSON so the validator sees JSON-native values.
	asJSON, err := json.Marshal(raw)
	if err != nil {
		return nil, &ConfigError{Err: fmt.Errorf("normalize: %w", err)}
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(asJSON))
	if err != nil {
		return nil, &ConfigError{Err: fmt.Errorf("normalize: %w", err)}
	}
	sch, err := documentValidator()
	if err != nil {
		return nil, &ConfigError{Err: err}
	}
	if err := sch.Validate(inst); err != nil {
		return nil, &ConfigError{Err: err}
	}

	var doc document
	if err := json.Unmarshal(asJSON, &doc); err != nil {
		return nil, &ConfigError{Err: fmt.Errorf("decode: %w", err)}
	}

	seen := make(map[string]bool, len(doc.Children))
	for i := range doc.Children {
		c := &doc.Children[i]
		if seen[c.ID] {
			return nil, &ConfigError{Err: fmt.Errorf("duplicate child id %q", c.ID)}
		}
		seen[c.ID] = true
		c.Themes = cleanThemes(c.Themes)
		if len(c.Themes) == 0 {
			switch c.Category {
			case CategoryPreschool:
				c.Themes = []string{DefaultPreschoolTheme}
			case CategoryGeneral:
				c.Themes = append([]string(nil), DefaultGeneralThemes...)
			default:
				return nil, &ConfigError{Err: fmt.Errorf("child %q has no themes", c.ID)}
			}
		}
	}
	return doc.Children, nil
}

// Defaults returns the built-in profiles: a single general child when
// CHILD_NAME is set, otherwise the two-child household.
func Defaults(env Env) []Child {
	if name := strings.TrimSpace(env.ChildName); name != "" {
		grade := strings.TrimSpace(env.ChildGrade)
		if grade == "" {
			grade = "1"
		}
		return []Child{{
			ID:               "child",
			Name:             name,
			Grade:            "초등 " + grade + "학년",
			Category:         CategoryGeneral,
			AttentionSupport: true,
			Themes:           append([]string(nil), DefaultGeneralThemes...),
		}}
	}
	return []Child{
		{
			ID:               "minjun",
			Name:             "민준",
			Grade:            "초등 2학년",
			Category:         CategoryElementary,
			AttentionSupport: true,
			Themes:           []string{"마인크래프트", "로블록스"},
		},
		{
			ID:       "seoa",
			Name:     "서아",
			Grade:    "7세",
			Category: CategoryPreschool,
			Themes:   []string{DefaultPreschoolTheme},
		},
	}
}

func cleanThemes(in []string) []string {
	var out []string
	for _, t := range in {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
