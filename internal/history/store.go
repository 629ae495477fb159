// Package history persists generated missions as dated text files, one
// directory per child.
package history

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/mungbws1031/leo-study/internal/pkg/logger"
)

const (
	filePrefix   = "mission_"
	legacyPrefix = "과제_"
	fileExt      = ".txt"
	keyLayout    = "20060102"
	labelLayout  = "2006년 01월 02일"
	headerPrefix = "날짜: "
)

var (
	separator = strings.Repeat("=", 40)
	childIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

// Entry is one stored mission.
type Entry struct {
	// Key is the date part of the filename, normally YYYYMMDD.
	Key string
	// Day is the parsed key; zero when the key is not a date.
	Day time.Time
	// Label is the display date, or Key when it does not parse.
	Label string
	// Text is the generated mission with the date header removed.
	Text string
	// Raw is the full file content.
	Raw  string
	Path string
}

// Store reads and writes mission files under a root directory.
type Store struct {
	root string
	log  *logger.Logger
}

// NewStore creates a Store rooted at dir. Directories are created lazily
// on first save.
func NewStore(dir string, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{root: dir, log: log}
}

// Root returns the store's root directory.
func (s *Store) Root() string { return s.root }

func (s *Store) childDir(childID string) (string, error) {
	if !childIDRe.MatchString(childID) {
		return "", fmt.Errorf("%w: %q", ErrInvalidChild, childID)
	}
	return filepath.Join(s.root, childID), nil
}

// FileName is the on-disk name for a day's mission.
func FileName(day time.Time) string {
	return filePrefix + day.Format(keyLayout) + fileExt
}

// Format renders the stored file content for text saved on day.
func Format(text string, day time.Time) string {
	return headerPrefix + day.Format(labelLayout) + "\n" + separator + "\n\n" + text
}

// Save writes text as the mission for (childID, day) and returns the file
// path. A second save on the same day replaces the first.
func (s *Store) Save(childID, text string, day time.Time) (string, error) {
	dir, err := s.childDir(childID)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &StorageError{Op: "mkdir", Path: dir, Err: err}
	}

	path := filepath.Join(dir, FileName(day))
	if err := writeFileAtomic(dir, path, []byte(Format(text, day))); err != nil {
		return "", &StorageError{Op: "save", Path: path, Err: err}
	}
	s.log.Info("mission saved", "child", childID, "path", path)
	return path, nil
}

func writeFileAtomic(dir, path string, data []byte) error {
	tmp, err := os.CreateTemp(dir, ".mission-*.tmp")
	if err != nil {
		return err
	}
	name := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(name)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return err
	}
	if err := os.Rename(name, path); err != nil {
		os.Remove(name)
		return err
	}
	return nil
}

// List returns every stored mission for childID, oldest first. A file
// that cannot be read is logged and skipped; the rest of the listing is
// still returned. A child with no directory yet has no entries.
func (s *Store) List(childID string) ([]Entry, error) {
	dir, err := s.childDir(childID)
	if err != nil {
		return nil, err
	}
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, &StorageError{Op: "list", Path: dir, Err: err}
	}

	byKey := make(map[string]Entry)
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		key, legacy, ok := parseName(de.Name())
		if !ok {
			continue
		}
		if _, seen := byKey[key]; seen && legacy {
			continue
		}
		path := filepath.Join(dir, de.Name())
		raw, err := os.ReadFile(path)
		if err != nil {
			s.log.Warn("skipping unreadable mission file", "path", path, "error", err.Error())
			continue
		}
		byKey[key] = newEntry(key, path, string(raw))
	}

	entries := make([]Entry, 0, len(byKey))
	for _, e := range byKey {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries, nil
}

// Recent returns at most n of the newest missions, oldest first.
func (s *Store) Recent(childID string, n int) ([]Entry, error) {
	entries, err := s.List(childID)
	if err != nil {
		return nil, err
	}
	if n >= 0 && len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	return entries, nil
}

// Get returns the mission stored for day.
func (s *Store) Get(childID string, day time.Time) (Entry, error) {
	entries, err := s.List(childID)
	if err != nil {
		return Entry{}, err
	}
	key := day.Format(keyLayout)
	for _, e := range entries {
		if e.Key == key {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %s %s", ErrNotFound, childID, key)
}

// parseName extracts the key from a mission filename. Names are NFC
// normalized first so decomposed Hangul from other filesystems matches.
func parseName(name string) (key string, legacy bool, ok bool) {
	name = norm.NFC.String(name)
	if !strings.HasSuffix(name, fileExt) {
		return "", false, false
	}
	stem := strings.TrimSuffix(name, fileExt)
	switch {
	case strings.HasPrefix(stem, filePrefix):
		key = strings.TrimPrefix(stem, filePrefix)
	case strings.HasPrefix(stem, legacyPrefix):
		key, legacy = strings.TrimPrefix(stem, legacyPrefix), true
	default:
		return "", false, false
	}
	if key == "" {
		return "", false, false
	}
	return key, legacy, true
}

func newEntry(key, path, raw string) Entry {
	e := Entry{Key: key, Label: key, Raw: raw, Text: stripHeader(raw), Path: path}
	if day, err := time.ParseInLocation(keyLayout, key, time.Local); err == nil {
		e.Day = day
		e.Label = day.Format(labelLayout)
	}
	return e
}

func stripHeader(raw string) string {
	if !strings.HasPrefix(raw, headerPrefix) {
		return raw
	}
	_, rest, ok := strings.Cut(raw, "\n")
	if !ok || !strings.HasPrefix(rest, separator) {
		return raw
	}
	rest = strings.TrimPrefix(rest, separator)
	rest = strings.TrimPrefix(rest, "\n")
	return strings.TrimPrefix(rest, "\n")
}

// DownloadName is the suggested filename for exporting a mission as text.
func DownloadName(day time.Time) string {
	return "과제_" + day.Format("0102") + fileExt
}
