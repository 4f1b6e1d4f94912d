// Package persistence stores lookup results as flat timestamped JSON files.
package persistence

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"

	"xlookup/internal/domain"
	"xlookup/internal/domain/entity"
	"xlookup/pkg/errcodes"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const (
	timestampLayout = "20060102_150405"
	fileMode        = 0o644
	dirMode         = 0o755
)

type ResultStore struct {
	dir string
	now func() time.Time
}

// NewResultStore creates the results directory if needed.
func NewResultStore(dir string) (*ResultStore, error) {
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return nil, fmt.Errorf("os.MkdirAll: %w", err)
	}

	return &ResultStore{dir: dir, now: time.Now}, nil
}

func (s *ResultStore) WithClock(now func() time.Time) *ResultStore {
	s.now = now
	return s
}

// SaveResult writes one result as <sanitized-number>_<timestamp>.json and
// returns the file name.
func (s *ResultStore) SaveResult(result *entity.LookupResult) (string, error) {
	name := fmt.Sprintf("%s_%s.json", sanitizeNumber(result.SearchedNumber), s.now().Format(timestampLayout))

	if err := s.write(name, result); err != nil {
		return "", err
	}

	return name, nil
}

// SaveBatch writes a whole batch as bulk_<timestamp>.json.
func (s *ResultStore) SaveBatch(batch *entity.BatchResult) (string, error) {
	name := fmt.Sprintf("bulk_%s.json", s.now().Format(timestampLayout))

	if err := s.write(name, batch); err != nil {
		return "", err
	}

	return name, nil
}

// List returns saved result file names, most recent first. Timestamped names
// make reverse lexicographic order chronological.
func (s *ResultStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("os.ReadDir: %w", err)
	}

	names := lo.FilterMap(entries, func(entry os.DirEntry, _ int) (string, bool) {
		return entry.Name(), !entry.IsDir() && strings.HasSuffix(entry.Name(), ".json")
	})

	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	return names, nil
}

// Read returns the stored pretty-printed JSON for display.
func (s *ResultStore) Read(name string) ([]byte, error) {
	if name != filepath.Base(name) {
		return nil, domain.NewError(errcodes.ValidationError, "invalid result file name")
	}

	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	return data, nil
}

func (s *ResultStore) write(name string, data any) error {
	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent: %w", err)
	}

	if err := os.WriteFile(filepath.Join(s.dir, name), encoded, fileMode); err != nil {
		return fmt.Errorf("os.WriteFile: %w", err)
	}

	return nil
}

// sanitizeNumber keeps file names portable; anything outside [0-9A-Za-z]
// becomes an underscore, matching the historical naming of saved results.
func sanitizeNumber(number string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9',
			r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z':
			return r
		default:
			return '_'
		}
	}, number)
}
