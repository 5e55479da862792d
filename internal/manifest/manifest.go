// Package manifest builds the meta and index documents from the data directory.
package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/starford/txtindex/internal/models"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02T15:04:05Z"
)

// FormatID renders a 1-based position as a zero-padded id. Positions past
// 999 simply grow wider.
func FormatID(pos int) string {
	return fmt.Sprintf("%03d", pos)
}

// Label derives the display label of a data file by removing suffix.
// A name that is nothing but dots once the suffix is gone keeps its full
// name, so ".txt" is labelled ".txt".
func Label(name, suffix string) string {
	stem := strings.TrimSuffix(name, suffix)
	if strings.Trim(stem, ".") == "" {
		return name
	}
	return stem
}

// BuildItems creates one item per name, keeping the order of names.
// addedAt is the UTC calendar date of now.
func BuildItems(dataDir, suffix string, names []string, now time.Time) []models.Item {
	dir := filepath.ToSlash(filepath.Clean(dataDir))
	addedAt := now.UTC().Format(dateLayout)

	items := make([]models.Item, 0, len(names))
	for i, name := range names {
		items = append(items, models.Item{
			ID:      FormatID(i + 1),
			Label:   Label(name, suffix),
			Path:    dir + "/" + name,
			AddedAt: addedAt,
		})
	}
	return items
}

// NewIndex wraps items in an index document.
func NewIndex(items []models.Item) models.Index {
	if items == nil {
		items = []models.Item{}
	}
	return models.Index{
		SchemaVersion: models.SchemaVersion,
		Items:         items,
	}
}

// NewMeta returns the version record pointing at indexName.
func NewMeta(version int, now time.Time, indexName string) models.Meta {
	return models.Meta{
		Version:   version,
		UpdatedAt: now.UTC().Format(timestampLayout),
		IndexURL:  indexName,
	}
}

// ParseVersion extracts the version counter from a previous meta document.
// A document without a version field yields 0. A negative version, or one
// that cannot be incremented, is an error.
func ParseVersion(data []byte) (int, error) {
	var prior struct {
		Version *int `json:"version"`
	}
	if err := json.Unmarshal(data, &prior); err != nil {
		return 0, fmt.Errorf("manifest: parse meta: %w", err)
	}
	if prior.Version == nil {
		return 0, nil
	}
	v := *prior.Version
	if v < 0 || v == math.MaxInt {
		return 0, fmt.Errorf("manifest: version %d out of range", v)
	}
	return v, nil
}

// Encode renders v as two-space indented JSON with a trailing newline.
// Non-ASCII and HTML characters are written as-is.
func Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("manifest: encode: %w", err)
	}
	return buf.Bytes(), nil
}
