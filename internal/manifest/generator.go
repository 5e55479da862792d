package manifest

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/starford/txtindex/internal/apperr"
	"github.com/starford/txtindex/internal/models"
	"github.com/starford/txtindex/internal/storage"
)

// Outcome describes how a generation run ended.
type Outcome int

const (
	// OutcomeWritten means both documents were regenerated.
	OutcomeWritten Outcome = iota
	// OutcomeCreatedDataDir means the data directory was missing and has
	// been created; nothing was written.
	OutcomeCreatedDataDir
	// OutcomeNothingToIndex means the data directory holds no qualifying files.
	OutcomeNothingToIndex
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWritten:
		return "written"
	case OutcomeCreatedDataDir:
		return "created_data_dir"
	case OutcomeNothingToIndex:
		return "nothing_to_index"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Layout names the data directory and output files, all relative to the root.
type Layout struct {
	DataDir   string
	Suffix    string
	MetaFile  string
	IndexFile string
}

// DefaultLayout is data/*.txt indexed into meta.json and index.json.
func DefaultLayout() Layout {
	return Layout{
		DataDir:   "data",
		Suffix:    ".txt",
		MetaFile:  "meta.json",
		IndexFile: "index.json",
	}
}

// Result is the summary of one Generate call.
type Result struct {
	Outcome Outcome
	Layout  Layout
	Version int
	Items   []models.Item
}

// Generator regenerates the meta and index documents.
type Generator struct {
	store  storage.Provider
	layout Layout
	logger *slog.Logger
	now    func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock overrides the time source used for addedAt and updatedAt.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// WithLogger sets the logger used for recoverable problems.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// NewGenerator returns a Generator writing through store.
func NewGenerator(store storage.Provider, layout Layout, opts ...Option) *Generator {
	g := &Generator{
		store:  store,
		layout: layout,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate scans the data directory and rewrites both documents.
//
// A missing data directory is created and an empty one is reported; neither
// case writes anything. The documents are always fully regenerated and the
// version is one past the previous meta document's, or 1 when that document
// is missing or unreadable.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	l := g.layout
	res := &Result{Layout: l}

	exists, err := g.store.DirExists(l.DataDir)
	if err != nil {
		return nil, fmt.Errorf("manifest: check data dir: %w", err)
	}
	if !exists {
		if err := g.store.EnsureDir(l.DataDir); err != nil {
			return nil, fmt.Errorf("manifest: create data dir: %w", err)
		}
		res.Outcome = OutcomeCreatedDataDir
		return res, nil
	}

	names, err := g.store.ListFiles(l.DataDir, l.Suffix)
	if err != nil {
		return nil, fmt.Errorf("manifest: scan data dir: %w", err)
	}
	if len(names) == 0 {
		res.Outcome = OutcomeNothingToIndex
		return res, nil
	}

	// JSON cannot carry these names byte for byte, so the item path would
	// point at a file that does not exist.
	for _, name := range names {
		if !utf8.ValidString(name) {
			return nil, fmt.Errorf("manifest: %s/%q: %w", l.DataDir, name, apperr.ErrInvalidName)
		}
	}

	now := g.now()
	items := BuildItems(l.DataDir, l.Suffix, names, now)
	version := g.nextVersion()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	metaData, err := Encode(NewMeta(version, now, l.IndexFile))
	if err != nil {
		return nil, err
	}
	indexData, err := Encode(NewIndex(items))
	if err != nil {
		return nil, err
	}
	if err := g.store.Write(l.MetaFile, metaData); err != nil {
		return nil, fmt.Errorf("manifest: write meta: %w", err)
	}
	if err := g.store.Write(l.IndexFile, indexData); err != nil {
		return nil, fmt.Errorf("manifest: write index: %w", err)
	}

	g.logger.Debug("manifest: generated",
		slog.Int("items", len(items)),
		slog.Int("version", version))

	res.Outcome = OutcomeWritten
	res.Version = version
	res.Items = items
	return res, nil
}

// nextVersion reads the previous meta document. Any failure to read or
// parse it restarts the counter at 1.
func (g *Generator) nextVersion() int {
	data, err := g.store.Read(g.layout.MetaFile)
	if errors.Is(err, fs.ErrNotExist) {
		return 1
	}
	if err != nil {
		g.logger.Warn("manifest: previous meta unreadable, version reset",
			slog.String("path", g.layout.MetaFile),
			slog.String("error", err.Error()))
		return 1
	}
	prev, err := ParseVersion(data)
	if err != nil {
		g.logger.Warn("manifest: previous meta invalid, version reset",
			slog.String("path", g.layout.MetaFile),
			slog.String("error", err.Error()))
		return 1
	}
	return prev + 1
}
