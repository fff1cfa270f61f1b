package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/san-kum/arcview/internal/arc"
	"github.com/san-kum/arcview/internal/logging"
	"go.uber.org/zap"
)

// OverrideAnswer is the reply that keeps a malformed record instead of aborting.
const OverrideAnswer = "s"

// Prompter asks the user a question and returns the answer line.
type Prompter interface {
	Prompt(msg string) (string, error)
}

// Store reads task files from a single dataset directory.
type Store struct {
	baseDir string
	ext     string
	prompt  Prompter
	debug   io.Writer
	logger  *zap.Logger
}

type Option func(*Store)

// WithPrompter sets who is asked about malformed records. Without one,
// malformed records always abort the load.
func WithPrompter(p Prompter) Option {
	return func(s *Store) { s.prompt = p }
}

// WithDebug enables the diagnostic mode: each record is printed to w and the
// load pauses for acknowledgment after every file.
func WithDebug(w io.Writer) Option {
	return func(s *Store) { s.debug = w }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.logger = l }
}

func New(baseDir, ext string, opts ...Option) *Store {
	s := &Store{baseDir: baseDir, ext: ext}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = logging.OrNop(s.logger)
	return s
}

func (s *Store) Dir() string { return s.baseDir }

// List returns the names of regular files ending in the configured extension,
// in directory listing order.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), s.ext) {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// Load parses every matching file into a dataset named name. Any read, encoding
// or parse failure aborts the whole load. Non-mapping records go through the prompter.
func (s *Store) Load(name string) (arc.Dataset, error) {
	ds := arc.Dataset{Name: name, Dir: s.baseDir}

	files, err := s.List()
	if err != nil {
		return arc.Dataset{}, &arc.LoadError{Severity: arc.Fatal, Path: s.baseDir, Index: -1, Wrapped: err}
	}

	for _, file := range files {
		path := filepath.Join(s.baseDir, file)
		data, err := os.ReadFile(path)
		if err != nil {
			return arc.Dataset{}, &arc.LoadError{Severity: arc.Fatal, Path: path, Index: -1, Wrapped: err}
		}
		if !utf8.Valid(data) {
			return arc.Dataset{}, &arc.LoadError{Severity: arc.Fatal, Path: path, Index: -1, Wrapped: arc.ErrInvalidEncoding}
		}
		rec, err := arc.NewRecord(file, data)
		if err != nil {
			return arc.Dataset{}, &arc.LoadError{Severity: arc.Fatal, Path: path, Index: -1, Wrapped: err}
		}
		ds.Records = append(ds.Records, rec)

		if s.debug != nil {
			fmt.Fprintln(s.debug, file, "----", rec.Compact())
			fmt.Fprintln(s.debug)
			fmt.Fprintf(s.debug, "Number of records read from %q so far: %d\n\n", name, len(ds.Records))
			if err := s.acknowledge("Press ENTER for next data item"); err != nil {
				return arc.Dataset{}, err
			}
		}
	}

	if ds.Len() == 0 {
		return arc.Dataset{}, &arc.LoadError{Severity: arc.Fatal, Path: s.baseDir, Index: -1, Wrapped: arc.ErrNoRecords}
	}

	for i, rec := range ds.Records {
		if rec.IsMapping() {
			continue
		}
		advisory := &arc.LoadError{
			Severity: arc.Advisory,
			Path:     filepath.Join(s.baseDir, rec.Name),
			Index:    i,
			Wrapped:  arc.ErrNotMapping,
		}
		if !s.override(advisory) {
			return arc.Dataset{}, advisory
		}
		s.logger.Warn("keeping malformed record",
			zap.String("dataset", name),
			zap.Int("index", i),
			zap.String("file", rec.Name))
	}

	if s.debug != nil {
		fmt.Fprintf(s.debug, "\nDataset %q has been loaded and passed (or was allowed past) the initial checks.\n\n", name)
	}

	s.logger.Debug("dataset loaded",
		zap.String("dataset", name),
		zap.String("dir", s.baseDir),
		zap.Int("records", ds.Len()))
	return ds, nil
}

func (s *Store) override(advisory *arc.LoadError) bool {
	if s.prompt == nil {
		return false
	}
	msg := fmt.Sprintf("Element at index %d (%s) is not a keyed mapping.\n", advisory.Index, advisory.Path) +
		fmt.Sprintf("Press ENTER to terminate the program or enter %q to continue running.", OverrideAnswer)
	answer, err := s.prompt.Prompt(msg)
	if err != nil {
		return false
	}
	return answer == OverrideAnswer
}

func (s *Store) acknowledge(msg string) error {
	if s.prompt == nil {
		return nil
	}
	if _, err := s.prompt.Prompt(msg); err != nil && err != io.EOF {
		return err
	}
	return nil
}
