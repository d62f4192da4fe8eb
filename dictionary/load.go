package dictionary

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	_ "modernc.org/sqlite"
)

// DefaultQuery selects the words of a SQLite dictionary.
const DefaultQuery = "SELECT word FROM words"

// maxLineSize bounds a single dictionary line; longer lines are dropped.
const maxLineSize = 1 << 20

var (
	// ErrFileNotFound indicates that the dictionary source does not exist.
	ErrFileNotFound = errors.New("dictionary: file not found")

	// ErrFormat indicates that a source could not be decoded in the format
	// its extension promised.
	ErrFormat = errors.New("dictionary: unreadable format")
)

// LoadOption configures Load and LoadGlob.
type LoadOption func(*loadOptions)

type loadOptions struct {
	ctx   context.Context
	query string
}

func defaultLoadOptions() loadOptions {
	return loadOptions{ctx: context.Background(), query: DefaultQuery}
}

// WithContext bounds database reads with ctx. Nil is ignored.
func WithContext(ctx context.Context) LoadOption {
	return func(o *loadOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithQuery sets the statement used to read SQLite dictionaries. It must
// return a single text column. Empty is ignored.
func WithQuery(q string) LoadOption {
	return func(o *loadOptions) {
		if q != "" {
			o.query = q
		}
	}
}

// Load reads the raw word list at path. The format is chosen by extension
// (see the package documentation). A missing path yields ErrFileNotFound.
func Load(path string, opts ...LoadOption) ([]string, error) {
	o := defaultLoadOptions()
	for _, opt := range opts {
		opt(&o)
	}

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %q", ErrFileNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("dictionary: stat %q: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %q is a directory", ErrFileNotFound, path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return loadSQLite(o, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary: open %q: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%w: gzip %q: %v", ErrFormat, path, err)
		}
		defer zr.Close()
		r = zr
	case ".zst", ".zstd":
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%w: zstd %q: %v", ErrFormat, path, err)
		}
		defer zr.Close()
		r = zr
	}

	words, err := LoadReader(r)
	if err != nil {
		return nil, fmt.Errorf("dictionary: read %q: %w", path, err)
	}
	return words, nil
}

// LoadReader reads one word per line from r, stripping line terminators.
// A line longer than maxLineSize cannot be a word and is skipped.
func LoadReader(r io.Reader) ([]string, error) {
	br := bufio.NewReaderSize(r, 64*1024)

	words := make([]string, 0, 1024)
	line := make([]byte, 0, 64)
	overlong := false
	for {
		frag, more, err := br.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if !overlong && len(line)+len(frag) <= maxLineSize {
			line = append(line, frag...)
		} else {
			overlong = true
		}
		if more {
			continue
		}
		if !overlong {
			words = append(words, strings.TrimSuffix(string(line), "\r"))
		}
		line, overlong = line[:0], false
	}
	return words, nil
}

// LoadGlob loads every file matching the doublestar pattern and returns
// their words concatenated in match order. A pattern that matches nothing
// yields ErrFileNotFound.
func LoadGlob(pattern string, opts ...LoadOption) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("dictionary: glob %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: no file matches %q", ErrFileNotFound, pattern)
	}

	var all []string
	for _, m := range matches {
		words, err := Load(m, opts...)
		if err != nil {
			return nil, err
		}
		all = append(all, words...)
	}
	return all, nil
}

// loadSQLite runs o.query against the database at path.
func loadSQLite(o loadOptions, path string) ([]string, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: open sqlite %q: %v", ErrFormat, path, err)
	}
	defer db.Close()

	rows, err := db.QueryContext(o.ctx, o.query)
	if err != nil {
		return nil, fmt.Errorf("%w: query sqlite %q: %v", ErrFormat, path, err)
	}
	defer rows.Close()

	words := make([]string, 0, 1024)
	for rows.Next() {
		var w sql.NullString
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("%w: scan sqlite %q: %v", ErrFormat, path, err)
		}
		if w.Valid {
			words = append(words, w.String)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read sqlite %q: %v", ErrFormat, path, err)
	}
	return words, nil
}
