package dictionary_test

import (
	"bytes"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/wordladder/dictionary"
)

// spinText is the shared fixture with mixed line endings.
const spinText = "spin\r\nspit\nspat\r\nspot\nspan\n"

var spinWords = []string{"spin", "spit", "spat", "spot", "span"}

// LoadSuite exercises every dictionary source under a fresh temp dir.
type LoadSuite struct {
	suite.Suite
	dir string
}

func (s *LoadSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

// write creates name under the suite dir with data.
func (s *LoadSuite) write(name string, data []byte) string {
	p := filepath.Join(s.dir, name)
	require.NoError(s.T(), os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(s.T(), os.WriteFile(p, data, 0o644))
	return p
}

// TestPlainText strips both line terminators.
func (s *LoadSuite) TestPlainText() {
	p := s.write("words.txt", []byte(spinText))
	words, err := dictionary.Load(p)
	require.NoError(s.T(), err)
	require.Equal(s.T(), spinWords, words)
}

// TestEmptyFile yields no words and no error.
func (s *LoadSuite) TestEmptyFile() {
	p := s.write("empty.txt", nil)
	words, err := dictionary.Load(p)
	require.NoError(s.T(), err)
	require.Empty(s.T(), words)
}

// TestMissing reports ErrFileNotFound.
func (s *LoadSuite) TestMissing() {
	_, err := dictionary.Load(filepath.Join(s.dir, "an invalid file.txt"))
	require.ErrorIs(s.T(), err, dictionary.ErrFileNotFound)

	_, err = dictionary.Load(s.dir)
	require.ErrorIs(s.T(), err, dictionary.ErrFileNotFound)
}

// TestGzip decodes .gz sources.
func (s *LoadSuite) TestGzip() {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(spinText))
	require.NoError(s.T(), err)
	require.NoError(s.T(), zw.Close())

	words, err := dictionary.Load(s.write("words.txt.gz", buf.Bytes()))
	require.NoError(s.T(), err)
	require.Equal(s.T(), spinWords, words)

	_, err = dictionary.Load(s.write("broken.gz", []byte("not gzip")))
	require.ErrorIs(s.T(), err, dictionary.ErrFormat)
}

// TestZstd decodes .zst sources.
func (s *LoadSuite) TestZstd() {
	enc, err := zstd.NewWriter(nil)
	require.NoError(s.T(), err)
	data := enc.EncodeAll([]byte(spinText), nil)
	require.NoError(s.T(), enc.Close())

	words, err := dictionary.Load(s.write("words.zst", data))
	require.NoError(s.T(), err)
	require.Equal(s.T(), spinWords, words)
}

// TestSQLite reads the words table and honors WithQuery.
func (s *LoadSuite) TestSQLite() {
	p := filepath.Join(s.dir, "words.db")
	db, err := sql.Open("sqlite", p)
	require.NoError(s.T(), err)
	_, err = db.Exec(`CREATE TABLE words (word TEXT, lang TEXT)`)
	require.NoError(s.T(), err)
	for _, w := range spinWords {
		_, err = db.Exec(`INSERT INTO words (word, lang) VALUES (?, 'en')`, w)
		require.NoError(s.T(), err)
	}
	_, err = db.Exec(`INSERT INTO words (word, lang) VALUES ('spät', 'de'), (NULL, 'en')`)
	require.NoError(s.T(), err)
	require.NoError(s.T(), db.Close())

	words, err := dictionary.Load(p)
	require.NoError(s.T(), err)
	require.ElementsMatch(s.T(), append([]string{"spät"}, spinWords...), words)

	words, err = dictionary.Load(p, dictionary.WithQuery(`SELECT word FROM words WHERE lang = 'de'`))
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"spät"}, words)

	_, err = dictionary.Load(p, dictionary.WithQuery(`SELECT word FROM nope`))
	require.ErrorIs(s.T(), err, dictionary.ErrFormat)
}

// TestGlob merges matching files across nested directories.
func (s *LoadSuite) TestGlob() {
	s.write("a/one.txt", []byte("spin\nspit\n"))
	s.write("a/b/two.txt", []byte("spat\nspot\n"))
	s.write("a/b/skip.csv", []byte("span\n"))

	words, err := dictionary.LoadGlob(filepath.ToSlash(s.dir) + "/**/*.txt")
	require.NoError(s.T(), err)
	require.ElementsMatch(s.T(), []string{"spin", "spit", "spat", "spot"}, words)

	_, err = dictionary.LoadGlob(filepath.ToSlash(s.dir) + "/**/*.none")
	require.ErrorIs(s.T(), err, dictionary.ErrFileNotFound)
}

// TestLoadSuite runs the suite.
func TestLoadSuite(t *testing.T) {
	suite.Run(t, new(LoadSuite))
}

// TestLoadReader handles a missing final newline.
func TestLoadReader(t *testing.T) {
	words, err := dictionary.LoadReader(strings.NewReader("spin\r\nspot"))
	require.NoError(t, err)
	require.Equal(t, []string{"spin", "spot"}, words)
}

// TestLoadReader_LongLines skips a line over the size limit and keeps
// lines that only span several read buffers.
func TestLoadReader_LongLines(t *testing.T) {
	wide := strings.Repeat("w", 200*1024)
	huge := strings.Repeat("h", 1<<20+1)
	text := "spin\n" + huge + "\r\nspit\n" + wide + "\nspot"

	words, err := dictionary.LoadReader(strings.NewReader(text))
	require.NoError(t, err)
	require.Equal(t, []string{"spin", "spit", wide, "spot"}, words)
}
