// Package dictionary turns raw word lists into the Valid Word Set a ladder
// search runs over, and reads those lists from storage.
//
// Preparation:
//
//	Prepare(raw, length) keeps the words of exactly length letters whose every
//	rune is a Unicode letter, collapses duplicates and sorts the result.
//	Case is preserved: "Spin" and "spin" are different words.
//
// Loading:
//
//	Load(path) reads one word per line. The format follows the extension:
//
//	  .gz              gzip-compressed text (klauspost/compress/gzip)
//	  .zst, .zstd      zstd-compressed text (klauspost/compress/zstd)
//	  .db, .sqlite,
//	  .sqlite3         SQLite database; WithQuery selects the word column
//	                   (default "SELECT word FROM words")
//	  anything else    plain text
//
//	Line terminators (\n and \r\n) are stripped; nothing else is trimmed, so
//	a line with stray spaces is later rejected by Prepare rather than
//	silently repaired. A line over 1 MiB is skipped without failing the load.
//
//	LoadGlob(pattern) loads and concatenates every file matching a doublestar
//	pattern such as "dicts/**/*.txt".
//
// Fingerprint:
//
//	Fingerprint(words) is the hex BLAKE3-256 digest of the newline-joined
//	words. Applied to a prepared (sorted, unique) set it identifies the exact
//	dictionary snapshot a solve ran on.
//
// Errors:
//
//	ErrFileNotFound   - the path does not exist, or a glob matched nothing.
//	ErrFormat         - a compressed or database source could not be decoded.
package dictionary
