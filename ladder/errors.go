package ladder

import (
	"errors"
	"fmt"
)

// Kind enumerates the input failures a solve can report. The set is closed:
// every *Error carries exactly one of these kinds.
type Kind int

const (
	// KindDictionaryFileNotFound: the dictionary source does not exist.
	KindDictionaryFileNotFound Kind = iota + 1
	// KindInvalidWord: the start or end word is empty.
	KindInvalidWord
	// KindWordsAreSame: start equals end.
	KindWordsAreSame
	// KindWordLengthMismatch: start and end differ in length.
	KindWordLengthMismatch
	// KindNoValidWords: no dictionary word survives preparation.
	KindNoValidWords
	// KindWordNotInDictionary: start or end is missing from the prepared set.
	KindWordNotInDictionary
)

// Sentinels, one per Kind, for errors.Is.
var (
	ErrDictionaryFileNotFound = errors.New("ladder: dictionary file not found")
	ErrInvalidWord            = errors.New("ladder: invalid word")
	ErrWordsAreSame           = errors.New("ladder: words are the same")
	ErrWordLengthMismatch     = errors.New("ladder: word lengths do not match")
	ErrNoValidWords           = errors.New("ladder: dictionary has no valid words")
	ErrWordNotInDictionary    = errors.New("ladder: word not in dictionary")

	// ErrOptionViolation is returned for an invalid Option. It is a caller
	// bug, not an input failure, and so has no Kind.
	ErrOptionViolation = errors.New("ladder: invalid option supplied")
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindDictionaryFileNotFound:
		return "DictionaryFileNotFound"
	case KindInvalidWord:
		return "InvalidWord"
	case KindWordsAreSame:
		return "WordsAreSame"
	case KindWordLengthMismatch:
		return "WordLengthMismatch"
	case KindNoValidWords:
		return "NoValidWords"
	case KindWordNotInDictionary:
		return "WordNotInDictionary"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// sentinel maps k to its errors.Is target.
func (k Kind) sentinel() error {
	switch k {
	case KindDictionaryFileNotFound:
		return ErrDictionaryFileNotFound
	case KindInvalidWord:
		return ErrInvalidWord
	case KindWordsAreSame:
		return ErrWordsAreSame
	case KindWordLengthMismatch:
		return ErrWordLengthMismatch
	case KindNoValidWords:
		return ErrNoValidWords
	case KindWordNotInDictionary:
		return ErrWordNotInDictionary
	default:
		return nil
	}
}

// Error is an input failure detected before any search runs.
//
// Match it either with errors.Is against the Kind's sentinel, or with
// errors.As and a switch over Kind.
type Error struct {
	Kind   Kind   // which check failed
	Word   string // offending word, when one is involved
	Detail string // human-readable description
	Err    error  // underlying cause, if any
}

// Error implements error.
func (e *Error) Error() string {
	return "ladder: " + e.Detail
}

// Is matches the sentinel of e.Kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, word string, format string, args ...any) *Error {
	return &Error{Kind: kind, Word: word, Detail: fmt.Sprintf(format, args...)}
}
