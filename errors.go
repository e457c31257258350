package keygram

import (
	"errors"
	"fmt"
)

// Construction argument errors.
var (
	ErrNilKeyword     = errors.New("keygram: nil keyword")
	ErrNilTerm        = errors.New("keygram: nil term")
	ErrNilAnalyzer    = errors.New("keygram: nil analyzer")
	ErrNoSlots        = errors.New("keygram: analyzer needs at least one slot")
	ErrEmptySeparator = errors.New("keygram: empty separator")
)

// DuplicateKeywordError is returned when two slots of one Analyzer share a
// keyword name.
type DuplicateKeywordError struct {
	Name string
}

func (e *DuplicateKeywordError) Error() string {
	return fmt.Sprintf("keygram: keyword %q declared twice", e.Name)
}

// DuplicateTermError is returned when a term name is bound twice on one
// Classifier.
type DuplicateTermError struct {
	Name string
}

func (e *DuplicateTermError) Error() string {
	return fmt.Sprintf("keygram: term %q bound twice", e.Name)
}

// PatternError is returned when a keyword's pattern does not compile.
type PatternError struct {
	Keyword string
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("keygram: keyword %q has invalid pattern %q: %v", e.Keyword, e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }

// SeparatorError is returned when an Analyzer's separator does not compile
// as a regular expression.
type SeparatorError struct {
	Separator string
	Err       error
}

func (e *SeparatorError) Error() string {
	return fmt.Sprintf("keygram: invalid separator %q: %v", e.Separator, e.Err)
}

func (e *SeparatorError) Unwrap() error { return e.Err }

// UnknownTermError is returned when a term name is referenced that was never
// bound on the Classifier.
type UnknownTermError struct {
	Name string
}

func (e *UnknownTermError) Error() string {
	return fmt.Sprintf("keygram: term %q is unknown to this classifier", e.Name)
}
