package request

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UsageMessage is printed when the argument count is wrong.
const UsageMessage = "Usage: codecheck <language> <file_path>"

// Request is one validated invocation.
type Request struct {
	Language    string `json:"language"`
	RawLanguage string `json:"raw_language"`
	FilePath    string `json:"file_path"`
}

type UsageError struct {
	Got int
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("expected 2 arguments, got %d", e.Got)
}

// InvalidPathError reports a path that is missing or not a regular file.
type InvalidPathError struct {
	Path string
	Err  error
}

func (e *InvalidPathError) Error() string {
	if e.Err != nil {
		cause := e.Err
		var pathErr *fs.PathError
		if errors.As(cause, &pathErr) {
			cause = pathErr.Err
		}
		return fmt.Sprintf("INVALID File Path: %s: %v", e.Path, cause)
	}
	return fmt.Sprintf("INVALID File Path: %s is not a regular file", e.Path)
}

func (e *InvalidPathError) Unwrap() error { return e.Err }

// Resolve validates the positional arguments <language> <file_path>.
// The file is checked before the language, so an unknown language with a
// bad path is reported as a path problem.
func Resolve(args []string) (*Request, error) {
	if len(args) != 2 {
		return nil, &UsageError{Got: len(args)}
	}

	raw, path := args[0], args[1]

	info, err := os.Stat(path)
	if err != nil {
		return nil, &InvalidPathError{Path: path, Err: err}
	}
	if !info.Mode().IsRegular() {
		return nil, &InvalidPathError{Path: path}
	}

	return &Request{
		Language:    NormalizeLanguage(raw),
		RawLanguage: raw,
		FilePath:    path,
	}, nil
}

// NormalizeLanguage lower-cases and trims a language tag.
func NormalizeLanguage(tag string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(tag))
}

// IsUsage reports whether err is a *UsageError.
func IsUsage(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}

// IsInvalidPath reports whether err is an *InvalidPathError.
func IsInvalidPath(err error) bool {
	var pe *InvalidPathError
	return errors.As(err, &pe)
}
