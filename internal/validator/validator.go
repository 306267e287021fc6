package validator

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"

	"github.com/aumai/datacommons/internal/files/filesystem"
	"github.com/aumai/datacommons/internal/schema"
	"github.com/aumai/datacommons/pkg/datacommons"
)

// Line limits for the streaming reader. Records are usually small, but
// a single embedded payload can be large; a line beyond maxLineSize
// aborts validation with a read error.
const (
	initialLineBuffer = 64 * 1024
	maxLineSize       = 16 * 1024 * 1024
)

// Validator checks line-delimited JSON dataset files against a declared
// schema. Files are read one line at a time, so memory use is bounded
// by the longest line rather than the file size.
// Validator is safe for concurrent use as long as the provided
// filesystem provider is.
type Validator struct {
	fsProvider filesystem.FileSystemProvider
}

// New creates a validator backed by the OS filesystem.
func New() *Validator {
	return &Validator{fsProvider: filesystem.NewOSFileSystem()}
}

// NewWithFS creates a validator with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider is nil.
func NewWithFS(fsProvider filesystem.FileSystemProvider) *Validator {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Validator{fsProvider: fsProvider}
}

// Validate checks every record in the file at path against the schema
// and returns the accumulated problem strings in discovery order: line
// order first, and within a line either the decode error, the
// not-an-object error, or the per-field errors in schema order.
//
// An empty slice means the file is fully valid. A missing file is
// reported in-band as the single entry "File not found: <path>" so the
// caller can surface it alongside content problems; permission and
// mid-stream read failures return a non-nil error instead.
func (v *Validator) Validate(path string, s datacommons.Schema) ([]string, error) {
	reader, err := v.fsProvider.OpenRead(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{"File not found: " + path}, nil
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer reader.Close()

	problems := []string{}
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, initialLineBuffer), maxLineSize)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			// Blank lines are skipped but still consume their number.
			continue
		}
		problems = appendLineProblems(problems, lineNum, checkLine(line, s))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return problems, nil
}

// outcomeKind discriminates the per-line verdict.
type outcomeKind int

const (
	outcomeOK outcomeKind = iota
	outcomeDecodeError
	outcomeNotObject
	outcomeFieldErrors
)

// lineOutcome is one line's verdict: detail is set for decode errors,
// fields for field-level problems, both empty otherwise.
type lineOutcome struct {
	kind   outcomeKind
	detail string
	fields []fieldError
}

// fieldError is a single schema-field problem on an otherwise
// well-formed record line.
type fieldError struct {
	name     string
	missing  bool
	expected string
	actual   string
}

// checkLine classifies one non-blank line. Each line must hold exactly
// one JSON value; content after it is a decode error.
func checkLine(line []byte, s datacommons.Schema) lineOutcome {
	value, err := schema.DecodeValue(line)
	if err != nil {
		return lineOutcome{kind: outcomeDecodeError, detail: err.Error()}
	}

	record, ok := value.(map[string]interface{})
	if !ok {
		return lineOutcome{kind: outcomeNotObject}
	}

	var fieldErrs []fieldError
	for _, field := range s {
		fieldValue, present := record[field.Name]
		if !present {
			fieldErrs = append(fieldErrs, fieldError{name: field.Name, missing: true})
			continue
		}
		// Unrecognized type names declare no check for the field.
		if !schema.IsRecognized(field.Type) {
			continue
		}
		if !schema.Matches(field.Type, fieldValue) {
			fieldErrs = append(fieldErrs, fieldError{
				name:     field.Name,
				expected: field.Type,
				actual:   schema.TypeName(fieldValue),
			})
		}
	}
	if len(fieldErrs) > 0 {
		return lineOutcome{kind: outcomeFieldErrors, fields: fieldErrs}
	}
	return lineOutcome{kind: outcomeOK}
}

// appendLineProblems renders one line's outcome with the canonical
// message formats.
func appendLineProblems(problems []string, lineNum int, outcome lineOutcome) []string {
	switch outcome.kind {
	case outcomeDecodeError:
		problems = append(problems, fmt.Sprintf("Line %d: JSON decode error — %s", lineNum, outcome.detail))
	case outcomeNotObject:
		problems = append(problems, fmt.Sprintf("Line %d: record is not a JSON object.", lineNum))
	case outcomeFieldErrors:
		for _, fe := range outcome.fields {
			if fe.missing {
				problems = append(problems, fmt.Sprintf("Line %d: missing required field '%s'.", lineNum, fe.name))
				continue
			}
			problems = append(problems, fmt.Sprintf("Line %d: field '%s' expected %s, got %s.", lineNum, fe.name, fe.expected, fe.actual))
		}
	}
	return problems
}
