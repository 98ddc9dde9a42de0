package blueprint

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes.
const (
	CodeNotFound      = "not_found"
	CodeParseError    = "parse_error"
	CodeUnknownKey    = "unknown_key"
	CodeDuplicateKey  = "duplicate_key"
	CodeInvalidSchema = "invalid_schema"
)

// ErrNotFound marks the only fatal decode condition: the primary document is missing.
var ErrNotFound = errors.New("blueprint: primary document not found")

// Issue describes one finding, located by an element path such as
// /Definitions/ShipBlueprints/ShipBlueprint[0]/CubeGrids/CubeGrid[0].
type Issue struct {
	Path    string
	Code    string
	Message string
	Cause   error
	// Params carries structured details (e.g. {"name":"FooBar","value":"42"}).
	Params map[string]any
}

// Issues is a collection of issues that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := min(len(iss), maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		if it.Path != "" {
			fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		} else {
			b.WriteString(it.Code)
		}
		if it.Message != "" {
			fmt.Fprintf(b, ": %s", it.Message)
		}
	}
	if n := len(iss); n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes the causes so errors.Is(err, ErrNotFound) works on Issues.
func (iss Issues) Unwrap() []error {
	var out []error
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
}

// AsIssues extracts Issues from an error using errors.As.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

func singleIssue(code, path, msg string, cause error) Issues {
	return Issues{{Code: code, Path: path, Message: msg, Cause: cause}}
}
