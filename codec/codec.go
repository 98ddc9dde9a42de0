// Package codec holds the value coercers shared by the blueprint decoder and
// encoder. Every parser is total: absent, empty or malformed text yields
// ok=false and never an error. Every formatter produces the canonical text
// that the matching parser accepts.
package codec

import (
	"math"
	"strconv"
	"strings"
)

// Func converts raw document text into a typed value. ok reports whether the
// text held a usable value.
type Func[T any] func(raw string) (v T, ok bool)

// Optional applies fn to raw when raw is present. A nil raw (missing node) and
// a failed conversion are indistinguishable to the caller: both return nil.
func Optional[T any](raw *string, fn Func[T]) *T {
	if raw == nil {
		return nil
	}
	v, ok := fn(*raw)
	if !ok {
		return nil
	}
	return &v
}

// Text returns raw unchanged; empty text is treated as absent.
func Text(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}
	return raw, true
}

// Int32 parses a base-10 32-bit integer.
func Int32(raw string) (int32, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// Int64 parses a base-10 64-bit integer. Entity ids and owner ids use this.
func Int64(raw string) (int64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Float32 parses a decimal single-precision number. Hexadecimal float syntax
// is rejected since the document format never produces it.
func Float32(raw string) (float32, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.ContainsAny(s, "xX_") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, false
	}
	return float32(f), true
}

// Bool accepts exactly "true" or "false".
func Bool(raw string) (bool, bool) {
	switch strings.TrimSpace(raw) {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

// FormatInt32 renders n as base-10 text.
func FormatInt32(n int32) string { return strconv.FormatInt(int64(n), 10) }

// FormatInt64 renders n as base-10 text.
func FormatInt64(n int64) string { return strconv.FormatInt(n, 10) }

// FormatFloat32 renders f with the shortest decimal text that parses back to
// the same float32. Exponent notation is never used for finite values.
func FormatFloat32(f float32) string {
	switch {
	case math.IsNaN(float64(f)):
		return "NaN"
	case math.IsInf(float64(f), 1):
		return "Infinity"
	case math.IsInf(float64(f), -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}

// FormatBool renders b as "true" or "false".
func FormatBool(b bool) string { return strconv.FormatBool(b) }
