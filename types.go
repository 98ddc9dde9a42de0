package blueprint

import (
	"strings"

	"github.com/rs/zerolog"
)

// Kind is the semantic type of a registry entry. It selects both the value
// coercer and the document layout used for the field.
type Kind int

const (
	KindText                 Kind = iota // Child element text.
	KindInteger                          // Child element text, int32.
	KindFloat                            // Child element text, float32.
	KindLong                             // Child element text, int64.
	KindBoolean                          // Child element text, "true"/"false".
	KindVector3                          // Child element with float attributes x, y, z.
	KindVector3Int                       // Child element with integer attributes x, y, z.
	KindQuaternion                       // Child element with child elements X, Y, Z, W.
	KindBlockOrientation                 // Child element with attributes Forward, Up.
	KindComponentContainer               // Child element kept as an opaque subtree.
	KindIdentity                         // Child element with attributes Type, Subtype.
	KindPlacement                        // Position/Forward/Up attributes plus an Orientation quaternion.
	KindCollection                       // Container element whose children are nested records.
)

var kindNames = [...]string{
	KindText:               "text",
	KindInteger:            "integer",
	KindFloat:              "float",
	KindLong:               "long-integer",
	KindBoolean:            "boolean",
	KindVector3:            "vector3",
	KindVector3Int:         "vector3-int",
	KindQuaternion:         "quaternion",
	KindBlockOrientation:   "block-orientation",
	KindComponentContainer: "component-container",
	KindIdentity:           "identity",
	KindPlacement:          "placement",
	KindCollection:         "collection",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ParseKind resolves a kind from its String form. Collections cannot be
// declared by name and are rejected.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if Kind(k) != KindCollection && strings.EqualFold(name, s) {
			return Kind(k), true
		}
	}
	return 0, false
}

// UnknownPolicy controls what happens to elements the registry does not know.
type UnknownPolicy int

const (
	UnknownPassthrough UnknownPolicy = iota // Keep them in the Unmapped bag and re-emit them.
	UnknownStrip                            // Report them, then drop them.
)

// ParseUnknownPolicy accepts "passthrough" (or "") and "strip".
func ParseUnknownPolicy(s string) (UnknownPolicy, bool) {
	switch strings.ToLower(s) {
	case "", "passthrough":
		return UnknownPassthrough, true
	case "strip":
		return UnknownStrip, true
	}
	return 0, false
}

// DecodeOpt bundles decoding options. When several are passed, the last one wins.
type DecodeOpt struct {
	// Schema overrides the registries. Nil means DefaultSchema().
	Schema *Schema
	// Unknown selects the fate of unmapped elements.
	Unknown UnknownPolicy
	// Logger receives advisory diagnostics. Nil falls back to zerolog.Ctx(ctx).
	Logger *zerolog.Logger
	// IssueSink, when set, receives one Issue per unmapped element of any record.
	IssueSink func(Issue)
}

// EncodeOpt bundles encoding options. When several are passed, the last one wins.
type EncodeOpt struct {
	// Schema overrides the registries. Nil means DefaultSchema().
	Schema *Schema
	// Unknown set to UnknownStrip omits Unmapped bag entries from the output.
	Unknown UnknownPolicy
	// Indent is the number of spaces per nesting level. Zero means 2; negative disables indentation.
	Indent int
}

func lastDecodeOpt(opts []DecodeOpt) DecodeOpt {
	var opt DecodeOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if opt.Schema == nil {
		opt.Schema = DefaultSchema()
	}
	return opt
}

func lastEncodeOpt(opts []EncodeOpt) EncodeOpt {
	var opt EncodeOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if opt.Schema == nil {
		opt.Schema = DefaultSchema()
	}
	if opt.Indent == 0 {
		opt.Indent = 2
	}
	return opt
}
