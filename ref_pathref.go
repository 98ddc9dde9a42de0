package blueprint

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/reoring/blueprint/i18n"
)

// PathRef builds element paths in a chain-safe way and creates Issues.
// Repeated elements carry a zero-based index: /CubeBlocks/MyObjectBuilder_CubeBlock[3].
type PathRef struct {
	parts []string
}

// RootPath returns the empty path "/".
func RootPath() PathRef { return PathRef{} }

// Elem appends a child element name.
func (p PathRef) Elem(name string) PathRef {
	if name == "" {
		return p
	}
	return PathRef{parts: append(append([]string{}, p.parts...), name)}
}

// Item appends a repeated child element name with its position.
func (p PathRef) Item(name string, i int) PathRef {
	return p.Elem(name + "[" + strconv.Itoa(i) + "]")
}

func (p PathRef) String() string {
	if len(p.parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(p.parts, "/")
}

// Issue creates an Issue at this path. kv is read as alternating key/value
// pairs for Params; the message is looked up by code when msg is empty.
func (p PathRef) Issue(code, msg string, kv ...any) Issue {
	var params map[string]any
	if len(kv) > 1 {
		params = make(map[string]any, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			params[fmt.Sprint(kv[i])] = kv[i+1]
		}
	}
	if msg == "" {
		msg = i18n.T(code, nil)
	}
	return Issue{Path: p.String(), Code: code, Message: msg, Params: params}
}
