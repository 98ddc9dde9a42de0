package blueprint

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/beevik/etree"

	"github.com/reoring/blueprint/i18n"
)

// Source abstracts over where a document comes from.
type Source interface {
	// Tree parses the input into an element tree.
	Tree() (*etree.Document, error)
	// Name describes the input for messages (file path or "<bytes>").
	Name() string
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// XMLBytes wraps a byte slice as a Source. A leading UTF-8 byte-order mark is ignored.
func XMLBytes(b []byte) Source { return bytesSource{data: b, name: "<bytes>"} }

// XMLReader wraps an io.Reader as a Source. The reader is consumed on Tree.
func XMLReader(r io.Reader) Source { return readerSource{r: r} }

// XMLFile reads the document at path. A missing file yields an error
// matching ErrNotFound.
func XMLFile(path string) Source { return fileSource{path: path} }

type bytesSource struct {
	data []byte
	name string
}

func (s bytesSource) Name() string { return s.name }

func (s bytesSource) Tree() (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(bytes.TrimPrefix(s.data, utf8BOM)); err != nil {
		return nil, singleIssue(CodeParseError, "/", fmt.Sprintf("%s: %v", s.name, err), err)
	}
	return doc, nil
}

type readerSource struct{ r io.Reader }

func (readerSource) Name() string { return "<reader>" }

func (s readerSource) Tree() (*etree.Document, error) {
	data, err := io.ReadAll(s.r)
	if err != nil {
		return nil, singleIssue(CodeParseError, "/", err.Error(), err)
	}
	return bytesSource{data: data, name: "<reader>"}.Tree()
}

type fileSource struct{ path string }

func (s fileSource) Name() string { return s.path }

func (s fileSource) Tree() (*etree.Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, notFound(s.path)
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	return bytesSource{data: data, name: s.path}.Tree()
}

func notFound(path string) error {
	return singleIssue(CodeNotFound, "/", fmt.Sprintf("%s: %s", i18n.T(CodeNotFound, nil), path), ErrNotFound)
}
