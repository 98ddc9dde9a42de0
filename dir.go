package blueprint

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File names of a blueprint directory.
const (
	DocumentFile  = "bp.sbc"
	ThumbnailFile = "thumb.png"
)

// Blueprint is a decoded blueprint directory. ThumbnailPath is empty when the
// directory has no thumbnail; the image itself is never read.
type Blueprint struct {
	Dir           string
	DocumentPath  string
	ThumbnailPath string
	Document      *Document
}

// LoadDir decodes the blueprint stored in dir. A missing primary document is
// the one fatal condition and yields an error matching ErrNotFound; no partial
// result is returned.
func LoadDir(ctx context.Context, dir string, opts ...DecodeOpt) (*Blueprint, error) {
	docPath := filepath.Join(dir, DocumentFile)
	doc, err := Decode(ctx, XMLFile(docPath), opts...)
	if err != nil {
		return nil, err
	}
	bp := &Blueprint{Dir: dir, DocumentPath: docPath, Document: doc}
	thumb := filepath.Join(dir, ThumbnailFile)
	if st, err := os.Stat(thumb); err == nil && !st.IsDir() {
		bp.ThumbnailPath = thumb
	}
	return bp, nil
}

// SaveDir encodes bp.Document into dir/bp.sbc, creating dir when needed. The
// thumbnail is copied only when bp points at one outside dir.
func SaveDir(ctx context.Context, bp *Blueprint, dir string, opts ...EncodeOpt) error {
	if bp == nil || bp.Document == nil {
		return errors.New("blueprint: nothing to save")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	data, err := Marshal(ctx, bp.Document, opts...)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, DocumentFile), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", DocumentFile, err)
	}
	if bp.ThumbnailPath == "" {
		return nil
	}
	dst := filepath.Join(dir, ThumbnailFile)
	same, err := samePath(bp.ThumbnailPath, dst)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", ThumbnailFile, err)
	}
	if same {
		return nil
	}
	img, err := os.ReadFile(bp.ThumbnailPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", bp.ThumbnailPath, err)
	}
	if err := os.WriteFile(dst, img, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", ThumbnailFile, err)
	}
	return nil
}

func samePath(a, b string) (bool, error) {
	aa, err := filepath.Abs(a)
	if err != nil {
		return false, err
	}
	bb, err := filepath.Abs(b)
	if err != nil {
		return false, err
	}
	return aa == bb, nil
}
