package plist

import (
	"context"
	"fmt"
	"path/filepath"

	"bumptag/internal/models"
)

// Plutil converts descriptors to XML form through the plutil utility.
// Xcode occasionally rewrites plists in the binary encoding; the codec
// expects text.
type Plutil struct {
	executor models.Executor
}

// NewPlutil creates a converter backed by the given executor.
func NewPlutil(executor models.Executor) *Plutil {
	return &Plutil{executor: executor}
}

// EnsureXML converts the descriptor at path to XML in place. Converting an
// already-XML descriptor is a no-op for plutil.
func (p *Plutil) EnsureXML(ctx context.Context, path string) error {
	msg := fmt.Sprintf("Converting %s to XML", filepath.Base(path))
	return p.executor.Run(ctx, "plutil", []string{"-convert", "xml1", path}, msg)
}

// Ensure Plutil implements the models.Converter interface
var _ models.Converter = (*Plutil)(nil)
