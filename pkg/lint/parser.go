package lint

import (
	"context"
	"fmt"

	"github.com/yaklabco/mdblocklint/pkg/mdast"
)

// Parser turns raw Markdown bytes into a FileSnapshot.
//
// The interface lives in the consumer package. Implementations must be
// deterministic for a given (path, content) pair, safe for concurrent use
// and free of I/O.
type Parser interface {
	// Parse converts raw Markdown bytes into a FileSnapshot whose Path is path
	// and whose Content is content. content must not be mutated.
	Parse(ctx context.Context, path string, content []byte) (*mdast.FileSnapshot, error)
}

// SnapshotParser builds the line-indexed snapshot rules work on. Block
// structure is derived lazily per rule context, so no AST is built here.
type SnapshotParser struct{}

// NewSnapshotParser returns a SnapshotParser.
func NewSnapshotParser() *SnapshotParser {
	return &SnapshotParser{}
}

// Parse implements Parser.
func (p *SnapshotParser) Parse(ctx context.Context, path string, content []byte) (*mdast.FileSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return mdast.NewFileSnapshot(path, content), nil
}
