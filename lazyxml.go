// Package lazyxml reads and writes XML through three layers: a
// zero-copy raw tokenizer over an immutable byte slice, a lazy
// bidirectional cursor derived from it, and a materialized node tree.
//
// The tokenizer never allocates; a Raw is a {kind, depth, pos, len}
// descriptor into the source buffer. Strings are only allocated when
// a cursor observer or the tree builder extracts them.
package lazyxml

import (
	"fmt"
	"os"
)

// Parse wraps buf in the synthetic document raw. It is critical that
// buf is not modified after it is passed to Parse: every Raw derived
// from the document borrows from it.
func Parse(buf []byte) Raw {
	return Raw{Kind: RawDocument, data: buf}
}

// ReadFile reads the file at path and returns its document raw.
func ReadFile(path string) (Raw, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return Raw{}, fmt.Errorf("lazyxml: read %s: %w", path, err)
	}
	return Parse(buf), nil
}

// ParseNode builds the materialized tree for buf.
func ParseNode(buf []byte) (*Node, error) {
	return buildNode(Parse(buf))
}

// ReadNodeFile reads the file at path and builds its materialized tree.
func ReadNodeFile(path string) (*Node, error) {
	doc, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return buildNode(doc)
}
