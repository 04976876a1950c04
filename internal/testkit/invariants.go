// Package testkit holds invariant checks shared by tests across the
// compiler packages, so e.g. both parser and sema tests can assert the
// same span well-formedness rules on the trees they build.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"rosa/internal/ast"
	"rosa/internal/source"
)

// CheckSpanInvariants verifies that a parsed file's span bookkeeping is
// internally consistent:
//  1. the file span is non-empty and within the underlying source's bounds
//  2. every declaration span is non-empty and contained in the file span
//  3. the file span covers the union of its declarations' spans
func CheckSpanInvariants(file *ast.File, sf *source.File) error {
	if file == nil || sf == nil {
		return fmt.Errorf("nil file or source")
	}
	span := file.Span()
	if span.Hi <= span.Lo {
		return fmt.Errorf("file span is empty: %+v", span)
	}
	if span.File != sf.ID() {
		return fmt.Errorf("file span points to a different file id: got=%d want=%d", span.File, sf.ID())
	}
	contentLen, err := safecast.Conv[uint32](len(sf.Bytes()))
	if err != nil {
		return fmt.Errorf("content length overflow: %w", err)
	}
	if uint32(span.Hi) > contentLen {
		return fmt.Errorf("file span end beyond content: %d > %d", span.Hi, contentLen)
	}

	var union source.Span
	haveItem := false
	for _, decl := range file.Decls {
		sp := decl.Span()
		if sp.Hi <= sp.Lo {
			return fmt.Errorf("empty declaration span: %+v", sp)
		}
		if sp.File != sf.ID() {
			return fmt.Errorf("declaration span file mismatch: got=%d want=%d", sp.File, sf.ID())
		}
		if sp.Lo < span.Lo || sp.Hi > span.Hi {
			return fmt.Errorf("declaration span %+v is outside file span %+v", sp, span)
		}
		if !haveItem {
			union = sp
			haveItem = true
		} else {
			union = union.Cover(sp)
		}
	}
	if haveItem && (union.Lo < span.Lo || union.Hi > span.Hi) {
		return fmt.Errorf("file span %+v does not cover the union of declarations %+v", span, union)
	}
	return nil
}
