package sema

import (
	"rosa/internal/ast"
	"rosa/internal/diag"
)

// Check runs name resolution over f and classifies the outcome: Ok when
// clean, Fuzzy when every declaration was still resolved but some names
// inside bodies were not, and Err if global resolution failed outright
// (duplicate top-level declarations make the rest of the file unreliable).
func Check(f *ast.File) diag.Result[*ast.File] {
	r := NewResolver()
	diags := r.Resolve(f)
	if len(diags) == 0 {
		return diag.Ok(f)
	}
	for _, d := range diags {
		if d.Code == "E0200" {
			return diag.Err[*ast.File](diags)
		}
	}
	return diag.Fuzzy(f, diags)
}
