// Package sema resolves names across a parsed file: a first pass collects
// every top-level declaration so forward references between functions
// work, then a second pass walks each function body resolving
// expressions against a scope stack seeded with that function's
// parameters.
package sema

import (
	"rosa/internal/ast"
	"rosa/internal/diag"
)

// Resolver walks a *ast.File and records diagnostics for unresolved names
// and shadowed bindings.
type Resolver struct {
	scopes *scopeStack
	diags  []*diag.Diagnostic
}

// NewResolver creates a Resolver ready to process a single file.
func NewResolver() *Resolver {
	return &Resolver{scopes: newScopeStack()}
}

// Resolve runs both passes over f and returns the resulting diagnostics.
// An empty slice means the file resolved cleanly.
func (r *Resolver) Resolve(f *ast.File) []*diag.Diagnostic {
	r.declarePass(f)
	r.bodyPass(f)
	return r.diags
}

func (r *Resolver) errorf(n ast.Node, code diag.Code, format string, args ...any) {
	r.diags = append(r.diags, diag.Errorf(code, n.Span(), format, args...))
}

func (r *Resolver) declarePass(f *ast.File) {
	for _, d := range f.Decls {
		fn, ok := d.(*ast.FuncDecl)
		if !ok {
			continue
		}
		sym := &Symbol{Name: fn.Name, Kind: SymFunc, Pos: fn.Pos, Decl: fn}
		if prior, shadowed := r.scopes.current().Define(sym); shadowed {
			r.errorf(fn, "E0200", "function %q is already declared", fn.Name)
			_ = prior
		}
		if fn.Public {
			r.diags = append(r.diags, diag.Warnf("W0100", fn.Span(),
				"visibility is not supported, %q is treated as private", fn.Name))
		}
	}
}

func (r *Resolver) bodyPass(f *ast.File) {
	for _, d := range f.Decls {
		fn, ok := d.(*ast.FuncDecl)
		if !ok {
			continue
		}
		r.resolveFunc(fn)
	}
}

func (r *Resolver) resolveFunc(fn *ast.FuncDecl) {
	r.scopes.push()
	defer r.scopes.pop()
	for _, p := range fn.Params {
		sym := &Symbol{Name: p.Name, Kind: SymParam, Pos: p.Pos}
		r.scopes.current().Define(sym)
	}
	for _, stmt := range fn.Body.Items {
		r.resolveStmt(stmt)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		r.resolveExpr(s.Expr)
	case *ast.ReturnStmt:
		if s.Value != nil {
			r.resolveExpr(s.Value)
		}
	case *ast.LetStmt:
		r.resolveExpr(s.Value)
		sym := &Symbol{Name: s.Name, Kind: symKindFor(s.Mutable), Pos: s.Pos, Decl: s}
		if r.scopes.isGlobal() {
			r.errorf(s, "E0201", "cannot declare %q outside of a function", s.Name)
			return
		}
		if _, shadowed := r.scopes.current().Define(sym); shadowed {
			r.errorf(s, "E0202", "%q shadows an existing binding in this scope", s.Name)
		}
	case *ast.IfStmt:
		r.resolveExpr(s.Cond)
		r.scopes.push()
		for _, st := range s.Then.Items {
			r.resolveStmt(st)
		}
		r.scopes.pop()
		if s.Else != nil {
			r.scopes.push()
			for _, st := range s.Else.Items {
				r.resolveStmt(st)
			}
			r.scopes.pop()
		}
	}
}

func symKindFor(mutable bool) SymbolKind {
	if mutable {
		return SymVar
	}
	return SymVal
}

func (r *Resolver) resolveExpr(expr ast.Expression) {
	switch e := expr.(type) {
	case *ast.Symbol:
		if _, ok := r.scopes.current().Lookup(e.Name); !ok {
			r.errorf(e, "E0210", "unresolved name %q", e.Name)
		}
	case *ast.UnaryExpr:
		r.resolveExpr(e.Operand)
	case *ast.BinaryExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.CallExpr:
		r.resolveExpr(e.Callee)
		for _, a := range e.Args {
			r.resolveExpr(a)
		}
	}
}
