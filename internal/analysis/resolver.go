package analysis

import (
	"github.com/ucodelang/ucls/internal/parse"
	"github.com/ucodelang/ucls/internal/sourcecode"
)

// resolver builds the scope tree and binds every declaration and reference
// to a symbol. It walks the AST twice: the first walk creates scopes and
// binds declarations, the second resolves references. Resolving references
// only after all declarations are bound keeps use-before-declaration silent
// (fail-open) and lets hoisted function declarations resolve.
type resolver struct {
	registry Registry
	sink     *diagnosticSink
	table    *SymbolTable

	current *Scope
	scopeOf map[parse.Node]*Scope

	exportDepth int
}

func resolve(chunk *parse.Chunk, registry Registry, sink *diagnosticSink) *SymbolTable {
	table := newSymbolTable()
	global := newScope(GlobalScope, chunk.Span, nil)
	table.Global = global

	r := &resolver{
		registry: registry,
		sink:     sink,
		table:    table,
		current:  global,
		scopeOf:  map[parse.Node]*Scope{chunk: global},
	}

	parse.Walk(chunk, r.declareNode, r.leaveNode)
	r.current = global
	parse.Walk(chunk, r.resolveNode, r.leaveNode)
	r.reportUnused(global)

	return table
}

func (r *resolver) enterScope(node parse.Node, kind ScopeKind, span sourcecode.NodeSpan) {
	scope := newScope(kind, span, r.current)
	r.scopeOf[node] = scope
	r.current = scope
}

func (r *resolver) reenterScope(node parse.Node) {
	if scope, ok := r.scopeOf[node]; ok {
		r.current = scope
	}
}

// leaveNode restores the enclosing scope; it is the post handler of both
// walks.
func (r *resolver) leaveNode(node, _, _ parse.Node, _ []parse.Node, _ bool) (parse.TraversalAction, error) {
	if _, ok := node.(*parse.ExportStatement); ok && r.exportDepth > 0 {
		r.exportDepth--
	}
	if scope, ok := r.scopeOf[node]; ok && scope.Parent != nil {
		r.current = scope.Parent
	}
	return parse.ContinueTraversal, nil
}

// isFunctionBody tells whether a block is the body of a function, in which
// case the function scope already covers it.
func isFunctionBody(parent parse.Node) bool {
	switch parent.(type) {
	case *parse.FunctionExpression, *parse.ArrowFunctionExpression:
		return true
	}
	return false
}

func (r *resolver) declareNode(node, parent, _ parse.Node, _ []parse.Node, _ bool) (parse.TraversalAction, error) {
	switch n := node.(type) {
	case *parse.FunctionExpression:
		r.enterScope(n, FunctionScope, n.Span)
		if _, isDecl := parent.(*parse.FunctionDeclaration); !isDecl && n.Name != nil {
			//a named function expression binds its own name inside the
			//function scope
			r.declare(n.Name, FunctionSymbol, n)
		}
	case *parse.ArrowFunctionExpression:
		r.enterScope(n, FunctionScope, n.Span)
	case *parse.Block:
		if !isFunctionBody(parent) {
			r.enterScope(n, BlockScope, n.Span)
		}
	case *parse.ForStatement:
		r.enterScope(n, BlockScope, n.Span)
	case *parse.SwitchStatement:
		r.enterScope(n, BlockScope, n.Span)
	case *parse.ForInStatement:
		r.enterScope(n, BlockScope, n.Span)
		if n.DeclKeyword != 0 {
			kind := LetSymbol
			if n.DeclKeyword == parse.CONST_KEYWORD {
				kind = ConstSymbol
			}
			if n.KeyVar != nil {
				r.declare(n.KeyVar, kind, nil)
			}
			if n.ValueVar != nil {
				r.declare(n.ValueVar, kind, nil)
			}
		}
	case *parse.CatchClause:
		r.enterScope(n, BlockScope, n.Span)
		if n.Param != nil {
			r.declare(n.Param, ParamSymbol, nil)
		}
	case *parse.VariableDeclarator:
		if n.Name != nil {
			kind := LetSymbol
			if decl, ok := parent.(*parse.VariableDeclaration); ok && decl.DeclKeyword == parse.CONST_KEYWORD {
				kind = ConstSymbol
			}
			r.declare(n.Name, kind, declaredValueNode(n))
		}
	case *parse.FunctionDeclaration:
		if n.Name != nil {
			r.declare(n.Name, FunctionSymbol, n.Function)
		}
	case *parse.FunctionParameter:
		if n.Name != nil {
			r.declare(n.Name, ParamSymbol, nil)
		}
	case *parse.ImportSpecifier:
		if n.Local != nil {
			r.declare(n.Local, ImportSymbol, nil)
		}
	case *parse.ExportStatement:
		r.exportDepth++
	}
	return parse.ContinueTraversal, nil
}

// declaredValueNode returns the function node a declarator binds, for lazy
// return type inference.
func declaredValueNode(d *parse.VariableDeclarator) parse.Node {
	switch d.Init.(type) {
	case *parse.FunctionExpression, *parse.ArrowFunctionExpression:
		return d.Init
	}
	return nil
}

func (r *resolver) declare(ident *parse.Identifier, kind SymbolKind, node parse.Node) *Symbol {
	name := ident.Name
	scope := r.current

	if existing, ok := scope.LookupLocal(name); ok {
		r.sink.addError(ident.Span, RedeclarationCode, fmtRedeclaration(name))
		//the first binding stays, references keep resolving to it
		r.table.addDecl(ident, existing)
		return existing
	}

	sym := &Symbol{
		Name:     name,
		Kind:     kind,
		DeclSpan: ident.Span,
		Exported: r.exportDepth > 0,
		node:     node,
	}
	if kind == FunctionSymbol {
		sym.Type = NewType(FunctionType)
	}

	if r.registry.HasBuiltin(name) {
		r.sink.addWarning(ident.Span, BuiltinShadowingCode, fmtBuiltinShadowing(name))
	} else if scope.Parent != nil {
		if _, shadowed := scope.Parent.Lookup(name); shadowed {
			r.sink.addWarning(ident.Span, ShadowingCode, fmtShadowing(name))
		}
	}

	scope.bind(sym)
	r.table.symbols = append(r.table.symbols, sym)
	r.table.addDecl(ident, sym)
	return sym
}

func (r *resolver) resolveNode(node, parent, _ parse.Node, _ []parse.Node, _ bool) (parse.TraversalAction, error) {
	switch n := node.(type) {
	case *parse.FunctionExpression, *parse.ArrowFunctionExpression, *parse.Block,
		*parse.ForStatement, *parse.SwitchStatement, *parse.CatchClause:
		r.reenterScope(node)
	case *parse.ForInStatement:
		r.reenterScope(n)
		if n.DeclKeyword == 0 {
			if n.KeyVar != nil {
				r.resolveLoopVar(n.KeyVar)
			}
			if n.ValueVar != nil {
				r.resolveLoopVar(n.ValueVar)
			}
		}
	case *parse.ExportSpecifier:
		if n.Local != nil {
			if sym, ok := r.current.Lookup(n.Local.Name); ok {
				sym.Exported = true
				sym.UsedCount++
				r.table.addRef(n.Local, sym)
			} else {
				r.sink.addError(n.Local.Span, UndefinedVariableCode, fmtUndefinedVariable(n.Local.Name))
			}
		}
	case *parse.Identifier:
		r.resolveIdentifier(n, parent)
	}
	return parse.ContinueTraversal, nil
}

// resolveIdentifier resolves an identifier occurring in a reference
// position; identifiers that are declaration names, member names or
// non-computed object keys are not references.
func (r *resolver) resolveIdentifier(ident *parse.Identifier, parent parse.Node) {
	switch p := parent.(type) {
	case *parse.VariableDeclarator:
		if p.Name == ident {
			return
		}
	case *parse.FunctionDeclaration:
		if p.Name == ident {
			return
		}
	case *parse.FunctionExpression:
		if p.Name == ident {
			return
		}
	case *parse.FunctionParameter:
		if p.Name == ident {
			return
		}
	case *parse.MemberExpression:
		if p.PropertyName == ident {
			return
		}
	case *parse.ObjectProperty:
		if p.Key == ident && !p.Computed {
			return
		}
	case *parse.ImportSpecifier, *parse.ExportSpecifier:
		return
	case *parse.CatchClause:
		if p.Param == ident {
			return
		}
	case *parse.ForInStatement:
		if p.KeyVar == ident || p.ValueVar == ident {
			return
		}
	case *parse.CallExpression:
		if p.Callee == ident {
			r.resolveCallee(ident)
			return
		}
	}
	r.resolveReference(ident)
}

// resolveReference resolves a plain identifier reference: scope chain, then
// the builtin pseudo-scope, then "undefined variable".
func (r *resolver) resolveReference(ident *parse.Identifier) {
	if sym, ok := r.current.Lookup(ident.Name); ok {
		sym.UsedCount++
		r.table.addRef(ident, sym)
		return
	}
	if r.registry.HasBuiltin(ident.Name) {
		return
	}
	r.sink.addError(ident.Span, UndefinedVariableCode, fmtUndefinedVariable(ident.Name))
}

// resolveCallee resolves the callee of a call through the function lookup
// path only, so that an unresolvable callee produces exactly one diagnostic
// ("undefined function", never also "undefined variable").
func (r *resolver) resolveCallee(ident *parse.Identifier) {
	if sym, ok := r.current.Lookup(ident.Name); ok {
		sym.UsedCount++
		r.table.addRef(ident, sym)
		return
	}
	if r.registry.HasBuiltin(ident.Name) {
		return
	}
	r.sink.addError(ident.Span, UndefinedFunctionCode, fmtUndefinedFunction(ident.Name))
}

// resolveLoopVar resolves a for-in loop variable without a declaration
// keyword: an existing binding is reused, otherwise the variable binds
// implicitly in the loop scope.
func (r *resolver) resolveLoopVar(ident *parse.Identifier) {
	if sym, ok := r.current.Lookup(ident.Name); ok {
		sym.UsedCount++
		r.table.addRef(ident, sym)
		return
	}
	sym := &Symbol{Name: ident.Name, Kind: LetSymbol, DeclSpan: ident.Span}
	r.current.bind(sym)
	r.table.symbols = append(r.table.symbols, sym)
	r.table.addDecl(ident, sym)
}

// reportUnused warns about bindings that were never referenced. Global
// bindings are exempt: a script's top level is its public surface.
// Parameters and imports are exempt as well.
func (r *resolver) reportUnused(scope *Scope) {
	if scope.Kind != GlobalScope {
		for _, sym := range scope.ordered {
			if sym.UsedCount > 0 || sym.Exported {
				continue
			}
			switch sym.Kind {
			case LetSymbol, ConstSymbol, FunctionSymbol:
				r.sink.addWarning(sym.DeclSpan, UnusedVariableCode, fmtUnusedVariable(sym.Name))
			}
		}
	}
	for _, child := range scope.Children {
		r.reportUnused(child)
	}
}
