package analysis

import (
	"github.com/ucodelang/ucls/internal/parse"
	"github.com/ucodelang/ucls/internal/sourcecode"
)

type SymbolKind int

const (
	LetSymbol SymbolKind = iota
	ConstSymbol
	FunctionSymbol
	ParamSymbol
	ImportSymbol
)

func (k SymbolKind) String() string {
	switch k {
	case LetSymbol:
		return "let"
	case ConstSymbol:
		return "const"
	case FunctionSymbol:
		return "function"
	case ParamSymbol:
		return "parameter"
	default:
		return "import"
	}
}

// Symbol is a named binding created by one declaration. References resolve
// to the nearest enclosing scope's binding of the name.
type Symbol struct {
	Name     string
	Kind     SymbolKind
	DeclSpan sourcecode.NodeSpan

	Type Type

	// Return is the inferred return type union of function-valued symbols.
	Return Type

	// Properties records the types of properties assigned to object-valued
	// symbols. Aliasing snapshots the map, later writes through the aliased
	// name are not reflected.
	Properties map[string]Type

	UsedCount int
	Exported  bool

	// node is the declaring node: the function expression for
	// function-valued symbols, used for lazy return type inference.
	node parse.Node

	// sig is set for named imports of builtin module functions.
	sig *Signature

	returnComputed bool
	inferring      bool
}

type symbolOccurrence struct {
	span sourcecode.NodeSpan
	sym  *Symbol
}

// SymbolTable is the result of resolution: the scope tree plus the mapping
// from every declaring or referencing identifier to its symbol.
type SymbolTable struct {
	Global *Scope

	symbols     []*Symbol
	refs        map[*parse.Identifier]*Symbol
	decls       map[*parse.Identifier]*Symbol
	occurrences []symbolOccurrence
}

func newSymbolTable() *SymbolTable {
	return &SymbolTable{
		refs:  make(map[*parse.Identifier]*Symbol),
		decls: make(map[*parse.Identifier]*Symbol),
	}
}

func (t *SymbolTable) addDecl(ident *parse.Identifier, sym *Symbol) {
	t.decls[ident] = sym
	t.occurrences = append(t.occurrences, symbolOccurrence{span: ident.Span, sym: sym})
}

func (t *SymbolTable) addRef(ident *parse.Identifier, sym *Symbol) {
	t.refs[ident] = sym
	t.occurrences = append(t.occurrences, symbolOccurrence{span: ident.Span, sym: sym})
}

// Symbols returns all symbols in declaration order.
func (t *SymbolTable) Symbols() []*Symbol {
	return t.symbols
}

// DefinitionOf returns the symbol an identifier declares or refers to.
func (t *SymbolTable) DefinitionOf(ident *parse.Identifier) (*Symbol, bool) {
	if sym, ok := t.refs[ident]; ok {
		return sym, true
	}
	sym, ok := t.decls[ident]
	return sym, ok
}

// LookupAt returns the symbol declared or referenced at the given offset.
func (t *SymbolTable) LookupAt(offset int32) (*Symbol, bool) {
	for _, occ := range t.occurrences {
		if occ.span.Start <= offset && offset <= occ.span.End {
			return occ.sym, true
		}
	}
	return nil, false
}

// ScopeAt returns the innermost scope containing the offset.
func (t *SymbolTable) ScopeAt(offset int32) *Scope {
	if t.Global == nil {
		return nil
	}
	return t.Global.Innermost(offset)
}

// VisibleAt returns the symbols visible at the offset, innermost bindings
// first; shadowed outer bindings are omitted.
func (t *SymbolTable) VisibleAt(offset int32) []*Symbol {
	var visible []*Symbol
	seen := make(map[string]bool)

	for scope := t.ScopeAt(offset); scope != nil; scope = scope.Parent {
		for _, sym := range scope.ordered {
			if seen[sym.Name] {
				continue
			}
			seen[sym.Name] = true
			visible = append(visible, sym)
		}
	}
	return visible
}
