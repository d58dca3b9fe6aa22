package analysis

import (
	"github.com/ucodelang/ucls/internal/sourcecode"
)

type ScopeKind int

const (
	GlobalScope ScopeKind = iota
	FunctionScope
	BlockScope
)

func (k ScopeKind) String() string {
	switch k {
	case GlobalScope:
		return "global"
	case FunctionScope:
		return "function"
	default:
		return "block"
	}
}

// Scope is a lexical binding region. Scopes form their own tree mirroring
// the block nesting of the AST; they never point to AST nodes.
type Scope struct {
	Kind     ScopeKind
	Span     sourcecode.NodeSpan
	Parent   *Scope
	Children []*Scope

	Bindings map[string]*Symbol

	// ordered keeps the bindings in declaration order, map iteration order
	// would make diagnostics non-deterministic.
	ordered []*Symbol
}

func newScope(kind ScopeKind, span sourcecode.NodeSpan, parent *Scope) *Scope {
	scope := &Scope{
		Kind:     kind,
		Span:     span,
		Parent:   parent,
		Bindings: make(map[string]*Symbol),
	}
	if parent != nil {
		parent.Children = append(parent.Children, scope)
	}
	return scope
}

// Lookup resolves a name through the scope chain, nearest scope first.
func (s *Scope) Lookup(name string) (*Symbol, bool) {
	for scope := s; scope != nil; scope = scope.Parent {
		if sym, ok := scope.Bindings[name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// LookupLocal resolves a name in this scope only.
func (s *Scope) LookupLocal(name string) (*Symbol, bool) {
	sym, ok := s.Bindings[name]
	return sym, ok
}

func (s *Scope) bind(sym *Symbol) {
	s.Bindings[sym.Name] = sym
	s.ordered = append(s.ordered, sym)
}

// Innermost returns the innermost scope containing the offset.
func (s *Scope) Innermost(offset int32) *Scope {
	for _, child := range s.Children {
		if child.Span.Start <= offset && offset <= child.Span.End {
			return child.Innermost(offset)
		}
	}
	return s
}
