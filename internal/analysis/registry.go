package analysis

import (
	"github.com/ucodelang/ucls/internal/utils"
)

// Signature describes the calling contract of a builtin or module function:
// arity bounds, positional parameter constraints and the result type.
type Signature struct {
	Name string `json:"name"`

	MinArgs int `json:"minArgs"`
	// MaxArgs is the maximum argument count, -1 means no upper bound.
	MaxArgs int `json:"maxArgs"`

	// Params holds positional parameter constraints; it may be shorter than
	// MaxArgs, extra arguments are unconstrained.
	Params []ValueType `json:"params,omitempty"`

	Return Type   `json:"-"`
	Doc    string `json:"doc,omitempty"`
}

// Module describes a builtin module reachable through an import statement.
type Module struct {
	Name      string
	Functions map[string]Signature
	Doc       string
}

// Registry supplies builtin and module signature data to the engine. It is
// an injected dependency, not a singleton, so the engine is testable with
// fake signature sets.
type Registry interface {
	// Signature returns the signature of a global builtin function.
	Signature(name string) (Signature, bool)

	// Module returns a builtin module by import name.
	Module(name string) (Module, bool)

	// ModuleFunction returns the signature of a function of a builtin module.
	ModuleFunction(module string, fn string) (Signature, bool)

	// AllowedMembers returns the exhaustive member set of a tagged object
	// type; nil means the tag is not known to the registry.
	AllowedMembers(tag ValueType) []string

	// MemberSignature returns the signature of a member of a tagged object
	// type.
	MemberSignature(tag ValueType, member string) (Signature, bool)

	// BuiltinNames returns the names of all global builtins, for completion.
	BuiltinNames() []string

	HasBuiltin(name string) bool
}

// emptyRegistry is used when no registry is injected; every lookup fails.
type emptyRegistry struct{}

func (emptyRegistry) Signature(string) (Signature, bool)              { return Signature{}, false }
func (emptyRegistry) Module(string) (Module, bool)                    { return Module{}, false }
func (emptyRegistry) ModuleFunction(string, string) (Signature, bool) { return Signature{}, false }
func (emptyRegistry) AllowedMembers(ValueType) []string               { return nil }
func (emptyRegistry) MemberSignature(ValueType, string) (Signature, bool) {
	return Signature{}, false
}
func (emptyRegistry) BuiltinNames() []string  { return nil }
func (emptyRegistry) HasBuiltin(string) bool  { return false }

// TableRegistry is the standard Registry implementation, backed by plain
// lookup tables. The zero value is not usable, use NewTableRegistry.
type TableRegistry struct {
	builtins map[string]Signature
	modules  map[string]Module
	members  map[ValueType]map[string]Signature
}

func NewTableRegistry() *TableRegistry {
	return &TableRegistry{
		builtins: make(map[string]Signature),
		modules:  make(map[string]Module),
		members:  make(map[ValueType]map[string]Signature),
	}
}

func (r *TableRegistry) AddBuiltin(sig Signature) {
	r.builtins[sig.Name] = sig
}

func (r *TableRegistry) AddModule(mod Module) {
	r.modules[mod.Name] = mod
}

// AddTaggedType registers an object type tag and the exhaustive signature
// set of its members.
func (r *TableRegistry) AddTaggedType(tag ValueType, members map[string]Signature) {
	r.members[tag] = members
}

func (r *TableRegistry) Signature(name string) (Signature, bool) {
	sig, ok := r.builtins[name]
	return sig, ok
}

func (r *TableRegistry) Module(name string) (Module, bool) {
	mod, ok := r.modules[name]
	return mod, ok
}

func (r *TableRegistry) ModuleFunction(module string, fn string) (Signature, bool) {
	mod, ok := r.modules[module]
	if !ok {
		return Signature{}, false
	}
	sig, ok := mod.Functions[fn]
	return sig, ok
}

func (r *TableRegistry) AllowedMembers(tag ValueType) []string {
	if members, ok := r.members[tag]; ok {
		return utils.SortedKeys(members)
	}
	//module namespace aliases are tagged with the module name
	if mod, ok := r.modules[string(tag)]; ok {
		return utils.SortedKeys(mod.Functions)
	}
	return nil
}

// TaggedMembers returns the registered member signatures of an object type
// tag, without the module namespace fallback of AllowedMembers.
func (r *TableRegistry) TaggedMembers(tag ValueType) (map[string]Signature, bool) {
	members, ok := r.members[tag]
	return members, ok
}

func (r *TableRegistry) MemberSignature(tag ValueType, member string) (Signature, bool) {
	if members, ok := r.members[tag]; ok {
		sig, ok := members[member]
		return sig, ok
	}
	if mod, ok := r.modules[string(tag)]; ok {
		sig, ok := mod.Functions[member]
		return sig, ok
	}
	return Signature{}, false
}

func (r *TableRegistry) BuiltinNames() []string {
	return utils.SortedKeys(r.builtins)
}

func (r *TableRegistry) HasBuiltin(name string) bool {
	_, ok := r.builtins[name]
	return ok
}
