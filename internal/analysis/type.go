package analysis

import "strings"

// ValueType is a single ucode value type. Module-specific tagged object
// types (e.g. "fs.file") are also value types; IsTag reports those.
type ValueType string

const (
	IntegerType  ValueType = "integer"
	DoubleType   ValueType = "double"
	StringType   ValueType = "string"
	BooleanType  ValueType = "boolean"
	NullType     ValueType = "null"
	ArrayType    ValueType = "array"
	ObjectType   ValueType = "object"
	FunctionType ValueType = "function"
	UnknownType  ValueType = "unknown"

	// NumericType is only valid as a parameter constraint in signatures, it
	// accepts both integer and double arguments.
	NumericType ValueType = "numeric"

	// AnyType is only valid as a parameter constraint, it accepts arguments
	// of every type.
	AnyType ValueType = "any"
)

// IsTag reports whether the value type is a module-tagged object type such
// as "fs.file" or a module namespace such as "fs".
func (t ValueType) IsTag() bool {
	switch t {
	case IntegerType, DoubleType, StringType, BooleanType, NullType,
		ArrayType, ObjectType, FunctionType, UnknownType, NumericType, AnyType, "":
		return false
	}
	return true
}

func (t ValueType) isNumeric() bool {
	return t == IntegerType || t == DoubleType
}

// Type is a deduplicated, order-insensitive union of value types. The zero
// value is the unknown type. Member order is insertion order (kept for
// stable rendering); equality is set equality.
type Type struct {
	members []ValueType
}

// Unknown is the type of every expression the engine cannot infer.
var Unknown = Type{}

func NewType(members ...ValueType) Type {
	var t Type
	for _, m := range members {
		t = t.union(m)
	}
	return t
}

func (t Type) union(m ValueType) Type {
	for _, existing := range t.members {
		if existing == m {
			return t
		}
	}
	members := make([]ValueType, len(t.members)+1)
	copy(members, t.members)
	members[len(t.members)] = m
	return Type{members: members}
}

// Union returns the deduplicated union of both types. An unknown side stays
// an explicit member so that a partially inferred union is not collapsed.
func (t Type) Union(other Type) Type {
	result := t
	if len(result.members) == 0 {
		result = Type{members: []ValueType{UnknownType}}
	}
	for _, m := range other.Members() {
		result = result.union(m)
	}
	return result
}

// Members returns the member set; the unknown type has the single member
// UnknownType.
func (t Type) Members() []ValueType {
	if len(t.members) == 0 {
		return []ValueType{UnknownType}
	}
	return t.members
}

func (t Type) Contains(m ValueType) bool {
	for _, member := range t.Members() {
		if member == m {
			return true
		}
	}
	return false
}

func (t Type) ContainsUnknown() bool {
	return t.Contains(UnknownType)
}

// IsUnknown reports whether nothing is known about the type, that is the
// type is exactly the unknown type (a union with an unknown member is not
// unknown).
func (t Type) IsUnknown() bool {
	members := t.Members()
	return len(members) == 1 && members[0] == UnknownType
}

// Single returns the member of a single-member type.
func (t Type) Single() (ValueType, bool) {
	members := t.Members()
	if len(members) == 1 {
		return members[0], true
	}
	return "", false
}

// Tag returns the module tag of a value known to be exactly one tagged
// object type.
func (t Type) Tag() (ValueType, bool) {
	single, ok := t.Single()
	if !ok || !single.IsTag() {
		return "", false
	}
	return single, true
}

// Equal reports set equality, member order is ignored.
func (t Type) Equal(other Type) bool {
	a, b := t.Members(), other.Members()
	if len(a) != len(b) {
		return false
	}
	for _, m := range a {
		if !other.Contains(m) {
			return false
		}
	}
	return true
}

func (t Type) String() string {
	members := t.Members()
	if len(members) == 1 {
		return string(members[0])
	}
	parts := make([]string, len(members))
	for i, m := range members {
		parts[i] = string(m)
	}
	return strings.Join(parts, " | ")
}

// compatibleWith reports whether a value of type t is acceptable for a
// parameter declared with the given constraint. Unknown types are always
// acceptable (fail-open); a union is acceptable if at least one member is.
func (t Type) compatibleWith(param ValueType) bool {
	if param == "" || param == AnyType || param == UnknownType {
		return true
	}
	for _, m := range t.Members() {
		if m == UnknownType || m == param {
			return true
		}
		if param == NumericType && m.isNumeric() {
			return true
		}
		if param == ObjectType && m.IsTag() {
			return true
		}
	}
	return false
}
