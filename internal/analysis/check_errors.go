package analysis

import (
	"fmt"
)

func fmtUndefinedVariable(name string) string {
	return fmt.Sprintf("undefined variable '%s'", name)
}

func fmtUndefinedFunction(name string) string {
	return fmt.Sprintf("undefined function '%s'", name)
}

func fmtRedeclaration(name string) string {
	return fmt.Sprintf("'%s' is already declared in this scope", name)
}

func fmtBuiltinShadowing(name string) string {
	return fmt.Sprintf("declaration of '%s' shadows the builtin of the same name", name)
}

func fmtShadowing(name string) string {
	return fmt.Sprintf("declaration of '%s' shadows a binding in an enclosing scope", name)
}

func fmtUnusedVariable(name string) string {
	return fmt.Sprintf("'%s' is declared but never used", name)
}

func fmtAssignmentToConst(name string) string {
	return fmt.Sprintf("cannot assign to constant '%s'", name)
}

func fmtWrongArgumentCount(name string, got, min, max int) string {
	switch {
	case max < 0:
		return fmt.Sprintf("function '%s' expects at least %d argument(s), got %d", name, min, got)
	case min == max:
		return fmt.Sprintf("function '%s' expects %d argument(s), got %d", name, min, got)
	case min == 0:
		return fmt.Sprintf("function '%s' expects at most %d argument(s), got %d", name, max, got)
	default:
		return fmt.Sprintf("function '%s' expects between %d and %d arguments, got %d", name, min, max, got)
	}
}

func fmtWrongArgumentType(index int, expected ValueType, actual Type) string {
	return fmt.Sprintf("argument %d should be of type %s, got %s", index, expected, actual)
}

func fmtUnknownMember(member string, tag ValueType) string {
	return fmt.Sprintf("property '%s' does not exist on type %s", member, tag)
}
