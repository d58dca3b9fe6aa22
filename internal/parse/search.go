package parse

import (
	"reflect"
	"slices"
)

// FindNodeAtOffset returns the deepest node whose span includes the given
// byte offset, the end of a span is considered included so that a cursor
// right after a node still finds it. The returned ancestor chain does not
// include the node itself.
func FindNodeAtOffset(root Node, offset int32) (n Node, ancestors []Node) {
	Walk(root, func(node, _, _ Node, ancestorChain []Node, _ bool) (TraversalAction, error) {
		span := node.Base().Span
		if !span.HasPositionEndIncluded(offset) {
			return Prune, nil
		}

		n = node
		ancestors = slices.Clone(ancestorChain)
		return ContinueTraversal, nil
	}, nil)

	return
}

// FindNodeWithSpan returns the first node whose span is exactly the searched
// span.
func FindNodeWithSpan(root Node, searchedSpan NodeSpan) (n Node, found bool) {
	Walk(root, func(node, _, _ Node, _ []Node, _ bool) (TraversalAction, error) {
		nodeSpan := node.Base().Span
		if searchedSpan.End < nodeSpan.Start || searchedSpan.Start >= nodeSpan.End {
			return Prune, nil
		}

		if searchedSpan == nodeSpan {
			n = node
			found = true
			return StopTraversal, nil
		}
		return ContinueTraversal, nil
	}, nil)

	return
}

// FindNodes walks over an AST and returns all the nodes of type T for which
// handle returns true. If handle is nil only the type is checked.
func FindNodes[T Node](root Node, typ T, handle func(n T) bool) []T {
	searchedType := reflect.TypeOf(typ)
	var found []T

	Walk(root, func(node, _, _ Node, _ []Node, _ bool) (TraversalAction, error) {
		if reflect.TypeOf(node) == searchedType {
			if handle == nil || handle(node.(T)) {
				found = append(found, node.(T))
			}
		}
		return ContinueTraversal, nil
	}, nil)

	return found
}

// FindNode returns the first node of type T for which handle returns true.
// If handle is nil only the type is checked.
func FindNode[T Node](root Node, typ T, handle func(n T) bool) T {
	n, _ := FindNodeAndChain(root, typ, handle)
	return n
}

// FindFirstNode returns the first node of type T.
func FindFirstNode[T Node](root Node, typ T) T {
	return FindNode(root, typ, nil)
}

// FindNodeAndChain returns the first node of type T (and its ancestors) for
// which handle returns true. If handle is nil only the type is checked.
func FindNodeAndChain[T Node](root Node, typ T, handle func(n T) bool) (T, []Node) {
	searchedType := reflect.TypeOf(typ)

	var found T
	var foundAncestors []Node

	Walk(root, func(node, _, _ Node, ancestorChain []Node, _ bool) (TraversalAction, error) {
		if reflect.TypeOf(node) == searchedType {
			if handle == nil || handle(node.(T)) {
				found = node.(T)
				foundAncestors = slices.Clone(ancestorChain)
				return StopTraversal, nil
			}
		}
		return ContinueTraversal, nil
	}, nil)

	return found, foundAncestors
}

// FindClosest searches for an ancestor node of type T starting from the
// parent node (last ancestor).
func FindClosest[T Node](ancestorChain []Node, typ T) (node T, index int, ok bool) {
	searchedType := reflect.TypeOf(typ)

	for i := len(ancestorChain) - 1; i >= 0; i-- {
		n := ancestorChain[i]
		if reflect.TypeOf(n) == searchedType {
			return n.(T), i, true
		}
	}

	return reflect.Zero(searchedType).Interface().(T), -1, false
}

// HasErrorAtAnyDepth tells whether the node or any of its descendants
// carries a parsing error.
func HasErrorAtAnyDepth(n Node) bool {
	err := false
	Walk(n, func(node, _, _ Node, _ []Node, _ bool) (TraversalAction, error) {
		if node.Base().Err != nil {
			err = true
			return StopTraversal, nil
		}
		return ContinueTraversal, nil
	}, nil)

	return err
}

func CountNodes(n Node) (count int) {
	Walk(n, func(_, _, _ Node, _ []Node, _ bool) (TraversalAction, error) {
		count += 1
		return ContinueTraversal, nil
	}, nil)

	return
}

// DetermineActiveParameterIndex determines the index of the parameter the
// cursor is on inside a call, it returns -1 if the index cannot be
// determined. tokens must be the token list of the whole chunk.
func DetermineActiveParameterIndex(cursorOffset int32, call *CallExpression, tokens []Token) int {
	if len(call.Arguments) == 0 {
		return 0
	}

	activeParamIndex := 0
	for _, arg := range call.Arguments {
		argEnd := arg.Base().Span.End
		if cursorOffset <= argEnd {
			break
		}

		//the next parameter becomes active after the comma that follows
		//the argument
		for _, token := range tokens {
			if token.Type == COMMA && token.Span.Start >= argEnd && cursorOffset >= token.Span.End {
				activeParamIndex++
				break
			}
		}
	}

	if activeParamIndex > len(call.Arguments) {
		activeParamIndex = len(call.Arguments)
	}
	return activeParamIndex
}
