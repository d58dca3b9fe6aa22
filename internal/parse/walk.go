package parse

import (
	"fmt"
	"reflect"
	"runtime/debug"
)

type TraversalAction int

const (
	ContinueTraversal TraversalAction = iota
	Prune
	StopTraversal
)

type NodeHandler = func(node Node, parent Node, scopeNode Node, ancestorChain []Node, after bool) (TraversalAction, error)

// IsScopeContainerNode tells whether node establishes a new function-level
// scope. Blocks establish block scopes but those are managed by the
// analysis passes, not by the traversal.
func IsScopeContainerNode(node Node) bool {
	switch node.(type) {
	case *Chunk, *FunctionExpression, *ArrowFunctionExpression:
		return true
	default:
		return false
	}
}

// Walk performs a pre-order traversal on an AST (depth first).
// postHandle is called on a node after all its descendants have been visited.
func Walk(node Node, handle, postHandle NodeHandler) (err error) {
	defer func() {
		v := recover()

		switch val := v.(type) {
		case error:
			err = fmt.Errorf("%s:%w", debug.Stack(), val)
		case nil:
		case TraversalAction:
		default:
			panic(v)
		}
	}()

	ancestorChain := make([]Node, 0)
	walkAST(node, nil, &ancestorChain, handle, postHandle)
	return
}

func walkAST(node, parent Node, ancestorChain *[]Node, fn, afterFn NodeHandler) {

	if node == nil || reflect.ValueOf(node).IsNil() {
		return
	}

	if ancestorChain != nil {
		*ancestorChain = append((*ancestorChain), parent)
		defer func() {
			*ancestorChain = (*ancestorChain)[:len(*ancestorChain)-1]
		}()
	}

	var scopeNode = parent
	for _, a := range *ancestorChain {
		if a != nil && IsScopeContainerNode(a) {
			scopeNode = a
		}
	}

	if fn != nil {
		action, err := fn(node, parent, scopeNode, *ancestorChain, false)

		if err != nil {
			panic(err)
		}

		switch action {
		case StopTraversal:
			panic(StopTraversal)
		case Prune:
			return
		}
	}

	switch n := node.(type) {
	case *Chunk:
		for _, stmt := range n.Statements {
			walkAST(stmt, node, ancestorChain, fn, afterFn)
		}
	case *Block:
		for _, stmt := range n.Statements {
			walkAST(stmt, node, ancestorChain, fn, afterFn)
		}
	case *IfStatement:
		walkAST(n.Test, node, ancestorChain, fn, afterFn)
		walkAST(n.Consequent, node, ancestorChain, fn, afterFn)
		walkAST(n.Alternate, node, ancestorChain, fn, afterFn)
	case *ForStatement:
		walkAST(n.Init, node, ancestorChain, fn, afterFn)
		walkAST(n.Test, node, ancestorChain, fn, afterFn)
		walkAST(n.Update, node, ancestorChain, fn, afterFn)
		walkAST(n.Body, node, ancestorChain, fn, afterFn)
	case *ForInStatement:
		walkAST(n.KeyVar, node, ancestorChain, fn, afterFn)
		walkAST(n.ValueVar, node, ancestorChain, fn, afterFn)
		walkAST(n.Iterated, node, ancestorChain, fn, afterFn)
		walkAST(n.Body, node, ancestorChain, fn, afterFn)
	case *WhileStatement:
		walkAST(n.Test, node, ancestorChain, fn, afterFn)
		walkAST(n.Body, node, ancestorChain, fn, afterFn)
	case *DoWhileStatement:
		walkAST(n.Body, node, ancestorChain, fn, afterFn)
		walkAST(n.Test, node, ancestorChain, fn, afterFn)
	case *SwitchStatement:
		walkAST(n.Discriminant, node, ancestorChain, fn, afterFn)
		for _, switchCase := range n.Cases {
			walkAST(switchCase, node, ancestorChain, fn, afterFn)
		}
	case *SwitchCase:
		walkAST(n.Test, node, ancestorChain, fn, afterFn)
		for _, stmt := range n.Consequent {
			walkAST(stmt, node, ancestorChain, fn, afterFn)
		}
	case *TryStatement:
		walkAST(n.Block, node, ancestorChain, fn, afterFn)
		walkAST(n.Handler, node, ancestorChain, fn, afterFn)
	case *CatchClause:
		walkAST(n.Param, node, ancestorChain, fn, afterFn)
		walkAST(n.Body, node, ancestorChain, fn, afterFn)
	case *ReturnStatement:
		walkAST(n.Argument, node, ancestorChain, fn, afterFn)
	case *ExpressionStatement:
		walkAST(n.Expression, node, ancestorChain, fn, afterFn)
	case *VariableDeclaration:
		for _, decl := range n.Declarations {
			walkAST(decl, node, ancestorChain, fn, afterFn)
		}
	case *VariableDeclarator:
		walkAST(n.Name, node, ancestorChain, fn, afterFn)
		walkAST(n.Init, node, ancestorChain, fn, afterFn)
	case *FunctionDeclaration:
		walkAST(n.Name, node, ancestorChain, fn, afterFn)
		walkAST(n.Function, node, ancestorChain, fn, afterFn)
	case *ImportStatement:
		for _, specifier := range n.Specifiers {
			walkAST(specifier, node, ancestorChain, fn, afterFn)
		}
		walkAST(n.Source, node, ancestorChain, fn, afterFn)
	case *ImportSpecifier:
		walkAST(n.Imported, node, ancestorChain, fn, afterFn)
		walkAST(n.Local, node, ancestorChain, fn, afterFn)
	case *ExportStatement:
		walkAST(n.Declaration, node, ancestorChain, fn, afterFn)
		for _, specifier := range n.Specifiers {
			walkAST(specifier, node, ancestorChain, fn, afterFn)
		}
		walkAST(n.Default, node, ancestorChain, fn, afterFn)
	case *ExportSpecifier:
		walkAST(n.Local, node, ancestorChain, fn, afterFn)
		walkAST(n.Exported, node, ancestorChain, fn, afterFn)
	case *StringTemplateLiteral:
		for _, slice := range n.Slices {
			walkAST(slice, node, ancestorChain, fn, afterFn)
		}
	case *ArrayLiteral:
		for _, element := range n.Elements {
			walkAST(element, node, ancestorChain, fn, afterFn)
		}
	case *ObjectLiteral:
		for _, prop := range n.Properties {
			walkAST(prop, node, ancestorChain, fn, afterFn)
		}
	case *ObjectProperty:
		walkAST(n.Key, node, ancestorChain, fn, afterFn)
		walkAST(n.Value, node, ancestorChain, fn, afterFn)
	case *SpreadElement:
		walkAST(n.Argument, node, ancestorChain, fn, afterFn)
	case *BinaryExpression:
		walkAST(n.Left, node, ancestorChain, fn, afterFn)
		walkAST(n.Right, node, ancestorChain, fn, afterFn)
	case *LogicalExpression:
		walkAST(n.Left, node, ancestorChain, fn, afterFn)
		walkAST(n.Right, node, ancestorChain, fn, afterFn)
	case *UnaryExpression:
		walkAST(n.Operand, node, ancestorChain, fn, afterFn)
	case *UpdateExpression:
		walkAST(n.Operand, node, ancestorChain, fn, afterFn)
	case *AssignmentExpression:
		walkAST(n.Left, node, ancestorChain, fn, afterFn)
		walkAST(n.Right, node, ancestorChain, fn, afterFn)
	case *ConditionalExpression:
		walkAST(n.Test, node, ancestorChain, fn, afterFn)
		walkAST(n.Consequent, node, ancestorChain, fn, afterFn)
		walkAST(n.Alternate, node, ancestorChain, fn, afterFn)
	case *CallExpression:
		walkAST(n.Callee, node, ancestorChain, fn, afterFn)
		for _, arg := range n.Arguments {
			walkAST(arg, node, ancestorChain, fn, afterFn)
		}
	case *MemberExpression:
		walkAST(n.Object, node, ancestorChain, fn, afterFn)
		walkAST(n.PropertyName, node, ancestorChain, fn, afterFn)
	case *ComputedMemberExpression:
		walkAST(n.Object, node, ancestorChain, fn, afterFn)
		walkAST(n.Property, node, ancestorChain, fn, afterFn)
	case *FunctionExpression:
		walkAST(n.Name, node, ancestorChain, fn, afterFn)
		for _, param := range n.Parameters {
			walkAST(param, node, ancestorChain, fn, afterFn)
		}
		walkAST(n.Body, node, ancestorChain, fn, afterFn)
	case *ArrowFunctionExpression:
		for _, param := range n.Parameters {
			walkAST(param, node, ancestorChain, fn, afterFn)
		}
		walkAST(n.Body, node, ancestorChain, fn, afterFn)
	case *FunctionParameter:
		walkAST(n.Name, node, ancestorChain, fn, afterFn)
		walkAST(n.Default, node, ancestorChain, fn, afterFn)
	case *SequenceExpression:
		for _, expr := range n.Expressions {
			walkAST(expr, node, ancestorChain, fn, afterFn)
		}
	}

	if afterFn != nil {
		action, err := afterFn(node, parent, scopeNode, *ancestorChain, true)

		if err != nil {
			panic(err)
		}

		switch action {
		case StopTraversal:
			panic(StopTraversal)
		}
	}
}
