package analysis

import (
	"github.com/ucodelang/ucls/internal/parse"
	"github.com/ucodelang/ucls/internal/utils"
)

// typeChecker propagates value types through the AST and validates calls
// and member accesses against the signature registry. Inference fails open:
// an unknown type never produces a diagnostic.
type typeChecker struct {
	registry Registry
	sink     *diagnosticSink
	table    *SymbolTable
}

func check(chunk *parse.Chunk, table *SymbolTable, registry Registry, sink *diagnosticSink) {
	c := &typeChecker{registry: registry, sink: sink, table: table}
	parse.Walk(chunk, c.checkNode, nil)
}

func (c *typeChecker) checkNode(node, parent, _ parse.Node, _ []parse.Node, _ bool) (parse.TraversalAction, error) {
	switch n := node.(type) {
	case *parse.ImportSpecifier:
		stmt, _ := parent.(*parse.ImportStatement)
		c.checkImportSpecifier(n, stmt)
	case *parse.VariableDeclarator:
		c.checkDeclarator(n)
	case *parse.AssignmentExpression:
		c.checkAssignment(n)
	case *parse.UpdateExpression:
		c.checkUpdate(n)
	case *parse.CallExpression:
		c.checkCall(n)
	case *parse.MemberExpression:
		c.checkMemberAccess(n)
	}
	return parse.ContinueTraversal, nil
}

func (c *typeChecker) checkDeclarator(d *parse.VariableDeclarator) {
	if d.Name == nil {
		return
	}
	sym, ok := c.table.decls[d.Name]
	if !ok {
		return
	}
	if d.Init == nil {
		//a declaration without initializer holds null until assigned
		sym.Type = NewType(NullType)
		return
	}
	sym.Type = c.inferExpr(d.Init)

	switch init := d.Init.(type) {
	case *parse.ObjectLiteral:
		sym.Properties = c.literalProperties(init)
	case *parse.Identifier:
		//aliasing snapshots the property map and carries over function
		//information; later writes through either name stay independent
		if src, ok := c.table.refs[init]; ok {
			if src.Properties != nil {
				sym.Properties = utils.CopyMap(src.Properties)
			}
			sym.Return = src.Return
			sym.returnComputed = src.returnComputed
			sym.sig = src.sig
			if sym.node == nil {
				sym.node = src.node
			}
		}
	}
}

// literalProperties records the types of the literal's non-computed
// properties; spreads and computed keys contribute nothing.
func (c *typeChecker) literalProperties(lit *parse.ObjectLiteral) map[string]Type {
	var props map[string]Type
	for _, propNode := range lit.Properties {
		prop, ok := propNode.(*parse.ObjectProperty)
		if !ok || prop.Computed {
			continue
		}
		var name string
		switch key := prop.Key.(type) {
		case *parse.Identifier:
			name = key.Name
		case *parse.StringLiteral:
			name = key.Value
		default:
			continue
		}
		if props == nil {
			props = make(map[string]Type)
		}
		props[name] = c.inferExpr(prop.Value)
	}
	return props
}

func (c *typeChecker) checkAssignment(a *parse.AssignmentExpression) {
	switch left := a.Left.(type) {
	case *parse.Identifier:
		sym, ok := c.table.refs[left]
		if !ok {
			return
		}
		if sym.Kind == ConstSymbol {
			c.sink.addError(left.Span, ConstAssignmentCode, fmtAssignmentToConst(left.Name))
		}
		sym.Type = sym.Type.Union(c.assignedType(a))
	case *parse.MemberExpression:
		//property writes through a plain object variable update its
		//property map
		obj, ok := left.Object.(*parse.Identifier)
		if !ok || left.PropertyName == nil {
			return
		}
		sym, ok := c.table.refs[obj]
		if !ok || !sym.Type.Contains(ObjectType) {
			return
		}
		if sym.Properties == nil {
			sym.Properties = make(map[string]Type)
		}
		sym.Properties[left.PropertyName.Name] = c.assignedType(a)
	}
}

func (c *typeChecker) checkUpdate(u *parse.UpdateExpression) {
	ident, ok := u.Operand.(*parse.Identifier)
	if !ok {
		return
	}
	if sym, ok := c.table.refs[ident]; ok && sym.Kind == ConstSymbol {
		c.sink.addError(ident.Span, ConstAssignmentCode, fmtAssignmentToConst(ident.Name))
	}
}

func (c *typeChecker) checkImportSpecifier(spec *parse.ImportSpecifier, stmt *parse.ImportStatement) {
	if spec.Local == nil || stmt == nil || stmt.Source == nil {
		return
	}
	sym, ok := c.table.decls[spec.Local]
	if !ok {
		return
	}
	moduleName := stmt.Source.Value

	switch spec.SpecifierKind {
	case parse.NamespaceImport, parse.DefaultImport:
		if _, ok := c.registry.Module(moduleName); ok {
			//the alias carries the module tag, its member accesses are
			//checked against the module's function set
			sym.Type = NewType(ValueType(moduleName))
		}
	case parse.NamedImport:
		imported := spec.Local.Name
		if spec.Imported != nil {
			imported = spec.Imported.Name
		}
		if sig, ok := c.registry.ModuleFunction(moduleName, imported); ok {
			sym.Type = NewType(FunctionType)
			sym.sig = &sig
			sym.Return = sig.Return
			sym.returnComputed = true
		}
	}
}

func (c *typeChecker) checkCall(call *parse.CallExpression) {
	sig, name, ok := c.calleeSignature(call)
	if !ok {
		return
	}
	c.validateArguments(call, sig, name)
}

// calleeSignature finds the signature governing a call, if any: a named
// import, a user function, a builtin, or a member function of a tagged
// value.
func (c *typeChecker) calleeSignature(call *parse.CallExpression) (Signature, string, bool) {
	switch callee := call.Callee.(type) {
	case *parse.Identifier:
		if sym, ok := c.table.refs[callee]; ok {
			if sym.sig != nil {
				return *sym.sig, callee.Name, true
			}
			if fn := functionNodeOf(sym); fn != nil {
				return signatureOfFunction(callee.Name, fn), callee.Name, true
			}
			return Signature{}, "", false
		}
		if sig, ok := c.registry.Signature(callee.Name); ok {
			return sig, callee.Name, true
		}
	case *parse.MemberExpression:
		if callee.PropertyName == nil {
			return Signature{}, "", false
		}
		objType := c.inferExpr(callee.Object)
		if tag, ok := objType.Tag(); ok {
			if sig, ok := c.registry.MemberSignature(tag, callee.PropertyName.Name); ok {
				return sig, callee.PropertyName.Name, true
			}
		}
	}
	return Signature{}, "", false
}

// signatureOfFunction derives arity bounds from a user function's parameter
// list. Missing arguments are null at runtime, so only an argument count
// above the parameter count is reported.
func signatureOfFunction(name string, fn parse.Node) Signature {
	params := functionParameters(fn)
	sig := Signature{Name: name, MaxArgs: len(params)}
	for _, param := range params {
		if param.Rest {
			sig.MaxArgs = -1
		}
	}
	return sig
}

func (c *typeChecker) validateArguments(call *parse.CallExpression, sig Signature, name string) {
	argCount := 0
	for _, arg := range call.Arguments {
		if _, ok := arg.(*parse.SpreadElement); ok {
			//the argument count is not statically known
			return
		}
		argCount++
	}

	if argCount < sig.MinArgs || (sig.MaxArgs >= 0 && argCount > sig.MaxArgs) {
		c.sink.addError(call.Span, ArityCode, fmtWrongArgumentCount(name, argCount, sig.MinArgs, sig.MaxArgs))
		return
	}

	for i, arg := range call.Arguments {
		if i >= len(sig.Params) {
			break
		}
		argType := c.inferExpr(arg)
		if !argType.compatibleWith(sig.Params[i]) {
			c.sink.addError(arg.Base().Span, ArgumentTypeCode, fmtWrongArgumentType(i+1, sig.Params[i], argType))
		}
	}
}

// checkMemberAccess validates a member access on a tagged value against the
// tag's member allowlist. Untagged and unknown-tag objects are not checked.
func (c *typeChecker) checkMemberAccess(m *parse.MemberExpression) {
	if m.PropertyName == nil {
		return
	}
	objType := c.inferExpr(m.Object)
	tag, ok := objType.Tag()
	if !ok {
		return
	}
	members := c.registry.AllowedMembers(tag)
	if members == nil {
		return
	}
	if !utils.SliceContains(members, m.PropertyName.Name) {
		c.sink.addError(m.PropertyName.Span, UnknownMemberCode, fmtUnknownMember(m.PropertyName.Name, tag))
	}
}

// inferExpr infers the type of an expression. It is pure (no diagnostics)
// and total: nil or malformed nodes are unknown.
func (c *typeChecker) inferExpr(node parse.Node) Type {
	if node == nil {
		return Unknown
	}
	switch n := node.(type) {
	case *parse.IntLiteral:
		return NewType(IntegerType)
	case *parse.DoubleLiteral:
		return NewType(DoubleType)
	case *parse.StringLiteral, *parse.StringTemplateLiteral:
		return NewType(StringType)
	case *parse.BooleanLiteral:
		return NewType(BooleanType)
	case *parse.NullLiteral:
		return NewType(NullType)
	case *parse.RegexLiteral:
		return NewType(ObjectType)
	case *parse.ArrayLiteral:
		return NewType(ArrayType)
	case *parse.ObjectLiteral:
		return NewType(ObjectType)
	case *parse.FunctionExpression, *parse.ArrowFunctionExpression:
		return NewType(FunctionType)
	case *parse.Identifier:
		if sym, ok := c.table.refs[n]; ok {
			return sym.Type
		}
		if c.registry.HasBuiltin(n.Name) {
			return NewType(FunctionType)
		}
		return Unknown
	case *parse.MemberExpression:
		return c.inferMemberType(n)
	case *parse.CallExpression:
		return c.inferCallType(n)
	case *parse.BinaryExpression:
		return binaryResultType(n.Operator, c.inferExpr(n.Left), c.inferExpr(n.Right))
	case *parse.LogicalExpression:
		return binaryResultType(n.Operator, c.inferExpr(n.Left), c.inferExpr(n.Right))
	case *parse.UnaryExpression:
		return c.unaryResultType(n)
	case *parse.UpdateExpression:
		operand := c.inferExpr(n.Operand)
		if single, ok := operand.Single(); ok && single.isNumeric() {
			return operand
		}
		return Unknown
	case *parse.AssignmentExpression:
		return c.assignedType(n)
	case *parse.ConditionalExpression:
		return c.inferExpr(n.Consequent).Union(c.inferExpr(n.Alternate))
	case *parse.SequenceExpression:
		if len(n.Expressions) == 0 {
			return Unknown
		}
		return c.inferExpr(n.Expressions[len(n.Expressions)-1])
	}
	return Unknown
}

func (c *typeChecker) inferMemberType(m *parse.MemberExpression) Type {
	if m.PropertyName == nil {
		return Unknown
	}
	name := m.PropertyName.Name

	if obj, ok := m.Object.(*parse.Identifier); ok {
		if sym, ok := c.table.refs[obj]; ok && sym.Properties != nil {
			if t, ok := sym.Properties[name]; ok {
				return t
			}
		}
	}

	objType := c.inferExpr(m.Object)
	if tag, ok := objType.Tag(); ok {
		if _, ok := c.registry.MemberSignature(tag, name); ok {
			return NewType(FunctionType)
		}
	}
	return Unknown
}

func (c *typeChecker) inferCallType(call *parse.CallExpression) Type {
	switch callee := call.Callee.(type) {
	case *parse.Identifier:
		if sym, ok := c.table.refs[callee]; ok {
			if sym.sig != nil {
				return sym.sig.Return
			}
			return c.returnTypeOf(sym)
		}
		if sig, ok := c.registry.Signature(callee.Name); ok {
			return sig.Return
		}
	case *parse.MemberExpression:
		if callee.PropertyName == nil {
			return Unknown
		}
		objType := c.inferExpr(callee.Object)
		if tag, ok := objType.Tag(); ok {
			if sig, ok := c.registry.MemberSignature(tag, callee.PropertyName.Name); ok {
				return sig.Return
			}
		}
	}
	return Unknown
}

// returnTypeOf computes and memoizes the return type of a user function
// symbol. Recursion is cut off: the recursive arm contributes unknown.
func (c *typeChecker) returnTypeOf(sym *Symbol) Type {
	if sym.returnComputed {
		return sym.Return
	}
	fn := functionNodeOf(sym)
	if fn == nil {
		return Unknown
	}
	if sym.inferring {
		return Unknown
	}
	sym.inferring = true
	ret := c.inferReturnType(fn)
	sym.inferring = false

	sym.Return = ret
	sym.returnComputed = true
	return ret
}

// inferReturnType unions the types of every return expression of the
// function's body, ignoring nested functions. A body without a return, or a
// bare return, contributes null.
func (c *typeChecker) inferReturnType(fn parse.Node) Type {
	var body parse.Node
	switch f := fn.(type) {
	case *parse.FunctionExpression:
		body = f.Body
	case *parse.ArrowFunctionExpression:
		if _, ok := f.Body.(*parse.Block); !ok {
			return c.inferExpr(f.Body)
		}
		body = f.Body
	default:
		return Unknown
	}

	var result Type
	sawReturn := false

	parse.Walk(body, func(node, _, _ parse.Node, _ []parse.Node, _ bool) (parse.TraversalAction, error) {
		switch n := node.(type) {
		case *parse.FunctionExpression, *parse.ArrowFunctionExpression:
			return parse.Prune, nil
		case *parse.ReturnStatement:
			armType := NewType(NullType)
			if n.Argument != nil {
				armType = c.inferExpr(n.Argument)
			}
			if !sawReturn {
				result = armType
				sawReturn = true
			} else {
				result = result.Union(armType)
			}
		}
		return parse.ContinueTraversal, nil
	}, nil)

	if !sawReturn {
		return NewType(NullType)
	}
	return result
}

// assignedType is the type an assignment stores and evaluates to; compound
// operators apply the underlying binary operation.
func (c *typeChecker) assignedType(a *parse.AssignmentExpression) Type {
	right := c.inferExpr(a.Right)
	if a.Operator == parse.EQUAL {
		return right
	}
	op, ok := compoundOperator(a.Operator)
	if !ok {
		return Unknown
	}
	return binaryResultType(op, c.inferExpr(a.Left), right)
}

func compoundOperator(t parse.TokenType) (parse.TokenType, bool) {
	switch t {
	case parse.PLUS_EQUAL:
		return parse.PLUS, true
	case parse.MINUS_EQUAL:
		return parse.MINUS, true
	case parse.ASTERISK_EQUAL:
		return parse.ASTERISK, true
	case parse.SLASH_EQUAL:
		return parse.SLASH, true
	case parse.PERCENT_EQUAL:
		return parse.PERCENT, true
	case parse.DOUBLE_ASTERISK_EQUAL:
		return parse.DOUBLE_ASTERISK, true
	case parse.LEFT_SHIFT_EQUAL:
		return parse.LEFT_SHIFT, true
	case parse.RIGHT_SHIFT_EQUAL:
		return parse.RIGHT_SHIFT, true
	case parse.AMPERSAND_EQUAL:
		return parse.AMPERSAND, true
	case parse.CARET_EQUAL:
		return parse.CARET, true
	case parse.PIPE_EQUAL:
		return parse.PIPE, true
	case parse.DOUBLE_AMPERSAND_EQUAL:
		return parse.DOUBLE_AMPERSAND, true
	case parse.DOUBLE_PIPE_EQUAL:
		return parse.DOUBLE_PIPE, true
	case parse.DOUBLE_QUESTION_MARK_EQUAL:
		return parse.DOUBLE_QUESTION_MARK, true
	}
	return 0, false
}

// binaryResultType applies the arithmetic typing rules: integer arithmetic
// stays integer unless a double operand is involved, '+' with a string
// operand concatenates, comparisons produce booleans and the value of a
// logical expression is one of its operands.
func binaryResultType(op parse.TokenType, left, right Type) Type {
	switch op {
	case parse.EQUAL_EQUAL, parse.TRIPLE_EQUAL, parse.EXCLAMATION_MARK_EQUAL,
		parse.EXCLAMATION_MARK_DOUBLE_EQUAL, parse.LESS_THAN, parse.LESS_OR_EQUAL,
		parse.GREATER_THAN, parse.GREATER_OR_EQUAL, parse.IN_KEYWORD:
		return NewType(BooleanType)

	case parse.DOUBLE_AMPERSAND, parse.DOUBLE_PIPE, parse.DOUBLE_QUESTION_MARK:
		return left.Union(right)

	case parse.LEFT_SHIFT, parse.RIGHT_SHIFT, parse.AMPERSAND, parse.CARET, parse.PIPE:
		return NewType(IntegerType)

	case parse.PLUS:
		if left.Contains(StringType) || right.Contains(StringType) {
			return NewType(StringType)
		}
		return numericResultType(left, right)

	case parse.MINUS, parse.ASTERISK, parse.SLASH, parse.PERCENT, parse.DOUBLE_ASTERISK:
		return numericResultType(left, right)
	}
	return Unknown
}

func numericResultType(left, right Type) Type {
	leftSingle, lok := left.Single()
	rightSingle, rok := right.Single()
	if !lok || !rok || !leftSingle.isNumeric() || !rightSingle.isNumeric() {
		return Unknown
	}
	if leftSingle == DoubleType || rightSingle == DoubleType {
		return NewType(DoubleType)
	}
	return NewType(IntegerType)
}

func (c *typeChecker) unaryResultType(u *parse.UnaryExpression) Type {
	switch u.Operator {
	case parse.EXCLAMATION_MARK, parse.DELETE_KEYWORD:
		return NewType(BooleanType)
	case parse.TILDE:
		return NewType(IntegerType)
	case parse.PLUS, parse.MINUS:
		operand := c.inferExpr(u.Operand)
		if single, ok := operand.Single(); ok && single.isNumeric() {
			return operand
		}
		return Unknown
	}
	return Unknown
}

func functionNodeOf(sym *Symbol) parse.Node {
	switch sym.node.(type) {
	case *parse.FunctionExpression, *parse.ArrowFunctionExpression:
		return sym.node
	}
	return nil
}

func functionParameters(fn parse.Node) []*parse.FunctionParameter {
	switch f := fn.(type) {
	case *parse.FunctionExpression:
		return f.Parameters
	case *parse.ArrowFunctionExpression:
		return f.Parameters
	}
	return nil
}
