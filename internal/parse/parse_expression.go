package parse

import (
	"strconv"
	"strings"
)

// parseExpression parses an expression at the assignment level, the comma
// operator is not included: sequences are only valid in a few places and are
// parsed with parseSequenceOrExpression.
func (p *parser) parseExpression() Node {
	return p.parseAssignmentExpression()
}

// parseSequenceOrExpression parses a comma-separated list of expressions; a
// single expression is returned as is.
func (p *parser) parseSequenceOrExpression() Node {
	first := p.parseExpression()
	if !p.is(COMMA) {
		return first
	}

	seq := &SequenceExpression{Expressions: []Node{first}}
	for {
		if _, ok := p.eat(COMMA); !ok {
			break
		}
		seq.Expressions = append(seq.Expressions, p.parseExpression())
	}
	seq.Span = NodeSpan{Start: first.Base().Span.Start, End: p.prevEnd()}
	return seq
}

func isAssignmentOperator(t TokenType) bool {
	return t >= EQUAL && t <= DOUBLE_QUESTION_MARK_EQUAL
}

func isValidAssignmentTarget(node Node) bool {
	switch node.(type) {
	case *Identifier, *MemberExpression, *ComputedMemberExpression:
		return true
	}
	return false
}

func (p *parser) parseAssignmentExpression() Node {
	left := p.parseConditionalExpression()

	if !isAssignmentOperator(p.current().Type) {
		return left
	}

	opTok := p.next()
	right := p.parseAssignmentExpression() //right associative

	assignment := &AssignmentExpression{
		Operator: opTok.Type,
		Left:     left,
		Right:    right,
	}
	if !isValidAssignmentTarget(left) {
		assignment.Err = &ParsingError{Kind: UnspecifiedParsingError, Message: INVALID_ASSIGNMENT_TARGET}
	}
	assignment.Span = NodeSpan{Start: left.Base().Span.Start, End: right.Base().Span.End}
	return assignment
}

func (p *parser) parseConditionalExpression() Node {
	test := p.parseNullishCoalescing()

	if _, ok := p.eat(QUESTION_MARK); !ok {
		return test
	}

	cond := &ConditionalExpression{Test: test}
	cond.Consequent = p.parseAssignmentExpression()
	if _, err := p.expect(COLON); err != nil {
		cond.Err = err
	}
	cond.Alternate = p.parseAssignmentExpression()
	cond.Span = NodeSpan{Start: test.Base().Span.Start, End: p.prevEnd()}
	return cond
}

// parseLogicalLevel parses a left-associative level made of a single logical
// operator.
func (p *parser) parseLogicalLevel(operand func() Node, op TokenType) Node {
	left := operand()
	for p.is(op) {
		p.next()
		right := operand()
		left = &LogicalExpression{
			NodeBase: NodeBase{Span: NodeSpan{Start: left.Base().Span.Start, End: right.Base().Span.End}},
			Operator: op,
			Left:     left,
			Right:    right,
		}
	}
	return left
}

// parseBinaryLevel parses a left-associative level made of the given binary
// operators.
func (p *parser) parseBinaryLevel(operand func() Node, ops ...TokenType) Node {
	left := operand()
	for p.is(ops...) {
		opTok := p.next()
		right := operand()
		left = &BinaryExpression{
			NodeBase: NodeBase{Span: NodeSpan{Start: left.Base().Span.Start, End: right.Base().Span.End}},
			Operator: opTok.Type,
			Left:     left,
			Right:    right,
		}
	}
	return left
}

func (p *parser) parseNullishCoalescing() Node {
	return p.parseLogicalLevel(p.parseLogicalOr, DOUBLE_QUESTION_MARK)
}

func (p *parser) parseLogicalOr() Node {
	return p.parseLogicalLevel(p.parseLogicalAnd, DOUBLE_PIPE)
}

func (p *parser) parseLogicalAnd() Node {
	return p.parseLogicalLevel(p.parseBitwiseOr, DOUBLE_AMPERSAND)
}

func (p *parser) parseBitwiseOr() Node {
	return p.parseBinaryLevel(p.parseBitwiseXor, PIPE)
}

func (p *parser) parseBitwiseXor() Node {
	return p.parseBinaryLevel(p.parseBitwiseAnd, CARET)
}

func (p *parser) parseBitwiseAnd() Node {
	return p.parseBinaryLevel(p.parseEquality, AMPERSAND)
}

func (p *parser) parseEquality() Node {
	return p.parseBinaryLevel(p.parseRelational,
		EQUAL_EQUAL, EXCLAMATION_MARK_EQUAL, TRIPLE_EQUAL, EXCLAMATION_MARK_DOUBLE_EQUAL)
}

func (p *parser) parseRelational() Node {
	return p.parseBinaryLevel(p.parseShift,
		LESS_THAN, LESS_OR_EQUAL, GREATER_THAN, GREATER_OR_EQUAL, IN_KEYWORD)
}

func (p *parser) parseShift() Node {
	return p.parseBinaryLevel(p.parseAdditive, LEFT_SHIFT, RIGHT_SHIFT)
}

func (p *parser) parseAdditive() Node {
	return p.parseBinaryLevel(p.parseMultiplicative, PLUS, MINUS)
}

func (p *parser) parseMultiplicative() Node {
	return p.parseBinaryLevel(p.parseExponentiation, ASTERISK, SLASH, PERCENT)
}

func (p *parser) parseExponentiation() Node {
	left := p.parseUnaryExpression()

	if !p.is(DOUBLE_ASTERISK) {
		return left
	}
	p.next()
	right := p.parseExponentiation() //right associative

	return &BinaryExpression{
		NodeBase: NodeBase{Span: NodeSpan{Start: left.Base().Span.Start, End: right.Base().Span.End}},
		Operator: DOUBLE_ASTERISK,
		Left:     left,
		Right:    right,
	}
}

func (p *parser) parseUnaryExpression() Node {
	switch p.current().Type {
	case EXCLAMATION_MARK, TILDE, PLUS, MINUS, DELETE_KEYWORD:
		opTok := p.next()
		operand := p.parseUnaryExpression()
		return &UnaryExpression{
			NodeBase: NodeBase{Span: NodeSpan{Start: opTok.Span.Start, End: operand.Base().Span.End}},
			Operator: opTok.Type,
			Operand:  operand,
		}
	case PLUS_PLUS, MINUS_MINUS:
		opTok := p.next()
		operand := p.parseUnaryExpression()
		return &UpdateExpression{
			NodeBase: NodeBase{Span: NodeSpan{Start: opTok.Span.Start, End: operand.Base().Span.End}},
			Operator: opTok.Type,
			Operand:  operand,
			Prefix:   true,
		}
	}
	return p.parsePostfixExpression()
}

// parsePostfixExpression parses a primary expression followed by any number
// of member accesses, index accesses, calls and postfix updates.
func (p *parser) parsePostfixExpression() Node {
	expr := p.parsePrimaryExpression()

	for {
		switch p.current().Type {
		case DOT:
			p.next()
			expr = p.parseMemberAccess(expr, false)
		case OPENING_BRACKET:
			p.next()
			expr = p.parseIndexAccess(expr, false)
		case OPENING_PARENTHESIS:
			expr = p.parseCallArguments(expr, false)
		case QUESTION_DOT:
			p.next()
			switch p.current().Type {
			case OPENING_PARENTHESIS:
				expr = p.parseCallArguments(expr, true)
			case OPENING_BRACKET:
				p.next()
				expr = p.parseIndexAccess(expr, true)
			default:
				expr = p.parseMemberAccess(expr, true)
			}
		case PLUS_PLUS, MINUS_MINUS:
			opTok := p.next()
			expr = &UpdateExpression{
				NodeBase: NodeBase{Span: NodeSpan{Start: expr.Base().Span.Start, End: opTok.Span.End}},
				Operator: opTok.Type,
				Operand:  expr,
				Prefix:   false,
			}
		default:
			return expr
		}
	}
}

// parseMemberAccess parses the property name after a '.' or '?.'; keywords
// are valid property names.
func (p *parser) parseMemberAccess(object Node, optional bool) Node {
	member := &MemberExpression{
		Object:   object,
		Optional: optional,
	}

	tok := p.current()
	if tok.Type == IDENTIFIER_LITERAL || tok.Type.IsKeyword() {
		p.next()
		member.PropertyName = &Identifier{
			NodeBase: NodeBase{Span: tok.Span},
			Name:     tok.Str(),
		}
	} else {
		member.Err = &ParsingError{Kind: UnspecifiedParsingError, Message: MEMBER_NAME_EXPECTED}
	}

	member.Span = NodeSpan{Start: object.Base().Span.Start, End: p.prevEnd()}
	return member
}

// parseIndexAccess parses `expr]` after the opening bracket has been
// consumed.
func (p *parser) parseIndexAccess(object Node, optional bool) Node {
	member := &ComputedMemberExpression{
		Object:   object,
		Optional: optional,
	}
	member.Property = p.parseExpression()

	if _, ok := p.eat(CLOSING_BRACKET); !ok {
		member.Err = &ParsingError{Kind: UnspecifiedParsingError, Message: UNTERMINATED_INDEX_MISSING_BRACKET}
	}
	member.Span = NodeSpan{Start: object.Base().Span.Start, End: p.prevEnd()}
	return member
}

func (p *parser) parseCallArguments(callee Node, optional bool) Node {
	p.next() //'('
	call := &CallExpression{
		Callee:   callee,
		Optional: optional,
	}

	for !p.atEOF() && !p.is(CLOSING_PARENTHESIS) {
		if p.is(THREE_DOTS) {
			dotsTok := p.next()
			arg := p.parseExpression()
			call.Arguments = append(call.Arguments, &SpreadElement{
				NodeBase: NodeBase{Span: NodeSpan{Start: dotsTok.Span.Start, End: arg.Base().Span.End}},
				Argument: arg,
			})
		} else {
			call.Arguments = append(call.Arguments, p.parseExpression())
		}

		if _, ok := p.eat(COMMA); !ok {
			break
		}
	}

	if _, ok := p.eat(CLOSING_PARENTHESIS); !ok {
		call.Err = &ParsingError{Kind: UnspecifiedParsingError, Message: UNTERMINATED_CALL_MISSING_PAREN}
	}
	call.Span = NodeSpan{Start: callee.Base().Span.Start, End: p.prevEnd()}
	return call
}

func (p *parser) parsePrimaryExpression() Node {
	tok := p.current()

	switch tok.Type {
	case INT_LITERAL:
		p.next()
		return &IntLiteral{
			NodeBase: NodeBase{Span: tok.Span},
			Raw:      tok.Raw,
			Value:    parseIntValue(tok.Raw),
		}
	case DOUBLE_LITERAL:
		p.next()
		value, _ := strconv.ParseFloat(tok.Raw, 64)
		return &DoubleLiteral{
			NodeBase: NodeBase{Span: tok.Span},
			Raw:      tok.Raw,
			Value:    value,
		}
	case STRING_LITERAL:
		p.next()
		return &StringLiteral{
			NodeBase: NodeBase{Span: tok.Span},
			Raw:      tok.Raw,
			Value:    DecodeQuotedString(tok.Raw),
		}
	case TRUE_KEYWORD:
		p.next()
		return &BooleanLiteral{NodeBase: NodeBase{Span: tok.Span}, Value: true}
	case FALSE_KEYWORD:
		p.next()
		return &BooleanLiteral{NodeBase: NodeBase{Span: tok.Span}, Value: false}
	case NULL_KEYWORD:
		p.next()
		return &NullLiteral{NodeBase: NodeBase{Span: tok.Span}}
	case THIS_KEYWORD:
		p.next()
		return &ThisExpression{NodeBase: NodeBase{Span: tok.Span}}
	case REGEX_LITERAL:
		p.next()
		pattern, flags := SplitRegexRaw(tok.Raw)
		return &RegexLiteral{
			NodeBase: NodeBase{Span: tok.Span},
			Raw:      tok.Raw,
			Pattern:  pattern,
			Flags:    flags,
		}
	case BACKQUOTE:
		return p.parseTemplateLiteral()
	case OPENING_BRACKET:
		return p.parseArrayLiteral()
	case OPENING_CURLY_BRACKET:
		return p.parseObjectLiteral()
	case OPENING_PARENTHESIS:
		if p.isArrowFunctionAhead() {
			return p.parseArrowFunction()
		}
		p.next() //'('
		inner := p.parseSequenceOrExpression()
		if _, ok := p.eat(CLOSING_PARENTHESIS); !ok && inner.Base().Err == nil {
			inner.BasePtr().Err = &ParsingError{Kind: UnspecifiedParsingError, Message: UNTERMINATED_PAREN_MISSING_PAREN}
		}
		return inner
	case IDENTIFIER_LITERAL:
		if p.peek(1).Type == ARROW {
			return p.parseArrowFunction()
		}
		p.next()
		return &Identifier{
			NodeBase: NodeBase{Span: tok.Span},
			Name:     tok.Raw,
		}
	case FUNCTION_KEYWORD:
		return p.parseFunctionExpression()
	}

	return p.missingExpr()
}

func parseIntValue(raw string) int64 {
	if strings.HasPrefix(raw, "0x") || strings.HasPrefix(raw, "0X") {
		value, _ := strconv.ParseInt(raw[2:], 16, 64)
		return value
	}
	value, _ := strconv.ParseInt(raw, 10, 64)
	return value
}

func (p *parser) parseTemplateLiteral() Node {
	opening := p.next() //'`'
	literal := &StringTemplateLiteral{}

loop:
	for {
		switch p.current().Type {
		case STR_TEMPLATE_SLICE:
			tok := p.next()
			literal.Slices = append(literal.Slices, &StringTemplateSlice{
				NodeBase: NodeBase{Span: tok.Span},
				Raw:      tok.Raw,
				Value:    DecodeStringFragment(tok.Raw),
			})
		case STR_INTERP_OPENING:
			p.next()
			literal.Slices = append(literal.Slices, p.parseSequenceOrExpression())

			if _, ok := p.eat(STR_INTERP_CLOSING_BRACKET); !ok && !p.atEOF() {
				if literal.Err == nil {
					literal.Err = &ParsingError{Kind: UnspecifiedParsingError, Message: UNTERMINATED_TEMPLATE_INTERP}
				}
				//resynchronize on the end of the interpolation
				for !p.atEOF() && !p.is(STR_INTERP_CLOSING_BRACKET, BACKQUOTE) {
					p.next()
				}
				p.eat(STR_INTERP_CLOSING_BRACKET)
			}
		case BACKQUOTE:
			p.next()
			break loop
		default:
			//end of file: the unterminated template has already been
			//reported by the lexer
			break loop
		}
	}

	literal.Span = NodeSpan{Start: opening.Span.Start, End: p.prevEnd()}
	return literal
}

func (p *parser) parseArrayLiteral() Node {
	opening := p.next() //'['
	array := &ArrayLiteral{}

	for !p.atEOF() && !p.is(CLOSING_BRACKET) {
		if p.is(THREE_DOTS) {
			dotsTok := p.next()
			arg := p.parseExpression()
			array.Elements = append(array.Elements, &SpreadElement{
				NodeBase: NodeBase{Span: NodeSpan{Start: dotsTok.Span.Start, End: arg.Base().Span.End}},
				Argument: arg,
			})
		} else {
			array.Elements = append(array.Elements, p.parseExpression())
		}

		if _, ok := p.eat(COMMA); !ok {
			break
		}
	}

	if _, ok := p.eat(CLOSING_BRACKET); !ok {
		array.Err = &ParsingError{Kind: UnspecifiedParsingError, Message: UNTERMINATED_ARRAY_MISSING_BRACKET}
	}
	array.Span = NodeSpan{Start: opening.Span.Start, End: p.prevEnd()}
	return array
}

func (p *parser) parseObjectLiteral() Node {
	opening := p.next() //'{'
	object := &ObjectLiteral{}

	for !p.atEOF() && !p.is(CLOSING_CURLY_BRACKET) {
		if p.is(THREE_DOTS) {
			dotsTok := p.next()
			arg := p.parseExpression()
			object.Properties = append(object.Properties, &SpreadElement{
				NodeBase: NodeBase{Span: NodeSpan{Start: dotsTok.Span.Start, End: arg.Base().Span.End}},
				Argument: arg,
			})
		} else {
			prop, ok := p.parseObjectProperty()
			object.Properties = append(object.Properties, prop)
			if !ok {
				break
			}
		}

		if _, ok := p.eat(COMMA); !ok {
			break
		}
	}

	if _, ok := p.eat(CLOSING_CURLY_BRACKET); !ok {
		object.Err = &ParsingError{Kind: UnspecifiedParsingError, Message: UNTERMINATED_OBJECT_MISSING_BRACE}
	}
	object.Span = NodeSpan{Start: opening.Span.Start, End: p.prevEnd()}
	return object
}

// parseObjectProperty parses a single object literal entry; ok is false when
// the parser could not even find a key and the caller should stop.
func (p *parser) parseObjectProperty() (*ObjectProperty, bool) {
	prop := &ObjectProperty{}
	tok := p.current()

	switch {
	case tok.Type == OPENING_BRACKET:
		p.next()
		prop.Computed = true
		prop.Key = p.parseExpression()
		if _, ok := p.eat(CLOSING_BRACKET); !ok {
			prop.Err = &ParsingError{Kind: UnspecifiedParsingError, Message: UNTERMINATED_INDEX_MISSING_BRACKET}
		}
		if _, err := p.expect(COLON); err != nil && prop.Err == nil {
			prop.Err = err
		}
		prop.Value = p.parseExpression()

	case tok.Type == IDENTIFIER_LITERAL:
		p.next()
		prop.Key = &Identifier{NodeBase: NodeBase{Span: tok.Span}, Name: tok.Raw}

		if _, ok := p.eat(COLON); ok {
			prop.Value = p.parseExpression()
		} else {
			//shorthand: the value is a variable reference with the same
			//name, distinct from the key node
			prop.Shorthand = true
			prop.Value = &Identifier{NodeBase: NodeBase{Span: tok.Span}, Name: tok.Raw}
		}

	case tok.Type.IsKeyword():
		p.next()
		prop.Key = &Identifier{NodeBase: NodeBase{Span: tok.Span}, Name: tok.Str()}
		if _, err := p.expect(COLON); err != nil {
			prop.Err = err
		}
		prop.Value = p.parseExpression()

	case tok.Type == STRING_LITERAL:
		p.next()
		prop.Key = &StringLiteral{
			NodeBase: NodeBase{Span: tok.Span},
			Raw:      tok.Raw,
			Value:    DecodeQuotedString(tok.Raw),
		}
		if _, err := p.expect(COLON); err != nil {
			prop.Err = err
		}
		prop.Value = p.parseExpression()

	case tok.Type == INT_LITERAL:
		p.next()
		prop.Key = &IntLiteral{NodeBase: NodeBase{Span: tok.Span}, Raw: tok.Raw, Value: parseIntValue(tok.Raw)}
		if _, err := p.expect(COLON); err != nil {
			prop.Err = err
		}
		prop.Value = p.parseExpression()

	case tok.Type == DOUBLE_LITERAL:
		p.next()
		value, _ := strconv.ParseFloat(tok.Raw, 64)
		prop.Key = &DoubleLiteral{NodeBase: NodeBase{Span: tok.Span}, Raw: tok.Raw, Value: value}
		if _, err := p.expect(COLON); err != nil {
			prop.Err = err
		}
		prop.Value = p.parseExpression()

	default:
		prop.Err = &ParsingError{Kind: UnspecifiedParsingError, Message: PROPERTY_KEY_EXPECTED}
		prop.Span = NodeSpan{Start: tok.Span.Start, End: tok.Span.Start + 1}
		if tok.Type == EOF {
			prop.Span.End = prop.Span.Start
		}
		return prop, false
	}

	prop.Span = NodeSpan{Start: tok.Span.Start, End: p.prevEnd()}
	return prop, true
}

// isArrowFunctionAhead reports whether the '(' at the current position opens
// the parameter list of an arrow function; it scans to the matching ')' and
// checks the token after it.
func (p *parser) isArrowFunctionAhead() bool {
	depth := 1
	j := 1
	for {
		switch p.peek(j).Type {
		case OPENING_PARENTHESIS:
			depth++
		case CLOSING_PARENTHESIS:
			depth--
			if depth == 0 {
				return p.peek(j+1).Type == ARROW
			}
		case EOF:
			return false
		}
		j++
	}
}

// parseArrowFunction parses `ident => body` and `(params) => body`.
func (p *parser) parseArrowFunction() Node {
	start := p.current().Span.Start
	fn := &ArrowFunctionExpression{}

	if tok, ok := p.eat(IDENTIFIER_LITERAL); ok {
		param := &FunctionParameter{
			Name: &Identifier{NodeBase: NodeBase{Span: tok.Span}, Name: tok.Raw},
		}
		param.Span = tok.Span
		fn.Parameters = []*FunctionParameter{param}
	} else {
		p.next() //'('
		fn.Parameters = p.parseParameters()
		if _, err := p.expect(CLOSING_PARENTHESIS); err != nil {
			fn.Err = err
		}
	}

	if _, err := p.expect(ARROW); err != nil && fn.Err == nil {
		fn.Err = err
	}

	if p.is(OPENING_CURLY_BRACKET) {
		fn.Body = p.parseBlock()
	} else {
		fn.Body = p.parseExpression()
	}

	fn.Span = NodeSpan{Start: start, End: p.prevEnd()}
	return fn
}

// parseFunctionExpression parses a function expression or the function part
// of a declaration, starting at the 'function' keyword. Both the braced body
// and the alternative `: ... endfunction` syntax are supported.
func (p *parser) parseFunctionExpression() *FunctionExpression {
	functionTok := p.next() //'function'
	fn := &FunctionExpression{}

	if tok, ok := p.eat(IDENTIFIER_LITERAL); ok {
		fn.Name = &Identifier{NodeBase: NodeBase{Span: tok.Span}, Name: tok.Raw}
	}

	if _, err := p.expect(OPENING_PARENTHESIS); err != nil {
		fn.Err = err
	}
	fn.Parameters = p.parseParameters()
	if _, err := p.expect(CLOSING_PARENTHESIS); err != nil && fn.Err == nil {
		fn.Err = err
	}

	switch {
	case p.is(OPENING_CURLY_BRACKET):
		fn.Body = p.parseBlock()
	case p.is(COLON):
		p.next()
		fn.Body = p.parseStatementsUntil(ENDFUNCTION_KEYWORD)
		if _, ok := p.eat(ENDFUNCTION_KEYWORD); !ok && fn.Err == nil {
			fn.Err = &ParsingError{Kind: UnspecifiedParsingError, Message: UNTERMINATED_FUNCTION_MISSING_ENDFUNCTION}
		}
	default:
		if fn.Err == nil {
			fn.Err = &ParsingError{Kind: UnspecifiedParsingError, Message: fmtUnexpectedToken(p.current(), "'{'")}
		}
		fn.Body = &Block{NodeBase: NodeBase{Span: NodeSpan{Start: p.prevEnd(), End: p.prevEnd()}}}
	}

	fn.Span = NodeSpan{Start: functionTok.Span.Start, End: p.prevEnd()}
	return fn
}

// parseParameters parses a parameter list, stopping before the closing
// parenthesis.
func (p *parser) parseParameters() []*FunctionParameter {
	var params []*FunctionParameter

	for !p.atEOF() && !p.is(CLOSING_PARENTHESIS) {
		param := &FunctionParameter{}
		start := p.current().Span.Start

		if _, ok := p.eat(THREE_DOTS); ok {
			param.Rest = true
		}

		if tok, ok := p.eat(IDENTIFIER_LITERAL); ok {
			param.Name = &Identifier{NodeBase: NodeBase{Span: tok.Span}, Name: tok.Raw}
		} else {
			param.Err = &ParsingError{Kind: UnspecifiedParsingError, Message: PARAM_NAME_EXPECTED}
			param.Span = NodeSpan{Start: p.current().Span.Start, End: p.current().Span.Start + 1}
			if p.atEOF() {
				param.Span.End = param.Span.Start
			}
			params = append(params, param)
			break
		}

		if _, ok := p.eat(EQUAL); ok {
			param.Default = p.parseExpression()
		}

		param.Span = p.spanFrom(start)
		params = append(params, param)

		if _, ok := p.eat(COMMA); !ok {
			break
		}
	}

	for i, param := range params {
		if param.Rest && i != len(params)-1 && param.Err == nil {
			param.Err = &ParsingError{Kind: UnspecifiedParsingError, Message: INVALID_REST_PARAM_MUST_BE_LAST}
		}
	}

	return params
}
