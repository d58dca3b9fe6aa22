package parse

import (
	"fmt"

	"github.com/ucodelang/ucls/internal/sourcecode"
)

// A parser builds a best-effort AST from a token list; it recovers from
// errors at statement boundaries so a malformed construct never stops the
// parsing of the remainder of the file. Errors are stored on the nodes
// themselves.
type parser struct {
	tokens []Token //comment and error tokens excluded, the last token is EOF
	i      int
}

func newParser(tokens []Token) *parser {
	filtered := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		//error tokens are excluded as well: the lexer has already reported
		//them and the parser gets a cleaner stream to recover on.
		if t.Type == COMMENT || t.Type == UNEXPECTED_CHAR {
			continue
		}
		filtered = append(filtered, t)
	}
	return &parser{tokens: filtered}
}

// ParseChunk parses a single file. The returned error is either nil or a
// *sourcecode.ParsingErrorAggregation that aggregates the lexical errors and
// the errors stored in nodes; the chunk is non-nil even when the error is
// not, since errors are recovered from.
func ParseChunk(str string, fpath string) (*Chunk, error) {
	tokens, lexicalErrors := Tokenize(str)

	p := newParser(tokens)
	chunk := p.parseChunk()
	chunk.Tokens = tokens
	chunk.LexicalErrors = lexicalErrors

	src := sourcecode.NewFile(fpath, str)
	var aggregation *sourcecode.ParsingErrorAggregation

	addError := func(err *ParsingError, span NodeSpan) {
		if aggregation == nil {
			aggregation = &sourcecode.ParsingErrorAggregation{}
		}
		position := src.SpanPosition(span)
		aggregation.Errors = append(aggregation.Errors, err)
		aggregation.ErrorPositions = append(aggregation.ErrorPositions, position)
		aggregation.Message = fmt.Sprintf("%s\n%s:%d:%d: %s", aggregation.Message, fpath, position.StartLine, position.StartColumn, err.Message)
	}

	for _, lexErr := range lexicalErrors {
		addError(&ParsingError{Kind: lexErr.Kind, Message: lexErr.Message}, lexErr.Span)
	}

	Walk(chunk, func(node, _, _ Node, _ []Node, _ bool) (TraversalAction, error) {
		if err := node.Base().Err; err != nil {
			addError(err, node.Base().Span)
		}
		return ContinueTraversal, nil
	}, nil)

	if aggregation == nil {
		return chunk, nil
	}
	return chunk, aggregation
}

// MustParseChunk parses the given source and panics if it contains any
// error.
func MustParseChunk(str string) (result *Chunk) {
	n, err := ParseChunk(str, "<chunk>")
	if err != nil {
		panic(err)
	}
	return n
}

// ParseExpression parses a single expression; ok is false if the expression
// contains an error or if parsing did not consume the whole input.
func ParseExpression(str string) (Node, bool) {
	tokens, lexicalErrors := Tokenize(str)

	p := newParser(tokens)
	expr := p.parseExpression()

	ok := len(lexicalErrors) == 0 && p.atEOF() && !HasErrorAtAnyDepth(expr)
	return expr, ok
}

// ParsedChunkSource pairs a parsed chunk with its source file so that node
// spans can be converted to positions.
type ParsedChunkSource struct {
	Node   *Chunk
	Source *sourcecode.File
}

// ParseChunkSource parses the given file; a non-nil chunk source is returned
// even if err is not nil.
func ParseChunkSource(src *sourcecode.File) (*ParsedChunkSource, error) {
	chunk, err := ParseChunk(src.Code, src.Name)
	return &ParsedChunkSource{
		Node:   chunk,
		Source: src,
	}, err
}

func (c *ParsedChunkSource) GetSourcePosition(span NodeSpan) PositionRange {
	return c.Source.SpanPosition(span)
}

// -----------------------------------------------------------------------------
// navigation

func (p *parser) current() Token {
	return p.tokens[p.i]
}

func (p *parser) peek(n int) Token {
	if p.i+n >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.i+n]
}

func (p *parser) next() Token {
	tok := p.tokens[p.i]
	if tok.Type != EOF {
		p.i++
	}
	return tok
}

func (p *parser) atEOF() bool {
	return p.tokens[p.i].Type == EOF
}

func (p *parser) is(types ...TokenType) bool {
	current := p.tokens[p.i].Type
	for _, t := range types {
		if current == t {
			return true
		}
	}
	return false
}

func (p *parser) eat(t TokenType) (Token, bool) {
	if p.tokens[p.i].Type == t {
		return p.next(), true
	}
	return Token{}, false
}

// expect consumes the current token if it has the wanted type, otherwise it
// returns an error and consumes nothing.
func (p *parser) expect(t TokenType) (Token, *ParsingError) {
	if p.tokens[p.i].Type == t {
		return p.next(), nil
	}
	return Token{}, &ParsingError{Kind: UnspecifiedParsingError, Message: fmtUnexpectedToken(p.current(), "'"+tokenStrings[t]+"'")}
}

// prevEnd returns the end offset of the last consumed token.
func (p *parser) prevEnd() int32 {
	if p.i == 0 {
		return 0
	}
	return p.tokens[p.i-1].Span.End
}

func (p *parser) spanFrom(start int32) NodeSpan {
	end := p.prevEnd()
	if end < start {
		end = start
	}
	return NodeSpan{Start: start, End: end}
}

// missingExpr builds the placeholder node used where an expression was
// expected but could not be parsed. It does not consume anything.
func (p *parser) missingExpr() *MissingExpression {
	tok := p.current()
	span := NodeSpan{Start: tok.Span.Start, End: tok.Span.Start + 1}
	if tok.Type == EOF {
		span.End = span.Start
	}
	return &MissingExpression{
		NodeBase: NodeBase{
			Span: span,
			Err:  &ParsingError{Kind: UnspecifiedParsingError, Message: EXPR_EXPECTED},
		},
	}
}

// -----------------------------------------------------------------------------
// statements

func (p *parser) parseChunk() *Chunk {
	chunk := &Chunk{}

	for !p.atEOF() {
		before := p.i
		chunk.Statements = append(chunk.Statements, p.parseStatement())
		if p.i == before {
			//ensure progress whatever state the parser is in
			p.i++
		}
	}

	chunk.Span = NodeSpan{Start: 0, End: p.tokens[len(p.tokens)-1].Span.End}
	return chunk
}

func (p *parser) parseStatement() Node {
	switch p.current().Type {
	case SEMICOLON:
		tok := p.next()
		return &EmptyStatement{NodeBase: NodeBase{Span: tok.Span}}
	case OPENING_CURLY_BRACKET:
		return p.parseBlock()
	case IF_KEYWORD:
		return p.parseIfStatement()
	case FOR_KEYWORD:
		return p.parseForStatement()
	case WHILE_KEYWORD:
		return p.parseWhileStatement()
	case DO_KEYWORD:
		return p.parseDoWhileStatement()
	case SWITCH_KEYWORD:
		return p.parseSwitchStatement()
	case TRY_KEYWORD:
		return p.parseTryStatement()
	case RETURN_KEYWORD:
		return p.parseReturnStatement()
	case BREAK_KEYWORD:
		tok := p.next()
		stmt := &BreakStatement{}
		stmt.Err = p.eatStatementTerminator()
		stmt.Span = p.spanFrom(tok.Span.Start)
		return stmt
	case CONTINUE_KEYWORD:
		tok := p.next()
		stmt := &ContinueStatement{}
		stmt.Err = p.eatStatementTerminator()
		stmt.Span = p.spanFrom(tok.Span.Start)
		return stmt
	case LET_KEYWORD, CONST_KEYWORD:
		return p.parseVariableDeclaration()
	case FUNCTION_KEYWORD:
		if p.peek(1).Type == IDENTIFIER_LITERAL {
			return p.parseFunctionDeclaration()
		}
		return p.parseExpressionStatement()
	case IMPORT_KEYWORD:
		return p.parseImportStatement()
	case EXPORT_KEYWORD:
		return p.parseExportStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// eatStatementTerminator consumes the terminating ';' of a simple statement.
// A closing brace and the end of the file also terminate statements so that
// a missing semicolon before them is not reported.
func (p *parser) eatStatementTerminator() *ParsingError {
	if _, ok := p.eat(SEMICOLON); ok {
		return nil
	}
	switch p.current().Type {
	case CLOSING_CURLY_BRACKET, EOF,
		ELIF_KEYWORD, ELSE_KEYWORD, ENDIF_KEYWORD, ENDFOR_KEYWORD, ENDWHILE_KEYWORD, ENDFUNCTION_KEYWORD,
		CASE_KEYWORD, DEFAULT_KEYWORD:
		return nil
	}
	return &ParsingError{Kind: UnspecifiedParsingError, Message: fmtUnexpectedToken(p.current(), "';'")}
}

func (p *parser) parseExpressionStatement() Node {
	start := p.current().Span.Start

	expr := p.parseSequenceOrExpression()

	if _, ok := expr.(*MissingExpression); ok {
		//nothing could be parsed: skip to the next statement boundary
		errTok := p.current()
		p.next()
		p.skipToNextStatement()
		return &BadStatement{
			NodeBase: NodeBase{
				Span: p.spanFrom(start),
				Err:  &ParsingError{Kind: UnspecifiedParsingError, Message: fmtUnexpectedTokenHere(errTok)},
			},
		}
	}

	stmt := &ExpressionStatement{Expression: expr}
	stmt.Err = p.eatStatementTerminator()
	stmt.Span = p.spanFrom(start)
	return stmt
}

func (p *parser) skipToNextStatement() {
	for !p.atEOF() {
		switch p.current().Type {
		case SEMICOLON:
			p.next()
			return
		case CLOSING_CURLY_BRACKET,
			IF_KEYWORD, FOR_KEYWORD, WHILE_KEYWORD, DO_KEYWORD, SWITCH_KEYWORD, TRY_KEYWORD,
			RETURN_KEYWORD, BREAK_KEYWORD, CONTINUE_KEYWORD, LET_KEYWORD, CONST_KEYWORD,
			FUNCTION_KEYWORD, IMPORT_KEYWORD, EXPORT_KEYWORD,
			ELIF_KEYWORD, ELSE_KEYWORD, ENDIF_KEYWORD, ENDFOR_KEYWORD, ENDWHILE_KEYWORD, ENDFUNCTION_KEYWORD:
			return
		default:
			p.next()
		}
	}
}

func (p *parser) parseBlock() *Block {
	block := &Block{}
	opening := p.next() //'{'

	for !p.atEOF() && !p.is(CLOSING_CURLY_BRACKET) {
		before := p.i
		block.Statements = append(block.Statements, p.parseStatement())
		if p.i == before {
			p.i++
		}
	}

	if _, ok := p.eat(CLOSING_CURLY_BRACKET); !ok {
		block.Err = &ParsingError{Kind: UnspecifiedParsingError, Message: UNTERMINATED_BLOCK_MISSING_BRACE}
	}
	block.Span = p.spanFrom(opening.Span.Start)
	return block
}

// parseStatementAsBlock parses either a braced block or a single statement
// wrapped in a synthetic block.
func (p *parser) parseStatementAsBlock() *Block {
	if p.is(OPENING_CURLY_BRACKET) {
		return p.parseBlock()
	}
	stmt := p.parseStatement()
	return &Block{
		NodeBase:   NodeBase{Span: stmt.Base().Span},
		Statements: []Node{stmt},
	}
}

// parseStatementsUntil parses statements until one of the terminator token
// types is reached; the terminator is not consumed. It backs the alternative
// block syntax (`if (x): ... endif`).
func (p *parser) parseStatementsUntil(terminators ...TokenType) *Block {
	block := &Block{}
	start := p.current().Span.Start

	for !p.atEOF() && !p.is(terminators...) {
		before := p.i
		block.Statements = append(block.Statements, p.parseStatement())
		if p.i == before {
			p.i++
		}
	}

	block.Span = p.spanFrom(start)
	if block.Span.End < start {
		block.Span = NodeSpan{Start: start, End: start}
	}
	return block
}

func (p *parser) parseIfStatement() Node {
	ifTok := p.next() //'if'
	stmt, alternativeSyntax := p.parseIfContinuation(ifTok.Span.Start)

	if alternativeSyntax {
		if _, ok := p.eat(ENDIF_KEYWORD); !ok && stmt.Err == nil {
			stmt.Err = &ParsingError{Kind: UnspecifiedParsingError, Message: UNTERMINATED_IF_MISSING_ENDIF}
		}
		stmt.Span = p.spanFrom(ifTok.Span.Start)
	}
	return stmt
}

// parseIfContinuation parses `(test) ...` after an `if` or `elif` keyword.
// It never consumes the `endif` terminator of the alternative syntax: the
// outermost caller does.
func (p *parser) parseIfContinuation(start int32) (*IfStatement, bool) {
	stmt := &IfStatement{}

	if _, err := p.expect(OPENING_PARENTHESIS); err != nil {
		stmt.Err = err
	}
	stmt.Test = p.parseExpression()
	if _, err := p.expect(CLOSING_PARENTHESIS); err != nil && stmt.Err == nil {
		stmt.Err = err
	}

	if _, ok := p.eat(COLON); ok {
		stmt.Consequent = p.parseStatementsUntil(ELIF_KEYWORD, ELSE_KEYWORD, ENDIF_KEYWORD)

		switch p.current().Type {
		case ELIF_KEYWORD:
			elifTok := p.next()
			alternate, _ := p.parseIfContinuation(elifTok.Span.Start)
			stmt.Alternate = alternate
		case ELSE_KEYWORD:
			p.next()
			p.eat(COLON)
			stmt.Alternate = p.parseStatementsUntil(ENDIF_KEYWORD)
		}

		stmt.Span = p.spanFrom(start)
		return stmt, true
	}

	stmt.Consequent = p.parseStatementAsBlock()

	if _, ok := p.eat(ELSE_KEYWORD); ok {
		if p.is(IF_KEYWORD) {
			stmt.Alternate = p.parseIfStatement()
		} else {
			stmt.Alternate = p.parseStatementAsBlock()
		}
	}

	stmt.Span = p.spanFrom(start)
	return stmt, false
}

func (p *parser) parseWhileStatement() Node {
	whileTok := p.next() //'while'
	stmt := &WhileStatement{}

	if _, err := p.expect(OPENING_PARENTHESIS); err != nil {
		stmt.Err = err
	}
	stmt.Test = p.parseExpression()
	if _, err := p.expect(CLOSING_PARENTHESIS); err != nil && stmt.Err == nil {
		stmt.Err = err
	}

	if _, ok := p.eat(COLON); ok {
		stmt.Body = p.parseStatementsUntil(ENDWHILE_KEYWORD)
		if _, ok := p.eat(ENDWHILE_KEYWORD); !ok && stmt.Err == nil {
			stmt.Err = &ParsingError{Kind: UnspecifiedParsingError, Message: UNTERMINATED_WHILE_MISSING_ENDWHILE}
		}
	} else {
		stmt.Body = p.parseStatementAsBlock()
	}

	stmt.Span = p.spanFrom(whileTok.Span.Start)
	return stmt
}

func (p *parser) parseDoWhileStatement() Node {
	doTok := p.next() //'do'
	stmt := &DoWhileStatement{}

	stmt.Body = p.parseStatementAsBlock()

	if _, err := p.expect(WHILE_KEYWORD); err != nil {
		stmt.Err = err
	}
	if _, err := p.expect(OPENING_PARENTHESIS); err != nil && stmt.Err == nil {
		stmt.Err = err
	}
	stmt.Test = p.parseExpression()
	if _, err := p.expect(CLOSING_PARENTHESIS); err != nil && stmt.Err == nil {
		stmt.Err = err
	}
	if err := p.eatStatementTerminator(); err != nil && stmt.Err == nil {
		stmt.Err = err
	}

	stmt.Span = p.spanFrom(doTok.Span.Start)
	return stmt
}

func (p *parser) parseForStatement() Node {
	forTok := p.next() //'for'

	var parenErr *ParsingError
	if _, err := p.expect(OPENING_PARENTHESIS); err != nil {
		parenErr = err
	}

	if p.isForInHeader() {
		return p.parseForInStatement(forTok.Span.Start, parenErr)
	}

	stmt := &ForStatement{}
	stmt.Err = parenErr

	//init clause
	if !p.is(SEMICOLON) {
		if p.is(LET_KEYWORD, CONST_KEYWORD) {
			stmt.Init = p.parseVariableDeclarationNoSemi()
		} else {
			stmt.Init = p.parseSequenceOrExpression()
		}
	}
	if _, err := p.expect(SEMICOLON); err != nil && stmt.Err == nil {
		stmt.Err = err
	}

	//test clause
	if !p.is(SEMICOLON) {
		stmt.Test = p.parseExpression()
	}
	if _, err := p.expect(SEMICOLON); err != nil && stmt.Err == nil {
		stmt.Err = err
	}

	//update clause
	if !p.is(CLOSING_PARENTHESIS) {
		stmt.Update = p.parseSequenceOrExpression()
	}
	if _, err := p.expect(CLOSING_PARENTHESIS); err != nil && stmt.Err == nil {
		stmt.Err = err
	}

	if _, ok := p.eat(COLON); ok {
		stmt.Body = p.parseStatementsUntil(ENDFOR_KEYWORD)
		if _, ok := p.eat(ENDFOR_KEYWORD); !ok && stmt.Err == nil {
			stmt.Err = &ParsingError{Kind: UnspecifiedParsingError, Message: UNTERMINATED_FOR_MISSING_ENDFOR}
		}
	} else {
		stmt.Body = p.parseStatementAsBlock()
	}

	stmt.Span = p.spanFrom(forTok.Span.Start)
	return stmt
}

// isForInHeader checks whether the tokens after `for (` form a for-in header:
// `[let|const] ident [, ident] in`.
func (p *parser) isForInHeader() bool {
	j := 0
	t := p.peek(j).Type
	if t == LET_KEYWORD || t == CONST_KEYWORD {
		j++
	}
	if p.peek(j).Type != IDENTIFIER_LITERAL {
		return false
	}
	j++
	if p.peek(j).Type == COMMA {
		j++
		if p.peek(j).Type != IDENTIFIER_LITERAL {
			return false
		}
		j++
	}
	return p.peek(j).Type == IN_KEYWORD
}

func (p *parser) parseForInStatement(start int32, parenErr *ParsingError) Node {
	stmt := &ForInStatement{}
	stmt.Err = parenErr

	if t := p.current().Type; t == LET_KEYWORD || t == CONST_KEYWORD {
		p.next()
		stmt.DeclKeyword = t
	}

	keyTok := p.next() //identifier, guaranteed by isForInHeader
	stmt.KeyVar = &Identifier{
		NodeBase: NodeBase{Span: keyTok.Span},
		Name:     keyTok.Raw,
	}

	if _, ok := p.eat(COMMA); ok {
		valueTok := p.next()
		stmt.ValueVar = &Identifier{
			NodeBase: NodeBase{Span: valueTok.Span},
			Name:     valueTok.Raw,
		}
	}

	p.next() //'in'
	stmt.Iterated = p.parseExpression()

	if _, err := p.expect(CLOSING_PARENTHESIS); err != nil && stmt.Err == nil {
		stmt.Err = err
	}

	if _, ok := p.eat(COLON); ok {
		stmt.Body = p.parseStatementsUntil(ENDFOR_KEYWORD)
		if _, ok := p.eat(ENDFOR_KEYWORD); !ok && stmt.Err == nil {
			stmt.Err = &ParsingError{Kind: UnspecifiedParsingError, Message: UNTERMINATED_FOR_MISSING_ENDFOR}
		}
	} else {
		stmt.Body = p.parseStatementAsBlock()
	}

	stmt.Span = p.spanFrom(start)
	return stmt
}

func (p *parser) parseSwitchStatement() Node {
	switchTok := p.next() //'switch'
	stmt := &SwitchStatement{}

	if _, err := p.expect(OPENING_PARENTHESIS); err != nil {
		stmt.Err = err
	}
	stmt.Discriminant = p.parseExpression()
	if _, err := p.expect(CLOSING_PARENTHESIS); err != nil && stmt.Err == nil {
		stmt.Err = err
	}
	if _, err := p.expect(OPENING_CURLY_BRACKET); err != nil && stmt.Err == nil {
		stmt.Err = err
	}

	for !p.atEOF() && !p.is(CLOSING_CURLY_BRACKET) {
		switch p.current().Type {
		case CASE_KEYWORD:
			caseTok := p.next()
			switchCase := &SwitchCase{}
			switchCase.Test = p.parseExpression()
			if _, err := p.expect(COLON); err != nil {
				switchCase.Err = err
			}
			switchCase.Consequent = p.parseStatementsUntil(CASE_KEYWORD, DEFAULT_KEYWORD, CLOSING_CURLY_BRACKET).Statements
			switchCase.Span = p.spanFrom(caseTok.Span.Start)
			stmt.Cases = append(stmt.Cases, switchCase)
		case DEFAULT_KEYWORD:
			defaultTok := p.next()
			switchCase := &SwitchCase{}
			if _, err := p.expect(COLON); err != nil {
				switchCase.Err = err
			}
			switchCase.Consequent = p.parseStatementsUntil(CASE_KEYWORD, DEFAULT_KEYWORD, CLOSING_CURLY_BRACKET).Statements
			switchCase.Span = p.spanFrom(defaultTok.Span.Start)
			stmt.Cases = append(stmt.Cases, switchCase)
		default:
			//tolerate and skip anything that is not a clause
			if stmt.Err == nil {
				stmt.Err = &ParsingError{Kind: UnspecifiedParsingError, Message: CASE_OR_DEFAULT_EXPECTED}
			}
			p.next()
		}
	}

	if _, ok := p.eat(CLOSING_CURLY_BRACKET); !ok && stmt.Err == nil {
		stmt.Err = &ParsingError{Kind: UnspecifiedParsingError, Message: UNTERMINATED_SWITCH_MISSING_BRACE}
	}

	stmt.Span = p.spanFrom(switchTok.Span.Start)
	return stmt
}

func (p *parser) parseTryStatement() Node {
	tryTok := p.next() //'try'
	stmt := &TryStatement{}

	if p.is(OPENING_CURLY_BRACKET) {
		stmt.Block = p.parseBlock()
	} else {
		stmt.Err = &ParsingError{Kind: UnspecifiedParsingError, Message: fmtUnexpectedToken(p.current(), "'{'")}
		stmt.Block = &Block{NodeBase: NodeBase{Span: NodeSpan{Start: p.prevEnd(), End: p.prevEnd()}}}
	}

	if catchTok, ok := p.eat(CATCH_KEYWORD); ok {
		handler := &CatchClause{}

		if _, ok := p.eat(OPENING_PARENTHESIS); ok {
			if tok, ok := p.eat(IDENTIFIER_LITERAL); ok {
				handler.Param = &Identifier{
					NodeBase: NodeBase{Span: tok.Span},
					Name:     tok.Raw,
				}
			} else {
				handler.Err = &ParsingError{Kind: UnspecifiedParsingError, Message: VAR_NAME_EXPECTED}
			}
			if _, err := p.expect(CLOSING_PARENTHESIS); err != nil && handler.Err == nil {
				handler.Err = err
			}
		}

		if p.is(OPENING_CURLY_BRACKET) {
			handler.Body = p.parseBlock()
		} else {
			if handler.Err == nil {
				handler.Err = &ParsingError{Kind: UnspecifiedParsingError, Message: fmtUnexpectedToken(p.current(), "'{'")}
			}
			handler.Body = &Block{NodeBase: NodeBase{Span: NodeSpan{Start: p.prevEnd(), End: p.prevEnd()}}}
		}

		handler.Span = p.spanFrom(catchTok.Span.Start)
		stmt.Handler = handler
	} else if stmt.Err == nil {
		stmt.Err = &ParsingError{Kind: UnspecifiedParsingError, Message: MISSING_CATCH_CLAUSE}
	}

	stmt.Span = p.spanFrom(tryTok.Span.Start)
	return stmt
}

func (p *parser) parseReturnStatement() Node {
	returnTok := p.next() //'return'
	stmt := &ReturnStatement{}

	if !p.is(SEMICOLON, CLOSING_CURLY_BRACKET, EOF,
		ELIF_KEYWORD, ELSE_KEYWORD, ENDIF_KEYWORD, ENDFOR_KEYWORD, ENDWHILE_KEYWORD, ENDFUNCTION_KEYWORD,
		CASE_KEYWORD, DEFAULT_KEYWORD) {
		stmt.Argument = p.parseExpression()
	}
	stmt.Err = p.eatStatementTerminator()
	stmt.Span = p.spanFrom(returnTok.Span.Start)
	return stmt
}

func (p *parser) parseVariableDeclaration() Node {
	decl := p.parseVariableDeclarationNoSemi()
	if err := p.eatStatementTerminator(); err != nil && decl.Err == nil {
		decl.Err = err
	}
	decl.Span = p.spanFrom(decl.Span.Start)
	return decl
}

func (p *parser) parseVariableDeclarationNoSemi() *VariableDeclaration {
	declTok := p.next() //'let' | 'const'
	decl := &VariableDeclaration{DeclKeyword: declTok.Type}

	for {
		declarator := &VariableDeclarator{}

		if tok, ok := p.eat(IDENTIFIER_LITERAL); ok {
			declarator.Name = &Identifier{
				NodeBase: NodeBase{Span: tok.Span},
				Name:     tok.Raw,
			}
			declarator.Span = tok.Span

			if _, ok := p.eat(EQUAL); ok {
				declarator.Init = p.parseExpression()
				declarator.Span = p.spanFrom(tok.Span.Start)
			} else if decl.DeclKeyword == CONST_KEYWORD {
				declarator.Err = &ParsingError{Kind: UnspecifiedParsingError, Message: CONST_DECL_MISSING_INIT}
			}
		} else {
			declarator.Err = &ParsingError{Kind: UnspecifiedParsingError, Message: VAR_NAME_EXPECTED}
			declarator.Span = NodeSpan{Start: p.current().Span.Start, End: p.current().Span.Start + 1}
			if p.atEOF() {
				declarator.Span.End = declarator.Span.Start
			}
			decl.Declarations = append(decl.Declarations, declarator)
			break
		}

		decl.Declarations = append(decl.Declarations, declarator)

		if _, ok := p.eat(COMMA); !ok {
			break
		}
	}

	decl.Span = p.spanFrom(declTok.Span.Start)
	return decl
}

func (p *parser) parseFunctionDeclaration() Node {
	start := p.current().Span.Start
	fn := p.parseFunctionExpression() //consumes 'function'

	decl := &FunctionDeclaration{
		Name:     fn.Name,
		Function: fn,
	}
	decl.Span = p.spanFrom(start)
	return decl
}

func (p *parser) parseImportStatement() Node {
	importTok := p.next() //'import'
	stmt := &ImportStatement{}

	if !p.is(STRING_LITERAL) {
		for {
			switch p.current().Type {
			case ASTERISK:
				specStart := p.next().Span.Start //'*'
				spec := &ImportSpecifier{SpecifierKind: NamespaceImport}
				if _, err := p.expect(AS_KEYWORD); err != nil {
					spec.Err = err
				}
				if tok, ok := p.eat(IDENTIFIER_LITERAL); ok {
					spec.Local = &Identifier{NodeBase: NodeBase{Span: tok.Span}, Name: tok.Raw}
				} else if spec.Err == nil {
					spec.Err = &ParsingError{Kind: UnspecifiedParsingError, Message: VAR_NAME_EXPECTED}
				}
				spec.Span = p.spanFrom(specStart)
				stmt.Specifiers = append(stmt.Specifiers, spec)
			case OPENING_CURLY_BRACKET:
				p.next() //'{'
				for !p.atEOF() && !p.is(CLOSING_CURLY_BRACKET) {
					spec := &ImportSpecifier{SpecifierKind: NamedImport}
					tok, ok := p.eat(IDENTIFIER_LITERAL)
					if !ok {
						spec.Err = &ParsingError{Kind: UnspecifiedParsingError, Message: VAR_NAME_EXPECTED}
						spec.Span = NodeSpan{Start: p.current().Span.Start, End: p.current().Span.Start + 1}
						stmt.Specifiers = append(stmt.Specifiers, spec)
						p.next()
						continue
					}
					imported := &Identifier{NodeBase: NodeBase{Span: tok.Span}, Name: tok.Raw}
					spec.Imported = imported
					spec.Local = imported

					if _, ok := p.eat(AS_KEYWORD); ok {
						if aliasTok, ok := p.eat(IDENTIFIER_LITERAL); ok {
							spec.Local = &Identifier{NodeBase: NodeBase{Span: aliasTok.Span}, Name: aliasTok.Raw}
						} else {
							spec.Err = &ParsingError{Kind: UnspecifiedParsingError, Message: VAR_NAME_EXPECTED}
						}
					}
					spec.Span = p.spanFrom(tok.Span.Start)
					stmt.Specifiers = append(stmt.Specifiers, spec)

					if _, ok := p.eat(COMMA); !ok {
						break
					}
				}
				if _, err := p.expect(CLOSING_CURLY_BRACKET); err != nil && stmt.Err == nil {
					stmt.Err = err
				}
			case IDENTIFIER_LITERAL:
				tok := p.next()
				spec := &ImportSpecifier{SpecifierKind: DefaultImport}
				spec.Local = &Identifier{NodeBase: NodeBase{Span: tok.Span}, Name: tok.Raw}
				spec.Span = tok.Span
				stmt.Specifiers = append(stmt.Specifiers, spec)
			default:
				if stmt.Err == nil {
					stmt.Err = &ParsingError{Kind: UnspecifiedParsingError, Message: IMPORT_SPECIFIER_EXPECTED}
				}
			}

			if _, ok := p.eat(COMMA); !ok {
				break
			}
		}

		if _, err := p.expect(FROM_KEYWORD); err != nil && stmt.Err == nil {
			stmt.Err = err
		}
	}

	if tok, ok := p.eat(STRING_LITERAL); ok {
		stmt.Source = &StringLiteral{
			NodeBase: NodeBase{Span: tok.Span},
			Raw:      tok.Raw,
			Value:    DecodeQuotedString(tok.Raw),
		}
	} else if stmt.Err == nil {
		stmt.Err = &ParsingError{Kind: UnspecifiedParsingError, Message: IMPORT_SOURCE_EXPECTED}
	}

	if err := p.eatStatementTerminator(); err != nil && stmt.Err == nil {
		stmt.Err = err
	}
	stmt.Span = p.spanFrom(importTok.Span.Start)
	return stmt
}

func (p *parser) parseExportStatement() Node {
	exportTok := p.next() //'export'
	stmt := &ExportStatement{}

	switch p.current().Type {
	case LET_KEYWORD, CONST_KEYWORD:
		stmt.Declaration = p.parseVariableDeclaration()
	case FUNCTION_KEYWORD:
		stmt.Declaration = p.parseFunctionDeclaration()
	case DEFAULT_KEYWORD:
		p.next()
		stmt.Default = p.parseExpression()
		if err := p.eatStatementTerminator(); err != nil {
			stmt.Err = err
		}
	case OPENING_CURLY_BRACKET:
		p.next() //'{'
		for !p.atEOF() && !p.is(CLOSING_CURLY_BRACKET) {
			spec := &ExportSpecifier{}
			tok, ok := p.eat(IDENTIFIER_LITERAL)
			if !ok {
				spec.Err = &ParsingError{Kind: UnspecifiedParsingError, Message: VAR_NAME_EXPECTED}
				spec.Span = NodeSpan{Start: p.current().Span.Start, End: p.current().Span.Start + 1}
				stmt.Specifiers = append(stmt.Specifiers, spec)
				p.next()
				continue
			}
			spec.Local = &Identifier{NodeBase: NodeBase{Span: tok.Span}, Name: tok.Raw}

			if _, ok := p.eat(AS_KEYWORD); ok {
				if aliasTok, ok := p.eat(IDENTIFIER_LITERAL); ok {
					spec.Exported = &Identifier{NodeBase: NodeBase{Span: aliasTok.Span}, Name: aliasTok.Raw}
				} else {
					spec.Err = &ParsingError{Kind: UnspecifiedParsingError, Message: VAR_NAME_EXPECTED}
				}
			}
			spec.Span = p.spanFrom(tok.Span.Start)
			stmt.Specifiers = append(stmt.Specifiers, spec)

			if _, ok := p.eat(COMMA); !ok {
				break
			}
		}
		if _, err := p.expect(CLOSING_CURLY_BRACKET); err != nil && stmt.Err == nil {
			stmt.Err = err
		}
		if err := p.eatStatementTerminator(); err != nil && stmt.Err == nil {
			stmt.Err = err
		}
	default:
		stmt.Err = &ParsingError{Kind: UnspecifiedParsingError, Message: EXPORTABLE_DECL_EXPECTED}
	}

	stmt.Span = p.spanFrom(exportTok.Span.Start)
	return stmt
}
