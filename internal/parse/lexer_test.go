package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {

	t.Run("empty input", func(t *testing.T) {
		tokens, errs := Tokenize("")
		assert.Empty(t, errs)
		assert.Equal(t, []Token{
			{Type: EOF, Span: NodeSpan{Start: 0, End: 0}, Line: 1, Column: 1},
		}, tokens)
	})

	t.Run("numbers", func(t *testing.T) {

		t.Run("integer literal", func(t *testing.T) {
			tokens, errs := Tokenize("42")
			assert.Empty(t, errs)
			assert.Equal(t, []Token{
				{Type: INT_LITERAL, Span: NodeSpan{Start: 0, End: 2}, Raw: "42", Line: 1, Column: 1},
				{Type: EOF, Span: NodeSpan{Start: 2, End: 2}, Line: 1, Column: 3},
			}, tokens)
		})

		t.Run("hexadecimal literal", func(t *testing.T) {
			tokens, errs := Tokenize("0x1F")
			assert.Empty(t, errs)
			assert.Equal(t, []Token{
				{Type: INT_LITERAL, Span: NodeSpan{Start: 0, End: 4}, Raw: "0x1F", Line: 1, Column: 1},
				{Type: EOF, Span: NodeSpan{Start: 4, End: 4}, Line: 1, Column: 5},
			}, tokens)
		})

		t.Run("hexadecimal literal without digits", func(t *testing.T) {
			tokens, errs := Tokenize("0x")
			assert.Equal(t, []LexicalError{
				{Kind: UnexpectedCharError, Message: INVALID_HEX_LITERAL, Span: NodeSpan{Start: 0, End: 2}},
			}, errs)
			assert.Equal(t, []Token{
				{Type: INT_LITERAL, Span: NodeSpan{Start: 0, End: 2}, Raw: "0x", Line: 1, Column: 1},
				{Type: EOF, Span: NodeSpan{Start: 2, End: 2}, Line: 1, Column: 3},
			}, tokens)
		})

		t.Run("double literal", func(t *testing.T) {
			tokens, errs := Tokenize("1.5")
			assert.Empty(t, errs)
			assert.Equal(t, []Token{
				{Type: DOUBLE_LITERAL, Span: NodeSpan{Start: 0, End: 3}, Raw: "1.5", Line: 1, Column: 1},
				{Type: EOF, Span: NodeSpan{Start: 3, End: 3}, Line: 1, Column: 4},
			}, tokens)
		})

		t.Run("double literal starting with a dot", func(t *testing.T) {
			tokens, errs := Tokenize(".5")
			assert.Empty(t, errs)
			assert.Equal(t, []Token{
				{Type: DOUBLE_LITERAL, Span: NodeSpan{Start: 0, End: 2}, Raw: ".5", Line: 1, Column: 1},
				{Type: EOF, Span: NodeSpan{Start: 2, End: 2}, Line: 1, Column: 3},
			}, tokens)
		})

		t.Run("double literal with exponent", func(t *testing.T) {
			tokens, errs := Tokenize("1.5e-2")
			assert.Empty(t, errs)
			assert.Equal(t, []Token{
				{Type: DOUBLE_LITERAL, Span: NodeSpan{Start: 0, End: 6}, Raw: "1.5e-2", Line: 1, Column: 1},
				{Type: EOF, Span: NodeSpan{Start: 6, End: 6}, Line: 1, Column: 7},
			}, tokens)
		})

		t.Run("exponent without digits is not part of the literal", func(t *testing.T) {
			tokens, errs := Tokenize("1e")
			assert.Empty(t, errs)
			assert.Equal(t, []Token{
				{Type: INT_LITERAL, Span: NodeSpan{Start: 0, End: 1}, Raw: "1", Line: 1, Column: 1},
				{Type: IDENTIFIER_LITERAL, Span: NodeSpan{Start: 1, End: 2}, Raw: "e", Line: 1, Column: 2},
				{Type: EOF, Span: NodeSpan{Start: 2, End: 2}, Line: 1, Column: 3},
			}, tokens)
		})

		t.Run("NaN and Infinity are double literals", func(t *testing.T) {
			tokens, errs := Tokenize("NaN")
			assert.Empty(t, errs)
			assert.Equal(t, DOUBLE_LITERAL, tokens[0].Type)
			assert.Equal(t, "NaN", tokens[0].Raw)

			tokens, errs = Tokenize("Infinity")
			assert.Empty(t, errs)
			assert.Equal(t, DOUBLE_LITERAL, tokens[0].Type)
			assert.Equal(t, "Infinity", tokens[0].Raw)
		})
	})

	t.Run("strings", func(t *testing.T) {

		t.Run("double quoted", func(t *testing.T) {
			tokens, errs := Tokenize(`"abc"`)
			assert.Empty(t, errs)
			assert.Equal(t, []Token{
				{Type: STRING_LITERAL, Span: NodeSpan{Start: 0, End: 5}, Raw: `"abc"`, Line: 1, Column: 1},
				{Type: EOF, Span: NodeSpan{Start: 5, End: 5}, Line: 1, Column: 6},
			}, tokens)
		})

		t.Run("single quoted with an escaped quote", func(t *testing.T) {
			tokens, errs := Tokenize(`'a\'b'`)
			assert.Empty(t, errs)
			assert.Equal(t, []Token{
				{Type: STRING_LITERAL, Span: NodeSpan{Start: 0, End: 6}, Raw: `'a\'b'`, Line: 1, Column: 1},
				{Type: EOF, Span: NodeSpan{Start: 6, End: 6}, Line: 1, Column: 7},
			}, tokens)
		})

		t.Run("unterminated at end of file", func(t *testing.T) {
			tokens, errs := Tokenize(`"ab`)
			assert.Equal(t, []LexicalError{
				{Kind: UnexpectedCharError, Message: UNTERMINATED_STRING_LIT, Span: NodeSpan{Start: 0, End: 3}},
			}, errs)
			assert.Equal(t, []Token{
				{Type: STRING_LITERAL, Span: NodeSpan{Start: 0, End: 3}, Raw: `"ab`, Line: 1, Column: 1},
				{Type: EOF, Span: NodeSpan{Start: 3, End: 3}, Line: 1, Column: 4},
			}, tokens)
		})

		t.Run("unterminated by a newline: scanning continues", func(t *testing.T) {
			tokens, errs := Tokenize("\"ab\nx")
			assert.Equal(t, []LexicalError{
				{Kind: UnexpectedCharError, Message: UNTERMINATED_STRING_LIT, Span: NodeSpan{Start: 0, End: 3}},
			}, errs)
			assert.Equal(t, []Token{
				{Type: STRING_LITERAL, Span: NodeSpan{Start: 0, End: 3}, Raw: `"ab`, Line: 1, Column: 1},
				{Type: IDENTIFIER_LITERAL, Span: NodeSpan{Start: 4, End: 5}, Raw: "x", Line: 2, Column: 1},
				{Type: EOF, Span: NodeSpan{Start: 5, End: 5}, Line: 2, Column: 2},
			}, tokens)
		})
	})

	t.Run("regex literals and division", func(t *testing.T) {

		t.Run("regex at the start of the input", func(t *testing.T) {
			tokens, errs := Tokenize("/ab/")
			assert.Empty(t, errs)
			assert.Equal(t, []Token{
				{Type: REGEX_LITERAL, Span: NodeSpan{Start: 0, End: 4}, Raw: "/ab/", Line: 1, Column: 1},
				{Type: EOF, Span: NodeSpan{Start: 4, End: 4}, Line: 1, Column: 5},
			}, tokens)
		})

		t.Run("regex after an assignment operator", func(t *testing.T) {
			tokens, errs := Tokenize("x = /ab/g;")
			assert.Empty(t, errs)
			assert.Equal(t, []Token{
				{Type: IDENTIFIER_LITERAL, Span: NodeSpan{Start: 0, End: 1}, Raw: "x", Line: 1, Column: 1},
				{Type: EQUAL, Span: NodeSpan{Start: 2, End: 3}, Line: 1, Column: 3},
				{Type: REGEX_LITERAL, Span: NodeSpan{Start: 4, End: 9}, Raw: "/ab/g", Line: 1, Column: 5},
				{Type: SEMICOLON, Span: NodeSpan{Start: 9, End: 10}, Line: 1, Column: 10},
				{Type: EOF, Span: NodeSpan{Start: 10, End: 10}, Line: 1, Column: 11},
			}, tokens)
		})

		t.Run("division after an identifier", func(t *testing.T) {
			tokens, errs := Tokenize("a / b")
			assert.Empty(t, errs)
			assert.Equal(t, SLASH, tokens[1].Type)
		})

		t.Run("division after a closing parenthesis", func(t *testing.T) {
			tokens, errs := Tokenize("(a) / 2")
			assert.Empty(t, errs)
			assert.Equal(t, []Token{
				{Type: OPENING_PARENTHESIS, Span: NodeSpan{Start: 0, End: 1}, Line: 1, Column: 1},
				{Type: IDENTIFIER_LITERAL, Span: NodeSpan{Start: 1, End: 2}, Raw: "a", Line: 1, Column: 2},
				{Type: CLOSING_PARENTHESIS, Span: NodeSpan{Start: 2, End: 3}, Line: 1, Column: 3},
				{Type: SLASH, Span: NodeSpan{Start: 4, End: 5}, Line: 1, Column: 5},
				{Type: INT_LITERAL, Span: NodeSpan{Start: 6, End: 7}, Raw: "2", Line: 1, Column: 7},
				{Type: EOF, Span: NodeSpan{Start: 7, End: 7}, Line: 1, Column: 8},
			}, tokens)
		})

		t.Run("division after a postfix increment", func(t *testing.T) {
			tokens, errs := Tokenize("a++ / b")
			assert.Empty(t, errs)
			assert.Equal(t, SLASH, tokens[2].Type)
		})

		t.Run("regex after a closing curly bracket", func(t *testing.T) {
			tokens, errs := Tokenize("} /a/")
			assert.Empty(t, errs)
			assert.Equal(t, []Token{
				{Type: CLOSING_CURLY_BRACKET, Span: NodeSpan{Start: 0, End: 1}, Line: 1, Column: 1},
				{Type: REGEX_LITERAL, Span: NodeSpan{Start: 2, End: 5}, Raw: "/a/", Line: 1, Column: 3},
				{Type: EOF, Span: NodeSpan{Start: 5, End: 5}, Line: 1, Column: 6},
			}, tokens)
		})

		t.Run("comments do not affect the division decision", func(t *testing.T) {
			tokens, errs := Tokenize("1 //c\n/ 2")
			assert.Empty(t, errs)
			assert.Equal(t, []Token{
				{Type: INT_LITERAL, Span: NodeSpan{Start: 0, End: 1}, Raw: "1", Line: 1, Column: 1},
				{Type: COMMENT, Span: NodeSpan{Start: 2, End: 5}, Raw: "//c", Line: 1, Column: 3},
				{Type: SLASH, Span: NodeSpan{Start: 6, End: 7}, Line: 2, Column: 1},
				{Type: INT_LITERAL, Span: NodeSpan{Start: 8, End: 9}, Raw: "2", Line: 2, Column: 3},
				{Type: EOF, Span: NodeSpan{Start: 9, End: 9}, Line: 2, Column: 4},
			}, tokens)
		})

		t.Run("escaped slash and character class", func(t *testing.T) {
			tokens, errs := Tokenize(`/a\/[/]b/`)
			assert.Empty(t, errs)
			assert.Equal(t, REGEX_LITERAL, tokens[0].Type)
			assert.Equal(t, `/a\/[/]b/`, tokens[0].Raw)
		})

		t.Run("supported flags", func(t *testing.T) {
			tokens, errs := Tokenize("/foo/gis")
			assert.Empty(t, errs)
			assert.Equal(t, REGEX_LITERAL, tokens[0].Type)
			assert.Equal(t, "/foo/gis", tokens[0].Raw)
		})

		t.Run("unsupported flag", func(t *testing.T) {
			tokens, errs := Tokenize("/foo/m")
			assert.Equal(t, []LexicalError{
				{Kind: InvalidRegexFlagError, Message: fmtUnsupportedRegexFlag('m'), Span: NodeSpan{Start: 5, End: 6}},
			}, errs)
			//the whole letter run still belongs to the literal
			assert.Equal(t, REGEX_LITERAL, tokens[0].Type)
			assert.Equal(t, "/foo/m", tokens[0].Raw)
		})

		t.Run("only the first unsupported flag is reported", func(t *testing.T) {
			tokens, errs := Tokenize("/foo/mxg")
			assert.Equal(t, []LexicalError{
				{Kind: InvalidRegexFlagError, Message: fmtUnsupportedRegexFlag('m'), Span: NodeSpan{Start: 5, End: 6}},
			}, errs)
			assert.Equal(t, "/foo/mxg", tokens[0].Raw)
		})

		t.Run("unterminated regex", func(t *testing.T) {
			tokens, errs := Tokenize("/foo")
			assert.Equal(t, []LexicalError{
				{Kind: UnexpectedCharError, Message: UNTERMINATED_REGEX_LIT, Span: NodeSpan{Start: 0, End: 4}},
			}, errs)
			assert.Equal(t, []Token{
				{Type: REGEX_LITERAL, Span: NodeSpan{Start: 0, End: 4}, Raw: "/foo", Line: 1, Column: 1},
				{Type: EOF, Span: NodeSpan{Start: 4, End: 4}, Line: 1, Column: 5},
			}, tokens)
		})
	})

	t.Run("comments", func(t *testing.T) {

		t.Run("line comment", func(t *testing.T) {
			tokens, errs := Tokenize("// hi")
			assert.Empty(t, errs)
			assert.Equal(t, []Token{
				{Type: COMMENT, Span: NodeSpan{Start: 0, End: 5}, Raw: "// hi", Line: 1, Column: 1},
				{Type: EOF, Span: NodeSpan{Start: 5, End: 5}, Line: 1, Column: 6},
			}, tokens)
		})

		t.Run("block comment", func(t *testing.T) {
			tokens, errs := Tokenize("/* a */ 1")
			assert.Empty(t, errs)
			assert.Equal(t, []Token{
				{Type: COMMENT, Span: NodeSpan{Start: 0, End: 7}, Raw: "/* a */", Line: 1, Column: 1},
				{Type: INT_LITERAL, Span: NodeSpan{Start: 8, End: 9}, Raw: "1", Line: 1, Column: 9},
				{Type: EOF, Span: NodeSpan{Start: 9, End: 9}, Line: 1, Column: 10},
			}, tokens)
		})

		t.Run("block comments do not nest", func(t *testing.T) {
			tokens, errs := Tokenize("/* /* */ 1")
			assert.Empty(t, errs)
			assert.Equal(t, []Token{
				{Type: COMMENT, Span: NodeSpan{Start: 0, End: 8}, Raw: "/* /* */", Line: 1, Column: 1},
				{Type: INT_LITERAL, Span: NodeSpan{Start: 9, End: 10}, Raw: "1", Line: 1, Column: 10},
				{Type: EOF, Span: NodeSpan{Start: 10, End: 10}, Line: 1, Column: 11},
			}, tokens)
		})

		t.Run("unterminated block comment", func(t *testing.T) {
			tokens, errs := Tokenize("/*x")
			assert.Equal(t, []LexicalError{
				{Kind: UnexpectedCharError, Message: UNTERMINATED_BLOCK_COMMENT, Span: NodeSpan{Start: 0, End: 2}},
			}, errs)
			assert.Equal(t, []Token{
				{Type: COMMENT, Span: NodeSpan{Start: 0, End: 3}, Raw: "/*x", Line: 1, Column: 1},
				{Type: EOF, Span: NodeSpan{Start: 3, End: 3}, Line: 1, Column: 4},
			}, tokens)
		})

		t.Run("shebang", func(t *testing.T) {
			tokens, errs := Tokenize("#!/usr/bin/ucode\n1")
			assert.Empty(t, errs)
			assert.Equal(t, []Token{
				{Type: COMMENT, Span: NodeSpan{Start: 0, End: 16}, Raw: "#!/usr/bin/ucode", Line: 1, Column: 1},
				{Type: INT_LITERAL, Span: NodeSpan{Start: 17, End: 18}, Raw: "1", Line: 2, Column: 1},
				{Type: EOF, Span: NodeSpan{Start: 18, End: 18}, Line: 2, Column: 2},
			}, tokens)
		})
	})

	t.Run("template literals", func(t *testing.T) {

		t.Run("simple", func(t *testing.T) {
			tokens, errs := Tokenize("`ab`")
			assert.Empty(t, errs)
			assert.Equal(t, []Token{
				{Type: BACKQUOTE, Span: NodeSpan{Start: 0, End: 1}, Line: 1, Column: 1},
				{Type: STR_TEMPLATE_SLICE, Span: NodeSpan{Start: 1, End: 3}, Raw: "ab", Line: 1, Column: 2},
				{Type: BACKQUOTE, Span: NodeSpan{Start: 3, End: 4}, Line: 1, Column: 4},
				{Type: EOF, Span: NodeSpan{Start: 4, End: 4}, Line: 1, Column: 5},
			}, tokens)
		})

		t.Run("empty", func(t *testing.T) {
			tokens, errs := Tokenize("``")
			assert.Empty(t, errs)
			assert.Equal(t, []Token{
				{Type: BACKQUOTE, Span: NodeSpan{Start: 0, End: 1}, Line: 1, Column: 1},
				{Type: BACKQUOTE, Span: NodeSpan{Start: 1, End: 2}, Line: 1, Column: 2},
				{Type: EOF, Span: NodeSpan{Start: 2, End: 2}, Line: 1, Column: 3},
			}, tokens)
		})

		t.Run("interpolation", func(t *testing.T) {
			tokens, errs := Tokenize("`a${b}c`")
			assert.Empty(t, errs)
			assert.Equal(t, []Token{
				{Type: BACKQUOTE, Span: NodeSpan{Start: 0, End: 1}, Line: 1, Column: 1},
				{Type: STR_TEMPLATE_SLICE, Span: NodeSpan{Start: 1, End: 2}, Raw: "a", Line: 1, Column: 2},
				{Type: STR_INTERP_OPENING, Span: NodeSpan{Start: 2, End: 4}, Line: 1, Column: 3},
				{Type: IDENTIFIER_LITERAL, Span: NodeSpan{Start: 4, End: 5}, Raw: "b", Line: 1, Column: 5},
				{Type: STR_INTERP_CLOSING_BRACKET, Span: NodeSpan{Start: 5, End: 6}, Line: 1, Column: 6},
				{Type: STR_TEMPLATE_SLICE, Span: NodeSpan{Start: 6, End: 7}, Raw: "c", Line: 1, Column: 7},
				{Type: BACKQUOTE, Span: NodeSpan{Start: 7, End: 8}, Line: 1, Column: 8},
				{Type: EOF, Span: NodeSpan{Start: 8, End: 8}, Line: 1, Column: 9},
			}, tokens)
		})

		t.Run("object literal inside an interpolation", func(t *testing.T) {
			tokens, errs := Tokenize("`${ {a: 1} }`")
			assert.Empty(t, errs)
			assert.Equal(t, []Token{
				{Type: BACKQUOTE, Span: NodeSpan{Start: 0, End: 1}, Line: 1, Column: 1},
				{Type: STR_INTERP_OPENING, Span: NodeSpan{Start: 1, End: 3}, Line: 1, Column: 2},
				{Type: OPENING_CURLY_BRACKET, Span: NodeSpan{Start: 4, End: 5}, Line: 1, Column: 5},
				{Type: IDENTIFIER_LITERAL, Span: NodeSpan{Start: 5, End: 6}, Raw: "a", Line: 1, Column: 6},
				{Type: COLON, Span: NodeSpan{Start: 6, End: 7}, Line: 1, Column: 7},
				{Type: INT_LITERAL, Span: NodeSpan{Start: 8, End: 9}, Raw: "1", Line: 1, Column: 9},
				{Type: CLOSING_CURLY_BRACKET, Span: NodeSpan{Start: 9, End: 10}, Line: 1, Column: 10},
				{Type: STR_INTERP_CLOSING_BRACKET, Span: NodeSpan{Start: 11, End: 12}, Line: 1, Column: 12},
				{Type: BACKQUOTE, Span: NodeSpan{Start: 12, End: 13}, Line: 1, Column: 13},
				{Type: EOF, Span: NodeSpan{Start: 13, End: 13}, Line: 1, Column: 14},
			}, tokens)
		})

		t.Run("unterminated template", func(t *testing.T) {
			tokens, errs := Tokenize("`ab")
			assert.Equal(t, []LexicalError{
				{Kind: UnexpectedCharError, Message: UNTERMINATED_STRING_TEMPLATE, Span: NodeSpan{Start: 0, End: 1}},
			}, errs)
			assert.Equal(t, []Token{
				{Type: BACKQUOTE, Span: NodeSpan{Start: 0, End: 1}, Line: 1, Column: 1},
				{Type: STR_TEMPLATE_SLICE, Span: NodeSpan{Start: 1, End: 3}, Raw: "ab", Line: 1, Column: 2},
				{Type: EOF, Span: NodeSpan{Start: 3, End: 3}, Line: 1, Column: 4},
			}, tokens)
		})

		t.Run("unterminated interpolation", func(t *testing.T) {
			_, errs := Tokenize("`${a")
			assert.Equal(t, []LexicalError{
				{Kind: UnexpectedCharError, Message: UNTERMINATED_STRING_INTERP, Span: NodeSpan{Start: 1, End: 3}},
			}, errs)
		})
	})

	t.Run("operators", func(t *testing.T) {

		t.Run("longest match wins", func(t *testing.T) {
			tokens, errs := Tokenize("a===b")
			assert.Empty(t, errs)
			assert.Equal(t, TRIPLE_EQUAL, tokens[1].Type)
			assert.Equal(t, NodeSpan{Start: 1, End: 4}, tokens[1].Span)

			tokens, errs = Tokenize("x>>=1")
			assert.Empty(t, errs)
			assert.Equal(t, RIGHT_SHIFT_EQUAL, tokens[1].Type)

			tokens, errs = Tokenize("a??=b")
			assert.Empty(t, errs)
			assert.Equal(t, DOUBLE_QUESTION_MARK_EQUAL, tokens[1].Type)

			tokens, errs = Tokenize("...rest")
			assert.Empty(t, errs)
			assert.Equal(t, THREE_DOTS, tokens[0].Type)
		})

		t.Run("optional chaining", func(t *testing.T) {
			tokens, errs := Tokenize("a?.b")
			assert.Empty(t, errs)
			assert.Equal(t, QUESTION_DOT, tokens[1].Type)
		})

		t.Run("'?.' followed by a digit is a ternary", func(t *testing.T) {
			tokens, errs := Tokenize("a?.5:b")
			assert.Empty(t, errs)
			assert.Equal(t, []Token{
				{Type: IDENTIFIER_LITERAL, Span: NodeSpan{Start: 0, End: 1}, Raw: "a", Line: 1, Column: 1},
				{Type: QUESTION_MARK, Span: NodeSpan{Start: 1, End: 2}, Line: 1, Column: 2},
				{Type: DOUBLE_LITERAL, Span: NodeSpan{Start: 2, End: 4}, Raw: ".5", Line: 1, Column: 3},
				{Type: COLON, Span: NodeSpan{Start: 4, End: 5}, Line: 1, Column: 5},
				{Type: IDENTIFIER_LITERAL, Span: NodeSpan{Start: 5, End: 6}, Raw: "b", Line: 1, Column: 6},
				{Type: EOF, Span: NodeSpan{Start: 6, End: 6}, Line: 1, Column: 7},
			}, tokens)
		})
	})

	t.Run("keywords and identifiers", func(t *testing.T) {
		tokens, errs := Tokenize("let x")
		assert.Empty(t, errs)
		assert.Equal(t, []Token{
			{Type: LET_KEYWORD, Span: NodeSpan{Start: 0, End: 3}, Line: 1, Column: 1},
			{Type: IDENTIFIER_LITERAL, Span: NodeSpan{Start: 4, End: 5}, Raw: "x", Line: 1, Column: 5},
			{Type: EOF, Span: NodeSpan{Start: 5, End: 5}, Line: 1, Column: 6},
		}, tokens)

		tokens, errs = Tokenize("lets")
		assert.Empty(t, errs)
		assert.Equal(t, IDENTIFIER_LITERAL, tokens[0].Type)
		assert.Equal(t, "lets", tokens[0].Raw)
	})

	t.Run("unexpected characters", func(t *testing.T) {

		t.Run("single", func(t *testing.T) {
			tokens, errs := Tokenize("@")
			assert.Equal(t, []LexicalError{
				{Kind: UnexpectedCharError, Message: fmtUnexpectedChar('@'), Span: NodeSpan{Start: 0, End: 1}},
			}, errs)
			assert.Equal(t, []Token{
				{Type: UNEXPECTED_CHAR, Span: NodeSpan{Start: 0, End: 1}, Raw: "@", Line: 1, Column: 1},
				{Type: EOF, Span: NodeSpan{Start: 1, End: 1}, Line: 1, Column: 2},
			}, tokens)
		})

		t.Run("scanning continues after the error", func(t *testing.T) {
			tokens, errs := Tokenize("a @ b")
			assert.Len(t, errs, 1)
			assert.Equal(t, []Token{
				{Type: IDENTIFIER_LITERAL, Span: NodeSpan{Start: 0, End: 1}, Raw: "a", Line: 1, Column: 1},
				{Type: UNEXPECTED_CHAR, Span: NodeSpan{Start: 2, End: 3}, Raw: "@", Line: 1, Column: 3},
				{Type: IDENTIFIER_LITERAL, Span: NodeSpan{Start: 4, End: 5}, Raw: "b", Line: 1, Column: 5},
				{Type: EOF, Span: NodeSpan{Start: 5, End: 5}, Line: 1, Column: 6},
			}, tokens)
		})
	})

	t.Run("line and column tracking", func(t *testing.T) {
		tokens, errs := Tokenize("a\n  b")
		assert.Empty(t, errs)
		assert.Equal(t, []Token{
			{Type: IDENTIFIER_LITERAL, Span: NodeSpan{Start: 0, End: 1}, Raw: "a", Line: 1, Column: 1},
			{Type: IDENTIFIER_LITERAL, Span: NodeSpan{Start: 4, End: 5}, Raw: "b", Line: 2, Column: 3},
			{Type: EOF, Span: NodeSpan{Start: 5, End: 5}, Line: 2, Column: 4},
		}, tokens)
	})
}

func TestDecodeStringFragment(t *testing.T) {
	assert.Equal(t, "a\nb", DecodeStringFragment(`a\nb`))
	assert.Equal(t, "a\tb", DecodeStringFragment(`a\tb`))
	assert.Equal(t, "A", DecodeStringFragment(`\x41`))
	assert.Equal(t, "é", DecodeStringFragment(`é`))
	assert.Equal(t, "q", DecodeStringFragment(`\q`)) //unknown escapes decode to the character
	assert.Equal(t, "ab", DecodeStringFragment("a\\\nb"))
	assert.Equal(t, "plain", DecodeStringFragment("plain"))
}

func TestDecodeQuotedString(t *testing.T) {
	assert.Equal(t, "a\tb", DecodeQuotedString(`"a\tb"`))
	assert.Equal(t, "a'b", DecodeQuotedString(`'a\'b'`))
	//missing closing quote (unterminated literal)
	assert.Equal(t, "ab", DecodeQuotedString(`"ab`))
	assert.Equal(t, "", DecodeQuotedString(`""`))
}

func TestSplitRegexRaw(t *testing.T) {
	pattern, flags := SplitRegexRaw("/ab/gi")
	assert.Equal(t, "ab", pattern)
	assert.Equal(t, "gi", flags)

	pattern, flags = SplitRegexRaw(`/a\/b/g`)
	assert.Equal(t, `a\/b`, pattern)
	assert.Equal(t, "g", flags)

	//unterminated literal
	pattern, flags = SplitRegexRaw("/ab")
	assert.Equal(t, "ab", pattern)
	assert.Equal(t, "", flags)
}
