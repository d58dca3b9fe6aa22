package parse

import (
	"strings"
	"unicode/utf8"
)

// A LexicalError is a tokenization error. The lexer never stops on errors,
// it records them and resumes scanning after the offending input.
type LexicalError struct {
	Kind    string   `json:"kind"`
	Message string   `json:"message"`
	Span    NodeSpan `json:"span"`
}

func (e LexicalError) Error() string {
	return e.Message
}

// templateState tracks one open template literal; braceDepth counts the
// curly brackets opened inside the current interpolation so that '}' is
// only treated as the end of the interpolation at depth zero.
type templateState struct {
	openingIndex int32
	interpIndex  int32
	inInterp     bool
	braceDepth   int32
}

type lexer struct {
	s    string
	i    int32
	size int32

	line      int32 //1-indexed
	lineStart int32 //offset of the first character of the current line

	tokens    []Token
	errors    []LexicalError
	prev      TokenType //type of the last non-comment token, zero initially
	templates []templateState
}

// Tokenize converts source into a flat list of positioned tokens; the last
// token always has type EOF. Tokenization is total: unlexable input produces
// an UNEXPECTED_CHAR token, malformed literals produce a best-effort token,
// and the returned errors carry the details. The lexer keeps track of the
// previous non-comment token in order to distinguish the start of a regex
// literal from the division operator.
func Tokenize(source string) ([]Token, []LexicalError) {
	l := &lexer{
		s:    source,
		size: int32(len(source)),
		line: 1,
	}

	for l.i < l.size {
		if l.inTemplateText() {
			l.lexTemplateSlice()
			continue
		}
		l.lexToken()
	}

	for j := len(l.templates) - 1; j >= 0; j-- {
		state := l.templates[j]
		if state.inInterp {
			l.addError(UnexpectedCharError, UNTERMINATED_STRING_INTERP, NodeSpan{Start: state.interpIndex, End: state.interpIndex + 2})
		} else {
			l.addError(UnexpectedCharError, UNTERMINATED_STRING_TEMPLATE, NodeSpan{Start: state.openingIndex, End: state.openingIndex + 1})
		}
	}

	l.tokens = append(l.tokens, Token{
		Type:   EOF,
		Span:   NodeSpan{Start: l.size, End: l.size},
		Line:   l.line,
		Column: l.column(l.size),
	})

	return l.tokens, l.errors
}

func (l *lexer) inTemplateText() bool {
	return len(l.templates) > 0 && !l.templates[len(l.templates)-1].inInterp
}

func (l *lexer) column(pos int32) int32 {
	return pos - l.lineStart + 1
}

func (l *lexer) at(pos int32) byte {
	if pos < l.size {
		return l.s[pos]
	}
	return 0
}

func (l *lexer) newline() {
	l.i++
	l.line++
	l.lineStart = l.i
}

func (l *lexer) addToken(t TokenType, raw string, start, startLine, startColumn int32) {
	l.tokens = append(l.tokens, Token{
		Type:   t,
		Span:   NodeSpan{Start: start, End: l.i},
		Raw:    raw,
		Line:   startLine,
		Column: startColumn,
	})
	if t != COMMENT {
		l.prev = t
	}
}

func (l *lexer) addError(kind, msg string, span NodeSpan) {
	l.errors = append(l.errors, LexicalError{Kind: kind, Message: msg, Span: span})
}

func (l *lexer) lexToken() {
	c := l.s[l.i]

	switch c {
	case ' ', '\t', '\r', '\v', '\f':
		l.i++
		return
	case '\n':
		l.newline()
		return
	}

	start := l.i
	startLine := l.line
	startColumn := l.column(start)

	switch {
	case c == '/' && l.at(l.i+1) == '/':
		l.lexLineComment(start, startLine, startColumn)
	case c == '/' && l.at(l.i+1) == '*':
		l.lexBlockComment(start, startLine, startColumn)
	case c == '#' && start == 0 && l.at(1) == '!':
		//shebang line of executable scripts
		l.lexLineComment(start, startLine, startColumn)
	case c == '/' && l.regexAllowed():
		l.lexRegexLiteral(start, startLine, startColumn)
	case isDecDigit(c):
		l.lexNumberLiteral(start, startLine, startColumn)
	case c == '.' && isDecDigit(l.at(l.i+1)):
		l.lexNumberLiteral(start, startLine, startColumn)
	case c == '"' || c == '\'':
		l.lexStringLiteral(start, startLine, startColumn)
	case c == '`':
		l.i++
		l.templates = append(l.templates, templateState{openingIndex: start})
		l.addToken(BACKQUOTE, "", start, startLine, startColumn)
	case isIdentStartChar(c):
		l.lexIdentifierLike(start, startLine, startColumn)
	default:
		l.lexOperator(start, startLine, startColumn)
	}
}

// regexAllowed tells whether a '/' at the current position starts a regex
// literal: a regex may appear wherever an expression may begin. After a
// value-like token ('a', '1', ')', ']', '++', ...) a '/' is the division
// operator instead.
func (l *lexer) regexAllowed() bool {
	switch l.prev {
	case 0:
		return true
	case IDENTIFIER_LITERAL, INT_LITERAL, DOUBLE_LITERAL, STRING_LITERAL, REGEX_LITERAL,
		STR_TEMPLATE_SLICE, BACKQUOTE,
		CLOSING_PARENTHESIS, CLOSING_BRACKET,
		PLUS_PLUS, MINUS_MINUS,
		THIS_KEYWORD, TRUE_KEYWORD, FALSE_KEYWORD, NULL_KEYWORD:
		return false
	}
	return true
}

func (l *lexer) lexLineComment(start, startLine, startColumn int32) {
	l.i += 2
	for l.i < l.size && l.s[l.i] != '\n' {
		l.i++
	}
	l.addToken(COMMENT, l.s[start:l.i], start, startLine, startColumn)
}

func (l *lexer) lexBlockComment(start, startLine, startColumn int32) {
	l.i += 2
	terminated := false

	for l.i < l.size {
		if l.s[l.i] == '*' && l.at(l.i+1) == '/' {
			l.i += 2
			terminated = true
			break
		}
		if l.s[l.i] == '\n' {
			l.newline()
			continue
		}
		l.i++
	}

	if !terminated {
		l.addError(UnexpectedCharError, UNTERMINATED_BLOCK_COMMENT, NodeSpan{Start: start, End: start + 2})
	}
	l.addToken(COMMENT, l.s[start:l.i], start, startLine, startColumn)
}

func (l *lexer) lexStringLiteral(start, startLine, startColumn int32) {
	quote := l.s[l.i]
	l.i++
	terminated := false

loop:
	for l.i < l.size {
		switch l.s[l.i] {
		case '\\':
			l.i++
			if l.i < l.size {
				if l.s[l.i] == '\n' {
					l.newline()
				} else {
					l.i++
				}
			}
		case quote:
			l.i++
			terminated = true
			break loop
		case '\n':
			break loop
		default:
			l.i++
		}
	}

	if !terminated {
		l.addError(UnexpectedCharError, UNTERMINATED_STRING_LIT, NodeSpan{Start: start, End: l.i})
	}
	l.addToken(STRING_LITERAL, l.s[start:l.i], start, startLine, startColumn)
}

func (l *lexer) lexNumberLiteral(start, startLine, startColumn int32) {
	t := INT_LITERAL

	if l.s[l.i] == '0' && (l.at(l.i+1) == 'x' || l.at(l.i+1) == 'X') {
		l.i += 2
		digitStart := l.i
		for l.i < l.size && isHexDigit(l.s[l.i]) {
			l.i++
		}
		if l.i == digitStart {
			l.addError(UnexpectedCharError, INVALID_HEX_LITERAL, NodeSpan{Start: start, End: l.i})
		}
		l.addToken(INT_LITERAL, l.s[start:l.i], start, startLine, startColumn)
		return
	}

	if l.s[l.i] == '.' {
		t = DOUBLE_LITERAL
		l.i++
	}
	for l.i < l.size && isDecDigit(l.s[l.i]) {
		l.i++
	}

	if t == INT_LITERAL && l.at(l.i) == '.' {
		t = DOUBLE_LITERAL
		l.i++
		for l.i < l.size && isDecDigit(l.s[l.i]) {
			l.i++
		}
	}

	//exponent, only consumed if at least one digit follows
	if e := l.at(l.i); e == 'e' || e == 'E' {
		j := l.i + 1
		if l.at(j) == '+' || l.at(j) == '-' {
			j++
		}
		if isDecDigit(l.at(j)) {
			t = DOUBLE_LITERAL
			l.i = j + 1
			for l.i < l.size && isDecDigit(l.s[l.i]) {
				l.i++
			}
		}
	}

	l.addToken(t, l.s[start:l.i], start, startLine, startColumn)
}

func (l *lexer) lexIdentifierLike(start, startLine, startColumn int32) {
	for l.i < l.size && isIdentChar(l.s[l.i]) {
		l.i++
	}
	name := l.s[start:l.i]

	if t, ok := LookupKeyword(name); ok {
		l.addToken(t, "", start, startLine, startColumn)
		return
	}

	switch name {
	case "NaN", "Infinity":
		l.addToken(DOUBLE_LITERAL, name, start, startLine, startColumn)
	default:
		l.addToken(IDENTIFIER_LITERAL, name, start, startLine, startColumn)
	}
}

func (l *lexer) lexRegexLiteral(start, startLine, startColumn int32) {
	l.i++
	inClass := false
	terminated := false

loop:
	for l.i < l.size {
		switch l.s[l.i] {
		case '\\':
			l.i++
			if l.i < l.size && l.s[l.i] != '\n' {
				l.i++
			}
		case '\n':
			break loop
		case '[':
			inClass = true
			l.i++
		case ']':
			inClass = false
			l.i++
		case '/':
			if !inClass {
				l.i++
				terminated = true
				break loop
			}
			l.i++
		default:
			l.i++
		}
	}

	if !terminated {
		l.addError(UnexpectedCharError, UNTERMINATED_REGEX_LIT, NodeSpan{Start: start, End: l.i})
		l.addToken(REGEX_LITERAL, l.s[start:l.i], start, startLine, startColumn)
		return
	}

	//flags: the whole letter run belongs to the literal, but validation
	//stops at the first unsupported flag.
	reported := false
	for l.i < l.size && isAlphaChar(l.s[l.i]) {
		c := l.s[l.i]
		if !reported && c != 'g' && c != 'i' && c != 's' {
			l.addError(InvalidRegexFlagError, fmtUnsupportedRegexFlag(c), NodeSpan{Start: l.i, End: l.i + 1})
			reported = true
		}
		l.i++
	}

	l.addToken(REGEX_LITERAL, l.s[start:l.i], start, startLine, startColumn)
}

func (l *lexer) lexTemplateSlice() {
	start := l.i
	startLine := l.line
	startColumn := l.column(start)

	emitSlice := func() {
		if l.i > start {
			l.addToken(STR_TEMPLATE_SLICE, l.s[start:l.i], start, startLine, startColumn)
		}
	}

	for l.i < l.size {
		switch l.s[l.i] {
		case '\\':
			l.i++
			if l.i < l.size {
				if l.s[l.i] == '\n' {
					l.newline()
				} else {
					l.i++
				}
			}
		case '\n':
			l.newline()
		case '`':
			emitSlice()
			bqStart := l.i
			bqLine, bqColumn := l.line, l.column(bqStart)
			l.i++
			l.templates = l.templates[:len(l.templates)-1]
			l.addToken(BACKQUOTE, "", bqStart, bqLine, bqColumn)
			return
		case '$':
			if l.at(l.i+1) == '{' {
				emitSlice()
				interpStart := l.i
				interpLine, interpColumn := l.line, l.column(interpStart)
				l.i += 2
				top := &l.templates[len(l.templates)-1]
				top.inInterp = true
				top.braceDepth = 0
				top.interpIndex = interpStart
				l.addToken(STR_INTERP_OPENING, "", interpStart, interpLine, interpColumn)
				return
			}
			l.i++
		default:
			l.i++
		}
	}

	//unterminated template: the error is reported by Tokenize once the
	//end of the source is reached.
	emitSlice()
}

func (l *lexer) lexOperator(start, startLine, startColumn int32) {
	c := l.s[l.i]

	var t TokenType
	n := int32(1)

	switch c {
	case '+':
		switch l.at(l.i + 1) {
		case '+':
			t, n = PLUS_PLUS, 2
		case '=':
			t, n = PLUS_EQUAL, 2
		default:
			t = PLUS
		}
	case '-':
		switch l.at(l.i + 1) {
		case '-':
			t, n = MINUS_MINUS, 2
		case '=':
			t, n = MINUS_EQUAL, 2
		default:
			t = MINUS
		}
	case '*':
		switch l.at(l.i + 1) {
		case '*':
			if l.at(l.i+2) == '=' {
				t, n = DOUBLE_ASTERISK_EQUAL, 3
			} else {
				t, n = DOUBLE_ASTERISK, 2
			}
		case '=':
			t, n = ASTERISK_EQUAL, 2
		default:
			t = ASTERISK
		}
	case '/':
		if l.at(l.i+1) == '=' {
			t, n = SLASH_EQUAL, 2
		} else {
			t = SLASH
		}
	case '%':
		if l.at(l.i+1) == '=' {
			t, n = PERCENT_EQUAL, 2
		} else {
			t = PERCENT
		}
	case '=':
		switch l.at(l.i + 1) {
		case '=':
			if l.at(l.i+2) == '=' {
				t, n = TRIPLE_EQUAL, 3
			} else {
				t, n = EQUAL_EQUAL, 2
			}
		case '>':
			t, n = ARROW, 2
		default:
			t = EQUAL
		}
	case '!':
		if l.at(l.i+1) == '=' {
			if l.at(l.i+2) == '=' {
				t, n = EXCLAMATION_MARK_DOUBLE_EQUAL, 3
			} else {
				t, n = EXCLAMATION_MARK_EQUAL, 2
			}
		} else {
			t = EXCLAMATION_MARK
		}
	case '<':
		switch l.at(l.i + 1) {
		case '<':
			if l.at(l.i+2) == '=' {
				t, n = LEFT_SHIFT_EQUAL, 3
			} else {
				t, n = LEFT_SHIFT, 2
			}
		case '=':
			t, n = LESS_OR_EQUAL, 2
		default:
			t = LESS_THAN
		}
	case '>':
		switch l.at(l.i + 1) {
		case '>':
			if l.at(l.i+2) == '=' {
				t, n = RIGHT_SHIFT_EQUAL, 3
			} else {
				t, n = RIGHT_SHIFT, 2
			}
		case '=':
			t, n = GREATER_OR_EQUAL, 2
		default:
			t = GREATER_THAN
		}
	case '&':
		switch l.at(l.i + 1) {
		case '&':
			if l.at(l.i+2) == '=' {
				t, n = DOUBLE_AMPERSAND_EQUAL, 3
			} else {
				t, n = DOUBLE_AMPERSAND, 2
			}
		case '=':
			t, n = AMPERSAND_EQUAL, 2
		default:
			t = AMPERSAND
		}
	case '|':
		switch l.at(l.i + 1) {
		case '|':
			if l.at(l.i+2) == '=' {
				t, n = DOUBLE_PIPE_EQUAL, 3
			} else {
				t, n = DOUBLE_PIPE, 2
			}
		case '=':
			t, n = PIPE_EQUAL, 2
		default:
			t = PIPE
		}
	case '^':
		if l.at(l.i+1) == '=' {
			t, n = CARET_EQUAL, 2
		} else {
			t = CARET
		}
	case '~':
		t = TILDE
	case '?':
		switch l.at(l.i + 1) {
		case '?':
			if l.at(l.i+2) == '=' {
				t, n = DOUBLE_QUESTION_MARK_EQUAL, 3
			} else {
				t, n = DOUBLE_QUESTION_MARK, 2
			}
		case '.':
			//'?.3' is a ternary branch starting with a double literal,
			//not an optional chaining operator
			if isDecDigit(l.at(l.i + 2)) {
				t = QUESTION_MARK
			} else {
				t, n = QUESTION_DOT, 2
			}
		default:
			t = QUESTION_MARK
		}
	case '.':
		if l.at(l.i+1) == '.' && l.at(l.i+2) == '.' {
			t, n = THREE_DOTS, 3
		} else {
			t = DOT
		}
	case ',':
		t = COMMA
	case ';':
		t = SEMICOLON
	case ':':
		t = COLON
	case '(':
		t = OPENING_PARENTHESIS
	case ')':
		t = CLOSING_PARENTHESIS
	case '[':
		t = OPENING_BRACKET
	case ']':
		t = CLOSING_BRACKET
	case '{':
		if len(l.templates) > 0 {
			top := &l.templates[len(l.templates)-1]
			if top.inInterp {
				top.braceDepth++
			}
		}
		t = OPENING_CURLY_BRACKET
	case '}':
		t = CLOSING_CURLY_BRACKET
		if len(l.templates) > 0 {
			top := &l.templates[len(l.templates)-1]
			if top.inInterp {
				if top.braceDepth == 0 {
					top.inInterp = false
					t = STR_INTERP_CLOSING_BRACKET
				} else {
					top.braceDepth--
				}
			}
		}
	default:
		r, size := utf8.DecodeRuneInString(l.s[l.i:])
		l.i += int32(size)
		span := NodeSpan{Start: start, End: l.i}
		l.addError(UnexpectedCharError, fmtUnexpectedChar(r), span)
		l.addToken(UNEXPECTED_CHAR, l.s[start:l.i], start, startLine, startColumn)
		return
	}

	l.i += n
	l.addToken(t, "", start, startLine, startColumn)
}

// DecodeStringFragment interprets the backslash escapes of the content of a
// string literal or template slice. Unknown escapes decode to the escaped
// character itself, an escaped newline decodes to nothing.
func DecodeStringFragment(raw string) string {
	if !strings.ContainsRune(raw, '\\') {
		return raw
	}

	var b strings.Builder
	b.Grow(len(raw))

	for i := 0; i < len(raw); {
		c := raw[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		i++
		if i >= len(raw) {
			break
		}

		switch raw[i] {
		case 'n':
			b.WriteByte('\n')
			i++
		case 't':
			b.WriteByte('\t')
			i++
		case 'r':
			b.WriteByte('\r')
			i++
		case 'b':
			b.WriteByte('\b')
			i++
		case 'f':
			b.WriteByte('\f')
			i++
		case 'v':
			b.WriteByte('\v')
			i++
		case '0':
			b.WriteByte(0)
			i++
		case '\n':
			i++
		case 'x':
			if i+2 < len(raw) && isHexDigit(raw[i+1]) && isHexDigit(raw[i+2]) {
				b.WriteRune(rune(hexDigitValue(raw[i+1])<<4 | hexDigitValue(raw[i+2])))
				i += 3
			} else {
				b.WriteByte('x')
				i++
			}
		case 'u':
			if i+4 < len(raw) &&
				isHexDigit(raw[i+1]) && isHexDigit(raw[i+2]) && isHexDigit(raw[i+3]) && isHexDigit(raw[i+4]) {
				v := hexDigitValue(raw[i+1])<<12 | hexDigitValue(raw[i+2])<<8 | hexDigitValue(raw[i+3])<<4 | hexDigitValue(raw[i+4])
				b.WriteRune(rune(v))
				i += 5
			} else {
				b.WriteByte('u')
				i++
			}
		default:
			b.WriteByte(raw[i])
			i++
		}
	}

	return b.String()
}

// DecodeQuotedString decodes the raw text of a quoted string literal,
// including the surrounding quotes (the closing one may be missing if the
// literal was unterminated).
func DecodeQuotedString(raw string) string {
	if len(raw) == 0 {
		return ""
	}
	quote := raw[0]
	if quote != '"' && quote != '\'' {
		return DecodeStringFragment(raw)
	}
	content := raw[1:]
	if len(content) > 0 && content[len(content)-1] == quote {
		content = content[:len(content)-1]
	}
	return DecodeStringFragment(content)
}

// SplitRegexRaw splits the raw text of a regex literal into its pattern and
// its flags. The flags are empty if the literal was unterminated.
func SplitRegexRaw(raw string) (pattern string, flags string) {
	end := strings.LastIndexByte(raw, '/')
	if end <= 0 {
		if len(raw) > 0 && raw[0] == '/' {
			return raw[1:], ""
		}
		return raw, ""
	}
	return raw[1:end], raw[end+1:]
}

func isDecDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDecDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexDigitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return int(c-'A') + 10
	}
}

func isAlphaChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentStartChar(c byte) bool {
	return isAlphaChar(c) || c == '_'
}

func isIdentChar(c byte) bool {
	return isAlphaChar(c) || isDecDigit(c) || c == '_'
}
