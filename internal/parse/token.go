package parse

import "fmt"

type Token struct {
	Type   TokenType `json:"type"`
	Span   NodeSpan  `json:"span"`
	Raw    string    `json:"raw,omitempty"`
	Line   int32     `json:"line"`   //1-indexed
	Column int32     `json:"column"` //1-indexed
}

// Str returns the source text of the token.
func (t Token) Str() string {
	if t.Raw != "" {
		return t.Raw
	}
	if t.Type <= LAST_TOKEN_TYPE_WITHOUT_VALUE {
		return tokenStrings[t.Type]
	}
	if t.Type == EOF {
		return ""
	}
	panic(fmt.Errorf("invalid token: %#v", t))
}

func (t Token) String() string {
	return fmt.Sprintf("\"%s\"(%d-%d)", t.Str(), t.Span.Start, t.Span.End)
}

type TokenType uint16

const (
	//WITH NO ASSOCIATED VALUE
	BREAK_KEYWORD TokenType = iota + 1
	CASE_KEYWORD
	CATCH_KEYWORD
	CONST_KEYWORD
	CONTINUE_KEYWORD
	DEFAULT_KEYWORD
	DELETE_KEYWORD
	DO_KEYWORD
	ELIF_KEYWORD
	ELSE_KEYWORD
	ENDFOR_KEYWORD
	ENDFUNCTION_KEYWORD
	ENDIF_KEYWORD
	ENDWHILE_KEYWORD
	EXPORT_KEYWORD
	FALSE_KEYWORD
	FOR_KEYWORD
	FROM_KEYWORD
	FUNCTION_KEYWORD
	IF_KEYWORD
	IMPORT_KEYWORD
	IN_KEYWORD
	LET_KEYWORD
	NULL_KEYWORD
	RETURN_KEYWORD
	SWITCH_KEYWORD
	THIS_KEYWORD
	TRUE_KEYWORD
	TRY_KEYWORD
	WHILE_KEYWORD
	AS_KEYWORD

	PLUS
	MINUS
	ASTERISK
	SLASH
	PERCENT
	DOUBLE_ASTERISK

	EQUAL
	PLUS_EQUAL
	MINUS_EQUAL
	ASTERISK_EQUAL
	SLASH_EQUAL
	PERCENT_EQUAL
	DOUBLE_ASTERISK_EQUAL
	LEFT_SHIFT_EQUAL
	RIGHT_SHIFT_EQUAL
	AMPERSAND_EQUAL
	CARET_EQUAL
	PIPE_EQUAL
	DOUBLE_AMPERSAND_EQUAL
	DOUBLE_PIPE_EQUAL
	DOUBLE_QUESTION_MARK_EQUAL

	EQUAL_EQUAL
	TRIPLE_EQUAL
	EXCLAMATION_MARK_EQUAL
	EXCLAMATION_MARK_DOUBLE_EQUAL

	LESS_THAN
	LESS_OR_EQUAL
	GREATER_THAN
	GREATER_OR_EQUAL
	LEFT_SHIFT
	RIGHT_SHIFT

	AMPERSAND
	CARET
	PIPE
	DOUBLE_AMPERSAND
	DOUBLE_PIPE
	DOUBLE_QUESTION_MARK

	EXCLAMATION_MARK
	TILDE
	PLUS_PLUS
	MINUS_MINUS

	QUESTION_MARK
	QUESTION_DOT
	COLON
	SEMICOLON
	COMMA
	DOT
	THREE_DOTS
	ARROW

	OPENING_PARENTHESIS
	CLOSING_PARENTHESIS
	OPENING_BRACKET
	CLOSING_BRACKET
	OPENING_CURLY_BRACKET
	CLOSING_CURLY_BRACKET

	BACKQUOTE
	STR_INTERP_OPENING
	STR_INTERP_CLOSING_BRACKET

	//WITH AN ASSOCIATED VALUE
	INT_LITERAL
	DOUBLE_LITERAL
	STRING_LITERAL
	REGEX_LITERAL
	STR_TEMPLATE_SLICE
	IDENTIFIER_LITERAL
	COMMENT
	UNEXPECTED_CHAR

	EOF
)

const (
	FIRST_KEYWORD_TOKEN_TYPE      = BREAK_KEYWORD
	LAST_KEYWORD_TOKEN_TYPE       = AS_KEYWORD
	LAST_TOKEN_TYPE_WITHOUT_VALUE = STR_INTERP_CLOSING_BRACKET
)

var tokenStrings = [...]string{
	BREAK_KEYWORD:       "break",
	CASE_KEYWORD:        "case",
	CATCH_KEYWORD:       "catch",
	CONST_KEYWORD:       "const",
	CONTINUE_KEYWORD:    "continue",
	DEFAULT_KEYWORD:     "default",
	DELETE_KEYWORD:      "delete",
	DO_KEYWORD:          "do",
	ELIF_KEYWORD:        "elif",
	ELSE_KEYWORD:        "else",
	ENDFOR_KEYWORD:      "endfor",
	ENDFUNCTION_KEYWORD: "endfunction",
	ENDIF_KEYWORD:       "endif",
	ENDWHILE_KEYWORD:    "endwhile",
	EXPORT_KEYWORD:      "export",
	FALSE_KEYWORD:       "false",
	FOR_KEYWORD:         "for",
	FROM_KEYWORD:        "from",
	FUNCTION_KEYWORD:    "function",
	IF_KEYWORD:          "if",
	IMPORT_KEYWORD:      "import",
	IN_KEYWORD:          "in",
	LET_KEYWORD:         "let",
	NULL_KEYWORD:        "null",
	RETURN_KEYWORD:      "return",
	SWITCH_KEYWORD:      "switch",
	THIS_KEYWORD:        "this",
	TRUE_KEYWORD:        "true",
	TRY_KEYWORD:         "try",
	WHILE_KEYWORD:       "while",
	AS_KEYWORD:          "as",

	PLUS:            "+",
	MINUS:           "-",
	ASTERISK:        "*",
	SLASH:           "/",
	PERCENT:         "%",
	DOUBLE_ASTERISK: "**",

	EQUAL:                      "=",
	PLUS_EQUAL:                 "+=",
	MINUS_EQUAL:                "-=",
	ASTERISK_EQUAL:             "*=",
	SLASH_EQUAL:                "/=",
	PERCENT_EQUAL:              "%=",
	DOUBLE_ASTERISK_EQUAL:      "**=",
	LEFT_SHIFT_EQUAL:           "<<=",
	RIGHT_SHIFT_EQUAL:          ">>=",
	AMPERSAND_EQUAL:            "&=",
	CARET_EQUAL:                "^=",
	PIPE_EQUAL:                 "|=",
	DOUBLE_AMPERSAND_EQUAL:     "&&=",
	DOUBLE_PIPE_EQUAL:          "||=",
	DOUBLE_QUESTION_MARK_EQUAL: "??=",

	EQUAL_EQUAL:                   "==",
	TRIPLE_EQUAL:                  "===",
	EXCLAMATION_MARK_EQUAL:        "!=",
	EXCLAMATION_MARK_DOUBLE_EQUAL: "!==",

	LESS_THAN:        "<",
	LESS_OR_EQUAL:    "<=",
	GREATER_THAN:     ">",
	GREATER_OR_EQUAL: ">=",
	LEFT_SHIFT:       "<<",
	RIGHT_SHIFT:      ">>",

	AMPERSAND:            "&",
	CARET:                "^",
	PIPE:                 "|",
	DOUBLE_AMPERSAND:     "&&",
	DOUBLE_PIPE:          "||",
	DOUBLE_QUESTION_MARK: "??",

	EXCLAMATION_MARK: "!",
	TILDE:            "~",
	PLUS_PLUS:        "++",
	MINUS_MINUS:      "--",

	QUESTION_MARK: "?",
	QUESTION_DOT:  "?.",
	COLON:         ":",
	SEMICOLON:     ";",
	COMMA:         ",",
	DOT:           ".",
	THREE_DOTS:    "...",
	ARROW:         "=>",

	OPENING_PARENTHESIS:   "(",
	CLOSING_PARENTHESIS:   ")",
	OPENING_BRACKET:       "[",
	CLOSING_BRACKET:       "]",
	OPENING_CURLY_BRACKET: "{",
	CLOSING_CURLY_BRACKET: "}",

	BACKQUOTE:                  "`",
	STR_INTERP_OPENING:         "${",
	STR_INTERP_CLOSING_BRACKET: "}",
}

var tokenTypenames = [...]string{
	BREAK_KEYWORD:       "BREAK_KEYWORD",
	CASE_KEYWORD:        "CASE_KEYWORD",
	CATCH_KEYWORD:       "CATCH_KEYWORD",
	CONST_KEYWORD:       "CONST_KEYWORD",
	CONTINUE_KEYWORD:    "CONTINUE_KEYWORD",
	DEFAULT_KEYWORD:     "DEFAULT_KEYWORD",
	DELETE_KEYWORD:      "DELETE_KEYWORD",
	DO_KEYWORD:          "DO_KEYWORD",
	ELIF_KEYWORD:        "ELIF_KEYWORD",
	ELSE_KEYWORD:        "ELSE_KEYWORD",
	ENDFOR_KEYWORD:      "ENDFOR_KEYWORD",
	ENDFUNCTION_KEYWORD: "ENDFUNCTION_KEYWORD",
	ENDIF_KEYWORD:       "ENDIF_KEYWORD",
	ENDWHILE_KEYWORD:    "ENDWHILE_KEYWORD",
	EXPORT_KEYWORD:      "EXPORT_KEYWORD",
	FALSE_KEYWORD:       "FALSE_KEYWORD",
	FOR_KEYWORD:         "FOR_KEYWORD",
	FROM_KEYWORD:        "FROM_KEYWORD",
	FUNCTION_KEYWORD:    "FUNCTION_KEYWORD",
	IF_KEYWORD:          "IF_KEYWORD",
	IMPORT_KEYWORD:      "IMPORT_KEYWORD",
	IN_KEYWORD:          "IN_KEYWORD",
	LET_KEYWORD:         "LET_KEYWORD",
	NULL_KEYWORD:        "NULL_KEYWORD",
	RETURN_KEYWORD:      "RETURN_KEYWORD",
	SWITCH_KEYWORD:      "SWITCH_KEYWORD",
	THIS_KEYWORD:        "THIS_KEYWORD",
	TRUE_KEYWORD:        "TRUE_KEYWORD",
	TRY_KEYWORD:         "TRY_KEYWORD",
	WHILE_KEYWORD:       "WHILE_KEYWORD",
	AS_KEYWORD:          "AS_KEYWORD",

	PLUS:            "PLUS",
	MINUS:           "MINUS",
	ASTERISK:        "ASTERISK",
	SLASH:           "SLASH",
	PERCENT:         "PERCENT",
	DOUBLE_ASTERISK: "DOUBLE_ASTERISK",

	EQUAL:                      "EQUAL",
	PLUS_EQUAL:                 "PLUS_EQUAL",
	MINUS_EQUAL:                "MINUS_EQUAL",
	ASTERISK_EQUAL:             "ASTERISK_EQUAL",
	SLASH_EQUAL:                "SLASH_EQUAL",
	PERCENT_EQUAL:              "PERCENT_EQUAL",
	DOUBLE_ASTERISK_EQUAL:      "DOUBLE_ASTERISK_EQUAL",
	LEFT_SHIFT_EQUAL:           "LEFT_SHIFT_EQUAL",
	RIGHT_SHIFT_EQUAL:          "RIGHT_SHIFT_EQUAL",
	AMPERSAND_EQUAL:            "AMPERSAND_EQUAL",
	CARET_EQUAL:                "CARET_EQUAL",
	PIPE_EQUAL:                 "PIPE_EQUAL",
	DOUBLE_AMPERSAND_EQUAL:     "DOUBLE_AMPERSAND_EQUAL",
	DOUBLE_PIPE_EQUAL:          "DOUBLE_PIPE_EQUAL",
	DOUBLE_QUESTION_MARK_EQUAL: "DOUBLE_QUESTION_MARK_EQUAL",

	EQUAL_EQUAL:                   "EQUAL_EQUAL",
	TRIPLE_EQUAL:                  "TRIPLE_EQUAL",
	EXCLAMATION_MARK_EQUAL:        "EXCLAMATION_MARK_EQUAL",
	EXCLAMATION_MARK_DOUBLE_EQUAL: "EXCLAMATION_MARK_DOUBLE_EQUAL",

	LESS_THAN:        "LESS_THAN",
	LESS_OR_EQUAL:    "LESS_OR_EQUAL",
	GREATER_THAN:     "GREATER_THAN",
	GREATER_OR_EQUAL: "GREATER_OR_EQUAL",
	LEFT_SHIFT:       "LEFT_SHIFT",
	RIGHT_SHIFT:      "RIGHT_SHIFT",

	AMPERSAND:            "AMPERSAND",
	CARET:                "CARET",
	PIPE:                 "PIPE",
	DOUBLE_AMPERSAND:     "DOUBLE_AMPERSAND",
	DOUBLE_PIPE:          "DOUBLE_PIPE",
	DOUBLE_QUESTION_MARK: "DOUBLE_QUESTION_MARK",

	EXCLAMATION_MARK: "EXCLAMATION_MARK",
	TILDE:            "TILDE",
	PLUS_PLUS:        "PLUS_PLUS",
	MINUS_MINUS:      "MINUS_MINUS",

	QUESTION_MARK: "QUESTION_MARK",
	QUESTION_DOT:  "QUESTION_DOT",
	COLON:         "COLON",
	SEMICOLON:     "SEMICOLON",
	COMMA:         "COMMA",
	DOT:           "DOT",
	THREE_DOTS:    "THREE_DOTS",
	ARROW:         "ARROW",

	OPENING_PARENTHESIS:   "OPENING_PARENTHESIS",
	CLOSING_PARENTHESIS:   "CLOSING_PARENTHESIS",
	OPENING_BRACKET:       "OPENING_BRACKET",
	CLOSING_BRACKET:       "CLOSING_BRACKET",
	OPENING_CURLY_BRACKET: "OPENING_CURLY_BRACKET",
	CLOSING_CURLY_BRACKET: "CLOSING_CURLY_BRACKET",

	BACKQUOTE:                  "BACKQUOTE",
	STR_INTERP_OPENING:         "STR_INTERP_OPENING",
	STR_INTERP_CLOSING_BRACKET: "STR_INTERP_CLOSING_BRACKET",

	INT_LITERAL:        "INT_LITERAL",
	DOUBLE_LITERAL:     "DOUBLE_LITERAL",
	STRING_LITERAL:     "STRING_LITERAL",
	REGEX_LITERAL:      "REGEX_LITERAL",
	STR_TEMPLATE_SLICE: "STR_TEMPLATE_SLICE",
	IDENTIFIER_LITERAL: "IDENTIFIER_LITERAL",
	COMMENT:            "COMMENT",
	UNEXPECTED_CHAR:    "UNEXPECTED_CHAR",

	EOF: "EOF",
}

func (t TokenType) String() string {
	return tokenTypenames[t]
}

func (t TokenType) IsKeyword() bool {
	return t >= FIRST_KEYWORD_TOKEN_TYPE && t <= LAST_KEYWORD_TOKEN_TYPE
}

// IsTrivia tells whether tokens of this type are ignored by the parser;
// comment tokens are kept in the token list so that directive comments
// can be found by line.
func (t TokenType) IsTrivia() bool {
	return t == COMMENT
}

var keywordTokenTypes = map[string]TokenType{}

func init() {
	for t := FIRST_KEYWORD_TOKEN_TYPE; t <= LAST_KEYWORD_TOKEN_TYPE; t++ {
		keywordTokenTypes[tokenStrings[t]] = t
	}
}

// LookupKeyword returns the token type of a keyword, ok is false
// if name is not a keyword.
func LookupKeyword(name string) (TokenType, bool) {
	t, ok := keywordTokenTypes[name]
	return t, ok
}
