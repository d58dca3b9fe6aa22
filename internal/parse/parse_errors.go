package parse

import "fmt"

// Parsing error kinds. The kind of an error doubles as the stable
// diagnostic code attached to the diagnostics derived from it.
const (
	UnspecifiedParsingError = "parse"
	UnexpectedCharError     = "syntax"
	InvalidRegexFlagError   = "regex-flag"
)

const (
	UNTERMINATED_STRING_LIT      = "unterminated string literal"
	UNTERMINATED_STRING_TEMPLATE = "unterminated template literal"
	UNTERMINATED_STRING_INTERP   = "unterminated string interpolation: missing closing '}'"
	UNTERMINATED_REGEX_LIT       = "unterminated regex literal"
	UNTERMINATED_BLOCK_COMMENT   = "unterminated block comment"
	INVALID_HEX_LITERAL          = "invalid hexadecimal literal: at least one hexadecimal digit is required after '0x'"

	EXPR_EXPECTED                      = "an expression was expected here"
	UNTERMINATED_BLOCK_MISSING_BRACE   = "unterminated block, missing closing brace '}'"
	UNTERMINATED_OBJECT_MISSING_BRACE  = "unterminated object literal, missing closing brace '}'"
	UNTERMINATED_ARRAY_MISSING_BRACKET = "unterminated array literal, missing closing bracket ']'"
	UNTERMINATED_INDEX_MISSING_BRACKET = "unterminated member access, missing closing bracket ']'"
	UNTERMINATED_PAREN_MISSING_PAREN   = "unterminated parenthesized expression, missing closing parenthesis ')'"
	UNTERMINATED_CALL_MISSING_PAREN    = "unterminated call, missing closing parenthesis ')'"
	UNTERMINATED_SWITCH_MISSING_BRACE  = "unterminated switch statement, missing closing brace '}'"
	UNTERMINATED_TEMPLATE_INTERP       = "unterminated string interpolation, missing closing '}'"

	UNTERMINATED_IF_MISSING_ENDIF             = "unterminated if statement, missing 'endif'"
	UNTERMINATED_WHILE_MISSING_ENDWHILE       = "unterminated while statement, missing 'endwhile'"
	UNTERMINATED_FOR_MISSING_ENDFOR           = "unterminated for statement, missing 'endfor'"
	UNTERMINATED_FUNCTION_MISSING_ENDFUNCTION = "unterminated function body, missing 'endfunction'"

	INVALID_REST_PARAM_MUST_BE_LAST = "invalid parameter list: the rest parameter must be the last parameter"
	INVALID_ASSIGNMENT_TARGET       = "invalid assignment target: expected a variable or a member expression"
	CONST_DECL_MISSING_INIT         = "const declarations require an initializer"
	MISSING_CATCH_CLAUSE            = "try statement requires a catch clause"
	MEMBER_NAME_EXPECTED            = "a member name was expected after '.'"
	PROPERTY_KEY_EXPECTED           = "a property key was expected"
	PARAM_NAME_EXPECTED             = "a parameter name was expected"
	VAR_NAME_EXPECTED               = "a variable name was expected"
	CASE_OR_DEFAULT_EXPECTED        = "a 'case' or 'default' clause was expected"
	IMPORT_SPECIFIER_EXPECTED       = "an import specifier was expected: a name, '*' or a '{...}' list"
	IMPORT_SOURCE_EXPECTED          = "a module name string was expected"
	EXPORTABLE_DECL_EXPECTED        = "a declaration, a '{...}' list or 'default' was expected after 'export'"
	STMT_EXPECTED                   = "a statement was expected here"
)

func fmtUnexpectedChar(r rune) string {
	return fmt.Sprintf("unexpected character '%c'", r)
}

func fmtUnsupportedRegexFlag(flag byte) string {
	return fmt.Sprintf("unsupported regex flag '%c': supported flags are 'g', 'i' and 's'", flag)
}

func fmtUnexpectedToken(tok Token, expected string) string {
	if tok.Type == EOF {
		return fmt.Sprintf("unexpected end of file, expected %s", expected)
	}
	return fmt.Sprintf("unexpected token '%s', expected %s", tok.Str(), expected)
}

func fmtUnexpectedTokenHere(tok Token) string {
	if tok.Type == EOF {
		return "unexpected end of file"
	}
	return fmt.Sprintf("unexpected token '%s'", tok.Str())
}
