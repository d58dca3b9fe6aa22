package sourcecode

// A ParsingError is an error stored on an AST node. Kind is a stable
// machine-readable code, diagnostics derived from the error reuse it.
type ParsingError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func (err ParsingError) Error() string {
	return err.Message
}

// A ParsingErrorAggregation aggregates all the errors found while parsing a
// file: lexical errors first, then node errors in source order.
type ParsingErrorAggregation struct {
	Message        string          `json:"completeMessage"`
	Errors         []*ParsingError `json:"errors"`
	ErrorPositions []PositionRange `json:"errorPositions"`
}

func (err ParsingErrorAggregation) Error() string {
	return err.Message
}
