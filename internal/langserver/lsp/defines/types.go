package defines

/**
 * A tagging type for string properties that are actually document URIs.
 */
type DocumentUri string

/**
 * Position in a text document expressed as zero-based line and character offset.
 * The offsets are based on a UTF-16 string representation.
 *
 * Positions are line end character agnostic. So you can not specify a position that
 * denotes `\r|\n` or `\n|` where `|` represents the character offset.
 */
type Position struct {

	// Line position in a document (zero-based).
	Line uint `json:"line"`

	// Character offset on a line in a document (zero-based). Assuming that the line is
	// represented as a string, the `character` value represents the gap between the
	// `character` and `character + 1`.
	Character uint `json:"character"`
}

/**
 * A range in a text document expressed as (zero-based) start and end positions.
 *
 * If you want to specify a range that contains a line including the line ending
 * character(s) then use an end position denoting the start of the next line.
 */
type Range struct {

	// The range's start position
	Start Position `json:"start"`

	// The range's end position.
	End Position `json:"end"`
}

/**
 * Represents a location inside a resource, such as a line
 * inside a text file.
 */
type Location struct {
	Uri DocumentUri `json:"uri,omitempty"`

	Range Range `json:"range"`
}

/**
 * Represents the connection of two locations. Provides additional metadata over normal locations,
 * including an origin range.
 */
type LocationLink struct {

	// Span of the origin of this link.
	//
	// Used as the underlined span for mouse definition hover. Defaults to the word range at
	// the definition position.
	OriginSelectionRange *Range `json:"originSelectionRange,omitempty"`

	// The target resource identifier of this link.
	TargetUri DocumentUri `json:"targetUri,omitempty"`

	// The full target range of this link. If the target for example is a symbol then target range is the
	// range enclosing this symbol not including leading/trailing whitespace but everything else
	// like comments.
	TargetRange Range `json:"targetRange"`

	// The range that should be selected and revealed when this link is being followed, e.g the name of a function.
	// Must be contained by the `targetRange`.
	TargetSelectionRange Range `json:"targetSelectionRange"`
}

/**
 * A literal to identify a text document in the client.
 */
type TextDocumentIdentifier struct {

	// The text document's uri.
	Uri DocumentUri `json:"uri,omitempty"`
}

/**
 * A text document identifier to denote a specific version of a text document.
 */
type VersionedTextDocumentIdentifier struct {
	TextDocumentIdentifier

	// The version number of this document.
	Version int `json:"version,omitempty"`
}

/**
 * An item to transfer a text document from the client to the
 * server.
 */
type TextDocumentItem struct {

	// The text document's uri.
	Uri DocumentUri `json:"uri,omitempty"`

	// The text document's language identifier
	LanguageId string `json:"languageId,omitempty"`

	// The version number of this document (it will increase after each
	// change, including undo/redo).
	Version int `json:"version,omitempty"`

	// The content of the opened text document.
	Text string `json:"text,omitempty"`
}

/**
 * Represents a diagnostic, such as a compiler error or warning. Diagnostic objects
 * are only valid in the scope of a resource.
 */
type Diagnostic struct {

	// The range at which the message applies
	Range Range `json:"range"`

	// The diagnostic's severity. Can be omitted. If omitted it is up to the
	// client to interpret diagnostics as error, warning, info or hint.
	Severity *DiagnosticSeverity `json:"severity,omitempty"`

	// The diagnostic's code, which usually appear in the user interface.
	Code interface{} `json:"code,omitempty"` // int, string,

	// A human-readable string describing the source of this
	// diagnostic, e.g. 'typescript' or 'super lint'. It usually
	// appears in the user interface.
	Source *string `json:"source,omitempty"`

	// The diagnostic's message. It usually appears in the user interface
	Message string `json:"message,omitempty"`
}

/**
 * The diagnostic's severity.
 */
type DiagnosticSeverity int

var diagnosticSeverityStringMap = map[DiagnosticSeverity]string{
	DiagnosticSeverityError:       "Error",
	DiagnosticSeverityWarning:     "Warning",
	DiagnosticSeverityInformation: "Information",
	DiagnosticSeverityHint:        "Hint",
}

func (i DiagnosticSeverity) String() string {
	if s, ok := diagnosticSeverityStringMap[i]; ok {
		return s
	}
	return "unknown"
}

const (
	/**
	 * Reports an error.
	 */
	DiagnosticSeverityError DiagnosticSeverity = 1
	/**
	 * Reports a warning.
	 */
	DiagnosticSeverityWarning DiagnosticSeverity = 2
	/**
	 * Reports an information.
	 */
	DiagnosticSeverityInformation DiagnosticSeverity = 3
	/**
	 * Reports a hint.
	 */
	DiagnosticSeverityHint DiagnosticSeverity = 4
)

/**
 * A `MarkupContent` literal represents a string value which content is interpreted base on its
 * kind flag. Currently the protocol supports `plaintext` and `markdown` as markup kinds.
 *
 * If the kind is `markdown` then the value can contain fenced code blocks like in GitHub issues.
 */
type MarkupContent struct {

	// The type of the Markup
	Kind MarkupKind `json:"kind,omitempty"`

	// The content itself
	Value string `json:"value,omitempty"`
}

/**
 * Describes the content type that a client supports in various
 * result literals like `Hover`, `ParameterInfo` or `CompletionItem`.
 */
type MarkupKind string

const (
	/**
	 * Plain text is supported as a content format
	 */
	MarkupKindPlainText MarkupKind = "plaintext"
	/**
	 * Markdown is supported as a content format
	 */
	MarkupKindMarkdown MarkupKind = "markdown"
)

/**
 * The result of a hover request.
 */
type Hover struct {

	// The hover's content
	Contents interface{} `json:"contents,omitempty"` // MarkupContent, MarkedString, []MarkedString,

	// An optional range
	Range *Range `json:"range,omitempty"`
}

/**
 * A completion item represents a text snippet that is
 * proposed to complete text that is being typed.
 */
type CompletionItem struct {

	// The label of this completion item.
	//
	// The label property is also by default the text that
	// is inserted when selecting this completion.
	Label string `json:"label,omitempty"`

	// The kind of this completion item. Based of the kind
	// an icon is chosen by the editor.
	Kind *CompletionItemKind `json:"kind,omitempty"`

	// A human-readable string with additional information
	// about this item, like type or symbol information.
	Detail *string `json:"detail,omitempty"`

	// A human-readable string that represents a doc-comment.
	Documentation interface{} `json:"documentation,omitempty"` // string, MarkupContent,

	// A string that should be used when comparing this item
	// with other items. When `falsy` the label is used.
	SortText *string `json:"sortText,omitempty"`

	// A string that should be used when filtering a set of
	// completion items. When `falsy` the label is used.
	FilterText *string `json:"filterText,omitempty"`

	// A string that should be inserted into a document when selecting
	// this completion. When `falsy` the label is used.
	InsertText *string `json:"insertText,omitempty"`
}

/**
 * The kind of a completion entry.
 */
type CompletionItemKind int

var completionItemKindStringMap = map[CompletionItemKind]string{
	CompletionItemKindText:          "Text",
	CompletionItemKindMethod:        "Method",
	CompletionItemKindFunction:      "Function",
	CompletionItemKindConstructor:   "Constructor",
	CompletionItemKindField:         "Field",
	CompletionItemKindVariable:      "Variable",
	CompletionItemKindClass:         "Class",
	CompletionItemKindInterface:     "Interface",
	CompletionItemKindModule:        "Module",
	CompletionItemKindProperty:      "Property",
	CompletionItemKindUnit:          "Unit",
	CompletionItemKindValue:         "Value",
	CompletionItemKindEnum:          "Enum",
	CompletionItemKindKeyword:       "Keyword",
	CompletionItemKindSnippet:       "Snippet",
	CompletionItemKindColor:         "Color",
	CompletionItemKindFile:          "File",
	CompletionItemKindReference:     "Reference",
	CompletionItemKindFolder:        "Folder",
	CompletionItemKindEnumMember:    "EnumMember",
	CompletionItemKindConstant:      "Constant",
	CompletionItemKindStruct:        "Struct",
	CompletionItemKindEvent:         "Event",
	CompletionItemKindOperator:      "Operator",
	CompletionItemKindTypeParameter: "TypeParameter",
}

func (i CompletionItemKind) String() string {
	if s, ok := completionItemKindStringMap[i]; ok {
		return s
	}
	return "unknown"
}

const (
	CompletionItemKindText CompletionItemKind = 1

	CompletionItemKindMethod CompletionItemKind = 2

	CompletionItemKindFunction CompletionItemKind = 3

	CompletionItemKindConstructor CompletionItemKind = 4

	CompletionItemKindField CompletionItemKind = 5

	CompletionItemKindVariable CompletionItemKind = 6

	CompletionItemKindClass CompletionItemKind = 7

	CompletionItemKindInterface CompletionItemKind = 8

	CompletionItemKindModule CompletionItemKind = 9

	CompletionItemKindProperty CompletionItemKind = 10

	CompletionItemKindUnit CompletionItemKind = 11

	CompletionItemKindValue CompletionItemKind = 12

	CompletionItemKindEnum CompletionItemKind = 13

	CompletionItemKindKeyword CompletionItemKind = 14

	CompletionItemKindSnippet CompletionItemKind = 15

	CompletionItemKindColor CompletionItemKind = 16

	CompletionItemKindFile CompletionItemKind = 17

	CompletionItemKindReference CompletionItemKind = 18

	CompletionItemKindFolder CompletionItemKind = 19

	CompletionItemKindEnumMember CompletionItemKind = 20

	CompletionItemKindConstant CompletionItemKind = 21

	CompletionItemKindStruct CompletionItemKind = 22

	CompletionItemKindEvent CompletionItemKind = 23

	CompletionItemKindOperator CompletionItemKind = 24

	CompletionItemKindTypeParameter CompletionItemKind = 25
)

/**
 * Represents programming constructs like variables, classes, interfaces etc.
 * that appear in a document. Document symbols can be hierarchical and they
 * have two ranges: one that encloses its definition and one that points to
 * its most interesting range, e.g. the range of an identifier.
 */
type DocumentSymbol struct {

	// The name of this symbol. Will be displayed in the user interface and therefore must not be
	// an empty string or a string only consisting of white spaces.
	Name string `json:"name,omitempty"`

	// More detail for this symbol, e.g the signature of a function.
	Detail *string `json:"detail,omitempty"`

	// The kind of this symbol.
	Kind SymbolKind `json:"kind,omitempty"`

	// The range enclosing this symbol not including leading/trailing whitespace but everything else
	// like comments. This information is typically used to determine if the clients cursor is
	// inside the symbol to reveal the symbol in the UI.
	Range Range `json:"range"`

	// The range that should be selected and revealed when this symbol is being picked, e.g the name of a function.
	// Must be contained by the `range`.
	SelectionRange Range `json:"selectionRange"`

	// Children of this symbol, e.g. properties of a class.
	Children *[]DocumentSymbol `json:"children,omitempty"`
}

/**
 * A symbol kind.
 */
type SymbolKind int

var symbolKindStringMap = map[SymbolKind]string{
	SymbolKindFile:          "File",
	SymbolKindModule:        "Module",
	SymbolKindNamespace:     "Namespace",
	SymbolKindPackage:       "Package",
	SymbolKindClass:         "Class",
	SymbolKindMethod:        "Method",
	SymbolKindProperty:      "Property",
	SymbolKindField:         "Field",
	SymbolKindConstructor:   "Constructor",
	SymbolKindEnum:          "Enum",
	SymbolKindInterface:     "Interface",
	SymbolKindFunction:      "Function",
	SymbolKindVariable:      "Variable",
	SymbolKindConstant:      "Constant",
	SymbolKindString:        "String",
	SymbolKindNumber:        "Number",
	SymbolKindBoolean:       "Boolean",
	SymbolKindArray:         "Array",
	SymbolKindObject:        "Object",
	SymbolKindKey:           "Key",
	SymbolKindNull:          "Null",
	SymbolKindEnumMember:    "EnumMember",
	SymbolKindStruct:        "Struct",
	SymbolKindEvent:         "Event",
	SymbolKindOperator:      "Operator",
	SymbolKindTypeParameter: "TypeParameter",
}

func (i SymbolKind) String() string {
	if s, ok := symbolKindStringMap[i]; ok {
		return s
	}
	return "unknown"
}

const (
	SymbolKindFile SymbolKind = 1

	SymbolKindModule SymbolKind = 2

	SymbolKindNamespace SymbolKind = 3

	SymbolKindPackage SymbolKind = 4

	SymbolKindClass SymbolKind = 5

	SymbolKindMethod SymbolKind = 6

	SymbolKindProperty SymbolKind = 7

	SymbolKindField SymbolKind = 8

	SymbolKindConstructor SymbolKind = 9

	SymbolKindEnum SymbolKind = 10

	SymbolKindInterface SymbolKind = 11

	SymbolKindFunction SymbolKind = 12

	SymbolKindVariable SymbolKind = 13

	SymbolKindConstant SymbolKind = 14

	SymbolKindString SymbolKind = 15

	SymbolKindNumber SymbolKind = 16

	SymbolKindBoolean SymbolKind = 17

	SymbolKindArray SymbolKind = 18

	SymbolKindObject SymbolKind = 19

	SymbolKindKey SymbolKind = 20

	SymbolKindNull SymbolKind = 21

	SymbolKindEnumMember SymbolKind = 22

	SymbolKindStruct SymbolKind = 23

	SymbolKindEvent SymbolKind = 24

	SymbolKindOperator SymbolKind = 25

	SymbolKindTypeParameter SymbolKind = 26
)
