package parse

// A Node represents an immutable AST node, all node types embed NodeBase
// which implements the Node interface.
type Node interface {
	Base() NodeBase
	BasePtr() *NodeBase
	Kind() NodeKind
}

// NodeBase implements the Node interface.
type NodeBase struct {
	Span NodeSpan      `json:"span"`
	Err  *ParsingError `json:"error,omitempty"`
}

func (base NodeBase) Base() NodeBase {
	return base
}

func (base *NodeBase) BasePtr() *NodeBase {
	return base
}

func (base *NodeBase) Kind() NodeKind {
	return UnspecifiedNodeKind
}

func (base NodeBase) IncludedIn(node Node) bool {
	return base.Span.Start >= node.Base().Span.Start && base.Span.End <= node.Base().Span.End
}

type NodeKind uint8

const (
	UnspecifiedNodeKind NodeKind = iota
	Expr
	Stmt
)

// Chunk is the root node of a parsed file; it keeps the token list and the
// lexical errors produced while tokenizing so that downstream analysis can
// inspect them (directive comments, diagnostics).
type Chunk struct {
	NodeBase
	Statements    []Node
	Tokens        []Token        `json:"-"`
	LexicalErrors []LexicalError `json:"-"`
}

func (Chunk) Kind() NodeKind {
	return Stmt
}

type Block struct {
	NodeBase
	Statements []Node
}

func (Block) Kind() NodeKind {
	return Stmt
}

type IfStatement struct {
	NodeBase
	Test       Node
	Consequent *Block
	Alternate  Node //can be nil, *Block | *IfStatement
}

func (IfStatement) Kind() NodeKind {
	return Stmt
}

type ForStatement struct {
	NodeBase
	Init   Node //can be nil, *VariableDeclaration | expression
	Test   Node //can be nil
	Update Node //can be nil
	Body   *Block
}

func (ForStatement) Kind() NodeKind {
	return Stmt
}

// ForInStatement is the `for ([let] key[, value] in iterated)` form.
type ForInStatement struct {
	NodeBase
	DeclKeyword TokenType //LET_KEYWORD, CONST_KEYWORD or zero if the variables are not declared
	KeyVar      *Identifier
	ValueVar    *Identifier //can be nil
	Iterated    Node
	Body        *Block
}

func (ForInStatement) Kind() NodeKind {
	return Stmt
}

type WhileStatement struct {
	NodeBase
	Test Node
	Body *Block
}

func (WhileStatement) Kind() NodeKind {
	return Stmt
}

type DoWhileStatement struct {
	NodeBase
	Body *Block
	Test Node
}

func (DoWhileStatement) Kind() NodeKind {
	return Stmt
}

type SwitchStatement struct {
	NodeBase
	Discriminant Node
	Cases        []*SwitchCase
}

func (SwitchStatement) Kind() NodeKind {
	return Stmt
}

type SwitchCase struct {
	NodeBase
	Test       Node //nil for the default case
	Consequent []Node
}

type TryStatement struct {
	NodeBase
	Block   *Block
	Handler *CatchClause //can be nil (recovery)
}

func (TryStatement) Kind() NodeKind {
	return Stmt
}

type CatchClause struct {
	NodeBase
	Param *Identifier //can be nil
	Body  *Block
}

type ReturnStatement struct {
	NodeBase
	Argument Node //can be nil
}

func (ReturnStatement) Kind() NodeKind {
	return Stmt
}

type BreakStatement struct {
	NodeBase
}

func (BreakStatement) Kind() NodeKind {
	return Stmt
}

type ContinueStatement struct {
	NodeBase
}

func (ContinueStatement) Kind() NodeKind {
	return Stmt
}

type ExpressionStatement struct {
	NodeBase
	Expression Node
}

func (ExpressionStatement) Kind() NodeKind {
	return Stmt
}

type EmptyStatement struct {
	NodeBase
}

func (EmptyStatement) Kind() NodeKind {
	return Stmt
}

// BadStatement wraps the region skipped during statement-level recovery.
type BadStatement struct {
	NodeBase
}

func (BadStatement) Kind() NodeKind {
	return Stmt
}

type VariableDeclaration struct {
	NodeBase
	DeclKeyword  TokenType //LET_KEYWORD | CONST_KEYWORD
	Declarations []*VariableDeclarator
}

func (VariableDeclaration) Kind() NodeKind {
	return Stmt
}

type VariableDeclarator struct {
	NodeBase
	Name *Identifier
	Init Node //can be nil for `let` declarations
}

type FunctionDeclaration struct {
	NodeBase
	Name     *Identifier
	Function *FunctionExpression
}

func (FunctionDeclaration) Kind() NodeKind {
	return Stmt
}

type ImportSpecifierKind uint8

const (
	NamedImport ImportSpecifierKind = iota
	DefaultImport
	NamespaceImport
)

type ImportStatement struct {
	NodeBase
	Specifiers []*ImportSpecifier
	Source     *StringLiteral //can be nil (recovery)
}

func (ImportStatement) Kind() NodeKind {
	return Stmt
}

type ImportSpecifier struct {
	NodeBase
	SpecifierKind ImportSpecifierKind
	Imported      *Identifier //nil for default and namespace imports
	Local         *Identifier
}

type ExportStatement struct {
	NodeBase
	Declaration Node   //*VariableDeclaration | *FunctionDeclaration, nil for list and default exports
	Specifiers  []*ExportSpecifier
	Default     Node //expression of `export default <expr>`, nil otherwise
}

func (ExportStatement) Kind() NodeKind {
	return Stmt
}

type ExportSpecifier struct {
	NodeBase
	Local    *Identifier
	Exported *Identifier //nil if not renamed
}

type Identifier struct {
	NodeBase
	Name string
}

func (Identifier) Kind() NodeKind {
	return Expr
}

type IntLiteral struct {
	NodeBase
	Raw   string
	Value int64
}

func (IntLiteral) Kind() NodeKind {
	return Expr
}

type DoubleLiteral struct {
	NodeBase
	Raw   string
	Value float64
}

func (DoubleLiteral) Kind() NodeKind {
	return Expr
}

type StringLiteral struct {
	NodeBase
	Raw   string
	Value string
}

func (StringLiteral) Kind() NodeKind {
	return Expr
}

type BooleanLiteral struct {
	NodeBase
	Value bool
}

func (BooleanLiteral) Kind() NodeKind {
	return Expr
}

type NullLiteral struct {
	NodeBase
}

func (NullLiteral) Kind() NodeKind {
	return Expr
}

type ThisExpression struct {
	NodeBase
}

func (ThisExpression) Kind() NodeKind {
	return Expr
}

type RegexLiteral struct {
	NodeBase
	Raw     string
	Pattern string
	Flags   string
}

func (RegexLiteral) Kind() NodeKind {
	return Expr
}

// StringTemplateLiteral is a backquoted string with interpolations, Slices
// alternates between *StringTemplateSlice and interpolated expressions.
type StringTemplateLiteral struct {
	NodeBase
	Slices []Node
}

func (StringTemplateLiteral) Kind() NodeKind {
	return Expr
}

type StringTemplateSlice struct {
	NodeBase
	Raw   string
	Value string
}

type ArrayLiteral struct {
	NodeBase
	Elements []Node //can include *SpreadElement
}

func (ArrayLiteral) Kind() NodeKind {
	return Expr
}

type ObjectLiteral struct {
	NodeBase
	Properties []Node //*ObjectProperty | *SpreadElement
}

func (ObjectLiteral) Kind() NodeKind {
	return Expr
}

type ObjectProperty struct {
	NodeBase
	Key       Node //*Identifier | *StringLiteral, any expression if Computed
	Value     Node
	Computed  bool
	Shorthand bool
}

type SpreadElement struct {
	NodeBase
	Argument Node
}

func (SpreadElement) Kind() NodeKind {
	return Expr
}

type BinaryExpression struct {
	NodeBase
	Operator TokenType //arithmetic, bitwise, comparison and IN_KEYWORD token types
	Left     Node
	Right    Node
}

func (BinaryExpression) Kind() NodeKind {
	return Expr
}

type LogicalExpression struct {
	NodeBase
	Operator TokenType //DOUBLE_AMPERSAND | DOUBLE_PIPE | DOUBLE_QUESTION_MARK
	Left     Node
	Right    Node
}

func (LogicalExpression) Kind() NodeKind {
	return Expr
}

type UnaryExpression struct {
	NodeBase
	Operator TokenType //EXCLAMATION_MARK | MINUS | PLUS | TILDE | DELETE_KEYWORD
	Operand  Node
}

func (UnaryExpression) Kind() NodeKind {
	return Expr
}

type UpdateExpression struct {
	NodeBase
	Operator TokenType //PLUS_PLUS | MINUS_MINUS
	Operand  Node
	Prefix   bool
}

func (UpdateExpression) Kind() NodeKind {
	return Expr
}

type AssignmentExpression struct {
	NodeBase
	Operator TokenType //EQUAL or a compound assignment token type
	Left     Node
	Right    Node
}

func (AssignmentExpression) Kind() NodeKind {
	return Expr
}

type ConditionalExpression struct {
	NodeBase
	Test       Node
	Consequent Node
	Alternate  Node
}

func (ConditionalExpression) Kind() NodeKind {
	return Expr
}

type CallExpression struct {
	NodeBase
	Callee    Node
	Arguments []Node //can include *SpreadElement
	Optional  bool   //true for `callee?.(...)`
}

func (CallExpression) Kind() NodeKind {
	return Expr
}

type MemberExpression struct {
	NodeBase
	Object       Node
	PropertyName *Identifier
	Optional     bool //true for `object?.name`
}

func (MemberExpression) Kind() NodeKind {
	return Expr
}

type ComputedMemberExpression struct {
	NodeBase
	Object   Node
	Property Node
	Optional bool //true for `object?.[property]`
}

func (ComputedMemberExpression) Kind() NodeKind {
	return Expr
}

type FunctionExpression struct {
	NodeBase
	Name       *Identifier //can be nil
	Parameters []*FunctionParameter
	Body       *Block
}

func (FunctionExpression) Kind() NodeKind {
	return Expr
}

type ArrowFunctionExpression struct {
	NodeBase
	Parameters []*FunctionParameter
	Body       Node //*Block or an expression
}

func (ArrowFunctionExpression) Kind() NodeKind {
	return Expr
}

type FunctionParameter struct {
	NodeBase
	Name    *Identifier
	Default Node //can be nil
	Rest    bool
}

// SequenceExpression is a parenthesized comma-operator expression, its value
// is the value of the last operand.
type SequenceExpression struct {
	NodeBase
	Expressions []Node
}

func (SequenceExpression) Kind() NodeKind {
	return Expr
}

// MissingExpression is inserted where an expression was expected but could
// not be parsed.
type MissingExpression struct {
	NodeBase
}

func (MissingExpression) Kind() NodeKind {
	return Expr
}
