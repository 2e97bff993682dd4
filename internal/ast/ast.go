// Package ast defines the input tree this module's generator consumes: a
// conventional ESTree-shaped AST with Flow type annotations and JSX (spec.md
// §3). It is pure data — no parsing, no validation beyond what the
// generator needs to decide how to print a node.
//
// Adapted from the teacher's internal/ts_parser/ts_parser.go, whose only
// substantive content was an `InterestingKinds` string-enum of ESTree node
// kind names (ExportNamedDeclaration, ImportDeclaration, ...) behind an
// unused external-parser injection point. That injection point is dropped
// (this core receives an already-built AST; the parser is an out-of-scope
// external collaborator per spec.md §1) and the kind names are promoted
// into the real, fully-fleshed node algebra below.
package ast

import "github.com/flowprint/layoutgen/internal/loc"

// Node is satisfied by every node in the tree. It exists so generic
// helpers (location lookups, the `new`-callee call-scanner in
// internal/generator) can operate without a type switch on every concrete
// type.
type Node interface {
	Pos() loc.Range
}

// Kind identifies a node's concrete shape without requiring a Go type
// assertion; several emitters switch on it directly (e.g. the ambiguity
// checks in internal/precedence operate on Kind, not on reflection).
type Kind string

const (
	KindThis                    Kind = "ThisExpression"
	KindSuper                   Kind = "Super"
	KindArray                   Kind = "ArrayExpression"
	KindObject                  Kind = "ObjectExpression"
	KindSequence                Kind = "SequenceExpression"
	KindIdentifier              Kind = "Identifier"
	KindPrivateName             Kind = "PrivateName"
	KindLiteral                 Kind = "Literal"
	KindFunction                Kind = "FunctionExpression"
	KindArrowFunction           Kind = "ArrowFunctionExpression"
	KindAssignment              Kind = "AssignmentExpression"
	KindBinary                  Kind = "BinaryExpression"
	KindLogical                 Kind = "LogicalExpression"
	KindConditional             Kind = "ConditionalExpression"
	KindCall                    Kind = "CallExpression"
	KindNew                     Kind = "NewExpression"
	KindMember                  Kind = "MemberExpression"
	KindUnary                   Kind = "UnaryExpression"
	KindUpdate                  Kind = "UpdateExpression"
	KindYield                   Kind = "YieldExpression"
	KindAwait                   Kind = "AwaitExpression"
	KindSpread                  Kind = "SpreadElement"
	KindTaggedTemplate          Kind = "TaggedTemplateExpression"
	KindTemplateLiteral         Kind = "TemplateLiteral"
	KindJSXElement              Kind = "JSXElement"
	KindJSXFragment             Kind = "JSXFragment"
	KindTypeCast                Kind = "TypeCastExpression"
	KindImportExpression        Kind = "ImportExpression"
	KindMetaProperty            Kind = "MetaProperty"
	KindClassExpression         Kind = "ClassExpression"
	KindComprehension           Kind = "ComprehensionExpression"
	KindGeneratorExpression     Kind = "GeneratorExpression"
	KindExpressionStatement     Kind = "ExpressionStatement"
	KindBlockStatement          Kind = "BlockStatement"
	KindEmptyStatement          Kind = "EmptyStatement"
	KindVariableDeclaration     Kind = "VariableDeclaration"
	KindFunctionDeclaration     Kind = "FunctionDeclaration"
	KindClassDeclaration        Kind = "ClassDeclaration"
	KindReturnStatement         Kind = "ReturnStatement"
	KindIfStatement             Kind = "IfStatement"
	KindSwitchStatement         Kind = "SwitchStatement"
	KindForStatement            Kind = "ForStatement"
	KindForInStatement          Kind = "ForInStatement"
	KindForOfStatement          Kind = "ForOfStatement"
	KindWhileStatement          Kind = "WhileStatement"
	KindDoWhileStatement        Kind = "DoWhileStatement"
	KindBreakStatement          Kind = "BreakStatement"
	KindContinueStatement       Kind = "ContinueStatement"
	KindLabeledStatement        Kind = "LabeledStatement"
	KindThrowStatement          Kind = "ThrowStatement"
	KindTryStatement            Kind = "TryStatement"
	KindDebuggerStatement       Kind = "DebuggerStatement"
	KindImportDeclaration       Kind = "ImportDeclaration"
	KindExportNamedDeclaration Kind = "ExportNamedDeclaration"
	KindExportDefaultDeclaration Kind = "ExportDefaultDeclaration"
	KindExportAllDeclaration   Kind = "ExportAllDeclaration"
	KindTypeAlias               Kind = "TypeAlias"
	KindOpaqueType               Kind = "OpaqueType"
	KindInterfaceDeclaration     Kind = "InterfaceDeclaration"
	KindDeclareVariable          Kind = "DeclareVariable"
	KindDeclareFunction          Kind = "DeclareFunction"
	KindDeclareClass             Kind = "DeclareClass"
	KindDeclareModule            Kind = "DeclareModule"
	KindDeclareModuleExports     Kind = "DeclareModuleExports"
	KindDeclareExportDeclaration Kind = "DeclareExportDeclaration"
	KindDeclareInterface         Kind = "DeclareInterface"
	KindDeclareOpaqueType        Kind = "DeclareOpaqueType"
)

// Program is the root of the tree: a list of statements plus the leading
// comment list the driver needs for docblock preservation (spec.md §4.9).
type Program struct {
	Range      loc.Range
	Body       []Stmt
	Comments   []Comment
	SourceType string // "script" or "module"
}

func (p *Program) Pos() loc.Range { return p.Range }

// Comment is a single line (`//`) or block (`/* */`) comment, carried
// separately from the statement list the way ESTree reports them.
type Comment struct {
	Range   loc.Range
	Block   bool
	Value   string
}

func (c Comment) Pos() loc.Range { return c.Range }

// IsDocblock reports whether the comment is a block comment whose text
// begins with `*` immediately after `/*`, the JSDoc convention. (Plain
// comments do not qualify; this mirrors `/** ... */` vs `/* ... */`.)
func (c Comment) IsDocblock() bool {
	return c.Block && len(c.Value) > 0 && c.Value[0] == '*'
}
