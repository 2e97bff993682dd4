package ast

import "github.com/flowprint/layoutgen/internal/loc"

// Stmt is satisfied by every statement node.
type Stmt interface {
	Node
	stmtKind() Kind
}

func StmtKind(s Stmt) Kind { return s.stmtKind() }

type ExpressionStatement struct {
	base
	Expression Expr
}

func (*ExpressionStatement) stmtKind() Kind { return KindExpressionStatement }

type BlockStatement struct {
	base
	Body []Stmt
}

func (*BlockStatement) stmtKind() Kind { return KindBlockStatement }

type EmptyStatement struct{ base }

func (*EmptyStatement) stmtKind() Kind { return KindEmptyStatement }

type VariableKind int

const (
	VarVar VariableKind = iota
	VarLet
	VarConst
)

func (k VariableKind) String() string {
	switch k {
	case VarLet:
		return "let"
	case VarConst:
		return "const"
	default:
		return "var"
	}
}

type VariableDeclarator struct {
	Range loc.Range
	ID    Pattern
	Init  Expr // nilable
}

type VariableDeclaration struct {
	base
	Kind         VariableKind
	Declarations []VariableDeclarator
	Declare      bool
}

func (*VariableDeclaration) stmtKind() Kind { return KindVariableDeclaration }

type FunctionDeclaration struct {
	base
	Function *FunctionExpr // ID is required (unless default-exported)
}

func (*FunctionDeclaration) stmtKind() Kind { return KindFunctionDeclaration }

type ClassDeclaration struct {
	base
	Class *ClassExpr // ID is required (unless default-exported)
}

func (*ClassDeclaration) stmtKind() Kind { return KindClassDeclaration }

type ReturnStatement struct {
	base
	Argument Expr // nilable
}

func (*ReturnStatement) stmtKind() Kind { return KindReturnStatement }

type IfStatement struct {
	base
	Test       Expr
	Consequent Stmt
	Alternate  Stmt // nilable; another IfStatement for `else if`
}

func (*IfStatement) stmtKind() Kind { return KindIfStatement }

type SwitchCase struct {
	Range loc.Range
	Test  Expr // nil for `default`
	Body  []Stmt
}

type SwitchStatement struct {
	base
	Discriminant Expr
	Cases        []SwitchCase
}

func (*SwitchStatement) stmtKind() Kind { return KindSwitchStatement }

type ForStatement struct {
	base
	Init   Node // *VariableDeclaration or Expr, nilable
	Test   Expr // nilable
	Update Expr // nilable
	Body   Stmt
}

func (*ForStatement) stmtKind() Kind { return KindForStatement }

type ForInStatement struct {
	base
	Left  Node // *VariableDeclaration or Pattern
	Right Expr
	Body  Stmt
}

func (*ForInStatement) stmtKind() Kind { return KindForInStatement }

type ForOfStatement struct {
	base
	Left  Node
	Right Expr
	Body  Stmt
	Await bool
}

func (*ForOfStatement) stmtKind() Kind { return KindForOfStatement }

type WhileStatement struct {
	base
	Test Expr
	Body Stmt
}

func (*WhileStatement) stmtKind() Kind { return KindWhileStatement }

type DoWhileStatement struct {
	base
	Body Stmt
	Test Expr
}

func (*DoWhileStatement) stmtKind() Kind { return KindDoWhileStatement }

type BreakStatement struct {
	base
	Label string // "" if none
}

func (*BreakStatement) stmtKind() Kind { return KindBreakStatement }

type ContinueStatement struct {
	base
	Label string
}

func (*ContinueStatement) stmtKind() Kind { return KindContinueStatement }

type LabeledStatement struct {
	base
	Label string
	Body  Stmt
}

func (*LabeledStatement) stmtKind() Kind { return KindLabeledStatement }

type ThrowStatement struct {
	base
	Argument Expr
}

func (*ThrowStatement) stmtKind() Kind { return KindThrowStatement }

type CatchClause struct {
	Range loc.Range
	Param Pattern // nilable
	Body  *BlockStatement
}

type TryStatement struct {
	base
	Block     *BlockStatement
	Handler   *CatchClause // nilable
	Finalizer *BlockStatement // nilable
}

func (*TryStatement) stmtKind() Kind { return KindTryStatement }

type DebuggerStatement struct{ base }

func (*DebuggerStatement) stmtKind() Kind { return KindDebuggerStatement }

// --- modules ---

type ImportSpecifier struct {
	Imported  string // "" for default/namespace
	Local     string
	Default   bool
	Namespace bool
	TypeOnly  bool
}

type ImportDeclaration struct {
	base
	Specifiers []ImportSpecifier
	Source     string
	TypeOnly   bool // `import type { ... }`
}

func (*ImportDeclaration) stmtKind() Kind { return KindImportDeclaration }

type ExportSpecifier struct {
	Local    string
	Exported string
}

type ExportNamedDeclaration struct {
	base
	Declaration Stmt // nilable; mutually exclusive with Specifiers
	Specifiers  []ExportSpecifier
	Source      string // "" unless re-exporting
	TypeOnly    bool
}

func (*ExportNamedDeclaration) stmtKind() Kind { return KindExportNamedDeclaration }

type ExportDefaultDeclaration struct {
	base
	Declaration Node // Stmt (FunctionDeclaration/ClassDeclaration) or Expr
}

func (*ExportDefaultDeclaration) stmtKind() Kind { return KindExportDefaultDeclaration }

type ExportAllDeclaration struct {
	base
	Exported string // "" for a bare `export * from "x"`
	Source   string
}

func (*ExportAllDeclaration) stmtKind() Kind { return KindExportAllDeclaration }

// --- Flow declarations ---

type TypeAliasDeclaration struct {
	base
	ID         string
	TypeParams []TypeParam
	Right      Type
}

func (*TypeAliasDeclaration) stmtKind() Kind { return KindTypeAlias }

type OpaqueTypeDeclaration struct {
	base
	ID         string
	TypeParams []TypeParam
	SuperType  Type // nilable, the bound after `:`
	Impl       Type // nilable, the `= T` implementation type
	Declare    bool
}

func (*OpaqueTypeDeclaration) stmtKind() Kind { return KindOpaqueType }

type InterfaceExtend struct {
	ID       string
	TypeArgs []Type
}

type InterfaceDeclaration struct {
	base
	ID         string
	TypeParams []TypeParam
	Extends    []InterfaceExtend
	Body       *ObjectType
}

func (*InterfaceDeclaration) stmtKind() Kind { return KindInterfaceDeclaration }

type DeclareVariable struct {
	base
	ID             string
	TypeAnnotation Type
}

func (*DeclareVariable) stmtKind() Kind { return KindDeclareVariable }

type DeclareFunction struct {
	base
	ID             string
	TypeAnnotation Type // must be a *FunctionType (spec.md §4.10 InvalidAst)
	Predicate      bool
}

func (*DeclareFunction) stmtKind() Kind { return KindDeclareFunction }

type DeclareClass struct {
	base
	ID         string
	TypeParams []TypeParam
	Extends    []InterfaceExtend
	Body       *ObjectType
}

func (*DeclareClass) stmtKind() Kind { return KindDeclareClass }

type DeclareModule struct {
	base
	ID   string
	Body []Stmt
}

func (*DeclareModule) stmtKind() Kind { return KindDeclareModule }

type DeclareModuleExports struct {
	base
	TypeAnnotation Type
}

func (*DeclareModuleExports) stmtKind() Kind { return KindDeclareModuleExports }

// DeclareExportDeclaration requires exactly one of Declaration or
// Specifiers (spec.md §4.10: "DeclareExport with neither declaration nor
// specifiers" is an InvalidAst condition).
type DeclareExportDeclaration struct {
	base
	Declaration Stmt
	Specifiers  []ExportSpecifier
	Source      string
	Default     bool
}

func (*DeclareExportDeclaration) stmtKind() Kind { return KindDeclareExportDeclaration }

type DeclareInterface struct {
	base
	ID         string
	TypeParams []TypeParam
	Extends    []InterfaceExtend
	Body       *ObjectType
}

func (*DeclareInterface) stmtKind() Kind { return KindDeclareInterface }

type DeclareOpaqueType struct {
	base
	ID         string
	TypeParams []TypeParam
	SuperType  Type
}

func (*DeclareOpaqueType) stmtKind() Kind { return KindDeclareOpaqueType }
