package generator

import (
	"github.com/flowprint/layoutgen/internal/ast"
	"github.com/flowprint/layoutgen/internal/layout"
	"github.com/flowprint/layoutgen/internal/lexutil"
	"github.com/flowprint/layoutgen/internal/loc"
	"github.com/flowprint/layoutgen/internal/precedence"
)

func (g *generator) importDeclaration(n *ast.ImportDeclaration) layout.Node {
	if len(n.Specifiers) == 0 {
		return atomf("import %s", lexutil.QuoteString(n.Source))
	}
	typePrefix := ""
	if n.TypeOnly {
		typePrefix = "type "
	}

	var defaultSpec *ast.ImportSpecifier
	var namespaceSpec *ast.ImportSpecifier
	var named []ast.ImportSpecifier
	for i := range n.Specifiers {
		s := &n.Specifiers[i]
		switch {
		case s.Default:
			defaultSpec = s
		case s.Namespace:
			namespaceSpec = s
		default:
			named = append(named, *s)
		}
	}

	var clauses []layout.Node
	if defaultSpec != nil {
		clauses = append(clauses, atom(defaultSpec.Local))
	}
	if namespaceSpec != nil {
		clauses = append(clauses, atomf("* as %s", namespaceSpec.Local))
	}
	if namespaceSpec == nil && (len(named) > 0 || (defaultSpec == nil)) {
		clauses = append(clauses, g.namedSpecifiers(named))
	}

	joined := make([]layout.Node, 0, len(clauses)*2-1)
	for i, c := range clauses {
		if i > 0 {
			joined = append(joined, atom(", "))
		}
		joined = append(joined, c)
	}

	return fuse(atomf("import %s", typePrefix), fuse(joined...), atomf(" from %s", lexutil.QuoteString(n.Source)))
}

func (g *generator) namedSpecifiers(specs []ast.ImportSpecifier) layout.Node {
	children := make([]layout.Node, 0, len(specs)*2+2)
	for i, s := range specs {
		if i > 0 {
			children = append(children, atom(", "))
		}
		prefix := ""
		if s.TypeOnly {
			prefix = "type "
		}
		if s.Imported != "" && s.Imported != s.Local {
			children = append(children, atomf("%s%s as %s", prefix, s.Imported, s.Local))
		} else {
			children = append(children, atomf("%s%s", prefix, s.Local))
		}
	}
	return fuse(atom("{"), fuse(children...), atom("}"))
}

func (g *generator) exportSpecifiers(specs []ast.ExportSpecifier) layout.Node {
	children := make([]layout.Node, 0, len(specs)*2+2)
	for i, s := range specs {
		if i > 0 {
			children = append(children, atom(", "))
		}
		if s.Exported != "" && s.Exported != s.Local {
			children = append(children, atomf("%s as %s", s.Local, s.Exported))
		} else {
			children = append(children, atom(s.Local))
		}
	}
	return fuse(atom("{"), fuse(children...), atom("}"))
}

func (g *generator) exportNamed(n *ast.ExportNamedDeclaration, term layout.Node) layout.Node {
	if n.Declaration != nil {
		return fuse(atom("export "), g.stmtBody(n.Declaration, term, false))
	}
	typePrefix := ""
	if n.TypeOnly {
		typePrefix = "type "
	}
	body := fuse(atomf("export %s", typePrefix), g.exportSpecifiers(n.Specifiers))
	if n.Source != "" {
		body = fuse(body, atomf(" from %s", lexutil.QuoteString(n.Source)))
	}
	return fuse(body, term)
}

func (g *generator) exportDefault(n *ast.ExportDefaultDeclaration, term layout.Node) layout.Node {
	if stmt, ok := n.Declaration.(ast.Stmt); ok {
		switch stmt.(type) {
		case *ast.FunctionDeclaration, *ast.ClassDeclaration:
			return fuse(atom("export default "), g.stmtBody(stmt, term, false))
		}
	}
	return fuse(atom("export default "), g.expr(precedence.Context{}, n.Declaration.(ast.Expr), precedence.Assignment), term)
}

func (g *generator) exportAll(n *ast.ExportAllDeclaration, term layout.Node) layout.Node {
	if n.Exported != "" {
		return fuse(atomf("export * as %s from %s", n.Exported, lexutil.QuoteString(n.Source)), term)
	}
	return fuse(atomf("export * from %s", lexutil.QuoteString(n.Source)), term)
}

func (g *generator) typeAlias(n *ast.TypeAliasDeclaration) layout.Node {
	return fuse(atomf("type %s", n.ID), g.typeParams(n.TypeParams), atom(" = "), g.typeNode(n.Right))
}

func (g *generator) opaqueType(n *ast.OpaqueTypeDeclaration) layout.Node {
	prefix := layout.Node(layout.Empty{})
	if n.Declare {
		prefix = atom("declare ")
	}
	node := fuse(prefix, atomf("opaque type %s", n.ID), g.typeParams(n.TypeParams))
	if n.SuperType != nil {
		node = fuse(node, atom(": "), g.typeNode(n.SuperType))
	}
	if n.Impl != nil {
		node = fuse(node, atom(" = "), g.typeNode(n.Impl))
	}
	return node
}

func (g *generator) interfaceDeclaration(n *ast.InterfaceDeclaration) layout.Node {
	node := fuse(atomf("interface %s", n.ID), g.typeParams(n.TypeParams))
	if len(n.Extends) > 0 {
		node = fuse(node, atom(" extends "), g.interfaceExtends(n.Extends))
	}
	return fuse(node, atom(" "), g.objectType(n.Body))
}

func (g *generator) declareFunction(n *ast.DeclareFunction, term layout.Node) layout.Node {
	fn, ok := n.TypeAnnotation.(*ast.FunctionType)
	if !ok {
		g.failHint(loc.ERROR_BAD_DECLARE_FUNCTION, "DeclareFunction annotation must be a function type",
			"wrap the signature in a FunctionType node", n.Pos())
	}
	predicate := layout.Node(layout.Empty{})
	if n.Predicate {
		predicate = atom(" %checks")
	}
	return fuse(atomf("declare function %s", n.ID), g.functionType(fn), predicate, term)
}

func (g *generator) declareClass(n *ast.DeclareClass) layout.Node {
	node := fuse(atomf("declare class %s", n.ID), g.typeParams(n.TypeParams))
	if len(n.Extends) > 0 {
		node = fuse(node, atom(" extends "), g.interfaceExtends(n.Extends))
	}
	return fuse(node, atom(" "), g.objectType(n.Body))
}

func (g *generator) declareModule(n *ast.DeclareModule) layout.Node {
	return fuse(atomf("declare module %s ", lexutil.QuoteString(n.ID)), g.block(&ast.BlockStatement{Body: n.Body}))
}

func (g *generator) declareExport(n *ast.DeclareExportDeclaration, term layout.Node) layout.Node {
	if n.Declaration == nil && len(n.Specifiers) == 0 {
		g.failHint(loc.ERROR_MALFORMED_DECLARE_EXPORT, "DeclareExport with neither declaration nor specifiers",
			"provide either a declaration or a specifier list", n.Pos())
	}
	prefix := "declare export "
	if n.Default {
		prefix = "declare export default "
	}
	if n.Declaration != nil {
		return fuse(atom(prefix), g.stmtBody(n.Declaration, term, false))
	}
	body := fuse(atom(prefix), g.exportSpecifiers(n.Specifiers))
	if n.Source != "" {
		body = fuse(body, atomf(" from %s", lexutil.QuoteString(n.Source)))
	}
	return fuse(body, term)
}

func (g *generator) declareInterface(n *ast.DeclareInterface) layout.Node {
	node := fuse(atomf("declare interface %s", n.ID), g.typeParams(n.TypeParams))
	if len(n.Extends) > 0 {
		node = fuse(node, atom(" extends "), g.interfaceExtends(n.Extends))
	}
	return fuse(node, atom(" "), g.objectType(n.Body))
}

func (g *generator) declareOpaqueType(n *ast.DeclareOpaqueType) layout.Node {
	node := fuse(atomf("declare opaque type %s", n.ID), g.typeParams(n.TypeParams))
	if n.SuperType != nil {
		node = fuse(node, atom(": "), g.typeNode(n.SuperType))
	}
	return node
}
