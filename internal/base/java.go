package base

import (
	"sort"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/cohrep/cohrep/internal/parser"
)

// extractClasses pulls class skeletons out of a parsed Java file.
// Interfaces, enums and annotations carry no instance-state cohesion and
// are not analysis targets. Local classes declared inside method bodies
// and anonymous classes are skipped as well.
func extractClasses(res *parser.Result, relPath string) []Class {
	pkg := extractPackage(res)

	var classes []Class
	for _, node := range res.FindNodesByType("class_declaration") {
		if isLocalClass(node) {
			continue
		}
		name := nestedClassName(res, node)
		if name == "" {
			continue
		}
		classes = append(classes, extractClass(res, node, name, pkg, relPath))
	}
	return classes
}

// extractPackage returns the declared package name, or "".
func extractPackage(res *parser.Result) string {
	decls := res.FindNodesByType("package_declaration")
	if len(decls) == 0 {
		return ""
	}
	for i := 0; i < int(decls[0].ChildCount()); i++ {
		child := decls[0].Child(i)
		switch child.Type() {
		case "scoped_identifier", "identifier":
			return res.NodeText(child)
		}
	}
	return ""
}

// isLocalClass reports whether the class is declared inside a method,
// constructor or initializer body.
func isLocalClass(node *sitter.Node) bool {
	for p := node.Parent(); p != nil; p = p.Parent() {
		switch p.Type() {
		case "method_declaration", "constructor_declaration", "static_initializer":
			return true
		}
	}
	return false
}

// nestedClassName returns the class name, prefixed with enclosing class
// names for nested classes (Outer.Inner). Empty for anonymous classes.
func nestedClassName(res *parser.Result, node *sitter.Node) string {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return ""
	}
	name := res.NodeText(nameNode)
	for p := node.Parent(); p != nil; p = p.Parent() {
		if p.Type() != "class_declaration" {
			continue
		}
		outer := p.ChildByFieldName("name")
		if outer == nil {
			return ""
		}
		name = res.NodeText(outer) + "." + name
	}
	return name
}

// extractClass builds the skeleton for one class declaration node.
func extractClass(res *parser.Result, node *sitter.Node, name, pkg, relPath string) Class {
	class := Class{
		Name:    name,
		Package: pkg,
		File:    relPath,
	}

	body := node.ChildByFieldName("body")
	if body == nil {
		return class
	}

	// First pass: declarations, so method bodies can resolve fields and
	// sibling calls against the full member list.
	var methodNodes []*sitter.Node
	for i := 0; i < int(body.ChildCount()); i++ {
		member := body.Child(i)
		switch member.Type() {
		case "field_declaration":
			class.Fields = append(class.Fields, extractFields(res, member)...)
		case "method_declaration", "constructor_declaration":
			class.Methods = append(class.Methods, extractSignature(res, member, name))
			methodNodes = append(methodNodes, member)
		}
	}

	fields := make(map[string]bool)
	for _, f := range class.Fields {
		if !f.Static {
			fields[f.Name] = true
		}
	}
	siblings := make(map[string]bool)
	for _, m := range class.Methods {
		if !m.Ctor {
			siblings[m.Name] = true
		}
	}

	// Second pass: body analysis for field uses and sibling calls.
	for i, member := range methodNodes {
		uses, calls := analyzeBody(res, member, fields, siblings)
		class.Methods[i].Uses = uses
		class.Methods[i].Calls = calls
	}

	return class
}

// extractFields handles one field_declaration, which may declare several
// variables of the same type.
func extractFields(res *parser.Result, node *sitter.Node) []Field {
	typeName := ""
	if t := node.ChildByFieldName("type"); t != nil {
		typeName = res.NodeText(t)
	}
	static := hasModifier(res, node, "static")

	var fields []Field
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() != "variable_declarator" {
			continue
		}
		nameNode := child.ChildByFieldName("name")
		if nameNode == nil {
			continue
		}
		fields = append(fields, Field{
			Name:   res.NodeText(nameNode),
			Type:   typeName,
			Static: static,
		})
	}
	return fields
}

// extractSignature builds a Method from a method or constructor node,
// without body analysis.
func extractSignature(res *parser.Result, node *sitter.Node, className string) Method {
	m := Method{
		Ctor:   node.Type() == "constructor_declaration",
		Static: hasModifier(res, node, "static"),
	}

	if nameNode := node.ChildByFieldName("name"); nameNode != nil {
		m.Name = res.NodeText(nameNode)
	} else if m.Ctor {
		m.Name = className
	}

	if !m.Ctor {
		if t := node.ChildByFieldName("type"); t != nil {
			m.Return = res.NodeText(t)
		}
	}

	if params := node.ChildByFieldName("parameters"); params != nil {
		for i := 0; i < int(params.ChildCount()); i++ {
			p := params.Child(i)
			switch p.Type() {
			case "formal_parameter", "spread_parameter":
				if t := p.ChildByFieldName("type"); t != nil {
					m.Params = append(m.Params, res.NodeText(t))
				}
			}
		}
	}
	return m
}

// analyzeBody walks a method body collecting instance fields used and
// sibling methods called. Locally declared names shadow fields.
func analyzeBody(res *parser.Result, node *sitter.Node, fields, siblings map[string]bool) (uses, calls []string) {
	body := node.ChildByFieldName("body")
	if body == nil {
		return nil, nil
	}

	locals := localNames(res, node, body)
	useSet := make(map[string]bool)
	callSet := make(map[string]bool)

	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		switch n.Type() {
		case "field_access":
			obj := n.ChildByFieldName("object")
			fld := n.ChildByFieldName("field")
			if obj != nil && fld != nil && res.NodeText(obj) == "this" {
				if name := res.NodeText(fld); fields[name] {
					useSet[name] = true
				}
			}
		case "method_invocation":
			obj := n.ChildByFieldName("object")
			if nameNode := n.ChildByFieldName("name"); nameNode != nil {
				name := res.NodeText(nameNode)
				if (obj == nil || res.NodeText(obj) == "this") && siblings[name] {
					callSet[name] = true
				}
			}
		case "identifier":
			name := res.NodeText(n)
			if fields[name] && !locals[name] && isFieldReference(n) {
				useSet[name] = true
			}
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			walk(n.Child(i))
		}
	}
	walk(body)

	return sortedKeys(useSet), sortedKeys(callSet)
}

// localNames collects parameter and local variable names declared in the
// method, used to approximate shadowing of instance fields.
func localNames(res *parser.Result, node, body *sitter.Node) map[string]bool {
	locals := make(map[string]bool)

	if params := node.ChildByFieldName("parameters"); params != nil {
		for i := 0; i < int(params.ChildCount()); i++ {
			p := params.Child(i)
			switch p.Type() {
			case "formal_parameter", "spread_parameter":
				if nameNode := p.ChildByFieldName("name"); nameNode != nil {
					locals[res.NodeText(nameNode)] = true
				}
			}
		}
	}

	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if n.Type() == "variable_declarator" {
			if nameNode := n.ChildByFieldName("name"); nameNode != nil {
				locals[res.NodeText(nameNode)] = true
			}
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			walk(n.Child(i))
		}
	}
	walk(body)

	return locals
}

// isFieldReference filters out identifier occurrences that are not reads
// or writes of a field: invocation names, declaration sites, and the
// field part of a qualified access (covered by the field_access case).
func isFieldReference(n *sitter.Node) bool {
	p := n.Parent()
	if p == nil {
		return false
	}
	switch p.Type() {
	case "method_invocation":
		return sameNode(p.ChildByFieldName("object"), n)
	case "field_access":
		return sameNode(p.ChildByFieldName("object"), n)
	case "variable_declarator", "formal_parameter", "spread_parameter", "catch_formal_parameter":
		return !sameNode(p.ChildByFieldName("name"), n)
	case "labeled_statement", "break_statement", "continue_statement":
		return false
	default:
		return true
	}
}

// sameNode compares nodes by byte range, which identifies a node uniquely
// within one parse tree.
func sameNode(a, b *sitter.Node) bool {
	return a != nil && b != nil && a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte()
}

func hasModifier(res *parser.Result, node *sitter.Node, modifier string) bool {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() != "modifiers" {
			continue
		}
		for _, word := range strings.Fields(res.NodeText(child)) {
			if word == modifier {
				return true
			}
		}
	}
	return false
}

func sortedKeys(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
