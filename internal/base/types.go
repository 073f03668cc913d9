package base

import "sort"

// Field is one declared field of a class.
type Field struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Static bool   `json:"static,omitempty"`
}

// Method is one method or constructor of a class, reduced to the facts
// cohesion metrics consume.
type Method struct {
	Name   string `json:"name"`
	Ctor   bool   `json:"ctor,omitempty"`
	Static bool   `json:"static,omitempty"`
	// Params lists the declared parameter types, in order.
	Params []string `json:"params,omitempty"`
	// Return is the declared return type, empty for constructors.
	Return string `json:"return,omitempty"`
	// Uses lists the instance fields this method reads or writes,
	// sorted and deduplicated.
	Uses []string `json:"uses,omitempty"`
	// Calls lists the sibling methods this method invokes on its own
	// instance, sorted and deduplicated.
	Calls []string `json:"calls,omitempty"`
}

// Class is the skeleton of one analyzable class: everything the metric
// set needs, nothing else. Immutable once extracted.
type Class struct {
	Name    string   `json:"name"`
	Package string   `json:"package,omitempty"`
	File    string   `json:"file"`
	Fields  []Field  `json:"fields,omitempty"`
	Methods []Method `json:"methods,omitempty"`
}

// QualifiedName returns the package-qualified class name.
func (c *Class) QualifiedName() string {
	if c.Package == "" {
		return c.Name
	}
	return c.Package + "." + c.Name
}

// InstanceFields returns the names of non-static fields, sorted.
func (c *Class) InstanceFields() []string {
	var names []string
	for _, f := range c.Fields {
		if !f.Static {
			names = append(names, f.Name)
		}
	}
	sort.Strings(names)
	return names
}

// InstanceMethods returns the non-static methods, constructors included.
func (c *Class) InstanceMethods() []Method {
	var methods []Method
	for _, m := range c.Methods {
		if !m.Static {
			methods = append(methods, m)
		}
	}
	return methods
}
