package task

import "strings"

// Declaration kinds recognised by the splitter.
const (
	KindVar   = "var"
	KindLet   = "let"
	KindConst = "const"
)

// Declaration returns the pre-registration text for the binding name.
//
//	Declaration("var", "x")   => "var x"
//	Declaration("const", "x") => "let x"
//
// A const binding cannot be declared without an initializer, so it is
// registered as let and assigned by the task command.
func Declaration(kind, name string) string {
	if kind == KindConst {
		kind = KindLet
	}
	return kind + " " + name
}

// ClassBinding rewrites a class declaration into a variable assignment so
// that the engine evaluates it as an expression.
//
//	ClassBinding("T", "class T {}") => "var T = class T {}"
func ClassBinding(name, classText string) string {
	return "var " + name + " = " + classText
}

// Binding joins a binding name with its initializer text.
//
//	Binding("x", "1 + 2") => "x = 1 + 2"
//	Binding("x", "")      => "x"
func Binding(name, initializer string) string {
	if initializer == "" {
		return name
	}
	return name + " = " + initializer
}

// Assignment returns script text evaluating to a one-argument function that
// stores its argument into the binding name.
//
//	Assignment("_") => ";(function (value) { _ = value })"
func Assignment(name string) string {
	return ";(function (value) { " + name + " = value })"
}

// Bootstrap returns the script run once when an evaluation context is
// created. It declares the input and last-result names and evaluates to a
// function storing its argument into the input name.
//
//	Bootstrap("$input", "_") => "var $input, _;\n;(function (value) { $input = value })"
func Bootstrap(inputName, lastResultName string) string {
	var names []string
	for _, name := range []string{inputName, lastResultName} {
		if name != "" {
			names = append(names, name)
		}
	}
	builder := strings.Builder{}
	if len(names) > 0 {
		builder.WriteString("var ")
		builder.WriteString(strings.Join(names, ", "))
		builder.WriteString(";\n")
	}
	if inputName == "" {
		builder.WriteString(";(function (value) {})")
		return builder.String()
	}
	builder.WriteString(Assignment(inputName))
	return builder.String()
}

// IsIdentifier reports whether name can be used as a plain binding name in
// the generated templates.
func IsIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_' || r == '$':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
