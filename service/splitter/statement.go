package splitter

import (
	"github.com/dop251/goja/ast"
	"github.com/dop251/goja/token"
	"github.com/viant/repl/model/task"
)

// statement is a classified top-level statement. The set of implementations
// is closed: declarationGroup, assignment, classDeclaration and other.
type statement interface {
	tasks(src *source) []*task.Task
}

// declarationGroup is a var, let or const statement binding plain names
type declarationGroup struct {
	kind     string
	bindings []*ast.Binding
}

func (d *declarationGroup) tasks(src *source) []*task.Task {
	var ret = make([]*task.Task, 0, len(d.bindings))
	for _, binding := range d.bindings {
		name := binding.Target.(*ast.Identifier).Name.String()
		initializer := ""
		if binding.Initializer != nil {
			initializer = src.textOf(binding.Initializer)
		}
		ret = append(ret, &task.Task{
			Declare: task.Declaration(d.kind, name),
			Command: task.Binding(name, initializer),
			Yield:   name,
		})
	}
	return ret
}

// assignment is an expression statement assigning to a plain name
type assignment struct {
	name string
	node ast.Statement
}

func (a *assignment) tasks(src *source) []*task.Task {
	return []*task.Task{{Command: src.textOf(a.node), Yield: a.name}}
}

// classDeclaration is rewritten into a var binding of the class expression
type classDeclaration struct {
	name  string
	class *ast.ClassLiteral
}

func (c *classDeclaration) tasks(src *source) []*task.Task {
	return []*task.Task{{Command: task.ClassBinding(c.name, src.textOf(c.class))}}
}

// other runs verbatim
type other struct {
	node ast.Statement
}

func (o *other) tasks(src *source) []*task.Task {
	return []*task.Task{{Command: src.textOf(o.node)}}
}

func classify(stmt ast.Statement) statement {
	switch actual := stmt.(type) {
	case *ast.VariableStatement:
		if group := newDeclarationGroup(task.KindVar, actual.List); group != nil {
			return group
		}
	case *ast.LexicalDeclaration:
		kind := task.KindLet
		if actual.Token == token.CONST {
			kind = task.KindConst
		}
		if group := newDeclarationGroup(kind, actual.List); group != nil {
			return group
		}
	case *ast.ExpressionStatement:
		if assign, ok := actual.Expression.(*ast.AssignExpression); ok {
			if ident, ok := assign.Left.(*ast.Identifier); ok {
				return &assignment{name: ident.Name.String(), node: stmt}
			}
		}
	case *ast.ClassDeclaration:
		if actual.Class != nil && actual.Class.Name != nil {
			return &classDeclaration{name: actual.Class.Name.Name.String(), class: actual.Class}
		}
	}
	return &other{node: stmt}
}

// newDeclarationGroup returns nil when any binding destructures, since such
// a binding has no single name to pre-register.
func newDeclarationGroup(kind string, bindings []*ast.Binding) *declarationGroup {
	if len(bindings) == 0 {
		return nil
	}
	for _, binding := range bindings {
		if _, ok := binding.Target.(*ast.Identifier); !ok {
			return nil
		}
	}
	return &declarationGroup{kind: kind, bindings: bindings}
}
