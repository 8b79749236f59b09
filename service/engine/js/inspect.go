package js

import (
	"strings"

	"github.com/dop251/goja"
	"github.com/viant/repl/runtime/evaluator"
)

// Inspect renders value the way the console echoes results
func (e *Engine) Inspect(value evaluator.Value) string {
	return e.inspect(e.value(value))
}

func (e *Engine) inspect(v goja.Value) string {
	switch {
	case v == nil || goja.IsUndefined(v):
		return "undefined"
	case goja.IsNull(v):
		return "null"
	}
	obj, ok := v.(*goja.Object)
	if !ok {
		if s, isString := v.Export().(string); isString {
			return quote(s)
		}
		return v.String()
	}
	if promise, ok := asPromise(v); ok {
		switch promise.State() {
		case goja.PromiseStateFulfilled:
			return "Promise { " + e.inspect(promise.Result()) + " }"
		case goja.PromiseStateRejected:
			return "Promise { <rejected> " + e.inspect(promise.Result()) + " }"
		}
		return "Promise { <pending> }"
	}
	if _, ok := goja.AssertFunction(v); ok {
		name := ""
		if n := obj.Get("name"); n != nil && !goja.IsUndefined(n) {
			name = n.String()
		}
		if name == "" {
			name = "(anonymous)"
		}
		return "[Function: " + name + "]"
	}
	if _, _, ok := e.asGenerator(v); ok {
		return "Object [Generator] {}"
	}
	if obj.ClassName() == "Error" {
		return v.String()
	}
	if text, ok := e.stringify(v); ok {
		return text
	}
	return v.String()
}

func (e *Engine) stringify(v goja.Value) (string, bool) {
	jsonObject := e.runtime.Get("JSON")
	if jsonObject == nil {
		return "", false
	}
	stringify, ok := goja.AssertFunction(jsonObject.ToObject(e.runtime).Get("stringify"))
	if !ok {
		return "", false
	}
	result, err := stringify(jsonObject, v)
	if err != nil || result == nil || goja.IsUndefined(result) {
		return "", false
	}
	return result.String(), true
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "\\'") + "'"
}
