/*
File   : gomonkey/eval/eval_functions.go

Function application: evaluating a call's arguments left-to-right,
binding them into a fresh environment enclosed by the function's
captured scope, and unwrapping a ReturnValue that reaches this level
(the only other place that unwraps one is evalProgram).
*/
package eval

import (
	"github.com/gomonkey/gomonkey/ast"
	"github.com/gomonkey/gomonkey/object"
)

func evalCallExpression(node *ast.CallExpression, env *object.Environment) object.Object {
	function := Eval(node.Function, env)
	if isError(function) {
		return function
	}

	args := evalExpressions(node.Arguments, env)
	if len(args) == 1 && isError(args[0]) {
		return args[0]
	}

	return applyFunction(function, args)
}

// evalExpressions evaluates each expression in order, left to right. If
// any evaluates to an Error, the successes gathered so far are
// discarded and that single Error is returned instead, in a
// single-element slice the caller recognizes.
func evalExpressions(exps []ast.Expression, env *object.Environment) []object.Object {
	var result []object.Object

	for _, e := range exps {
		evaluated := Eval(e, env)
		if isError(evaluated) {
			return []object.Object{evaluated}
		}
		result = append(result, evaluated)
	}

	return result
}

// applyFunction requires fn to be an *object.Function; anything else is
// an Error. Argument-count mismatches are not specifically diagnosed:
// extra arguments are ignored and missing parameters are simply never
// bound, so using one later raises "identifier not found" from
// evalIdentifier.
func applyFunction(fn object.Object, args []object.Object) object.Object {
	function, ok := fn.(*object.Function)
	if !ok {
		return newError("not a function: %s", fn.Type())
	}

	extendedEnv := extendFunctionEnv(function, args)
	evaluated := Eval(function.Body, extendedEnv)
	return unwrapReturnValue(evaluated)
}

func extendFunctionEnv(fn *object.Function, args []object.Object) *object.Environment {
	env := object.NewEnclosedEnvironment(fn.Env)

	for paramIdx, param := range fn.Parameters {
		if paramIdx >= len(args) {
			break
		}
		env.Set(param.Value, args[paramIdx])
	}

	return env
}

func unwrapReturnValue(obj object.Object) object.Object {
	if returnValue, ok := obj.(*object.ReturnValue); ok {
		return returnValue.Value
	}
	return obj
}
