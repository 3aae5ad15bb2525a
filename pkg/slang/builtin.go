package slang

import (
	"fmt"
	"strings"
)

// RegisterPrelude binds the small set of always-available names into env:
// print/len/assert, and the Option/Result namespaces. Modeled on Ink's
// LoadFunc/LoadEnvironment builtin-loading pattern (pkg/ink/runtime.go) but
// expressed as plain Go closures instead of Ink's arg-count-dispatch table,
// since Slang builtins declare their own ArityPolicy.
func RegisterPrelude(env *Environment) {
	env.Define("print", &Builtin{Name: "print", Policy: ArityPolicy{Min: 0, Variadic: true}, Fn: builtinPrint})
	env.Define("len", &Builtin{Name: "len", Policy: ArityPolicy{Min: 1}, Fn: builtinLen})
	env.Define("assert", &Builtin{Name: "assert", Policy: ArityPolicy{Min: 1, Variadic: true}, Fn: builtinAssert})
	env.Define("Option", buildOptionNamespace())
	env.Define("Result", buildResultNamespace())
}

func builtinPrint(args []Value) (Value, error) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	fmt.Println(strings.Join(parts, " "))
	return NullValue, nil
}

func builtinLen(args []Value) (Value, error) {
	switch v := args[0].(type) {
	case *Array:
		return Integer(len(v.Elems)), nil
	case String:
		return Integer(len([]rune(string(v)))), nil
	case *Object:
		return Integer(len(v.Keys())), nil
	default:
		return nil, newErr(ErrType, Position{}, "len() is not defined for %T", args[0])
	}
}

func builtinAssert(args []Value) (Value, error) {
	if !args[0].Truthy() {
		msg := "assertion failed"
		if len(args) > 1 {
			msg = args[1].String()
		}
		return nil, newErr(ErrAssertion, Position{}, "%s", msg)
	}
	return TrueValue, nil
}

func namespaceFn(name string, min int, fn BuiltinFunc) *Builtin {
	return &Builtin{Name: name, Policy: ArityPolicy{Min: min}, Fn: fn}
}

func buildOptionNamespace() *Object {
	ns := NewObject()
	ns.Set("Some", namespaceFn("Option.Some", 1, func(args []Value) (Value, error) {
		return &Option{HasValue: true, Val: args[0]}, nil
	}))
	ns.Set("None", &Option{HasValue: false, Val: NullValue})
	ns.Set("isSome", namespaceFn("Option.isSome", 1, func(args []Value) (Value, error) {
		o, ok := args[0].(*Option)
		if !ok {
			return nil, newErr(ErrType, Position{}, "Option.isSome expects an Option")
		}
		return Boolean(o.HasValue), nil
	}))
	ns.Set("isNone", namespaceFn("Option.isNone", 1, func(args []Value) (Value, error) {
		o, ok := args[0].(*Option)
		if !ok {
			return nil, newErr(ErrType, Position{}, "Option.isNone expects an Option")
		}
		return Boolean(!o.HasValue), nil
	}))
	ns.Set("unwrap", namespaceFn("Option.unwrap", 1, func(args []Value) (Value, error) {
		o, ok := args[0].(*Option)
		if !ok {
			return nil, newErr(ErrType, Position{}, "Option.unwrap expects an Option")
		}
		if !o.HasValue {
			return nil, newErr(ErrRuntime, Position{}, "unwrap called on None")
		}
		return o.Val, nil
	}))
	ns.Set("unwrapOr", namespaceFn("Option.unwrapOr", 2, func(args []Value) (Value, error) {
		o, ok := args[0].(*Option)
		if !ok {
			return nil, newErr(ErrType, Position{}, "Option.unwrapOr expects an Option")
		}
		if o.HasValue {
			return o.Val, nil
		}
		return args[1], nil
	}))
	return ns
}

func buildResultNamespace() *Object {
	ns := NewObject()
	ns.Set("Ok", namespaceFn("Result.Ok", 1, func(args []Value) (Value, error) {
		return &Result{IsOk: true, Val: args[0]}, nil
	}))
	ns.Set("Err", namespaceFn("Result.Err", 1, func(args []Value) (Value, error) {
		return &Result{IsOk: false, Val: args[0]}, nil
	}))
	ns.Set("isOk", namespaceFn("Result.isOk", 1, func(args []Value) (Value, error) {
		r, ok := args[0].(*Result)
		if !ok {
			return nil, newErr(ErrType, Position{}, "Result.isOk expects a Result")
		}
		return Boolean(r.IsOk), nil
	}))
	ns.Set("isErr", namespaceFn("Result.isErr", 1, func(args []Value) (Value, error) {
		r, ok := args[0].(*Result)
		if !ok {
			return nil, newErr(ErrType, Position{}, "Result.isErr expects a Result")
		}
		return Boolean(!r.IsOk), nil
	}))
	ns.Set("unwrap", namespaceFn("Result.unwrap", 1, func(args []Value) (Value, error) {
		r, ok := args[0].(*Result)
		if !ok {
			return nil, newErr(ErrType, Position{}, "Result.unwrap expects a Result")
		}
		if !r.IsOk {
			return nil, newErr(ErrRuntime, Position{}, "unwrap called on Err(%s)", r.Val.String())
		}
		return r.Val, nil
	}))
	return ns
}
