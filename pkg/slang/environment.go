package slang

// Environment is a scoped name->Value binding table with a parent chain,
// modeled on Ink's StackFrame (pkg/ink/eval.go) but split into Define/Assign
// so that assigning to an unbound plain identifier can surface as a
// catchable NameError rather than an assertion failure.
type Environment struct {
	parent *Environment
	vars   map[string]Value
}

// NewEnvironment creates a root environment with no parent.
func NewEnvironment() *Environment {
	return &Environment{vars: map[string]Value{}}
}

// Child creates a fresh environment whose parent is env, used for blocks,
// function calls, loop bodies and namespace bodies.
func (env *Environment) Child() *Environment {
	return &Environment{parent: env, vars: map[string]Value{}}
}

// Define creates a fresh binding in this environment's own scope, shadowing
// any outer binding of the same name (the semantics of `let`).
func (env *Environment) Define(name string, val Value) {
	env.vars[name] = val
}

// Get looks up name by walking the parent chain, innermost first.
func (env *Environment) Get(name string) (Value, bool) {
	for e := env; e != nil; e = e.parent {
		if v, ok := e.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Assign mutates the owning scope's binding for name, walking the parent
// chain to find it. Returns false if name is unbound anywhere in the chain.
func (env *Environment) Assign(name string, val Value) bool {
	for e := env; e != nil; e = e.parent {
		if _, ok := e.vars[name]; ok {
			e.vars[name] = val
			return true
		}
	}
	return false
}

// DefineHere forces a binding into the innermost scope regardless of
// whether an outer scope already has it.
func (env *Environment) DefineHere(name string, val Value) {
	env.vars[name] = val
}

// Names returns every name bound in this environment's own scope (not
// ancestors), used by the REPL's tab-completion and by -dump.
func (env *Environment) Names() []string {
	names := make([]string, 0, len(env.vars))
	for n := range env.vars {
		names = append(names, n)
	}
	return names
}
