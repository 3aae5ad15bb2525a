package slang

// evalNamespaceDecl evaluates a `namespace NAME { ... }` block against env.
// If NAME already names an *Object in scope (declared by an earlier
// namespace block, including one merged in by import), its body runs with
// that Object's existing members visible and adds to them in place;
// otherwise a fresh Object is created and bound.
func (ev *Evaluator) evalNamespaceDecl(decl *NamespaceDecl, env *Environment) error {
	var ns *Object
	if existing, ok := env.Get(decl.Name); ok {
		obj, isObj := existing.(*Object)
		if !isObj {
			return newErr(ErrType, decl.Pos, "%s is already defined and is not a namespace", decl.Name)
		}
		ns = obj
	} else {
		ns = NewObject()
		env.DefineHere(decl.Name, ns)
	}

	bodyEnv := env.Child()
	for _, k := range ns.Keys() {
		v, _ := ns.Get(k)
		bodyEnv.Define(k, v)
	}

	if _, err := ev.execBlock(decl.Body, bodyEnv); err != nil {
		return err
	}

	for _, name := range bodyEnv.Names() {
		v, _ := bodyEnv.Get(name)
		ns.Set(name, v)
	}
	return nil
}
