package slang

import (
	"os"
	"sort"
	"sync"
)

// DebugConfig toggles the lexer/parser tracing flags exposed by the CLI's
// -debug-lex/-debug-parse/-dump flags, modeled on Ink's own Engine.Debug flag
// struct (pkg/ink/runtime.go).
type DebugConfig struct {
	LexTokens bool
	ParseAST  bool
	Dump      bool
}

// Engine owns the global scope, the pub/sub registry and the import cycle
// guard for one running Slang program. Slang is single-threaded and
// evaluated synchronously: Engine has no goroutine pool or async exec queue,
// unlike Ink's Context/ExecListener machinery; Exec and ExecPath serialize
// on mu so concurrent callers (e.g. a REPL and a signal handler) can't
// interleave two evaluations. Import and DumpGlobal do not take mu.
type Engine struct {
	Global *Environment
	Debug  DebugConfig
	PubSub *PubSubRegistry

	ev *Evaluator

	mu        sync.Mutex
	importing map[string]bool
	imported  map[string]bool
}

func NewEngine() *Engine {
	e := &Engine{
		Global:    NewEnvironment(),
		PubSub:    NewPubSubRegistry(),
		importing: map[string]bool{},
		imported:  map[string]bool{},
	}
	e.ev = NewEvaluator(e)
	RegisterPrelude(e.Global)
	return e
}

// Exec lexes, parses and evaluates src against the engine's persistent
// global scope, returning the value of the last top-level statement (the
// REPL prints this after each line).
func (e *Engine) Exec(src string) (Value, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.execLocked(src)
}

// ExecPath reads a script file and evaluates it the same way Exec does.
func (e *Engine) ExecPath(path string) (Value, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, newErr(ErrIO, Position{}, "cannot read %q: %v", path, err)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.execLocked(string(src))
}

func (e *Engine) execLocked(src string) (Value, error) {
	lx := NewLexer(src)
	toks, err := lx.Tokenize()
	if err != nil {
		return nil, err
	}
	if e.Debug.LexTokens {
		for _, t := range toks {
			LogDebug(t.String())
		}
	}

	p := NewParser(toks)
	prog, err := p.ParseProgram()
	if err != nil {
		return nil, err
	}
	if e.Debug.ParseAST {
		LogDebugf("parsed %d top-level statement(s)", len(prog.Stmts))
	}

	return e.ev.ExecProgram(prog, e.Global)
}

// DumpGlobal prints every name bound in the global scope, sorted, for the
// -dump CLI flag (mirrors Ink's Context.Dump).
func (e *Engine) DumpGlobal() {
	names := e.Global.Names()
	sort.Strings(names)
	for _, name := range names {
		v, _ := e.Global.Get(name)
		LogDebugf("%s = %s", name, v.String())
	}
}

// Import loads path at most once per Engine lifetime, merging only the
// namespace declarations found at its top level into the global scope; any
// other top-level declaration in the imported file stays private to it.
// Modeled on Ink's inkLoad/ExecPath/Contexts-map pattern (pkg/ink/runtime.go)
// but without its goroutine-per-import scheduling, since imports here run
// synchronously inline.
func (e *Engine) Import(path string, pos Position) error {
	if e.imported[path] {
		return nil
	}
	if e.importing[path] {
		return newErr(ErrImport, pos, "import cycle detected at %q", path)
	}
	e.importing[path] = true
	defer delete(e.importing, path)

	src, err := os.ReadFile(path)
	if err != nil {
		return newErr(ErrIO, pos, "cannot read %q: %v", path, err)
	}

	lx := NewLexer(string(src))
	toks, err := lx.Tokenize()
	if err != nil {
		return err
	}
	p := NewParser(toks)
	prog, err := p.ParseProgram()
	if err != nil {
		return err
	}

	fileEnv := e.Global.Child()
	if _, err := e.ev.ExecProgram(prog, fileEnv); err != nil {
		return err
	}

	for _, s := range prog.Stmts {
		nd, ok := s.(*NamespaceDecl)
		if !ok {
			continue
		}
		v, _ := fileEnv.Get(nd.Name)
		e.Global.DefineHere(nd.Name, v)
	}

	e.imported[path] = true
	return nil
}
