// Command slang runs the Slang interpreter: as a script runner over one or
// more files, as a one-shot evaluator via -eval, as a REPL via -repl, or
// reading a program from stdin, mirroring Ink's cmd/ink.go shape.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/slang-lang/slang/pkg/slang"
)

const version = "0.1.0"

const helpMessage = `
Slang is a small, dynamically-typed, C-like scripting language.
	slang v%s

By default, slang reads a program from stdin.
	slang < main.sl
Run programs from source files by passing them to the interpreter.
	slang main.sl other.sl
Start an interactive REPL with -repl.
	slang -repl
Evaluate a one-line program with -eval.
	slang -eval "print(1 + 2);"

`

func main() {
	flag.Usage = func() {
		fmt.Printf(helpMessage, version)
		flag.PrintDefaults()
	}

	debugLex := flag.Bool("debug-lex", false, "log every token produced by the lexer")
	debugParse := flag.Bool("debug-parse", false, "log a summary of the parsed program")
	dump := flag.Bool("dump", false, "dump the global scope after evaluation")
	verbose := flag.Bool("verbose", false, "enable all debug logging")
	showVersion := flag.Bool("version", false, "print version string and exit")
	showHelp := flag.Bool("help", false, "print help message and exit")
	repl := flag.Bool("repl", false, "run as an interactive REPL")
	eval := flag.String("eval", "", "evaluate the argument as a Slang program")

	flag.Parse()
	files := flag.Args()

	if *showVersion {
		fmt.Printf("slang v%s\n", version)
		os.Exit(0)
	}
	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	engine := slang.NewEngine()
	engine.Debug = slang.DebugConfig{
		LexTokens: *debugLex || *verbose,
		ParseAST:  *debugParse || *verbose,
		Dump:      *dump || *verbose,
	}

	switch {
	case *repl:
		runRepl(engine)
		return

	case *eval != "":
		if _, err := engine.Exec(*eval); err != nil {
			exitOnError(err)
		}

	case len(files) > 0:
		for _, path := range files {
			if _, err := engine.ExecPath(path); err != nil {
				exitOnError(err)
			}
		}

	default:
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintln(os.Stderr, "slang: cannot read stdin:", err)
			os.Exit(1)
		}
		if _, err := engine.Exec(string(src)); err != nil {
			exitOnError(err)
		}
	}

	if engine.Debug.Dump {
		engine.DumpGlobal()
	}
}

// exitOnError prints the error and exits: 2 for a lex/parse-time failure,
// 1 for an evaluation-time failure.
func exitOnError(err error) {
	se, ok := err.(slang.SlangError)
	if !ok {
		fmt.Fprintln(os.Stderr, "slang:", err)
		os.Exit(1)
	}
	slang.LogSafeErr(se)
	if se.Kind == slang.ErrLex || se.Kind == slang.ErrSyntax {
		os.Exit(2)
	}
	os.Exit(1)
}
