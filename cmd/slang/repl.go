package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peterh/liner"
	"github.com/slang-lang/slang/pkg/slang"
)

const (
	promptMain         = "> "
	promptContinuation = "  ... "
)

// runRepl drives an interactive session on top of liner, grounded on the
// pack's peterh/liner-based REPL shape (sambeau-basil's pkg/parsley/repl).
// Multi-line input is detected via the lexer's own bracket/paren/brace and
// string-literal tracking (Lexer.OpenDepth) rather than a second hand-rolled
// scanner, since the lexer already computes exactly that state.
func runRepl(engine *slang.Engine) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	line.SetCompleter(func(partial string) []string {
		return completions(engine, partial)
	})

	historyPath := filepath.Join(os.TempDir(), ".slang_history")
	if f, err := os.Open(historyPath); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyPath); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Println("Slang REPL. Ctrl+D to exit.")

	var buf strings.Builder
	for {
		prompt := promptMain
		if buf.Len() > 0 {
			prompt = promptContinuation
		}

		input, err := line.Prompt(prompt)
		if err != nil {
			if err == liner.ErrPromptAborted {
				buf.Reset()
				continue
			}
			if err == io.EOF {
				fmt.Println()
				return
			}
			fmt.Fprintln(os.Stderr, "slang:", err)
			continue
		}

		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(input)

		lx := slang.NewLexer(buf.String())
		_, lexErr := lx.Tokenize()
		if depth, unterminated := lx.OpenDepth(); unterminated || (lexErr == nil && depth > 0) {
			continue // wait for more input
		}

		src := buf.String()
		buf.Reset()
		if strings.TrimSpace(src) == "" {
			continue
		}
		line.AppendHistory(src)

		v, err := engine.Exec(src)
		if err != nil {
			if se, ok := err.(slang.SlangError); ok {
				slang.LogSafeErr(se)
			} else {
				fmt.Fprintln(os.Stderr, "slang:", err)
			}
			continue
		}
		if v != nil {
			slang.LogInteractive(v.String())
		}
	}
}

// completions offers every name bound in the engine's global scope, plus
// the language's reserved words, as tab-completion candidates.
func completions(engine *slang.Engine, partial string) []string {
	words := strings.Fields(partial)
	prefix := partial
	if len(words) > 0 {
		prefix = words[len(words)-1]
	}

	candidates := append([]string{}, replKeywords...)
	candidates = append(candidates, engine.Global.Names()...)
	sort.Strings(candidates)

	var out []string
	seen := map[string]bool{}
	for _, c := range candidates {
		if strings.HasPrefix(c, prefix) && !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

var replKeywords = []string{
	"let", "if", "else", "while", "for", "return", "break", "continue",
	"function", "fn", "class", "new", "this", "namespace", "import", "test",
	"true", "false", "null",
}
