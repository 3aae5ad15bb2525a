package slang

import (
	"fmt"
	"os"
	"strings"
)

const (
	ansiReset    = "\x1b[0;0m"
	ansiBlue     = "\x1b[34;22m"
	ansiGreen    = "\x1b[32;22m"
	ansiRed      = "\x1b[31;22m"
	ansiBlueBold = "\x1b[34;1m"
	ansiRedBold  = "\x1b[31;1m"
)

// LogDebug prints a debug line used by the -debug-lex/-debug-parse/-dump toggles.
func LogDebug(args ...string) {
	fmt.Println(ansiBlueBold + "debug: " + ansiBlue + strings.Join(args, " ") + ansiReset)
}

func LogDebugf(format string, args ...interface{}) {
	LogDebug(fmt.Sprintf(format, args...))
}

// LogInteractive prints a REPL result line.
func LogInteractive(args ...string) {
	fmt.Println(ansiGreen + strings.Join(args, " ") + ansiReset)
}

// LogSafeErr prints an error without exiting the process; used by the REPL
// and by any caller that wants to keep running after a top-level error.
func LogSafeErr(err SlangError) {
	fmt.Fprintln(os.Stderr, ansiRedBold+err.Kind.String()+ansiReset+": "+ansiRed+err.Message+" ("+err.Pos.String()+")"+ansiReset)
}

