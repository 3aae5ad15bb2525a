package slang

import (
	"reflect"
	"testing"
)

func toks(t *testing.T, src string) []Token {
	t.Helper()
	toks, err := NewLexer(src).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize(%q) error: %v", src, err)
	}
	return toks
}

func kindsWithoutEOF(toks []Token) []Kind {
	out := make([]Kind, 0, len(toks))
	for _, tok := range toks {
		if tok.Kind == TokEOF {
			continue
		}
		out = append(out, tok.Kind)
	}
	return out
}

func wantKinds(t *testing.T, src string, want []Kind) {
	t.Helper()
	got := kindsWithoutEOF(toks(t, src))
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("%q:\n got  %v\n want %v", src, got, want)
	}
}

func TestLexerLiterals(t *testing.T) {
	wantKinds(t, `42`, []Kind{TokInt})
	wantKinds(t, `3.14`, []Kind{TokFloat})
	wantKinds(t, `"hi"`, []Kind{TokString})
	wantKinds(t, `true false null`, []Kind{TokTrue, TokFalse, TokNull})
}

func TestLexerStringEscapes(t *testing.T) {
	got := toks(t, `"a\nb\t\"c\""`)
	if got[0].Text != "a\nb\t\"c\"" {
		t.Fatalf("got %q", got[0].Text)
	}
}

func TestLexerUnterminatedString(t *testing.T) {
	_, err := NewLexer(`"abc`).Tokenize()
	if err == nil {
		t.Fatal("expected an error for an unterminated string")
	}
	se, ok := err.(SlangError)
	if !ok || se.Kind != ErrLex {
		t.Fatalf("expected a LexError, got %v", err)
	}
}

func TestLexerCompoundOperators(t *testing.T) {
	wantKinds(t, `+= -= *= /= ++ -- -> :: == != <= >= && ||`, []Kind{
		TokPlusEq, TokMinusEq, TokStarEq, TokSlashEq,
		TokIncr, TokDecr, TokArrow, TokDblColon,
		TokEq, TokNotEq, TokLtEq, TokGtEq, TokAnd, TokOr,
	})
}

func TestLexerTagAndColon(t *testing.T) {
	got := toks(t, `:Tag x: y ::z`)
	if got[0].Kind != TokTag || got[0].Text != "Tag" {
		t.Fatalf("expected Tag(Tag), got %v", got[0])
	}
}

func TestLexerComments(t *testing.T) {
	wantKinds(t, "1 // a comment\n2", []Kind{TokInt, TokInt})
}

func TestLexerOpenDepth(t *testing.T) {
	lx := NewLexer(`if (x) { let y = [1, 2`)
	if _, err := lx.Tokenize(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	depth, unterminated := lx.OpenDepth()
	if depth <= 0 || unterminated {
		t.Fatalf("expected positive open depth, got depth=%d unterminated=%v", depth, unterminated)
	}
}

func TestLexerOpenDepthClosed(t *testing.T) {
	lx := NewLexer(`if (x) { 1; }`)
	if _, err := lx.Tokenize(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	depth, unterminated := lx.OpenDepth()
	if depth != 0 || unterminated {
		t.Fatalf("expected a fully closed source, got depth=%d unterminated=%v", depth, unterminated)
	}
}

func TestLexerKeywords(t *testing.T) {
	wantKinds(t,
		`let if else while for return break continue function fn class new this namespace import test`,
		[]Kind{TokLet, TokIf, TokElse, TokWhile, TokFor, TokReturn, TokBreak, TokContinue,
			TokFunction, TokFn, TokClass, TokNew, TokThis, TokNamespace, TokImport, TokTest})
}
