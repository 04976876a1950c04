package main

import (
	"context"
	"testing"

	"rosa/internal/config"
	"rosa/internal/token"
	"rosa/internal/vm"
)

func TestShouldColorExplicitModes(t *testing.T) {
	if !shouldColor(config.ColorAlways) {
		t.Error("ColorAlways should always report true")
	}
	if shouldColor(config.ColorNever) {
		t.Error("ColorNever should always report false")
	}
}

func TestDescribeTokenKinds(t *testing.T) {
	cases := []struct {
		tok  token.Token
		want string
	}{
		{token.Token{Kind: token.Keyword, Keyword: token.KwFun}, "fun"},
		{token.Token{Kind: token.Ident, Ident: "x"}, "x"},
		{token.Token{Kind: token.Punct, Punct: token.Arrow}, "->"},
		{token.Token{Kind: token.Int, IntVal: 7}, "7"},
		{token.Token{Kind: token.Str, StrVal: "hi"}, `"hi"`},
	}
	for _, c := range cases {
		if got := describeToken(c.tok); got != c.want {
			t.Errorf("describeToken(%+v) = %q, want %q", c.tok, got, c.want)
		}
	}
}

func TestChunkToFileRoundTrip(t *testing.T) {
	chunk := demoChunk()
	bf := chunkToFile(chunk)
	back := fileToChunk(bf)
	if string(back.Code) != string(chunk.Code) {
		t.Errorf("Code mismatch after round trip")
	}
	if string(back.Pool.Data) != string(chunk.Pool.Data) {
		t.Errorf("Pool.Data mismatch after round trip")
	}
	if len(back.Pool.Offsets) != len(chunk.Pool.Offsets) {
		t.Errorf("Pool.Offsets length mismatch after round trip")
	}
}

func TestDemoChunkProducesExpectedExitCode(t *testing.T) {
	chunk := demoChunk()
	machine := vm.New(chunk, 0)
	if err := machine.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if machine.ExitCode() != 101 {
		t.Fatalf("ExitCode = %d, want 101", machine.ExitCode())
	}
}
