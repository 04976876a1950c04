package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rosa/internal/diagfmt"
	"rosa/internal/lexer"
	"rosa/internal/source"
	"rosa/internal/token"
)

func newTokenizeCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tokenize <file>",
		Short: "Print the token stream for a Rosa source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(flags)
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			fset := source.NewFileSet()
			f := fset.AddFile(args[0], data)
			res := lexer.Lex(f)
			toks, _ := res.Value()
			for _, t := range toks {
				lc := f.LineCol(t.Span.Lo)
				fmt.Fprintf(cmd.OutOrStdout(), "%4d:%-3d %-10s %s\n", lc.Line, lc.Col, t.Kind, describeToken(t))
				if t.Kind == token.EndOfFile {
					break
				}
			}
			if res.IsFuzzy() {
				diagfmt.Pretty(cmd.ErrOrStderr(), fset, res.Diagnostics(), diagfmt.Options{
					Color:   shouldColor(cfg.Output.Color),
					Context: cfg.Output.Context,
				})
			}
			return nil
		},
	}
}

func describeToken(t token.Token) string {
	switch t.Kind {
	case token.Keyword:
		return t.Keyword.String()
	case token.Ident:
		return t.Ident
	case token.Punct:
		return t.Punct.String()
	case token.Int:
		return fmt.Sprintf("%d", t.IntVal)
	case token.Str:
		return fmt.Sprintf("%q", t.StrVal)
	case token.Char:
		return fmt.Sprintf("%q", t.ChrVal)
	default:
		return ""
	}
}
