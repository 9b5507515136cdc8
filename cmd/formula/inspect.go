package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"formulae/internal/ast"
	"formulae/internal/lexer"
	"formulae/internal/parser"
	"formulae/internal/resolve"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <formula>",
		Short: "Print the tokens of a formula",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := formulaArg(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			toks, err := lexer.Tokenize(src)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, tok := range toks {
				fmt.Fprintf(out, "%d:%d\t%s\t%s\n", tok.Line, tok.Col, tok.Type, tok.Lexeme)
			}
			return nil
		},
	}
}

func newASTCmd(a *app) *cobra.Command {
	var resolveCalls bool
	cmd := &cobra.Command{
		Use:   "ast <formula>",
		Short: "Print the syntax tree of a formula",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := formulaArg(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			expr, err := parser.ParseString(src, a.cfg.ParserOptions()...)
			if err != nil {
				return err
			}
			if resolveCalls {
				expr = resolve.Calls(expr)
			}
			return ast.Dump(cmd.OutOrStdout(), expr)
		},
	}
	cmd.Flags().BoolVar(&resolveCalls, "resolve", false, "resolve plain callees before printing")
	return cmd
}
