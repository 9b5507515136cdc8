package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"formulae/internal/parser"
	"formulae/internal/printer"
	"formulae/internal/resolve"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		mode         string
		resolveCalls bool
	)
	cmd := &cobra.Command{
		Use:   "render <formula>",
		Short: "Render a formula as data lookups or as names",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, ok := printer.ParseMode(mode)
			if !ok {
				return errors.Errorf("unknown mode %q (want lookup or name)", mode)
			}
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
			p := printer.New(m, a.cfg.PrinterOptions()...)
			fmt.Fprintln(cmd.OutOrStdout(), p.Print(expr))
			return nil
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", printer.ModeLookup.String(), "rendering mode: lookup or name")
	cmd.Flags().BoolVar(&resolveCalls, "resolve", false, "resolve plain callees before rendering")
	return cmd
}
