package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"formulae/internal/format"
)

func newFmtCmd(a *app) *cobra.Command {
	var (
		file  string
		write bool
	)
	cmd := &cobra.Command{
		Use:   "fmt [formula]",
		Short: "Print a formula, or every formula of a file, in canonical form",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				src, err := formulaArg(args, cmd.InOrStdin())
				if err != nil {
					return err
				}
				out, err := format.Source(src, a.cfg.ParserOptions()...)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			}

			if len(args) > 0 {
				return errors.New("fmt takes either a formula or --file, not both")
			}
			text, err := readFile(file)
			if err != nil {
				return err
			}
			out, errs := format.Lines(text, a.cfg.ParserOptions()...)
			if len(errs) > 0 {
				lines := make([]int, 0, len(errs))
				for n := range errs {
					lines = append(lines, n)
				}
				sort.Ints(lines)
				for _, n := range lines {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s:%d: %v\n", file, n, errs[n])
				}
				return errors.Errorf("%s: %d formula(s) could not be formatted", file, len(errs))
			}
			if !write {
				fmt.Fprint(cmd.OutOrStdout(), out)
				return nil
			}
			if out == text {
				return nil
			}
			if err := os.WriteFile(file, []byte(out), 0o644); err != nil {
				return errors.Wrapf(err, "write %s", file)
			}
			logger().Infof("formatted %s", file)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "format every formula line of this file")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "with --file, write the result back to the file")
	return cmd
}
