package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"formulae/internal/diag"
	"formulae/internal/lsp"
)

// errCheckFailed is returned when diagnostics were printed; main exits 1
// without repeating them.
var errCheckFailed = errors.New("check failed")

var (
	colorError = lipgloss.Color("#EF4444")
	colorWarn  = lipgloss.Color("#F59E0B")
	colorMuted = lipgloss.Color("#6B7280")
	colorOK    = lipgloss.Color("#10B981")
)

type checkStyles struct {
	enabled bool
	path    lipgloss.Style
	err     lipgloss.Style
	warn    lipgloss.Style
	code    lipgloss.Style
	ok      lipgloss.Style
}

func newCheckStyles(color bool) checkStyles {
	return checkStyles{
		enabled: color,
		path:    lipgloss.NewStyle().Bold(true),
		err:     lipgloss.NewStyle().Foreground(colorError).Bold(true),
		warn:    lipgloss.NewStyle().Foreground(colorWarn).Bold(true),
		code:    lipgloss.NewStyle().Foreground(colorMuted),
		ok:      lipgloss.NewStyle().Foreground(colorOK),
	}
}

func (s checkStyles) paint(st lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return st.Render(text)
}

func (s checkStyles) render(path string, d diag.Diagnostic) string {
	loc := s.paint(s.path, fmt.Sprintf("%s:%d:%d:", path, d.Range.Line, d.Range.Col))
	sev := d.Severity.String()
	if d.Severity == diag.SeverityError {
		sev = s.paint(s.err, sev)
	} else {
		sev = s.paint(s.warn, sev)
	}
	if d.Code == "" {
		return fmt.Sprintf("%s %s: %s", loc, sev, d.Message)
	}
	return fmt.Sprintf("%s %s %s: %s", loc, sev, s.paint(s.code, d.Code), d.Message)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [file...]",
		Short: "Parse and lint every formula line of the given files (stdin when none)",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			styles := newCheckStyles(isTerminal(out))

			type input struct{ path, text string }
			var inputs []input
			if len(args) == 0 {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return errors.Wrap(err, "read stdin")
				}
				inputs = append(inputs, input{"<stdin>", string(b)})
			}
			for _, path := range args {
				text, err := readFile(path)
				if err != nil {
					return err
				}
				inputs = append(inputs, input{path, text})
			}

			failed, total := 0, 0
			for _, in := range inputs {
				doc := lsp.Analyze(in.text, a.cfg.ParserOptions()...)
				total += len(doc.Lines)
				for _, d := range doc.Diagnostics() {
					fmt.Fprintln(out, styles.render(in.path, d))
					if d.Severity == diag.SeverityError {
						failed++
					}
				}
			}
			logger().Debugf("checked %d formula(s), %d failed", total, failed)
			if failed > 0 {
				return errCheckFailed
			}
			fmt.Fprintln(out, styles.paint(styles.ok, fmt.Sprintf("ok: %d formula(s)", total)))
			return nil
		},
	}
}
