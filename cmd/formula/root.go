package main

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"formulae/internal/config"
)

const version = "0.1.0"

func logger() commonlog.Logger { return commonlog.GetLogger("formula.cli") }

// app carries the state shared by every subcommand.
type app struct {
	cfgFile   string
	verbosity int
	logFile   string

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default()}

	root := &cobra.Command{
		Use:   "formula",
		Short: "Parse and render Wilkinson model formulas",
		Long: `formula parses model formulas such as "y ~ x + (1 | g)" and renders
them either as lookups into a data container or as bare variable names.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./formula.toml or ./formula.yaml)")
	root.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "log verbosity; repeat for more")
	root.PersistentFlags().StringVar(&a.logFile, "log-file", "", "write logs to this file instead of stderr")

	root.AddCommand(
		newTokensCmd(),
		newASTCmd(a),
		newRenderCmd(a),
		newFmtCmd(a),
		newCheckCmd(a),
		newReplCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	path := a.cfgFile
	if path == "" {
		path = config.Find(".")
	}
	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	verbosity := a.cfg.Log.Verbosity
	if a.verbosity > 0 {
		verbosity = a.verbosity
	}
	logFile := a.cfg.Log.File
	if a.logFile != "" {
		logFile = a.logFile
	}
	var logPath *string
	if logFile != "" {
		logPath = &logFile
	}
	commonlog.Configure(verbosity, logPath)

	if path != "" {
		logger().Infof("using config %s", path)
	}
	return nil
}

// formulaArg joins the positional arguments into one formula. A single "-"
// reads the formula from in.
func formulaArg(args []string, in io.Reader) (string, error) {
	if len(args) == 1 && args[0] == "-" {
		b, err := io.ReadAll(in)
		if err != nil {
			return "", errors.Wrap(err, "read stdin")
		}
		return string(b), nil
	}
	src := strings.Join(args, " ")
	if strings.TrimSpace(src) == "" {
		return "", errors.New("no formula given")
	}
	return src, nil
}

func readFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "read %s", path)
	}
	return string(b), nil
}
