package main

import (
	"fmt"
	"os"

	"formulae/internal/config"
	"formulae/internal/lsp"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
)

const (
	lsName  = "formula-lsp"
	version = "0.1"
)

var (
	store   = lsp.NewStore()
	handler protocol.Handler
	cfg     = config.Default()
)

func logger() commonlog.Logger { return commonlog.GetLogger("formula.lsp") }

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		verbosity int
		logFile   string
	)
	cmd := &cobra.Command{
		Use:           lsName,
		Short:         "Language server for .formula files over stdio",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// stdout carries the protocol; logs go to stderr or the log file.
			var path *string
			if logFile != "" {
				path = &logFile
			}
			commonlog.Configure(verbosity, path)
			return serve()
		},
	}
	cmd.Flags().CountVarP(&verbosity, "verbose", "v", "log verbosity; repeat for more")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")
	return cmd
}

func serve() error {
	handler = protocol.Handler{
		Initialize:                     initialize,
		Initialized:                    initialized,
		Shutdown:                       shutdown,
		TextDocumentDidOpen:            textDocumentDidOpen,
		TextDocumentDidChange:          textDocumentDidChange,
		TextDocumentDidSave:            textDocumentDidSave,
		TextDocumentDidClose:           textDocumentDidClose,
		TextDocumentHover:              textDocumentHover,
		TextDocumentFormatting:         textDocumentFormatting,
		TextDocumentSemanticTokensFull: textDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)
	if err := s.RunStdio(); err != nil {
		logger().Errorf("server stopped: %s", err)
		return err
	}
	return nil
}

func initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	root := "."
	if params.RootURI != nil {
		root = lsp.UriToPath(*params.RootURI)
	} else if params.RootPath != nil {
		root = *params.RootPath
	}
	if p := config.Find(root); p != "" {
		loaded, err := config.Load(p)
		if err != nil {
			logger().Warningf("ignoring config: %s", err)
		} else {
			cfg = loaded
			logger().Infof("loaded config %s", p)
		}
	}

	full := protocol.TextDocumentSyncKindFull
	caps := protocol.ServerCapabilities{
		TextDocumentSync: &protocol.TextDocumentSyncOptions{
			OpenClose: &protocol.True,
			Change:    &full,
			Save:      protocol.SaveOptions{IncludeText: &protocol.False},
		},
		SemanticTokensProvider: &protocol.SemanticTokensOptions{
			Legend: protocol.SemanticTokensLegend{
				TokenTypes:     lsp.SemanticTokenTypes,
				TokenModifiers: lsp.SemanticTokenModifiers,
			},
			Full:  true,
			Range: false,
		},
		DocumentFormattingProvider: true,
		HoverProvider:              true,
	}

	return protocol.InitializeResult{
		Capabilities: caps,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: ptrString(version),
		},
	}, nil
}

func initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func shutdown(ctx *glsp.Context) error {
	return nil
}

func textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	return update(ctx, string(params.TextDocument.URI), params.TextDocument.Text)
}

func textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	text, ok := extractFullText(params.ContentChanges[len(params.ContentChanges)-1])
	if !ok {
		return nil
	}
	return update(ctx, string(params.TextDocument.URI), text)
}

func textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	if doc, ok := store.Get(uri); ok {
		return publishDiagnostics(ctx, uri, doc)
	}
	return nil
}

func textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	store.Delete(uri)
	return publishDiagnostics(ctx, uri, nil)
}

func textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc, ok := store.Get(string(params.TextDocument.URI))
	if !ok {
		return nil, nil
	}
	return lsp.HoverAt(doc, params.Position, cfg.PrinterOptions()...), nil
}

func textDocumentFormatting(ctx *glsp.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc, ok := store.Get(string(params.TextDocument.URI))
	if !ok {
		return []protocol.TextEdit{}, nil
	}
	return lsp.FormatEdits(doc, cfg.ParserOptions()...), nil
}

func textDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc, ok := store.Get(string(params.TextDocument.URI))
	if !ok {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{Data: lsp.EncodeSemanticTokens(lsp.SemanticTokens(doc))}, nil
}

func update(ctx *glsp.Context, uri, text string) error {
	if !lsp.IsFormulaURI(uri) {
		logger().Debugf("skipping %s", uri)
		return nil
	}
	doc := lsp.Analyze(text, cfg.ParserOptions()...)
	store.Set(uri, doc)
	return publishDiagnostics(ctx, uri, doc)
}

func publishDiagnostics(ctx *glsp.Context, uri string, doc *lsp.Document) error {
	diagnostics := []protocol.Diagnostic{}
	if doc != nil {
		diagnostics = lsp.ToLspDiagnostics(doc.Text, doc.Diagnostics())
		logger().Debugf("%s: %d diagnostics", uri, len(diagnostics))
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentUri(uri),
		Diagnostics: diagnostics,
	})
	return nil
}

func extractFullText(change any) (string, bool) {
	switch typed := change.(type) {
	case protocol.TextDocumentContentChangeEventWhole:
		return typed.Text, true
	case protocol.TextDocumentContentChangeEvent:
		return typed.Text, true
	default:
		return "", false
	}
}

func ptrString(s string) *string { return &s }
