package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/qalog"
	"github.com/fwojciec/qalog/fs"
	"github.com/fwojciec/qalog/goquery"
	"github.com/fwojciec/qalog/html"
	qalhttp "github.com/fwojciec/qalog/http"
	"github.com/fwojciec/qalog/markdown"
	qalslog "github.com/fwojciec/qalog/slog"
	"github.com/fwojciec/qalog/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by the conversion history.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("qalog"),
		kong.Description("Convert exported question/answer transcripts to JSON."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'qalog --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	if kongCtx.Selected() == nil {
		return fmt.Errorf("no command specified. Run 'qalog --help' to see available commands")
	}
	cmd := kongCtx.Selected().Name

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	store := fs.NewDocumentStore(cli.Files)
	deps.Logger = logger
	deps.Store = store
	deps.Documents = store
	deps.Layout = store

	switch cmd {
	case "download", "sync":
		deps.Manifest, err = loadManifest(cli.Manifest)
		if err != nil {
			return fmt.Errorf("failed to load manifest: %w", err)
		}
		deps.Downloader = qalslog.NewLoggingDownloader(qalhttp.NewDownloader(qalhttp.WithLogger(logger)), logger)
		deps.Unpacker = qalslog.NewLoggingUnpacker(fs.NewUnpacker(), logger)

	case "convert", "history":
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set QALOG_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()
		deps.Conversions = sqlite.NewConversionService(m.DB)

		var opts []fs.WriterOption
		if cli.Convert.Markdown {
			opts = append(opts, fs.WithRenderer(markdown.NewRenderer()))
		}
		deps.Extractor = qalslog.NewLoggingExtractor(
			html.NewExtractor(html.WithPermissive(cli.Convert.Permissive)), logger)
		deps.Writer = qalslog.NewLoggingResultWriter(fs.NewWriter(opts...), logger)

	case "images":
		deps.Auditor = goquery.NewImageAuditor()
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("QALOG_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "qalog.db"
	}
	dir := filepath.Join(home, ".qalog")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "qalog.db")
}

// findDocuments resolves names to document folders, or lists every folder
// when names is empty.
func findDocuments(deps *Dependencies, names []string) ([]*qalog.Document, error) {
	if len(names) == 0 {
		return deps.Documents.FindDocuments(deps.Ctx)
	}

	docs := make([]*qalog.Document, 0, len(names))
	for _, name := range names {
		doc, err := deps.Documents.FindDocumentByName(deps.Ctx, name)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
