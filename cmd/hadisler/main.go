package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/hadisler"
	"github.com/fwojciec/hadisler/bubbletea"
	"github.com/fwojciec/hadisler/fs"
	"github.com/fwojciec/hadisler/goquery"
	"github.com/fwojciec/hadisler/html"
	"github.com/fwojciec/hadisler/htmltomarkdown"
	"github.com/fwojciec/hadisler/lipgloss"
	hslog "github.com/fwojciec/hadisler/slog"
	"github.com/fwojciec/hadisler/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Default paths, overridden by --db and --config.
	DBPath     string
	ConfigPath string

	// Services for end-to-end testing.
	Catalog     hadisler.CatalogService
	Preferences hadisler.PreferenceService
	Browse      func(ctx context.Context, session *hadisler.Session) error

	logFile *os.File
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:     defaultDBPath(),
		ConfigPath: fs.DefaultPreferencesPath(),
	}
}

// Close releases the log file, if one was opened.
func (m *Main) Close() error {
	if m.logFile != nil {
		return m.logFile.Close()
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
		kong.Name("hadisler"),
		kong.Description("Hadis Külliyatı: browse and search a hadith collection."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars{
			"db":     m.DBPath,
			"config": m.ConfigPath,
		},
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) > 0 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	interactive := strings.HasPrefix(kongCtx.Command(), "browse")

	logger, err := m.logger(cli, stderr, interactive)
	if err != nil {
		return err
	}
	defer m.Close()

	catalog := m.Catalog
	if catalog == nil {
		catalog = sqlite.NewCatalogService(cli.DB)
	}
	prefs := m.Preferences
	if prefs == nil {
		prefs = fs.NewPreferenceService(cli.Config)
	}

	deps.DBPath = cli.DB
	deps.Logger = logger
	deps.Catalog = hslog.NewLoggingCatalogService(catalog, logger)
	deps.Preferences = hslog.NewLoggingPreferenceService(prefs, logger)
	deps.Renderer = hslog.NewLoggingRenderer(html.NewRenderer(), logger)
	deps.TerminalRenderer = hslog.NewLoggingRenderer(lipgloss.NewRenderer(nil), logger)
	deps.Converter = htmltomarkdown.NewConverter()
	deps.Extractor = goquery.NewTextExtractor()
	deps.Browse = m.Browse
	if deps.Browse == nil {
		deps.Browse = func(ctx context.Context, session *hadisler.Session) error {
			return bubbletea.Run(ctx, session, bubbletea.Config{})
		}
	}

	return kongCtx.Run(deps)
}

// logger writes to --log when given. Otherwise batch commands log to
// stderr with --verbose and everything else is discarded, since the
// terminal UI owns the screen.
func (m *Main) logger(cli *CLI, stderr io.Writer, interactive bool) (*slog.Logger, error) {
	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	switch {
	case cli.Log != "":
		f, err := os.OpenFile(cli.Log, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %q: %w", cli.Log, err)
		}
		m.logFile = f
		return slog.New(slog.NewTextHandler(f, opts)), nil
	case cli.Verbose && !interactive:
		return slog.New(slog.NewTextHandler(stderr, opts)), nil
	default:
		return slog.New(slog.DiscardHandler), nil
	}
}

// defaultDBPath returns hadisler.db next to the executable.
func defaultDBPath() string {
	exe, err := os.Executable()
	if err != nil {
		return sqlite.DefaultFile
	}
	return filepath.Join(filepath.Dir(exe), sqlite.DefaultFile)
}
