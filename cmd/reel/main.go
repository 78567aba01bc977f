package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"

	"reel/cmd/reel/render"
	"reel/internal/catalog"
	"reel/internal/config"
	"reel/internal/logging"
)

type CLI struct {
	Add     AddCmd     `cmd:"" aliases:"a" help:"Add a movie to the catalog"`
	List    ListCmd    `cmd:"" aliases:"ls" help:"List, search, filter and sort movies"`
	Show    ShowCmd    `cmd:"" help:"Show movie details"`
	Edit    EditCmd    `cmd:"" aliases:"e" help:"Edit a movie"`
	Rm      RmCmd      `cmd:"" help:"Remove movies from the catalog"`
	Stats   StatsCmd   `cmd:"" help:"Show catalog statistics"`
	Report  ReportCmd  `cmd:"" help:"Report every movie sharing a field value"`
	Genres  GenresCmd  `cmd:"" help:"List known genres"`
	Options OptionsCmd `cmd:"" help:"List the values present for a field"`
	Open    OpenCmd    `cmd:"" aliases:"o" help:"Open the catalog file in your editor"`
	Path    PathCmd    `cmd:"" help:"Print the catalog file path"`

	Completion CompletionCmd `cmd:"" help:"Generate shell completions"`

	CatalogPath string `name:"catalog" short:"c" help:"Path to catalog file (.yaml, or .db for SQLite)"`
	ConfigPath  string `name:"config" help:"Path to config file"`
	LogLevel    string `name:"log-level" help:"Log level (debug, info, warn, error)"`
}

func (c *CLI) resolveConfig() (*config.Config, error) {
	configPath := c.ConfigPath
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}

	cfg, _, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if c.CatalogPath != "" {
		path, err := config.ExpandPath(c.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("invalid catalog path: %w", err)
		}
		cfg.Catalog.Path = path
	}
	if c.LogLevel != "" {
		cfg.Logging.Level = strings.ToLower(strings.TrimSpace(c.LogLevel))
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func (c *CLI) AfterApply(ctx *kong.Context) error {
	cfg, err := c.resolveConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	store, err := openStore(cfg, logger)
	if err != nil {
		return err
	}

	globals := &Globals{
		Store:       store,
		Out:         os.Stdout,
		Log:         logger,
		Render:      render.NewLipglossRendererAuto(os.Stdout),
		ReportDir:   cfg.Report.Dir,
		Interactive: isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd()),
	}
	ctx.Bind(globals)
	return nil
}

// openStore binds a store to the configured catalog and loads it. Unreadable
// catalogs start empty with a warning.
func openStore(cfg *config.Config, logger *slog.Logger) (*catalog.Store, error) {
	backend, err := catalog.OpenBackend(cfg.BackendKind(), cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}

	log := logging.NewComponentLogger(logger, "catalog")
	store := catalog.NewStore(backend)
	result, err := store.Load()
	switch result {
	case catalog.LoadMissing:
		log.Debug("no catalog yet, starting empty", "path", store.Path())
	case catalog.LoadCorrupt:
		log.Warn("catalog could not be read, starting empty", "path", store.Path(), logging.Error(err))
	default:
		log.Debug("catalog loaded", "path", store.Path(), "movies", store.Len())
	}
	return store, nil
}

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("reel"),
		kong.Description("Personal movie catalog"),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
