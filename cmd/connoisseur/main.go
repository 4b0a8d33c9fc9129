package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/glabrego/connoisseur/internal/app"
	"github.com/glabrego/connoisseur/internal/config"
	"github.com/glabrego/connoisseur/internal/journal"
	"github.com/glabrego/connoisseur/internal/logutils"
	"github.com/glabrego/connoisseur/internal/prompt"
	"github.com/glabrego/connoisseur/internal/shell"
	"github.com/glabrego/connoisseur/internal/storage"
)

// Populated at build time via -ldflags.
var version = "dev"

const storageTimeout = 15 * time.Second

type Flags struct {
	ConfigPath string
	DataDir    string
	DBPath     string
	LogLevel   string
	LogFile    string
	PromptMode string

	// Loaded in the Before hook.
	Config  config.Config
	Service *app.Service
}

func main() {
	var (
		flags     = &Flags{}
		repo      *storage.Repository
		logCloser func()
	)

	root := &cli.Command{
		Name:      "connoisseur",
		Usage:     "Keep a journal of things you tried and things you were told to try",
		UsageText: "connoisseur [global options] [command]",
		Description: `Connoisseur keeps reviews of food, books, films and anything else you have
tried, next to recommendations you want to get to.

Run 'connoisseur' with no arguments to start the interactive shell.
Run 'connoisseur browse' for a full-screen view of the journal.`,
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("CONNOISSEUR_CONFIG"),
				Value:       config.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "directory holding the journal database and log",
				Sources:     cli.EnvVars("CONNOISSEUR_DATA_DIR"),
				Value:       config.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
			&cli.StringFlag{
				Name:        "db",
				Usage:       "path to the journal database (overrides storage.path)",
				Destination: &flags.DBPath,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error)",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to <data-dir>/connoisseur.log)",
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "prompt",
				Usage:       "how entries are asked for: auto, form or plain",
				Destination: &flags.PromptMode,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			cfg = applyFlagOverrides(cfg, flags)
			if err := cfg.Validate(); err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			logger, closer, err := logutils.New(cfg.Log.Level, cfg.Log.File)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			repo, err = storage.NewRepository(cfg.Storage.Path)
			if err != nil {
				return ctx, fmt.Errorf("open database: %w", err)
			}

			initCtx, cancel := context.WithTimeout(ctx, storageTimeout)
			defer cancel()
			if err := repo.Init(initCtx); err != nil {
				return ctx, fmt.Errorf("storage schema: %w", err)
			}
			if err := repo.CheckWritable(initCtx); err != nil {
				return ctx, fmt.Errorf("storage write check failed (%w); verify the database path is writable: %s", err, cfg.Storage.Path)
			}

			flags.Service = app.NewService(repo, app.Defaults{
				MaxRating:  cfg.Rating.Max,
				SortMethod: journal.SortMethod(cfg.Sort.Default),
				Display:    journal.DisplayMode(cfg.Display.Default),
			}, log.With().Str("component", "app").Logger())

			log.Debug().Str("db", cfg.Storage.Path).Str("config", flags.ConfigPath).Msg("startup complete")
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if repo != nil {
				if err := repo.Close(); err != nil {
					log.Error().Err(err).Msg("failed to close database")
					return err
				}
			}
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() > 0 {
				return fmt.Errorf("unknown command %q. Run 'connoisseur --help' for usage", c.Args().First())
			}
			return runShell(ctx, flags)
		},
	}

	root = NewBrowseCmd(flags).Register(root)
	root = NewExportCmd(flags).Register(root)
	root = NewImportCmd(flags).Register(root)

	if err := root.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func applyFlagOverrides(cfg config.Config, flags *Flags) config.Config {
	if flags.DBPath != "" {
		cfg.Storage.Path = flags.DBPath
	}
	if flags.LogLevel != "" {
		cfg.Log.Level = flags.LogLevel
	}
	if flags.LogFile != "" {
		cfg.Log.File = flags.LogFile
	}
	if flags.PromptMode != "" {
		cfg.Prompt.Mode = flags.PromptMode
	}
	if cfg.Log.File != "" && !filepath.IsAbs(cfg.Log.File) {
		cfg.Log.File = filepath.Join(flags.DataDir, cfg.Log.File)
	}
	return cfg
}

func runShell(ctx context.Context, flags *Flags) error {
	svc := flags.Service

	openCtx, cancel := context.WithTimeout(ctx, storageTimeout)
	j, err := svc.Open(openCtx)
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not load your journal (%v), starting empty\n", err)
	}

	in := bufio.NewReader(os.Stdin)
	sh := shell.New(j.Reviews, j.Recommendations, shell.Options{
		Prompter: prompt.New(flags.Config.Prompt.Mode, in, os.Stdout),
		Saver:    timeoutSaver{svc: svc},
		Out:      os.Stdout,
		Logger:   log.With().Str("component", "shell").Logger(),
		Width:    terminalWidth(),
	})
	return sh.Run(ctx, in)
}

// timeoutSaver bounds each save so a locked database cannot hang the shell.
type timeoutSaver struct {
	svc *app.Service
}

func (s timeoutSaver) Save(ctx context.Context, snap journal.Snapshot) error {
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()
	return s.svc.Save(ctx, snap)
}

func terminalWidth() int {
	if !prompt.IsTerminal(os.Stdout) {
		return 0
	}
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return width
}
