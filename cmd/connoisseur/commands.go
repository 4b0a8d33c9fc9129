package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/glabrego/connoisseur/internal/tui"
)

type BrowseCmd struct {
	flags *Flags
}

func NewBrowseCmd(flags *Flags) *BrowseCmd {
	return &BrowseCmd{flags: flags}
}

func (cmd *BrowseCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "browse",
		Usage:     "Browse reviews and recommendations full-screen",
		UsageText: "connoisseur browse",
		Action:    cmd.run,
	})
	return app
}

func (cmd *BrowseCmd) run(ctx context.Context, c *cli.Command) error {
	svc := cmd.flags.Service

	openCtx, cancel := context.WithTimeout(ctx, storageTimeout)
	j, err := svc.Open(openCtx)
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not load your journal (%v), starting empty\n", err)
	}

	model := tui.NewModel(j.Reviews, j.Recommendations, timeoutSaver{svc: svc}.Save)
	final, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	if m, ok := final.(tui.Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}

type ExportCmd struct {
	flags *Flags

	out string
}

func NewExportCmd(flags *Flags) *ExportCmd {
	return &ExportCmd{flags: flags}
}

func (cmd *ExportCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "export",
		Usage:     "Write the journal as YAML",
		UsageText: "connoisseur export [--out file]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "out",
				Aliases:     []string{"o"},
				Usage:       "file to write instead of stdout",
				Destination: &cmd.out,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *ExportCmd) run(ctx context.Context, c *cli.Command) error {
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	if cmd.out == "" {
		return cmd.flags.Service.Export(ctx, os.Stdout)
	}

	f, err := os.Create(cmd.out)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err := cmd.flags.Service.Export(ctx, f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Journal exported to %s\n", cmd.out)
	return nil
}

type ImportCmd struct {
	flags *Flags
}

func NewImportCmd(flags *Flags) *ImportCmd {
	return &ImportCmd{flags: flags}
}

func (cmd *ImportCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "import",
		Usage:     "Replace the journal with a YAML export",
		UsageText: "connoisseur import <file>",
		Description: `Reads a file written by 'connoisseur export'. The whole file is checked
before anything is stored, and on success it replaces the current journal.`,
		Action: cmd.run,
	})
	return app
}

func (cmd *ImportCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("import takes exactly one file argument")
	}

	f, err := os.Open(c.Args().First())
	if err != nil {
		return fmt.Errorf("open import file: %w", err)
	}
	defer func() { _ = f.Close() }()

	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	snap, err := cmd.flags.Service.Import(ctx, f)
	if err != nil {
		return err
	}
	fmt.Printf("Imported %d reviews and %d recommendations\n", len(snap.Reviews), len(snap.Recommendations))
	return nil
}
