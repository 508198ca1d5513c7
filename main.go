package main

import (
	"context"
	"fmt"
	"os"

	"github.com/filetug/explorer/pkg/explorer"
	"github.com/filetug/explorer/pkg/files"
	"github.com/filetug/explorer/pkg/files/osfile"
	"github.com/filetug/explorer/pkg/fsutils"
	"github.com/filetug/explorer/pkg/ftlog"
	"github.com/filetug/explorer/pkg/terminal"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

var osExit = os.Exit
var openScreen = terminal.Open
var newStore = func() files.Store { return osfile.NewStore() }

func main() {
	defer func() {
		if r := recover(); r != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Recovered from panic: %v\n", r)
			osExit(1)
		}
	}()
	if err := newRootCommand().Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		osExit(1)
	}
}

func newRootCommand() *cobra.Command {
	var logFile string
	var debug bool
	cmd := &cobra.Command{
		Use:           "explorer [dir]",
		Short:         "Browse and rename files in the terminal",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return run(cmd.Context(), fsutils.ExpandHome(dir), logFile, debug)
		},
	}
	cmd.Flags().StringVar(&logFile, "log", "", "append logs to `file`")
	cmd.Flags().BoolVar(&debug, "debug", false, "log every key")
	return cmd
}

func run(ctx context.Context, dir, logFile string, debug bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log, closeLog, err := ftlog.New(logFile, debug)
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer func() {
		_ = closeLog()
	}()

	if err = checkDir(dir); err != nil {
		return err
	}

	browser := explorer.NewBrowser(newStore(), log)
	if err = browser.LoadDirectory(ctx, dir); err != nil {
		return err
	}

	screen, err := openScreen()
	if err != nil {
		return err
	}
	return terminal.With(screen, func(screen tcell.Screen) error {
		return explorer.NewApp(screen, browser, log).Run(ctx)
	})
}

func checkDir(dir string) error {
	exists, err := fsutils.DirExists(dir)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", explorer.ErrDirectoryUnreadable, dir, err)
	}
	if !exists {
		return fmt.Errorf("%w: %s: not an existing directory", explorer.ErrDirectoryUnreadable, dir)
	}
	return nil
}
