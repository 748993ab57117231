package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rafaelfne/pressroom-sub002/internal/docfile"
	"github.com/rafaelfne/pressroom-sub002/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch <document>",
	Short: "Re-validate a template document on every save",
	Long: `Watch a template document and re-validate it whenever it changes.

Rapid saves are debounced (documents.watch_debounce_ms). The watch runs
until interrupted with Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}

		path := args[0]
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("cannot watch %s: %w", path, err)
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		debounce := time.Duration(cfg.Documents.WatchDebounceMs) * time.Millisecond
		w, err := watcher.NewDocumentWatcher(debounce, logger)
		if err != nil {
			return err
		}
		defer w.Stop()

		w.AddFilter(watcher.DocumentFilter)
		w.AddFilter(watcher.PathFilter(path))
		w.AddHandler(func(events []watcher.ChangeEvent) error {
			doc, err := docfile.LoadDocument(path)
			if err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", path, err)
				return nil
			}
			printDiagnostics(cmd, path, docfile.Validate(doc))
			return nil
		})

		// Watch the containing directory so editors that replace the file
		// on save keep producing events.
		if err := w.AddPath(filepath.Dir(path)); err != nil {
			return err
		}
		w.Start(ctx)

		logger.Info(ctx, "watching document", "path", path, "debounce_ms", cfg.Documents.WatchDebounceMs)
		fmt.Fprintf(cmd.OutOrStdout(), "watching %s (Ctrl-C to stop)\n", path)

		// Validate once up front so the first report doesn't wait for a save.
		if doc, err := docfile.LoadDocument(path); err == nil {
			printDiagnostics(cmd, path, docfile.Validate(doc))
		}

		<-ctx.Done()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
