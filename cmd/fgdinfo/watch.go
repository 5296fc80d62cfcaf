package main

import (
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file.fgd>",
	Short: "Reload the registry whenever an FGD file in its directory changes",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]
	dir, _ := splitRoot(path)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	reload(path)

	// Debounce: editors fire several events per save.
	const debounce = 100 * time.Millisecond
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()
	var lastEvent time.Time
	dirty := false

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(strings.ToLower(event.Name), ".fgd") {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) {
				lastEvent = time.Now()
				dirty = true
			}

		case <-ticker.C:
			if dirty && time.Since(lastEvent) >= debounce {
				dirty = false
				reload(path)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			// Watch errors are non-fatal.
			slog.Debug("watch error", "err", err)
		}
	}
}

func reload(path string) {
	reg, err := loadRegistry(path)
	if err != nil {
		slog.Error("load failed", "file", path, "err", err)
		return
	}
	slog.Info("registry loaded", "file", path, "entities", len(reg.Entities))
}
