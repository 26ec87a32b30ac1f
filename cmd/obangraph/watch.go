package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// watchDebounce is how long to wait for further writes before re-running
// the transform; editors and exporters write in bursts.
const watchDebounce = 500 * time.Millisecond

func watchCmd() *cobra.Command {
	opts := &transformOptions{}
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-run the transform whenever an input file changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd.Context(), opts, slog.Default())
		},
	}
	opts.register(cmd)
	return cmd
}

func runWatch(ctx context.Context, opts *transformOptions, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	files, err := expandInputs(opts.inputs)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, file := range files {
		if err := watcher.Add(file); err != nil {
			return err
		}
	}

	// Initial run, then once per debounced burst of changes.
	if err := runTransform(opts, logger); err != nil {
		logger.Error("transform failed", slog.String("error", err.Error()))
	}

	var timer *time.Timer
	fire := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			logger.Info("shutting down")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			logger.Debug("input changed", slog.String("file", event.Name))
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", slog.String("error", err.Error()))
		case <-fire:
			if err := runTransform(opts, logger); err != nil {
				logger.Error("transform failed", slog.String("error", err.Error()))
			}
		}
	}
}
