package app

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/vk/keyloom/internal/config"
	"github.com/vk/keyloom/internal/ctxlog"
	"github.com/vk/keyloom/internal/fsutil"
)

// Run loads and validates the configured keymap path. A directory checks
// every .kbd.hcl file under it, failing on the first broken one; a file is
// loaded and summarized. The runtime engine picks up the returned state via
// the loader; Run itself only reports.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "path", appConfig.ConfigPath)

	info, err := os.Stat(appConfig.ConfigPath)
	if err != nil {
		return fmt.Errorf("cannot access %s: %w", appConfig.ConfigPath, err)
	}

	if info.IsDir() {
		return a.checkDirectory(ctx, appConfig.ConfigPath)
	}
	return a.checkFile(ctx, appConfig.ConfigPath)
}

func (a *App) checkDirectory(ctx context.Context, dir string) error {
	files, err := fsutil.FindFilesByExtension(dir, ".kbd.hcl")
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", dir, err)
	}
	if len(files) == 0 {
		a.logger.Warn("No .kbd.hcl files found in path.", "path", dir)
		return nil
	}
	for _, file := range files {
		if err := a.checkFile(ctx, file); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) checkFile(ctx context.Context, path string) error {
	cfg, err := a.loader.Load(ctx, path)
	if err != nil {
		return err
	}
	a.printSummary(path, cfg)
	return nil
}

// printSummary renders a deterministic per-layer report.
func (a *App) printSummary(path string, cfg *config.Config) {
	fmt.Fprintf(a.outW, "%s: ok (%d layers, entry %q)\n", path, len(cfg.Layers), cfg.Entry)

	names := make([]string, 0, len(cfg.Layers))
	for name := range cfg.Layers {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(a.outW, "  layer %s: %d bindings\n", name, len(cfg.Layers[name]))
	}
}
