package app

import (
	"context"
	"fmt"

	"github.com/vk/inigen/internal/ctxlog"
	"github.com/vk/inigen/internal/fsutil"
	"github.com/vk/inigen/internal/ini"
)

// Run executes the load → render → write pipeline. It is strictly
// sequential and returns the first error; no partial destination file is
// left behind on a failed write.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	a.logger.Info("Reading input...", "path", a.config.InputPath)
	model, err := a.loader.Load(ctx, a.config.InputPath)
	if err != nil {
		return fmt.Errorf("failed to load input: %w", err)
	}
	a.logger.Debug("Input translated into unified model.", "entries", model.Len())

	a.logger.Info("Converting...")
	text := ini.Render(model)

	sections := 0
	for _, e := range model.Entries() {
		if e.IsSection() {
			sections++
		}
	}
	if skipped := model.Len() - sections; skipped > 0 {
		a.logger.Warn("Skipped top-level entries that are not mappings.", "count", skipped)
	}

	a.logger.Info("Writing output...", "path", a.config.OutputPath)
	if err := fsutil.WriteFileAtomic(a.config.OutputPath, []byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	a.logger.Info("Conversion finished.", "sections", sections, "bytes", len(text))
	a.logger.Debug("App.Run method finished.")
	return nil
}
