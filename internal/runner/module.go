package runner

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/moka-lang/moka/internal/logging"
	"github.com/moka-lang/moka/internal/manifest"
)

// logModule reports the descriptor of the module folder at dir when debug
// logging is on. A missing or broken descriptor is logged, never returned:
// archive support and the engine decide what a usable module is.
func logModule(ctx context.Context, dir string) {
	logger := logging.FromContext(ctx)
	if logger.GetLevel() > log.DebugLevel {
		return
	}
	m, err := manifest.Load(dir)
	if err != nil {
		logger.Debug("module descriptor unavailable", "module", dir, "err", err)
		return
	}
	logger.Debug("module descriptor", "module", dir, "name", m.Meta.Name, "version", m.Meta.Version)
}
