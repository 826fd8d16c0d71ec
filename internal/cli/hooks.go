package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/quotecraft/pkg/observability"
)

// logHooks reports render stages and cache events as debug log lines.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnStageStart(context.Context, string) {}

func (h logHooks) OnStageComplete(_ context.Context, stage string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("Stage failed", "stage", stage, "err", err)
		return
	}
	h.logger.Debug("Stage done", "stage", stage, "took", d.Round(time.Microsecond))
}

func (h logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("Cache hit", "type", keyType)
}

func (h logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("Cache miss", "type", keyType)
}

func (h logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("Cache write", "type", keyType, "bytes", size)
}

// installHooks routes library events to the CLI logger.
func (c *CLI) installHooks() {
	h := logHooks{logger: c.Logger}
	observability.SetRenderHooks(h)
	observability.SetCacheHooks(h)
}
