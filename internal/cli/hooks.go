package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/probemap/pkg/observability"
)

// logHooks reports pipeline, cache and asset events at debug level.
type logHooks struct {
	logger *log.Logger
}

func installHooks(l *log.Logger) {
	h := logHooks{logger: l}
	observability.SetPipelineHooks(h)
	observability.SetCacheHooks(h)
	observability.SetAssetHooks(h)
}

func (h logHooks) OnLoadStart(_ context.Context, source string) {
	h.logger.Debug("loading dataset", "source", source)
}

func (h logHooks) OnLoadComplete(_ context.Context, source string, agencies, companies int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("load failed", "source", source, "error", err)
		return
	}
	h.logger.Debug("dataset loaded", "source", source, "agencies", agencies, "companies", companies, "duration", d)
}

func (h logHooks) OnLayoutStart(_ context.Context, agencies, companies int) {
	h.logger.Debug("computing layout", "agencies", agencies, "companies", companies)
}

func (h logHooks) OnLayoutComplete(_ context.Context, edges int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("layout failed", "error", err)
		return
	}
	h.logger.Debug("layout done", "edges", edges, "duration", d)
}

func (h logHooks) OnRenderStart(_ context.Context, formats []string) {
	h.logger.Debug("rendering", "formats", formats)
}

func (h logHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "formats", formats, "error", err)
		return
	}
	h.logger.Debug("render done", "formats", formats, "duration", d)
}

func (h logHooks) OnCacheHit(_ context.Context, kind string) {
	h.logger.Debug("cache hit", "kind", kind)
}

func (h logHooks) OnCacheMiss(_ context.Context, kind string) {
	h.logger.Debug("cache miss", "kind", kind)
}

func (h logHooks) OnCacheSet(_ context.Context, kind string, size int) {
	h.logger.Debug("cache set", "kind", kind, "bytes", size)
}

func (h logHooks) OnAssetLoaded(_ context.Context, kind, path string) {
	h.logger.Debug("loaded "+kind, "path", path)
}

func (h logHooks) OnAssetSkipped(_ context.Context, kind, path string, reason error) {
	h.logger.Debug("skipped "+kind, "path", path, "reason", reason)
}

func (h logHooks) OnFontFallback(_ context.Context, requested string, reason error) {
	h.logger.Debug("font not available, using fallback", "font", requested, "reason", reason)
}

var (
	_ observability.PipelineHooks = logHooks{}
	_ observability.CacheHooks    = logHooks{}
	_ observability.AssetHooks    = logHooks{}
)
