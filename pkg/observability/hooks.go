// Package observability lets the render and cache layers report what they
// are doing without depending on a logger.
//
// Libraries emit events through whatever hooks are registered; by default
// nothing listens. The CLI installs hooks that turn events into debug log
// lines when --verbose is set:
//
//	observability.SetRenderHooks(myHooks)
//
//	err := observability.Stage(ctx, observability.StageBackground, func() error {
//	    return drawBackground()
//	})
package observability

import (
	"context"
	"sync/atomic"
	"time"
)

// Composition stages, in the order they run.
const (
	StageBackground = "background"
	StageOverlay    = "overlay"
	StageLayout     = "layout"
	StageText       = "text"
)

// RenderHooks observes image composition.
type RenderHooks interface {
	OnStageStart(ctx context.Context, stage string)
	OnStageComplete(ctx context.Context, stage string, duration time.Duration, err error)
}

// CacheHooks observes cache lookups. keyType names what was looked up,
// such as "fonts".
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

type NoopRenderHooks struct{}

func (NoopRenderHooks) OnStageStart(context.Context, string)                          {}
func (NoopRenderHooks) OnStageComplete(context.Context, string, time.Duration, error) {}

type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// hookSet is swapped as a whole so readers never see a half-updated pair.
type hookSet struct {
	render RenderHooks
	cache  CacheHooks
}

var current atomic.Pointer[hookSet]

func init() { Reset() }

func update(fn func(*hookSet)) {
	for {
		old := current.Load()
		next := *old
		fn(&next)
		if current.CompareAndSwap(old, &next) {
			return
		}
	}
}

// SetRenderHooks installs h for all later render events. nil is ignored.
func SetRenderHooks(h RenderHooks) {
	if h != nil {
		update(func(s *hookSet) { s.render = h })
	}
}

// SetCacheHooks installs h for all later cache events. nil is ignored.
func SetCacheHooks(h CacheHooks) {
	if h != nil {
		update(func(s *hookSet) { s.cache = h })
	}
}

func Render() RenderHooks { return current.Load().render }

func Cache() CacheHooks { return current.Load().cache }

// Reset puts the no-op hooks back.
func Reset() {
	current.Store(&hookSet{render: NoopRenderHooks{}, cache: NoopCacheHooks{}})
}

// Stage runs fn and reports it to the render hooks as stage, along with
// how long it took and the error it returned.
func Stage(ctx context.Context, stage string, fn func() error) error {
	h := Render()
	h.OnStageStart(ctx, stage)
	start := time.Now()
	err := fn()
	h.OnStageComplete(ctx, stage, time.Since(start), err)
	return err
}
