package theme

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jmylchreest/tourkit/internal/model"
)

// LoadErrorMessage is the human-readable error surfaced after a failed load.
const LoadErrorMessage = "Failed to load theme configuration"

// ErrLoadFailed is returned when the theme source fails. The Loader still
// holds a usable fallback config in that case.
var ErrLoadFailed = errors.New("failed to load theme configuration")

// ErrNoSource is returned by Load when the loader has no source configured.
var ErrNoSource = errors.New("no theme source configured")

// Source provides the published ThemeConfig.
type Source interface {
	GetThemeConfig(ctx context.Context) (*model.ThemeConfig, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) (*model.ThemeConfig, error)

// GetThemeConfig implements Source.
func (f SourceFunc) GetThemeConfig(ctx context.Context) (*model.ThemeConfig, error) {
	return f(ctx)
}

// Loader caches the ThemeConfig fetched from a Source and applies it.
// Concurrent loads are not de-duplicated: whichever completes last wins.
type Loader struct {
	mu         sync.RWMutex
	logger     *slog.Logger
	source     Source
	applicator *Applicator
	config     *model.ThemeConfig
	loading    bool
	errMsg     string
	mode       model.Mode
	watcher    *Watcher
	debounce   time.Duration
}

// NewLoader creates a new theme loader. applicator may be nil when the
// caller only needs the config.
func NewLoader(source Source, applicator *Applicator, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		logger:     logger,
		source:     source,
		applicator: applicator,
		mode:       model.ModeLight,
	}
}

// Load fetches the config from the source. On failure the error is logged,
// the fallback config is cached and returned, and ErrLoadFailed (wrapping
// the cause) is returned alongside it. The returned config is never nil.
func (l *Loader) Load(ctx context.Context) (*model.ThemeConfig, error) {
	l.mu.Lock()
	l.loading = true
	l.errMsg = ""
	l.mu.Unlock()

	cfg, err := l.fetch(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.loading = false

	if err != nil {
		l.logger.Warn("error loading theme config, using fallback", "error", err)
		l.errMsg = LoadErrorMessage
		l.config = FallbackConfig()
		return l.config, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	l.config = cfg
	l.logger.Info("loaded theme config", "version", cfg.Version, "created_by", cfg.CreatedBy)
	return cfg, nil
}

func (l *Loader) fetch(ctx context.Context) (*model.ThemeConfig, error) {
	if l.source == nil {
		return nil, ErrNoSource
	}
	cfg, err := l.source.GetThemeConfig(ctx)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, errors.New("source returned no theme config")
	}
	return cfg, nil
}

// Refresh reloads the config and re-applies it in the last applied mode.
func (l *Loader) Refresh(ctx context.Context) (*model.ThemeConfig, error) {
	cfg, err := l.Load(ctx)

	l.mu.RLock()
	mode := l.mode
	l.mu.RUnlock()

	l.ApplyCurrent(mode)
	return cfg, err
}

// Config returns the cached config, or nil before the first load.
func (l *Loader) Config() *model.ThemeConfig {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.config
}

// Error returns the human-readable error from the last load, or "".
func (l *Loader) Error() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.errMsg
}

// IsLoading reports whether a load is in flight.
func (l *Loader) IsLoading() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loading
}

// ApplyColors applies an explicit palette.
func (l *Loader) ApplyColors(colors model.ThemeColors, mode model.Mode) bool {
	if l.applicator == nil {
		return false
	}
	l.mu.Lock()
	l.mode = mode
	l.mu.Unlock()
	return l.applicator.Apply(colors, mode)
}

// ApplyCurrent applies the cached palette for mode, or the built-in palette
// when nothing has been loaded yet.
func (l *Loader) ApplyCurrent(mode model.Mode) bool {
	l.mu.RLock()
	cfg := l.config
	l.mu.RUnlock()

	if cfg == nil {
		l.logger.Debug("no theme config loaded, using fallback colors", "mode", mode)
		return l.ApplyColors(DefaultColorsFor(mode), mode)
	}

	l.logger.Debug("applying theme colors", "mode", mode, "version", cfg.Version)
	return l.ApplyColors(cfg.Colors(mode), mode)
}

// SetDebounce sets the quiet period hot reload waits for after a change.
// Zero keeps the watcher default.
func (l *Loader) SetDebounce(d time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debounce = d
}

// StartHotReload watches path and refreshes the theme whenever it changes.
// onReload, if not nil, is called after each refresh.
func (l *Loader) StartHotReload(ctx context.Context, path string, onReload func(*model.ThemeConfig, error)) error {
	// The watch loop calls back into the loader, so never hold l.mu while
	// stopping a watcher.
	l.StopHotReload()

	w, err := NewWatcher(path, l.logger)
	if err != nil {
		return fmt.Errorf("failed to create theme watcher: %w", err)
	}
	l.mu.RLock()
	if l.debounce > 0 {
		w.SetDebounce(l.debounce)
	}
	l.mu.RUnlock()
	w.SetChangeCallback(func() {
		cfg, err := l.Refresh(ctx)
		l.logger.Info("hot-reloaded theme", "path", path)
		if onReload != nil {
			onReload(cfg, err)
		}
	})

	if err := w.Start(ctx); err != nil {
		return fmt.Errorf("failed to start theme watcher: %w", err)
	}

	l.mu.Lock()
	l.watcher = w
	l.mu.Unlock()
	return nil
}

// StopHotReload stops watching for changes.
func (l *Loader) StopHotReload() {
	l.mu.Lock()
	w := l.watcher
	l.watcher = nil
	l.mu.Unlock()

	if w != nil {
		if err := w.Stop(); err != nil {
			l.logger.Debug("error stopping theme watcher", "error", err)
		}
	}
}
