package theme

import (
	"log/slog"
	"sync"

	"github.com/jmylchreest/tourkit/internal/model"
)

// StyleSink receives CSS custom properties and mode marker classes.
type StyleSink interface {
	SetProperty(key, value string)
	AddClass(names ...string)
	RemoveClass(names ...string)
}

// Applicator writes palettes to a StyleSink. Re-applying the pair most
// recently applied is a no-op.
type Applicator struct {
	mu      sync.Mutex
	logger  *slog.Logger
	sink    StyleSink
	lastKey string
}

// NewApplicator creates an applicator writing to sink.
func NewApplicator(sink StyleSink, logger *slog.Logger) *Applicator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Applicator{
		logger: logger,
		sink:   sink,
	}
}

// applyKey serialises a (mode, colors) pair. ThemeColors.Key emits fields
// in a fixed order so equal pairs always compare equal.
func applyKey(colors model.ThemeColors, mode model.Mode) string {
	return string(mode) + "|" + colors.Key()
}

// Apply converts each role to HSL and writes the full variable set plus the
// mode marker. It returns false without touching the sink when the pair is
// the same as the previous call.
func (a *Applicator) Apply(colors model.ThemeColors, mode model.Mode) bool {
	if mode != model.ModeDark {
		mode = model.ModeLight
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.sink == nil {
		a.logger.Warn("no style sink, cannot apply theme")
		return false
	}

	key := applyKey(colors, mode)
	if key == a.lastKey {
		a.logger.Debug("theme unchanged, skipping apply", "mode", mode)
		return false
	}

	for _, p := range Variables(colors, mode) {
		a.sink.SetProperty(p.Key, p.Value)
	}

	a.sink.RemoveClass(ClassLight, ClassDark)
	a.sink.AddClass(ModeClass(mode))

	a.lastKey = key
	a.logger.Debug("applied theme", "mode", mode, "primary", colors.Primary)
	return true
}

// Reset forgets the last applied pair so the next Apply always writes.
func (a *Applicator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.lastKey = ""
}
