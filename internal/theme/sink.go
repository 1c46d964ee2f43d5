package theme

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// MemorySink records properties and classes in memory. Property order is
// the order of first write.
type MemorySink struct {
	mu      sync.RWMutex
	keys    []string
	values  map[string]string
	classes []string
	writes  int
}

// NewMemorySink creates an empty MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{values: make(map[string]string)}
}

// SetProperty implements StyleSink.
func (s *MemorySink) SetProperty(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
	s.writes++
}

// AddClass implements StyleSink.
func (s *MemorySink) AddClass(names ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range names {
		if !slices.Contains(s.classes, n) {
			s.classes = append(s.classes, n)
		}
	}
}

// RemoveClass implements StyleSink.
func (s *MemorySink) RemoveClass(names ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.classes = slices.DeleteFunc(s.classes, func(c string) bool {
		return slices.Contains(names, c)
	})
}

// Get returns a property value.
func (s *MemorySink) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Properties returns every property in first-write order.
func (s *MemorySink) Properties() []Property {
	s.mu.RLock()
	defer s.mu.RUnlock()
	props := make([]Property, 0, len(s.keys))
	for _, k := range s.keys {
		props = append(props, Property{Key: k, Value: s.values[k]})
	}
	return props
}

// Classes returns the current class list.
func (s *MemorySink) Classes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.classes)
}

// HasClass reports whether a class is set.
func (s *MemorySink) HasClass(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.classes, name)
}

// Writes returns the number of SetProperty calls.
func (s *MemorySink) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}

// CSSSink renders the recorded properties as a stylesheet rule.
type CSSSink struct {
	*MemorySink
	Selector string
}

// NewCSSSink creates a CSSSink for the given selector (":root" if empty).
func NewCSSSink(selector string) *CSSSink {
	if selector == "" {
		selector = ":root"
	}
	return &CSSSink{
		MemorySink: NewMemorySink(),
		Selector:   selector,
	}
}

// Render writes the stylesheet to w. Mode marker classes are emitted as a
// header comment so consumers can copy them onto the root element.
func (s *CSSSink) Render(w io.Writer) error {
	var b strings.Builder
	if classes := s.Classes(); len(classes) > 0 {
		fmt.Fprintf(&b, "/* classes: %s */\n", strings.Join(classes, " "))
	}
	fmt.Fprintf(&b, "%s {\n", s.Selector)
	for _, p := range s.Properties() {
		fmt.Fprintf(&b, "  %s: %s;\n", p.Key, p.Value)
	}
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteFile renders the stylesheet to path atomically via a temp file.
func (s *CSSSink) WriteFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmpPath := path + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", tmpPath, err)
	}
	if err := s.Render(f); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to render stylesheet: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	return os.Rename(tmpPath, path)
}
