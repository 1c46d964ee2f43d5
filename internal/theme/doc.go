// Package theme turns a stored light/dark palette into CSS custom
// properties. A Loader fetches the ThemeConfig from a Source, falling back
// to built-in palettes when the source fails, and an Applicator converts the
// active palette to HSL and writes it to a StyleSink.
package theme
