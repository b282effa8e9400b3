package tui

import (
	"github.com/alexisbeaulieu97/starrating/internal/rating"
)

const (
	filledGlyph  = "★"
	outlineGlyph = "☆"
)

// GlyphSet maps icon class tokens to the terminal glyph drawn for them.
// Classes without a mapping fall back to a star for their state.
type GlyphSet map[string]string

// DefaultGlyphs knows the default icon classes and a few common icon fonts.
func DefaultGlyphs() GlyphSet {
	return GlyphSet{
		"glyphicon glyphicon-star":       filledGlyph,
		"glyphicon glyphicon-star-empty": outlineGlyph,
		"fa fa-star":                     filledGlyph,
		"fa fa-star-o":                   outlineGlyph,
		"fa fa-heart":                    "♥",
		"fa fa-heart-o":                  "♡",
	}
}

// Merge returns a copy of g with extra mappings applied on top.
func (g GlyphSet) Merge(extra map[string]string) GlyphSet {
	out := make(GlyphSet, len(g)+len(extra))
	for class, glyph := range g {
		out[class] = glyph
	}
	for class, glyph := range extra {
		out[class] = glyph
	}
	return out
}

// Glyph returns the glyph for icon.
func (g GlyphSet) Glyph(icon rating.Icon) string {
	if glyph, ok := g[icon.Class]; ok && glyph != "" {
		return glyph
	}
	if icon.State == rating.Filled {
		return filledGlyph
	}
	return outlineGlyph
}
