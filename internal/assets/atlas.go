// Package assets provides the sprite atlas: the lookup table from sprite
// IDs to terminal glyphs and colors. The manifest is embedded YAML, so a
// missing or malformed sprite surfaces as a startup error instead of a
// blank cell at render time.
package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/avoronov/bugcross/internal/core"
)

//go:embed sprites.yaml
var manifestYAML []byte

// ErrUnknownSprite is returned when a sprite ID is not in the atlas.
var ErrUnknownSprite = errors.New("assets: unknown sprite")

// Required sprite IDs. Load fails if the manifest is missing any of them.
var requiredSprites = []string{
	"tile-water",
	"tile-stone",
	"tile-grass",
	"enemy-bug",
	"heart",
	"gem",
}

// Sprite is a drawable cell: one glyph and its color.
type Sprite struct {
	ID    string
	Glyph rune
	Color core.Color
}

// PlayerChoice is one of the selectable player avatars.
type PlayerChoice struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// Atlas holds all loaded sprites and the avatar choices.
type Atlas struct {
	sprites map[string]Sprite
	players []PlayerChoice
}

// manifest is the on-disk shape of the sprite manifest.
type manifest struct {
	Sprites map[string]spriteDef `yaml:"sprites"`
	Players []PlayerChoice       `yaml:"players"`
}

type spriteDef struct {
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

// colorNames maps manifest color names to core colors.
var colorNames = map[string]core.Color{
	"default":        core.ColorDefault,
	"red":            core.ColorRed,
	"green":          core.ColorGreen,
	"yellow":         core.ColorYellow,
	"blue":           core.ColorBlue,
	"magenta":        core.ColorMagenta,
	"cyan":           core.ColorCyan,
	"white":          core.ColorWhite,
	"bright_red":     core.ColorBrightRed,
	"bright_green":   core.ColorBrightGreen,
	"bright_yellow":  core.ColorBrightYellow,
	"bright_blue":    core.ColorBrightBlue,
	"bright_magenta": core.ColorBrightMagenta,
	"bright_cyan":    core.ColorBrightCyan,
	"bright_white":   core.ColorBrightWhite,
	"orange":         core.ColorOrange,
	"gray":           core.ColorGray,
}

// Load parses the embedded sprite manifest and validates it.
// An error here means the binary shipped with a broken asset set;
// callers should treat it as a startup failure.
func Load() (*Atlas, error) {
	return parse(manifestYAML)
}

// parse builds an atlas from manifest bytes.
func parse(data []byte) (*Atlas, error) {
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("assets: cannot parse sprite manifest: %w", err)
	}

	a := &Atlas{
		sprites: make(map[string]Sprite, len(m.Sprites)),
		players: m.Players,
	}

	for id, def := range m.Sprites {
		glyph, size := utf8.DecodeRuneInString(def.Glyph)
		if glyph == utf8.RuneError || size != len(def.Glyph) {
			return nil, fmt.Errorf("assets: sprite %q: glyph must be exactly one rune, got %q", id, def.Glyph)
		}

		color, ok := colorNames[def.Color]
		if !ok {
			return nil, fmt.Errorf("assets: sprite %q: unknown color %q", id, def.Color)
		}

		a.sprites[id] = Sprite{ID: id, Glyph: glyph, Color: color}
	}

	for _, id := range requiredSprites {
		if _, ok := a.sprites[id]; !ok {
			return nil, fmt.Errorf("assets: manifest is missing required sprite %q", id)
		}
	}

	if len(a.players) == 0 {
		return nil, errors.New("assets: manifest defines no player avatars")
	}
	for _, p := range a.players {
		if _, ok := a.sprites[p.ID]; !ok {
			return nil, fmt.Errorf("assets: player avatar %q has no sprite", p.ID)
		}
	}

	return a, nil
}

// Sprite looks up a sprite by ID.
func (a *Atlas) Sprite(id string) (Sprite, error) {
	s, ok := a.sprites[id]
	if !ok {
		return Sprite{}, fmt.Errorf("%w: %q", ErrUnknownSprite, id)
	}
	return s, nil
}

// SpriteOr looks up a sprite by ID, returning a fallback if absent.
// Render paths use this so a bad ID degrades to a visible placeholder.
func (a *Atlas) SpriteOr(id string, fallback Sprite) Sprite {
	if s, ok := a.sprites[id]; ok {
		return s
	}
	return fallback
}

// Players returns the selectable avatars, in manifest order.
func (a *Atlas) Players() []PlayerChoice {
	out := make([]PlayerChoice, len(a.players))
	copy(out, a.players)
	return out
}

// DefaultPlayer returns the first avatar in the manifest.
func (a *Atlas) DefaultPlayer() PlayerChoice {
	return a.players[0]
}

// IsPlayer reports whether the given sprite ID is a selectable avatar.
func (a *Atlas) IsPlayer(id string) bool {
	for _, p := range a.players {
		if p.ID == id {
			return true
		}
	}
	return false
}
