package assets

import (
	"errors"
	"testing"
)

func TestLoadEmbeddedManifest(t *testing.T) {
	a, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	for _, id := range requiredSprites {
		s, err := a.Sprite(id)
		if err != nil {
			t.Errorf("Sprite(%q) error = %v", id, err)
		}
		if s.ID != id {
			t.Errorf("Sprite(%q).ID = %q", id, s.ID)
		}
		if s.Glyph == 0 {
			t.Errorf("Sprite(%q) has zero glyph", id)
		}
	}
}

func TestLoadPlayers(t *testing.T) {
	a, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	players := a.Players()
	if len(players) != 3 {
		t.Fatalf("Players() returned %d avatars, expected 3", len(players))
	}

	for _, p := range players {
		if !a.IsPlayer(p.ID) {
			t.Errorf("IsPlayer(%q) = false for a listed avatar", p.ID)
		}
		if _, err := a.Sprite(p.ID); err != nil {
			t.Errorf("avatar %q has no sprite: %v", p.ID, err)
		}
	}

	if a.DefaultPlayer().ID != players[0].ID {
		t.Errorf("DefaultPlayer() = %q, expected first avatar %q", a.DefaultPlayer().ID, players[0].ID)
	}

	if a.IsPlayer("enemy-bug") {
		t.Error("IsPlayer(\"enemy-bug\") should be false")
	}
}

func TestSpriteUnknownID(t *testing.T) {
	a, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	_, err = a.Sprite("no-such-sprite")
	if !errors.Is(err, ErrUnknownSprite) {
		t.Errorf("Sprite(unknown) error = %v, expected ErrUnknownSprite", err)
	}

	fallback := Sprite{ID: "fallback", Glyph: '?', Color: 0}
	got := a.SpriteOr("no-such-sprite", fallback)
	if got.Glyph != '?' {
		t.Errorf("SpriteOr fallback glyph = %q, expected '?'", got.Glyph)
	}
}

func TestParseRejectsBrokenManifests(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "missing required sprite",
			yaml: `
sprites:
  tile-water: {glyph: "~", color: blue}
players:
  - {id: tile-water, name: X}
`,
		},
		{
			name: "multi-rune glyph",
			yaml: `
sprites:
  tile-water: {glyph: "~~", color: blue}
  tile-stone: {glyph: ".", color: gray}
  tile-grass: {glyph: ",", color: green}
  enemy-bug: {glyph: "x", color: red}
  heart: {glyph: "v", color: red}
  gem: {glyph: "o", color: cyan}
players:
  - {id: enemy-bug, name: X}
`,
		},
		{
			name: "unknown color",
			yaml: `
sprites:
  tile-water: {glyph: "~", color: ultraviolet}
  tile-stone: {glyph: ".", color: gray}
  tile-grass: {glyph: ",", color: green}
  enemy-bug: {glyph: "x", color: red}
  heart: {glyph: "v", color: red}
  gem: {glyph: "o", color: cyan}
players:
  - {id: enemy-bug, name: X}
`,
		},
		{
			name: "no players",
			yaml: `
sprites:
  tile-water: {glyph: "~", color: blue}
  tile-stone: {glyph: ".", color: gray}
  tile-grass: {glyph: ",", color: green}
  enemy-bug: {glyph: "x", color: red}
  heart: {glyph: "v", color: red}
  gem: {glyph: "o", color: cyan}
players: []
`,
		},
		{
			name: "avatar without sprite",
			yaml: `
sprites:
  tile-water: {glyph: "~", color: blue}
  tile-stone: {glyph: ".", color: gray}
  tile-grass: {glyph: ",", color: green}
  enemy-bug: {glyph: "x", color: red}
  heart: {glyph: "v", color: red}
  gem: {glyph: "o", color: cyan}
players:
  - {id: char-ghost, name: Ghost}
`,
		},
		{
			name: "not yaml",
			yaml: "{{{",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := parse([]byte(tc.yaml)); err == nil {
				t.Error("parse() succeeded, expected error")
			}
		})
	}
}
