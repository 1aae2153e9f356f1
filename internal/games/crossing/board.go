package crossing

// Terrain is the tile type of one board row.
type Terrain int

const (
	TerrainWater Terrain = iota
	TerrainStone
	TerrainGrass
)

// rowTerrain is the fixed 6-row board layout, top to bottom.
// It is purely visual and immutable for the process lifetime.
var rowTerrain = []Terrain{
	TerrainWater,
	TerrainStone,
	TerrainStone,
	TerrainStone,
	TerrainGrass,
	TerrainGrass,
}

// RowTerrain returns the terrain of a board row, clamping out-of-range
// rows to the nearest edge row.
func RowTerrain(row int) Terrain {
	if row < 0 {
		row = 0
	}
	if row >= len(rowTerrain) {
		row = len(rowTerrain) - 1
	}
	return rowTerrain[row]
}

// spriteID returns the tile sprite for a terrain type.
func (t Terrain) spriteID() string {
	switch t {
	case TerrainWater:
		return "tile-water"
	case TerrainStone:
		return "tile-stone"
	default:
		return "tile-grass"
	}
}

// Sprite positions sit slightly above their tile's top edge, so the row
// a sprite occupies is recovered with a 20px correction before rounding.
const rowYOffset = 20

// rowOf maps a sprite y-coordinate to its board row.
func rowOf(y float64, tileHeight int) int {
	return int((y + rowYOffset + float64(tileHeight)/2) / float64(tileHeight))
}

// colOf maps a sprite x-coordinate to its board column.
func colOf(x float64, tileWidth int) int {
	return int((x + float64(tileWidth)/2) / float64(tileWidth))
}
