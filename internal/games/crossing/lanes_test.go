package crossing

import (
	"math/rand"
	"testing"
)

func TestPickLaneMembership(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		x, y := pickLane(rng)
		if !containsF(laneXs, x) {
			t.Fatalf("pickLane x = %f not in %v", x, laneXs)
		}
		if !containsF(laneYs, y) {
			t.Fatalf("pickLane y = %f not in %v", y, laneYs)
		}
	}
}

func TestPickLaneCoversAllCombinations(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	seen := make(map[[2]float64]bool)
	for i := 0; i < 2000; i++ {
		x, y := pickLane(rng)
		seen[[2]float64{x, y}] = true
	}

	want := len(laneXs) * len(laneYs)
	if len(seen) != want {
		t.Errorf("saw %d distinct lanes, expected all %d", len(seen), want)
	}
}

func TestRowColMapping(t *testing.T) {
	tests := []struct {
		y   float64
		row int
	}{
		{391, 5}, // player spawn, bottom grass row
		{308, 4},
		{225, 3},
		{142, 2},
		{59, 1}, // top stone row
		{63, 1}, // enemy lane
		{146, 2},
		{229, 3},
	}
	for _, tc := range tests {
		if got := rowOf(tc.y, 83); got != tc.row {
			t.Errorf("rowOf(%f) = %d, expected %d", tc.y, got, tc.row)
		}
	}

	for col, x := range laneXs {
		if got := colOf(x, 101); got != col {
			t.Errorf("colOf(%f) = %d, expected %d", x, got, col)
		}
	}
}

func TestRowTerrainLayout(t *testing.T) {
	if RowTerrain(0) != TerrainWater {
		t.Error("row 0 should be water")
	}
	for row := 1; row <= 3; row++ {
		if RowTerrain(row) != TerrainStone {
			t.Errorf("row %d should be stone", row)
		}
	}
	for row := 4; row <= 5; row++ {
		if RowTerrain(row) != TerrainGrass {
			t.Errorf("row %d should be grass", row)
		}
	}

	// Out-of-range rows clamp to the edges
	if RowTerrain(-1) != TerrainWater || RowTerrain(99) != TerrainGrass {
		t.Error("out-of-range rows should clamp")
	}
}
