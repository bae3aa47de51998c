package crawl

import (
	"math/rand"
	"testing"

	"github.com/mkraev/tui-crawler/internal/core"
)

func TestDungeonBordersAreWall(t *testing.T) {
	cfg := testConfig()
	d := GenerateDungeon(1, cfg.Dungeon, rand.New(rand.NewSource(1)))

	for x := 0; x < d.Width; x++ {
		if d.TileAt(x, 0) != TileWall || d.TileAt(x, d.Height-1) != TileWall {
			t.Fatalf("border not wall at column %d", x)
		}
	}
	for y := 0; y < d.Height; y++ {
		if d.TileAt(0, y) != TileWall || d.TileAt(d.Width-1, y) != TileWall {
			t.Fatalf("border not wall at row %d", y)
		}
	}
}

func TestDungeonOutOfBoundsIsSolid(t *testing.T) {
	cfg := testConfig()
	d := GenerateDungeon(1, cfg.Dungeon, rand.New(rand.NewSource(2)))

	if !d.IsSolid(core.V(-1, 5)) || !d.IsSolid(core.V(5, -1)) ||
		!d.IsSolid(core.V(float64(d.Width)+1, 5)) {
		t.Error("Out-of-bounds position reported walkable")
	}
}

func TestDungeonRoomsAreCarvedAndConnected(t *testing.T) {
	cfg := testConfig()
	d := GenerateDungeon(2, cfg.Dungeon, rand.New(rand.NewSource(3)))

	if len(d.Rooms) < 2 {
		t.Fatalf("rooms = %d, want several", len(d.Rooms))
	}
	for i, r := range d.Rooms {
		cx, cy := r.Center()
		if d.TileAt(cx, cy) != TileFloor {
			t.Errorf("room %d center (%d,%d) is not floor", i, cx, cy)
		}
	}

	// Flood fill from the first room must reach every room center and the
	// stairs: generation tunnels each room to the previous one.
	reach := make(map[[2]int]bool)
	start := [2]int{0, 0}
	{
		cx, cy := d.Rooms[0].Center()
		start = [2]int{cx, cy}
	}
	stack := [][2]int{start}
	reach[start] = true
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, dxy := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			next := [2]int{cur[0] + dxy[0], cur[1] + dxy[1]}
			if reach[next] || d.TileAt(next[0], next[1]) != TileFloor {
				continue
			}
			reach[next] = true
			stack = append(stack, next)
		}
	}
	for i, r := range d.Rooms {
		cx, cy := r.Center()
		if !reach[[2]int{cx, cy}] {
			t.Errorf("room %d is unreachable from the first room", i)
		}
	}
	if !reach[[2]int{d.StairsTX, d.StairsTY}] {
		t.Error("Stairs are unreachable")
	}
}

func TestFogOfWarReveal(t *testing.T) {
	cfg := testConfig()
	d := GenerateDungeon(1, cfg.Dungeon, rand.New(rand.NewSource(4)))
	pos := d.FirstRoomCenter()

	if d.Seen(int(pos.X)+20, int(pos.Y)) {
		t.Fatal("Distant tile seen before any reveal")
	}

	d.MarkSeen(pos, 6.0)
	if !d.Seen(int(pos.X), int(pos.Y)) {
		t.Error("Player tile not revealed")
	}
	if d.Seen(int(pos.X)+20, int(pos.Y)) {
		t.Error("Tile outside the reveal radius was revealed")
	}

	// Reveal is sticky: moving away keeps old tiles visible.
	d.MarkSeen(pos.Add(core.V(30, 0)), 6.0)
	if !d.Seen(int(pos.X), int(pos.Y)) {
		t.Error("Previously seen tile was forgotten")
	}
}

func TestBiomeCycle(t *testing.T) {
	cases := []struct {
		depth int
		want  Biome
	}{
		{1, BiomeCatacombs},
		{2, BiomeCaverns},
		{3, BiomeForge},
		{4, BiomeCatacombs},
		{0, BiomeCatacombs},
	}
	for _, tc := range cases {
		if got := BiomeForDepth(tc.depth); got != tc.want {
			t.Errorf("BiomeForDepth(%d) = %s, want %s", tc.depth, got, tc.want)
		}
	}
}

func TestGenerationDeterministicForSeed(t *testing.T) {
	cfg := testConfig()
	d1 := GenerateDungeon(1, cfg.Dungeon, rand.New(rand.NewSource(77)))
	d2 := GenerateDungeon(1, cfg.Dungeon, rand.New(rand.NewSource(77)))

	if len(d1.Rooms) != len(d2.Rooms) {
		t.Fatalf("room counts differ: %d vs %d", len(d1.Rooms), len(d2.Rooms))
	}
	for i := range d1.Rooms {
		if d1.Rooms[i] != d2.Rooms[i] {
			t.Fatalf("room %d differs: %+v vs %+v", i, d1.Rooms[i], d2.Rooms[i])
		}
	}
	if d1.StairsTX != d2.StairsTX || d1.StairsTY != d2.StairsTY {
		t.Error("Stairs positions differ for the same seed")
	}
}
