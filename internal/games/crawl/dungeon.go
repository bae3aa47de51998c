package crawl

import (
	"math/rand"

	"github.com/mkraev/tui-crawler/internal/config"
	"github.com/mkraev/tui-crawler/internal/core"
)

// Tile is a single dungeon cell.
type Tile uint8

const (
	TileFloor Tile = iota
	TileWall
)

// Biome is the cosmetic flavor of a depth. It affects glyph coloring and is
// carried in the save snapshot; gameplay is identical across biomes.
type Biome string

const (
	BiomeCatacombs Biome = "catacombs"
	BiomeCaverns   Biome = "caverns"
	BiomeForge     Biome = "forge"
)

var biomeCycle = []Biome{BiomeCatacombs, BiomeCaverns, BiomeForge}

// BiomeForDepth returns the biome flavoring the given depth.
func BiomeForDepth(depth int) Biome {
	if depth < 1 {
		depth = 1
	}
	return biomeCycle[(depth-1)%len(biomeCycle)]
}

// SceneryKind tags decorative room features. Pillars and crates are solid
// (their tile is a wall); torches are walkable light dressing.
type SceneryKind uint8

const (
	SceneryPillar SceneryKind = iota
	SceneryCrate
	SceneryTorch
)

// Scenery is a decorative feature at a tile position.
type Scenery struct {
	TX, TY int
	Kind   SceneryKind
}

// Dungeon is one depth's tile grid. Immutable after generation except for
// the seen (fog-of-war) grid, which the simulation reveals around the
// player each tick. The border ring is always wall, and every room is
// reachable: rooms are carved in sequence and each is tunneled to the
// previous one.
type Dungeon struct {
	Depth  int
	Biome  Biome
	Width  int
	Height int

	tiles [][]Tile // indexed [x][y]
	seen  [][]bool // parallel fog-of-war grid

	Rooms    []core.Rect
	Scenery  []Scenery
	StairsTX int
	StairsTY int
}

// GenerateDungeon carves a fresh dungeon for the given depth using the
// supplied RNG (the world's seeded stream, for reproducible runs).
func GenerateDungeon(depth int, cfg config.DungeonConfig, rng *rand.Rand) *Dungeon {
	d := &Dungeon{
		Depth:  depth,
		Biome:  BiomeForDepth(depth),
		Width:  cfg.Width,
		Height: cfg.Height,
	}
	d.tiles = make([][]Tile, d.Width)
	d.seen = make([][]bool, d.Width)
	for x := range d.tiles {
		d.tiles[x] = make([]Tile, d.Height)
		d.seen[x] = make([]bool, d.Height)
		for y := range d.tiles[x] {
			d.tiles[x][y] = TileWall
		}
	}

	maxRooms := cfg.MaxRoomsBase + depth*cfg.RoomsPerDepth
	for i := 0; i < maxRooms; i++ {
		w := cfg.RoomMin + rng.Intn(cfg.RoomMax-cfg.RoomMin+1)
		h := cfg.RoomMin + rng.Intn(cfg.RoomMax-cfg.RoomMin+1)
		x := 2 + rng.Intn(d.Width-w-5)
		y := 2 + rng.Intn(d.Height-h-5)
		room := core.NewRect(x, y, w, h)

		overlaps := false
		for _, r := range d.Rooms {
			if room.Intersects(r.Inflate(2)) {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}

		d.carveRoom(room)
		if len(d.Rooms) > 0 {
			px, py := d.Rooms[len(d.Rooms)-1].Center()
			nx, ny := room.Center()
			d.carveTunnel(px, py, nx, ny, rng)
		}
		d.Rooms = append(d.Rooms, room)

		// Room dressing: a couple of solid features plus the odd torch.
		ccx, ccy := room.Center()
		for j := rng.Intn(3); j > 0; j-- {
			tx := room.X + 1 + rng.Intn(core.Max(1, room.W-2))
			ty := room.Y + 1 + rng.Intn(core.Max(1, room.H-2))
			// Centers stay clear: tunnels and stairs route through them.
			if tx == ccx && ty == ccy {
				continue
			}
			d.tiles[tx][ty] = TileWall
			kind := SceneryCrate
			if rng.Float64() < 0.6 {
				kind = SceneryPillar
			}
			d.Scenery = append(d.Scenery, Scenery{TX: tx, TY: ty, Kind: kind})
		}
		if rng.Float64() < 0.5 {
			d.Scenery = append(d.Scenery, Scenery{TX: room.X + 1, TY: room.Y + 1, Kind: SceneryTorch})
		}
	}

	// Border ring stays wall no matter what the carving did.
	for x := 0; x < d.Width; x++ {
		d.tiles[x][0] = TileWall
		d.tiles[x][d.Height-1] = TileWall
	}
	for y := 0; y < d.Height; y++ {
		d.tiles[0][y] = TileWall
		d.tiles[d.Width-1][y] = TileWall
	}

	// Stairs at the last room's center.
	if len(d.Rooms) > 0 {
		sx, sy := d.Rooms[len(d.Rooms)-1].Center()
		d.StairsTX, d.StairsTY = sx, sy
		d.tiles[sx][sy] = TileFloor
	}
	return d
}

func (d *Dungeon) carveRoom(r core.Rect) {
	for x := r.X; x < r.Right(); x++ {
		for y := r.Y; y < r.Bottom(); y++ {
			d.tiles[x][y] = TileFloor
		}
	}
}

// carveTunnel connects two points with an L-shaped corridor, three tiles
// wide so entities can path through without snagging on corners.
func (d *Dungeon) carveTunnel(x1, y1, x2, y2 int, rng *rand.Rand) {
	if rng.Float64() < 0.5 {
		d.carveHTunnel(x1, x2, y1)
		d.carveVTunnel(y1, y2, x2)
	} else {
		d.carveVTunnel(y1, y2, x1)
		d.carveHTunnel(x1, x2, y2)
	}
}

func (d *Dungeon) carveHTunnel(x1, x2, y int) {
	for x := core.Min(x1, x2); x <= core.Max(x1, x2); x++ {
		for dy := -1; dy <= 1; dy++ {
			if y+dy >= 0 && y+dy < d.Height {
				d.tiles[x][y+dy] = TileFloor
			}
		}
	}
}

func (d *Dungeon) carveVTunnel(y1, y2, x int) {
	for y := core.Min(y1, y2); y <= core.Max(y1, y2); y++ {
		for dx := -1; dx <= 1; dx++ {
			if x+dx >= 0 && x+dx < d.Width {
				d.tiles[x+dx][y] = TileFloor
			}
		}
	}
}

// TileAt returns the tile at grid coordinates; out of bounds is wall.
func (d *Dungeon) TileAt(tx, ty int) Tile {
	if tx < 0 || ty < 0 || tx >= d.Width || ty >= d.Height {
		return TileWall
	}
	return d.tiles[tx][ty]
}

// IsSolid reports whether the world-space position lies inside a wall.
func (d *Dungeon) IsSolid(pos core.Vec2) bool {
	return d.TileAt(int(pos.X), int(pos.Y)) == TileWall
}

// Seen reports whether the tile has been revealed.
func (d *Dungeon) Seen(tx, ty int) bool {
	if tx < 0 || ty < 0 || tx >= d.Width || ty >= d.Height {
		return false
	}
	return d.seen[tx][ty]
}

// MarkSeen reveals every tile whose center lies within radius of pos.
// Revealed tiles remain visible for the rest of the depth.
func (d *Dungeon) MarkSeen(pos core.Vec2, radius float64) {
	r2 := radius * radius
	minTX := core.Max(0, int(pos.X-radius))
	maxTX := core.Min(d.Width-1, int(pos.X+radius))
	minTY := core.Max(0, int(pos.Y-radius))
	maxTY := core.Min(d.Height-1, int(pos.Y+radius))
	for tx := minTX; tx <= maxTX; tx++ {
		for ty := minTY; ty <= maxTY; ty++ {
			cx := float64(tx) + 0.5
			cy := float64(ty) + 0.5
			dx := cx - pos.X
			dy := cy - pos.Y
			if dx*dx+dy*dy <= r2 {
				d.seen[tx][ty] = true
			}
		}
	}
}

// FirstRoomCenter returns the world-space center of the first room, the
// player's entry point for the depth.
func (d *Dungeon) FirstRoomCenter() core.Vec2 {
	if len(d.Rooms) == 0 {
		return core.V(float64(d.Width)/2, float64(d.Height)/2)
	}
	cx, cy := d.Rooms[0].Center()
	return core.V(float64(cx)+0.5, float64(cy)+0.5)
}

// StairsPos returns the world-space center of the stairs tile.
func (d *Dungeon) StairsPos() core.Vec2 {
	return core.V(float64(d.StairsTX)+0.5, float64(d.StairsTY)+0.5)
}
