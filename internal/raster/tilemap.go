package raster

// Flags is the shared bitfield used by tiles, sprites and objects. Not every
// flag is meaningful in every context (MASKED is sprite-only, per spec §3).
type Flags uint16

const (
	FlagFlipX Flags = 1 << iota
	FlagFlipY
	FlagRotate
	FlagPriority
	FlagMasked
)

// Tile is one cell of a Tilemap.
type Tile struct {
	Index   uint16 // logical tile index into Tileset.Tiles; 0 = transparent, never sampled
	Tileset uint8  // index into Tilemap.Tilesets
	Palette uint8  // index into Engine.Palettes; the tile painters do not read it (they use the layer's palette, else the tileset's default)
	Flags   Flags
}

// Tilemap is a cols x rows grid of Tile references into one or more shared
// Tilesets. Grounded on the teacher's internal/ppu TileMap ([32][32]Tile),
// generalized to arbitrary dimensions and multiple backing tilesets.
type Tilemap struct {
	Cols, Rows int
	Tiles      []Tile // row-major, length Cols*Rows
	Tilesets   []*Tileset
}

// At returns the tile at (col, row).
func (tm *Tilemap) At(col, row int) *Tile {
	return &tm.Tiles[row*tm.Cols+col]
}

// NewTilemap allocates an empty (all index-0, transparent) tilemap.
func NewTilemap(cols, rows int, tilesets ...*Tileset) *Tilemap {
	return &Tilemap{
		Cols:     cols,
		Rows:     rows,
		Tiles:    make([]Tile, cols*rows),
		Tilesets: tilesets,
	}
}
