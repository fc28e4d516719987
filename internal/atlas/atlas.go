package atlas

import (
	"fmt"
	"image"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
	xdraw "golang.org/x/image/draw"

	"voxelforge/internal/registry"
	"voxelforge/internal/world"
)

const (
	// Default atlas grid, in cells
	DefaultCellsX = 8
	DefaultCellsY = 8
)

// Entry is the cell assigned to one texture path.
type Entry struct {
	Col, Row int
}

// Atlas is a single packed texture image plus the lookup from
// (block, face) to a UV quad. Built once before meshing starts and
// read-only afterwards.
type Atlas struct {
	reg         *registry.Registry
	img         *image.RGBA
	entries     map[string]Entry
	cellsX      int
	cellsY      int
	textureSize int
}

// Build packs every distinct texture referenced by the registry into a
// fixed grid of cellsX x cellsY cells. Cells are assigned in row-major
// registration order starting at (0,0). The cell size is taken from the
// first source texture; all sources are assumed square and equal-sized.
func Build(reg *registry.Registry, provider TextureProvider, cellsX, cellsY int) (*Atlas, error) {
	if err := reg.Validate(); err != nil {
		return nil, err
	}

	paths := reg.TexturePaths()
	if len(paths) > cellsX*cellsY {
		return nil, fmt.Errorf("atlas: %d textures exceed capacity of %dx%d cells", len(paths), cellsX, cellsY)
	}

	a := &Atlas{
		reg:     reg,
		entries: make(map[string]Entry, len(paths)),
		cellsX:  cellsX,
		cellsY:  cellsY,
	}
	if len(paths) == 0 {
		// 1x1 transparent placeholder so PNG encoding and texture upload
		// of a textureless atlas stay safe
		a.img = image.NewRGBA(image.Rect(0, 0, 1, 1))
		return a, nil
	}

	first, err := provider.GetTexture(paths[0])
	if err != nil {
		return nil, fmt.Errorf("atlas: %w", err)
	}
	a.textureSize = first.Bounds().Dx()
	a.img = image.NewRGBA(image.Rect(0, 0, cellsX*a.textureSize, cellsY*a.textureSize))

	for i, path := range paths {
		src, err := provider.GetTexture(path)
		if err != nil {
			return nil, fmt.Errorf("atlas: %w", err)
		}
		entry := Entry{Col: i % cellsX, Row: i / cellsX}
		a.entries[path] = entry
		// NearestNeighbor keeps pixel-art textures crisp and absorbs any
		// size mismatch into the cell
		xdraw.NearestNeighbor.Scale(a.img, a.cellRect(entry), src, src.Bounds(), xdraw.Src, nil)
	}

	return a, nil
}

// cellRect returns the pixel rectangle of a cell. Row 0 is the bottom row
// in UV space, which is the last pixel row of the image.
func (a *Atlas) cellRect(e Entry) image.Rectangle {
	x0 := e.Col * a.textureSize
	y0 := (a.cellsY - 1 - e.Row) * a.textureSize
	return image.Rect(x0, y0, x0+a.textureSize, y0+a.textureSize)
}

// Image returns the packed atlas image. A textureless atlas carries a 1x1
// transparent placeholder.
func (a *Atlas) Image() *image.RGBA {
	return a.img
}

// TextureSize returns the cell size in pixels.
func (a *Atlas) TextureSize() int {
	return a.textureSize
}

// Registry returns the block table the atlas was built from.
func (a *Atlas) Registry() *registry.Registry {
	return a.reg
}

// Entry returns the cell assigned to a texture path.
func (a *Atlas) Entry(path string) (Entry, bool) {
	e, ok := a.entries[path]
	return e, ok
}

// UVRect returns the UV origin and extent of a texture path's cell. The V
// axis increases upward; cell row 0 is the bottom row.
func (a *Atlas) UVRect(path string) (origin, extent mgl32.Vec2, ok bool) {
	e, ok := a.entries[path]
	if !ok {
		return mgl32.Vec2{}, mgl32.Vec2{}, false
	}
	origin = mgl32.Vec2{
		float32(e.Col) / float32(a.cellsX),
		float32(e.Row) / float32(a.cellsY),
	}
	extent = mgl32.Vec2{
		float32(a.textureSize) / float32(a.cellsX*a.textureSize),
		float32(a.textureSize) / float32(a.cellsY*a.textureSize),
	}
	return origin, extent, true
}

// FaceUVs returns the UV coordinates of a block face's quad corners, in the
// mesher's corner order 0-3: (xMin,yMax), (xMax,yMax), (xMax,yMin),
// (xMin,yMin). When the face's rotate flag is set and rng is non-nil, the
// corners are rotated about the rectangle center by a fresh uniform choice
// of 0, 90 or 180 degrees. An unregistered block yields a degenerate
// all-zero quad.
func (a *Atlas) FaceUVs(blockType world.BlockType, face world.BlockFace, rng *rand.Rand) [4]mgl32.Vec2 {
	def := a.reg.Get(blockType)
	if def == nil {
		return [4]mgl32.Vec2{}
	}
	ft := def.Faces[face]
	origin, extent, ok := a.UVRect(ft.Path)
	if !ok {
		return [4]mgl32.Vec2{}
	}

	xMin, yMin := origin.X(), origin.Y()
	xMax, yMax := xMin+extent.X(), yMin+extent.Y()
	corners := [4]mgl32.Vec2{
		{xMin, yMax},
		{xMax, yMax},
		{xMax, yMin},
		{xMin, yMin},
	}

	if ft.Rotate && rng != nil {
		if quarter := rng.Intn(3); quarter != 0 {
			rotateCorners(&corners, quarter)
		}
	}
	return corners
}

// rotateCorners rotates UVs about the rectangle center by quarter*90
// degrees using exact integer sin/cos so the center and area are
// preserved bit-for-bit.
func rotateCorners(corners *[4]mgl32.Vec2, quarter int) {
	var cos, sin float32
	switch quarter {
	case 1:
		cos, sin = 0, 1
	case 2:
		cos, sin = -1, 0
	default:
		cos, sin = 1, 0
	}

	cx := (corners[0].X() + corners[1].X() + corners[2].X() + corners[3].X()) / 4
	cy := (corners[0].Y() + corners[1].Y() + corners[2].Y() + corners[3].Y()) / 4
	for i, c := range corners {
		dx, dy := c.X()-cx, c.Y()-cy
		corners[i] = mgl32.Vec2{
			cx + dx*cos - dy*sin,
			cy + dx*sin + dy*cos,
		}
	}
}
