package world

import (
	"github.com/go-gl/mathgl/mgl32"
)

type BlockType uint16

const (
	BlockTypeAir BlockType = iota
	BlockTypeGrass
	BlockTypeDirt
	BlockTypeStone
	BlockTypeSand
	BlockTypeBedrock
)

// Block data
const (
	BlockSize = 1.0
)

// BlockFace identifies a face of a unit cube block
type BlockFace int

const (
	FaceNorth BlockFace = iota // +Z
	FaceSouth                  // -Z
	FaceEast                   // +X
	FaceWest                   // -X
	FaceTop                    // +Y
	FaceBottom                 // -Y

	FaceCount = 6
)

func (f BlockFace) String() string {
	switch f {
	case FaceNorth:
		return "north"
	case FaceSouth:
		return "south"
	case FaceEast:
		return "east"
	case FaceWest:
		return "west"
	case FaceTop:
		return "top"
	case FaceBottom:
		return "bottom"
	}
	return "unknown"
}

var (
	// FaceOffsets holds the unit step toward the neighbor cell of each face.
	FaceOffsets = [FaceCount][3]int{
		FaceNorth:  {0, 0, 1},
		FaceSouth:  {0, 0, -1},
		FaceEast:   {1, 0, 0},
		FaceWest:   {-1, 0, 0},
		FaceTop:    {0, 1, 0},
		FaceBottom: {0, -1, 0},
	}

	// FaceNormals holds the fixed outward normal of each face.
	FaceNormals = [FaceCount]mgl32.Vec3{
		FaceNorth:  {0, 0, 1},
		FaceSouth:  {0, 0, -1},
		FaceEast:   {1, 0, 0},
		FaceWest:   {-1, 0, 0},
		FaceTop:    {0, 1, 0},
		FaceBottom: {0, -1, 0},
	}

	// FaceCorners lists the 4 corner offsets of each face in winding order
	// 0-1-2-3, front-face CCW seen along the outward normal. Offsets are in
	// {-1,1} and get scaled by 0.5 at emit time so a block spans a unit cube
	// centered on its cell coordinate. Triangulation is 0-1-2, 0-2-3.
	FaceCorners = [FaceCount][4]mgl32.Vec3{
		FaceNorth: {
			{-1, -1, 1},
			{1, -1, 1},
			{1, 1, 1},
			{-1, 1, 1},
		},
		FaceSouth: {
			{1, -1, -1},
			{-1, -1, -1},
			{-1, 1, -1},
			{1, 1, -1},
		},
		FaceEast: {
			{1, -1, 1},
			{1, -1, -1},
			{1, 1, -1},
			{1, 1, 1},
		},
		FaceWest: {
			{-1, -1, -1},
			{-1, -1, 1},
			{-1, 1, 1},
			{-1, 1, -1},
		},
		FaceTop: {
			{-1, 1, 1},
			{1, 1, 1},
			{1, 1, -1},
			{-1, 1, -1},
		},
		FaceBottom: {
			{-1, -1, -1},
			{1, -1, -1},
			{1, -1, 1},
			{-1, -1, 1},
		},
	}
)
