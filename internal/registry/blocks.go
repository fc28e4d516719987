package registry

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"voxelforge/internal/world"
)

// FaceTexture is the texture reference of one block face plus whether the
// atlas may rotate its UVs by a random quarter turn.
type FaceTexture struct {
	Path   string
	Rotate bool
}

// BlockDefinition defines the properties of a block type
type BlockDefinition struct {
	ID        world.BlockType
	Name      string
	Faces     [world.FaceCount]FaceTexture
	IsSolid   bool
	TintColor uint32
	TintFaces map[world.BlockFace]bool
	Hardness  float32
}

// Tint returns the tint color of the given face as a normalized RGB vector,
// or black when the face carries no tint. Black is the neutral value a
// downstream shader blends with.
func (d *BlockDefinition) Tint(face world.BlockFace) mgl32.Vec3 {
	if d == nil || d.TintColor == 0 || !d.TintFaces[face] {
		return mgl32.Vec3{}
	}
	return mgl32.Vec3{
		float32((d.TintColor>>16)&0xFF) / 255,
		float32((d.TintColor>>8)&0xFF) / 255,
		float32(d.TintColor&0xFF) / 255,
	}
}

// Registry is the read-only block table consumed by the atlas builder and
// the mesher. It is passed to consumers explicitly; there is no ambient
// global instance.
type Registry struct {
	blocks map[world.BlockType]*BlockDefinition
	byName map[string]world.BlockType

	// distinct texture paths in registration order, so atlas cell
	// assignment is deterministic
	texturePaths []string
	textureSet   map[string]struct{}
}

func New() *Registry {
	return &Registry{
		blocks:     make(map[world.BlockType]*BlockDefinition),
		byName:     make(map[string]world.BlockType),
		textureSet: make(map[string]struct{}),
	}
}

// Register adds a block definition. Air registers with no textures.
func (r *Registry) Register(def *BlockDefinition) {
	if def.TintFaces == nil {
		def.TintFaces = map[world.BlockFace]bool{}
	}
	r.blocks[def.ID] = def
	r.byName[def.Name] = def.ID
	for _, ft := range def.Faces {
		r.addTexture(ft.Path)
	}
}

func (r *Registry) addTexture(path string) {
	if path == "" {
		return
	}
	if _, ok := r.textureSet[path]; !ok {
		r.textureSet[path] = struct{}{}
		r.texturePaths = append(r.texturePaths, path)
	}
}

// Get returns the definition for a block type, or nil if unregistered.
func (r *Registry) Get(blockType world.BlockType) *BlockDefinition {
	return r.blocks[blockType]
}

// ByName resolves a block name to its type.
func (r *Registry) ByName(name string) (world.BlockType, bool) {
	bt, ok := r.byName[name]
	return bt, ok
}

// FaceTexture returns the texture reference of a block face. A registered
// non-air block with a missing face entry is a configuration defect.
func (r *Registry) FaceTexture(blockType world.BlockType, face world.BlockFace) (FaceTexture, error) {
	def, ok := r.blocks[blockType]
	if !ok {
		return FaceTexture{}, fmt.Errorf("registry: block %d not registered", blockType)
	}
	ft := def.Faces[face]
	if ft.Path == "" && blockType != world.BlockTypeAir {
		return FaceTexture{}, fmt.Errorf("registry: block %q has no texture for face %s", def.Name, face)
	}
	return ft, nil
}

// TexturePaths returns the distinct texture paths referenced by all
// registered blocks, in registration order.
func (r *Registry) TexturePaths() []string {
	return r.texturePaths
}

// Blocks returns all registered definitions, keyed by type.
func (r *Registry) Blocks() map[world.BlockType]*BlockDefinition {
	return r.blocks
}

// Validate checks that every registered non-air block has a texture for all
// 6 faces. The atlas builder runs this before packing.
func (r *Registry) Validate() error {
	for bt, def := range r.blocks {
		if bt == world.BlockTypeAir {
			continue
		}
		for face := world.BlockFace(0); face < world.FaceCount; face++ {
			if def.Faces[face].Path == "" {
				return fmt.Errorf("registry: block %q has no texture for face %s", def.Name, face)
			}
		}
	}
	return nil
}

// sameOnAllFaces builds a face table using one texture everywhere.
func sameOnAllFaces(path string, rotate bool) [world.FaceCount]FaceTexture {
	var faces [world.FaceCount]FaceTexture
	for i := range faces {
		faces[i] = FaceTexture{Path: path, Rotate: rotate}
	}
	return faces
}

// topSideBottom builds a face table from a top, side and bottom texture.
func topSideBottom(top, side, bottom string) [world.FaceCount]FaceTexture {
	faces := sameOnAllFaces(side, false)
	faces[world.FaceTop] = FaceTexture{Path: top}
	faces[world.FaceBottom] = FaceTexture{Path: bottom}
	return faces
}

// Default returns the built-in block table used when no JSON definitions
// are supplied.
func Default() *Registry {
	r := New()

	r.Register(&BlockDefinition{
		ID:      world.BlockTypeAir,
		Name:    "air",
		IsSolid: false,
	})

	r.Register(&BlockDefinition{
		ID:        world.BlockTypeGrass,
		Name:      "grass",
		Faces:     topSideBottom("grass_top.png", "grass_side.png", "dirt.png"),
		IsSolid:   true,
		TintColor: 0x7DFF5C,
		TintFaces: map[world.BlockFace]bool{
			world.FaceTop:   true,
			world.FaceNorth: true,
			world.FaceSouth: true,
			world.FaceEast:  true,
			world.FaceWest:  true,
		},
		Hardness: 0.6,
	})

	r.Register(&BlockDefinition{
		ID:       world.BlockTypeDirt,
		Name:     "dirt",
		Faces:    sameOnAllFaces("dirt.png", true),
		IsSolid:  true,
		Hardness: 0.5,
	})

	r.Register(&BlockDefinition{
		ID:       world.BlockTypeStone,
		Name:     "stone",
		Faces:    sameOnAllFaces("stone.png", true),
		IsSolid:  true,
		Hardness: 1.5,
	})

	r.Register(&BlockDefinition{
		ID:       world.BlockTypeSand,
		Name:     "sand",
		Faces:    sameOnAllFaces("sand.png", true),
		IsSolid:  true,
		Hardness: 0.5,
	})

	r.Register(&BlockDefinition{
		ID:       world.BlockTypeBedrock,
		Name:     "bedrock",
		Faces:    sameOnAllFaces("bedrock.png", false),
		IsSolid:  true,
		Hardness: -1.0, // Unbreakable
	})

	return r
}
