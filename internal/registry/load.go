package registry

import (
	"fmt"
	"os"
	"path/filepath"

	"voxelforge/internal/world"
	"voxelforge/pkg/blockdef"
)

// blockIDs maps definition names to their block types. Definitions for
// unknown names are a configuration error.
var blockIDs = map[string]world.BlockType{
	"grass":   world.BlockTypeGrass,
	"dirt":    world.BlockTypeDirt,
	"stone":   world.BlockTypeStone,
	"sand":    world.BlockTypeSand,
	"bedrock": world.BlockTypeBedrock,
}

// FromDefinitions builds a registry from a parsed block-definitions file.
// Air is always registered implicitly. The result is validated: every
// defined block must cover all 6 faces.
func FromDefinitions(file *blockdef.File) (*Registry, error) {
	r := New()
	r.Register(&BlockDefinition{ID: world.BlockTypeAir, Name: "air"})

	for i := range file.Blocks {
		d := &file.Blocks[i]
		id, ok := blockIDs[d.Name]
		if !ok {
			return nil, fmt.Errorf("registry: unknown block name %q in definitions", d.Name)
		}

		tint, err := blockdef.ParseTint(d.Tint)
		if err != nil {
			return nil, fmt.Errorf("registry: block %q: %w", d.Name, err)
		}

		def := &BlockDefinition{
			ID:        id,
			Name:      d.Name,
			IsSolid:   d.Solid,
			TintColor: tint,
			TintFaces: make(map[world.BlockFace]bool),
			Hardness:  d.Hardness,
		}
		for face := world.BlockFace(0); face < world.FaceCount; face++ {
			def.Faces[face] = FaceTexture{
				Path:   d.TexturePath(face.String()),
				Rotate: d.Rotates(face.String()),
			}
			if d.Tinted(face.String()) {
				def.TintFaces[face] = true
			}
		}
		r.Register(def)
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// LoadFromAssets reads <assetsDir>/blocks.json and builds a registry from
// it. Falls back to the built-in table when the file does not exist; a file
// that exists but fails to parse is an error.
func LoadFromAssets(assetsDir string) (*Registry, error) {
	if _, err := os.Stat(filepath.Join(assetsDir, "blocks.json")); os.IsNotExist(err) {
		return Default(), nil
	}
	loader := blockdef.NewLoader(assetsDir)
	file, err := loader.Load("blocks")
	if err != nil {
		return nil, err
	}
	return FromDefinitions(file)
}
