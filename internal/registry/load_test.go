package registry

import (
	"testing"

	"voxelforge/internal/world"
	"voxelforge/pkg/blockdef"
)

func TestFromDefinitions(t *testing.T) {
	file := &blockdef.File{
		Blocks: []blockdef.Definition{
			{
				Name:      "grass",
				Solid:     true,
				Tint:      "7DFF5C",
				TintFaces: []string{"top", "side"},
				Textures: map[string]string{
					"top": "grass_top.png", "side": "grass_side.png", "bottom": "dirt.png",
				},
			},
			{
				Name:        "stone",
				Solid:       true,
				Textures:    map[string]string{"top": "stone.png", "side": "stone.png", "bottom": "stone.png"},
				RotateFaces: []string{"*"},
			},
		},
	}

	r, err := FromDefinitions(file)
	if err != nil {
		t.Fatalf("FromDefinitions failed: %v", err)
	}

	ft, err := r.FaceTexture(world.BlockTypeGrass, world.FaceNorth)
	if err != nil {
		t.Fatalf("FaceTexture failed: %v", err)
	}
	if ft.Path != "grass_side.png" || ft.Rotate {
		t.Errorf("Unexpected grass north face %+v", ft)
	}

	ft, _ = r.FaceTexture(world.BlockTypeStone, world.FaceTop)
	if !ft.Rotate {
		t.Error("Expected stone top to rotate")
	}

	grass := r.Get(world.BlockTypeGrass)
	if !grass.TintFaces[world.FaceTop] || grass.TintFaces[world.FaceBottom] {
		t.Error("Expected grass tint on top but not bottom")
	}
}

func TestFromDefinitionsUnknownName(t *testing.T) {
	file := &blockdef.File{
		Blocks: []blockdef.Definition{{Name: "obsidian"}},
	}
	if _, err := FromDefinitions(file); err == nil {
		t.Fatal("Expected error for unknown block name")
	}
}

func TestFromDefinitionsIncompleteFaces(t *testing.T) {
	file := &blockdef.File{
		Blocks: []blockdef.Definition{
			{Name: "stone", Textures: map[string]string{"top": "stone.png"}},
		},
	}
	if _, err := FromDefinitions(file); err == nil {
		t.Fatal("Expected validation error for missing side/bottom textures")
	}
}
