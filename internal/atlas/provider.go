package atlas

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/png"
	"os"
	"path/filepath"
)

// TextureProvider supplies raw decoded pixels for a texture path. Source
// textures are assumed square and equal-sized; the builder does not
// validate this.
type TextureProvider interface {
	GetTexture(path string) (*image.RGBA, error)
}

// DirProvider loads PNG textures from a directory, caching decoded images.
type DirProvider struct {
	root  string
	cache map[string]*image.RGBA
}

func NewDirProvider(root string) *DirProvider {
	return &DirProvider{
		root:  root,
		cache: make(map[string]*image.RGBA),
	}
}

func (p *DirProvider) GetTexture(path string) (*image.RGBA, error) {
	if img, ok := p.cache[path]; ok {
		return img, nil
	}

	file, err := os.Open(filepath.Join(p.root, path))
	if err != nil {
		return nil, fmt.Errorf("failed to open texture file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %s: %w", path, err)
	}

	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, image.Point{}, draw.Src)

	p.cache[path] = rgba
	return rgba, nil
}

// MapProvider serves textures from an in-memory map. Used by tests and by
// callers that already hold decoded pixels.
type MapProvider map[string]*image.RGBA

func (p MapProvider) GetTexture(path string) (*image.RGBA, error) {
	img, ok := p[path]
	if !ok {
		return nil, fmt.Errorf("no texture %q", path)
	}
	return img, nil
}
