package blockdef

// Definition is one block entry in a definitions file. Face keys in
// Textures are "top", "bottom", "side" or a specific face name ("north",
// "south", "east", "west"); "side" is the fallback for the four lateral
// faces.
type Definition struct {
	Name        string            `json:"name"`
	Solid       bool              `json:"solid"`
	Hardness    float32           `json:"hardness"`
	Tint        string            `json:"tint"` // hex RRGGBB, empty = no tint
	TintFaces   []string          `json:"tint_faces"`
	Textures    map[string]string `json:"textures"`
	RotateFaces []string          `json:"rotate_faces"` // faces whose UVs may rotate, "*" = all
}

// File is the root of a block-definitions JSON document.
type File struct {
	Blocks []Definition `json:"blocks"`
}

// sideFaces are the lateral faces covered by the "side" texture key.
var sideFaces = map[string]bool{
	"north": true,
	"south": true,
	"east":  true,
	"west":  true,
}

// TexturePath resolves the texture path of one face, applying the "side"
// fallback. Returns "" when the definition has no entry for the face.
func (d *Definition) TexturePath(face string) string {
	if p, ok := d.Textures[face]; ok {
		return p
	}
	if sideFaces[face] {
		return d.Textures["side"]
	}
	return ""
}

// Rotates reports whether the face's UVs may be randomly rotated.
func (d *Definition) Rotates(face string) bool {
	for _, f := range d.RotateFaces {
		if f == "*" || f == face {
			return true
		}
		if f == "side" && sideFaces[face] {
			return true
		}
	}
	return false
}

// Tinted reports whether the face carries the definition's tint color.
func (d *Definition) Tinted(face string) bool {
	for _, f := range d.TintFaces {
		if f == "*" || f == face {
			return true
		}
		if f == "side" && sideFaces[face] {
			return true
		}
	}
	return false
}
