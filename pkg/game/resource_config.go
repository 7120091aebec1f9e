package game

import "path"

// ResourceConfig represents the top-level resource manifest loaded from YAML.
// It defines the structure of assets/config/resources.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: assets
//	groups:
//	  pieces:
//	    images: [...]
//	  sounds:
//	    sounds: [...]
type ResourceConfig struct {
	Version  string                   `yaml:"version"`   // Manifest version
	BasePath string                   `yaml:"base_path"` // Base path for all resources (e.g., "assets")
	Groups   map[string]ResourceGroup `yaml:"groups"`    // Resource groups keyed by group name
}

// ResourceGroup is a collection of resources loaded together.
//
// Example from resources.yaml:
//
//	board:
//	  images:
//	    - id: IMAGE_BOARD
//	      path: images/board.png
type ResourceGroup struct {
	Images []ImageResource `yaml:"images"`
	Sounds []SoundResource `yaml:"sounds"`
}

// ImageResource is a single image definition.
// Path without extension defaults to ".png".
type ImageResource struct {
	ID   string `yaml:"id"`   // e.g. "IMAGE_WHITE_3"
	Path string `yaml:"path"` // relative to base_path
}

// SoundResource is a single sound clip definition.
// Path without extension defaults to ".wav".
type SoundResource struct {
	ID   string `yaml:"id"`   // e.g. "SOUND_POCKET"
	Path string `yaml:"path"` // relative to base_path
}

// Resource IDs used by the game.
const (
	ImageBoard   = "IMAGE_BOARD"
	ImageQueen   = "IMAGE_QUEEN"
	ImageStriker = "IMAGE_STRIKER"

	SoundHit         = "SOUND_HIT"
	SoundPocket      = "SOUND_POCKET"
	SoundQueenPocket = "SOUND_QUEEN_POCKET"
)

// buildFullPath joins the manifest base path with a resource's relative path.
// Paths are slash-separated because they address fs.FS entries.
//
// Example:
//
//	buildFullPath("assets", "images/board.png") == "assets/images/board.png"
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return relativePath
	}
	return path.Join(basePath, relativePath)
}

// withDefaultExt appends ext when p has no extension.
func withDefaultExt(p, ext string) string {
	if path.Ext(p) == "" {
		return p + ext
	}
	return p
}
