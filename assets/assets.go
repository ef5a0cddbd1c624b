// Package assets embeds the default map, wall texture and billboard.
package assets

import "embed"

//go:embed *.png
var FS embed.FS

const (
	Map       = "map.png"
	Wall      = "wall.png"
	Billboard = "billboard.png"
)
