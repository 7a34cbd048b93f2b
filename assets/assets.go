// Package assets embeds the gallery templates and static files.
package assets

import _ "embed"

// MapLibreVersion is the maplibre-gl release loaded by rendered pages.
const MapLibreVersion = "5.6.0"

var (
	//go:embed page.html.tpl
	PageTemplate string

	//go:embed index.html.tpl
	IndexTemplate string

	//go:embed style.css
	Style string

	//go:embed script.js
	Script string

	//go:embed marker.svg
	Marker string

	//go:embed favicon.ico
	Favicon []byte
)
