package mapoptions

// Position is a corner of the map where a control is placed.
type Position string

// Control positions accepted by the engine.
const (
	TopLeft     Position = "top-left"
	TopRight    Position = "top-right"
	BottomLeft  Position = "bottom-left"
	BottomRight Position = "bottom-right"
)

// Valid reports whether p is one of the four corners.
func (p Position) Valid() bool {
	switch p {
	case TopLeft, TopRight, BottomLeft, BottomRight:
		return true
	default:
		return false
	}
}
