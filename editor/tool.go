package editor

type Tool int

const (
	ToolPlace Tool = iota + 1
	ToolDelete
	ToolFill
	ToolSelect
)

// Tools lists every tool in key order.
var Tools = []Tool{ToolPlace, ToolDelete, ToolFill, ToolSelect}

func (t Tool) String() string {
	switch t {
	case ToolPlace:
		return "Place Tile"
	case ToolDelete:
		return "Delete Tile"
	case ToolFill:
		return "Fill Selection"
	case ToolSelect:
		return "Tile Selection"
	default:
		return "Unknown"
	}
}

// Implemented reports whether the tool acts on the canvas.
func (t Tool) Implemented() bool {
	return t == ToolPlace
}
