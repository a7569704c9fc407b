package battleship

const (
	DefaultGridSize  int = 10
	DefaultFleetSize int = 5
	// largest width whose column labels stay two letters (ZZ); also bounds
	// height and ship length
	MaxGridSize int = 26 * 27
)

type CellState uint8

const (
	CellStateOpenWater CellState = iota
	CellStateUndamagedShip
	CellStateDamagedShip

	// Reserved for a future attack operation that records guesses.
	// Nothing produces it yet.
	CellStateMiss
)

// Every glyph is three characters wide so columns stay aligned.
func (c CellState) Glyph() string {
	switch c {
	case CellStateUndamagedShip:
		return "[ ]"
	case CellStateDamagedShip:
		return "[X]"
	case CellStateMiss:
		return " x "
	default:
		return " . "
	}
}

type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewCoordinates(x, y int) Coordinates {
	return Coordinates{X: x, Y: y}
}

// ColumnLabel names the zero based column i: A..Z, then AA, AB, ... like
// spreadsheet columns.
func ColumnLabel(i int) string {
	if i < 0 {
		return ""
	}

	var label []byte
	for n := i + 1; n > 0; n = (n - 1) / 26 {
		label = append([]byte{byte('A' + (n-1)%26)}, label...)
	}
	return string(label)
}
