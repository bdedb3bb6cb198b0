package model

// Move is one step of a plan: the direction the player walks (and pushes)
// during a single timestep.
type Move int

const (
	MoveUp Move = iota
	MoveDown
	MoveLeft
	MoveRight
)

var moveTags = map[Move]string{
	MoveUp:    "U",
	MoveDown:  "D",
	MoveLeft:  "L",
	MoveRight: "R",
}

func (move Move) String() string {
	return moveTags[move]
}

// Delta returns the row and column offsets of a single step in the move's
// direction.
func (move Move) Delta() (deltaRow, deltaCol int) {
	switch move {
	case MoveUp:
		return -1, 0
	case MoveDown:
		return 1, 0
	case MoveLeft:
		return 0, -1
	default:
		return 0, 1
	}
}

// moves in a fixed order so clause generation stays deterministic.
var moves = []Move{MoveUp, MoveDown, MoveLeft, MoveRight}
