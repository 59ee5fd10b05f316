package component

// GameState — состояние партии
type GameState int

const (
	Playing GameState = iota
	Paused
	Over
)

func (s GameState) String() string {
	switch s {
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	case Over:
		return "Over"
	default:
		return "Unknown"
	}
}
