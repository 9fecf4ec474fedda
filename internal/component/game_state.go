// internal/component/game_state.go
package component

// Phase — фаза сессии
type Phase int

const (
	Running Phase = iota
	Paused
	Over
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Over:
		return "over"
	default:
		return "unknown"
	}
}

// Session — счётчики и флаги текущей партии.
type Session struct {
	Phase Phase
	Wave  int // только растёт
	Kills int
	Day   int
	Tick  uint64
}
