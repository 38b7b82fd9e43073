package component

type Outcome int

const (
	InProgress Outcome = iota
	Lost
	Won
)

// Terminal reports whether the round is over.
func (o Outcome) Terminal() bool {
	return o == Lost || o == Won
}

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in_progress"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}
