package preview

// Phase is a step of the chat preview animation. Phases are ordered and
// a controller only ever moves forward through them.
type Phase int

const (
	Typing Phase = iota
	Streaming
	Done
)

func (p Phase) String() string {
	switch p {
	case Typing:
		return "typing"
	case Streaming:
		return "streaming"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// ParsePhase is the inverse of Phase.String.
func ParsePhase(s string) (Phase, bool) {
	for p := Typing; p <= Done; p++ {
		if p.String() == s {
			return p, true
		}
	}
	return 0, false
}
