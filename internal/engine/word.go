package engine

// Status is the progress of a single word slot.
type Status int

const (
	Pending Status = iota
	Next
	TypingCorrectPrefix
	TypingTypo
	Correct
	Incorrect
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Next:
		return "next"
	case TypingCorrectPrefix:
		return "on-track"
	case TypingTypo:
		return "typo"
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	default:
		return "unknown"
	}
}

// Current reports whether s marks the word being typed.
func (s Status) Current() bool {
	return s == Next || s == TypingCorrectPrefix || s == TypingTypo
}

// Done reports whether s marks a submitted word.
func (s Status) Done() bool {
	return s == Correct || s == Incorrect
}

// WordSlot is one target word of a run.
type WordSlot struct {
	Text   string
	Status Status
}
