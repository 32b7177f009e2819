package game

// Status is the state of the current rally, or of the match once it is over.
type Status uint8

const (
	StatusAlive Status = iota
	Status1PWin
	Status2PWin
	StatusDraw
	StatusOver
)

// String ...
func (s Status) String() string {
	switch s {
	case Status1PWin:
		return "GAME_1P_WIN"
	case Status2PWin:
		return "GAME_2P_WIN"
	case StatusDraw:
		return "GAME_DRAW"
	case StatusOver:
		return "GAME_OVER"
	}
	return "GAME_ALIVE"
}

// RallyEnded returns true for the three statuses that finish a rally.
func (s Status) RallyEnded() bool {
	return s == Status1PWin || s == Status2PWin || s == StatusDraw
}

// MarshalText ...
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText ...
func (s *Status) UnmarshalText(text []byte) error {
	for _, v := range []Status{StatusAlive, Status1PWin, Status2PWin, StatusDraw, StatusOver} {
		if v.String() == string(text) {
			*s = v
			return nil
		}
	}
	*s = StatusAlive
	return nil
}

// Result tells the caller of Update what to do next.
type Result uint8

const (
	// ResultContinue means the rally is still going.
	ResultContinue Result = iota
	// ResultReset means the rally ended and Reset must be called before the
	// next Update has any effect.
	ResultReset
	// ResultQuit means the match is over.
	ResultQuit
)

// String ...
func (r Result) String() string {
	switch r {
	case ResultReset:
		return "RESET"
	case ResultQuit:
		return "QUIT"
	}
	return "CONTINUE"
}

// MarshalText ...
func (r Result) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText ...
func (r *Result) UnmarshalText(text []byte) error {
	for _, v := range []Result{ResultContinue, ResultReset, ResultQuit} {
		if v.String() == string(text) {
			*r = v
			return nil
		}
	}
	*r = ResultContinue
	return nil
}
