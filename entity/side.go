package entity

// Side identifies one of the two players. 1P defends the bottom of the field,
// 2P the top.
type Side uint8

const (
	Side1P Side = iota
	Side2P
)

// String ...
func (s Side) String() string {
	if s == Side2P {
		return "2P"
	}
	return "1P"
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == Side1P {
		return Side2P
	}
	return Side1P
}

// ParseSide parses "1P" or "2P". Anything else is treated as 1P.
func ParseSide(s string) Side {
	if s == "2P" || s == "2p" {
		return Side2P
	}
	return Side1P
}

// MarshalText ...
func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText ...
func (s *Side) UnmarshalText(text []byte) error {
	*s = ParseSide(string(text))
	return nil
}
