package bidi

// Level is an embedding level. Even levels are left-to-right, odd levels
// are right-to-left.
type Level uint8

// Maximum levels: explicit embeddings may nest up to MaxExplicitDepth,
// implicit resolution may add one more.
const (
	MaxExplicitDepth Level = 125
	MaxImplicitDepth Level = MaxExplicitDepth + 1
)

// LTR and RTL are the paragraph base levels.
const (
	LTR Level = 0
	RTL Level = 1
)

// IsRTL is true for odd levels.
func (l Level) IsRTL() bool {
	return l%2 == 1
}

// Class returns the strong class of the level's direction (L or R).
func (l Level) Class() Class {
	if l.IsRTL() {
		return R
	}
	return L
}

func explicitLevel(n int) (Level, error) {
	if n < 0 || n > int(MaxExplicitDepth) {
		return 0, ErrLevelExplicitOverflow
	}
	return Level(n), nil
}

func implicitLevel(n int) (Level, error) {
	if n < 0 || n > int(MaxImplicitDepth) {
		return 0, ErrLevelImplicitOverflow
	}
	return Level(n), nil
}

// nextLTR is the least even level greater than l.
func (l Level) nextLTR() (Level, error) {
	return explicitLevel((int(l) + 2) &^ 1)
}

// nextRTL is the least odd level greater than l.
func (l Level) nextRTL() (Level, error) {
	return explicitLevel((int(l) + 1) | 1)
}

// lowestOdd is the least odd level not less than l.
func (l Level) lowestOdd() (Level, error) {
	return implicitLevel(int(l) | 1)
}

func (l *Level) raise(n Level) error {
	if int(*l)+int(n) > int(MaxImplicitDepth) {
		return ErrLevelModificationOverflow
	}
	*l += n
	return nil
}

func (l *Level) lower(n Level) error {
	if n > *l {
		return ErrLevelModificationUnderflow
	}
	*l -= n
	return nil
}
