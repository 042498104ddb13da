package game

// Cue tells the frontend that a sound should be played. The game never plays
// anything itself.
type Cue int

const (
	CueClick Cue = iota
	CueCollect
	CueCheer
	CueMusicStart
	CueMusicStop
)

func (c Cue) String() string {
	switch c {
	case CueClick:
		return "click"
	case CueCollect:
		return "collect"
	case CueCheer:
		return "cheer"
	case CueMusicStart:
		return "music start"
	case CueMusicStop:
		return "music stop"
	}
	return "unknown"
}
