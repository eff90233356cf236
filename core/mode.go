package core

// Mode selects which engine drives a rig on a given tick.
type Mode uint8

const (
	// ModeManual responds to user motion and coasts after drags.
	ModeManual Mode = iota

	// ModeAuto interpolates toward a selection-derived target pose.
	ModeAuto
)

func (m Mode) String() string {
	switch m {
	case ModeManual:
		return "MANUAL"
	case ModeAuto:
		return "AUTO"
	default:
		return "UNKNOWN"
	}
}
