package gcode

type ModalGroup byte

const (
	ModalGroupNone ModalGroup = iota
	ModalGroupNonModal
	ModalGroupMotion
	ModalGroupPlaneSelection
	ModalGroupDistanceMode
	ModalGroupUnits
	ModalGroupCoordinateSystem
	ModalGroupCannedCycleReturn
	ModalGroupExtrusionMode
	ModalGroupStopping
	ModalGroupSpindle
	ModalGroupCoolant
	ModalGroupTemperature
	ModalGroupFan
	ModalGroupFeedRate
)

var modalGroupNames = [...]string{
	ModalGroupNone:              "none",
	ModalGroupNonModal:          "non-modal",
	ModalGroupMotion:            "motion",
	ModalGroupPlaneSelection:    "plane",
	ModalGroupDistanceMode:      "distance",
	ModalGroupUnits:             "units",
	ModalGroupCoordinateSystem:  "coordinate-system",
	ModalGroupCannedCycleReturn: "canned-cycle-return",
	ModalGroupExtrusionMode:     "extrusion",
	ModalGroupStopping:          "stopping",
	ModalGroupSpindle:           "spindle",
	ModalGroupCoolant:           "coolant",
	ModalGroupTemperature:       "temperature",
	ModalGroupFan:               "fan",
	ModalGroupFeedRate:          "feed-rate",
}

func (g ModalGroup) String() string {
	if int(g) < len(modalGroupNames) {
		return modalGroupNames[g]
	}
	return "unknown"
}

func (w Word) ModalGroup() ModalGroup {
	switch w.W {
	case 'G':
		switch w.Arg {
		case 4, 10, 28, 30, 53, 92:
			return ModalGroupNonModal
		case 0, 1, 2, 3, 38.2, 38.3, 38.4, 38.5, 80, 81, 82, 83:
			return ModalGroupMotion
		case 17, 18, 19:
			return ModalGroupPlaneSelection
		case 90, 91:
			return ModalGroupDistanceMode
		case 20, 21:
			return ModalGroupUnits
		case 54, 55, 56, 57, 58, 59:
			return ModalGroupCoordinateSystem
		case 98, 99:
			return ModalGroupCannedCycleReturn
		}
	case 'M':
		switch w.Arg {
		case 0, 1, 2, 30:
			return ModalGroupStopping
		case 3, 4, 5:
			return ModalGroupSpindle
		case 7, 8, 9:
			return ModalGroupCoolant
		case 82, 83:
			return ModalGroupExtrusionMode
		case 104, 109, 140, 190:
			return ModalGroupTemperature
		case 106, 107:
			return ModalGroupFan
		}
	case 'F':
		return ModalGroupFeedRate
	}

	return ModalGroupNone
}

// CommandModalGroup returns the modal group of cmd's head. Raw commands
// are looked up by their first word when it is a letter+number head.
func CommandModalGroup(cmd Command) ModalGroup {
	if cmd == nil {
		return ModalGroupNone
	}
	name := cmd.Name()
	if name == "" {
		return ModalGroupNone
	}
	head, _, ok := scanHead(name)
	if !ok {
		return ModalGroupNone
	}
	return head.ModalGroup()
}
