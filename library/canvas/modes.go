package canvas

import "github.com/goki/ki/kit"

// RecordModes is the quantity a recording samples from a dropped element.
type RecordModes int32

//go:generate stringer -type=RecordModes

var KiT_RecordModes = kit.Enums.AddEnum(RecordModesN, kit.NotBitFlag, nil)

func (ev RecordModes) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *RecordModes) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// Concentration records the element's concentration
	Concentration RecordModes = iota

	// InitialValue records the element's initial value
	InitialValue

	RecordModesN
)

// ModeChoices are the entries of the recording mode menu, in menu order.
var ModeChoices = []RecordModes{Concentration, InitialValue}

// Label is the menu text for the mode.
func (rm RecordModes) Label() string {
	switch rm {
	case Concentration:
		return "Conc"
	case InitialValue:
		return "Init"
	}
	return rm.String()
}

// Field is the element field name handed to the Recorder.
func (rm RecordModes) Field() string {
	switch rm {
	case Concentration:
		return "Conc"
	case InitialValue:
		return "init"
	}
	return ""
}

// ModeForLabel returns the mode whose Label or Field is s.
func ModeForLabel(s string) (RecordModes, bool) {
	for _, rm := range ModeChoices {
		if s == rm.Label() || s == rm.Field() {
			return rm, true
		}
	}
	return RecordModesN, false
}
