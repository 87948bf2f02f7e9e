package canvas

import (
	"fmt"
	"strings"

	"github.com/goki/gi/oswin/mimedata"
	"github.com/goki/ki/kit"
	"github.com/goki/mat32"
	"github.com/goki/pi/filecat"
	"github.com/google/uuid"
)

// DropStates are the steps of one drag-and-drop recording interaction.
type DropStates int32

//go:generate stringer -type=DropStates

var KiT_DropStates = kit.Enums.AddEnum(DropStatesN, kit.NotBitFlag, nil)

func (ev DropStates) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *DropStates) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// Idle is waiting for a drop
	Idle DropStates = iota

	// PayloadAccepted means the dropped text resolved to an element
	PayloadAccepted

	// ModeMenuOpen is waiting for the user to pick a recording mode
	ModeMenuOpen

	// Dispatched means the recording request has been issued
	Dispatched

	DropStatesN
)

// DropRequest is a dropped element waiting for, or given, a recording mode.
// ID identifies the interaction; menu callbacks carry it so a stale menu
// cannot act on a later drop.
type DropRequest struct {
	ID     uuid.UUID
	Source Element
	Mode   RecordModes
}

// DropController turns a text drop into a recording table request.
// All methods must be called from the UI event loop.
type DropController struct {
	Data     DataBackend
	Recorder Recorder
	Menu     MenuPresenter

	// OnDispatched, if set, is called after every recording request with its outcome.
	OnDispatched func(req DropRequest, err error)
	// OnState, if set, is called on every state transition.
	OnState func(from, to DropStates)
	Logf    func(format string, args ...interface{})

	state       DropStates
	pending     *DropRequest
	transitions int
}

// Accepts reports whether md carries a plain text payload.
func (dc *DropController) Accepts(md mimedata.Mimes) bool {
	return md.HasType(filecat.TextPlain)
}

// Drop handles a drop at pos. It returns true when the drop is accepted,
// in which case the mode menu has been shown.
func (dc *DropController) Drop(md mimedata.Mimes, pos mat32.Vec2) bool {
	if !dc.Accepts(md) {
		return false
	}
	if dc.state != Idle {
		dc.logf("canvas: drop rejected: %v", ErrMenuOpen)
		return false
	}
	path := strings.TrimSpace(md.Text(filecat.TextPlain))
	el, err := dc.Data.Lookup(path)
	if err != nil {
		dc.logf("canvas: drop rejected: %v", err)
		return false
	}
	id := uuid.New()
	dc.pending = &DropRequest{ID: id, Source: el}
	dc.setState(PayloadAccepted)
	dc.setState(ModeMenuOpen)
	dc.Menu.ShowModeMenu(pos, ModeChoices,
		func(mode RecordModes) error { return dc.ChooseFor(id, mode) },
		func() { dc.DismissFor(id) })
	return true
}

// Choose finishes the pending drop, whichever it is. See ChooseFor.
func (dc *DropController) Choose(mode RecordModes) error {
	if dc.pending == nil {
		return ErrNoPendingDrop
	}
	return dc.ChooseFor(dc.pending.ID, mode)
}

// ChooseFor finishes drop id by asking the Recorder for a table in the
// given mode. The controller is Idle afterwards, even on error.
// ErrNoPendingDrop is returned if id is not the pending drop.
func (dc *DropController) ChooseFor(id uuid.UUID, mode RecordModes) error {
	if !dc.owns(id) {
		return ErrNoPendingDrop
	}
	if mode < 0 || mode >= RecordModesN {
		return fmt.Errorf("canvas: invalid recording mode %v", mode)
	}
	req := *dc.pending
	req.Mode = mode
	dc.setState(Dispatched)
	err := dc.Recorder.CreateTable(req.Source, mode.Field())
	if err != nil {
		err = fmt.Errorf("canvas: recording %s %s: %w", req.Source.Path(), mode.Label(), err)
		dc.logf("%v", err)
	} else {
		dc.logf("canvas: recording %s %s (%s)", req.Source.Path(), mode.Label(), req.ID)
	}
	dc.pending = nil
	dc.setState(Idle)
	if dc.OnDispatched != nil {
		dc.OnDispatched(req, err)
	}
	return err
}

// Dismiss closes the mode menu of the pending drop without recording anything.
func (dc *DropController) Dismiss() {
	if dc.pending == nil {
		return
	}
	dc.DismissFor(dc.pending.ID)
}

// DismissFor cancels drop id. It does nothing if id is not the pending drop.
func (dc *DropController) DismissFor(id uuid.UUID) {
	if !dc.owns(id) {
		return
	}
	dc.pending = nil
	dc.setState(Idle)
}

func (dc *DropController) owns(id uuid.UUID) bool {
	return dc.state == ModeMenuOpen && dc.pending != nil && dc.pending.ID == id
}

func (dc *DropController) State() DropStates { return dc.state }

// Transitions returns the number of state changes since creation.
func (dc *DropController) Transitions() int { return dc.transitions }

// Pending returns the drop waiting for a mode, or nil.
func (dc *DropController) Pending() *DropRequest { return dc.pending }

func (dc *DropController) setState(st DropStates) {
	from := dc.state
	dc.state = st
	dc.transitions++
	if dc.OnState != nil {
		dc.OnState(from, st)
	}
}

func (dc *DropController) logf(format string, args ...interface{}) {
	if dc.Logf != nil {
		dc.Logf(format, args...)
	}
}
