// Package cue defines the named feedback cues the engine attaches to
// transition results. The simulation core never plays sound itself; the
// presentation layer maps cues to whatever feedback it has available.
package cue

// Cue names a feedback effect.
type Cue string

const (
	None    Cue = ""
	Click   Cue = "click"
	Cash    Cue = "cash"
	Siren   Cue = "siren"
	Success Cue = "success"
)

// Player plays named cues. Implementations must be safe to call from the
// presentation layer's event loop and must never touch simulation state.
type Player interface {
	Play(c Cue)
}

// Nop discards every cue.
type Nop struct{}

func (Nop) Play(Cue) {}
