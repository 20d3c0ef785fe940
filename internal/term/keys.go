package term

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"drift/internal/sim"
)

// Terminals only report key presses (plus autorepeat), never releases. A
// press latches its action for FirstHold; presses that arrive while the action
// is still latched are autorepeat and extend it by RepeatHold only, so the
// car lets go soon after the repeat stream stops.
const (
	FirstHold  = 520 * time.Millisecond
	RepeatHold = 120 * time.Millisecond
)

// RuneKeys binds printable keys to driving actions.
var RuneKeys = map[rune]sim.Action{
	'w': sim.ActionThrottle,
	'W': sim.ActionThrottle,
	's': sim.ActionBrake,
	'S': sim.ActionBrake,
	'a': sim.ActionSteerLeft,
	'A': sim.ActionSteerLeft,
	'd': sim.ActionSteerRight,
	'D': sim.ActionSteerRight,
	' ': sim.ActionHandbrake,
}

// SpecialKeys binds non-printable keys to driving actions.
var SpecialKeys = map[tcell.Key]sim.Action{
	tcell.KeyUp:    sim.ActionThrottle,
	tcell.KeyDown:  sim.ActionBrake,
	tcell.KeyLeft:  sim.ActionSteerLeft,
	tcell.KeyRight: sim.ActionSteerRight,
}

// ActionFor maps a key event to its driving action.
func ActionFor(ev *tcell.EventKey) (sim.Action, bool) {
	if ev.Key() == tcell.KeyRune {
		a, ok := RuneKeys[ev.Rune()]
		return a, ok
	}
	a, ok := SpecialKeys[ev.Key()]
	return a, ok
}

// LatchKeys is a sim.Source that turns press-only key events into held
// actions that expire.
type LatchKeys struct {
	keys  sim.Keys
	until map[sim.Action]time.Time
	now   func() time.Time
}

// NewLatchKeys returns latched keys reading the given clock; nil means
// time.Now.
func NewLatchKeys(now func() time.Time) *LatchKeys {
	if now == nil {
		now = time.Now
	}
	return &LatchKeys{
		until: make(map[sim.Action]time.Time),
		now:   now,
	}
}

// Press latches a.
func (l *LatchKeys) Press(a sim.Action) {
	t := l.now()
	hold := FirstHold
	if exp, ok := l.until[a]; ok && t.Before(exp) {
		hold = RepeatHold
	}
	next := t.Add(hold)
	if exp, ok := l.until[a]; ok && exp.After(next) {
		next = exp
	}
	l.until[a] = next
}

// Release drops every latched action.
func (l *LatchKeys) Release() {
	clear(l.until)
	l.keys.Clear()
}

// Held reports whether a is still latched.
func (l *LatchKeys) Held(a sim.Action) bool {
	exp, ok := l.until[a]
	return ok && l.now().Before(exp)
}

func (l *LatchKeys) Poll(f *sim.InputFrame) {
	t := l.now()
	l.keys.Clear()
	for a, exp := range l.until {
		if t.Before(exp) {
			l.keys.Set(a, true)
		} else {
			delete(l.until, a)
		}
	}
	l.keys.Poll(f)
}
