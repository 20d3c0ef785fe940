package sim

// Action is a discrete driving control.
type Action uint8

const (
	ActionThrottle Action = iota
	ActionBrake
	ActionSteerLeft
	ActionSteerRight
	ActionHandbrake
	numActions
)

var actionNames = [numActions]string{"throttle", "brake", "left", "right", "handbrake"}

func (a Action) String() string {
	if a < numActions {
		return actionNames[a]
	}
	return "unknown"
}

// InputFrame is the normalized control state for one tick.
type InputFrame struct {
	Throttle   bool
	Brake      bool
	SteerLeft  bool
	SteerRight bool
	Handbrake  bool
	// AnalogSteer is nominally -1..1 but is the plain sum of every analog
	// source, so it can leave that range.
	AnalogSteer float64
}

// SteerAxis combines the digital and analog steering inputs without clamping.
// Holding left and right together cancels to zero.
func (f InputFrame) SteerAxis() float64 {
	axis := f.AnalogSteer
	if f.SteerLeft {
		axis--
	}
	if f.SteerRight {
		axis++
	}
	return axis
}

func (f *InputFrame) set(a Action) {
	switch a {
	case ActionThrottle:
		f.Throttle = true
	case ActionBrake:
		f.Brake = true
	case ActionSteerLeft:
		f.SteerLeft = true
	case ActionSteerRight:
		f.SteerRight = true
	case ActionHandbrake:
		f.Handbrake = true
	}
}

// Source contributes to an InputFrame. Digital signals are ORed in and
// analog values added, so several sources can be active at once.
type Source interface {
	Poll(f *InputFrame)
}

// Keys is a digital source driven by press/release events.
type Keys struct {
	down [numActions]bool
}

func (k *Keys) Set(a Action, down bool) {
	if a < numActions {
		k.down[a] = down
	}
}

func (k *Keys) Down(a Action) bool {
	return a < numActions && k.down[a]
}

// Clear releases every action, e.g. when the window loses focus.
func (k *Keys) Clear() {
	k.down = [numActions]bool{}
}

func (k *Keys) Poll(f *InputFrame) {
	for a, d := range k.down {
		if d {
			f.set(Action(a))
		}
	}
}

// Pad is a continuous steering source. Its value persists until the next
// Set or a Release.
type Pad struct {
	x float64
}

func (p *Pad) Set(x float64) { p.x = x }
func (p *Pad) Release()      { p.x = 0 }
func (p *Pad) Value() float64 {
	return p.x
}

func (p *Pad) Poll(f *InputFrame) {
	f.AnalogSteer += p.x
}

// Aggregator folds all registered sources into one frame per tick.
type Aggregator struct {
	sources []Source
}

func NewAggregator(sources ...Source) *Aggregator {
	return &Aggregator{sources: sources}
}

func (a *Aggregator) Add(src Source) {
	a.sources = append(a.sources, src)
}

func (a *Aggregator) Frame() InputFrame {
	var f InputFrame
	for _, src := range a.sources {
		src.Poll(&f)
	}
	return f
}

// KeyMap binds frontend key codes to actions.
type KeyMap[K comparable] map[K]Action

// Sync rebuilds ks from the current key states. An action is held while any
// key bound to it is down.
func (m KeyMap[K]) Sync(ks *Keys, isDown func(K) bool) {
	ks.Clear()
	for key, a := range m {
		if isDown(key) {
			ks.Set(a, true)
		}
	}
}
