package deck

import (
	"time"

	"krux_server/internal/domain"
)

// Key is a keyboard equivalent for a swipe gesture.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
)

// Gesture tuning. Distances are in the pointer's coordinate units.
const (
	DefaultSwipeThreshold = 110.0
	DefaultFlickVelocity  = 800.0 // units per second

	saturationDistance = 140.0
	badgeDeadZone      = 20.0
	rotationDivisor    = 30.0
)

// Phase is the per-card gesture lifecycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDragging
	PhaseCommitting
	PhaseSpringBack
)

// Decision is the outcome of releasing a drag: either commit an advance with
// the given reaction, or spring the card back with no state transition.
type Decision struct {
	Commit   bool
	Reaction domain.Reaction
	DX       float64
}

// DragSession interprets one pointer-drag over a card. It owns the transient
// horizontal displacement and converts it into a commit / spring-back
// decision plus live visual feedback values. It carries no deck state, so it
// stays testable without a UI harness.
type DragSession struct {
	threshold float64
	flick     float64

	phase    Phase
	startX   float64
	dx       float64
	lastX    float64
	lastAt   time.Time
	velocity float64
}

func NewDragSession(threshold, flickVelocity float64) *DragSession {
	if threshold == 0 {
		threshold = DefaultSwipeThreshold
	}
	if flickVelocity == 0 {
		flickVelocity = DefaultFlickVelocity
	}
	return &DragSession{threshold: threshold, flick: flickVelocity}
}

func (s *DragSession) Phase() Phase { return s.phase }

// Start begins a drag at pointer position x.
func (s *DragSession) Start(x float64, at time.Time) {
	if s.phase == PhaseCommitting {
		return
	}
	s.phase = PhaseDragging
	s.startX = x
	s.lastX = x
	s.lastAt = at
	s.dx = 0
	s.velocity = 0
}

// Move samples the pointer at position x and returns the current
// displacement. Velocity is derived from consecutive samples.
func (s *DragSession) Move(x float64, at time.Time) float64 {
	if s.phase != PhaseDragging {
		return s.dx
	}
	if dt := at.Sub(s.lastAt).Seconds(); dt > 0 {
		s.velocity = (x - s.lastX) / dt
	}
	s.lastX = x
	s.lastAt = at
	s.dx = x - s.startX
	return s.dx
}

// Release ends the drag. Crossing the distance threshold, or a fast flick in
// a consistent direction, commits; anything less springs back.
func (s *DragSession) Release() Decision {
	if s.phase != PhaseDragging {
		return Decision{}
	}

	dx := s.dx
	commit := abs(dx) >= s.threshold ||
		(abs(s.velocity) >= s.flick && dx != 0 && sameSign(dx, s.velocity))

	if !commit {
		s.phase = PhaseSpringBack
		s.dx = 0
		return Decision{DX: dx}
	}

	s.phase = PhaseCommitting
	reaction := domain.ReactionSkip
	if dx > 0 {
		reaction = domain.ReactionLike
	}
	return Decision{Commit: true, Reaction: reaction, DX: dx}
}

// Settle returns the session to idle once the card finished its exit or
// spring-back animation.
func (s *DragSession) Settle() {
	s.phase = PhaseIdle
	s.dx = 0
	s.velocity = 0
}

// Rotation is the card tilt for the current displacement, linear in dx.
func (s *DragSession) Rotation() float64 {
	return s.dx / rotationDivisor
}

// LikeIntensity is the like-badge opacity: zero inside the dead zone, then
// rising monotonically and saturating at a fixed distance.
func (s *DragSession) LikeIntensity() float64 {
	return intensity(s.dx)
}

// SkipIntensity mirrors LikeIntensity for leftward drags.
func (s *DragSession) SkipIntensity() float64 {
	return intensity(-s.dx)
}

func intensity(dx float64) float64 {
	if dx <= badgeDeadZone {
		return 0
	}
	v := dx / saturationDistance
	if v > 1 {
		return 1
	}
	return v
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func sameSign(a, b float64) bool {
	return (a > 0) == (b > 0)
}
