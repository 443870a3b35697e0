package disclosure

import (
	"strings"
	"time"
)

// Phase is the visual stage of the open/close animation. It is layered on
// top of State and never decides it.
type Phase int

const (
	// PhaseLeft means the panel finished leaving and is not shown.
	PhaseLeft Phase = iota
	// PhaseEntering means the panel is animating in.
	PhaseEntering
	// PhaseEntered means the panel is fully shown.
	PhaseEntered
	// PhaseLeaving means the panel is animating out.
	PhaseLeaving
)

// String returns the string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseEntering:
		return "entering"
	case PhaseEntered:
		return "entered"
	case PhaseLeaving:
		return "leaving"
	default:
		return "left"
	}
}

// TransitionSpec holds the utility classes and timing for the panel
// animation.
type TransitionSpec struct {
	Enter     string
	EnterFrom string
	EnterTo   string
	Leave     string
	LeaveFrom string
	LeaveTo   string

	EnterDuration time.Duration
	LeaveDuration time.Duration
}

// DefaultTransition is a short fade and scale, faster on leave.
func DefaultTransition() TransitionSpec {
	return TransitionSpec{
		Enter:         "transition ease-out duration-100",
		EnterFrom:     "transform opacity-0 scale-95",
		EnterTo:       "transform opacity-100 scale-100",
		Leave:         "transition ease-in duration-75",
		LeaveFrom:     "transform opacity-100 scale-100",
		LeaveTo:       "transform opacity-0 scale-95",
		EnterDuration: 100 * time.Millisecond,
		LeaveDuration: 75 * time.Millisecond,
	}
}

// Classes returns the classes to put on the panel while in phase p.
func (s TransitionSpec) Classes(p Phase) string {
	switch p {
	case PhaseEntering:
		return joinClasses(s.Enter, s.EnterTo)
	case PhaseEntered:
		return s.EnterTo
	case PhaseLeaving:
		return joinClasses(s.Leave, s.LeaveTo)
	default:
		return s.LeaveTo
	}
}

// transition tracks the running animation for one menu.
type transition struct {
	spec    TransitionSpec
	opening bool
	started time.Time
}

// phaseAt derives the phase from elapsed time. The zero transition is Left.
func (t transition) phaseAt(now time.Time) Phase {
	if t.started.IsZero() {
		return PhaseLeft
	}

	elapsed := now.Sub(t.started)

	if t.opening {
		if elapsed < t.spec.EnterDuration {
			return PhaseEntering
		}

		return PhaseEntered
	}

	if elapsed < t.spec.LeaveDuration {
		return PhaseLeaving
	}

	return PhaseLeft
}

func joinClasses(parts ...string) string {
	out := make([]string, 0, len(parts))

	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return strings.Join(out, " ")
}
