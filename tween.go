package scatter

import (
	"time"
)

// Tween moves a position from From to To during Duration starting at Start.
type Tween struct {
	From     Pos
	To       Pos
	Start    time.Time
	Duration time.Duration
}

func Still(pos Pos) Tween {
	return Tween{
		From: pos,
		To:   pos,
	}
}

func (t Tween) Progress(now time.Time) float64 {
	if t.Duration <= 0 {
		return 1
	}
	elapsed := now.Sub(t.Start)
	switch {
	case elapsed <= 0:
		return 0
	case elapsed >= t.Duration:
		return 1
	default:
		return float64(elapsed) / float64(t.Duration)
	}
}

func (t Tween) At(now time.Time) Pos {
	p := EaseCubicInOut(t.Progress(now))
	return Pos{
		X: t.From.X + (t.To.X-t.From.X)*p,
		Y: t.From.Y + (t.To.Y-t.From.Y)*p,
	}
}

func (t Tween) Done(now time.Time) bool {
	return t.Progress(now) >= 1
}

// Retarget starts a new tween from wherever t is at now.
func (t Tween) Retarget(to Pos, now time.Time, d time.Duration) Tween {
	return Tween{
		From:     t.At(now),
		To:       to,
		Start:    now,
		Duration: d,
	}
}

func EaseCubicInOut(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	case t < 0.5:
		return 4 * t * t * t
	default:
		t = 2*t - 2
		return (t*t*t + 2) / 2
	}
}

