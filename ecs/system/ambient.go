package system

import (
	"time"

	"github.com/milk9111/ny1609/ecs"
	"github.com/milk9111/ny1609/prefabs"
)

// AmbientScoreSystem awards points on a wall-clock interval, independent of
// the frame rate. It reads the clock inside the frame so the score has a
// single writer.
type AmbientScoreSystem struct {
	tuning *prefabs.Tuning
	now    func() time.Time
	next   time.Time
}

func NewAmbientScoreSystem(tuning *prefabs.Tuning, now func() time.Time) *AmbientScoreSystem {
	if now == nil {
		now = time.Now
	}
	return &AmbientScoreSystem{tuning: tuning, now: now}
}

func (a *AmbientScoreSystem) interval() time.Duration {
	return time.Duration(a.tuning.Scoring.AmbientSeconds * float64(time.Second))
}

func (a *AmbientScoreSystem) Update(w *ecs.World) {
	interval := a.interval()
	if w == nil || interval <= 0 {
		return
	}
	now := a.now()
	if a.next.IsZero() {
		a.next = now.Add(interval)
		return
	}
	for !now.Before(a.next) {
		addScore(w, a.tuning.Scoring.AmbientPoints)
		a.next = a.next.Add(interval)
	}
}
