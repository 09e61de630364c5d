package realtime

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yungbote/orbital-nexus-backend/internal/platform/logger"
)

// isoMillis matches the millisecond UTC timestamps the dashboard parses.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// Sink receives every generated frame. The hub is the local sink; the redis bus
// publisher is used when frames must reach other instances.
type Sink interface {
	Broadcast(msg Message)
}

type Intervals struct {
	DebrisUpdate       time.Duration
	ConjunctionWarning time.Duration
	LaunchStatus       time.Duration
}

func DefaultIntervals() Intervals {
	return Intervals{
		DebrisUpdate:       10 * time.Second,
		ConjunctionWarning: 30 * time.Second,
		LaunchStatus:       60 * time.Second,
	}
}

type DebrisUpdatePayload struct {
	AltitudeKm float64 `json:"altitude_km"`
	NewDensity float64 `json:"new_density"`
	Timestamp  string  `json:"timestamp"`
}

type ConjunctionWarningPayload struct {
	Object1Norad      int     `json:"object1_norad"`
	Object2Norad      int     `json:"object2_norad"`
	ClosestApproachKm float64 `json:"closest_approach_km"`
	Probability       float64 `json:"probability"`
	Timestamp         string  `json:"timestamp"`
}

type LaunchStatusPayload struct {
	Mission   string `json:"mission"`
	Provider  string `json:"provider"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Frames are synthetic: the values are fixed and only the timestamp moves.

func DebrisUpdate(now time.Time) Message {
	return Message{Event: EventDebrisUpdate, Payload: DebrisUpdatePayload{
		AltitudeKm: 550,
		NewDensity: 1.23e-5,
		Timestamp:  stamp(now),
	}}
}

func ConjunctionWarning(now time.Time) Message {
	return Message{Event: EventConjunctionWarning, Payload: ConjunctionWarningPayload{
		Object1Norad:      25544, // ISS
		Object2Norad:      43135,
		ClosestApproachKm: 0.85,
		Probability:       0.002,
		Timestamp:         stamp(now),
	}}
}

func LaunchStatus(now time.Time) Message {
	return Message{Event: EventLaunchStatus, Payload: LaunchStatusPayload{
		Mission:   "Starlink Group 10-2",
		Provider:  "SpaceX",
		Status:    "T-15 minutes and holding",
		Timestamp: stamp(now),
	}}
}

func stamp(t time.Time) string { return t.UTC().Format(isoMillis) }

type Broadcaster struct {
	log       *logger.Logger
	sink      Sink
	intervals Intervals
	now       func() time.Time
}

func NewBroadcaster(baseLog *logger.Logger, sink Sink, intervals Intervals) *Broadcaster {
	def := DefaultIntervals()
	if intervals.DebrisUpdate <= 0 {
		intervals.DebrisUpdate = def.DebrisUpdate
	}
	if intervals.ConjunctionWarning <= 0 {
		intervals.ConjunctionWarning = def.ConjunctionWarning
	}
	if intervals.LaunchStatus <= 0 {
		intervals.LaunchStatus = def.LaunchStatus
	}
	return &Broadcaster{
		log:       baseLog.With("component", "Broadcaster"),
		sink:      sink,
		intervals: intervals,
		now:       time.Now,
	}
}

// Run drives the three timers until ctx is cancelled.
func (b *Broadcaster) Run(ctx context.Context) error {
	b.log.Info("broadcaster started",
		"debris_update", b.intervals.DebrisUpdate.String(),
		"conjunction_warning", b.intervals.ConjunctionWarning.String(),
		"launch_status", b.intervals.LaunchStatus.String(),
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return b.every(ctx, b.intervals.DebrisUpdate, DebrisUpdate) })
	g.Go(func() error { return b.every(ctx, b.intervals.ConjunctionWarning, ConjunctionWarning) })
	g.Go(func() error { return b.every(ctx, b.intervals.LaunchStatus, LaunchStatus) })
	err := g.Wait()
	b.log.Info("broadcaster stopped")
	return err
}

func (b *Broadcaster) every(ctx context.Context, d time.Duration, frame func(time.Time) Message) error {
	ticker := time.NewTicker(d)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			b.sink.Broadcast(frame(b.now()))
		}
	}
}
