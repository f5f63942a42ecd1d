package api

import (
	"log/slog"
	"sync/atomic"
)

// Observer receives callbacks from the engine for logging and metrics.
//
// Implementations should be fast and non-blocking; the engine invokes them
// synchronously on the calling goroutine, between an instance's exit and
// enter hooks in the case of OnSwitch.
type Observer interface {
	// OnInit is called once per instance, after the initial variant is
	// assigned and before its enter hook runs.
	OnInit(inst *Stateful, initial *Variant)

	// OnSwitch is called for every effective switch, after the new variant
	// is assigned and before its enter hook runs. It is not called for the
	// non-forced same-variant no-op.
	OnSwitch(inst *Stateful, from, to *Variant, forced bool)

	// OnResolve is called after every delegated attribute resolution, with
	// err nil on a hit and the resolution error on a miss.
	OnResolve(inst *Stateful, name string, err error)
}

// NoopObserver is an Observer that does nothing.
// It is used as the default when no observer is configured.
type NoopObserver struct{}

func (NoopObserver) OnInit(inst *Stateful, initial *Variant)            {}
func (NoopObserver) OnSwitch(inst *Stateful, from, to *Variant, f bool) {}
func (NoopObserver) OnResolve(inst *Stateful, name string, err error)   {}

// CompositeObserver fans out events to multiple observers.
type CompositeObserver struct {
	observers []Observer
}

// NewCompositeObserver creates an Observer that forwards events to each
// non-nil observer in obs.
func NewCompositeObserver(obs ...Observer) Observer {
	filtered := make([]Observer, 0, len(obs))
	for _, o := range obs {
		if o != nil {
			filtered = append(filtered, o)
		}
	}
	if len(filtered) == 0 {
		return NoopObserver{}
	}
	if len(filtered) == 1 {
		return filtered[0]
	}
	return &CompositeObserver{observers: filtered}
}

func (c *CompositeObserver) OnInit(inst *Stateful, initial *Variant) {
	for _, o := range c.observers {
		o.OnInit(inst, initial)
	}
}

func (c *CompositeObserver) OnSwitch(inst *Stateful, from, to *Variant, forced bool) {
	for _, o := range c.observers {
		o.OnSwitch(inst, from, to, forced)
	}
}

func (c *CompositeObserver) OnResolve(inst *Stateful, name string, err error) {
	for _, o := range c.observers {
		o.OnResolve(inst, name, err)
	}
}

// LoggingObserver writes structured logs using log/slog.
type LoggingObserver struct {
	Logger *slog.Logger
}

// NewLoggingObserver creates an Observer that logs instance lifecycle
// events using the provided slog.Logger. If logger is nil, slog.Default()
// is used.
func NewLoggingObserver(logger *slog.Logger) Observer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingObserver{Logger: logger}
}

func (o *LoggingObserver) OnInit(inst *Stateful, initial *Variant) {
	o.Logger.Info("state_init",
		slog.String("class", inst.Class().Name()),
		slog.String("instance_id", inst.ID()),
		slog.String("variant", initial.Name()),
	)
}

func (o *LoggingObserver) OnSwitch(inst *Stateful, from, to *Variant, forced bool) {
	o.Logger.Info("state_switch",
		slog.String("class", inst.Class().Name()),
		slog.String("instance_id", inst.ID()),
		slog.String("from", from.Name()),
		slog.String("to", to.Name()),
		slog.Bool("forced", forced),
	)
}

func (o *LoggingObserver) OnResolve(inst *Stateful, name string, err error) {
	o.Logger.Debug("attribute_resolve",
		slog.String("class", inst.Class().Name()),
		slog.String("instance_id", inst.ID()),
		slog.String("attribute", name),
		slog.Any("error", err),
	)
}

// BasicMetrics collects simple counters for instance lifecycle events.
// It implements Observer, and can be combined with LoggingObserver via
// NewCompositeObserver.
type BasicMetrics struct {
	NoopObserver

	inits         atomic.Int64
	switches      atomic.Int64
	resolves      atomic.Int64
	resolveMisses atomic.Int64
}

// BasicMetricsSnapshot is an immutable snapshot of BasicMetrics.
type BasicMetricsSnapshot struct {
	Inits         int64
	Switches      int64
	Resolves      int64
	ResolveMisses int64
}

func (m *BasicMetrics) OnInit(inst *Stateful, initial *Variant) {
	m.inits.Add(1)
}

func (m *BasicMetrics) OnSwitch(inst *Stateful, from, to *Variant, forced bool) {
	m.switches.Add(1)
}

func (m *BasicMetrics) OnResolve(inst *Stateful, name string, err error) {
	m.resolves.Add(1)
	if err != nil {
		m.resolveMisses.Add(1)
	}
}

// Snapshot returns a snapshot of the current metrics.
func (m *BasicMetrics) Snapshot() BasicMetricsSnapshot {
	return BasicMetricsSnapshot{
		Inits:         m.inits.Load(),
		Switches:      m.switches.Load(),
		Resolves:      m.resolves.Load(),
		ResolveMisses: m.resolveMisses.Load(),
	}
}
