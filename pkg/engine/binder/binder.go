// Package binder is the plan-time entry point for resolving unbound
// projector specifications against concrete schemas. The projector package
// keeps binding pure; the binder adds structured logging and metrics around
// it for observability of the planning phase.
package binder

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/quiverdb/quiver/pkg/engine/projector"
	"github.com/quiverdb/quiver/pkg/engine/schema"
)

// Binder binds projector specifications and records bind outcomes.
type Binder struct {
	logger  log.Logger
	metrics *binderMetrics
}

// New creates a binder logging to the given logger and registering its
// metrics on reg. Both may be nil.
func New(logger log.Logger, reg prometheus.Registerer) (*Binder, error) {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	metrics := newBinderMetrics()
	if reg != nil {
		if err := metrics.register(reg); err != nil {
			return nil, err
		}
	}
	return &Binder{logger: logger, metrics: metrics}, nil
}

// BindSingle binds a single-source specification against a schema.
func (b *Binder) BindSingle(spec projector.SingleSourceProjector, source *schema.Schema) (*projector.BoundSingleSourceProjector, error) {
	bound, err := spec.Bind(source)
	if err != nil {
		b.metrics.bindFailuresTotal.Inc()
		level.Warn(b.logger).Log("msg", "failed to bind projector", "spec", spec.String(), "err", err)
		return nil, err
	}
	b.metrics.bindsTotal.Inc()
	level.Debug(b.logger).Log(
		"msg", "bound projector",
		"spec", spec.String(),
		"columns", bound.ResultSchema().AttributeCount(),
	)
	return bound, nil
}

// BindMulti binds a multi-source specification against an ordered list of
// schemas.
func (b *Binder) BindMulti(spec projector.MultiSourceProjector, sources []*schema.Schema) (*projector.BoundMultiSourceProjector, error) {
	bound, err := spec.Bind(sources)
	if err != nil {
		b.metrics.bindFailuresTotal.Inc()
		level.Warn(b.logger).Log("msg", "failed to bind projector", "spec", spec.String(), "err", err)
		return nil, err
	}
	b.metrics.bindsTotal.Inc()
	level.Debug(b.logger).Log(
		"msg", "bound projector",
		"spec", spec.String(),
		"sources", bound.SourceCount(),
		"columns", bound.ResultSchema().AttributeCount(),
	)
	return bound, nil
}

// PushProjection decomposes a bound projector with respect to one of its
// inputs, so that a later stage consumes only the columns it needs from that
// input. See [projector.DecomposeNth].
func (b *Binder) PushProjection(sourceIndex int, bound *projector.BoundMultiSourceProjector) (*projector.BoundMultiSourceProjector, *projector.BoundSingleSourceProjector) {
	rewritten, decomposed := projector.DecomposeNth(sourceIndex, bound)
	b.metrics.pushdownsTotal.Inc()
	level.Debug(b.logger).Log(
		"msg", "pushed projection below input",
		"source", sourceIndex,
		"referenced_columns", decomposed.ResultSchema().AttributeCount(),
		"source_columns", bound.SourceSchema(sourceIndex).AttributeCount(),
	)
	return rewritten, decomposed
}
