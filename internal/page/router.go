package page

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonesrussell/mars-explorer/infrastructure/logger"
	"github.com/jonesrussell/mars-explorer/internal/render"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ErrPageUnavailable wraps every error a page returns from Dispatch.
var ErrPageUnavailable = errors.New("page unavailable")

// Dispatch outcomes, used as the metrics label.
const (
	OutcomeRendered = "rendered"
	OutcomeIgnored  = "ignored"
	OutcomeEmpty    = "empty"
	OutcomeFailed   = "failed"
)

const unknownLabel = "unknown"

const routerTracerName = "github.com/jonesrussell/mars-explorer/internal/page"

// RenderObserver is told the outcome of every dispatch.
type RenderObserver interface {
	ObserveRender(page, outcome string)
}

type nopObserver struct{}

func (nopObserver) ObserveRender(string, string) {}

// Router dispatches a page identifier to the home page or to a registry
// entry.
type Router struct {
	home     Page
	registry *Registry
	observer RenderObserver
	tracer   trace.Tracer
}

// NewRouter creates a Router. observer may be nil.
func NewRouter(home Page, registry *Registry, observer RenderObserver) *Router {
	if observer == nil {
		observer = nopObserver{}
	}
	if registry == nil {
		registry = NewRegistry(nil)
	}
	return &Router{
		home:     home,
		registry: registry,
		observer: observer,
		tracer:   otel.Tracer(routerTracerName),
	}
}

// Known reports whether id would dispatch to anything.
func (r *Router) Known(id ID) bool {
	if id == Home {
		return true
	}
	_, ok := r.registry.Lookup(id)
	return ok
}

// Dispatch renders page id onto s.
//
// Home renders directly. Other ids are looked up in the registry; an
// unknown id, or a registered id with no page, draws nothing and returns
// nil. A page's own failure comes back wrapped in ErrPageUnavailable so the
// caller can show a fallback instead of failing the whole request.
func (r *Router) Dispatch(ctx context.Context, id ID, s render.Surface, req Request) error {
	log := logger.FromContext(ctx)

	target, outcome := r.resolve(id)
	if target == nil {
		label := string(id)
		if outcome == OutcomeIgnored {
			// Keep arbitrary query values out of metric labels.
			label = unknownLabel
		}
		r.observer.ObserveRender(label, outcome)
		log.Debug("Page dispatch skipped", logger.String("page", string(id)), logger.String("outcome", outcome))
		return nil
	}

	ctx, span := r.tracer.Start(ctx, "page.Dispatch", trace.WithAttributes(attribute.String("page.id", string(id))))
	defer span.End()

	if err := target.Render(ctx, s, req); err != nil {
		r.observer.ObserveRender(string(id), OutcomeFailed)
		span.RecordError(err)
		span.SetStatus(codes.Error, OutcomeFailed)
		return fmt.Errorf("%w: %s: %w", ErrPageUnavailable, id, err)
	}

	r.observer.ObserveRender(string(id), OutcomeRendered)
	return nil
}

func (r *Router) resolve(id ID) (Page, string) {
	if id == Home {
		if r.home == nil {
			return nil, OutcomeEmpty
		}
		return r.home, OutcomeRendered
	}

	p, ok := r.registry.Lookup(id)
	switch {
	case !ok:
		return nil, OutcomeIgnored
	case p == nil:
		return nil, OutcomeEmpty
	default:
		return p, OutcomeRendered
	}
}
