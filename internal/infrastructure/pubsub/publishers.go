package pubsub

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/deskline-inc/deskline/internal/domain/ticket"
	"github.com/deskline-inc/deskline/internal/shared/logger"
)

// Publisher receives committed ticket events.
type Publisher interface {
	Publish(ctx context.Context, event ticket.Event) error
}

// LogPublisher writes events to the application log. It stands in for the
// redis bus when redis is disabled.
type LogPublisher struct {
	logger logger.Interface
}

func NewLogPublisher(logger logger.Interface) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, event ticket.Event) error {
	p.logger.Infow("ticket event",
		"type", event.Type,
		"ticket_id", event.TicketID,
		"comment_id", event.CommentID,
		"actor_id", event.ActorID,
		"fields", event.Fields,
	)
	return nil
}

// MetricsPublisher counts events by type.
type MetricsPublisher struct {
	events *prometheus.CounterVec
}

func NewMetricsPublisher(reg prometheus.Registerer) (*MetricsPublisher, error) {
	events := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "deskline",
		Name:      "ticket_events_total",
		Help:      "Ticket and comment events by type.",
	}, []string{"type"})

	if err := reg.Register(events); err != nil {
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			return nil, err
		}
		events = already.ExistingCollector.(*prometheus.CounterVec)
	}
	return &MetricsPublisher{events: events}, nil
}

func (p *MetricsPublisher) Publish(_ context.Context, event ticket.Event) error {
	p.events.WithLabelValues(string(event.Type)).Inc()
	return nil
}

// MultiPublisher fans an event out to every publisher and joins failures.
type MultiPublisher struct {
	publishers []Publisher
}

func NewMultiPublisher(publishers ...Publisher) *MultiPublisher {
	var list []Publisher
	for _, p := range publishers {
		if p != nil {
			list = append(list, p)
		}
	}
	return &MultiPublisher{publishers: list}
}

func (m *MultiPublisher) Publish(ctx context.Context, event ticket.Event) error {
	var errs []error
	for _, p := range m.publishers {
		if err := p.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
