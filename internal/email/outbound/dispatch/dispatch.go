package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/shandysiswandi/mailbridge/internal/email/entity"
	"github.com/shandysiswandi/mailbridge/internal/pkg/clock"
	"github.com/shandysiswandi/mailbridge/internal/pkg/instrument"
	"github.com/shandysiswandi/mailbridge/internal/pkg/messaging"
	"github.com/shandysiswandi/mailbridge/internal/pkg/uid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Envelope is the message published for every adapted payload.
type Envelope struct {
	ID        int64          `json:"id,string"`
	Provider  string         `json:"provider"`
	Payload   entity.Payload `json:"payload"`
	CreatedAt time.Time      `json:"created_at"`
}

type Dispatch struct {
	pub   messaging.Publisher
	topic string
	uid   uid.NumberID
	clock clock.Clocker
	ins   instrument.Instrumentation
}

func New(pub messaging.Publisher, topic string, id uid.NumberID, clk clock.Clocker, ins instrument.Instrumentation) *Dispatch {
	return &Dispatch{pub: pub, topic: topic, uid: id, clock: clk, ins: ins}
}

// Publish wraps payload in an Envelope and publishes it as JSON.
func (d *Dispatch) Publish(ctx context.Context, payload entity.Payload) error {
	ctx, span := d.ins.Tracer("email.outbound.dispatch").Start(ctx, "Publish")
	defer span.End()

	env := Envelope{
		ID:        d.uid.Generate(),
		Provider:  payload.Provider().String(),
		Payload:   payload,
		CreatedAt: d.clock.Now(),
	}
	span.SetAttributes(
		attribute.Int64("dispatch.id", env.ID),
		attribute.String("dispatch.provider", env.Provider),
	)

	body, err := json.Marshal(env)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("dispatch: marshal envelope: %w", err)
	}

	res, err := d.pub.Publish(ctx, d.topic, messaging.OutgoingMessage{
		Body: body,
		Key:  []byte(strconv.FormatInt(env.ID, 10)),
		Headers: []messaging.Header{
			{Key: "provider", Value: env.Provider},
			{Key: "content-type", Value: "application/json"},
		},
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("dispatch: publish to %s: %w", d.topic, err)
	}

	slog.InfoContext(ctx, "email payload dispatched", "id", env.ID, "provider", env.Provider, "topic", d.topic, "message_id", res.MessageID)

	return nil
}
