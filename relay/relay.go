package relay

import (
	"context"
	"errors"
	"fmt"

	"github.com/gotomicro/ekit/bean/option"
	"go.uber.org/zap"

	"github.com/zoobzio/airlock"
)

// Relay sanitizes outbound values and ships them to the peer as sealed
// envelopes.
type Relay struct {
	sanitizer *airlock.Sanitizer
	codec     airlock.Codec
	transport Transport
	logger    *zap.Logger
}

// WithLogger sets the relay's logger. Defaults to zap.NewNop().
func WithLogger(l *zap.Logger) option.Option[Relay] {
	return func(r *Relay) {
		r.logger = l
	}
}

// New builds a Relay posting codec-encoded payloads through transport.
func New(transport Transport, sanitizer *airlock.Sanitizer, codec airlock.Codec, opts ...option.Option[Relay]) (*Relay, error) {
	if transport == nil {
		return nil, errors.New("nil transport")
	}
	if sanitizer == nil {
		return nil, errors.New("nil sanitizer")
	}
	if codec == nil {
		return nil, errors.New("nil codec")
	}

	r := &Relay{
		sanitizer: sanitizer,
		codec:     codec,
		transport: transport,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Post sanitizes v and sends it as a result envelope. When v cannot be
// serialized at all, a notice envelope is sent instead and Post reports
// success: unserializability is information for the peer, not a relay
// failure.
func (r *Relay) Post(ctx context.Context, v any) error {
	return r.post(ctx, KindResult, v)
}

// PostError relays an error value, flattened to its serializable members,
// as an error envelope.
func (r *Relay) PostError(ctx context.Context, cause error) error {
	return r.post(ctx, KindError, cause)
}

func (r *Relay) post(ctx context.Context, kind Kind, v any) error {
	cleaned, err := r.sanitizer.Sanitize(ctx, v)
	if errors.Is(err, airlock.ErrUnserializable) {
		r.logger.Warn("value not serializable, sending notice",
			zap.String("type", fmt.Sprintf("%T", v)),
			zap.String("peer", r.sanitizer.Environment().String()),
			zap.Error(err),
		)
		return r.notice(ctx, v)
	}
	if err != nil {
		return fmt.Errorf("sanitize: %w", err)
	}

	payload, err := r.codec.Marshal(cleaned)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	env := seal(kind, r.codec.ContentType(), payload, nil)
	if err := r.transport.Send(ctx, env); err != nil {
		return fmt.Errorf("send: %w", err)
	}

	r.logger.Debug("envelope posted",
		zap.String("id", env.ID),
		zap.String("kind", string(env.Kind)),
		zap.Int("bytes", len(env.Payload)),
	)
	return nil
}

// notice tells the peer a value could not cross the boundary.
func (r *Relay) notice(ctx context.Context, v any) error {
	payload, err := r.codec.Marshal(map[string]string{
		"reason": "unserializable",
		"type":   fmt.Sprintf("%T", v),
	})
	if err != nil {
		return fmt.Errorf("marshal notice: %w", err)
	}

	env := seal(KindNotice, r.codec.ContentType(), payload, nil)
	if err := r.transport.Send(ctx, env); err != nil {
		return fmt.Errorf("send notice: %w", err)
	}
	return nil
}
