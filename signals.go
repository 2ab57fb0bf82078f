package airlock

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for sanitization events.
var (
	SignalSanitizerCreated = capitan.NewSignal("airlock.sanitizer.created", "Sanitizer instantiated")
	SignalSanitizeStart    = capitan.NewSignal("airlock.sanitize.start", "Sanitize operation beginning")
	SignalSanitizeComplete = capitan.NewSignal("airlock.sanitize.complete", "Sanitize operation finished")
	SignalOmitComplete     = capitan.NewSignal("airlock.omit.complete", "Shallow filter finished")
)

// Keys for typed event data.
var (
	KeyContentType  = capitan.NewStringKey("content_type")
	KeyTypeName     = capitan.NewStringKey("type_name")
	KeyEnvironment  = capitan.NewStringKey("environment")
	KeyDuration     = capitan.NewDurationKey("duration")
	KeyError        = capitan.NewErrorKey("error")
	KeyEntryCount   = capitan.NewIntKey("entry_count")
	KeyDroppedCount = capitan.NewIntKey("dropped_count")
)

// emitSanitizerCreated emits an event when a sanitizer is created.
func emitSanitizerCreated(ctx context.Context, contentType, family string) {
	capitan.Emit(ctx, SignalSanitizerCreated,
		KeyContentType.Field(contentType),
		KeyEnvironment.Field(family),
	)
}

// emitSanitizeStart emits an event when sanitization begins.
func emitSanitizeStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalSanitizeStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitSanitizeComplete emits an event when sanitization finishes.
func emitSanitizeComplete(ctx context.Context, contentType, typeName string, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalSanitizeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalSanitizeComplete, fields...)
	}
}

// emitOmitComplete emits an event when a shallow filter finishes.
func emitOmitComplete(ctx context.Context, contentType string, entries, dropped int) {
	capitan.Emit(ctx, SignalOmitComplete,
		KeyContentType.Field(contentType),
		KeyEntryCount.Field(entries),
		KeyDroppedCount.Field(dropped),
	)
}
