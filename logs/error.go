package logs

import (
	"context"
	"fmt"
)

// SpanError is an error that happened inside a span.
type SpanError struct {
	Err  error
	Span Span
}

func (s *SpanError) Error() string {
	return fmt.Sprintf("span %s: %v", s.Span, s.Err)
}

func (s *SpanError) Unwrap() error {
	return s.Err
}

// WrapSpan attaches the span of ctx to err, if any.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	span, ok := ctx.Value(SpanKey).(Span)
	if !ok {
		return err
	}
	return &SpanError{
		Err:  err,
		Span: span,
	}
}
