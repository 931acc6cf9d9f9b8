package mocks

import (
	"context"
	"hotie/infras/otel"
	"maps"
	"slices"
	"sync"
)

// Recorder is an in-memory otel.Otel. Every scope it opens is kept so tests
// can inspect span names, attributes and recorded errors.
type Recorder struct {
	mu    sync.Mutex
	spans []*Span
}

func (r *Recorder) NewScope(ctx context.Context, scopeName, spanName string) (context.Context, otel.Scope) {
	r.mu.Lock()
	defer r.mu.Unlock()

	span := &Span{Scope: scopeName, Name: spanName, Attributes: map[string]any{}}
	r.spans = append(r.spans, span)

	return ctx, &scope{mu: &r.mu, span: span}
}

// Spans returns a snapshot of the recorded spans in the order they were opened.
func (r *Recorder) Spans() []Span {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := make([]Span, len(r.spans))
	for i, span := range r.spans {
		res[i] = *span
		res[i].Attributes = maps.Clone(span.Attributes)
		res[i].Events = slices.Clone(span.Events)
		res[i].Errors = slices.Clone(span.Errors)
	}

	return res
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func NewOtel() otel.Otel {
	return NewRecorder()
}
