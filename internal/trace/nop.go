package trace

// Span is a begin/end pair reported to a Tracer.
type Span struct {
	tracer Tracer
	id     uint64
	scope  Scope
	name   string
}

// Begin starts a span if the tracer's level allows it; returns nil otherwise,
// and End on a nil *Span is a safe no-op.
func Begin(t Tracer, scope Scope, name string, parent uint64) *Span {
	if t == nil || t.Level() == LevelOff {
		return nil
	}
	id := NextSpanID()
	t.Emit(&Event{Kind: KindSpanBegin, Scope: scope, SpanID: id, ParentID: parent, Name: name})
	return &Span{tracer: t, id: id, scope: scope, name: name}
}

// ID returns the span's identifier, or 0 for a nil span.
func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.id
}

// End closes the span, attaching an optional detail string.
func (s *Span) End(detail string) {
	if s == nil {
		return
	}
	s.tracer.Emit(&Event{Kind: KindSpanEnd, Scope: s.scope, SpanID: s.id, Name: s.name, Detail: detail})
}

// Emit reports an instantaneous point event under t, if tracing is enabled.
func Emit(t Tracer, scope Scope, name, detail string) {
	if t == nil || t.Level() == LevelOff {
		return
	}
	t.Emit(&Event{Kind: KindPoint, Scope: scope, Name: name, Detail: detail})
}
