// Package middleware provides observability for the CineVerse server.
//
// Metrics exports Prometheus series for HTTP requests, live session events,
// overlay transitions and header renders. Tracing wraps HTTP requests and
// live events in OpenTelemetry spans using the global tracer provider.
//
//	metrics := middleware.NewMetrics(middleware.WithRegistry(reg))
//	tracing := middleware.NewTracing()
//	r.Use(tracing.HTTP, metrics.HTTP)
//
// Metrics collected (namespace "cineverse" by default):
//   - http_requests_total{route,code}
//   - http_request_duration_seconds{route}
//   - live_events_total{type,status}
//   - live_event_duration_seconds{type}
//   - live_sessions_active
//   - overlay_transitions_total{overlay,state,trigger}
//   - render_duration_seconds
//   - protocol_errors_total{code}
package middleware
