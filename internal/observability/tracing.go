package observability

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Tracer returns a tracer for the given name
func Tracer(name string) trace.Tracer {
	return otel.Tracer(name)
}

// StartSpan starts a new span from context
func StartSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return otel.Tracer(instrumentationName).Start(ctx, name, opts...)
}

// StartServiceSpan starts a span for service operations
func StartServiceSpan(ctx context.Context, service, operation string) (context.Context, trace.Span) {
	return StartSpan(ctx, fmt.Sprintf("%s.%s", service, operation),
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("service.component", service),
			attribute.String("service.operation", operation),
		),
	)
}

// StartClientSpan starts a span for an outgoing HTTP call to the catalog API
func StartClientSpan(ctx context.Context, method, path string) (context.Context, trace.Span) {
	return StartSpan(ctx, fmt.Sprintf("catalog %s %s", method, path),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("http.target", path),
			attribute.String("peer.service", "catalog-api"),
		),
	)
}

// RecordError records an error on the span
func RecordError(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// SetSuccess marks the span as successful
func SetSuccess(span trace.Span) {
	span.SetStatus(codes.Ok, "")
}

// AddEvent adds an event to the span
func AddEvent(span trace.Span, name string, attrs ...attribute.KeyValue) {
	span.AddEvent(name, trace.WithAttributes(attrs...))
}

// DatabaseMetrics holds database-related metrics
type DatabaseMetrics struct {
	queryDuration metric.Float64Histogram
	queryCount    metric.Int64Counter
	errorCount    metric.Int64Counter
}

// NewDatabaseMetrics creates database metrics instruments
func NewDatabaseMetrics() (*DatabaseMetrics, error) {
	meter := otel.Meter(instrumentationName)

	queryDuration, err := meter.Float64Histogram(
		"db.query.duration",
		metric.WithDescription("Database query duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	queryCount, err := meter.Int64Counter(
		"db.query.count",
		metric.WithDescription("Total number of database queries"),
		metric.WithUnit("{queries}"),
	)
	if err != nil {
		return nil, err
	}

	errorCount, err := meter.Int64Counter(
		"db.error.count",
		metric.WithDescription("Total number of database errors"),
		metric.WithUnit("{errors}"),
	)
	if err != nil {
		return nil, err
	}

	return &DatabaseMetrics{
		queryDuration: queryDuration,
		queryCount:    queryCount,
		errorCount:    errorCount,
	}, nil
}

// RecordQuery records a database query metrics
func (m *DatabaseMetrics) RecordQuery(ctx context.Context, operation string, duration time.Duration, err error) {
	attrs := metric.WithAttributes(attribute.String("db.operation", operation))

	m.queryCount.Add(ctx, 1, attrs)
	m.queryDuration.Record(ctx, float64(duration.Milliseconds()), attrs)

	if err != nil {
		m.errorCount.Add(ctx, 1, attrs)
	}
}

// TraceDB wraps sql.DB with tracing and query metrics
type TraceDB struct {
	db      *sql.DB
	system  string
	metrics *DatabaseMetrics
}

// NewTraceDB creates a traced database wrapper. system is the db.system
// attribute value, "sqlite" or "postgresql".
func NewTraceDB(db *sql.DB, system string) (*TraceDB, error) {
	metrics, err := NewDatabaseMetrics()
	if err != nil {
		return nil, err
	}

	return &TraceDB{
		db:      db,
		system:  system,
		metrics: metrics,
	}, nil
}

func (t *TraceDB) startSpan(ctx context.Context, name, query string) (context.Context, trace.Span) {
	return StartSpan(ctx, name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", t.system),
			attribute.String("db.statement", truncateQuery(query)),
		),
	)
}

// QueryContext executes a query with tracing
func (t *TraceDB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	ctx, span := t.startSpan(ctx, "DB Query", query)
	defer span.End()

	start := time.Now()
	rows, err := t.db.QueryContext(ctx, query, args...)
	t.metrics.RecordQuery(ctx, "query", time.Since(start), err)

	if err != nil {
		RecordError(span, err)
	} else {
		SetSuccess(span)
	}
	return rows, err
}

// ExecContext executes a statement with tracing
func (t *TraceDB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	ctx, span := t.startSpan(ctx, "DB Exec", query)
	defer span.End()

	start := time.Now()
	result, err := t.db.ExecContext(ctx, query, args...)
	t.metrics.RecordQuery(ctx, "exec", time.Since(start), err)

	if err != nil {
		RecordError(span, err)
	} else {
		SetSuccess(span)
		if rowsAffected, raErr := result.RowsAffected(); raErr == nil {
			span.SetAttributes(attribute.Int64("db.rows_affected", rowsAffected))
		}
	}
	return result, err
}

// QueryRowContext executes a query that returns a single row with tracing.
// The span ends before the row is scanned; sql.Row gives no later hook.
func (t *TraceDB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	ctx, span := t.startSpan(ctx, "DB QueryRow", query)
	defer span.End()

	start := time.Now()
	row := t.db.QueryRowContext(ctx, query, args...)
	t.metrics.RecordQuery(ctx, "query_row", time.Since(start), row.Err())
	return row
}

// DB returns the underlying database connection
func (t *TraceDB) DB() *sql.DB {
	return t.db
}

func truncateQuery(query string) string {
	if len(query) > 500 {
		return query[:500] + "..."
	}
	return query
}

// ConsoleMetrics holds business metrics for the admin console
type ConsoleMetrics struct {
	galleryReorders metric.Int64Counter
	imageDeletes    metric.Int64Counter
	imageUploads    metric.Int64Counter
	uploadBytes     metric.Int64Counter
	authAttempts    metric.Int64Counter
	catalogCalls    metric.Int64Counter
}

// NewConsoleMetrics creates business metrics instruments
func NewConsoleMetrics() (*ConsoleMetrics, error) {
	meter := otel.Meter(instrumentationName)

	galleryReorders, err := meter.Int64Counter(
		"hairshop.gallery.reorders",
		metric.WithDescription("Image order commits sent to the catalog API"),
		metric.WithUnit("{commits}"),
	)
	if err != nil {
		return nil, err
	}

	imageDeletes, err := meter.Int64Counter(
		"hairshop.image.deletes",
		metric.WithDescription("Variant image deletions"),
		metric.WithUnit("{deletes}"),
	)
	if err != nil {
		return nil, err
	}

	imageUploads, err := meter.Int64Counter(
		"hairshop.image.uploads",
		metric.WithDescription("Variant images uploaded through the console"),
		metric.WithUnit("{uploads}"),
	)
	if err != nil {
		return nil, err
	}

	uploadBytes, err := meter.Int64Counter(
		"hairshop.image.upload_bytes",
		metric.WithDescription("Bytes forwarded to the catalog API after upload preparation"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, err
	}

	authAttempts, err := meter.Int64Counter(
		"hairshop.auth.attempts",
		metric.WithDescription("Total number of staff login attempts"),
		metric.WithUnit("{attempts}"),
	)
	if err != nil {
		return nil, err
	}

	catalogCalls, err := meter.Int64Counter(
		"hairshop.catalog.calls",
		metric.WithDescription("Requests sent to the catalog API"),
		metric.WithUnit("{requests}"),
	)
	if err != nil {
		return nil, err
	}

	return &ConsoleMetrics{
		galleryReorders: galleryReorders,
		imageDeletes:    imageDeletes,
		imageUploads:    imageUploads,
		uploadBytes:     uploadBytes,
		authAttempts:    authAttempts,
		catalogCalls:    catalogCalls,
	}, nil
}

// RecordReorder records an image order commit
func (m *ConsoleMetrics) RecordReorder(ctx context.Context, variantID string, imageCount int, success bool) {
	if m == nil {
		return
	}
	m.galleryReorders.Add(ctx, 1, metric.WithAttributes(
		attribute.Bool("success", success),
		attribute.Int("image_count", imageCount),
	))
}

// RecordImageDelete records an image deletion
func (m *ConsoleMetrics) RecordImageDelete(ctx context.Context, success bool) {
	if m == nil {
		return
	}
	m.imageDeletes.Add(ctx, 1, metric.WithAttributes(attribute.Bool("success", success)))
}

// RecordImageUpload records an image upload
func (m *ConsoleMetrics) RecordImageUpload(ctx context.Context, size int64, success bool) {
	if m == nil {
		return
	}
	m.imageUploads.Add(ctx, 1, metric.WithAttributes(attribute.Bool("success", success)))
	if success {
		m.uploadBytes.Add(ctx, size)
	}
}

// RecordAuthAttempt records an authentication attempt
func (m *ConsoleMetrics) RecordAuthAttempt(ctx context.Context, success bool) {
	if m == nil {
		return
	}
	m.authAttempts.Add(ctx, 1, metric.WithAttributes(attribute.Bool("success", success)))
}

// RecordCatalogCall records a request to the catalog API
func (m *ConsoleMetrics) RecordCatalogCall(ctx context.Context, method string, statusCode int) {
	if m == nil {
		return
	}
	m.catalogCalls.Add(ctx, 1, metric.WithAttributes(
		attribute.String("http.method", method),
		attribute.Int("http.status_code", statusCode),
	))
}
