package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/xiebiao/userdao/internal/domain/user"
	"github.com/xiebiao/userdao/internal/domain/user/mocks"
	"github.com/xiebiao/userdao/internal/infrastructure/persistence/memory"
)

func useRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()

	previous := otel.GetTracerProvider()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	otel.SetTracerProvider(tp)

	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		otel.SetTracerProvider(previous)
	})
	return recorder
}

func attrs(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	m := make(map[attribute.Key]attribute.Value)
	for _, kv := range span.Attributes() {
		m[kv.Key] = kv.Value
	}
	return m
}

func TestStoreTracer_RecordsSpans(t *testing.T) {
	recorder := useRecorder(t)
	ctx := context.Background()
	store := NewStoreTracer(memory.NewUserStore(), "memory")

	r := user.NewRecordBuilder().Name("Barbara").LastName("Liskov").Enabled(true).Build()
	require.NoError(t, store.Save(ctx, r))
	_, err := store.FindByID(ctx, r.ID)
	require.NoError(t, err)
	require.NoError(t, store.UpdateStatus(ctx, r.ID, false))
	_, err = store.FindAll(ctx)
	require.NoError(t, err)
	require.NoError(t, store.DeleteByID(ctx, r.ID))

	spans := recorder.Ended()
	require.Len(t, spans, 5)

	names := make([]string, 0, len(spans))
	for _, s := range spans {
		names = append(names, s.Name())
		assert.Equal(t, codes.Ok, s.Status().Code)
		assert.Equal(t, "memory", attrs(s)["db.system"].AsString())
	}
	assert.Equal(t, []string{
		"store.save", "store.find_by_id", "store.update_status", "store.find_all", "store.delete_by_id",
	}, names)

	assert.Equal(t, int64(1), attrs(spans[0])["user.id"].AsInt64())
	assert.True(t, attrs(spans[1])["user.found"].AsBool())
	assert.Equal(t, int64(1), attrs(spans[3])["user.count"].AsInt64())
}

func TestStoreTracer_NotFoundIsNotAnError(t *testing.T) {
	recorder := useRecorder(t)
	store := NewStoreTracer(memory.NewUserStore(), "memory")

	_, err := store.FindByID(context.Background(), 1231332423423)

	assert.ErrorIs(t, err, user.ErrRecordNotFound)
	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Ok, spans[0].Status().Code)
	assert.False(t, attrs(spans[0])["user.found"].AsBool())
	assert.Empty(t, spans[0].Events())
}

func TestStoreTracer_BackendErrorMarksSpan(t *testing.T) {
	recorder := useRecorder(t)
	ctrl := gomock.NewController(t)
	inner := mocks.NewMockStore(ctrl)
	store := NewStoreTracer(inner, "mysql")
	cause := errors.New("The database was corrupted")

	inner.EXPECT().UpdateStatus(gomock.Any(), uint64(7), true).Return(cause)

	err := store.UpdateStatus(context.Background(), 7, true)

	assert.Same(t, cause, err)
	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, cause.Error(), spans[0].Status().Description)
	require.NotEmpty(t, spans[0].Events())
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}

func TestStoreTracer_PropagatesSpanContext(t *testing.T) {
	useRecorder(t)
	ctrl := gomock.NewController(t)
	inner := mocks.NewMockStore(ctrl)
	store := NewStoreTracer(inner, "redis")

	inner.EXPECT().FindAll(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]*user.Record, error) {
		assert.True(t, trace.SpanContextFromContext(ctx).IsValid(), "下游应拿到带Span的ctx")
		return nil, nil
	})

	_, err := store.FindAll(context.Background())
	require.NoError(t, err)
}
