package tracing

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/xiebiao/userdao/internal/domain/user"
	apptracing "github.com/xiebiao/userdao/pkg/tracing"
)

const tracerName = "userdao/store"

// StoreTracer 为user.Store的每次调用创建一个Span
// 装饰器模式：不修改具体存储实现即可接入链路追踪
type StoreTracer struct {
	store  user.Store
	system string // memory | mysql | redis
}

// NewStoreTracer 创建Store的追踪装饰器
func NewStoreTracer(store user.Store, system string) user.Store {
	return &StoreTracer{store: store, system: system}
}

func (s *StoreTracer) start(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append(attrs,
		attribute.String("db.system", s.system),
		attribute.String("db.operation", op),
	)
	return apptracing.StartSpan(ctx, tracerName, "store."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)
}

// FindByID 记录不存在不标记为错误
func (s *StoreTracer) FindByID(ctx context.Context, id uint64) (*user.Record, error) {
	ctx, span := s.start(ctx, "find_by_id", attribute.Int64("user.id", int64(id)))

	record, err := s.store.FindByID(ctx, id)
	if errors.Is(err, user.ErrRecordNotFound) {
		span.SetAttributes(attribute.Bool("user.found", false))
		apptracing.EndSpan(span, nil)
		return nil, err
	}
	if err == nil {
		span.SetAttributes(attribute.Bool("user.found", true))
	}

	apptracing.EndSpan(span, err)
	return record, err
}

func (s *StoreTracer) FindAll(ctx context.Context) ([]*user.Record, error) {
	ctx, span := s.start(ctx, "find_all")

	records, err := s.store.FindAll(ctx)
	if err == nil {
		span.SetAttributes(attribute.Int("user.count", len(records)))
	}

	apptracing.EndSpan(span, err)
	return records, err
}

func (s *StoreTracer) Save(ctx context.Context, record *user.Record) error {
	ctx, span := s.start(ctx, "save")

	err := s.store.Save(ctx, record)
	if err == nil {
		span.SetAttributes(attribute.Int64("user.id", int64(record.ID)))
	}

	apptracing.EndSpan(span, err)
	return err
}

func (s *StoreTracer) DeleteByID(ctx context.Context, id uint64) error {
	ctx, span := s.start(ctx, "delete_by_id", attribute.Int64("user.id", int64(id)))

	err := s.store.DeleteByID(ctx, id)

	apptracing.EndSpan(span, err)
	return err
}

func (s *StoreTracer) UpdateStatus(ctx context.Context, id uint64, enabled bool) error {
	ctx, span := s.start(ctx, "update_status",
		attribute.Int64("user.id", int64(id)),
		attribute.Bool("user.enabled", enabled),
	)

	err := s.store.UpdateStatus(ctx, id, enabled)

	apptracing.EndSpan(span, err)
	return err
}
