// Package logger 基于logrus的结构化日志
//
// 约定：
//   - 每条日志带layer字段（dao / repository / http），便于按层过滤
//   - Context中有OpenTelemetry Span时，自动附加trace_id、span_id，用于日志与追踪关联
//   - 错误统一通过WithError记录，不拼接到消息中
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/xiebiao/userdao/pkg/tracing"
)

// Options 日志配置
type Options struct {
	Level  string // debug | info | warn | error
	Format string // text | json
	Output string // stdout | stderr | /path/to/file
}

// New 根据配置创建Logger
// 说明：Output为文件路径时以追加方式打开，文件句柄随进程生命周期存在
func New(opts Options) (*logrus.Logger, error) {
	log := logrus.New()

	level := opts.Level
	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}
	log.SetLevel(lvl)

	switch strings.ToLower(opts.Format) {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	case "", "text", "console":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("invalid log format %q", opts.Format)
	}

	out, err := openOutput(opts.Output)
	if err != nil {
		return nil, err
	}
	log.SetOutput(out)

	return log, nil
}

func openOutput(output string) (io.Writer, error) {
	switch output {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file failed: %w", err)
		}
		return f, nil
	}
}

// WithContext 返回带layer和追踪信息的日志Entry
func WithContext(ctx context.Context, log logrus.FieldLogger, layer string) *logrus.Entry {
	fields := logrus.Fields{"layer": layer}
	if traceID := tracing.ExtractTraceID(ctx); traceID != "" {
		fields["trace_id"] = traceID
		fields["span_id"] = tracing.ExtractSpanID(ctx)
	}
	return log.WithFields(fields)
}

// Discard 丢弃所有输出的Logger（测试、未注入Logger时使用）
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
