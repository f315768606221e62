// Package metrics 基于Prometheus的指标收集
//
// 指标一览：
//
//	http_requests_total{method,path,status}          HTTP请求总数（Counter）
//	http_request_duration_seconds{method,path}       HTTP请求耗时（Histogram）
//	http_requests_in_progress                        正在处理的HTTP请求数（Gauge）
//	user_dao_operations_total{operation,result}      DAO操作总数（Counter）
//	user_dao_operation_duration_seconds{operation}   DAO操作耗时（Histogram）
//
// result取值：success | not_found | error
//
// 使用方式：启动时调用一次InitMetrics，然后通过Handler暴露/metrics端点。
// 未初始化时Observe*系列函数直接返回，便于单元测试不依赖全局Registry。
package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DAO操作结果标签
const (
	ResultSuccess  = "success"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

var (
	initOnce sync.Once

	// HTTPRequestsTotal HTTP请求总数
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时
	// 桶设置：1ms、10ms、100ms、500ms、1s、5s、10s
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数
	HTTPRequestsInProgress prometheus.Gauge

	// UserOperationsTotal DAO操作总数
	UserOperationsTotal *prometheus.CounterVec

	// UserOperationDuration DAO操作耗时
	UserOperationDuration *prometheus.HistogramVec
)

// InitMetrics 注册所有指标到默认Registry，重复调用安全
func InitMetrics() {
	initOnce.Do(func() {
		HTTPRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "HTTP请求总数",
			},
			[]string{"method", "path", "status"},
		)

		HTTPRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP请求耗时（秒）",
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
			},
			[]string{"method", "path"},
		)

		HTTPRequestsInProgress = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_progress",
				Help: "正在处理的HTTP请求数",
			},
		)

		UserOperationsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "user_dao_operations_total",
				Help: "用户DAO操作总数",
			},
			[]string{"operation", "result"},
		)

		// 存储调用通常在毫秒级，桶比HTTP更细
		UserOperationDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "user_dao_operation_duration_seconds",
				Help:    "用户DAO操作耗时（秒）",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"operation"},
		)
	})
}

// Handler /metrics端点
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveUserOperation 记录一次DAO操作
func ObserveUserOperation(operation, result string, elapsed time.Duration) {
	if UserOperationsTotal == nil {
		return
	}
	UserOperationsTotal.With(prometheus.Labels{"operation": operation, "result": result}).Inc()
	UserOperationDuration.With(prometheus.Labels{"operation": operation}).Observe(elapsed.Seconds())
}

// ObserveHTTPRequest 记录一次HTTP请求
func ObserveHTTPRequest(method, path, status string, elapsed time.Duration) {
	if HTTPRequestsTotal == nil {
		return
	}
	HTTPRequestsTotal.With(prometheus.Labels{"method": method, "path": path, "status": status}).Inc()
	HTTPRequestDuration.With(prometheus.Labels{"method": method, "path": path}).Observe(elapsed.Seconds())
}

// IncInProgress 递增正在处理的请求数
func IncInProgress() {
	if HTTPRequestsInProgress != nil {
		HTTPRequestsInProgress.Inc()
	}
}

// DecInProgress 递减正在处理的请求数
func DecInProgress() {
	if HTTPRequestsInProgress != nil {
		HTTPRequestsInProgress.Dec()
	}
}
