//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// 集成测试辅助工具：封装HTTP请求与JSON解析
// 运行方式（需要先启动服务）：
//   go test -tags=integration -v ./test/integration/...

// Timeout HTTP请求超时时间
const Timeout = 10 * time.Second

// BaseURL API基础URL，可用USERDAO_BASE_URL覆盖
func BaseURL() string {
	if url := os.Getenv("USERDAO_BASE_URL"); url != "" {
		return url
	}
	return "http://localhost:8080/api/v1"
}

// Response 统一响应结构
type Response struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// UserData 用户响应数据
type UserData struct {
	Name     string `json:"name"`
	LastName string `json:"last_name"`
	FullName string `json:"full_name"`
	Enabled  bool   `json:"enabled"`
}

// DoJSON 发送请求并解析统一响应
// data为nil时不发送请求体
func DoJSON(t *testing.T, method, url string, data interface{}) *Response {
	t.Helper()

	var body io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		require.NoError(t, err, "JSON序列化失败")
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err, "创建HTTP请求失败")
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	var result Response
	require.NoError(t, json.Unmarshal(raw, &result), "解析JSON响应失败: %s", string(raw))
	return &result
}

// GetJSON 发送GET请求
func GetJSON(t *testing.T, url string) *Response {
	t.Helper()
	return DoJSON(t, http.MethodGet, url, nil)
}

// PostJSON 发送POST请求
func PostJSON(t *testing.T, url string, data interface{}) *Response {
	t.Helper()
	return DoJSON(t, http.MethodPost, url, data)
}

// UniqueName 生成唯一的测试用户名，避免重复运行时互相干扰
func UniqueName(prefix string) string {
	return prefix + "-" + uuid.NewString()[:8]
}
