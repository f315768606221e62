package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFrom(t *testing.T) {
	t.Run("文件值覆盖默认值", func(t *testing.T) {
		path := writeConfig(t, `
server:
  port: 9090
  mode: release
store:
  driver: redis
redis:
  host: cache
  port: 6380
database:
  loc: Asia/Shanghai
`)

		cfg, err := LoadFrom(path)

		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "release", cfg.Server.Mode)
		assert.Equal(t, DriverRedis, cfg.Store.Driver)
		assert.Equal(t, "cache:6380", cfg.Redis.Addr())
		assert.Contains(t, cfg.Database.DSN(), "loc=Asia%2FShanghai")
	})

	t.Run("未配置的key使用默认值", func(t *testing.T) {
		path := writeConfig(t, "server:\n  port: 8081\n")

		cfg, err := LoadFrom(path)

		require.NoError(t, err)
		assert.Equal(t, DriverMemory, cfg.Store.Driver)
		assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "userdao", cfg.Tracing.ServiceName)
		assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	})

	t.Run("环境变量覆盖文件", func(t *testing.T) {
		path := writeConfig(t, "database:\n  password: from-file\n")
		t.Setenv("USERDAO_DATABASE_PASSWORD", "from-env")
		t.Setenv("USERDAO_STORE_DRIVER", "mysql")

		cfg, err := LoadFrom(path)

		require.NoError(t, err)
		assert.Equal(t, "from-env", cfg.Database.Password)
		assert.Equal(t, DriverMySQL, cfg.Store.Driver)
	})

	t.Run("未知驱动校验失败", func(t *testing.T) {
		path := writeConfig(t, "store:\n  driver: mongodb\n")

		_, err := LoadFrom(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "mongodb")
	})

	t.Run("非法端口校验失败", func(t *testing.T) {
		path := writeConfig(t, "server:\n  port: 70000\n")

		_, err := LoadFrom(path)

		assert.Error(t, err)
	})

	t.Run("文件不存在", func(t *testing.T) {
		_, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))

		assert.Error(t, err)
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host:      "127.0.0.1",
		Port:      3306,
		User:      "root",
		Password:  "secret",
		DBName:    "userdao",
		Charset:   "utf8mb4",
		ParseTime: true,
		Loc:       "Local",
	}

	assert.Equal(t,
		"root:secret@tcp(127.0.0.1:3306)/userdao?charset=utf8mb4&parseTime=true&loc=Local",
		d.DSN(),
	)
}
