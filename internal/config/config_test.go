package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1pb "github.com/idot-digital/dbconsole/api/v1"
)

func envOf(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(nil, envOf(nil))
	require.NoError(t, err)
	assert.Equal(t, 50051, cfg.GRPCPort)
	assert.Equal(t, 8080, cfg.RESTPort)
	assert.Equal(t, DriverMySQL, cfg.DBDriver)
	assert.Equal(t, 1000, cfg.AuditBufferSize)
	assert.Equal(t, 7*24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 30*time.Minute, cfg.SyncInterval)
	assert.Equal(t, "http://localhost:8080", cfg.ExternalURL)
	assert.Empty(t, cfg.AuthToken)
	assert.Contains(t, cfg.GetDBURI(), "root:root@tcp(localhost:3306)/dbconsole")
}

func TestParseOverrides(t *testing.T) {
	cfg, err := Parse([]string{"-grpc-port", "9000", "-rest-port=9001", "-review-templates", "review.yaml"}, envOf(map[string]string{
		"DB_DRIVER":     "postgres",
		"POSTGRES_DSN":  "postgres://u:p@db/console",
		"REDIS_ADDR":    "redis:6379",
		"REDIS_DB":      "2",
		"AUTH_TOKEN":    "secret",
		"SESSION_TTL":   "12h",
		"SYNC_INTERVAL": "0s",
		"AUDIT_BUFFER":  "10",
	}))
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.GRPCPort)
	assert.Equal(t, 9001, cfg.RESTPort)
	assert.Equal(t, "review.yaml", cfg.ReviewTemplates)
	assert.Equal(t, "postgres://u:p@db/console", cfg.GetDBURI())
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, "secret", cfg.AuthToken)
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
	assert.Zero(t, cfg.SyncInterval)
	assert.Equal(t, 10, cfg.AuditBufferSize)
}

func TestParseRejectsBadValues(t *testing.T) {
	for key, value := range map[string]string{
		"DB_DRIVER":     "sqlite",
		"AUDIT_BUFFER":  "0",
		"SESSION_TTL":   "0s",
		"SYNC_INTERVAL": "-5m",
		"REDIS_DB":      "x",
	} {
		_, err := Parse(nil, envOf(map[string]string{key: value}))
		assert.Error(t, err, key)
	}
	_, err := Parse(nil, envOf(map[string]string{"SESSION_TTL": "forever"}))
	assert.Error(t, err)
	_, err = Parse([]string{"-grpc-port", "abc"}, envOf(nil))
	assert.Error(t, err)
}

func TestLoadReviewTemplates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "review.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
configs:
  - id: baseline
    title: Baseline
    enabled: true
    resources: [environments/prod]
    rules:
      - type: statement.where.require
        level: ERROR
      - type: naming.table
        level: WARNING
        engine: MYSQL
        payload: '{"format": "^[a-z_]+$"}'
`), 0o600))

	configs, err := LoadReviewTemplates(path)
	require.NoError(t, err)
	require.Len(t, configs, 1)
	cfg := configs[0]
	assert.Equal(t, "reviewConfigs/baseline", cfg.Name)
	assert.True(t, cfg.Enabled)
	assert.Equal(t, []string{"environments/prod"}, cfg.Resources)
	require.Len(t, cfg.Rules, 2)
	assert.Equal(t, v1pb.SQLReviewRuleLevel_ERROR, cfg.Rules[0].Level)
	assert.Equal(t, v1pb.Engine_ENGINE_UNSPECIFIED, cfg.Rules[0].Engine)
	assert.Equal(t, v1pb.Engine_MYSQL, cfg.Rules[1].Engine)
	assert.Equal(t, `{"format": "^[a-z_]+$"}`, cfg.Rules[1].Payload)
}

func TestParseReviewTemplatesErrors(t *testing.T) {
	for name, doc := range map[string]string{
		"bad id":     "configs:\n  - id: Bad_ID\n",
		"duplicate":  "configs:\n  - id: a\n  - id: a\n",
		"level":      "configs:\n  - id: a\n    rules:\n      - type: table.require-pk\n        level: LOUD\n",
		"engine":     "configs:\n  - id: a\n    rules:\n      - type: table.require-pk\n        level: ERROR\n        engine: DB2\n",
		"not a yaml": "configs: [",
	} {
		_, err := ParseReviewTemplates([]byte(doc))
		assert.Error(t, err, name)
	}
}
