package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
	statuspb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/grpc/codes"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	v1pb "github.com/idot-digital/dbconsole/api/v1"
)

func sampleLogs() []*v1pb.AuditLog {
	return []*v1pb.AuditLog{
		{
			Name:       "auditLogs/1",
			CreateTime: timestamppb.New(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)),
			User:       "users/ana@example.com",
			Method:     "/dbconsole.v1.EnvironmentService/CreateEnvironment",
			Severity:   v1pb.AuditLog_INFO,
			Resource:   "environments/prod",
			Request:    `{"environmentId":"prod"}`,
			Response:   `{"name":"environments/prod"}`,
			Status:     &statuspb.Status{},
			Latency:    durationpb.New(15 * time.Millisecond),
		},
		{
			Name:     "projects/shop/auditLogs/2",
			Method:   "/dbconsole.v1.ReleaseService/DeleteRelease",
			Severity: v1pb.AuditLog_ERROR,
			Request:  "it's\nmultiline",
			Status:   &statuspb.Status{Code: int32(codes.NotFound), Message: "release not found"},
		},
	}
}

func TestCSV(t *testing.T) {
	b, err := AuditLogs(v1pb.ExportFormat_CSV, sampleLogs())
	require.NoError(t, err)
	records, err := csv.NewReader(bytes.NewReader(b)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, Columns, records[0])
	assert.Equal(t, "2024-05-01T10:00:00Z", records[1][1])
	assert.Equal(t, "OK", records[1][8])
	assert.Equal(t, "15ms", records[1][9])
	assert.Equal(t, "NotFound: release not found", records[2][8])
	assert.Equal(t, "it's\nmultiline", records[2][6])
}

func TestJSON(t *testing.T) {
	b, err := AuditLogs(v1pb.ExportFormat_JSON, sampleLogs())
	require.NoError(t, err)
	var out []map[string]any
	require.NoError(t, json.Unmarshal(b, &out))
	require.Len(t, out, 2)
	assert.Equal(t, "auditLogs/1", out[0]["name"])
	assert.Equal(t, "ERROR", out[1]["severity"])

	b, err = JSON(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))
}

func TestSQL(t *testing.T) {
	b, err := AuditLogs(v1pb.ExportFormat_SQL, sampleLogs())
	require.NoError(t, err)
	lines := bytes.Split(bytes.TrimSpace(b), []byte("\n"))
	require.Len(t, lines, 2)
	assert.True(t, bytes.HasPrefix(lines[0], []byte("INSERT INTO `audit_log` (`name`, `create_time`")))
	assert.Contains(t, string(lines[1]), `'it''s\nmultiline'`)
}

func TestXLSX(t *testing.T) {
	b, err := AuditLogs(v1pb.ExportFormat_XLSX, sampleLogs())
	require.NoError(t, err)
	file, err := xlsx.OpenBinary(b)
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)
	rows := file.Sheets[0].Rows
	require.Len(t, rows, 3)
	assert.Equal(t, "name", rows[0].Cells[0].Value)
	assert.Equal(t, "projects/shop/auditLogs/2", rows[2].Cells[0].Value)
}

func TestUnsupportedFormat(t *testing.T) {
	_, err := AuditLogs(v1pb.ExportFormat_FORMAT_UNSPECIFIED, sampleLogs())
	assert.Error(t, err)
}
