package v1

import (
	statuspb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/idot-digital/dbconsole/internal/wire"
)

type AuditLog_Severity int32

const (
	AuditLog_DEFAULT   AuditLog_Severity = 0
	AuditLog_DEBUG     AuditLog_Severity = 1
	AuditLog_INFO      AuditLog_Severity = 2
	AuditLog_NOTICE    AuditLog_Severity = 3
	AuditLog_WARNING   AuditLog_Severity = 4
	AuditLog_ERROR     AuditLog_Severity = 5
	AuditLog_CRITICAL  AuditLog_Severity = 6
	AuditLog_ALERT     AuditLog_Severity = 7
	AuditLog_EMERGENCY AuditLog_Severity = 8
)

var (
	AuditLog_Severity_name = map[int32]string{
		0: "DEFAULT",
		1: "DEBUG",
		2: "INFO",
		3: "NOTICE",
		4: "WARNING",
		5: "ERROR",
		6: "CRITICAL",
		7: "ALERT",
		8: "EMERGENCY",
	}
	AuditLog_Severity_value = map[string]int32{
		"DEFAULT":   0,
		"DEBUG":     1,
		"INFO":      2,
		"NOTICE":    3,
		"WARNING":   4,
		"ERROR":     5,
		"CRITICAL":  6,
		"ALERT":     7,
		"EMERGENCY": 8,
	}
)

func (x AuditLog_Severity) String() string {
	return wire.EnumName(AuditLog_Severity_name, int32(x))
}
func (AuditLog_Severity) EnumValues() map[string]int32 { return AuditLog_Severity_value }

type AuditLog struct {
	// Format: [projects/{project}/]auditLogs/{uid}
	Name       string                 `protobuf:"1,name"`
	CreateTime *timestamppb.Timestamp `protobuf:"2,create_time"`
	// Format: users/{email}
	User     string            `protobuf:"3,user"`
	Method   string            `protobuf:"4,method"`
	Severity AuditLog_Severity `protobuf:"5,severity"`
	// The resource the request acted on, e.g. environments/prod.
	Resource string `protobuf:"6,resource"`
	// JSON encoded request with secrets removed.
	Request string `protobuf:"7,request"`
	// JSON encoded response with secrets removed.
	Response string               `protobuf:"8,response"`
	Status   *statuspb.Status     `protobuf:"9,status"`
	Latency  *durationpb.Duration `protobuf:"10,latency"`
}

type SearchAuditLogsRequest struct {
	// Empty for workspace level logs, or projects/{project}.
	Parent string `protobuf:"1,parent"`
	// e.g. method == "/dbconsole.v1.EnvironmentService/CreateEnvironment" && create_time >= "2024-01-01T00:00:00Z"
	Filter string `protobuf:"2,filter"`
	// "create_time desc" (default) or "create_time asc".
	OrderBy   string `protobuf:"3,order_by"`
	PageSize  int32  `protobuf:"4,page_size"`
	PageToken string `protobuf:"5,page_token"`
}

type SearchAuditLogsResponse struct {
	AuditLogs     []*AuditLog `protobuf:"1,audit_logs"`
	NextPageToken string      `protobuf:"2,next_page_token"`
}

type ExportAuditLogsRequest struct {
	Parent    string       `protobuf:"1,parent"`
	Filter    string       `protobuf:"2,filter"`
	OrderBy   string       `protobuf:"3,order_by"`
	Format    ExportFormat `protobuf:"4,format"`
	PageSize  int32        `protobuf:"5,page_size"`
	PageToken string       `protobuf:"6,page_token"`
}

type ExportAuditLogsResponse struct {
	Content       []byte `protobuf:"1,content"`
	NextPageToken string `protobuf:"2,next_page_token"`
}
