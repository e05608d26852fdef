package v1

import (
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/idot-digital/dbconsole/internal/wire"
)

type Anomaly_AnomalyType int32

const (
	Anomaly_ANOMALY_TYPE_UNSPECIFIED Anomaly_AnomalyType = 0
	Anomaly_INSTANCE_CONNECTION      Anomaly_AnomalyType = 1
	Anomaly_MIGRATION_SCHEMA         Anomaly_AnomalyType = 2
	Anomaly_DATABASE_CONNECTION      Anomaly_AnomalyType = 3
	Anomaly_DATABASE_SCHEMA_DRIFT    Anomaly_AnomalyType = 4
)

var (
	Anomaly_AnomalyType_name = map[int32]string{
		0: "ANOMALY_TYPE_UNSPECIFIED",
		1: "INSTANCE_CONNECTION",
		2: "MIGRATION_SCHEMA",
		3: "DATABASE_CONNECTION",
		4: "DATABASE_SCHEMA_DRIFT",
	}
	Anomaly_AnomalyType_value = map[string]int32{
		"ANOMALY_TYPE_UNSPECIFIED": 0,
		"INSTANCE_CONNECTION":      1,
		"MIGRATION_SCHEMA":         2,
		"DATABASE_CONNECTION":      3,
		"DATABASE_SCHEMA_DRIFT":    4,
	}
)

func (x Anomaly_AnomalyType) String() string {
	return wire.EnumName(Anomaly_AnomalyType_name, int32(x))
}
func (Anomaly_AnomalyType) EnumValues() map[string]int32 { return Anomaly_AnomalyType_value }

type Anomaly_AnomalySeverity int32

const (
	Anomaly_ANOMALY_SEVERITY_UNSPECIFIED Anomaly_AnomalySeverity = 0
	Anomaly_MEDIUM                       Anomaly_AnomalySeverity = 1
	Anomaly_HIGH                         Anomaly_AnomalySeverity = 2
	Anomaly_CRITICAL                     Anomaly_AnomalySeverity = 3
)

var (
	Anomaly_AnomalySeverity_name = map[int32]string{
		0: "ANOMALY_SEVERITY_UNSPECIFIED",
		1: "MEDIUM",
		2: "HIGH",
		3: "CRITICAL",
	}
	Anomaly_AnomalySeverity_value = map[string]int32{
		"ANOMALY_SEVERITY_UNSPECIFIED": 0,
		"MEDIUM":                       1,
		"HIGH":                         2,
		"CRITICAL":                     3,
	}
)

func (x Anomaly_AnomalySeverity) String() string {
	return wire.EnumName(Anomaly_AnomalySeverity_name, int32(x))
}
func (Anomaly_AnomalySeverity) EnumValues() map[string]int32 { return Anomaly_AnomalySeverity_value }

type Anomaly struct {
	// The resource the anomaly belongs to, e.g. instances/{instance} or
	// instances/{instance}/databases/{database}.
	Resource string                  `protobuf:"1,resource"`
	Type     Anomaly_AnomalyType     `protobuf:"2,type"`
	Severity Anomaly_AnomalySeverity `protobuf:"3,severity"`
	// Only one of the detail fields is set, matching Type.
	InstanceConnectionDetail *Anomaly_InstanceConnectionDetail  `protobuf:"4,instance_connection_detail,oneof=detail"`
	DatabaseConnectionDetail *Anomaly_DatabaseConnectionDetail  `protobuf:"5,database_connection_detail,oneof=detail"`
	SchemaDriftDetail        *Anomaly_DatabaseSchemaDriftDetail `protobuf:"6,schema_drift_detail,oneof=detail"`
	CreateTime               *timestamppb.Timestamp             `protobuf:"7,create_time"`
	UpdateTime               *timestamppb.Timestamp             `protobuf:"8,update_time"`
}

type Anomaly_InstanceConnectionDetail struct {
	Detail string `protobuf:"1,detail"`
}

type Anomaly_DatabaseConnectionDetail struct {
	Detail string `protobuf:"1,detail"`
}

type Anomaly_DatabaseSchemaDriftDetail struct {
	RecordVersion  string `protobuf:"1,record_version"`
	ExpectedSchema string `protobuf:"2,expected_schema"`
	ActualSchema   string `protobuf:"3,actual_schema"`
}

type SearchAnomaliesRequest struct {
	// Empty for the whole workspace, or projects/{project}.
	Parent string `protobuf:"1,parent"`
	// e.g. resource.startsWith("instances/prod") && type == "DATABASE_CONNECTION"
	Filter    string `protobuf:"2,filter"`
	PageSize  int32  `protobuf:"3,page_size"`
	PageToken string `protobuf:"4,page_token"`
}

type SearchAnomaliesResponse struct {
	Anomalies     []*Anomaly `protobuf:"1,anomalies"`
	NextPageToken string     `protobuf:"2,next_page_token"`
}
