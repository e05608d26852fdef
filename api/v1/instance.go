package v1

import (
	"google.golang.org/protobuf/types/known/fieldmaskpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/idot-digital/dbconsole/internal/wire"
)

type DataSourceType int32

const (
	DataSourceType_DATA_SOURCE_UNSPECIFIED DataSourceType = 0
	DataSourceType_ADMIN                   DataSourceType = 1
	DataSourceType_READ_ONLY               DataSourceType = 2
)

var (
	DataSourceType_name = map[int32]string{
		0: "DATA_SOURCE_UNSPECIFIED",
		1: "ADMIN",
		2: "READ_ONLY",
	}
	DataSourceType_value = map[string]int32{
		"DATA_SOURCE_UNSPECIFIED": 0,
		"ADMIN":                   1,
		"READ_ONLY":               2,
	}
)

func (x DataSourceType) String() string {
	return wire.EnumName(DataSourceType_name, int32(x))
}
func (DataSourceType) EnumValues() map[string]int32 { return DataSourceType_value }

type DataSource struct {
	Id       string         `protobuf:"1,id"`
	Type     DataSourceType `protobuf:"2,type"`
	Username string         `protobuf:"3,username"`
	// Input only. Never returned.
	Password string `protobuf:"4,password"`
	Host     string `protobuf:"5,host"`
	Port     string `protobuf:"6,port"`
	Database string `protobuf:"7,database"`
	UseSsl   bool   `protobuf:"8,use_ssl"`
}

type Instance struct {
	// Format: instances/{instance}
	Name          string        `protobuf:"1,name"`
	State         State         `protobuf:"2,state"`
	Title         string        `protobuf:"3,title"`
	Engine        Engine        `protobuf:"4,engine"`
	EngineVersion string        `protobuf:"5,engine_version"`
	ExternalLink  string        `protobuf:"6,external_link"`
	DataSources   []*DataSource `protobuf:"7,data_sources"`
	// Format: environments/{environment}
	Environment  string                 `protobuf:"8,environment"`
	Activation   bool                   `protobuf:"9,activation"`
	LastSyncTime *timestamppb.Timestamp `protobuf:"10,last_sync_time"`
}

type GetInstanceRequest struct {
	Name string `protobuf:"1,name"`
}

type ListInstancesRequest struct {
	PageSize    int32  `protobuf:"1,page_size"`
	PageToken   string `protobuf:"2,page_token"`
	ShowDeleted bool   `protobuf:"3,show_deleted"`
	// e.g. environment == "environments/prod" && engine in ["MYSQL", "POSTGRES"]
	Filter string `protobuf:"4,filter"`
}

type ListInstancesResponse struct {
	Instances     []*Instance `protobuf:"1,instances"`
	NextPageToken string      `protobuf:"2,next_page_token"`
}

type CreateInstanceRequest struct {
	Instance   *Instance `protobuf:"1,instance"`
	InstanceId string    `protobuf:"2,instance_id"`
	// Skip the connection check before creating.
	ValidateOnly bool `protobuf:"3,validate_only"`
}

type UpdateInstanceRequest struct {
	Instance   *Instance              `protobuf:"1,instance"`
	UpdateMask *fieldmaskpb.FieldMask `protobuf:"2,update_mask"`
}

type DeleteInstanceRequest struct {
	Name string `protobuf:"1,name"`
	// Also remove the instance's databases.
	Force bool `protobuf:"2,force"`
}

type UndeleteInstanceRequest struct {
	Name string `protobuf:"1,name"`
}

type SyncInstanceRequest struct {
	Name string `protobuf:"1,name"`
}

type SyncInstanceResponse struct {
	Databases []string `protobuf:"1,databases"`
}

type AddDataSourceRequest struct {
	// Format: instances/{instance}
	Name       string      `protobuf:"1,name"`
	DataSource *DataSource `protobuf:"2,data_source"`
}

type RemoveDataSourceRequest struct {
	Name       string      `protobuf:"1,name"`
	DataSource *DataSource `protobuf:"2,data_source"`
}

type UpdateDataSourceRequest struct {
	Name       string                 `protobuf:"1,name"`
	DataSource *DataSource            `protobuf:"2,data_source"`
	UpdateMask *fieldmaskpb.FieldMask `protobuf:"3,update_mask"`
}
