package v1

import (
	"google.golang.org/protobuf/types/known/fieldmaskpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/idot-digital/dbconsole/internal/wire"
)

type SyncState int32

const (
	SyncState_SYNC_STATE_UNSPECIFIED SyncState = 0
	SyncState_OK                     SyncState = 1
	SyncState_NOT_FOUND              SyncState = 2
)

var (
	SyncState_name = map[int32]string{
		0: "SYNC_STATE_UNSPECIFIED",
		1: "OK",
		2: "NOT_FOUND",
	}
	SyncState_value = map[string]int32{
		"SYNC_STATE_UNSPECIFIED": 0,
		"OK":                     1,
		"NOT_FOUND":              2,
	}
)

func (x SyncState) String() string             { return wire.EnumName(SyncState_name, int32(x)) }
func (SyncState) EnumValues() map[string]int32 { return SyncState_value }

type Database struct {
	// Format: instances/{instance}/databases/{database}
	Name               string                 `protobuf:"1,name"`
	SyncState          SyncState              `protobuf:"2,sync_state"`
	SuccessfulSyncTime *timestamppb.Timestamp `protobuf:"3,successful_sync_time"`
	// Format: projects/{project}
	Project string `protobuf:"4,project"`
	// Explicitly assigned environment, overriding the instance's.
	Environment string `protobuf:"5,environment"`
	// Output only. Environment or the instance's environment.
	EffectiveEnvironment string            `protobuf:"6,effective_environment"`
	SchemaVersion        string            `protobuf:"7,schema_version"`
	Labels               map[string]string `protobuf:"8,labels"`
}

type GetDatabaseRequest struct {
	Name string `protobuf:"1,name"`
}

type ListDatabasesRequest struct {
	// instances/{instance}, instances/- for all instances, or projects/{project}.
	Parent    string `protobuf:"1,parent"`
	PageSize  int32  `protobuf:"2,page_size"`
	PageToken string `protobuf:"3,page_token"`
	// e.g. environment == "environments/test" && labels.tenant == "acme"
	Filter string `protobuf:"4,filter"`
}

type ListDatabasesResponse struct {
	Databases     []*Database `protobuf:"1,databases"`
	NextPageToken string      `protobuf:"2,next_page_token"`
}

type UpdateDatabaseRequest struct {
	Database   *Database              `protobuf:"1,database"`
	UpdateMask *fieldmaskpb.FieldMask `protobuf:"2,update_mask"`
}

type TreeNode_Type int32

const (
	TreeNode_TYPE_UNSPECIFIED TreeNode_Type = 0
	TreeNode_PROJECT          TreeNode_Type = 1
	TreeNode_INSTANCE         TreeNode_Type = 2
	TreeNode_ENVIRONMENT      TreeNode_Type = 3
	TreeNode_LABEL            TreeNode_Type = 4
	TreeNode_DATABASE         TreeNode_Type = 5
)

var (
	TreeNode_Type_name = map[int32]string{
		0: "TYPE_UNSPECIFIED",
		1: "PROJECT",
		2: "INSTANCE",
		3: "ENVIRONMENT",
		4: "LABEL",
		5: "DATABASE",
	}
	TreeNode_Type_value = map[string]int32{
		"TYPE_UNSPECIFIED": 0,
		"PROJECT":          1,
		"INSTANCE":         2,
		"ENVIRONMENT":      3,
		"LABEL":            4,
		"DATABASE":         5,
	}
)

func (x TreeNode_Type) String() string             { return wire.EnumName(TreeNode_Type_name, int32(x)) }
func (TreeNode_Type) EnumValues() map[string]int32 { return TreeNode_Type_value }

// TreeNode is a node of the SQL editor's database tree.
type TreeNode struct {
	// Unique within the tree: the chain of group values from the root.
	Key      string        `protobuf:"1,key"`
	Type     TreeNode_Type `protobuf:"2,type"`
	Title    string        `protobuf:"3,title"`
	Children []*TreeNode   `protobuf:"4,children"`
	// Set on DATABASE leaves.
	Database string `protobuf:"5,database"`
	// Set on LABEL groups.
	LabelKey   string `protobuf:"6,label_key"`
	LabelValue string `protobuf:"7,label_value"`
	IsLeaf     bool   `protobuf:"8,is_leaf"`
}

type GetDatabaseTreeRequest struct {
	// Grouping factors applied from the root down: project, instance,
	// environment or label:<key>. Defaults to [project].
	Factors []string `protobuf:"1,factors"`
	// Restricts the tree to one project.
	Project string `protobuf:"2,project"`
	// Applied to databases before grouping.
	Filter string `protobuf:"3,filter"`
}

type DatabaseTree struct {
	Nodes   []*TreeNode `protobuf:"1,nodes"`
	Factors []string    `protobuf:"2,factors"`
}
