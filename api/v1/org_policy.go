package v1

import (
	"google.golang.org/protobuf/types/known/fieldmaskpb"

	"github.com/idot-digital/dbconsole/internal/wire"
)

type PolicyType int32

const (
	PolicyType_POLICY_TYPE_UNSPECIFIED PolicyType = 0
	PolicyType_ROLLOUT_POLICY          PolicyType = 1
	PolicyType_DISABLE_COPY_DATA       PolicyType = 2
	PolicyType_SQL_REVIEW              PolicyType = 3
	PolicyType_TAG                     PolicyType = 4
)

var (
	PolicyType_name = map[int32]string{
		0: "POLICY_TYPE_UNSPECIFIED",
		1: "ROLLOUT_POLICY",
		2: "DISABLE_COPY_DATA",
		3: "SQL_REVIEW",
		4: "TAG",
	}
	PolicyType_value = map[string]int32{
		"POLICY_TYPE_UNSPECIFIED": 0,
		"ROLLOUT_POLICY":          1,
		"DISABLE_COPY_DATA":       2,
		"SQL_REVIEW":              3,
		"TAG":                     4,
	}
)

func (x PolicyType) String() string             { return wire.EnumName(PolicyType_name, int32(x)) }
func (PolicyType) EnumValues() map[string]int32 { return PolicyType_value }

type PolicyResourceType int32

const (
	PolicyResourceType_RESOURCE_TYPE_UNSPECIFIED PolicyResourceType = 0
	PolicyResourceType_WORKSPACE                 PolicyResourceType = 1
	PolicyResourceType_ENVIRONMENT               PolicyResourceType = 2
	PolicyResourceType_PROJECT                   PolicyResourceType = 3
	PolicyResourceType_INSTANCE                  PolicyResourceType = 4
	PolicyResourceType_DATABASE                  PolicyResourceType = 5
)

var (
	PolicyResourceType_name = map[int32]string{
		0: "RESOURCE_TYPE_UNSPECIFIED",
		1: "WORKSPACE",
		2: "ENVIRONMENT",
		3: "PROJECT",
		4: "INSTANCE",
		5: "DATABASE",
	}
	PolicyResourceType_value = map[string]int32{
		"RESOURCE_TYPE_UNSPECIFIED": 0,
		"WORKSPACE":                 1,
		"ENVIRONMENT":               2,
		"PROJECT":                   3,
		"INSTANCE":                  4,
		"DATABASE":                  5,
	}
)

func (x PolicyResourceType) String() string {
	return wire.EnumName(PolicyResourceType_name, int32(x))
}
func (PolicyResourceType) EnumValues() map[string]int32 { return PolicyResourceType_value }

type SQLReviewRuleLevel int32

const (
	SQLReviewRuleLevel_LEVEL_UNSPECIFIED SQLReviewRuleLevel = 0
	SQLReviewRuleLevel_ERROR             SQLReviewRuleLevel = 1
	SQLReviewRuleLevel_WARNING           SQLReviewRuleLevel = 2
	SQLReviewRuleLevel_DISABLED          SQLReviewRuleLevel = 3
)

var (
	SQLReviewRuleLevel_name = map[int32]string{
		0: "LEVEL_UNSPECIFIED",
		1: "ERROR",
		2: "WARNING",
		3: "DISABLED",
	}
	SQLReviewRuleLevel_value = map[string]int32{
		"LEVEL_UNSPECIFIED": 0,
		"ERROR":             1,
		"WARNING":           2,
		"DISABLED":          3,
	}
)

func (x SQLReviewRuleLevel) String() string {
	return wire.EnumName(SQLReviewRuleLevel_name, int32(x))
}
func (SQLReviewRuleLevel) EnumValues() map[string]int32 { return SQLReviewRuleLevel_value }

type Policy struct {
	// Format: {resource}/policies/{policy}, where policy is the lower-kebab
	// form of the type, e.g. environments/prod/policies/sql-review.
	Name              string     `protobuf:"1,name"`
	InheritFromParent bool       `protobuf:"2,inherit_from_parent"`
	Type              PolicyType `protobuf:"3,type"`
	// Only the payload matching Type is set.
	RolloutPolicy         *RolloutPolicy         `protobuf:"4,rollout_policy,oneof=payload"`
	DisableCopyDataPolicy *DisableCopyDataPolicy `protobuf:"5,disable_copy_data_policy,oneof=payload"`
	SqlReviewPolicy       *SQLReviewPolicy       `protobuf:"6,sql_review_policy,oneof=payload"`
	TagPolicy             *TagPolicy             `protobuf:"7,tag_policy,oneof=payload"`
	Enforce               bool                   `protobuf:"8,enforce"`
	// Output only.
	ResourceType PolicyResourceType `protobuf:"9,resource_type"`
}

type RolloutPolicy struct {
	Automatic      bool     `protobuf:"1,automatic"`
	WorkspaceRoles []string `protobuf:"2,workspace_roles"`
	ProjectRoles   []string `protobuf:"3,project_roles"`
}

type DisableCopyDataPolicy struct {
	Active bool `protobuf:"1,active"`
}

type SQLReviewPolicy struct {
	Name  string           `protobuf:"1,name"`
	Rules []*SQLReviewRule `protobuf:"2,rules"`
}

type SQLReviewRule struct {
	// Rule identifier such as table.require-pk.
	Type  string             `protobuf:"1,type"`
	Level SQLReviewRuleLevel `protobuf:"2,level"`
	// JSON encoded rule options.
	Payload string `protobuf:"3,payload"`
	// Empty applies to every engine.
	Engine  Engine `protobuf:"4,engine"`
	Comment string `protobuf:"5,comment"`
}

type TagPolicy struct {
	// Tag key to value, e.g. bb.tenant -> required.
	Tags map[string]string `protobuf:"1,tags"`
}

type GetPolicyRequest struct {
	Name string `protobuf:"1,name"`
}

type ListPoliciesRequest struct {
	// Empty for the workspace, or environments/{e}, projects/{p},
	// instances/{i}, instances/{i}/databases/{d}.
	Parent      string      `protobuf:"1,parent"`
	PolicyType  *PolicyType `protobuf:"2,policy_type"`
	PageSize    int32       `protobuf:"3,page_size"`
	PageToken   string      `protobuf:"4,page_token"`
	ShowDeleted bool        `protobuf:"5,show_deleted"`
}

type ListPoliciesResponse struct {
	Policies      []*Policy `protobuf:"1,policies"`
	NextPageToken string    `protobuf:"2,next_page_token"`
}

type CreatePolicyRequest struct {
	Parent string     `protobuf:"1,parent"`
	Policy *Policy    `protobuf:"2,policy"`
	Type   PolicyType `protobuf:"3,type"`
}

type UpdatePolicyRequest struct {
	Policy     *Policy                `protobuf:"1,policy"`
	UpdateMask *fieldmaskpb.FieldMask `protobuf:"2,update_mask"`
	// Create the policy when it does not exist.
	AllowMissing bool `protobuf:"3,allow_missing"`
}

type DeletePolicyRequest struct {
	Name string `protobuf:"1,name"`
}
