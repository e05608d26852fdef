package v1

import (
	"google.golang.org/protobuf/types/known/fieldmaskpb"

	"github.com/idot-digital/dbconsole/internal/wire"
)

type EnvironmentTier int32

const (
	EnvironmentTier_ENVIRONMENT_TIER_UNSPECIFIED EnvironmentTier = 0
	EnvironmentTier_PROTECTED                    EnvironmentTier = 1
	EnvironmentTier_UNPROTECTED                  EnvironmentTier = 2
)

var (
	EnvironmentTier_name = map[int32]string{
		0: "ENVIRONMENT_TIER_UNSPECIFIED",
		1: "PROTECTED",
		2: "UNPROTECTED",
	}
	EnvironmentTier_value = map[string]int32{
		"ENVIRONMENT_TIER_UNSPECIFIED": 0,
		"PROTECTED":                    1,
		"UNPROTECTED":                  2,
	}
)

func (x EnvironmentTier) String() string {
	return wire.EnumName(EnvironmentTier_name, int32(x))
}
func (EnvironmentTier) EnumValues() map[string]int32 { return EnvironmentTier_value }

type Environment struct {
	// Format: environments/{environment}
	Name  string          `protobuf:"1,name"`
	Title string          `protobuf:"2,title"`
	Order int32           `protobuf:"3,order"`
	State State           `protobuf:"4,state"`
	Tier  EnvironmentTier `protobuf:"5,tier"`
	// Hex color such as #4f46e5, used by the UI.
	Color string `protobuf:"6,color"`
}

type GetEnvironmentRequest struct {
	Name string `protobuf:"1,name"`
}

type ListEnvironmentsRequest struct {
	PageSize    int32  `protobuf:"1,page_size"`
	PageToken   string `protobuf:"2,page_token"`
	ShowDeleted bool   `protobuf:"3,show_deleted"`
}

type ListEnvironmentsResponse struct {
	Environments  []*Environment `protobuf:"1,environments"`
	NextPageToken string         `protobuf:"2,next_page_token"`
}

type CreateEnvironmentRequest struct {
	Environment *Environment `protobuf:"1,environment"`
	// Becomes the final component of the name.
	EnvironmentId string `protobuf:"2,environment_id"`
}

type UpdateEnvironmentRequest struct {
	Environment *Environment           `protobuf:"1,environment"`
	UpdateMask  *fieldmaskpb.FieldMask `protobuf:"2,update_mask"`
}

type DeleteEnvironmentRequest struct {
	Name string `protobuf:"1,name"`
}

type UndeleteEnvironmentRequest struct {
	Name string `protobuf:"1,name"`
}
