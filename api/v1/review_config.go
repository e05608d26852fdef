package v1

import (
	"google.golang.org/protobuf/types/known/fieldmaskpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// ReviewConfig is a named set of SQL review rules that can be attached to
// environments and projects.
type ReviewConfig struct {
	// Format: reviewConfigs/{review_config}
	Name    string `protobuf:"1,name"`
	Title   string `protobuf:"2,title"`
	Enabled bool   `protobuf:"3,enabled"`
	// Format: users/{email}
	Creator    string                 `protobuf:"4,creator"`
	CreateTime *timestamppb.Timestamp `protobuf:"5,create_time"`
	UpdateTime *timestamppb.Timestamp `protobuf:"6,update_time"`
	Rules      []*SQLReviewRule       `protobuf:"7,rules"`
	// Attached resources: environments/{e} or projects/{p}.
	Resources []string `protobuf:"8,resources"`
}

type CreateReviewConfigRequest struct {
	ReviewConfig *ReviewConfig `protobuf:"1,review_config"`
}

type ListReviewConfigsRequest struct {
	PageSize  int32  `protobuf:"1,page_size"`
	PageToken string `protobuf:"2,page_token"`
}

type ListReviewConfigsResponse struct {
	ReviewConfigs []*ReviewConfig `protobuf:"1,review_configs"`
	NextPageToken string          `protobuf:"2,next_page_token"`
}

type GetReviewConfigRequest struct {
	Name string `protobuf:"1,name"`
}

type UpdateReviewConfigRequest struct {
	ReviewConfig *ReviewConfig          `protobuf:"1,review_config"`
	UpdateMask   *fieldmaskpb.FieldMask `protobuf:"2,update_mask"`
	AllowMissing bool                   `protobuf:"3,allow_missing"`
}

type DeleteReviewConfigRequest struct {
	Name string `protobuf:"1,name"`
}
