package v1

import (
	"google.golang.org/protobuf/types/known/fieldmaskpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/idot-digital/dbconsole/internal/wire"
)

type ReleaseFileType int32

const (
	ReleaseFileType_TYPE_UNSPECIFIED ReleaseFileType = 0
	ReleaseFileType_VERSIONED        ReleaseFileType = 1
)

var (
	ReleaseFileType_name = map[int32]string{
		0: "TYPE_UNSPECIFIED",
		1: "VERSIONED",
	}
	ReleaseFileType_value = map[string]int32{
		"TYPE_UNSPECIFIED": 0,
		"VERSIONED":        1,
	}
)

func (x ReleaseFileType) String() string {
	return wire.EnumName(ReleaseFileType_name, int32(x))
}
func (ReleaseFileType) EnumValues() map[string]int32 { return ReleaseFileType_value }

type ReleaseFileChangeType int32

const (
	ReleaseFileChangeType_CHANGE_TYPE_UNSPECIFIED ReleaseFileChangeType = 0
	ReleaseFileChangeType_DDL                     ReleaseFileChangeType = 1
	ReleaseFileChangeType_DDL_GHOST               ReleaseFileChangeType = 2
	ReleaseFileChangeType_DML                     ReleaseFileChangeType = 3
)

var (
	ReleaseFileChangeType_name = map[int32]string{
		0: "CHANGE_TYPE_UNSPECIFIED",
		1: "DDL",
		2: "DDL_GHOST",
		3: "DML",
	}
	ReleaseFileChangeType_value = map[string]int32{
		"CHANGE_TYPE_UNSPECIFIED": 0,
		"DDL":                     1,
		"DDL_GHOST":               2,
		"DML":                     3,
	}
)

func (x ReleaseFileChangeType) String() string {
	return wire.EnumName(ReleaseFileChangeType_name, int32(x))
}
func (ReleaseFileChangeType) EnumValues() map[string]int32 { return ReleaseFileChangeType_value }

type RiskLevel int32

const (
	RiskLevel_RISK_LEVEL_UNSPECIFIED RiskLevel = 0
	RiskLevel_LOW                    RiskLevel = 1
	RiskLevel_MODERATE               RiskLevel = 2
	RiskLevel_HIGH                   RiskLevel = 3
)

var (
	RiskLevel_name = map[int32]string{
		0: "RISK_LEVEL_UNSPECIFIED",
		1: "LOW",
		2: "MODERATE",
		3: "HIGH",
	}
	RiskLevel_value = map[string]int32{
		"RISK_LEVEL_UNSPECIFIED": 0,
		"LOW":                    1,
		"MODERATE":               2,
		"HIGH":                   3,
	}
)

func (x RiskLevel) String() string             { return wire.EnumName(RiskLevel_name, int32(x)) }
func (RiskLevel) EnumValues() map[string]int32 { return RiskLevel_value }

type Advice_Status int32

const (
	Advice_STATUS_UNSPECIFIED Advice_Status = 0
	Advice_SUCCESS            Advice_Status = 1
	Advice_WARNING            Advice_Status = 2
	Advice_ERROR              Advice_Status = 3
)

var (
	Advice_Status_name = map[int32]string{
		0: "STATUS_UNSPECIFIED",
		1: "SUCCESS",
		2: "WARNING",
		3: "ERROR",
	}
	Advice_Status_value = map[string]int32{
		"STATUS_UNSPECIFIED": 0,
		"SUCCESS":            1,
		"WARNING":            2,
		"ERROR":              3,
	}
)

func (x Advice_Status) String() string             { return wire.EnumName(Advice_Status_name, int32(x)) }
func (Advice_Status) EnumValues() map[string]int32 { return Advice_Status_value }

type Release struct {
	// Format: projects/{project}/releases/{release}
	Name      string             `protobuf:"1,name"`
	Title     string             `protobuf:"2,title"`
	Files     []*Release_File    `protobuf:"3,files"`
	VcsSource *Release_VCSSource `protobuf:"4,vcs_source"`
	// Format: users/{email}
	Creator    string                 `protobuf:"5,creator"`
	CreateTime *timestamppb.Timestamp `protobuf:"6,create_time"`
	State      State                  `protobuf:"7,state"`
	// Output only. SHA-256 over the files' versions and statements.
	Digest string `protobuf:"8,digest"`
}

type Release_File struct {
	// Unique within the release.
	Id         string                `protobuf:"1,id"`
	Path       string                `protobuf:"2,path"`
	Type       ReleaseFileType       `protobuf:"3,type"`
	Version    string                `protobuf:"4,version"`
	ChangeType ReleaseFileChangeType `protobuf:"5,change_type"`
	// Input only when creating; output only as StatementSize afterwards.
	Statement     []byte `protobuf:"6,statement"`
	StatementSize int64  `protobuf:"7,statement_size"`
	// Output only. Hex SHA-256 of the statement.
	SheetSha256 string `protobuf:"8,sheet_sha256"`
}

type Release_VCSSource struct {
	VcsType VCSType `protobuf:"1,vcs_type"`
	// Link to the pull request or commit the release was built from.
	Url string `protobuf:"2,url"`
}

type GetReleaseRequest struct {
	Name string `protobuf:"1,name"`
}

type ListReleasesRequest struct {
	// Format: projects/{project}
	Parent      string `protobuf:"1,parent"`
	PageSize    int32  `protobuf:"2,page_size"`
	PageToken   string `protobuf:"3,page_token"`
	ShowDeleted bool   `protobuf:"4,show_deleted"`
}

type ListReleasesResponse struct {
	Releases      []*Release `protobuf:"1,releases"`
	NextPageToken string     `protobuf:"2,next_page_token"`
}

type CreateReleaseRequest struct {
	Parent  string   `protobuf:"1,parent"`
	Release *Release `protobuf:"2,release"`
}

type UpdateReleaseRequest struct {
	Release    *Release               `protobuf:"1,release"`
	UpdateMask *fieldmaskpb.FieldMask `protobuf:"2,update_mask"`
}

type DeleteReleaseRequest struct {
	Name string `protobuf:"1,name"`
}

type UndeleteReleaseRequest struct {
	Name string `protobuf:"1,name"`
}

type CheckReleaseRequest struct {
	// Format: projects/{project}
	Parent  string   `protobuf:"1,parent"`
	Release *Release `protobuf:"2,release"`
	// Databases to check against: instances/{i}/databases/{d}.
	Targets []string `protobuf:"3,targets"`
}

type CheckReleaseResponse struct {
	Results   []*CheckReleaseResponse_CheckResult `protobuf:"1,results"`
	RiskLevel RiskLevel                           `protobuf:"2,risk_level"`
}

type CheckReleaseResponse_CheckResult struct {
	// The file path the result is about.
	File      string    `protobuf:"1,file"`
	Target    string    `protobuf:"2,target"`
	Advices   []*Advice `protobuf:"3,advices"`
	RiskLevel RiskLevel `protobuf:"4,risk_level"`
	// Rows affected as estimated for DML, zero otherwise.
	AffectedRows int64 `protobuf:"5,affected_rows"`
}

type Advice struct {
	Status        Advice_Status `protobuf:"1,status"`
	Code          int32         `protobuf:"2,code"`
	Title         string        `protobuf:"3,title"`
	Content       string        `protobuf:"4,content"`
	StartPosition *Position     `protobuf:"5,start_position"`
}
