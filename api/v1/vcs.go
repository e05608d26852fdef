package v1

import (
	"google.golang.org/protobuf/types/known/fieldmaskpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type VCSProvider struct {
	// Format: vcsProviders/{vcs_provider}
	Name  string  `protobuf:"1,name"`
	Title string  `protobuf:"2,title"`
	Type  VCSType `protobuf:"3,type"`
	// Base URL of the instance, e.g. https://gitlab.example.com.
	Url string `protobuf:"4,url"`
	// Input only. Never returned.
	AccessToken string `protobuf:"5,access_token"`
}

type GetVCSProviderRequest struct {
	Name string `protobuf:"1,name"`
}

type ListVCSProvidersRequest struct {
	PageSize  int32  `protobuf:"1,page_size"`
	PageToken string `protobuf:"2,page_token"`
}

type ListVCSProvidersResponse struct {
	VcsProviders  []*VCSProvider `protobuf:"1,vcs_providers"`
	NextPageToken string         `protobuf:"2,next_page_token"`
}

type CreateVCSProviderRequest struct {
	VcsProvider   *VCSProvider `protobuf:"1,vcs_provider"`
	VcsProviderId string       `protobuf:"2,vcs_provider_id"`
}

type UpdateVCSProviderRequest struct {
	VcsProvider *VCSProvider           `protobuf:"1,vcs_provider"`
	UpdateMask  *fieldmaskpb.FieldMask `protobuf:"2,update_mask"`
}

type DeleteVCSProviderRequest struct {
	Name string `protobuf:"1,name"`
}

type SearchVCSProviderRepositoriesRequest struct {
	Name string `protobuf:"1,name"`
	// Substring of the repository's full path.
	Query string `protobuf:"2,query"`
}

type SearchVCSProviderRepositoriesResponse struct {
	Repositories []*VCSRepository `protobuf:"1,repositories"`
}

type VCSRepository struct {
	// Provider specific repository id.
	Id       string `protobuf:"1,id"`
	Title    string `protobuf:"2,title"`
	FullPath string `protobuf:"3,full_path"`
	WebUrl   string `protobuf:"4,web_url"`
}

type ListVCSConnectorsInProviderRequest struct {
	Name string `protobuf:"1,name"`
}

type ListVCSConnectorsInProviderResponse struct {
	VcsConnectors []*VCSConnector `protobuf:"1,vcs_connectors"`
}

type VCSConnector struct {
	// Format: projects/{project}/vcsConnectors/{vcs_connector}
	Name  string `protobuf:"1,name"`
	Title string `protobuf:"2,title"`
	// Format: users/{email}
	Creator    string                 `protobuf:"3,creator"`
	Updater    string                 `protobuf:"4,updater"`
	CreateTime *timestamppb.Timestamp `protobuf:"5,create_time"`
	UpdateTime *timestamppb.Timestamp `protobuf:"6,update_time"`
	// Format: vcsProviders/{vcs_provider}
	VcsProvider   string `protobuf:"7,vcs_provider"`
	ExternalId    string `protobuf:"8,external_id"`
	BaseDirectory string `protobuf:"9,base_directory"`
	Branch        string `protobuf:"10,branch"`
	FullPath      string `protobuf:"11,full_path"`
	WebUrl        string `protobuf:"12,web_url"`
}

type CreateVCSConnectorRequest struct {
	Parent         string        `protobuf:"1,parent"`
	VcsConnector   *VCSConnector `protobuf:"2,vcs_connector"`
	VcsConnectorId string        `protobuf:"3,vcs_connector_id"`
}

type GetVCSConnectorRequest struct {
	Name string `protobuf:"1,name"`
}

type ListVCSConnectorsRequest struct {
	Parent    string `protobuf:"1,parent"`
	PageSize  int32  `protobuf:"2,page_size"`
	PageToken string `protobuf:"3,page_token"`
}

type ListVCSConnectorsResponse struct {
	VcsConnectors []*VCSConnector `protobuf:"1,vcs_connectors"`
	NextPageToken string          `protobuf:"2,next_page_token"`
}

type UpdateVCSConnectorRequest struct {
	VcsConnector *VCSConnector          `protobuf:"1,vcs_connector"`
	UpdateMask   *fieldmaskpb.FieldMask `protobuf:"2,update_mask"`
}

type DeleteVCSConnectorRequest struct {
	Name string `protobuf:"1,name"`
}
