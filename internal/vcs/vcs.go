// Package vcs talks to the REST APIs of version control providers.
package vcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"golang.org/x/oauth2"

	v1pb "github.com/idot-digital/dbconsole/api/v1"
)

var ErrUnsupported = errors.New("VCS provider type is not supported")

const (
	perPage  = 100
	maxPages = 10
)

// Provider is a connected VCS provider.
type Provider interface {
	// SearchRepositories lists the repositories visible to the access token
	// whose path contains query. An empty query lists all of them.
	SearchRepositories(ctx context.Context, query string) ([]*v1pb.VCSRepository, error)
}

// Validate checks a provider before it is stored.
func Validate(p *v1pb.VCSProvider) error {
	if p.Title == "" {
		return errors.New("title is required")
	}
	switch p.Type {
	case v1pb.VCSType_GITHUB, v1pb.VCSType_GITLAB, v1pb.VCSType_BITBUCKET, v1pb.VCSType_AZURE_DEVOPS:
	default:
		return fmt.Errorf("invalid VCS type %s", p.Type)
	}
	u, err := url.Parse(p.Url)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid url %q", p.Url)
	}
	if p.AccessToken == "" {
		return errors.New("access_token is required")
	}
	return nil
}

// New returns a client for p authenticated with its access token.
func New(ctx context.Context, p *v1pb.VCSProvider) (Provider, error) {
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: p.AccessToken}))
	base := strings.TrimSuffix(p.Url, "/")
	switch p.Type {
	case v1pb.VCSType_GITHUB:
		api := base + "/api/v3"
		if base == "https://github.com" {
			api = "https://api.github.com"
		}
		return &github{client: client, api: api}, nil
	case v1pb.VCSType_GITLAB:
		return &gitlab{client: client, api: base + "/api/v4"}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, p.Type)
}

type github struct {
	client *http.Client
	api    string
}

type githubRepository struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	HTMLURL  string `json:"html_url"`
}

func (g *github) SearchRepositories(ctx context.Context, query string) ([]*v1pb.VCSRepository, error) {
	var out []*v1pb.VCSRepository
	for page := 1; page <= maxPages; page++ {
		var repos []githubRepository
		u := fmt.Sprintf("%s/user/repos?per_page=%d&page=%d", g.api, perPage, page)
		if err := getJSON(ctx, g.client, u, &repos); err != nil {
			return nil, err
		}
		for _, r := range repos {
			if !matches(r.FullName, query) {
				continue
			}
			out = append(out, &v1pb.VCSRepository{
				Id:       strconv.FormatInt(r.ID, 10),
				Title:    r.Name,
				FullPath: r.FullName,
				WebUrl:   r.HTMLURL,
			})
		}
		if len(repos) < perPage {
			break
		}
	}
	return out, nil
}

type gitlab struct {
	client *http.Client
	api    string
}

type gitlabProject struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	PathWithNamespace string `json:"path_with_namespace"`
	WebURL            string `json:"web_url"`
}

func (g *gitlab) SearchRepositories(ctx context.Context, query string) ([]*v1pb.VCSRepository, error) {
	var out []*v1pb.VCSRepository
	for page := 1; page <= maxPages; page++ {
		params := url.Values{}
		params.Set("membership", "true")
		params.Set("simple", "true")
		params.Set("per_page", strconv.Itoa(perPage))
		params.Set("page", strconv.Itoa(page))
		if query != "" {
			params.Set("search", query)
		}
		var projects []gitlabProject
		if err := getJSON(ctx, g.client, g.api+"/projects?"+params.Encode(), &projects); err != nil {
			return nil, err
		}
		for _, p := range projects {
			out = append(out, &v1pb.VCSRepository{
				Id:       strconv.FormatInt(p.ID, 10),
				Title:    p.Name,
				FullPath: p.PathWithNamespace,
				WebUrl:   p.WebURL,
			})
		}
		if len(projects) < perPage {
			break
		}
	}
	return out, nil
}

func matches(path, query string) bool {
	return query == "" || strings.Contains(strings.ToLower(path), strings.ToLower(query))
}

func getJSON(ctx context.Context, client *http.Client, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", u, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s returned %s", u, resp.Status)
	}
	return json.Unmarshal(body, out)
}
