package handlers

import (
	"context"
	"sort"
	"strings"

	v1pb "github.com/idot-digital/dbconsole/api/v1"
	"github.com/idot-digital/dbconsole/internal/auth"
	"github.com/idot-digital/dbconsole/internal/export"
	"github.com/idot-digital/dbconsole/internal/models"
	"github.com/idot-digital/dbconsole/internal/paging"
	"github.com/idot-digital/dbconsole/internal/store"
)

// parseOrderBy accepts "create_time", optionally followed by asc or desc.
// Logs are newest first by default.
func parseOrderBy(orderBy string) (bool, error) {
	fields := strings.Fields(orderBy)
	switch {
	case len(fields) == 0:
		return true, nil
	case fields[0] != "create_time" || len(fields) > 2:
		return false, invalidArgument("Invalid order_by %q, only create_time is supported", orderBy)
	case len(fields) == 1:
		return true, nil
	}
	switch strings.ToLower(fields[1]) {
	case "desc":
		return true, nil
	case "asc":
		return false, nil
	}
	return false, invalidArgument("Invalid order_by %q, direction must be asc or desc", orderBy)
}

// searchAuditLogs returns one page of the logs of parent. Workspace wide
// searches need admin or DBA.
func (h *GRPCHandlers) searchAuditLogs(ctx context.Context, parent, filterExpr, orderBy string, pageSize int32, pageToken string) ([]*v1pb.AuditLog, string, error) {
	if parent == "" {
		if _, err := requireWorkspaceWrite(ctx); err != nil {
			return nil, "", err
		}
	} else {
		if _, err := models.ProjectID(parent); err != nil {
			return nil, "", invalidArgument("%v", err)
		}
		if _, err := requireSignedIn(ctx); err != nil {
			return nil, "", err
		}
	}
	desc, err := parseOrderBy(orderBy)
	if err != nil {
		return nil, "", err
	}
	page, err := parsePage(pageSize, pageToken)
	if err != nil {
		return nil, "", err
	}
	expr, err := parseFilter(filterExpr, &v1pb.AuditLog{})
	if err != nil {
		return nil, "", err
	}
	logs, _, err := store.LoadAll[v1pb.AuditLog](ctx, h.store(), store.KindAuditLog, store.ListOptions{Parent: parent})
	if err != nil {
		return nil, "", h.storeError(err, "audit logs")
	}
	if logs, err = matching(expr, logs); err != nil {
		return nil, "", err
	}
	sort.SliceStable(logs, func(i, j int) bool {
		a, b := logs[i].CreateTime.AsTime(), logs[j].CreateTime.AsTime()
		if desc {
			return a.After(b)
		}
		return a.Before(b)
	})
	logs, next := paging.Slice(logs, page)
	return logs, next, nil
}

func (h *GRPCHandlers) SearchAuditLogs(ctx context.Context, req *v1pb.SearchAuditLogsRequest) (*v1pb.SearchAuditLogsResponse, error) {
	logs, next, err := h.searchAuditLogs(ctx, req.Parent, req.Filter, req.OrderBy, req.PageSize, req.PageToken)
	if err != nil {
		return nil, err
	}
	return &v1pb.SearchAuditLogsResponse{AuditLogs: logs, NextPageToken: next}, nil
}

// ExportAuditLogs encodes one page of search results as a file.
func (h *GRPCHandlers) ExportAuditLogs(ctx context.Context, req *v1pb.ExportAuditLogsRequest) (*v1pb.ExportAuditLogsResponse, error) {
	if req.Format == v1pb.ExportFormat_FORMAT_UNSPECIFIED {
		return nil, invalidArgument("format is required")
	}
	logs, next, err := h.searchAuditLogs(ctx, req.Parent, req.Filter, req.OrderBy, req.PageSize, req.PageToken)
	if err != nil {
		return nil, err
	}
	content, err := export.AuditLogs(req.Format, logs)
	if err != nil {
		return nil, invalidArgument("%v", err)
	}
	return &v1pb.ExportAuditLogsResponse{Content: content, NextPageToken: next}, nil
}

// SearchAnomalies lists open anomalies. For a project only the anomalies of
// its databases are returned.
func (h *GRPCHandlers) SearchAnomalies(ctx context.Context, req *v1pb.SearchAnomaliesRequest) (*v1pb.SearchAnomaliesResponse, error) {
	if _, err := requireRole(ctx, auth.RoleWorkspaceAdmin, auth.RoleWorkspaceDBA, auth.RoleWorkspaceMember); err != nil {
		return nil, err
	}
	page, err := parsePage(req.PageSize, req.PageToken)
	if err != nil {
		return nil, err
	}
	expr, err := parseFilter(req.Filter, &v1pb.Anomaly{})
	if err != nil {
		return nil, err
	}
	anomalies, _, err := store.LoadAll[v1pb.Anomaly](ctx, h.store(), store.KindAnomaly, store.ListOptions{})
	if err != nil {
		return nil, h.storeError(err, "anomalies")
	}
	if req.Parent != "" {
		dbs, err := h.databasesOf(ctx, req.Parent)
		if err != nil {
			return nil, err
		}
		inProject := make(map[string]bool, len(dbs))
		for _, db := range dbs {
			inProject[db.Name] = true
		}
		kept := anomalies[:0]
		for _, a := range anomalies {
			if inProject[a.Resource] {
				kept = append(kept, a)
			}
		}
		anomalies = kept
	}
	if anomalies, err = matching(expr, anomalies); err != nil {
		return nil, err
	}
	anomalies, next := paging.Slice(anomalies, page)
	return &v1pb.SearchAnomaliesResponse{Anomalies: anomalies, NextPageToken: next}, nil
}
