// Package store persists API resources as wire encoded records.
//
// Every resource kind shares one table keyed by (kind, name). Handlers load
// whole collections and filter or page them in memory, so the Store contract
// stays small enough to have a memory and a SQL implementation.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/idot-digital/dbconsole/internal/wire"
)

var (
	ErrNotFound      = errors.New("store: resource not found")
	ErrAlreadyExists = errors.New("store: resource already exists")
)

type Kind string

const (
	KindEnvironment      Kind = "environment"
	KindInstance         Kind = "instance"
	KindDatabase         Kind = "database"
	KindUser             Kind = "user"
	KindIdentityProvider Kind = "idp"
	KindPolicy           Kind = "policy"
	KindReviewConfig     Kind = "review_config"
	KindRelease          Kind = "release"
	KindVCSProvider      Kind = "vcs_provider"
	KindVCSConnector     Kind = "vcs_connector"
	KindAuditLog         Kind = "audit_log"
	KindAnomaly          Kind = "anomaly"
	// KindBootstrap holds one-off workspace markers.
	KindBootstrap Kind = "bootstrap"
)

// Record is one stored resource. Payload holds the wire encoding of the API
// message.
type Record struct {
	Kind       Kind
	Name       string
	Parent     string
	Deleted    bool
	CreateTime time.Time
	UpdateTime time.Time
	Payload    []byte
}

type ListOptions struct {
	// Only records with this parent. Empty matches every parent.
	Parent      string
	ShowDeleted bool
	// Newest first instead of oldest first.
	Descending bool
}

type Store interface {
	// Create inserts rec, failing with ErrAlreadyExists when the name is taken.
	Create(ctx context.Context, rec *Record) error
	Get(ctx context.Context, kind Kind, name string) (*Record, error)
	// Update replaces Parent, Deleted, UpdateTime and Payload of an existing
	// record.
	Update(ctx context.Context, rec *Record) error
	Delete(ctx context.Context, kind Kind, name string) error
	// List returns records ordered by creation.
	List(ctx context.Context, kind Kind, opts ListOptions) ([]*Record, error)
	Close() error
}

// Insert encodes m and creates a record for it.
func Insert(ctx context.Context, s Store, kind Kind, name, parent string, m any) (*Record, error) {
	payload, err := wire.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode %s %q: %w", kind, name, err)
	}
	now := time.Now().UTC()
	rec := &Record{
		Kind:       kind,
		Name:       name,
		Parent:     parent,
		CreateTime: now,
		UpdateTime: now,
		Payload:    payload,
	}
	if err := s.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Save re-encodes m into rec and writes it back.
func Save(ctx context.Context, s Store, rec *Record, m any) error {
	payload, err := wire.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode %s %q: %w", rec.Kind, rec.Name, err)
	}
	rec.Payload = payload
	rec.UpdateTime = time.Now().UTC()
	return s.Update(ctx, rec)
}

// Load fetches a record and decodes its payload into a new T.
func Load[T any](ctx context.Context, s Store, kind Kind, name string) (*T, *Record, error) {
	rec, err := s.Get(ctx, kind, name)
	if err != nil {
		return nil, nil, err
	}
	m := new(T)
	if err := wire.Unmarshal(rec.Payload, m); err != nil {
		return nil, nil, fmt.Errorf("decode %s %q: %w", kind, name, err)
	}
	return m, rec, nil
}

// LoadAll lists records of a kind and decodes them. The records are returned
// alongside the messages, index for index.
func LoadAll[T any](ctx context.Context, s Store, kind Kind, opts ListOptions) ([]*T, []*Record, error) {
	recs, err := s.List(ctx, kind, opts)
	if err != nil {
		return nil, nil, err
	}
	out := make([]*T, 0, len(recs))
	for _, rec := range recs {
		m := new(T)
		if err := wire.Unmarshal(rec.Payload, m); err != nil {
			return nil, nil, fmt.Errorf("decode %s %q: %w", kind, rec.Name, err)
		}
		out = append(out, m)
	}
	return out, recs, nil
}
