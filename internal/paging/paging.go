// Package paging implements the page_size/page_token contract of the List
// and Search methods.
package paging

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/idot-digital/dbconsole/internal/wire"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 1000
)

var ErrInvalidToken = errors.New("invalid page token")

// token is the decoded form of a page_token.
type token struct {
	Offset int32 `protobuf:"1,offset"`
	Limit  int32 `protobuf:"2,limit"`
}

// Page is the window a request asks for.
type Page struct {
	Offset int
	Limit  int
}

// Parse validates page_size and page_token. A token is only valid together
// with the page size that produced it.
func Parse(pageSize int32, pageToken string) (Page, error) {
	if pageSize < 0 {
		return Page{}, fmt.Errorf("page size must not be negative, got %d", pageSize)
	}
	limit := int(pageSize)
	if limit == 0 {
		limit = DefaultPageSize
	}
	limit = min(limit, MaxPageSize)
	if pageToken == "" {
		return Page{Limit: limit}, nil
	}

	raw, err := base64.RawURLEncoding.DecodeString(pageToken)
	if err != nil {
		return Page{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	var t token
	if err := wire.Unmarshal(raw, &t); err != nil {
		return Page{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if t.Offset < 0 {
		return Page{}, fmt.Errorf("%w: negative offset", ErrInvalidToken)
	}
	if int(t.Limit) != limit {
		return Page{}, fmt.Errorf("%w: page size changed from %d to %d", ErrInvalidToken, t.Limit, limit)
	}
	return Page{Offset: int(t.Offset), Limit: limit}, nil
}

// NextToken returns the token of the page after p, or "" when p reaches
// total.
func (p Page) NextToken(total int) string {
	next := p.Offset + p.Limit
	if next >= total {
		return ""
	}
	raw, err := wire.Marshal(&token{Offset: int32(next), Limit: int32(p.Limit)})
	if err != nil {
		// token only holds two int32 fields.
		panic(err)
	}
	return base64.RawURLEncoding.EncodeToString(raw)
}

// Slice cuts the page out of items and returns it with the next token.
func Slice[T any](items []T, p Page) ([]T, string) {
	if p.Offset >= len(items) {
		return nil, ""
	}
	end := min(p.Offset+p.Limit, len(items))
	return items[p.Offset:end], p.NextToken(len(items))
}
