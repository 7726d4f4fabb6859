// Package images stores plant photos and resolves stored references to
// URLs a client can fetch.
package images

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/plantvision/internal/datauri"
	"github.com/dmitrijs2005/plantvision/internal/server/provider"
)

// Store persists photos. Put returns the reference saved on the record;
// URL turns such a reference into something fetchable.
type Store interface {
	Put(ctx context.Context, ownerID string, img provider.Image) (string, error)
	URL(ctx context.Context, ref string) (string, error)
}

// InlineStore keeps the photo inside the reference itself as a data URI.
// Used when no bucket is configured.
type InlineStore struct{}

func NewInlineStore() *InlineStore {
	return &InlineStore{}
}

func (InlineStore) Put(_ context.Context, _ string, img provider.Image) (string, error) {
	return datauri.Encode(img.MIMEType, img.Data), nil
}

func (InlineStore) URL(_ context.Context, ref string) (string, error) {
	return ref, nil
}

// isObjectRef reports whether ref points into object storage.
func isObjectRef(ref string) bool {
	return strings.HasPrefix(ref, s3Scheme)
}
