// Package requestid generates and propagates per-request correlation ids.
package requestid

import (
	"context"

	"github.com/oklog/ulid/v2"
)

// Header carries the id on both inbound and upstream requests.
const Header = "X-Request-ID"

// New returns a fresh ULID request id.
func New() string {
	return ulid.Make().String()
}

type ctxKey struct{}

func NewContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func FromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}
