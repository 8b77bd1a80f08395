// Package tenant carries the brand/location a request is served for.
//
// The tenant lives on the request's context.Context and nowhere else; there is
// no package-level current tenant.
package tenant

import (
	"context"
	"errors"
)

var (
	// ErrContextMissing is returned when tenant-scoped code runs on a context
	// that never had a tenant established. Callers must fail the request.
	ErrContextMissing = errors.New("tenant context missing")

	// ErrUnknownTenant is returned when the inbound host or headers name no
	// active brand/location.
	ErrUnknownTenant = errors.New("unknown tenant")
)

// Tenant is the isolation boundary for catalog and offer data.
type Tenant struct {
	BrandID    string `json:"brandId"`
	LocationID string `json:"locationId"`
}

func (t Tenant) valid() bool {
	return t.BrandID != "" && t.LocationID != ""
}

type ctxKey struct{}

// WithTenant returns a child of ctx carrying t.
func WithTenant(ctx context.Context, t Tenant) context.Context {
	return context.WithValue(ctx, ctxKey{}, t)
}

// FromContext returns the tenant established on ctx.
func FromContext(ctx context.Context) (Tenant, error) {
	t, ok := ctx.Value(ctxKey{}).(Tenant)
	if !ok || !t.valid() {
		return Tenant{}, ErrContextMissing
	}
	return t, nil
}

// Run calls fn with a context carrying t. Anything fn calls with that context
// sees t; nothing outside does.
func Run(ctx context.Context, t Tenant, fn func(ctx context.Context) error) error {
	return fn(WithTenant(ctx, t))
}
