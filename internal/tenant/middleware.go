package tenant

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-pricing-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-pricing-service/internal/pkg/response"
)

const (
	HeaderBrandID    = "X-Brand-ID"
	HeaderLocationID = "X-Location-ID"
)

type MiddlewareConfig struct {
	BaseDomain string
	// TrustHeaders lets internal callers name the tenant with
	// X-Brand-ID/X-Location-ID instead of the host.
	TrustHeaders bool
}

// Middleware establishes the tenant for every request before any handler
// runs. Requests whose tenant cannot be determined never reach next.
func Middleware(resolver Resolver, cfg MiddlewareConfig, log logger.ZapLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t, err := fromRequest(r, resolver, cfg)
			if err != nil {
				switch {
				case errors.Is(err, ErrUnknownTenant):
					response.Error(w, http.StatusNotFound, "unknown tenant")
				default:
					log.Error("failed to resolve tenant", zap.String("host", r.Host), zap.Error(err))
					response.Error(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
				}
				return
			}

			next.ServeHTTP(w, r.WithContext(WithTenant(r.Context(), t)))
		})
	}
}

func fromRequest(r *http.Request, resolver Resolver, cfg MiddlewareConfig) (Tenant, error) {
	if cfg.TrustHeaders {
		brandID := r.Header.Get(HeaderBrandID)
		locationID := r.Header.Get(HeaderLocationID)
		if brandID != "" || locationID != "" {
			return fromIDs(brandID, locationID)
		}
	}

	sub, ok := SubdomainFromHost(r.Host, cfg.BaseDomain)
	if !ok {
		return Tenant{}, ErrUnknownTenant
	}
	return resolver.ResolveSubdomain(r.Context(), sub)
}

// fromIDs validates caller-supplied ids. Both must be UUIDs.
func fromIDs(brandID, locationID string) (Tenant, error) {
	if _, err := uuid.Parse(brandID); err != nil {
		return Tenant{}, ErrUnknownTenant
	}
	if _, err := uuid.Parse(locationID); err != nil {
		return Tenant{}, ErrUnknownTenant
	}
	return Tenant{BrandID: brandID, LocationID: locationID}, nil
}
