package tenant

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	MetadataBrandID    = "x-brand-id"
	MetadataLocationID = "x-location-id"
)

// UnaryServerInterceptor reads the tenant from incoming metadata and puts it
// on the handler context. Methods with a prefix in skip (health, reflection)
// pass through untouched.
func UnaryServerInterceptor(skip ...string) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		for _, prefix := range skip {
			if strings.HasPrefix(info.FullMethod, prefix) {
				return handler(ctx, req)
			}
		}

		t, err := fromMetadata(ctx)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "missing or invalid tenant metadata")
		}

		return handler(WithTenant(ctx, t), req)
	}
}

func fromMetadata(ctx context.Context) (Tenant, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return Tenant{}, ErrUnknownTenant
	}
	return fromIDs(first(md.Get(MetadataBrandID)), first(md.Get(MetadataLocationID)))
}

func first(vals []string) string {
	if len(vals) == 0 {
		return ""
	}
	return vals[0]
}
