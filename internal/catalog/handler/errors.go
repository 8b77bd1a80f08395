package handler

import (
	"errors"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/fekuna/omnipos-pricing-service/internal/catalog"
	"github.com/fekuna/omnipos-pricing-service/internal/tenant"
)

func httpStatus(err error) int {
	switch {
	case errors.Is(err, catalog.ErrItemNotFound), errors.Is(err, tenant.ErrUnknownTenant):
		return http.StatusNotFound
	case errors.Is(err, catalog.ErrInvalidKind), errors.Is(err, catalog.ErrInvalidCategory):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func grpcError(err error) error {
	switch {
	case errors.Is(err, catalog.ErrItemNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, tenant.ErrUnknownTenant):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, catalog.ErrInvalidKind), errors.Is(err, catalog.ErrInvalidCategory):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
