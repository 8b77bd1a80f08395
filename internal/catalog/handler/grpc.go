package handler

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/fekuna/omnipos-pricing-service/internal/catalog"
	"github.com/fekuna/omnipos-pricing-service/internal/catalog/dto"
	"github.com/fekuna/omnipos-pricing-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-pricing-service/internal/pricing"
)

const PricingServiceName = "omnipos.pricing.v1.PricingService"

// PricingServiceServer exchanges google.protobuf.Struct messages so callers
// need no generated stubs.
//
// ResolvePrice request: {"kind": "service"|"product", "id": string, "at"?: RFC3339}.
// ListPrices request: {"kind", "categoryId"?, "page"?, "pageSize"?, "at"?}.
type PricingServiceServer interface {
	ResolvePrice(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	ListPrices(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

var PricingServiceDesc = grpc.ServiceDesc{
	ServiceName: PricingServiceName,
	HandlerType: (*PricingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ResolvePrice", Handler: unaryHandler("ResolvePrice", PricingServiceServer.ResolvePrice)},
		{MethodName: "ListPrices", Handler: unaryHandler("ListPrices", PricingServiceServer.ListPrices)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "omnipos/pricing/v1/pricing.proto",
}

func RegisterPricingServiceServer(s grpc.ServiceRegistrar, srv PricingServiceServer) {
	s.RegisterService(&PricingServiceDesc, srv)
}

func unaryHandler(method string, call func(PricingServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)) func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	fullMethod := "/" + PricingServiceName + "/" + method
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(PricingServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(PricingServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

type PricingHandler struct {
	uc     catalog.UseCase
	logger logger.ZapLogger
}

func NewPricingHandler(uc catalog.UseCase, log logger.ZapLogger) *PricingHandler {
	return &PricingHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *PricingHandler) ResolvePrice(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	fields := req.GetFields()

	kind, err := kindField(fields)
	if err != nil {
		return nil, err
	}
	id := fields["id"].GetStringValue()
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}
	at, err := atField(fields)
	if err != nil {
		return nil, err
	}

	view, err := h.uc.GetItem(ctx, kind, id, &dto.PriceQuery{At: at})
	if err != nil {
		return nil, h.fail(err)
	}

	return toStruct(view)
}

func (h *PricingHandler) ListPrices(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	fields := req.GetFields()

	kind, err := kindField(fields)
	if err != nil {
		return nil, err
	}
	at, err := atField(fields)
	if err != nil {
		return nil, err
	}

	filters := &dto.ItemFilters{
		PriceQuery: dto.PriceQuery{At: at},
		CategoryID: fields["categoryId"].GetStringValue(),
		Page:       intField(fields, "page", dto.MaxPage),
		PageSize:   intField(fields, "pageSize", dto.MaxPageSize),
	}

	list, err := h.uc.ListItems(ctx, kind, filters)
	if err != nil {
		return nil, h.fail(err)
	}

	return toStruct(list)
}

func (h *PricingHandler) fail(err error) error {
	st := grpcError(err)
	if status.Code(st) == codes.Internal {
		h.logger.Error("pricing rpc failed", zap.Error(err))
	}
	return st
}

func kindField(fields map[string]*structpb.Value) (pricing.Target, error) {
	switch kind := pricing.Target(fields["kind"].GetStringValue()); kind {
	case pricing.TargetService, pricing.TargetProduct:
		return kind, nil
	}
	return "", status.Error(codes.InvalidArgument, catalog.ErrInvalidKind.Error())
}

func atField(fields map[string]*structpb.Value) (*time.Time, error) {
	at, err := parseAt(fields["at"].GetStringValue())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return at, nil
}

// intField reads a JSON number as an int clamped to [0, max]. Out of range
// floats never reach the int conversion.
func intField(fields map[string]*structpb.Value, name string, max int) int {
	v := fields[name].GetNumberValue()
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= float64(max):
		return max
	}
	return int(v)
}

// toStruct reuses the JSON shape of the HTTP API.
func toStruct(v interface{}) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, status.Error(codes.Internal, "encode response")
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, status.Error(codes.Internal, "encode response")
	}
	out, err := structpb.NewStruct(m)
	if err != nil {
		return nil, status.Error(codes.Internal, "encode response")
	}
	return out, nil
}
