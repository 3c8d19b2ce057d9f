// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: marketplace/v1/marketplace.proto

package marketplacev1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	MarketplaceService_SearchListings_FullMethodName     = "/marketplace.v1.MarketplaceService/SearchListings"
	MarketplaceService_GetListing_FullMethodName         = "/marketplace.v1.MarketplaceService/GetListing"
	MarketplaceService_CreateListing_FullMethodName      = "/marketplace.v1.MarketplaceService/CreateListing"
	MarketplaceService_UpdateListing_FullMethodName      = "/marketplace.v1.MarketplaceService/UpdateListing"
	MarketplaceService_SetListingStatus_FullMethodName   = "/marketplace.v1.MarketplaceService/SetListingStatus"
	MarketplaceService_RecordView_FullMethodName         = "/marketplace.v1.MarketplaceService/RecordView"
	MarketplaceService_BulkCreateListings_FullMethodName = "/marketplace.v1.MarketplaceService/BulkCreateListings"
	MarketplaceService_Checkout_FullMethodName           = "/marketplace.v1.MarketplaceService/Checkout"
	MarketplaceService_SendMessage_FullMethodName        = "/marketplace.v1.MarketplaceService/SendMessage"
	MarketplaceService_SuggestPrice_FullMethodName       = "/marketplace.v1.MarketplaceService/SuggestPrice"
	MarketplaceService_CreateWanted_FullMethodName       = "/marketplace.v1.MarketplaceService/CreateWanted"
	MarketplaceService_ListWanted_FullMethodName         = "/marketplace.v1.MarketplaceService/ListWanted"
)

// MarketplaceServiceClient is the client API for MarketplaceService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// MarketplaceService is the consumer-to-consumer collectibles marketplace API.
type MarketplaceServiceClient interface {
	// Listing search with role-gated visibility, cursor pagination and an
	// optional first-page total count.
	SearchListings(ctx context.Context, in *SearchListingsRequest, opts ...grpc.CallOption) (*SearchListingsReply, error)
	GetListing(ctx context.Context, in *GetListingRequest, opts ...grpc.CallOption) (*GetListingReply, error)
	CreateListing(ctx context.Context, in *CreateListingRequest, opts ...grpc.CallOption) (*CreateListingReply, error)
	UpdateListing(ctx context.Context, in *UpdateListingRequest, opts ...grpc.CallOption) (*UpdateListingReply, error)
	SetListingStatus(ctx context.Context, in *SetListingStatusRequest, opts ...grpc.CallOption) (*SetListingStatusReply, error)
	RecordView(ctx context.Context, in *RecordViewRequest, opts ...grpc.CallOption) (*RecordViewReply, error)
	BulkCreateListings(ctx context.Context, in *BulkCreateListingsRequest, opts ...grpc.CallOption) (*BulkCreateListingsReply, error)
	Checkout(ctx context.Context, in *CheckoutRequest, opts ...grpc.CallOption) (*CheckoutReply, error)
	SendMessage(ctx context.Context, in *SendMessageRequest, opts ...grpc.CallOption) (*SendMessageReply, error)
	SuggestPrice(ctx context.Context, in *SuggestPriceRequest, opts ...grpc.CallOption) (*SuggestPriceReply, error)
	CreateWanted(ctx context.Context, in *CreateWantedRequest, opts ...grpc.CallOption) (*CreateWantedReply, error)
	ListWanted(ctx context.Context, in *ListWantedRequest, opts ...grpc.CallOption) (*ListWantedReply, error)
}

type marketplaceServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMarketplaceServiceClient(cc grpc.ClientConnInterface) MarketplaceServiceClient {
	return &marketplaceServiceClient{cc}
}

func (c *marketplaceServiceClient) SearchListings(ctx context.Context, in *SearchListingsRequest, opts ...grpc.CallOption) (*SearchListingsReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SearchListingsReply)
	err := c.cc.Invoke(ctx, MarketplaceService_SearchListings_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *marketplaceServiceClient) GetListing(ctx context.Context, in *GetListingRequest, opts ...grpc.CallOption) (*GetListingReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetListingReply)
	err := c.cc.Invoke(ctx, MarketplaceService_GetListing_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *marketplaceServiceClient) CreateListing(ctx context.Context, in *CreateListingRequest, opts ...grpc.CallOption) (*CreateListingReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateListingReply)
	err := c.cc.Invoke(ctx, MarketplaceService_CreateListing_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *marketplaceServiceClient) UpdateListing(ctx context.Context, in *UpdateListingRequest, opts ...grpc.CallOption) (*UpdateListingReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateListingReply)
	err := c.cc.Invoke(ctx, MarketplaceService_UpdateListing_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *marketplaceServiceClient) SetListingStatus(ctx context.Context, in *SetListingStatusRequest, opts ...grpc.CallOption) (*SetListingStatusReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SetListingStatusReply)
	err := c.cc.Invoke(ctx, MarketplaceService_SetListingStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *marketplaceServiceClient) RecordView(ctx context.Context, in *RecordViewRequest, opts ...grpc.CallOption) (*RecordViewReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RecordViewReply)
	err := c.cc.Invoke(ctx, MarketplaceService_RecordView_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *marketplaceServiceClient) BulkCreateListings(ctx context.Context, in *BulkCreateListingsRequest, opts ...grpc.CallOption) (*BulkCreateListingsReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(BulkCreateListingsReply)
	err := c.cc.Invoke(ctx, MarketplaceService_BulkCreateListings_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *marketplaceServiceClient) Checkout(ctx context.Context, in *CheckoutRequest, opts ...grpc.CallOption) (*CheckoutReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CheckoutReply)
	err := c.cc.Invoke(ctx, MarketplaceService_Checkout_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *marketplaceServiceClient) SendMessage(ctx context.Context, in *SendMessageRequest, opts ...grpc.CallOption) (*SendMessageReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SendMessageReply)
	err := c.cc.Invoke(ctx, MarketplaceService_SendMessage_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *marketplaceServiceClient) SuggestPrice(ctx context.Context, in *SuggestPriceRequest, opts ...grpc.CallOption) (*SuggestPriceReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SuggestPriceReply)
	err := c.cc.Invoke(ctx, MarketplaceService_SuggestPrice_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *marketplaceServiceClient) CreateWanted(ctx context.Context, in *CreateWantedRequest, opts ...grpc.CallOption) (*CreateWantedReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateWantedReply)
	err := c.cc.Invoke(ctx, MarketplaceService_CreateWanted_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *marketplaceServiceClient) ListWanted(ctx context.Context, in *ListWantedRequest, opts ...grpc.CallOption) (*ListWantedReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListWantedReply)
	err := c.cc.Invoke(ctx, MarketplaceService_ListWanted_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MarketplaceServiceServer is the server API for MarketplaceService service.
// All implementations must embed UnimplementedMarketplaceServiceServer
// for forward compatibility.
//
// MarketplaceService is the consumer-to-consumer collectibles marketplace API.
type MarketplaceServiceServer interface {
	// Listing search with role-gated visibility, cursor pagination and an
	// optional first-page total count.
	SearchListings(context.Context, *SearchListingsRequest) (*SearchListingsReply, error)
	GetListing(context.Context, *GetListingRequest) (*GetListingReply, error)
	CreateListing(context.Context, *CreateListingRequest) (*CreateListingReply, error)
	UpdateListing(context.Context, *UpdateListingRequest) (*UpdateListingReply, error)
	SetListingStatus(context.Context, *SetListingStatusRequest) (*SetListingStatusReply, error)
	RecordView(context.Context, *RecordViewRequest) (*RecordViewReply, error)
	BulkCreateListings(context.Context, *BulkCreateListingsRequest) (*BulkCreateListingsReply, error)
	Checkout(context.Context, *CheckoutRequest) (*CheckoutReply, error)
	SendMessage(context.Context, *SendMessageRequest) (*SendMessageReply, error)
	SuggestPrice(context.Context, *SuggestPriceRequest) (*SuggestPriceReply, error)
	CreateWanted(context.Context, *CreateWantedRequest) (*CreateWantedReply, error)
	ListWanted(context.Context, *ListWantedRequest) (*ListWantedReply, error)
	mustEmbedUnimplementedMarketplaceServiceServer()
}

// UnimplementedMarketplaceServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedMarketplaceServiceServer struct{}

func (UnimplementedMarketplaceServiceServer) SearchListings(context.Context, *SearchListingsRequest) (*SearchListingsReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SearchListings not implemented")
}
func (UnimplementedMarketplaceServiceServer) GetListing(context.Context, *GetListingRequest) (*GetListingReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetListing not implemented")
}
func (UnimplementedMarketplaceServiceServer) CreateListing(context.Context, *CreateListingRequest) (*CreateListingReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateListing not implemented")
}
func (UnimplementedMarketplaceServiceServer) UpdateListing(context.Context, *UpdateListingRequest) (*UpdateListingReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateListing not implemented")
}
func (UnimplementedMarketplaceServiceServer) SetListingStatus(context.Context, *SetListingStatusRequest) (*SetListingStatusReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetListingStatus not implemented")
}
func (UnimplementedMarketplaceServiceServer) RecordView(context.Context, *RecordViewRequest) (*RecordViewReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RecordView not implemented")
}
func (UnimplementedMarketplaceServiceServer) BulkCreateListings(context.Context, *BulkCreateListingsRequest) (*BulkCreateListingsReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method BulkCreateListings not implemented")
}
func (UnimplementedMarketplaceServiceServer) Checkout(context.Context, *CheckoutRequest) (*CheckoutReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Checkout not implemented")
}
func (UnimplementedMarketplaceServiceServer) SendMessage(context.Context, *SendMessageRequest) (*SendMessageReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SendMessage not implemented")
}
func (UnimplementedMarketplaceServiceServer) SuggestPrice(context.Context, *SuggestPriceRequest) (*SuggestPriceReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SuggestPrice not implemented")
}
func (UnimplementedMarketplaceServiceServer) CreateWanted(context.Context, *CreateWantedRequest) (*CreateWantedReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateWanted not implemented")
}
func (UnimplementedMarketplaceServiceServer) ListWanted(context.Context, *ListWantedRequest) (*ListWantedReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListWanted not implemented")
}
func (UnimplementedMarketplaceServiceServer) mustEmbedUnimplementedMarketplaceServiceServer() {}
func (UnimplementedMarketplaceServiceServer) testEmbeddedByValue()                            {}

// UnsafeMarketplaceServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to MarketplaceServiceServer will
// result in compilation errors.
type UnsafeMarketplaceServiceServer interface {
	mustEmbedUnimplementedMarketplaceServiceServer()
}

func RegisterMarketplaceServiceServer(s grpc.ServiceRegistrar, srv MarketplaceServiceServer) {
	// If the following call pancis, it indicates UnimplementedMarketplaceServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&MarketplaceService_ServiceDesc, srv)
}

func _MarketplaceService_SearchListings_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SearchListingsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketplaceServiceServer).SearchListings(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MarketplaceService_SearchListings_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MarketplaceServiceServer).SearchListings(ctx, req.(*SearchListingsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MarketplaceService_GetListing_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetListingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketplaceServiceServer).GetListing(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MarketplaceService_GetListing_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MarketplaceServiceServer).GetListing(ctx, req.(*GetListingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MarketplaceService_CreateListing_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateListingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketplaceServiceServer).CreateListing(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MarketplaceService_CreateListing_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MarketplaceServiceServer).CreateListing(ctx, req.(*CreateListingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MarketplaceService_UpdateListing_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateListingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketplaceServiceServer).UpdateListing(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MarketplaceService_UpdateListing_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MarketplaceServiceServer).UpdateListing(ctx, req.(*UpdateListingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MarketplaceService_SetListingStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetListingStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketplaceServiceServer).SetListingStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MarketplaceService_SetListingStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MarketplaceServiceServer).SetListingStatus(ctx, req.(*SetListingStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MarketplaceService_RecordView_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RecordViewRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketplaceServiceServer).RecordView(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MarketplaceService_RecordView_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MarketplaceServiceServer).RecordView(ctx, req.(*RecordViewRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MarketplaceService_BulkCreateListings_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BulkCreateListingsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketplaceServiceServer).BulkCreateListings(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MarketplaceService_BulkCreateListings_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MarketplaceServiceServer).BulkCreateListings(ctx, req.(*BulkCreateListingsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MarketplaceService_Checkout_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CheckoutRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketplaceServiceServer).Checkout(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MarketplaceService_Checkout_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MarketplaceServiceServer).Checkout(ctx, req.(*CheckoutRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MarketplaceService_SendMessage_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SendMessageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketplaceServiceServer).SendMessage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MarketplaceService_SendMessage_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MarketplaceServiceServer).SendMessage(ctx, req.(*SendMessageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MarketplaceService_SuggestPrice_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SuggestPriceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketplaceServiceServer).SuggestPrice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MarketplaceService_SuggestPrice_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MarketplaceServiceServer).SuggestPrice(ctx, req.(*SuggestPriceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MarketplaceService_CreateWanted_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateWantedRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketplaceServiceServer).CreateWanted(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MarketplaceService_CreateWanted_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MarketplaceServiceServer).CreateWanted(ctx, req.(*CreateWantedRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MarketplaceService_ListWanted_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListWantedRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketplaceServiceServer).ListWanted(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MarketplaceService_ListWanted_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MarketplaceServiceServer).ListWanted(ctx, req.(*ListWantedRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// MarketplaceService_ServiceDesc is the grpc.ServiceDesc for MarketplaceService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var MarketplaceService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "marketplace.v1.MarketplaceService",
	HandlerType: (*MarketplaceServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SearchListings",
			Handler:    _MarketplaceService_SearchListings_Handler,
		},
		{
			MethodName: "GetListing",
			Handler:    _MarketplaceService_GetListing_Handler,
		},
		{
			MethodName: "CreateListing",
			Handler:    _MarketplaceService_CreateListing_Handler,
		},
		{
			MethodName: "UpdateListing",
			Handler:    _MarketplaceService_UpdateListing_Handler,
		},
		{
			MethodName: "SetListingStatus",
			Handler:    _MarketplaceService_SetListingStatus_Handler,
		},
		{
			MethodName: "RecordView",
			Handler:    _MarketplaceService_RecordView_Handler,
		},
		{
			MethodName: "BulkCreateListings",
			Handler:    _MarketplaceService_BulkCreateListings_Handler,
		},
		{
			MethodName: "Checkout",
			Handler:    _MarketplaceService_Checkout_Handler,
		},
		{
			MethodName: "SendMessage",
			Handler:    _MarketplaceService_SendMessage_Handler,
		},
		{
			MethodName: "SuggestPrice",
			Handler:    _MarketplaceService_SuggestPrice_Handler,
		},
		{
			MethodName: "CreateWanted",
			Handler:    _MarketplaceService_CreateWanted_Handler,
		},
		{
			MethodName: "ListWanted",
			Handler:    _MarketplaceService_ListWanted_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "marketplace/v1/marketplace.proto",
}
