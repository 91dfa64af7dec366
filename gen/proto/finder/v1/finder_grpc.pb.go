// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: finder/v1/finder.proto

package finderv1

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
	FinderService_SubmitLookup_FullMethodName  = "/finder.v1.FinderService/SubmitLookup"
	FinderService_GetWorkItem_FullMethodName   = "/finder.v1.FinderService/GetWorkItem"
	FinderService_ListWorkItems_FullMethodName = "/finder.v1.FinderService/ListWorkItems"
)

// FinderServiceClient is the client API for FinderService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// FinderService is the ops surface of the bot: submit a lookup directly and
// inspect work item state. The chat-facing path goes through the webhook.
type FinderServiceClient interface {
	SubmitLookup(ctx context.Context, in *SubmitLookupRequest, opts ...grpc.CallOption) (*SubmitLookupResponse, error)
	GetWorkItem(ctx context.Context, in *GetWorkItemRequest, opts ...grpc.CallOption) (*GetWorkItemResponse, error)
	ListWorkItems(ctx context.Context, in *ListWorkItemsRequest, opts ...grpc.CallOption) (*ListWorkItemsResponse, error)
}

type finderServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewFinderServiceClient(cc grpc.ClientConnInterface) FinderServiceClient {
	return &finderServiceClient{cc}
}

func (c *finderServiceClient) SubmitLookup(ctx context.Context, in *SubmitLookupRequest, opts ...grpc.CallOption) (*SubmitLookupResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitLookupResponse)
	err := c.cc.Invoke(ctx, FinderService_SubmitLookup_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *finderServiceClient) GetWorkItem(ctx context.Context, in *GetWorkItemRequest, opts ...grpc.CallOption) (*GetWorkItemResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetWorkItemResponse)
	err := c.cc.Invoke(ctx, FinderService_GetWorkItem_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *finderServiceClient) ListWorkItems(ctx context.Context, in *ListWorkItemsRequest, opts ...grpc.CallOption) (*ListWorkItemsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListWorkItemsResponse)
	err := c.cc.Invoke(ctx, FinderService_ListWorkItems_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FinderServiceServer is the server API for FinderService service.
// All implementations must embed UnimplementedFinderServiceServer
// for forward compatibility.
//
// FinderService is the ops surface of the bot: submit a lookup directly and
// inspect work item state. The chat-facing path goes through the webhook.
type FinderServiceServer interface {
	SubmitLookup(context.Context, *SubmitLookupRequest) (*SubmitLookupResponse, error)
	GetWorkItem(context.Context, *GetWorkItemRequest) (*GetWorkItemResponse, error)
	ListWorkItems(context.Context, *ListWorkItemsRequest) (*ListWorkItemsResponse, error)
	mustEmbedUnimplementedFinderServiceServer()
}

// UnimplementedFinderServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedFinderServiceServer struct{}

func (UnimplementedFinderServiceServer) SubmitLookup(context.Context, *SubmitLookupRequest) (*SubmitLookupResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitLookup not implemented")
}
func (UnimplementedFinderServiceServer) GetWorkItem(context.Context, *GetWorkItemRequest) (*GetWorkItemResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetWorkItem not implemented")
}
func (UnimplementedFinderServiceServer) ListWorkItems(context.Context, *ListWorkItemsRequest) (*ListWorkItemsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListWorkItems not implemented")
}
func (UnimplementedFinderServiceServer) mustEmbedUnimplementedFinderServiceServer() {}
func (UnimplementedFinderServiceServer) testEmbeddedByValue()                       {}

// UnsafeFinderServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to FinderServiceServer will
// result in compilation errors.
type UnsafeFinderServiceServer interface {
	mustEmbedUnimplementedFinderServiceServer()
}

func RegisterFinderServiceServer(s grpc.ServiceRegistrar, srv FinderServiceServer) {
	// If the following call pancis, it indicates UnimplementedFinderServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&FinderService_ServiceDesc, srv)
}

func _FinderService_SubmitLookup_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitLookupRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FinderServiceServer).SubmitLookup(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FinderService_SubmitLookup_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FinderServiceServer).SubmitLookup(ctx, req.(*SubmitLookupRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FinderService_GetWorkItem_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetWorkItemRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FinderServiceServer).GetWorkItem(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FinderService_GetWorkItem_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FinderServiceServer).GetWorkItem(ctx, req.(*GetWorkItemRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FinderService_ListWorkItems_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListWorkItemsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FinderServiceServer).ListWorkItems(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FinderService_ListWorkItems_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FinderServiceServer).ListWorkItems(ctx, req.(*ListWorkItemsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// FinderService_ServiceDesc is the grpc.ServiceDesc for FinderService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var FinderService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "finder.v1.FinderService",
	HandlerType: (*FinderServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SubmitLookup",
			Handler:    _FinderService_SubmitLookup_Handler,
		},
		{
			MethodName: "GetWorkItem",
			Handler:    _FinderService_GetWorkItem_Handler,
		},
		{
			MethodName: "ListWorkItems",
			Handler:    _FinderService_ListWorkItems_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "finder/v1/finder.proto",
}
