// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: picker.proto

package picker

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
	PickerService_Pick_FullMethodName         = "/picker.PickerService/Pick"
	PickerService_GetContext_FullMethodName   = "/picker.PickerService/GetContext"
	PickerService_ResetContext_FullMethodName = "/picker.PickerService/ResetContext"
)

// PickerServiceClient is the client API for PickerService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// PickerService drives named selection contexts. One context holds the
// persistent pick state (previous index, shuffle bag) for one rotation.
type PickerServiceClient interface {
	Pick(ctx context.Context, in *PickRequest, opts ...grpc.CallOption) (*PickResponse, error)
	GetContext(ctx context.Context, in *GetContextRequest, opts ...grpc.CallOption) (*ContextInfo, error)
	ResetContext(ctx context.Context, in *ResetContextRequest, opts ...grpc.CallOption) (*ResetContextResponse, error)
}

type pickerServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPickerServiceClient(cc grpc.ClientConnInterface) PickerServiceClient {
	return &pickerServiceClient{cc}
}

func (c *pickerServiceClient) Pick(ctx context.Context, in *PickRequest, opts ...grpc.CallOption) (*PickResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PickResponse)
	err := c.cc.Invoke(ctx, PickerService_Pick_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pickerServiceClient) GetContext(ctx context.Context, in *GetContextRequest, opts ...grpc.CallOption) (*ContextInfo, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ContextInfo)
	err := c.cc.Invoke(ctx, PickerService_GetContext_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pickerServiceClient) ResetContext(ctx context.Context, in *ResetContextRequest, opts ...grpc.CallOption) (*ResetContextResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ResetContextResponse)
	err := c.cc.Invoke(ctx, PickerService_ResetContext_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PickerServiceServer is the server API for PickerService service.
// All implementations must embed UnimplementedPickerServiceServer
// for forward compatibility.
//
// PickerService drives named selection contexts. One context holds the
// persistent pick state (previous index, shuffle bag) for one rotation.
type PickerServiceServer interface {
	Pick(context.Context, *PickRequest) (*PickResponse, error)
	GetContext(context.Context, *GetContextRequest) (*ContextInfo, error)
	ResetContext(context.Context, *ResetContextRequest) (*ResetContextResponse, error)
	mustEmbedUnimplementedPickerServiceServer()
}

// UnimplementedPickerServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedPickerServiceServer struct{}

func (UnimplementedPickerServiceServer) Pick(context.Context, *PickRequest) (*PickResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Pick not implemented")
}
func (UnimplementedPickerServiceServer) GetContext(context.Context, *GetContextRequest) (*ContextInfo, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetContext not implemented")
}
func (UnimplementedPickerServiceServer) ResetContext(context.Context, *ResetContextRequest) (*ResetContextResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ResetContext not implemented")
}
func (UnimplementedPickerServiceServer) mustEmbedUnimplementedPickerServiceServer() {}
func (UnimplementedPickerServiceServer) testEmbeddedByValue()                       {}

// UnsafePickerServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to PickerServiceServer will
// result in compilation errors.
type UnsafePickerServiceServer interface {
	mustEmbedUnimplementedPickerServiceServer()
}

func RegisterPickerServiceServer(s grpc.ServiceRegistrar, srv PickerServiceServer) {
	// If the following call pancis, it indicates UnimplementedPickerServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&PickerService_ServiceDesc, srv)
}

func _PickerService_Pick_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PickRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PickerServiceServer).Pick(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PickerService_Pick_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PickerServiceServer).Pick(ctx, req.(*PickRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PickerService_GetContext_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetContextRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PickerServiceServer).GetContext(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PickerService_GetContext_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PickerServiceServer).GetContext(ctx, req.(*GetContextRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PickerService_ResetContext_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResetContextRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PickerServiceServer).ResetContext(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PickerService_ResetContext_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PickerServiceServer).ResetContext(ctx, req.(*ResetContextRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// PickerService_ServiceDesc is the grpc.ServiceDesc for PickerService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var PickerService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "picker.PickerService",
	HandlerType: (*PickerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Pick",
			Handler:    _PickerService_Pick_Handler,
		},
		{
			MethodName: "GetContext",
			Handler:    _PickerService_GetContext_Handler,
		},
		{
			MethodName: "ResetContext",
			Handler:    _PickerService_ResetContext_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "picker.proto",
}
