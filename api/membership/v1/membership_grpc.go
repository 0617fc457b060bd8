// gRPC bindings for contractmgmt.membership.v1.MembershipService. Messages travel with the JSON codec.

package membershipv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"contract-mgmt/backend/api/codec"
)

const (
	MembershipService_ListMemberships_FullMethodName          = "/contractmgmt.membership.v1.MembershipService/ListMemberships"
	MembershipService_SwitchActiveOrganization_FullMethodName = "/contractmgmt.membership.v1.MembershipService/SwitchActiveOrganization"
)

// MembershipServiceClient is the client API for MembershipService.
type MembershipServiceClient interface {
	ListMemberships(ctx context.Context, in *ListMembershipsRequest, opts ...grpc.CallOption) (*ListMembershipsResponse, error)
	SwitchActiveOrganization(ctx context.Context, in *SwitchActiveOrganizationRequest, opts ...grpc.CallOption) (*SwitchActiveOrganizationResponse, error)
}

type membershipServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMembershipServiceClient(cc grpc.ClientConnInterface) MembershipServiceClient {
	return &membershipServiceClient{cc}
}

func (c *membershipServiceClient) ListMemberships(ctx context.Context, in *ListMembershipsRequest, opts ...grpc.CallOption) (*ListMembershipsResponse, error) {
	out := new(ListMembershipsResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(codec.Name)}, opts...)
	if err := c.cc.Invoke(ctx, MembershipService_ListMemberships_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *membershipServiceClient) SwitchActiveOrganization(ctx context.Context, in *SwitchActiveOrganizationRequest, opts ...grpc.CallOption) (*SwitchActiveOrganizationResponse, error) {
	out := new(SwitchActiveOrganizationResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(codec.Name)}, opts...)
	if err := c.cc.Invoke(ctx, MembershipService_SwitchActiveOrganization_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// MembershipServiceServer is the server API for MembershipService.
type MembershipServiceServer interface {
	ListMemberships(context.Context, *ListMembershipsRequest) (*ListMembershipsResponse, error)
	SwitchActiveOrganization(context.Context, *SwitchActiveOrganizationRequest) (*SwitchActiveOrganizationResponse, error)
}

// UnimplementedMembershipServiceServer returns Unimplemented for every method.
type UnimplementedMembershipServiceServer struct{}

func (UnimplementedMembershipServiceServer) ListMemberships(context.Context, *ListMembershipsRequest) (*ListMembershipsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListMemberships not implemented")
}

func (UnimplementedMembershipServiceServer) SwitchActiveOrganization(context.Context, *SwitchActiveOrganizationRequest) (*SwitchActiveOrganizationResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SwitchActiveOrganization not implemented")
}

func RegisterMembershipServiceServer(s grpc.ServiceRegistrar, srv MembershipServiceServer) {
	s.RegisterService(&MembershipService_ServiceDesc, srv)
}

func _MembershipService_ListMemberships_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListMembershipsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MembershipServiceServer).ListMemberships(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MembershipService_ListMemberships_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MembershipServiceServer).ListMemberships(ctx, req.(*ListMembershipsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MembershipService_SwitchActiveOrganization_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SwitchActiveOrganizationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MembershipServiceServer).SwitchActiveOrganization(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MembershipService_SwitchActiveOrganization_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MembershipServiceServer).SwitchActiveOrganization(ctx, req.(*SwitchActiveOrganizationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// MembershipService_ServiceDesc is the grpc.ServiceDesc for MembershipService.
var MembershipService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "contractmgmt.membership.v1.MembershipService",
	HandlerType: (*MembershipServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListMemberships",
			Handler:    _MembershipService_ListMemberships_Handler,
		},
		{
			MethodName: "SwitchActiveOrganization",
			Handler:    _MembershipService_SwitchActiveOrganization_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "membership/v1/membership.proto",
}
