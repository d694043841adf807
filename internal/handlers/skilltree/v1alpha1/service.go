package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "skilltree.v1alpha1.BuildPlannerService"

// Method names of the build planner service
const (
	MethodGetBuild       = "GetBuild"
	MethodStartSession   = "StartSession"
	MethodAllocate       = "Allocate"
	MethodDeallocate     = "Deallocate"
	MethodClearSkill     = "ClearSkill"
	MethodSetBonusPoints = "SetBonusPoints"
	MethodReset          = "Reset"
	MethodShare          = "Share"
	MethodListSkills     = "ListSkills"
)

// FullMethod returns the gRPC path of a method
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// BuildPlannerServiceServer is the server API for the build planner. Requests
// and responses are google.protobuf.Struct documents.
type BuildPlannerServiceServer interface {
	GetBuild(context.Context, *structpb.Struct) (*structpb.Struct, error)
	StartSession(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Allocate(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Deallocate(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ClearSkill(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetBonusPoints(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Reset(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Share(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListSkills(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryCall func(BuildPlannerServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

// BuildPlannerServiceDesc describes the build planner service for grpc.Server
var BuildPlannerServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BuildPlannerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: MethodGetBuild, Handler: unaryHandler(MethodGetBuild, BuildPlannerServiceServer.GetBuild)},
		{MethodName: MethodStartSession, Handler: unaryHandler(MethodStartSession, BuildPlannerServiceServer.StartSession)},
		{MethodName: MethodAllocate, Handler: unaryHandler(MethodAllocate, BuildPlannerServiceServer.Allocate)},
		{MethodName: MethodDeallocate, Handler: unaryHandler(MethodDeallocate, BuildPlannerServiceServer.Deallocate)},
		{MethodName: MethodClearSkill, Handler: unaryHandler(MethodClearSkill, BuildPlannerServiceServer.ClearSkill)},
		{MethodName: MethodSetBonusPoints, Handler: unaryHandler(MethodSetBonusPoints, BuildPlannerServiceServer.SetBonusPoints)},
		{MethodName: MethodReset, Handler: unaryHandler(MethodReset, BuildPlannerServiceServer.Reset)},
		{MethodName: MethodShare, Handler: unaryHandler(MethodShare, BuildPlannerServiceServer.Share)},
		{MethodName: MethodListSkills, Handler: unaryHandler(MethodListSkills, BuildPlannerServiceServer.ListSkills)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "skilltree/v1alpha1/build_planner.proto",
}

// RegisterBuildPlannerServiceServer registers srv with s
func RegisterBuildPlannerServiceServer(s grpc.ServiceRegistrar, srv BuildPlannerServiceServer) {
	s.RegisterService(&BuildPlannerServiceDesc, srv)
}

func unaryHandler(method string, call unaryCall) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(BuildPlannerServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: FullMethod(method),
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(BuildPlannerServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// BuildPlannerServiceClient is the client API for the build planner
type BuildPlannerServiceClient interface {
	GetBuild(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	StartSession(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Allocate(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Deallocate(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ClearSkill(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	SetBonusPoints(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Reset(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Share(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ListSkills(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type buildPlannerServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewBuildPlannerServiceClient returns a client bound to cc
func NewBuildPlannerServiceClient(cc grpc.ClientConnInterface) BuildPlannerServiceClient {
	return &buildPlannerServiceClient{cc: cc}
}

func (c *buildPlannerServiceClient) invoke(
	ctx context.Context,
	method string,
	in *structpb.Struct,
	opts []grpc.CallOption,
) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *buildPlannerServiceClient) GetBuild(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodGetBuild, in, opts)
}

func (c *buildPlannerServiceClient) StartSession(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodStartSession, in, opts)
}

func (c *buildPlannerServiceClient) Allocate(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodAllocate, in, opts)
}

func (c *buildPlannerServiceClient) Deallocate(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodDeallocate, in, opts)
}

func (c *buildPlannerServiceClient) ClearSkill(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodClearSkill, in, opts)
}

func (c *buildPlannerServiceClient) SetBonusPoints(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodSetBonusPoints, in, opts)
}

func (c *buildPlannerServiceClient) Reset(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodReset, in, opts)
}

func (c *buildPlannerServiceClient) Share(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodShare, in, opts)
}

func (c *buildPlannerServiceClient) ListSkills(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodListSkills, in, opts)
}
