package pb

import (
	"context"

	"google.golang.org/grpc"
)

// HubServiceClient is the client surface of the hub's gRPC service,
// restricted to the RPCs the gateway consumes
type HubServiceClient interface {
	GetUserDataByFid(ctx context.Context, in *FidRequest, opts ...grpc.CallOption) (*MessagesResponse, error)
	GetLinksByFid(ctx context.Context, in *LinksByFidRequest, opts ...grpc.CallOption) (*MessagesResponse, error)
	GetLinksByTarget(ctx context.Context, in *LinksByTargetRequest, opts ...grpc.CallOption) (*MessagesResponse, error)
	GetOnChainSignersByFid(ctx context.Context, in *FidRequest, opts ...grpc.CallOption) (*OnChainEventResponse, error)
	SubmitMessage(ctx context.Context, in *Message, opts ...grpc.CallOption) (*Message, error)
	Subscribe(ctx context.Context, in *SubscribeRequest, opts ...grpc.CallOption) (HubService_SubscribeClient, error)
}

type hubServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewHubServiceClient wraps a client connection with typed hub RPC stubs
func NewHubServiceClient(cc grpc.ClientConnInterface) HubServiceClient {
	return &hubServiceClient{cc: cc}
}

func (c *hubServiceClient) GetUserDataByFid(
	ctx context.Context, in *FidRequest, opts ...grpc.CallOption,
) (*MessagesResponse, error) {
	out := new(MessagesResponse)
	if err := c.cc.Invoke(ctx, "/HubService/GetUserDataByFid", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *hubServiceClient) GetLinksByFid(
	ctx context.Context, in *LinksByFidRequest, opts ...grpc.CallOption,
) (*MessagesResponse, error) {
	out := new(MessagesResponse)
	if err := c.cc.Invoke(ctx, "/HubService/GetLinksByFid", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *hubServiceClient) GetLinksByTarget(
	ctx context.Context, in *LinksByTargetRequest, opts ...grpc.CallOption,
) (*MessagesResponse, error) {
	out := new(MessagesResponse)
	if err := c.cc.Invoke(ctx, "/HubService/GetLinksByTarget", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *hubServiceClient) GetOnChainSignersByFid(
	ctx context.Context, in *FidRequest, opts ...grpc.CallOption,
) (*OnChainEventResponse, error) {
	out := new(OnChainEventResponse)
	if err := c.cc.Invoke(ctx, "/HubService/GetOnChainSignersByFid", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *hubServiceClient) SubmitMessage(
	ctx context.Context, in *Message, opts ...grpc.CallOption,
) (*Message, error) {
	out := new(Message)
	if err := c.cc.Invoke(ctx, "/HubService/SubmitMessage", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

var subscribeStreamDesc = grpc.StreamDesc{
	StreamName:    "Subscribe",
	ServerStreams: true,
}

// HubService_SubscribeClient is the receive side of the event stream
type HubService_SubscribeClient interface {
	Recv() (*HubEvent, error)
	grpc.ClientStream
}

type hubServiceSubscribeClient struct {
	grpc.ClientStream
}

func (c *hubServiceClient) Subscribe(
	ctx context.Context, in *SubscribeRequest, opts ...grpc.CallOption,
) (HubService_SubscribeClient, error) {
	stream, err := c.cc.NewStream(ctx, &subscribeStreamDesc, "/HubService/Subscribe", opts...)
	if err != nil {
		return nil, err
	}
	x := &hubServiceSubscribeClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

func (x *hubServiceSubscribeClient) Recv() (*HubEvent, error) {
	ev := new(HubEvent)
	if err := x.ClientStream.RecvMsg(ev); err != nil {
		return nil, err
	}
	return ev, nil
}
