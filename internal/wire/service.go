package wire

import (
	"context"

	"google.golang.org/grpc"
)

const ServiceName = "golfmatch.v1.MatchService"

// FullMethod returns the gRPC path of a MatchService method.
func FullMethod(name string) string { return "/" + ServiceName + "/" + name }

type MatchServiceServer interface {
	Register(context.Context, *RegisterRequest) (*AuthResponse, error)
	Login(context.Context, *LoginRequest) (*AuthResponse, error)
	RecordSwipe(context.Context, *SwipeRequest) (*SwipeResponse, error)
	ListCandidates(context.Context, *Empty) (*ListCandidatesResponse, error)
	ListMatches(context.Context, *Empty) (*ListMatchesResponse, error)
	ListMessages(context.Context, *ListMessagesRequest) (*ListMessagesResponse, error)
	SendMessage(context.Context, *SendMessageRequest) (*ChatMessage, error)
	ProposeTeeTime(context.Context, *ProposeTeeTimeRequest) (*TeeTime, error)
	ListTeeTimes(context.Context, *Empty) (*ListTeeTimesResponse, error)
	ListVenues(context.Context, *Empty) (*ListVenuesResponse, error)
}

// unary builds the method descriptor for one call. PReq is the pointer type of Req.
func unary[Req any, PReq interface {
	*Req
	Message
}, Resp Message](name string, call func(MatchServiceServer, context.Context, PReq) (Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := PReq(new(Req))
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(MatchServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethod(name)}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(MatchServiceServer), ctx, req.(PReq))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*MatchServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("Register", MatchServiceServer.Register),
		unary("Login", MatchServiceServer.Login),
		unary("RecordSwipe", MatchServiceServer.RecordSwipe),
		unary("ListCandidates", MatchServiceServer.ListCandidates),
		unary("ListMatches", MatchServiceServer.ListMatches),
		unary("ListMessages", MatchServiceServer.ListMessages),
		unary("SendMessage", MatchServiceServer.SendMessage),
		unary("ProposeTeeTime", MatchServiceServer.ProposeTeeTime),
		unary("ListTeeTimes", MatchServiceServer.ListTeeTimes),
		unary("ListVenues", MatchServiceServer.ListVenues),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "golfmatch/v1/match.proto",
}

func RegisterMatchServiceServer(s grpc.ServiceRegistrar, srv MatchServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// Client calls MatchService with Codec forced on every call.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) invoke(ctx context.Context, method string, in, out Message, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.ForceCodec(Codec{})}, opts...)
	return c.cc.Invoke(ctx, FullMethod(method), in, out, opts...)
}

func (c *Client) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*AuthResponse, error) {
	out := &AuthResponse{}
	if err := c.invoke(ctx, "Register", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*AuthResponse, error) {
	out := &AuthResponse{}
	if err := c.invoke(ctx, "Login", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) RecordSwipe(ctx context.Context, in *SwipeRequest, opts ...grpc.CallOption) (*SwipeResponse, error) {
	out := &SwipeResponse{}
	if err := c.invoke(ctx, "RecordSwipe", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListCandidates(ctx context.Context, opts ...grpc.CallOption) (*ListCandidatesResponse, error) {
	out := &ListCandidatesResponse{}
	if err := c.invoke(ctx, "ListCandidates", &Empty{}, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListMatches(ctx context.Context, opts ...grpc.CallOption) (*ListMatchesResponse, error) {
	out := &ListMatchesResponse{}
	if err := c.invoke(ctx, "ListMatches", &Empty{}, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListMessages(ctx context.Context, in *ListMessagesRequest, opts ...grpc.CallOption) (*ListMessagesResponse, error) {
	out := &ListMessagesResponse{}
	if err := c.invoke(ctx, "ListMessages", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SendMessage(ctx context.Context, in *SendMessageRequest, opts ...grpc.CallOption) (*ChatMessage, error) {
	out := &ChatMessage{}
	if err := c.invoke(ctx, "SendMessage", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ProposeTeeTime(ctx context.Context, in *ProposeTeeTimeRequest, opts ...grpc.CallOption) (*TeeTime, error) {
	out := &TeeTime{}
	if err := c.invoke(ctx, "ProposeTeeTime", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListTeeTimes(ctx context.Context, opts ...grpc.CallOption) (*ListTeeTimesResponse, error) {
	out := &ListTeeTimesResponse{}
	if err := c.invoke(ctx, "ListTeeTimes", &Empty{}, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListVenues(ctx context.Context, opts ...grpc.CallOption) (*ListVenuesResponse, error) {
	out := &ListVenuesResponse{}
	if err := c.invoke(ctx, "ListVenues", &Empty{}, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
