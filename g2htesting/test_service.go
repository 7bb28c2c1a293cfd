package g2htesting

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// TestServer has default responses for the Greeter methods.
type TestServer struct{}

// SayHello implements the Greeter server interface. It echoes incoming
// metadata back as headers, reports the request enum in a trailer, and fails
// with the requested gRPC code when the request carries one.
func (s *TestServer) SayHello(ctx context.Context, req *HelloRequest) (*HelloReply, error) {
	grpc.SetHeader(ctx, metadata.Pairs("echo-payment-status", req.PaymentStatus.String()))
	grpc.SetTrailer(ctx, metadata.Pairs("handled-by", "test-server"))
	if req.Code != 0 {
		return nil, status.Error(codes.Code(req.Code), "forced failure")
	}
	reply := &HelloReply{}
	if req.Name != "" {
		reply.Message = "Hello, " + req.Name
		reply.Result = &HelloReply_Result{
			ProcessingStatus: ProcessingStatus_COMPLETED,
			Outcome:          HelloReply_Result_OK_RESULT,
			Detail:           lastIncoming(ctx, "detail"),
		}
	}
	return reply, nil
}

// CheckConflicts implements the Greeter server interface by echoing the probe
// back unchanged, so callers can verify each enum field round-trips with its
// own symbolic names.
func (s *TestServer) CheckConflicts(_ context.Context, req *ConflictProbe) (*ConflictProbe, error) {
	return req, nil
}

func lastIncoming(ctx context.Context, key string) string {
	md, _ := metadata.FromIncomingContext(ctx)
	vs := md.Get(key)
	if len(vs) == 0 {
		return ""
	}
	return vs[len(vs)-1]
}
