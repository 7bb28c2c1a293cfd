package internal

import (
	"fmt"
	"sync"

	"google.golang.org/grpc/metadata"
)

// UnaryServerTransportStream implements grpc.ServerTransportStream so that
// handler code calling grpc.SetHeader, grpc.SetTrailer and friends works over
// the HTTP/JSON bridge: the collected metadata is copied onto the HTTP
// response after the handler returns.
type UnaryServerTransportStream struct {
	// Name is the full method name in "/service/method" format.
	Name string

	mu       sync.Mutex
	hdrs     metadata.MD
	hdrsSent bool
	tlrs     metadata.MD
	tlrsSent bool
}

func (sts *UnaryServerTransportStream) Method() string {
	return sts.Name
}

// Finish marks both header and trailer metadata as sent, so later mutation
// attempts by the handler fail the same way they would on a real stream.
func (sts *UnaryServerTransportStream) Finish() {
	sts.mu.Lock()
	defer sts.mu.Unlock()
	sts.hdrsSent = true
	sts.tlrsSent = true
}

func (sts *UnaryServerTransportStream) SetHeader(md metadata.MD) error {
	sts.mu.Lock()
	defer sts.mu.Unlock()
	return sts.setHeaderLocked(md)
}

func (sts *UnaryServerTransportStream) SendHeader(md metadata.MD) error {
	sts.mu.Lock()
	defer sts.mu.Unlock()
	if err := sts.setHeaderLocked(md); err != nil {
		return err
	}
	sts.hdrsSent = true
	return nil
}

func (sts *UnaryServerTransportStream) setHeaderLocked(md metadata.MD) error {
	if sts.hdrsSent {
		return fmt.Errorf("headers already sent")
	}
	if sts.hdrs == nil {
		sts.hdrs = metadata.MD{}
	}
	for k, v := range md {
		sts.hdrs[k] = append(sts.hdrs[k], v...)
	}
	return nil
}

func (sts *UnaryServerTransportStream) GetHeaders() metadata.MD {
	sts.mu.Lock()
	defer sts.mu.Unlock()
	return sts.hdrs
}

func (sts *UnaryServerTransportStream) SetTrailer(md metadata.MD) error {
	sts.mu.Lock()
	defer sts.mu.Unlock()
	if sts.tlrsSent {
		return fmt.Errorf("trailers already sent")
	}
	if sts.tlrs == nil {
		sts.tlrs = metadata.MD{}
	}
	for k, v := range md {
		sts.tlrs[k] = append(sts.tlrs[k], v...)
	}
	return nil
}

func (sts *UnaryServerTransportStream) GetTrailers() metadata.MD {
	sts.mu.Lock()
	defer sts.mu.Unlock()
	return sts.tlrs
}
