package httpjson

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
)

// asMetadata converts HTTP request headers into incoming gRPC metadata.
// Values of "-bin" keys are base64-decoded per the gRPC metadata convention.
func asMetadata(header http.Header) (metadata.MD, error) {
	md := metadata.MD{}
	for k, vs := range header {
		k = strings.ToLower(k)
		for _, v := range vs {
			if strings.HasSuffix(k, "-bin") {
				vv, err := base64.URLEncoding.DecodeString(v)
				if err != nil {
					return nil, err
				}
				v = string(vv)
			}
			md[k] = append(md[k], v)
		}
	}
	return md, nil
}

// reservedHeaders are HTTP-level headers that must never be overwritten by
// handler-supplied metadata.
var reservedHeaders = map[string]struct{}{
	"accept-encoding":   {},
	"connection":        {},
	"content-type":      {},
	"content-length":    {},
	"keep-alive":        {},
	"te":                {},
	"trailer":           {},
	"transfer-encoding": {},
	"upgrade":           {},
}

// toHeaders copies outgoing metadata onto HTTP response headers, base64
// encoding binary values and skipping reserved keys. Trailer metadata is
// distinguished from header metadata by the given key prefix.
func toHeaders(md metadata.MD, h http.Header, prefix string) {
	for k, vs := range md {
		lowerK := strings.ToLower(k)
		if _, ok := reservedHeaders[lowerK]; ok {
			continue
		}
		isBin := strings.HasSuffix(lowerK, "-bin")
		for _, v := range vs {
			if isBin {
				v = base64.URLEncoding.EncodeToString([]byte(v))
			}
			h.Add(prefix+k, v)
		}
	}
}

// contextFromHeaders returns a child context populated from the request
// headers: the headers become incoming metadata, and a GRPC-Timeout header,
// if present, becomes a context deadline.
func contextFromHeaders(parent context.Context, h http.Header) (context.Context, context.CancelFunc, error) {
	cancel := func() {}
	md, err := asMetadata(h)
	if err != nil {
		return parent, cancel, err
	}
	ctx := metadata.NewIncomingContext(parent, md)

	// See the "Timeout" component of the gRPC wire format:
	// https://grpc.io/docs/guides/wire.html#requests
	timeout := h.Get("GRPC-Timeout")
	if timeout != "" {
		suffix := timeout[len(timeout)-1]
		if timeoutVal, err := strconv.ParseInt(timeout[:len(timeout)-1], 10, 64); err == nil {
			var unit time.Duration
			switch suffix {
			case 'H':
				unit = time.Hour
			case 'M':
				unit = time.Minute
			case 'S':
				unit = time.Second
			case 'm':
				unit = time.Millisecond
			case 'u':
				unit = time.Microsecond
			case 'n':
				unit = time.Nanosecond
			}
			if unit != 0 {
				ctx, cancel = context.WithTimeout(ctx, time.Duration(timeoutVal)*unit)
			}
		}
	}
	return ctx, cancel, nil
}

func peerFromRequest(r *http.Request) *peer.Peer {
	pr := peer.Peer{Addr: strAddr(r.RemoteAddr)}
	if r.TLS != nil {
		pr.AuthInfo = credentials.TLSInfo{State: *r.TLS}
	}
	return &pr
}

func drainAndClose(r io.ReadCloser) error {
	_, copyErr := io.Copy(io.Discard, r)
	closeErr := r.Close()
	// error from io.Copy likely more useful than the one from Close
	if copyErr != nil {
		return copyErr
	}
	return closeErr
}

func writeError(w http.ResponseWriter, code int) {
	msg := http.StatusText(code)
	if msg == "" {
		msg = "Unknown"
	}
	http.Error(w, msg, code)
}

type strAddr string

func (a strAddr) Network() string {
	// Per the documentation on net/http.Request.RemoteAddr, if this is set,
	// it's the IP:port of the peer, hence TCP.
	if a != "" {
		return "tcp"
	}
	return ""
}

func (a strAddr) String() string { return string(a) }
