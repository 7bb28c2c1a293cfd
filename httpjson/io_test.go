package httpjson

import (
	"context"
	"encoding/base64"
	"net/http"
	"testing"
	"time"

	"google.golang.org/grpc/metadata"
)

func TestAsMetadata(t *testing.T) {
	h := http.Header{}
	h.Add("X-Custom", "one")
	h.Add("X-Custom", "two")
	h.Set("X-Blob-Bin", base64.URLEncoding.EncodeToString([]byte{0, 1, 2}))

	md, err := asMetadata(h)
	if err != nil {
		t.Fatal(err)
	}
	if got := md.Get("x-custom"); len(got) != 2 || got[0] != "one" || got[1] != "two" {
		t.Errorf("x-custom = %v", got)
	}
	if got := md.Get("x-blob-bin"); len(got) != 1 || got[0] != string([]byte{0, 1, 2}) {
		t.Errorf("x-blob-bin = %q", got)
	}
}

func TestAsMetadataBadBase64(t *testing.T) {
	h := http.Header{}
	h.Set("X-Blob-Bin", "!!! not base64 !!!")
	if _, err := asMetadata(h); err == nil {
		t.Fatal("expected error")
	}
}

func TestToHeaders(t *testing.T) {
	md := metadata.Pairs(
		"x-custom", "v",
		"x-blob-bin", string([]byte{3, 4}),
		"content-type", "text/evil",
	)
	h := http.Header{}
	toHeaders(md, h, "")
	if got := h.Get("X-Custom"); got != "v" {
		t.Errorf("X-Custom = %q", got)
	}
	if got := h.Get("X-Blob-Bin"); got != base64.URLEncoding.EncodeToString([]byte{3, 4}) {
		t.Errorf("X-Blob-Bin = %q", got)
	}
	if got := h.Get("Content-Type"); got != "" {
		t.Errorf("reserved header leaked: %q", got)
	}
}

func TestToHeadersPrefix(t *testing.T) {
	h := http.Header{}
	toHeaders(metadata.Pairs("handled-by", "test"), h, "X-RPC-Trailer-")
	if got := h.Get("X-RPC-Trailer-Handled-By"); got != "test" {
		t.Errorf("trailer header = %q", got)
	}
}

func TestContextFromHeadersTimeout(t *testing.T) {
	h := http.Header{}
	h.Set("GRPC-Timeout", "100m")
	ctx, cancel, err := contextFromHeaders(context.Background(), h)
	if err != nil {
		t.Fatal(err)
	}
	defer cancel()
	deadline, ok := ctx.Deadline()
	if !ok {
		t.Fatal("no deadline set")
	}
	left := time.Until(deadline)
	if left <= 0 || left > 100*time.Millisecond {
		t.Errorf("deadline %v from now, want (0, 100ms]", left)
	}
}

func TestContextFromHeadersMetadata(t *testing.T) {
	h := http.Header{}
	h.Set("X-Request-Id", "abc")
	ctx, cancel, err := contextFromHeaders(context.Background(), h)
	if err != nil {
		t.Fatal(err)
	}
	defer cancel()
	if _, ok := ctx.Deadline(); ok {
		t.Error("unexpected deadline")
	}
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok || md.Get("x-request-id")[0] != "abc" {
		t.Errorf("incoming metadata = %v", md)
	}
}
