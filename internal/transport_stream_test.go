package internal

import (
	"testing"

	"google.golang.org/grpc/metadata"
)

func TestUnaryServerTransportStream(t *testing.T) {
	sts := UnaryServerTransportStream{Name: "/g2htesting.Greeter/SayHello"}
	if sts.Method() != "/g2htesting.Greeter/SayHello" {
		t.Errorf("Method() = %q", sts.Method())
	}

	if err := sts.SetHeader(metadata.Pairs("a", "1")); err != nil {
		t.Fatal(err)
	}
	if err := sts.SetHeader(metadata.Pairs("a", "2", "b", "3")); err != nil {
		t.Fatal(err)
	}
	if err := sts.SetTrailer(metadata.Pairs("t", "4")); err != nil {
		t.Fatal(err)
	}

	hdrs := sts.GetHeaders()
	if got := hdrs.Get("a"); len(got) != 2 || got[0] != "1" || got[1] != "2" {
		t.Errorf("a = %v", got)
	}
	if got := hdrs.Get("b"); len(got) != 1 || got[0] != "3" {
		t.Errorf("b = %v", got)
	}
	if got := sts.GetTrailers().Get("t"); len(got) != 1 || got[0] != "4" {
		t.Errorf("t = %v", got)
	}
}

func TestUnaryServerTransportStreamFinish(t *testing.T) {
	var sts UnaryServerTransportStream
	sts.Finish()
	if err := sts.SetHeader(metadata.Pairs("a", "1")); err == nil {
		t.Error("SetHeader after Finish must fail")
	}
	if err := sts.SetTrailer(metadata.Pairs("t", "1")); err == nil {
		t.Error("SetTrailer after Finish must fail")
	}
}

func TestSendHeaderClosesHeaders(t *testing.T) {
	var sts UnaryServerTransportStream
	if err := sts.SendHeader(metadata.Pairs("a", "1")); err != nil {
		t.Fatal(err)
	}
	if err := sts.SetHeader(metadata.Pairs("b", "2")); err == nil {
		t.Error("SetHeader after SendHeader must fail")
	}
	// trailers are still open
	if err := sts.SetTrailer(metadata.Pairs("t", "1")); err != nil {
		t.Errorf("SetTrailer: %v", err)
	}
}
