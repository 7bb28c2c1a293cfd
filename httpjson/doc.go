// Package httpjson is the runtime for code generated by protoc-gen-g2h. It
// dispatches unary gRPC methods directly from HTTP handlers: the request body
// is JSON, decoded into the method's input type, and the response body is the
// JSON encoding of the output type.
//
// Requests and responses carry gRPC metadata in plain HTTP headers. Incoming
// request headers become incoming metadata (values of "-bin" keys are
// base64), a GRPC-Timeout request header becomes a context deadline, and
// header/trailer metadata set by the handler via grpc.SetHeader and
// grpc.SetTrailer is copied onto the response, trailers under an
// "X-RPC-Trailer-" prefix.
//
// A failed call is rendered as an HTTP status derived from the gRPC code
// plus a JSON error envelope of the form
//
//	{"error": {"code": "NOT_FOUND", "message": "..."}}
//
// where code is the SCREAMING_SNAKE gRPC code name. Generated packages
// install their own envelope type through the ErrorWriter option so the
// shape is defined once per package.
//
// The package also carries the enum serialization helpers that generated
// per-field codecs bind to a specific enum's name and value maps, and the
// omission machinery that drops absent or empty fields from responses
// according to generated per-package tables.
package httpjson
