// Command protoc-gen-g2h is a protoc plugin that generates companion
// HTTP/JSON endpoint code for gRPC services. It is meant to run alongside
// protoc-gen-go and protoc-gen-go-grpc:
//
//	protoc --go_out=. --go-grpc_out=. --g2h_out=enable_string_enums:. service.proto
//
// Recognized parameters:
//
//	enable_string_enums          generate per-field enum string codecs and
//	                             omission tables
//	descriptor_set_output_path=P also persist the raw descriptor set to P for
//	                             runtime reflection use
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jhump/protoreflect/desc"
	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/pluginpb"

	"github.com/juspay/g2h"
)

func main() {
	log, err := zap.NewDevelopment(zap.IncreaseLevel(zap.WarnLevel))
	if err != nil {
		fmt.Fprintf(os.Stderr, "protoc-gen-g2h: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	in, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatal("reading code generator request", zap.Error(err))
	}
	var req pluginpb.CodeGeneratorRequest
	if err := proto.Unmarshal(in, &req); err != nil {
		log.Fatal("parsing code generator request", zap.Error(err))
	}

	resp := generate(&req, log)

	out, err := proto.Marshal(resp)
	if err != nil {
		log.Fatal("marshaling code generator response", zap.Error(err))
	}
	if _, err := os.Stdout.Write(out); err != nil {
		log.Fatal("writing code generator response", zap.Error(err))
	}
}

// generate runs one generation pass. Failures are reported through the
// response error field so protoc can attribute them to this plugin.
func generate(req *pluginpb.CodeGeneratorRequest, log *zap.Logger) *pluginpb.CodeGeneratorResponse {
	features := uint64(pluginpb.CodeGeneratorResponse_FEATURE_PROTO3_OPTIONAL)
	resp := &pluginpb.CodeGeneratorResponse{SupportedFeatures: &features}
	fail := func(err error) *pluginpb.CodeGeneratorResponse {
		resp.Error = proto.String(err.Error())
		return resp
	}

	opts, err := parseParameter(req.GetParameter())
	if err != nil {
		return fail(err)
	}
	opts.Logger = log

	// advisory only: report but keep generating
	g2h.CheckDeps(log)

	byName, err := desc.CreateFileDescriptors(req.GetProtoFile())
	if err != nil {
		return fail(fmt.Errorf("malformed descriptor input: %v", err))
	}
	var files []*desc.FileDescriptor
	for _, name := range req.GetFileToGenerate() {
		fd, ok := byName[name]
		if !ok {
			return fail(fmt.Errorf("file to generate %q is not in the descriptor set", name))
		}
		files = append(files, fd)
	}

	outFiles, err := g2h.NewGenerator(opts).Generate(files)
	if err != nil {
		return fail(err)
	}
	for _, f := range outFiles {
		resp.File = append(resp.File, &pluginpb.CodeGeneratorResponse_File{
			Name:    proto.String(f.Name),
			Content: proto.String(string(f.Contents)),
		})
	}

	if opts.DescriptorSetPath != "" {
		if err := g2h.WriteDescriptorSet(opts.DescriptorSetPath, files); err != nil {
			return fail(err)
		}
	}
	return resp
}

func parseParameter(param string) (g2h.Options, error) {
	var opts g2h.Options
	for _, p := range strings.Split(param, ",") {
		if p == "" {
			continue
		}
		k, v, hasValue := strings.Cut(p, "=")
		switch k {
		case "enable_string_enums":
			if !hasValue {
				opts.EnableStringEnums = true
				break
			}
			b, err := strconv.ParseBool(v)
			if err != nil {
				return opts, fmt.Errorf("parameter enable_string_enums: %v", err)
			}
			opts.EnableStringEnums = b
		case "descriptor_set_output_path":
			if v == "" {
				return opts, fmt.Errorf("parameter descriptor_set_output_path requires a value")
			}
			opts.DescriptorSetPath = v
		default:
			return opts, fmt.Errorf("unknown parameter %q", k)
		}
	}
	return opts, nil
}
