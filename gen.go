// Package g2h generates companion HTTP/JSON endpoint code for gRPC services.
//
// The generator consumes a descriptor set and, for each proto file, emits a
// Go source fragment that lives in the same package as the protoc-gen-go and
// protoc-gen-go-grpc output: a route-construction function per service, a
// JSON error envelope per package, and (when string-enum support is enabled)
// a per-field enum serializer/deserializer module plus the omission tables
// used by the runtime JSON marshaler. Generated code executes against the
// httpjson runtime package of this module.
package g2h

import (
	"go/format"
	"os"
	"sort"
	"strings"

	"github.com/jhump/protoreflect/desc"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
)

// Options is the configuration surface recognized by the generator.
type Options struct {
	// EnableStringEnums turns on generation of the per-field enum codec
	// module and the omission tables.
	EnableStringEnums bool
	// DescriptorSetPath, when non-empty, makes the driver persist the raw
	// descriptor set alongside the generated code for runtime reflection use.
	DescriptorSetPath string
	// Logger receives generation diagnostics. Defaults to a nop logger.
	Logger *zap.Logger
}

// File is one generated output file.
type File struct {
	Name     string
	Contents []byte
}

// Generator performs a single, synchronous generation pass. A Generator is
// not safe for concurrent use; each pass gets a fresh one.
type Generator struct {
	opts Options
	log  *zap.Logger

	// per-package fragments that must be emitted exactly once
	envelopeDone map[string]bool
	jsonInfoDone map[string]bool

	// omission tables aggregated across all files of a package, keyed by
	// proto package
	pkgJSONInfo map[string][]messageJSONData
}

func NewGenerator(opts Options) *Generator {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{
		opts:         opts,
		log:          log,
		envelopeDone: map[string]bool{},
		jsonInfoDone: map[string]bool{},
		pkgJSONInfo:  map[string][]messageJSONData{},
	}
}

// Generate produces one output file per input file that has anything to
// generate. Input order is preserved; a failure for any file fails the whole
// pass, with per-file errors combined.
func (g *Generator) Generate(files []*desc.FileDescriptor) ([]File, error) {
	if g.opts.EnableStringEnums {
		// The omission table covers the whole proto package, so it has to be
		// collected across every input file before any one file is rendered.
		for _, fd := range files {
			pkg := fd.GetPackage()
			g.pkgJSONInfo[pkg] = append(g.pkgJSONInfo[pkg], buildJSONInfo(fd)...)
		}
		for pkg := range g.pkgJSONInfo {
			info := g.pkgJSONInfo[pkg]
			sort.Slice(info, func(i, j int) bool { return info[i].FullName < info[j].FullName })
		}
	}

	var out []File
	var errs error
	for _, fd := range files {
		f, err := g.generateFile(fd)
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "generating %s", fd.GetName()))
			continue
		}
		if f != nil {
			out = append(out, *f)
		}
	}
	if errs != nil {
		return nil, errs
	}
	return out, nil
}

func (g *Generator) generateFile(fd *desc.FileDescriptor) (*File, error) {
	var body strings.Builder

	var services []serviceData
	for _, sd := range fd.GetServices() {
		svc := buildService(sd, g.opts.EnableStringEnums, g.log)
		if len(svc.Methods) > 0 {
			services = append(services, svc)
		}
	}

	var codecs string
	if g.opts.EnableStringEnums {
		bindings := extractEnumFields(fd)
		for _, b := range bindings {
			if b.enumIdent == "" {
				g.log.Warn("enum field refers to a foreign package, no codec generated",
					zap.String("field", b.fieldID),
					zap.String("enum", b.enumTypePath))
			}
		}
		var err error
		codecs, err = renderEnumCodecs(bindings)
		if err != nil {
			return nil, err
		}
	}

	// The first output file of a package carries the package-wide omission
	// table. Route functions reference it whenever string enums are on, so it
	// is declared even when empty.
	jsonInfo := g.pkgJSONInfo[fd.GetPackage()]
	emitJSONInfo := g.opts.EnableStringEnums && !g.jsonInfoDone[fd.GetPackage()]

	if len(services) == 0 && codecs == "" && (!emitJSONInfo || len(jsonInfo) == 0) {
		return nil, nil
	}

	emitEnvelope := len(services) > 0 && !g.envelopeDone[fd.GetPackage()]
	if emitEnvelope {
		g.envelopeDone[fd.GetPackage()] = true
	}
	if emitJSONInfo {
		g.jsonInfoDone[fd.GetPackage()] = true
	}

	header, err := render(headerTemplate, struct {
		Source      string
		GoPackage   string
		NeedsHTTP   bool
		NeedsMux    bool
		NeedsStatus bool
	}{
		Source:      fd.GetName(),
		GoPackage:   goPackageName(fd),
		NeedsHTTP:   len(services) > 0 || emitEnvelope,
		NeedsMux:    len(services) > 0,
		NeedsStatus: emitEnvelope,
	})
	if err != nil {
		return nil, err
	}
	body.WriteString(header)

	if emitEnvelope {
		frag, err := render(envelopeTemplate, nil)
		if err != nil {
			return nil, err
		}
		body.WriteString(frag)
	}
	if emitJSONInfo {
		frag, err := render(jsonInfoTemplate, struct{ Messages []messageJSONData }{jsonInfo})
		if err != nil {
			return nil, err
		}
		body.WriteString(frag)
	}
	body.WriteString(codecs)
	for _, svc := range services {
		frag, err := render(routeTemplate, svc)
		if err != nil {
			return nil, errors.Wrapf(err, "rendering routes for %s", svc.FullName)
		}
		body.WriteString(frag)
	}

	// A fragment that does not survive gofmt is not valid Go; fail the build
	// rather than emit it.
	formatted, err := format.Source([]byte(body.String()))
	if err != nil {
		return nil, errors.Wrap(err, "generated code is not valid Go")
	}

	return &File{Name: outputFileName(fd.GetName()), Contents: formatted}, nil
}

func outputFileName(protoName string) string {
	return strings.TrimSuffix(protoName, ".proto") + ".g2h.go"
}

// goPackageName mirrors protoc-gen-go's package naming: the part of the
// go_package option after the semicolon if present, otherwise the last path
// element, otherwise the proto package with dots flattened.
func goPackageName(fd *desc.FileDescriptor) string {
	goPkg := fd.GetFileOptions().GetGoPackage()
	if i := strings.LastIndex(goPkg, ";"); i >= 0 {
		return sanitizeIdent(goPkg[i+1:])
	}
	if goPkg != "" {
		if i := strings.LastIndex(goPkg, "/"); i >= 0 {
			goPkg = goPkg[i+1:]
		}
		return sanitizeIdent(goPkg)
	}
	return sanitizeIdent(fd.GetPackage())
}

func sanitizeIdent(s string) string {
	var sb strings.Builder
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r == '_':
			sb.WriteRune(r)
		case r >= '0' && r <= '9' && i > 0:
			sb.WriteRune(r)
		default:
			sb.WriteRune('_')
		}
	}
	return sb.String()
}

// WriteDescriptorSet persists the raw descriptor set for the given files so
// that generated servers can expose it for runtime reflection.
func WriteDescriptorSet(path string, files []*desc.FileDescriptor) error {
	seen := map[string]bool{}
	var fds descriptorpb.FileDescriptorSet
	var add func(fd *desc.FileDescriptor)
	add = func(fd *desc.FileDescriptor) {
		if seen[fd.GetName()] {
			return
		}
		seen[fd.GetName()] = true
		for _, dep := range fd.GetDependencies() {
			add(dep)
		}
		fds.File = append(fds.File, fd.AsFileDescriptorProto())
	}
	for _, fd := range files {
		add(fd)
	}
	b, err := proto.Marshal(&fds)
	if err != nil {
		return errors.Wrap(err, "marshaling descriptor set")
	}
	return errors.Wrap(os.WriteFile(path, b, 0o644), "writing descriptor set")
}
