package g2h

import (
	"github.com/iancoleman/strcase"
	"github.com/jhump/protoreflect/desc"
	"go.uber.org/zap"
)

type methodData struct {
	Path string
	// Index is the position of the method within the base generator's
	// ServiceDesc.Methods table, which holds only unary methods in
	// declaration order. Emitting a wrong index would silently dispatch a
	// route to the wrong handler, so it is covered by a dedicated test.
	Index     int
	PruneRoot string
}

type serviceData struct {
	GoName   string
	FullName string
	Methods  []methodData
}

// buildService computes the route set for one service: one POST route per
// unary method at the literal wire path /{package}.{Service}/{Method}.
// Streaming methods have no HTTP/JSON body shape and are skipped with a
// diagnostic.
func buildService(sd *desc.ServiceDescriptor, stringEnums bool, log *zap.Logger) serviceData {
	data := serviceData{
		GoName:   strcase.ToCamel(sd.GetName()),
		FullName: sd.GetFullyQualifiedName(),
	}
	unaryIdx := 0
	for _, m := range sd.GetMethods() {
		if m.IsClientStreaming() || m.IsServerStreaming() {
			log.Warn("skipping streaming method, only unary methods get HTTP routes",
				zap.String("service", sd.GetFullyQualifiedName()),
				zap.String("method", m.GetName()))
			continue
		}
		md := methodData{
			Path:  "/" + sd.GetFullyQualifiedName() + "/" + m.GetName(),
			Index: unaryIdx,
		}
		if stringEnums {
			md.PruneRoot = m.GetOutputType().GetFullyQualifiedName()
		}
		data.Methods = append(data.Methods, md)
		unaryIdx++
	}
	return data
}
