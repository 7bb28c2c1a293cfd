package httpjson

import (
	"fmt"
	"reflect"

	"google.golang.org/grpc"
)

// HandlerMap accumulates service registrations. It can be filled once and
// then used to expose the same implementations through multiple servers,
// e.g. a real gRPC server and an HTTP/JSON Server.
type HandlerMap map[string]service

var _ grpc.ServiceRegistrar = HandlerMap(nil)

type service struct {
	desc    *grpc.ServiceDesc
	handler interface{}
}

// RegisterService registers the given handler for the given service.
// Services are identified by their fully-qualified name; registering the same
// service twice, or a handler that does not implement the service interface,
// panics the same way grpc.Server does.
func (r HandlerMap) RegisterService(desc *grpc.ServiceDesc, h interface{}) {
	ht := reflect.TypeOf(desc.HandlerType).Elem()
	st := reflect.TypeOf(h)
	if !st.Implements(ht) {
		panic(fmt.Sprintf("service %s: handler of type %v does not satisfy %v", desc.ServiceName, st, ht))
	}
	if _, ok := r[desc.ServiceName]; ok {
		panic(fmt.Sprintf("service %s: handler already registered", desc.ServiceName))
	}
	r[desc.ServiceName] = service{desc: desc, handler: h}
}

// QueryService returns the descriptor and handler for the named service, or
// nil, nil if none is registered.
func (r HandlerMap) QueryService(name string) (*grpc.ServiceDesc, interface{}) {
	svc := r[name]
	return svc.desc, svc.handler
}

// ForEach calls fn for each registered service.
func (r HandlerMap) ForEach(fn func(desc *grpc.ServiceDesc, svr interface{})) {
	for _, svc := range r {
		fn(svc.desc, svc.handler)
	}
}
