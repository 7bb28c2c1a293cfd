package httpjson

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"github.com/juspay/g2h/internal"
)

const contentTypeJSON = "application/json"

type handlerOpts struct {
	errWriter ErrorWriter
	unaryInt  grpc.UnaryServerInterceptor
	pruneInfo map[string]MessageJSONInfo
	pruneRoot string
}

// HandlerOption customizes the behavior of an HTTP/JSON method handler.
type HandlerOption func(*handlerOpts)

// WithErrorWriter installs the function used to render failed calls.
// Generated route functions install their package's envelope writer with
// this option.
func WithErrorWriter(fn ErrorWriter) HandlerOption {
	return func(o *handlerOpts) {
		o.errWriter = fn
	}
}

// WithUnaryInterceptor makes the handler dispatch through the given server
// interceptor, the same way a gRPC server would.
func WithUnaryInterceptor(interceptor grpc.UnaryServerInterceptor) HandlerOption {
	return func(o *handlerOpts) {
		o.unaryInt = interceptor
	}
}

// WithResponsePruning applies the generated omission table to responses:
// after encoding, fields of the root message (and linked nested messages)
// that the table marks omit-when-empty are dropped when absent or empty.
func WithResponsePruning(info map[string]MessageJSONInfo, root string) HandlerOption {
	return func(o *handlerOpts) {
		o.pruneInfo = info
		o.pruneRoot = root
	}
}

// HandleMethod returns an HTTP handler that dispatches a unary RPC method on
// the given server implementation. The request body is decoded as JSON into
// the method's input type, request headers become incoming metadata, and
// header/trailer metadata set by the handler is copied back onto the
// response. The server value is shared across concurrent invocations; the
// implementation is responsible for its own synchronization.
func HandleMethod(svr interface{}, serviceName string, desc *grpc.MethodDesc, opts ...HandlerOption) http.HandlerFunc {
	var hOpts handlerOpts
	for _, o := range opts {
		o(&hOpts)
	}
	errWriter := hOpts.errWriter
	if errWriter == nil {
		errWriter = defaultErrorWriter
	}
	fullMethod := fmt.Sprintf("/%s/%s", serviceName, desc.MethodName)
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if p := peerFromRequest(r); p != nil {
			ctx = peer.NewContext(ctx, p)
		}
		defer drainAndClose(r.Body)
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			writeError(w, http.StatusMethodNotAllowed)
			return
		}

		contentType := r.Header.Get("Content-Type")
		if contentType != "" && !strings.HasPrefix(contentType, contentTypeJSON) {
			writeError(w, http.StatusUnsupportedMediaType)
			return
		}

		ctx, cancel, err := contextFromHeaders(ctx, r.Header)
		if err != nil {
			writeError(w, http.StatusBadRequest)
			return
		}
		defer cancel()

		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(w, http.StatusBadRequest)
			return
		}

		dec := func(msg interface{}) error {
			if err := unmarshalMessage(body, msg); err != nil {
				return status.Error(codes.InvalidArgument, err.Error())
			}
			return nil
		}
		sts := internal.UnaryServerTransportStream{Name: fullMethod}
		resp, err := desc.Handler(svr, grpc.NewContextWithServerTransportStream(ctx, &sts), dec, hOpts.unaryInt)
		toHeaders(sts.GetHeaders(), w.Header(), "")
		toHeaders(sts.GetTrailers(), w.Header(), "X-RPC-Trailer-")
		if err != nil {
			st, _ := status.FromError(err)
			if st.Code() == codes.OK {
				// preserve all error details, but rewrite the code since we
				// don't want to send back a non-error status when we know an
				// error occurred
				stpb := st.Proto()
				stpb.Code = int32(codes.Internal)
				st = status.FromProto(stpb)
			}
			errWriter(w, st)
			return
		}

		b, err := marshalMessage(resp)
		if err != nil {
			writeError(w, http.StatusInternalServerError)
			return
		}
		if hOpts.pruneInfo != nil && hOpts.pruneRoot != "" {
			b, err = pruneEmpty(b, hOpts.pruneRoot, hOpts.pruneInfo)
			if err != nil {
				writeError(w, http.StatusInternalServerError)
				return
			}
		}

		w.Header().Set("Content-Type", contentTypeJSON)
		w.Header().Set("Content-Length", fmt.Sprintf("%d", len(b)))
		w.Write(b)
	}
}

// Server hosts the HTTP/JSON routes for any number of registered services.
// It implements grpc.ServiceRegistrar, so the same generated registration
// functions that attach an implementation to a gRPC server work here, and it
// implements http.Handler for mounting on an *http.Server.
type Server struct {
	router   *mux.Router
	handlers HandlerMap
	opts     []HandlerOption
}

var _ grpc.ServiceRegistrar = (*Server)(nil)
var _ http.Handler = (*Server)(nil)

// NewServer returns a server that will apply the given options to every
// registered method handler.
func NewServer(opts ...HandlerOption) *Server {
	return &Server{
		router:   mux.NewRouter(),
		handlers: HandlerMap{},
		opts:     opts,
	}
}

// RegisterService registers the given service and implementation, adding one
// POST route per unary method at "/service.Name/Method". Like a gRPC server,
// only a single implementation per service is allowed. Streaming methods are
// ignored; the HTTP/JSON bridge is unary only.
func (s *Server) RegisterService(desc *grpc.ServiceDesc, impl interface{}) {
	s.handlers.RegisterService(desc, impl)
	for i := range desc.Methods {
		md := &desc.Methods[i]
		path := fmt.Sprintf("/%s/%s", desc.ServiceName, md.MethodName)
		s.router.Handle(path, HandleMethod(impl, desc.ServiceName, md, s.opts...)).Methods(http.MethodPost)
	}
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
