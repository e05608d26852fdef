// Package gateway serves the REST bindings of the gRPC services. Requests
// are routed with gorilla/mux from the HTTPRule tables and dispatched to the
// service implementations in process, through the same interceptor chain as
// the gRPC server.
package gateway

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gorilla/mux"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1pb "github.com/idot-digital/dbconsole/api/v1"
	"github.com/idot-digital/dbconsole/internal/wire"
)

const defaultMaxBodyBytes = 32 << 20

// ResponseHook adjusts the HTTP response of a successful call before the
// body is written, e.g. to set a cookie.
type ResponseHook func(w http.ResponseWriter, req, resp any)

type Gateway struct {
	router      *mux.Router
	interceptor grpc.UnaryServerInterceptor
	logger      *slog.Logger
	hooks       map[string]ResponseHook
	maxBody     int64
}

func New(interceptor grpc.UnaryServerInterceptor, logger *slog.Logger) *Gateway {
	return &Gateway{
		router:      mux.NewRouter(),
		interceptor: interceptor,
		logger:      logger,
		hooks:       make(map[string]ResponseHook),
		maxBody:     defaultMaxBodyBytes,
	}
}

// Router exposes the underlying router so other endpoints can be mounted
// next to the API.
func (g *Gateway) Router() *mux.Router {
	return g.router
}

func (g *Gateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.router.ServeHTTP(w, r)
}

// OnResponse registers a hook for calls of fullMethod.
func (g *Gateway) OnResponse(fullMethod string, hook ResponseHook) {
	g.hooks[fullMethod] = hook
}

// Register adds a route for every rule. impl must implement the service's
// HandlerType.
func (g *Gateway) Register(desc *grpc.ServiceDesc, impl any, rules []v1pb.HTTPRule) error {
	methods := make(map[string]grpc.MethodDesc, len(desc.Methods))
	for _, m := range desc.Methods {
		methods[m.MethodName] = m
	}
	for _, rule := range rules {
		md, ok := methods[rule.Method]
		if !ok {
			return fmt.Errorf("gateway: %s has no method %s", desc.ServiceName, rule.Method)
		}
		tpl, err := Template(rule.Path)
		if err != nil {
			return fmt.Errorf("gateway: %s.%s: %w", desc.ServiceName, rule.Method, err)
		}
		g.router.Handle(tpl, &route{
			gateway:    g,
			impl:       impl,
			method:     md,
			rule:       rule,
			fullMethod: "/" + desc.ServiceName + "/" + md.MethodName,
		}).Methods(rule.Verb)
	}
	return nil
}

// Template converts a google.api.http path such as
// "/v1/{name=projects/*/policies/*}:undelete" into a mux path template. A
// "*" segment matches one name segment and "**" the rest of the path.
func Template(path string) (string, error) {
	var b strings.Builder
	rest := path
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			b.WriteString(rest)
			return b.String(), nil
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			return "", fmt.Errorf("unbalanced braces in %q", path)
		}
		b.WriteString(rest[:open])
		field, pattern, found := strings.Cut(rest[open+1:open+end], "=")
		if field == "" {
			return "", fmt.Errorf("empty variable in %q", path)
		}
		if !found {
			pattern = "*"
		}
		segments := strings.Split(pattern, "/")
		for i, s := range segments {
			switch s {
			case "*":
				segments[i] = `[^/:]+`
			case "**":
				segments[i] = `.+`
			default:
				segments[i] = regexp.QuoteMeta(s)
			}
		}
		fmt.Fprintf(&b, "{%s:%s}", field, strings.Join(segments, "/"))
		rest = rest[open+end+1:]
	}
}

type route struct {
	gateway    *Gateway
	impl       any
	method     grpc.MethodDesc
	rule       v1pb.HTTPRule
	fullMethod string
}

func (rt *route) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req any
	r.Body = http.MaxBytesReader(w, r.Body, rt.gateway.maxBody)
	dec := func(in any) error {
		req = in
		if err := bind(r, rt.rule, mux.Vars(r), in); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				return status.Errorf(codes.InvalidArgument, "request body exceeds the %s limit", humanize.IBytes(uint64(tooLarge.Limit)))
			}
			return status.Error(codes.InvalidArgument, err.Error())
		}
		return nil
	}
	resp, err := rt.method.Handler(rt.impl, r.Context(), dec, rt.gateway.interceptor)
	if err != nil {
		rt.gateway.writeError(w, err)
		return
	}
	if hook := rt.gateway.hooks[rt.fullMethod]; hook != nil {
		hook(w, req, resp)
	}
	body, err := wire.MarshalJSON(resp)
	if err != nil {
		rt.gateway.logger.Error("Failed to encode response", "method", rt.fullMethod, "error", err)
		rt.gateway.writeError(w, status.Error(codes.Internal, "failed to encode response"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// bind fills the request message: the body first, then path variables, then
// query parameters for the fields the body does not cover.
func bind(r *http.Request, rule v1pb.HTTPRule, vars map[string]string, in any) error {
	if rule.Body != "" {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return fmt.Errorf("read body: %w", err)
		}
		if len(bytes.TrimSpace(body)) > 0 {
			if rule.Body == "*" {
				err = wire.UnmarshalJSON(body, in)
			} else {
				err = wire.UnmarshalJSONField(body, in, rule.Body)
			}
			if err != nil {
				return fmt.Errorf("invalid body: %w", err)
			}
		}
	}
	for field, value := range vars {
		if err := wire.SetField(in, field, value); err != nil {
			return err
		}
	}
	if rule.Body == "*" {
		return nil
	}
	for key, values := range r.URL.Query() {
		for _, v := range values {
			if err := wire.SetField(in, key, v); err != nil {
				return fmt.Errorf("query parameter %q: %w", key, err)
			}
		}
	}
	return nil
}

func (g *Gateway) writeError(w http.ResponseWriter, err error) {
	st := status.Convert(err)
	body, merr := wire.MarshalJSON(st.Proto())
	if merr != nil {
		g.logger.Error("Failed to encode error", "error", merr)
		http.Error(w, st.Message(), HTTPStatusFromCode(st.Code()))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(HTTPStatusFromCode(st.Code()))
	w.Write(body)
}

// HTTPStatusFromCode maps a gRPC code to the HTTP status the REST API
// answers with.
func HTTPStatusFromCode(code codes.Code) int {
	switch code {
	case codes.OK:
		return http.StatusOK
	case codes.Canceled:
		return 499
	case codes.InvalidArgument, codes.FailedPrecondition, codes.OutOfRange:
		return http.StatusBadRequest
	case codes.DeadlineExceeded:
		return http.StatusGatewayTimeout
	case codes.NotFound:
		return http.StatusNotFound
	case codes.AlreadyExists, codes.Aborted:
		return http.StatusConflict
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.ResourceExhausted:
		return http.StatusTooManyRequests
	case codes.Unimplemented:
		return http.StatusNotImplemented
	case codes.Unavailable:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
