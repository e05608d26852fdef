// Package v1 contains the dbconsole.v1 API: message types, enums and the
// unary gRPC service contracts with their REST bindings.
//
// Messages are encoded by internal/wire; importing this package registers
// wire.Codec as the gRPC "proto" codec.
package v1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"

	"github.com/idot-digital/dbconsole/internal/wire"
)

func init() {
	encoding.RegisterCodec(wire.Codec{})
}

// HTTPRule maps an RPC onto a REST route. Path uses the google.api.http
// template syntax, e.g. "/v1/{name=projects/*/policies/*}". Body names the
// request field filled from the HTTP body: "*" for the whole request, empty
// for none.
type HTTPRule struct {
	Method string
	Verb   string
	Path   string
	Body   string
}

func unaryHandler[S, Req, Resp any](fullMethod string, call func(S, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(S), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(S), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts ...grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
