package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"google.golang.org/grpc"

	v1pb "github.com/idot-digital/dbconsole/api/v1"
	"github.com/idot-digital/dbconsole/internal/gateway"
	"github.com/idot-digital/dbconsole/internal/middleware"
	"github.com/idot-digital/dbconsole/internal/server"
	"github.com/idot-digital/dbconsole/internal/store"
)

// HTTPHandlers implements the HTTP server handlers
type HTTPHandlers struct {
	server  *server.Server
	gateway *gateway.Gateway
}

// NewHTTPHandlers serves the REST bindings of every service in Services,
// calling impl through interceptor.
func NewHTTPHandlers(s *server.Server, impl *GRPCHandlers, interceptor grpc.UnaryServerInterceptor) (*HTTPHandlers, error) {
	g := gateway.New(interceptor, s.GetLogger())
	for _, svc := range Services {
		if err := g.Register(svc.Desc, impl, svc.Rules); err != nil {
			return nil, fmt.Errorf("register %s: %w", svc.Desc.ServiceName, err)
		}
	}
	h := &HTTPHandlers{server: s, gateway: g}
	g.OnResponse(v1pb.AuthService_Login_FullMethodName, h.setSessionCookie)
	g.OnResponse(v1pb.AuthService_Logout_FullMethodName, h.clearSessionCookie)
	g.Router().HandleFunc("/healthz", h.HealthHandler).Methods(http.MethodGet)
	g.Router().Use(middleware.Metrics)
	return h, nil
}

// Router exposes the gateway's router for mounting extra endpoints.
func (h *HTTPHandlers) Router() http.Handler {
	return h.gateway.Router()
}

func (h *HTTPHandlers) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.gateway.ServeHTTP(w, r)
}

// setSessionCookie hands browser logins their token as an HTTP only
// cookie.
func (h *HTTPHandlers) setSessionCookie(w http.ResponseWriter, req, resp any) {
	login, ok := req.(*v1pb.LoginRequest)
	if !ok || !login.Web {
		return
	}
	res, ok := resp.(*v1pb.LoginResponse)
	if !ok || res.Token == "" {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    res.Token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *HTTPHandlers) clearSessionCookie(w http.ResponseWriter, _, _ any) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

// HealthHandler reports whether the store answers.
func (h *HTTPHandlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	code, state := http.StatusOK, "ok"
	if _, err := h.server.GetStore().List(ctx, store.KindEnvironment, store.ListOptions{}); err != nil {
		h.server.GetLogger().Error("Health check failed", "error", err)
		code, state = http.StatusServiceUnavailable, "unavailable"
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"status": state})
}
