package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	authctrl "servicecenter/internal/auth/controller"
	"servicecenter/internal/auth/middleware"
	"servicecenter/internal/domain"
	masterctrl "servicecenter/internal/master/controller"
	orderctrl "servicecenter/internal/order/controller"
)

type Controllers struct {
	Auth   *authctrl.AuthController
	Order  *orderctrl.OrderController
	Master *masterctrl.MasterController
}

func NewRouter(ctrls Controllers, tokens middleware.TokenParser, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(requestLogger(logger))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", ctrls.Auth.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(tokens, logger))

			r.Post("/auth/logout", ctrls.Auth.Logout)
			r.Get("/auth/me", ctrls.Auth.Me)
			r.Get("/dashboard", ctrls.Order.Dashboard)

			r.Get("/orders", ctrls.Order.List)
			r.Get("/orders/{orderId}", ctrls.Order.Get)
			r.Get("/orders/{orderId}/totals", ctrls.Order.Totals)
			r.Get("/masters", ctrls.Master.List)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(logger, domain.RoleManager))

				r.Post("/orders", ctrls.Order.Create)
				r.Put("/orders/{orderId}", ctrls.Order.Update)
				r.Delete("/orders/{orderId}", ctrls.Order.Delete)
				r.Get("/masters/stats", ctrls.Master.Stats)
			})
		})
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
				zap.String("requestId", chimw.GetReqID(r.Context())),
			)
		})
	}
}
