// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"goa.design/clue/health"
	goahttp "goa.design/goa/v3/http"

	"github.com/linuxfoundation/lfx-v2-family-service/cmd/family-api/service"
	"github.com/linuxfoundation/lfx-v2-family-service/internal/middleware"
	"github.com/linuxfoundation/lfx-v2-family-service/pkg/constants"
)

// newHTTPHandler mounts the member API with the operational endpoints and wraps it
// in the middleware chain. exposeMetrics adds the Prometheus scrape endpoint.
func newHTTPHandler(svc *service.FamilyService, checker health.Checker, exposeMetrics bool) http.Handler {
	operational := []service.Endpoint{
		{Method: http.MethodGet, Pattern: "/livez", Handler: livez},
		{Method: http.MethodGet, Pattern: "/readyz", Handler: health.Handler(checker)},
	}
	if exposeMetrics {
		operational = append(operational, service.Endpoint{
			Method:  http.MethodGet,
			Pattern: "/metrics",
			Handler: promhttp.Handler().ServeHTTP,
		})
	}

	mux := goahttp.NewMuxer()
	svc.Mount(mux, operational...)

	var handler http.Handler = mux
	handler = middleware.BodyLimitMiddleware(constants.MaxRequestBodyBytes)(handler)
	handler = middleware.CORSMiddleware()(handler)
	handler = middleware.RequestIDMiddleware()(handler)
	handler = otelhttp.NewHandler(handler, constants.ServiceName)

	return handler
}

// livez answers liveness probes without touching dependencies
func livez(w http.ResponseWriter, r *http.Request) {
	slog.DebugContext(r.Context(), "liveness check completed successfully")
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("OK"))
}

// runHTTPServer serves until ctx is cancelled, then shuts down gracefully
func runHTTPServer(ctx context.Context, srv *http.Server) error {
	errc := make(chan error, 1)

	go func() {
		slog.InfoContext(ctx, "HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err, ok := <-errc:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	slog.InfoContext(ctx, "shutting down HTTP server", "addr", srv.Addr)

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), constants.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errc
}
