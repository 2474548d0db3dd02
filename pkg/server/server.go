/*
Copyright 2025 Flant JSC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

     http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	virtv1 "kubevirt.io/api/core/v1"

	"github.com/deckhouse/virtualization-console/pkg/actions"
	"github.com/deckhouse/virtualization-console/pkg/export"
	"github.com/deckhouse/virtualization-console/pkg/logger"
)

const (
	shutdownTimeout = 10 * time.Second

	// RequestIDHeader carries the request id. Incoming values are kept, otherwise a new one is generated.
	RequestIDHeader = "X-Request-Id"
)

type Console interface {
	Descriptors(ctx context.Context, namespace, name string, params actions.Params, review bool) ([]actions.Descriptor, error)
	Run(ctx context.Context, namespace, name string, id actions.ID, params actions.Params) error
	VirtualMachine(ctx context.Context, namespace, name string) (*virtv1.VirtualMachine, error)
}

type Exporter interface {
	Export(ctx context.Context, req export.Request) (*export.Result, error)
}

type APIServer struct {
	http.Server

	console  Console
	exporter Exporter
	log      *slog.Logger
}

func NewServer(addr string, console Console, exporter Exporter, gatherer prometheus.Gatherer, log *slog.Logger) *APIServer {
	s := &APIServer{
		console:  console,
		exporter: exporter,
		log:      log,
	}

	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Failed request", slog.String("method", r.Method), slog.String("url", r.URL.String()))
		writeError(w, http.StatusNotFound, errors.New(http.StatusText(http.StatusNotFound)))
	})

	router.Handle("/healthz", http.HandlerFunc(healthz)).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1/namespaces/{namespace}/virtualmachines/{name}").Subrouter()
	api.Use(s.contextLogger)
	api.HandleFunc("/actions", s.listActions).Methods(http.MethodGet)
	api.Handle("/actions/{action}", jsonOnly(http.HandlerFunc(s.runAction))).Methods(http.MethodPost)
	api.Handle("/export", jsonOnly(http.HandlerFunc(s.exportDisk))).Methods(http.MethodPost)

	if log.Enabled(context.Background(), slog.LevelDebug) {
		_ = router.Walk(func(route *mux.Route, _ *mux.Router, _ []*mux.Route) error {
			path, err := route.GetPathTemplate()
			if err != nil {
				path = ""
			}
			methods, err := route.GetMethods()
			if err != nil {
				methods = []string{}
			}
			log.Debug("Registered route", slog.String("methods", strings.Join(methods, ", ")), slog.String("path", path))
			return nil
		})
	}

	var h http.Handler = router
	h = handlers.CustomLoggingHandler(io.Discard, h, s.logRequest)
	h = requestID(h)
	h = handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{log: log}),
		handlers.PrintRecoveryStack(true),
	)(h)

	s.Server = http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 20 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      2 * time.Minute,
	}

	return s
}

// Run serves until the context is done, then shuts the server down gracefully.
func (s *APIServer) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("Starting API server", slog.String("address", s.Addr))
		errCh <- s.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start API server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.log.Info("Shutting down API server")
	return s.Shutdown(shutdownCtx)
}

func (s *APIServer) contextLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		log := s.log.With(
			logger.SlogRequestID(r.Header.Get(RequestIDHeader)),
			logger.SlogNamespace(vars["namespace"]),
			logger.SlogName(vars["name"]),
		)
		next.ServeHTTP(w, r.WithContext(logger.ToContext(r.Context(), log)))
	})
}

func (s *APIServer) logRequest(_ io.Writer, params handlers.LogFormatterParams) {
	s.log.Debug("Request served",
		logger.SlogRequestID(params.Request.Header.Get(RequestIDHeader)),
		slog.String("method", params.Request.Method),
		slog.String("url", params.URL.String()),
		slog.Int("status", params.StatusCode),
		slog.Int("size", params.Size),
		slog.Duration("duration", time.Since(params.TimeStamp)),
	)
}

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(RequestIDHeader, id)
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

func jsonOnly(h http.Handler) http.Handler {
	return handlers.ContentTypeHandler(h, "application/json")
}

type recoveryLogger struct {
	log *slog.Logger
}

func (l recoveryLogger) Println(v ...interface{}) {
	l.log.Error("Recovering from API handler panic", slog.String("panic", fmt.Sprint(v...)))
}
