package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"cricket-insights-go/internal/config"
	"cricket-insights-go/internal/logger"
	"cricket-insights-go/internal/metrics"
	"cricket-insights-go/internal/processor"
	"cricket-insights-go/internal/types"
)

// Server is the HTTP surface the external presentation layer talks to.
type Server struct {
	cfg        *config.Config
	proc       *processor.Processor
	demo       *types.MatchData // optional preloaded record for /api/demo
	httpServer *http.Server
}

func New(cfg *config.Config, proc *processor.Processor, demo *types.MatchData) *Server {
	return &Server{cfg: cfg, proc: proc, demo: demo}
}

func (s *Server) Start() error {
	router := mux.NewRouter()
	router.HandleFunc("/healthz", s.handleHealth).Methods("GET")
	router.Handle("/metrics", metrics.Handler()).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/explain", s.handleExplain).Methods("POST")
	api.HandleFunc("/demo", s.handleDemo).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	s.httpServer = &http.Server{
		Addr:         ":" + s.cfg.Server.Port,
		Handler:      c.Handler(router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	logger.Component("server").WithField("addr", s.httpServer.Addr).Info("listening")
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	logger.New().WithRequest(r).Info("health check")
	w.Write([]byte("ok"))
}

func (s *Server) handleExplain(w http.ResponseWriter, r *http.Request) {
	reqLog := logger.New().WithRequest(r).WithField("handler", "explain")
	metrics.RequestsTotal.WithLabelValues("explain").Inc()

	var req processor.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		reqLog.WithError(err).Warn("bad request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.OCRText == "" && req.ImageURL == "" {
		reqLog.Warn("missing ocr_text and image_url")
		http.Error(w, "missing ocr_text or image_url", http.StatusBadRequest)
		return
	}

	start := time.Now()
	res := s.proc.Explain(req)
	reqLog.WithField("duration_ms", time.Since(start).Milliseconds()).
		WithField("category", res.Category).Info("explain finished")
	writeJSON(w, reqLog, res)
}

func (s *Server) handleDemo(w http.ResponseWriter, r *http.Request) {
	reqLog := logger.New().WithRequest(r).WithField("handler", "demo")
	metrics.RequestsTotal.WithLabelValues("demo").Inc()
	reqLog.Info("demo invoked")

	if s.demo == nil {
		http.Error(w, "no demo match data configured", http.StatusNotFound)
		return
	}
	writeJSON(w, reqLog, s.proc.DemoMatch(*s.demo))
}

func writeJSON(w http.ResponseWriter, log *logrus.Entry, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.WithError(err).Error("failed to write response")
	}
}
