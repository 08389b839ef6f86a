package http

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"time"

	"github.com/blogkit/url2md"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// ShutdownTimeout is how long in-flight requests get to finish when the
// server closes.
const ShutdownTimeout = 5 * time.Second

// Server exposes the article extraction service over a JSON API.
type Server struct {
	ln     net.Listener
	server *http.Server
	logger zerolog.Logger

	// Addr is the bind address, e.g. ":8080". Set before Open.
	Addr string

	// ArticleService handles extraction requests.
	ArticleService url2md.ArticleService

	// Limiter throttles incoming requests when set.
	Limiter *rate.Limiter
}

// NewServer creates a Server. Routes are registered immediately; the
// server does not accept connections until Open is called.
func NewServer(logger zerolog.Logger) *Server {
	s := &Server{logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /extract", s.handleExtract)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	var handler http.Handler = mux
	handler = s.throttle(handler)
	handler = s.cors(handler)
	handler = s.logRequests(handler)
	handler = s.recoverPanics(handler)

	s.server = &http.Server{Handler: handler}

	return s
}

// Open begins listening on s.Addr and serves requests on a background
// goroutine.
func (s *Server) Open() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	s.ln = ln

	go func() {
		if err := s.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.logger.Error().Err(err).Msg("http server terminated")
		}
	}()

	return nil
}

// Close gracefully shuts the server down.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// URL returns the base URL the server is reachable at. Useful in tests
// where the listener port is assigned by the OS.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

type extractRequest struct {
	URL string `json:"url"`
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, url2md.Errorf(url2md.EINVALID, "invalid request body"))
		return
	}
	if req.URL == "" {
		s.writeError(w, r, url2md.Errorf(url2md.EINVALID, "missing url parameter"))
		return
	}

	article, err := s.ArticleService.ExtractURL(r.Context(), req.URL)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(article); err != nil {
		s.logger.Error().Err(err).Msg("encode response")
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code, message := url2md.ErrorCode(err), url2md.ErrorMessage(err)

	if code == url2md.EINTERNAL {
		s.logger.Error().Err(err).Str("path", r.URL.Path).Msg("internal error")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusFromCode(code))
	json.NewEncoder(w).Encode(errorResponse{Error: message})
}

func statusFromCode(code string) int {
	switch code {
	case url2md.EINVALID:
		return http.StatusBadRequest
	case url2md.ENOTFOUND:
		return http.StatusNotFound
	case url2md.EUNPROCESSABLE:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) recoverPanics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				s.logger.Error().Interface("panic", v).Str("path", r.URL.Path).Msg("panic recovered")
				s.writeError(w, r, url2md.Errorf(url2md.EINTERNAL, "internal error"))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		s.logger.Info().
			Str("request_id", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", sw.status).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, apikey, x-client-info")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) throttle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.Limiter != nil && !s.Limiter.Allow() {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			json.NewEncoder(w).Encode(errorResponse{Error: "too many requests"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// statusWriter wraps http.ResponseWriter to capture the status code.
type statusWriter struct {
	http.ResponseWriter
	status int
	wrote  bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wrote {
		w.status = code
		w.wrote = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.wrote {
		w.status = http.StatusOK
		w.wrote = true
	}
	return w.ResponseWriter.Write(b)
}
