package delivery_http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"fanfic-blog-service/internal/logger"
)

type Server struct {
	handler *Handler
	server  *http.Server
	address string
	port    int
	log     *logger.Logger
}

func NewServer(handler *Handler, address string, port int, log *logger.Logger) *Server {
	return &Server{
		handler: handler,
		address: address,
		port:    port,
		log:     log,
	}
}

func (s *Server) Run() error {
	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", s.address, s.port),
		Handler:           s.handler.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.log.Info("Starting HTTP server", slog.Int("port", s.port))
	err := s.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
