package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vincentbai/watss-forms/internal/export"
	"github.com/vincentbai/watss-forms/internal/relay"
	"github.com/vincentbai/watss-forms/internal/submissions"
)

// Options selects the page variant and site settings. Exactly one of
// Store (local variant) or Relay (relay variant) is used for submissions.
type Options struct {
	Relay       *relay.Client
	StaticDir   string
	Filename    string
	EventLabels []string
}

type Server struct {
	store   *submissions.Store
	relay   *relay.Client
	options Options
	address string
	logger  *zap.Logger
	server  *http.Server
}

func NewServer(store *submissions.Store, address string, options Options, logger *zap.Logger) *Server {
	if options.Filename == "" {
		options.Filename = export.DefaultFilename
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		store:   store,
		relay:   options.Relay,
		options: options,
		address: address,
		logger:  logger.Named("server"),
	}
}

func (s *Server) relayVariant() bool {
	return s.relay != nil
}

// writeTimeout leaves room for a full relay round trip before the reply is cut off.
func (s *Server) writeTimeout() time.Duration {
	if s.relayVariant() {
		return s.relay.Timeout() + 5*time.Second
	}
	return 5 * time.Second
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.server = &http.Server{
		Addr:         s.address,
		Handler:      s.Handler(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: s.writeTimeout(),
	}

	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	s.logBanner(listener.Addr())

	group, groupContext := errgroup.WithContext(ctx)
	group.Go(func() error {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupContext.Done()
		s.logger.Info("shutting down server")

		shutdownContext, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.server.Shutdown(shutdownContext); err != nil {
			return err
		}
		s.logger.Info("server exited")
		return nil
	})
	return group.Wait()
}

func (s *Server) logBanner(addr net.Addr) {
	variant := "local"
	if s.relayVariant() {
		variant = "relay"
	}
	fields := []zap.Field{zap.String("variant", variant), zap.String("local", "http://"+addr.String())}
	if tcp, ok := addr.(*net.TCPAddr); ok && tcp.IP.IsUnspecified() {
		fields = append(fields, zap.String("network", "http://"+net.JoinHostPort(LocalIP(), strconv.Itoa(tcp.Port))))
	}
	if s.options.StaticDir != "" {
		fields = append(fields, zap.String("static_dir", s.options.StaticDir))
	}
	s.logger.Info("watss form agent listening", fields...)
}

// LocalIP finds the LAN address by opening a UDP socket; no packet is sent.
func LocalIP() string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return "127.0.0.1"
	}
	defer conn.Close()
	if addr, ok := conn.LocalAddr().(*net.UDPAddr); ok {
		return addr.IP.String()
	}
	return "127.0.0.1"
}
