package httpserver

import "time"

// Config is the environment form of the server options.
type Config struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// Option configures a Server.
type Option func(*Server)

func WithAddr(addr string) Option {
	if addr == "" {
		panic("WithAddr: addr cannot be empty")
	}
	return func(s *Server) { s.cfg.Addr = addr }
}

func WithReadTimeout(d time.Duration) Option {
	return func(s *Server) { s.cfg.ReadTimeout = d }
}

func WithWriteTimeout(d time.Duration) Option {
	return func(s *Server) { s.cfg.WriteTimeout = d }
}

func WithShutdownTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("WithShutdownTimeout: duration must be > 0")
	}
	return func(s *Server) { s.cfg.ShutdownTimeout = d }
}

// WithConfig applies the non-zero fields of cfg.
func WithConfig(cfg Config) Option {
	return func(s *Server) {
		if cfg.Addr != "" {
			s.cfg.Addr = cfg.Addr
		}
		if cfg.ReadTimeout > 0 {
			s.cfg.ReadTimeout = cfg.ReadTimeout
		}
		if cfg.WriteTimeout > 0 {
			s.cfg.WriteTimeout = cfg.WriteTimeout
		}
		if cfg.ShutdownTimeout > 0 {
			s.cfg.ShutdownTimeout = cfg.ShutdownTimeout
		}
	}
}
