package logging

import (
	"io"
	"log/slog"
	"strings"
)

type Environment string

const (
	EnvDev     Environment = "dev"
	EnvStaging Environment = "staging"
	EnvProd    Environment = "prod"
)

// Module names the subsystem a log line belongs to.
type Module string

type ServiceInfo struct {
	Name     string
	Version  string
	Revision string
}

type Config struct {
	Level         string
	Service       ServiceInfo
	Environment   Environment
	DefaultModule Module
	// GCPProjectID enables Cloud Logging trace correlation fields.
	GCPProjectID string
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds a JSON logger that also stamps the request and module
// carried on the context.
func NewLogger(w io.Writer, cfg Config) *slog.Logger {
	base := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       ParseLevel(cfg.Level),
		ReplaceAttr: replaceAttr,
	})

	attrs := make([]slog.Attr, 0, 4)
	if cfg.Service.Name != "" {
		attrs = append(attrs, slog.Group("service",
			slog.String("name", cfg.Service.Name),
			slog.String("version", cfg.Service.Version),
			slog.String("revision", cfg.Service.Revision),
		))
	}

	if cfg.Environment != "" {
		attrs = append(attrs, slog.String("env", string(cfg.Environment)))
	}

	return slog.New(newContextHandler(base.WithAttrs(attrs), cfg.DefaultModule, cfg.GCPProjectID))
}

func replaceAttr(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey {
		// Cloud Logging reads severity.
		a.Key = "severity"
	}

	return a
}
