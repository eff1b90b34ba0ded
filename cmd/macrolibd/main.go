package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"macrolib/internal/config"
	"macrolib/internal/httpapi"
	"macrolib/internal/observer"
	"macrolib/internal/registry"
	"macrolib/internal/store"
	"macrolib/internal/usecase"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd constructs the daemon's command. Flags override config-file
// values; environment variables provide flag defaults.
func newRootCmd() *cobra.Command {
	defaultAddr := ":8080"
	if v := os.Getenv("MACROLIB_ADDR"); v != "" {
		defaultAddr = v
	}
	defaultLevel := "info"
	if v := os.Getenv("MACROLIB_LOG_LEVEL"); v != "" {
		defaultLevel = v
	}

	var (
		cfgPath     string
		addr        string
		logLevel    string
		modelTypes  []string
		redisAddr   string
		corsEnabled bool
		corsOrigins []string
	)

	root := &cobra.Command{
		Use:           "macrolibd",
		Short:         "Domain model/event factory daemon",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Config{}
			if cfgPath != "" {
				loaded, err := config.Load(cfgPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if cmd.Flags().Changed("addr") || cfg.Addr == "" {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("log-level") || cfg.LogLevel == "" {
				cfg.LogLevel = logLevel
			}
			if cmd.Flags().Changed("models") || len(cfg.ModelTypes) == 0 {
				cfg.ModelTypes = modelTypes
			}
			if cmd.Flags().Changed("redis-addr") {
				cfg.RedisAddr = redisAddr
			}
			if cmd.Flags().Changed("cors-enabled") {
				cfg.CORSEnabled = corsEnabled
			}
			if cmd.Flags().Changed("cors-origins") {
				cfg.CORSOrigins = corsOrigins
			}
			return run(cfg)
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "Path to config file (.yaml/.json/.toml)")
	root.Flags().StringVar(&addr, "addr", defaultAddr, "HTTP listen address, e.g. :8080")
	root.Flags().StringVar(&logLevel, "log-level", defaultLevel, "Log level: debug|info|warn|error")
	root.Flags().StringSliceVar(&modelTypes, "models", nil, "Model type names to expose, e.g. order,customer")
	root.Flags().StringVar(&redisAddr, "redis-addr", "", "Redis address for persistence (empty = in-memory)")
	root.Flags().BoolVar(&corsEnabled, "cors-enabled", false, "Enable CORS middleware")
	root.Flags().StringSliceVar(&corsOrigins, "cors-origins", []string{"*"}, "Allowed CORS origins")
	return root
}

func run(cfg config.Config) error {
	logger := newLogger(cfg.LogLevel)

	reg := registry.New()
	repo := newRepository(cfg, logger)
	obs := observer.New()
	svc := usecase.NewService(reg, repo, obs, logger)
	for _, modelType := range cfg.ModelTypes {
		if err := registerModelType(reg, modelType); err != nil {
			return err
		}
		if err := svc.Expose(modelType); err != nil {
			return err
		}
	}

	httpapi.SetLogger(logger)
	httpapi.SetCORSOptions(cfg.CORSEnabled, cfg.CORSOrigins,
		[]string{"GET", "POST", "PATCH", "DELETE"}, []string{"Content-Type", "X-Log-Level"})

	baseCtx, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()
	httpapi.SetBaseContext(baseCtx)

	mux := httpapi.NewMux(svc)
	srv := &http.Server{Addr: cfg.Addr, Handler: mux}

	go func() {
		logger.Info().Str("addr", cfg.Addr).Strs("models", cfg.ModelTypes).Msg("macrolibd listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown (Ctrl+C / SIGTERM)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	cancelBase()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown error")
	}
	return nil
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Str("service", "macrolibd").Logger()
}

func newRepository(cfg config.Config, logger zerolog.Logger) usecase.Repository {
	if cfg.RedisAddr == "" {
		return store.NewMemory()
	}
	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	logger.Info().Str("redis", cfg.RedisAddr).Msg("using redis persistence")
	return store.NewRedis(client)
}
