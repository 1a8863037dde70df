// Command asistencia-mcp serves the attendance reporting tools over
// JSON-RPC: HTTP + SSE when PORT is set, stdio otherwise
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"asistencia/internal/mcp"
	"asistencia/internal/mcp/transport"
	"asistencia/internal/modkit"
	"asistencia/internal/modkit/module"
	"asistencia/internal/platform/config"
	"asistencia/internal/platform/logger"
	phttp "asistencia/internal/platform/net/http"
	"asistencia/internal/platform/net/middleware"
	"asistencia/internal/platform/store"

	empmodule "asistencia/internal/services/empleados/module"
	nommodule "asistencia/internal/services/nomina/module"
	regmodule "asistencia/internal/services/registros/module"
	repmodule "asistencia/internal/services/reportes/module"

	"github.com/go-chi/chi/v5"
)

const shutdownGrace = 10 * time.Second

func main() {
	root := config.New()
	httpMode := root.Has("PORT")

	// in stdio mode the wire protocol owns stdout
	logOpts := logger.FromEnv()
	if !httpMode {
		logOpts.Writer = os.Stderr
	}
	logger.Init(logOpts)
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// the pool connects lazily so the service comes up even when the
	// database is down and surfaces the outage per request
	st, err := store.Open(ctx, store.Config{
		AppName: mcp.ServerName,
		PG: store.PGConfig{
			Enabled:     true,
			URL:         root.MustString("DATABASE_URL_ASYNC"),
			FallbackURL: root.MayString("DATABASE_URL_FALLBACK", ""),
			MaxConns:    int32(root.MayInt("DB_MAX_CONNS", 10)),
			SlowQueryMs: root.MayInt("DB_SLOW_MS", 500),
			LogSQL:      root.MayBool("DB_LOG_SQL", false),
		},
	}, store.WithLogger(*log))
	if err != nil {
		log.Fatal().Err(err).Msg("store.Open failed")
	}

	if err := st.Guard(ctx); err != nil {
		log.Warn().Err(err).Msg("database unreachable at startup, serving anyway")
	}

	deps := modkit.Deps{Log: log, Cfg: root, PG: st.PG}

	emp := empmodule.New(deps)
	module.Register(emp.Name(), emp.Ports())

	// reportes resolves employee names through the empleados lector port
	empPorts, ok := module.PortsAs[empmodule.Ports](emp.Name())
	if !ok {
		log.Fatal().Msg("empleados ports not registered")
	}

	reg := regmodule.New(deps)
	rep := repmodule.New(deps, empPorts.Lector)
	nom := nommodule.New(deps)

	registry := mcp.NewRegistry()
	for _, m := range []module.Module{emp, reg, rep, nom} {
		m.RegisterTools(registry)
		module.Register(m.Name(), m.Ports())
	}
	registry.Freeze()
	log.Info().Int("tools", registry.Len()).Msg("tool registry frozen")

	d := mcp.NewDispatcher(registry)

	if httpMode {
		runHTTP(ctx, root, d, log)
	} else if err := transport.ServeStdio(ctx, d, os.Stdin, os.Stdout); err != nil && err != context.Canceled {
		log.Error().Err(err).Msg("stdio transport stopped")
	}

	closeCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := st.Close(closeCtx); err != nil {
		log.Error().Err(err).Msg("failed to close store")
	}
}

func runHTTP(ctx context.Context, cfg config.Conf, d *mcp.Dispatcher, log *logger.Logger) {
	srv := phttp.NewServer(cfg, func(m *chi.Mux) {
		m.Use(middleware.Defaults()...)
		m.Use(middleware.CORS(middleware.CORSOptions{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"*"},
		}))
	})
	transport.Mount(srv.Router(), d)

	errc := make(chan error, 1)
	go func() { errc <- srv.Run(ctx) }()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
		}
	case err := <-errc:
		if err != nil {
			log.Fatal().Err(err).Msg("http server stopped")
		}
	}
}
