package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/crichub/cricket-stats-service/internal/config"
	"github.com/crichub/cricket-stats-service/internal/handler"
	"github.com/crichub/cricket-stats-service/internal/logger"
	"github.com/crichub/cricket-stats-service/internal/repository"
	"github.com/crichub/cricket-stats-service/internal/repository/sqlite"
	"github.com/crichub/cricket-stats-service/internal/service"
)

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("config loading failed: %v", err)
	}

	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("logger initialization failed: %v", err)
	}

	ctx := context.Background()
	store, err := repository.Open(ctx, cfg, &appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("store open failed")
	}
	defer func() { _ = store.Close() }()

	schema := sqlite.NewSchemaManager(store.DB())
	if err := schema.Init(ctx); err != nil {
		appLogger.Fatal().Err(err).Msg("schema initialization failed")
	}
	appLogger.Info().Msg("schema ready")

	db := store.DB()
	tx := sqlite.NewTxManager(db)
	players := sqlite.NewPlayerRepository(db)
	teams := sqlite.NewTeamRepository(db)
	matches := sqlite.NewMatchRepository(db)
	scores := sqlite.NewScoreRepository(db)
	stats := sqlite.NewStatsRepository(db)

	svcs := handler.Services{
		Players: service.NewPlayerService(players, appLogger),
		Teams:   service.NewTeamService(teams, players, appLogger),
		Matches: service.NewMatchService(matches, teams, tx, appLogger),
		Scoring: service.NewScoringService(scores, matches, appLogger),
		Stats:   service.NewStatsService(stats, appLogger),
		Export:  service.NewExportService(scores, appLogger),
		Admin:   service.NewAdminService(schema, appLogger),
	}

	if cfg.Logger.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	handler.Register(engine, sqlite.NewPinger(db), svcs)

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: engine,
	}

	// signal.Notify requires the channel to be buffered
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			appLogger.Error().Err(err).Msg("graceful shutdown failed")
		}
	}()

	appLogger.Info().Str("addr", server.Addr).Msg("service started")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		appLogger.Fatal().Err(err).Msg("server closed unexpectedly")
	}
	appLogger.Info().Msg("server stopped")
}
