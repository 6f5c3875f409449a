package main

import (
	"os"

	"github.com/ebdapp/cadastro/internal/bootstrap"
	"github.com/ebdapp/cadastro/internal/server"
)

func main() {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		os.Exit(1)
	}

	dbPool, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		lgr.Fatal().Err(err).Msg("Database setup failed")
	}

	deps, err := bootstrap.BuildDependencies(cfg, dbPool, lgr)
	if err != nil {
		lgr.Fatal().Err(err).Msg("Failed to build application dependencies")
	}

	router := bootstrap.SetupRouter(cfg, deps, lgr)

	srv := server.New(cfg, router, dbPool, lgr)
	if err := srv.Run(); err != nil {
		lgr.Fatal().Err(err).Msg("Server exited with error")
	}
}
