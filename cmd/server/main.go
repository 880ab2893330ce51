package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/mywebclass-content/internal/config"
	"github.com/MKhiriev/mywebclass-content/internal/handler"
	"github.com/MKhiriev/mywebclass-content/internal/logger"
	"github.com/MKhiriev/mywebclass-content/internal/server"
	"github.com/MKhiriev/mywebclass-content/internal/service"
	"github.com/MKhiriev/mywebclass-content/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("mywebclass-content-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().
		Str("project_id", cfg.Sanity.ProjectID).
		Str("dataset", cfg.Sanity.Dataset).
		Str("api_version", cfg.Sanity.APIVersion).
		Bool("token_set", cfg.Sanity.ReadToken != "").
		Str("address", cfg.Server.HTTPAddress).
		Msg("received configs")

	services, err := service.NewServices(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
