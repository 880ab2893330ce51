package main

import (
	"github.com/MKhiriev/mywebclass-content/internal/config"
	"github.com/MKhiriev/mywebclass-content/internal/handler"
	"github.com/MKhiriev/mywebclass-content/internal/logger"
	"github.com/MKhiriev/mywebclass-content/internal/service"
	"github.com/MKhiriev/mywebclass-content/models"
	"github.com/aws/aws-lambda-go/lambda"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// Configuration is read once per cold start; flags and files are not used
// inside the function runtime.
func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewLogger("mywebclass-content-lambda")
	cfg, err := config.GetStructuredConfig(nil)
	if err != nil {
		// Keep whatever parsed so one bad variable does not drop the Sanity
		// settings. A missing project id still serves the fallback page.
		log.Error().Err(err).Msg("error getting configs, using partial env config")
		cfg, _ = config.GetEnvConfig()
		cfg.Sanity.RequestTimeout = max(cfg.Sanity.RequestTimeout, 0)
	}

	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Msg("ignoring log level")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	services, err := service.NewServices(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	log.Info().Str("version", buildInfo.BuildVersion()).Msg("starting lambda handler")
	lambda.Start(handlers.Lambda.Handle)
}
