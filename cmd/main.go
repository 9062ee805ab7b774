// Package main is the entry point for the xslt-messages service.
//
// @title           XSLT Messages API
// @version         1.0.0
// @description     Localized message catalogs of an XSLT processor.
//
//	Resolves message keys to templates with locale fallback and reports unknown keys.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/xslt-messages
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for the admin routes. Required if authentication is enabled.
//
// @tag.name        Messages
// @tag.description Message template lookups
//
// @tag.name        Registry
// @tag.description Key registry, locales and catalog export
//
// @tag.name        Admin
// @tag.description Catalog verification and the unknown-key audit trail
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/guttosm/xslt-messages/docs" // swagger docs

	"github.com/guttosm/xslt-messages/config"
	"github.com/guttosm/xslt-messages/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	application, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	server := app.NewServer(application.Router, cfg.Server.Port)
	server.OnShutdown(application.Close)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
