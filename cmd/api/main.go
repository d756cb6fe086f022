package main

import (
	"github.com/skillpath/lms-backend/docs"
	"github.com/skillpath/lms-backend/internal/bootstrap"
	"github.com/skillpath/lms-backend/internal/pkg/logger"
	"github.com/skillpath/lms-backend/internal/server"
)

// @title SkillPath LMS API
// @version 1.0
// @description Role-based learning management backend with sequential chapter progress, completion certificates and admin analytics.

// @contact.name SkillPath Backend Team

// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.
func main() {
	app, err := bootstrap.App()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize application")
	}
	defer app.DB.Close()

	docs.SwaggerInfo.BasePath = "/api/v1"

	srv := server.New(app.Config, app.Router)
	if err := srv.Run(); err != nil {
		logger.Fatal().Err(err).Msg("Server error")
	}
}
