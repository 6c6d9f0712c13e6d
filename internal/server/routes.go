package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Observability endpoints
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.handleReadiness)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	s.echo.GET("/version", s.handleVersion)

	// Root - service welcome
	s.echo.GET("/", s.handleWelcome)

	// Mood detection
	s.echo.POST("/analyze-mood", s.handleAnalyzeMood)
	s.echo.POST("/auto-detect-mood", s.handleAutoDetectMood)

	// Analytics
	s.echo.POST("/generate-insights", s.handleGenerateInsights)
	s.echo.POST("/emotion-distribution", s.handleEmotionDistribution)
	s.echo.POST("/sentiment-analysis", s.handleSentimentAnalysis)
	s.echo.POST("/word-cloud", s.handleWordCloud)
	s.echo.POST("/writing-patterns", s.handleWritingPatterns)
	s.echo.POST("/mood-correlations", s.handleMoodCorrelations)

	// Preferences
	s.echo.GET("/users/:id/preferences", s.handleGetPreferences)
	s.echo.PUT("/users/:id/preferences", s.handleUpdatePreferences)
}
