package server

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "github.com/Jain-Tirth/Journalite/internal/errors"
)

type analyzeMoodRequest struct {
	Text string `json:"text"`
}

type userRequest struct {
	UserID string `json:"user_id"`
}

func (s *Server) handleWelcome(c echo.Context) error {
	return c.JSON(200, map[string]any{
		"service": "journalite-insights",
		"status":  "ok",
		"endpoints": []string{
			"POST /analyze-mood",
			"POST /auto-detect-mood",
			"POST /generate-insights",
			"POST /emotion-distribution",
			"POST /sentiment-analysis",
			"POST /word-cloud",
			"POST /writing-patterns",
			"POST /mood-correlations",
			"GET/PUT /users/:id/preferences",
		},
	})
}

func (s *Server) handleAnalyzeMood(c echo.Context) error {
	var req analyzeMoodRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}
	if strings.TrimSpace(req.Text) == "" {
		return apperrors.ValidationError("text is required")
	}

	result := s.app.DetectMood(c.Request().Context(), req.Text)
	if err := c.JSON(200, result); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleAutoDetectMood(c echo.Context) error {
	userID, err := bindUserID(c)
	if err != nil {
		return err
	}

	result, err := s.app.AutoDetectMoods(c.Request().Context(), userID)
	if err != nil {
		return apperrors.InternalError("failed to auto-detect moods", err).WithField("user_id", userID)
	}
	if err := c.JSON(200, result); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleGenerateInsights(c echo.Context) error {
	userID, err := bindUserID(c)
	if err != nil {
		return err
	}

	bundle, err := s.app.GenerateInsights(c.Request().Context(), userID)
	if err != nil {
		return apperrors.InternalError("failed to generate insights", err).WithField("user_id", userID)
	}
	if err := c.JSON(200, bundle); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleEmotionDistribution(c echo.Context) error {
	userID, err := bindUserID(c)
	if err != nil {
		return err
	}

	report, err := s.app.EmotionDistribution(c.Request().Context(), userID)
	if err != nil {
		return apperrors.InternalError("failed to compute emotion distribution", err).WithField("user_id", userID)
	}
	if err := c.JSON(200, map[string]any{"emotion_distribution": report}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleSentimentAnalysis(c echo.Context) error {
	userID, err := bindUserID(c)
	if err != nil {
		return err
	}

	report, err := s.app.SentimentAnalysis(c.Request().Context(), userID)
	if err != nil {
		return apperrors.InternalError("failed to compute sentiment analysis", err).WithField("user_id", userID)
	}
	if err := c.JSON(200, report); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleWordCloud(c echo.Context) error {
	userID, err := bindUserID(c)
	if err != nil {
		return err
	}

	report, err := s.app.WordCloud(c.Request().Context(), userID)
	if err != nil {
		return apperrors.InternalError("failed to compute word cloud", err).WithField("user_id", userID)
	}
	if err := c.JSON(200, map[string]any{"word_cloud": report}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleWritingPatterns(c echo.Context) error {
	userID, err := bindUserID(c)
	if err != nil {
		return err
	}

	report, err := s.app.WritingPatterns(c.Request().Context(), userID)
	if err != nil {
		return apperrors.InternalError("failed to compute writing patterns", err).WithField("user_id", userID)
	}
	if err := c.JSON(200, report); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleMoodCorrelations(c echo.Context) error {
	userID, err := bindUserID(c)
	if err != nil {
		return err
	}

	report, err := s.app.MoodCorrelations(c.Request().Context(), userID)
	if err != nil {
		return apperrors.InternalError("failed to compute mood correlations", err).WithField("user_id", userID)
	}
	if err := c.JSON(200, report); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleGetPreferences(c echo.Context) error {
	userID := c.Param("id")
	if userID == "" {
		return apperrors.ValidationError("user id is required")
	}

	prefs, err := s.app.Preferences(c.Request().Context(), userID)
	if err != nil {
		return apperrors.InternalError("failed to load preferences", err).WithField("user_id", userID)
	}
	if err := c.JSON(200, map[string]any{"preferences": prefs}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleUpdatePreferences(c echo.Context) error {
	userID := c.Param("id")
	if userID == "" {
		return apperrors.ValidationError("user id is required")
	}

	var prefs map[string]any
	if err := c.Bind(&prefs); err != nil {
		return apperrors.ValidationError("invalid request body")
	}
	if prefs == nil {
		return apperrors.ValidationError("preferences are required")
	}

	if err := s.app.UpdatePreferences(c.Request().Context(), userID, prefs); err != nil {
		return apperrors.InternalError("failed to update preferences", err).WithField("user_id", userID)
	}
	if err := c.JSON(200, map[string]string{"status": "ok"}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

// bindUserID extracts and validates the user_id field common to the
// analytics endpoints.
func bindUserID(c echo.Context) (string, error) {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return "", apperrors.ValidationError("invalid request body")
	}
	if strings.TrimSpace(req.UserID) == "" {
		return "", apperrors.ValidationError("user_id is required")
	}
	return req.UserID, nil
}
