// Package server exposes the HTTP API: mood detection, the analytics
// reports, batch auto-detection, per-user preferences, and the
// observability endpoints.
package server
