// Package domain holds the core types and interfaces of the insights
// service: journal entries, mood detection results, analytics reports, and
// the contracts for storage, caching, and the external model collaborators.
//
// Packages in internal/ depend on domain, never the other way around.
package domain
