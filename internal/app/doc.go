// Package app provides the application context for packcfg.
// It allows dependency injection for testing.
package app
