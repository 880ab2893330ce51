// Package server runs the local HTTP server that mirrors the serverless
// about-page function, including startup, signal handling and graceful
// shutdown.
package server
