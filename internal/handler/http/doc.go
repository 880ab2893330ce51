// Package http implements the local HTTP transport of the application.
//
// It mirrors the serverless about-page function on a chi router so the
// content pipeline can be run and inspected without a Lambda runtime.
// Request tracing, access logging and response compression are handled
// by middleware before requests reach the service layer.
package http
