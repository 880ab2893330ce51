// Package lambda adapts the content pipeline to the API Gateway proxy
// contract used by AWS Lambda and Netlify Functions.
//
// Handle never returns a non-nil error: every failure, including a panic
// raised below it, is turned into the static fallback response so the
// platform always receives a well-formed envelope.
package lambda
