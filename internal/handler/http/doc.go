// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Every request flows through a fixed pipeline — authentication where
// required, then payload validation, then the business handler — and every
// failure, no matter which stage raised it, funnels to a single terminal
// renderer that writes the uniform `{title, message, errors}` body exactly
// once.
package http
