// Package endpoints implements the HTTP handlers for every API resource,
// the root directory and the image proxy.
package endpoints
