// Package middleware provides the HTTP authentication gate.
package middleware
