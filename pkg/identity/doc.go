// Package identity carries the authenticated caller identity through
// the request context.
package identity
