// Package sanitize normalizes caller-supplied text before storage.
package sanitize
