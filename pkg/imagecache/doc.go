// Package imagecache fetches external images once and serves them from
// a local content-addressed cache until expiry.
package imagecache
