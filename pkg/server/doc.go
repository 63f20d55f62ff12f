// Package server wires the router, middleware chain and HTTP listener.
package server
