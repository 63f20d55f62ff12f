// Package model defines the database row types for every API resource.
package model
