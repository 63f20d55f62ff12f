// Package gorm implements the store interfaces on PostgreSQL via GORM,
// using raw parameterized SQL throughout.
package gorm
