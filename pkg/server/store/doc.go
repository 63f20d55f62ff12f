// Package store abstracts resource persistence operations.
package store
