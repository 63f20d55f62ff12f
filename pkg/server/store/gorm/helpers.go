package gorm

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/k3horizon/horizon-api/pkg/server/store"
)

// insertReturningID builds and runs an INSERT for the given changes
// plus server-side timestamps, and returns the generated id.
func insertReturningID(db *gorm.DB, table string, changes []store.Change) (int64, error) {
	columns := make([]string, 0, len(changes)+2)
	placeholders := make([]string, 0, len(changes)+2)
	args := make([]interface{}, 0, len(changes))

	for _, change := range changes {
		columns = append(columns, change.Column)
		placeholders = append(placeholders, "?")
		args = append(args, change.Value)
	}
	columns = append(columns, "created_at", "updated_at")
	placeholders = append(placeholders, "NOW()", "NOW()")

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		table,
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
	)

	var id int64
	result := db.Raw(query, args...).Scan(&id)
	if result.Error != nil {
		return 0, result.Error
	}
	return id, nil
}

// updateByID builds and runs an UPDATE for the given changes against a
// live row. Returns store.ErrNotFound when no live row matches.
func updateByID(db *gorm.DB, table string, id int64, changes []store.Change) error {
	assignments := make([]string, 0, len(changes)+1)
	args := make([]interface{}, 0, len(changes)+1)

	for _, change := range changes {
		assignments = append(assignments, change.Column+" = ?")
		args = append(args, change.Value)
	}
	assignments = append(assignments, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = ? AND deleted_at IS NULL",
		table,
		strings.Join(assignments, ", "),
	)

	result := db.Exec(query, args...)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// softDeleteByID marks a live row deleted. Returns store.ErrNotFound
// when no live row matches.
func softDeleteByID(db *gorm.DB, table string, id int64) error {
	query := fmt.Sprintf(
		"UPDATE %s SET deleted_at = NOW(), updated_at = NOW() WHERE id = ? AND deleted_at IS NULL",
		table,
	)

	result := db.Exec(query, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
