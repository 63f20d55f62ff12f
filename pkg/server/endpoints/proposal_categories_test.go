package endpoints

import (
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProposalCategoryMissingName(t *testing.T) {
	s, mock, err := NewMockTestServer()
	require.NoError(t, err)

	rec := doJSON(t, s.Router, http.MethodPost, "/proposalCategorys", `{}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.Equal(t, "Missing required fields", env.Error)
	assert.Contains(t, string(env.Errors), `"name"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateProposalCategoryDuplicateName(t *testing.T) {
	s, mock, err := NewMockTestServer()
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM proposal_categories WHERE name = (.+) AND deleted_at IS NULL`).
		WithArgs("K3 Umum").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	rec := doJSON(t, s.Router, http.MethodPost, "/proposalCategorys", `{"name": "K3 Umum"}`, true)
	assert.Equal(t, http.StatusConflict, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.Equal(t, "Record already exists", env.Error)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateProposalCategory(t *testing.T) {
	s, mock, err := NewMockTestServer()
	require.NoError(t, err)

	now := time.Now()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM proposal_categories WHERE name = (.+) AND deleted_at IS NULL`).
		WithArgs("K3 Umum").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(`INSERT INTO proposal_categories \(name, created_at, updated_at\) VALUES \((.+), NOW\(\), NOW\(\)\)`).
		WithArgs("K3 Umum").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT (.+) FROM proposal_categories WHERE name = (.+) AND deleted_at IS NULL`).
		WithArgs("K3 Umum").
		WillReturnRows(sqlmock.NewRows([]string{"name", "created_at", "updated_at"}).
			AddRow("K3 Umum", now, now))

	// The name is sanitized plain text, so markup is stripped first.
	rec := doJSON(t, s.Router, http.MethodPost, "/proposalCategorys", `{"name": "K3 <i>Umum</i>"}`, true)
	assert.Equal(t, http.StatusCreated, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Contains(t, string(env.Data), `"name":"K3 Umum"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchProposalCategoryByName(t *testing.T) {
	s, mock, err := NewMockTestServer()
	require.NoError(t, err)

	now := time.Now()
	mock.ExpectQuery(`SELECT (.+) FROM proposal_categories WHERE name = (.+) AND deleted_at IS NULL`).
		WithArgs("K3 Umum").
		WillReturnRows(sqlmock.NewRows([]string{"name", "created_at", "updated_at"}).
			AddRow("K3 Umum", now, now))

	rec := doJSON(t, s.Router, http.MethodGet, "/proposalCategorys/K3%20Umum", "", true)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteProposalCategoryNotFound(t *testing.T) {
	s, mock, err := NewMockTestServer()
	require.NoError(t, err)

	mock.ExpectExec(`UPDATE proposal_categories SET deleted_at = NOW\(\), updated_at = NOW\(\) WHERE name = (.+) AND deleted_at IS NULL`).
		WithArgs("Missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	rec := doJSON(t, s.Router, http.MethodDelete, "/proposalCategorys/Missing", "", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
