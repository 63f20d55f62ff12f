package endpoints

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/k3horizon/horizon-api/pkg/sanitize"
	"github.com/k3horizon/horizon-api/pkg/server/response"
	"github.com/k3horizon/horizon-api/pkg/server/store"
)

// fieldSpec describes one recognized request field and the column it
// maps to. Unknown request fields are dropped before any SQL is built.
type fieldSpec struct {
	jsonKey   string
	column    string
	required  bool
	sanitized bool
	numeric   bool
}

func decodeBody(r *http.Request) (map[string]interface{}, error) {
	var body map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, err
	}
	return body, nil
}

// parseID reads the {id} path variable. A non-numeric id can never
// address a row, so the caller treats a failure as not found.
func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

// missingFields returns the required fields that are absent, null or
// blank in the request body.
func missingFields(body map[string]interface{}, fields []fieldSpec) []string {
	var missing []string
	for _, field := range fields {
		if !field.required {
			continue
		}
		value, ok := body[field.jsonKey]
		if !ok || value == nil {
			missing = append(missing, field.jsonKey)
			continue
		}
		if s, isString := value.(string); isString && strings.TrimSpace(s) == "" {
			missing = append(missing, field.jsonKey)
		}
	}
	return missing
}

// collectChanges translates recognized request fields into column
// assignments, sanitizing plain-text fields along the way.
func collectChanges(body map[string]interface{}, fields []fieldSpec) ([]store.Change, error) {
	var changes []store.Change
	for _, field := range fields {
		value, ok := body[field.jsonKey]
		if !ok {
			continue
		}
		if value == nil {
			changes = append(changes, store.Change{Column: field.column, Value: nil})
			continue
		}

		if field.numeric {
			number, isNumber := value.(float64)
			if !isNumber {
				return nil, fmt.Errorf("field %q must be a number", field.jsonKey)
			}
			changes = append(changes, store.Change{Column: field.column, Value: int64(number)})
			continue
		}

		text, isString := value.(string)
		if !isString {
			return nil, fmt.Errorf("field %q must be a string", field.jsonKey)
		}
		if field.sanitized {
			text = sanitize.Clean(text)
		}
		changes = append(changes, store.Change{Column: field.column, Value: text})
	}
	return changes, nil
}

// respondStoreError maps data-layer failures to envelope responses.
// Raw database error text never reaches the caller.
func respondStoreError(w http.ResponseWriter, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		response.Error(w, "Record not found", http.StatusNotFound)
	case errors.Is(err, store.ErrDuplicate):
		response.Error(w, "Record already exists", http.StatusConflict)
	default:
		log.Error("store operation failed", zap.Error(err))
		response.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
