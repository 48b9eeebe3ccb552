package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// parseNullableTime parses a sql.NullString into a *time.Time.
func parseNullableTime(s sql.NullString) (*time.Time, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// nullableTimeToString converts a *time.Time into a value suitable for
// SQLite storage (NULL when nil).
func nullableTimeToString(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(time.RFC3339Nano)
}

// criteriaToJSON serializes a rubric-criteria list as a JSON array. A nil
// slice stores as an empty array so round-trips stay symmetric.
func criteriaToJSON(criteria []string) (string, error) {
	if criteria == nil {
		criteria = []string{}
	}
	data, err := json.Marshal(criteria)
	if err != nil {
		return "", fmt.Errorf("encoding criteria: %w", err)
	}
	return string(data), nil
}

// criteriaFromJSON parses a stored JSON criteria array. Empty arrays come
// back as nil to match freshly built assessments.
func criteriaFromJSON(raw string) ([]string, error) {
	var criteria []string
	if err := json.Unmarshal([]byte(raw), &criteria); err != nil {
		return nil, fmt.Errorf("decoding criteria: %w", err)
	}
	if len(criteria) == 0 {
		return nil, nil
	}
	return criteria, nil
}
