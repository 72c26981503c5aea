package repositories

import (
	"database/sql"
	"encoding/json"
)

// jsonCol marshals a slice-valued field for a JSON column. Empty slices
// are stored as [] rather than NULL so reads stay uniform.
func jsonCol(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil || b == nil {
		return []byte("[]")
	}
	return b
}

// scanJSON unmarshals a nullable JSON column into dst, leaving dst alone
// when the column is NULL or holds garbage.
func scanJSON(raw sql.NullString, dst any) {
	if !raw.Valid || raw.String == "" {
		return
	}
	_ = json.Unmarshal([]byte(raw.String), dst)
}
