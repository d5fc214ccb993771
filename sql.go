package prefid

import (
	"database/sql/driver"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

// Value stores the identifier as its textual encoding.
func (id ID[P]) Value() (driver.Value, error) {
	return id.String(), nil
}

// Scan reads an identifier from a string or []byte column. A NULL column scans
// to the zero identifier.
func (id *ID[P]) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*id = ID[P]{}
		return nil
	case string:
		return id.decode(v)
	case []byte:
		return id.decode(string(v))
	default:
		return fmt.Errorf("scan %q ID: unsupported source type %T", id.Prefix(), src)
	}
}

// TextValue implements pgtype.TextValuer.
func (id ID[P]) TextValue() (pgtype.Text, error) {
	return pgtype.Text{String: id.String(), Valid: true}, nil
}

// ScanText implements pgtype.TextScanner.
func (id *ID[P]) ScanText(v pgtype.Text) error {
	if !v.Valid {
		*id = ID[P]{}
		return nil
	}
	return id.decode(v.String)
}
