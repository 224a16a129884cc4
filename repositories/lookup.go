package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// findByIDOrName resolves a user-supplied reference first as a primary
// key and, failing that, as an exact display name. Soft-deleted rows
// never match. Returns (nil, nil) when nothing matches.
//
// db may be a chained instance (e.g. carrying a Preload); each query
// starts from a fresh session so the id condition of the first probe
// cannot leak into the name fallback.
func findByIDOrName[T any](db *gorm.DB, ref string) (*T, error) {
	base := db.Session(&gorm.Session{})

	var byID T
	err := base.Where("id = ?", ref).First(&byID).Error
	if err == nil {
		return &byID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var byName T
	err = base.Where("name = ?", ref).First(&byName).Error
	if err == nil {
		return &byName, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return nil, err
}

// searchPattern builds the LIKE pattern for a case-insensitive
// substring match. Used with LOWER(column) LIKE ? so the same query
// runs on Postgres and the sqlite test store.
func searchPattern(term string) string {
	return "%" + strings.ToLower(term) + "%"
}
