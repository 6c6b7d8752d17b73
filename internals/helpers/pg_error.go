// file: internals/helpers/pg_error.go
package helper

import (
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// IsUniqueViolation mendeteksi pelanggaran unique constraint Postgres (23505).
// Ini sinyal duplikat yang otoritatif; pre-check di service hanya jalur cepat.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}

// IsNotFound membungkus cek gorm.ErrRecordNotFound supaya controller tidak
// perlu import gorm hanya untuk satu errors.Is.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
