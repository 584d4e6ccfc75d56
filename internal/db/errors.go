package db

import (
	"errors"

	"github.com/lib/pq"
)

const (
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

func pqCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

func IsUniqueViolation(err error) bool {
	return pqCode(err) == codeUniqueViolation
}

func IsForeignKeyViolation(err error) bool {
	return pqCode(err) == codeForeignKeyViolation
}

// IsTxConflict reports whether err means the transaction lost a race with a
// concurrent one and was aborted by the database.
func IsTxConflict(err error) bool {
	switch pqCode(err) {
	case codeSerializationFailure, codeDeadlockDetected:
		return true
	}
	return false
}
