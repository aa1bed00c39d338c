// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrConflict indicates that a venue or artist cannot be
// deleted because shows still reference it, while ErrForeignKey
// signals that a show points at an artist or venue that does not
// exist.
package repository

import (
	"errors"
	"strings"
)

// ErrConflict is returned when a delete cannot be performed because of
// dependent records, such as attempting to delete a venue that still
// has shows scheduled. Handlers should translate this into an HTTP
// 409 response. Deletes never cascade: either the owner has no shows
// and the delete succeeds, or it fails with this error.
var ErrConflict = errors.New("conflict")

// ErrForeignKey is returned when an insert or update references a row
// that does not exist, such as creating a show with an unknown
// artist_id or venue_id. Handlers should translate this into an HTTP
// 409 response. The failed statement is rolled back in full; no
// partial write is visible.
var ErrForeignKey = errors.New("foreign key violation")

// MySQL error numbers surfaced by the driver that the repositories
// classify into sentinel errors.
const (
	mysqlErrRowIsReferenced = "1451" // cannot delete parent row: FK restricts
	mysqlErrNoReferencedRow = "1452" // cannot add child row: referenced row missing
)

// isMySQLErr reports whether err carries the given MySQL error number.
// The driver formats errors as "Error NNNN: ...", so a substring check
// on the number is sufficient and avoids a hard dependency on the
// driver's error type in every call site.
func isMySQLErr(err error, num string) bool {
	return err != nil && strings.Contains(err.Error(), num)
}
