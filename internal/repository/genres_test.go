package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeGenres(t *testing.T) {
	assert.Equal(t, "Jazz,Rock n Roll,Classical", encodeGenres([]string{"Jazz", "Rock n Roll", "Classical"}))
	assert.Equal(t, "", encodeGenres(nil))
	assert.Equal(t, "", encodeGenres([]string{}))
	// Blank entries are dropped, surrounding whitespace is trimmed.
	assert.Equal(t, "Jazz,Folk", encodeGenres([]string{" Jazz ", "", "Folk"}))
}

func TestDecodeGenres(t *testing.T) {
	assert.Equal(t, []string{"Jazz", "Rock n Roll"}, decodeGenres("Jazz,Rock n Roll"))
	// The empty column decodes to an empty, non-nil slice so persisted
	// venues always carry a genre list.
	got := decodeGenres("")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGenresRoundTrip(t *testing.T) {
	in := []string{"Alternative", "Hip-Hop", "Musical Theatre"}
	assert.Equal(t, in, decodeGenres(encodeGenres(in)))
}

func TestIsMySQLErr(t *testing.T) {
	fkErr := errors.New("Error 1452 (23000): Cannot add or update a child row: a foreign key constraint fails")
	refErr := errors.New("Error 1451 (23000): Cannot delete or update a parent row: a foreign key constraint fails")

	assert.True(t, isMySQLErr(fkErr, mysqlErrNoReferencedRow))
	assert.False(t, isMySQLErr(fkErr, mysqlErrRowIsReferenced))
	assert.True(t, isMySQLErr(refErr, mysqlErrRowIsReferenced))
	assert.False(t, isMySQLErr(nil, mysqlErrNoReferencedRow))
}
