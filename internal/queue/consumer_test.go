package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatLine(t *testing.T) {
	line := formatLine(DirectoryEvent{
		EntityKind: "venue",
		EntityID:   7,
		Name:       "The Musical Hop",
		Action:     ActionListed,
		OccurredAt: "2026-06-01T20:00:00Z",
	})
	assert.Equal(t, "[2026-06-01T20:00:00Z] venue listed | id=7 | name=\"The Musical Hop\"\n", line)
}

func TestHandleMessage_RejectsMalformedPayload(t *testing.T) {
	err := handleMessage([]byte("not json"))
	assert.Error(t, err)
}
