package apperr

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindConflict, KindOf(Conflict("slot taken")))
	assert.Equal(t, KindNotFound, KindOf(fmt.Errorf("lookup: %w", NotFound("venue not found"))))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.False(t, Is(nil, KindInternal))
	assert.True(t, Is(BadRequest("nope"), KindBadRequest))
}

func TestMessage_DoesNotLeakCause(t *testing.T) {
	err := Internal(sql.ErrConnDone)
	assert.Equal(t, "internal server error", Message(err))
	assert.ErrorIs(t, err, sql.ErrConnDone)

	wrapped := Wrap(KindConflict, "Slot is not available", sql.ErrTxDone)
	assert.Equal(t, "Slot is not available", Message(wrapped))
	assert.Contains(t, wrapped.Error(), sql.ErrTxDone.Error())

	assert.Equal(t, "internal server error", Message(errors.New("pq: relation does not exist")))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(KindNotFound))
	assert.Equal(t, http.StatusForbidden, HTTPStatus(KindForbidden))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(KindUnauthorized))
	assert.Equal(t, http.StatusConflict, HTTPStatus(KindConflict))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(KindBadRequest))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(KindInternal))
}
