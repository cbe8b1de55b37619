package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusFor(ErrInvalidRequest))
	assert.Equal(t, http.StatusBadRequest, StatusFor(ErrInvalidFormat))
	assert.Equal(t, http.StatusNotFound, StatusFor(ErrDashboardNotFound))
	assert.Equal(t, http.StatusMethodNotAllowed, StatusFor(ErrMethodNotAllowed))
	assert.Equal(t, http.StatusInternalServerError, StatusFor("XYZ_999"))
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrInvalidFormat, "time frame inválido", []string{"Weekly", "Monthly", "Quarterly"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrInvalidFormat, body["code"])
	assert.Equal(t, "time frame inválido", body["message"])
	assert.Len(t, body["details"], 3)
}

func TestFromError(t *testing.T) {
	assert.Equal(t, ErrInternalServer, FromError(nil, ErrInvalidRequest).Code)

	apiErr := FromError(errors.New("falhou"), ErrInvalidRequest)
	assert.Equal(t, ErrInvalidRequest, apiErr.Code)
	assert.Equal(t, "falhou", apiErr.Message)
}
