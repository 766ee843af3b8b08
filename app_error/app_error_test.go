package app_error

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	notFound := NotFound("member %d not found", 4)
	assert.True(t, IsNotFound(notFound))
	assert.False(t, IsInvalidState(notFound))
	assert.Equal(t, "member 4 not found", notFound.Error())
	assert.Equal(t, http.StatusNotFound, StatusOf(notFound))
	assert.Empty(t, Reason(notFound))

	full := InvalidState(ReasonCompetitionFull)
	assert.True(t, IsInvalidState(full))
	assert.False(t, IsNotFound(full))
	assert.Equal(t, ReasonCompetitionFull, Reason(full))
	assert.Equal(t, http.StatusConflict, StatusOf(full))
}

func TestWrappedErrorsKeepTheirKind(t *testing.T) {
	err := fmt.Errorf("registering: %w", InvalidState(ReasonDateNotAvailable))
	assert.True(t, IsInvalidState(err))
	assert.Equal(t, ReasonDateNotAvailable, Reason(err))
	assert.Equal(t, http.StatusConflict, StatusOf(err))

	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("connection refused")))
}

func TestRespond(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Respond(c, NotFound("competition %s not found", "aga-24-06-21"))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"competition aga-24-06-21 not found"}`, w.Body.String())
}
