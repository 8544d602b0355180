package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/educenter-api/pkg/errors"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, rec
}

func TestErrorCarriesPartialData(t *testing.T) {
	c, rec := newContext()
	err := appErrors.Wrap(errors.New("insert failed"), appErrors.ErrEnrollmentReview.Code, appErrors.ErrEnrollmentReview.Status, appErrors.ErrEnrollmentReview.Message)

	Error(c, err, map[string]string{"failed_class_id": "c2"})

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	var body map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "c2", body["data"]["failed_class_id"])
	assert.Equal(t, "ENROLLMENT_REVIEW_REQUIRED", body["error"]["code"])
	assert.Len(t, c.Errors, 1)
}

func TestErrorNormalisesPlainErrors(t *testing.T) {
	c, rec := newContext()
	Error(c, errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestJSONAndAccepted(t *testing.T) {
	c, rec := newContext()
	JSON(c, http.StatusOK, gin.H{"ok": true}, map[string]interface{}{"restricted": false})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"ok":true},"meta":{"restricted":false}}`, rec.Body.String())

	c, rec = newContext()
	Accepted(c, gin.H{"status": "queued"})
	assert.Equal(t, http.StatusAccepted, rec.Code)
}
