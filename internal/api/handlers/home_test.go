package handlers

import (
	"net/http"
	"testing"

	"identity-service-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
)

func TestHome(t *testing.T) {
	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.GET("/", NewHomeHandler().Home)

	recorder := httpSuite.MakeRequest("GET", "/", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]interface{}
	testutils.ParseJSONResponse(t, recorder, &body)
	assert.Equal(t, "Hello World", body["message"])
}
