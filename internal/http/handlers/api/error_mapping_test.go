package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/savdo-next/internal/http/response"
	"github.com/savdo-next/internal/service"

	"github.com/gin-gonic/gin"
)

func respondStatus(t *testing.T, err error, rules []mappedHandlerError) (int, int) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	respondWithMappedError(c, err, rules, response.CodeInternal, "fallback")

	var body struct {
		StatusCode int `json:"status_code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	return w.Code, body.StatusCode
}

func TestOrderItemDanglingRefsMapToNotFound(t *testing.T) {
	cases := []struct {
		name  string
		err   error
		rules []mappedHandlerError
	}{
		{"missing order on item create", service.ErrOrderNotFound, orderItemErrorRules},
		{"missing product on item create", service.ErrProductNotFound, orderItemErrorRules},
		{"missing user on order create", service.ErrUserNotFound, orderErrorRules},
	}
	for _, tc := range cases {
		httpCode, bizCode := respondStatus(t, tc.err, tc.rules)
		if httpCode != http.StatusNotFound {
			t.Fatalf("%s: http status want 404 got %d", tc.name, httpCode)
		}
		if bizCode != response.CodeNotFound {
			t.Fatalf("%s: status_code want 404 got %d", tc.name, bizCode)
		}
	}
}

func TestOrderItemInvalidQuantityMapsToBadRequest(t *testing.T) {
	httpCode, bizCode := respondStatus(t, service.ErrItemQuantityInvalid, orderItemErrorRules)
	if httpCode != http.StatusBadRequest {
		t.Fatalf("http status want 400 got %d", httpCode)
	}
	if bizCode != response.CodeBadRequest {
		t.Fatalf("status_code want 400 got %d", bizCode)
	}
}
