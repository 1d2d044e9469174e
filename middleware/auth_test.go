package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func authContext(header string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/stats", nil)
	if header != "" {
		c.Request.Header.Set("Authorization", header)
	}
	return c, w
}

func TestAccountAuthValid(t *testing.T) {
	c, _ := authContext("Bearer s3cret.acc-1")
	AccountAuth("s3cret")(c)
	if c.IsAborted() {
		t.Fatal("Expected request to pass auth")
	}
	if got := GetAccountID(c); got != "acc-1" {
		t.Errorf("Expected acc-1 found %q", got)
	}
}

func TestAccountAuthRejects(t *testing.T) {
	for _, header := range []string{
		"",
		"Bearer wrong.acc-1",
		"Bearer s3cret.",
		"Bearer s3cret",
		"Basic s3cret.acc-1",
	} {
		c, w := authContext(header)
		AccountAuth("s3cret")(c)
		if !c.IsAborted() || w.Code != 401 {
			t.Errorf("Expected 401 for header %q, got aborted=%v code=%d", header, c.IsAborted(), w.Code)
		}
	}
}

func TestGetAccountIDUnset(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := GetAccountID(c); got != "" {
		t.Errorf("Expected empty account id found %q", got)
	}
}
