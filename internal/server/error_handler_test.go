// file: internal/server/error_handler_test.go
// version: 2.0.0
// guid: 6e7f8a9b-0c1d-2e3f-4a5b-6c7d8e9f0a1b

package server

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/jdfalk/iptc-organizer/internal/iptc"
	"github.com/jdfalk/iptc-organizer/internal/jpegsegs"
	"github.com/jdfalk/iptc-organizer/internal/photoshop"
)

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)
	return c, w
}

func TestRespondWithBadRequest(t *testing.T) {
	c, w := newTestContext()

	RespondWithBadRequest(c, "test error")

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "test error") {
		t.Errorf("expected error message in response, got %q", w.Body.String())
	}
}

func TestRespondWithNotFound(t *testing.T) {
	c, w := newTestContext()

	RespondWithNotFound(c, "tag", "2:250")

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "tag not found: 2:250") {
		t.Errorf("expected 'not found' in response, got %q", w.Body.String())
	}
}

func TestRespondWithIPTCError(t *testing.T) {
	tests := []struct {
		err  error
		want int
		code string
	}{
		{jpegsegs.ErrNotJPEG, http.StatusUnsupportedMediaType, "NOT_JPEG"},
		{fmt.Errorf("x: %w", photoshop.ErrFormat), http.StatusUnprocessableEntity, "FORMAT"},
		{iptc.ErrFormat, http.StatusUnprocessableEntity, "FORMAT"},
		{iptc.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{iptc.ErrValidation, http.StatusBadRequest, "VALIDATION"},
		{errors.New("disk on fire"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		c, w := newTestContext()
		RespondWithIPTCError(c, tt.err)

		if w.Code != tt.want {
			t.Errorf("%v: expected status %d, got %d", tt.err, tt.want, w.Code)
		}
		if !strings.Contains(w.Body.String(), `"code":"`+tt.code+`"`) {
			t.Errorf("%v: expected code %s in %s", tt.err, tt.code, w.Body.String())
		}
	}
}

func TestParseQueryBool(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tests := []struct {
		query string
		def   bool
		want  bool
	}{
		{"", true, true},
		{"", false, false},
		{"?sort=true", false, true},
		{"?sort=1", false, true},
		{"?sort=TRUE", false, true},
		{"?sort=false", true, false},
		{"?sort=no", true, false},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/"+tt.query, nil)

		if got := ParseQueryBool(c, "sort", tt.def); got != tt.want {
			t.Errorf("ParseQueryBool(%q, %v) = %v, want %v", tt.query, tt.def, got, tt.want)
		}
	}
}
