package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestPathID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		raw    string
		wantID uint
		wantOK bool
	}{
		{name: "positive id", raw: "7", wantID: 7, wantOK: true},
		{name: "zero rejected", raw: "0"},
		{name: "negative rejected", raw: "-5"},
		{name: "non-numeric rejected", raw: "abc"},
		{name: "empty rejected", raw: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Params = gin.Params{{Key: "id", Value: tt.raw}}

			id, ok := pathID(c, "game")

			if ok != tt.wantOK {
				t.Fatalf("pathID(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if id != tt.wantID {
				t.Fatalf("pathID(%q) id = %d, want %d", tt.raw, id, tt.wantID)
			}
			if !tt.wantOK && rec.Code != http.StatusBadRequest {
				t.Fatalf("pathID(%q) wrote status %d, want %d", tt.raw, rec.Code, http.StatusBadRequest)
			}
		})
	}
}
