package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"UMS_TALENTA_BACK-END/internal/utils"
)

func TestParseTrustedProxies(t *testing.T) {
	got, err := ParseTrustedProxies([]string{" 10.0.0.0/8", "", "192.168.1.10", "::1"})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "10.0.0.0/8", got[0].String())
	assert.Equal(t, "192.168.1.10/32", got[1].String())
	assert.Equal(t, "::1/128", got[2].String())

	_, err = ParseTrustedProxies([]string{"10.0.0.0/33"})
	assert.Error(t, err)
	_, err = ParseTrustedProxies([]string{"proxy.internal"})
	assert.Error(t, err)
}

func TestRealIP(t *testing.T) {
	trusted, err := ParseTrustedProxies([]string{"10.0.0.0/8"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		trusted bool
		remote  string
		xff     string
		realIP  string
		want    string
	}{
		{"untrusted peer keeps socket address", true, "203.0.113.9:4000", "198.51.100.1", "", "203.0.113.9"},
		{"no proxies configured", false, "10.0.0.2:4000", "198.51.100.1", "", "10.0.0.2"},
		{"trusted peer forwards client", true, "10.0.0.2:4000", "198.51.100.1", "", "198.51.100.1"},
		{"rightmost untrusted hop wins", true, "10.0.0.2:4000", "1.2.3.4, 198.51.100.1, 10.0.0.7", "", "198.51.100.1"},
		{"falls back to X-Real-IP", true, "10.0.0.2:4000", "", "198.51.100.2", "198.51.100.2"},
		{"garbage header ignored", true, "10.0.0.2:4000", "not-an-ip", "", "10.0.0.2"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			proxies := trusted
			if !tc.trusted {
				proxies = nil
			}
			var seen string
			h := RealIP(proxies)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = utils.ClientIP(r)
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tc.remote
			if tc.xff != "" {
				req.Header.Set("X-Forwarded-For", tc.xff)
			}
			if tc.realIP != "" {
				req.Header.Set("X-Real-IP", tc.realIP)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)
			assert.Equal(t, tc.want, seen)
		})
	}
}
