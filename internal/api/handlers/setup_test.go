package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/xzzpig/cronlist/internal/api"
	"github.com/xzzpig/cronlist/internal/core/config"
	"github.com/xzzpig/cronlist/internal/core/datelist"
	"github.com/xzzpig/cronlist/internal/core/logger"
	"github.com/xzzpig/cronlist/internal/i18n"
)

// APITestSuite runs requests against a router built by api.SetupRouter.
type APITestSuite struct {
	suite.Suite
	Server *httptest.Server
}

func (s *APITestSuite) SetupSuite() {
	logger.InitLogger(logger.EnvironmentDevelopment, logger.LogLevelDebug, nil)
	s.Require().NoError(i18n.Init())
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.App.Environment = "test"
	cfg.App.Locale = "en"

	router := api.SetupRouter(cfg, datelist.NewBuilder("Asia/Tokyo"))
	s.Server = httptest.NewServer(router)
}

func (s *APITestSuite) TearDownSuite() {
	s.Server.Close()
}

// Get issues a GET request and returns the status and body.
func (s *APITestSuite) Get(t *testing.T, path string, query url.Values, header http.Header) (int, string) {
	t.Helper()
	u := s.Server.URL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequest(http.MethodGet, u, nil)
	require.NoError(t, err)
	for k, v := range header {
		req.Header[k] = v
	}
	return s.do(t, req)
}

// PostJSON issues a POST request with body encoded as JSON.
func (s *APITestSuite) PostJSON(t *testing.T, path string, body any) (int, string) {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(http.MethodPost, s.Server.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	return s.do(t, req)
}

func (s *APITestSuite) do(t *testing.T, req *http.Request) (int, string) {
	t.Helper()
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(data)
}
