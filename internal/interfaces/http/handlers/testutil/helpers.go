package testutil

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tosinajy/carrier-code-verify/internal/shared/constants"
	"github.com/tosinajy/carrier-code-verify/internal/shared/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// NewTestContext creates a test gin.Context with the given method and path.
func NewTestContext(method, path string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, nil)
	return c, w
}

// NewFormContext creates a POST context carrying an urlencoded form.
func NewFormContext(path string, form url.Values) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c, w
}

// NewMultipartContext creates a POST context with form fields and one file part.
// An empty filename omits the file part.
func NewMultipartContext(path string, fields map[string]string, fileField, filename string, content []byte) (*gin.Context, *httptest.ResponseRecorder) {
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for k, v := range fields {
		_ = mw.WriteField(k, v)
	}
	if filename != "" {
		part, _ := mw.CreateFormFile(fileField, filename)
		_, _ = part.Write(content)
	}
	_ = mw.Close()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, path, body)
	c.Request.Header.Set("Content-Type", mw.FormDataContentType())
	return c, w
}

// SetAuthContext sets the user keys the auth middleware would set.
func SetAuthContext(c *gin.Context, userID uint, username string) {
	c.Set(constants.ContextKeyUserID, userID)
	c.Set(constants.ContextKeyUsername, username)
	c.Set(constants.ContextKeyUserRole, "admin")
	c.Set(constants.ContextKeySessionID, "test-session-id")
}

// SetURLParam sets a URL parameter on the gin context.
func SetURLParam(c *gin.Context, key, value string) {
	c.Params = append(c.Params, gin.Param{Key: key, Value: value})
}

// SetQueryParams sets query parameters on the gin context.
func SetQueryParams(c *gin.Context, params map[string]string) {
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	c.Request.URL.RawQuery = q.Encode()
}

// SetFlashCookie attaches a pending flash message to the request.
func SetFlashCookie(c *gin.Context, category utils.FlashCategory, message string) {
	raw, _ := json.Marshal(utils.Flash{Category: category, Message: message})
	c.Request.AddCookie(&http.Cookie{Name: utils.FlashCookie, Value: base64.RawURLEncoding.EncodeToString(raw)})
}

// ParseResponse parses the JSON response body into the target struct.
func ParseResponse(w *httptest.ResponseRecorder, target interface{}) error {
	return json.Unmarshal(w.Body.Bytes(), target)
}

// Flash decodes the flash cookie set by the response, or nil when none was set.
func Flash(w *httptest.ResponseRecorder) *utils.Flash {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name != utils.FlashCookie || cookie.Value == "" {
			continue
		}
		raw, err := base64.RawURLEncoding.DecodeString(cookie.Value)
		if err != nil {
			return nil
		}
		var f utils.Flash
		if err := json.Unmarshal(raw, &f); err != nil {
			return nil
		}
		return &f
	}
	return nil
}

// Cookie returns the named cookie set by the response.
func Cookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

// APIResponse mirrors utils.APIResponse for test assertions.
type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorInfo      `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
}

// ErrorInfo mirrors utils.ErrorInfo for test assertions.
type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// PageResponse mirrors utils.PageResponse for test assertions.
type PageResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Flash   *utils.Flash    `json:"flash,omitempty"`
	ShowAds bool            `json:"show_ads"`
}
