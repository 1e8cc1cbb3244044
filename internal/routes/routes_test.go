package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"mddrc-backend/internal/controllers"
	"mddrc-backend/internal/logsvc"
	"mddrc-backend/internal/mailsvc"
	"mddrc-backend/internal/models"
	"mddrc-backend/internal/repository/inmem"
	"mddrc-backend/internal/services"
	"mddrc-backend/internal/store"
	"mddrc-backend/internal/utils"
)

const secret = "routes-secret"

type testApp struct {
	app *fiber.App
	st  *store.Stores
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	lg := logsvc.NewStdLogger(logsvc.NewStd("TEST : "), false)
	st := inmem.NewStores()
	svc := services.New(st, services.Options{
		Clock:        utils.Fixed(time.Now().UTC()),
		JWTSecret:    secret,
		PasswordCost: bcrypt.MinCost,
		StaticDir:    t.TempDir(),
		Mailer:       mailsvc.NewConsole("noreply@mddrc.test", "MDDRC", lg),
		Log:          lg,
	})
	app := fiber.New(fiber.Config{ErrorHandler: controllers.ErrorHandler(lg)})
	Setup(app, svc, secret)
	return &testApp{app: app, st: st}
}

func (a *testApp) user(t *testing.T, role, ic string) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)
	u := models.User{
		ID:           models.NewID(),
		Email:        ic + "@mddrc.test",
		FullName:     role + " " + ic,
		IDNumber:     ic,
		Role:         role,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	require.NoError(t, a.st.Users.Insert(context.Background(), u))
	return u
}

func (a *testApp) login(t *testing.T, login string) string {
	t.Helper()
	res := a.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"email": login, "password": "secret1"})
	require.Equal(t, http.StatusOK, res.StatusCode)
	var body struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	return body.AccessToken
}

func (a *testApp) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	res, err := a.app.Test(req, -1)
	require.NoError(t, err)
	return res
}

func decode(t *testing.T, res *http.Response) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&m))
	return m
}

func TestAuthFlow(t *testing.T) {
	a := newTestApp(t)
	a.user(t, models.RoleAdmin, "800101015555")

	res := a.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"email": "800101015555", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Equal(t, "Invalid credentials", decode(t, res)["error"])

	res = a.do(t, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	token := a.login(t, "800101015555@MDDRC.test")
	res = a.do(t, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	me := decode(t, res)
	assert.Equal(t, "admin", me["role"])
	assert.NotContains(t, me, "password")
}

func TestPublicSettings(t *testing.T) {
	a := newTestApp(t)
	res := a.do(t, http.MethodGet, "/api/settings", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "#1e40af", decode(t, res)["primary_color"])

	res = a.do(t, http.MethodPut, "/api/settings", "", map[string]string{"primary_color": "#000000"})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestCompanyRoutes(t *testing.T) {
	a := newTestApp(t)
	a.user(t, models.RoleAdmin, "800101015555")
	a.user(t, models.RoleTrainer, "850505055555")
	admin := a.login(t, "800101015555")
	trainer := a.login(t, "850505055555")

	tests := []struct {
		name   string
		token  string
		body   any
		status int
	}{
		{"missing name", admin, map[string]string{}, http.StatusBadRequest},
		{"trainer forbidden", trainer, map[string]string{"name": "Petronas"}, http.StatusForbidden},
		{"created", admin, map[string]string{"name": "Petronas"}, http.StatusCreated},
		{"duplicate", admin, map[string]string{"name": "Petronas"}, http.StatusBadRequest},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := a.do(t, http.MethodPost, "/api/companies", tc.token, tc.body)
			assert.Equal(t, tc.status, res.StatusCode)
		})
	}

	res := a.do(t, http.MethodPost, "/api/companies", admin, map[string]string{})
	body := decode(t, res)
	assert.Equal(t, map[string]any{"name": "name is required"}, body["fields"])

	res = a.do(t, http.MethodGet, "/api/companies", trainer, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var list []models.Company
	require.NoError(t, json.NewDecoder(res.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, "Petronas", list[0].Name)
}

func TestInactiveUserRejected(t *testing.T) {
	a := newTestApp(t)
	u := a.user(t, models.RoleAdmin, "800101015555")
	token := a.login(t, "800101015555")

	u.IsActive = false
	require.NoError(t, a.st.Users.Save(context.Background(), u))

	res := a.do(t, http.MethodGet, "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestCertificateUploadRoute(t *testing.T) {
	a := newTestApp(t)
	a.user(t, models.RoleCoordinator, "820202025555")
	token := a.login(t, "820202025555")

	upload := func(name string) *http.Response {
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		fw, err := w.CreateFormFile("file", name)
		require.NoError(t, err)
		_, err = fw.Write([]byte("%PDF-1.4 test"))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/certificates/upload/s1/p1", &buf)
		req.Header.Set("Content-Type", w.FormDataContentType())
		req.Header.Set("Authorization", "Bearer "+token)
		res, err := a.app.Test(req, -1)
		require.NoError(t, err)
		return res
	}

	res := upload("cert.txt")
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res = upload("cert.pdf")
	require.Equal(t, http.StatusOK, res.StatusCode)
	body := decode(t, res)
	assert.True(t, strings.HasPrefix(body["certificate_url"].(string), "/api/static/certificates_pdf/"))
	assert.NotEmpty(t, body["certificate_id"])
}

func TestSecuredGroupsStayScoped(t *testing.T) {
	a := newTestApp(t)
	a.user(t, models.RoleAdmin, "800101015555")
	token := a.login(t, "800101015555")

	tests := []struct {
		name   string
		path   string
		token  string
		status int
	}{
		{"unknown path is not behind auth", "/api/nothing-here", "", http.StatusNotFound},
		{"checklist templates need a token", "/api/checklist-templates", "", http.StatusUnauthorized},
		{"vehicle details need a token", "/api/vehicle-details/s1/p1", "", http.StatusUnauthorized},
		{"checklist templates", "/api/checklist-templates", token, http.StatusOK},
		{"reports after checklist routes", "/api/training-reports/coordinator", token, http.StatusOK},
		{"data management after checklist routes", "/api/admin/data-management/checklists", token, http.StatusOK},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := a.do(t, http.MethodGet, tc.path, tc.token, nil)
			assert.Equal(t, tc.status, res.StatusCode)
		})
	}
}
