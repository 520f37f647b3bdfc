package web

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vacation-front/internal/api"
	"vacation-front/internal/config"
)

// fakeBackend emula el subconjunto del backend REST que tocan estos tests.
func fakeBackend(t *testing.T, loginRole int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/users/login", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("user_password") != "secret" {
			w.WriteHeader(401)
			w.Write([]byte(`{"Error":"invalid credentials"}`))
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"user_id":    1,
			"first_name": "Dana",
			"last_name":  "Levi",
			"user_email": r.URL.Query().Get("user_email"),
			"role_id":    loginRole,
			"token":      "tok-1",
		})
	})
	mux.HandleFunc("/vacations", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Massages":"no vacations yet"}`))
	})
	mux.HandleFunc("/users", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(404)
		w.Write([]byte(`{"Error":"not found"}`))
	})
	return httptest.NewServer(mux)
}

func newTestRouter(t *testing.T, backendURL string) *gin.Engine {
	return newStateRouter(t, backendURL, "")
}

func newStateRouter(t *testing.T, backendURL, stateDir string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	cfg := &config.Config{
		HTTPPort:           "0",
		BackendURL:         backendURL,
		SessionSecret:      "test-secret",
		SessionCookie:      "vacation_front_test",
		StateDir:           stateDir,
		LoginRatePerMinute: 600,
		LoginRateBurst:     100,
	}
	client := api.New(backendURL, nil, logger)
	return NewRouter(logger, cfg, NewHandler(logger, client, nil, stateDir))
}

func doRequest(r *gin.Engine, method, target, cookie string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_PublicPages(t *testing.T) {
	backend := fakeBackend(t, 2)
	defer backend.Close()
	r := newTestRouter(t, backend.URL)

	for _, path := range []string{"/", "/about", "/no-money", "/vacations", "/login", "/register"} {
		w := doRequest(r, http.MethodGet, path, "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", path, w.Code)
		}
	}
}

func TestRouter_AnonymousIsRedirectedToLogin(t *testing.T) {
	backend := fakeBackend(t, 2)
	defer backend.Close()
	r := newTestRouter(t, backend.URL)

	for _, path := range []string{"/profile", "/admin", "/vacations/add"} {
		w := doRequest(r, http.MethodGet, path, "", nil)
		if w.Code != http.StatusFound {
			t.Fatalf("GET %s: expected redirect, got %d", path, w.Code)
		}
		if loc := w.Header().Get("Location"); loc != "/login" {
			t.Fatalf("GET %s: expected /login, got %q", path, loc)
		}
	}
}

func login(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doRequest(r, http.MethodPost, "/login", "", url.Values{
		"user_email":    {"dana@example.com"},
		"user_password": {"secret"},
	})
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/vacations" {
		t.Fatalf("login: expected redirect to /vacations, got %d %q", w.Code, w.Header().Get("Location"))
	}
	cookies := w.Header().Values("Set-Cookie")
	if len(cookies) == 0 {
		t.Fatalf("login left no session cookie")
	}
	var parts []string
	for _, c := range cookies {
		parts = append(parts, strings.SplitN(c, ";", 2)[0])
	}
	return strings.Join(parts, "; ")
}

func TestRouter_RegularUserCannotReachAdmin(t *testing.T) {
	backend := fakeBackend(t, 2)
	defer backend.Close()
	r := newTestRouter(t, backend.URL)
	cookie := login(t, r)

	w := doRequest(r, http.MethodGet, "/admin", cookie, nil)
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/vacations" {
		t.Fatalf("expected redirect to /vacations, got %d %q", w.Code, w.Header().Get("Location"))
	}

	// Pero sí llega a las rutas autenticadas.
	w = doRequest(r, http.MethodGet, "/profile", cookie, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("profile: expected 200, got %d", w.Code)
	}
}

func TestRouter_AdminReachesAdminPanel(t *testing.T) {
	backend := fakeBackend(t, 1)
	defer backend.Close()
	r := newTestRouter(t, backend.URL)
	cookie := login(t, r)

	w := doRequest(r, http.MethodGet, "/admin", cookie, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("admin: expected 200, got %d", w.Code)
	}
}

func TestRouter_LoginFailureShowsBanner(t *testing.T) {
	backend := fakeBackend(t, 2)
	defer backend.Close()
	r := newTestRouter(t, backend.URL)

	w := doRequest(r, http.MethodPost, "/login", "", url.Values{
		"user_email":    {"dana@example.com"},
		"user_password": {"wrong"},
	})
	if w.Code != http.StatusFound {
		t.Fatalf("expected redirect, got %d", w.Code)
	}
	loc := w.Header().Get("Location")
	if !strings.HasPrefix(loc, "/login?error=") || !strings.Contains(loc, "invalid") {
		t.Fatalf("expected error banner in redirect, got %q", loc)
	}
}

func TestRouter_LogoutClearsSession(t *testing.T) {
	backend := fakeBackend(t, 2)
	defer backend.Close()
	r := newTestRouter(t, backend.URL)
	cookie := login(t, r)

	w := doRequest(r, http.MethodGet, "/logout", cookie, nil)
	if w.Code != http.StatusFound {
		t.Fatalf("logout: expected redirect, got %d", w.Code)
	}
	cleared := strings.SplitN(w.Header().Get("Set-Cookie"), ";", 2)[0]

	w = doRequest(r, http.MethodGet, "/profile", cleared, nil)
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/login" {
		t.Fatalf("expected anonymous after logout, got %d %q", w.Code, w.Header().Get("Location"))
	}
}

func TestRouter_FileStateSurvivesAcrossRequests(t *testing.T) {
	backend := fakeBackend(t, 2)
	defer backend.Close()
	stateDir := t.TempDir()
	r := newStateRouter(t, backend.URL, stateDir)
	cookie := login(t, r)

	// La cookie sólo lleva el sid; el registro de sesión vive en el archivo.
	w := doRequest(r, http.MethodGet, "/profile", cookie, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("profile: expected 200, got %d", w.Code)
	}
	entries, err := os.ReadDir(stateDir)
	if err != nil || len(entries) == 0 {
		t.Fatalf("expected a per-session state file, got %v,%v", entries, err)
	}

	w = doRequest(r, http.MethodGet, "/logout", cookie, nil)
	if w.Code != http.StatusFound {
		t.Fatalf("logout: expected redirect, got %d", w.Code)
	}
	w = doRequest(r, http.MethodGet, "/profile", cookie, nil)
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/login" {
		t.Fatalf("expected anonymous after logout, got %d %q", w.Code, w.Header().Get("Location"))
	}
}

func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

func TestRouter_InvalidListingSendsNoRequest(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/login", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"user_id": 1, "first_name": "Dana", "last_name": "Levi",
			"user_email": "dana@example.com", "role_id": 1, "token": "tok-1",
		})
	})
	mux.HandleFunc("/vacations", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			t.Errorf("an invalid form must not produce a backend request")
			w.WriteHeader(500)
			return
		}
		w.Write([]byte(`{"Massages":"no vacations yet"}`))
	})
	backend := httptest.NewServer(mux)
	defer backend.Close()

	r := newTestRouter(t, backend.URL)
	cookie := login(t, r)

	cases := []struct {
		name string
		form url.Values
	}{
		{"end before start", url.Values{
			"country_id":           {"3"},
			"vacation_description": {"A week in the islands"},
			"vacation_start":       {futureDate(14)},
			"vacation_ends":        {futureDate(7)},
			"vacation_price":       {"100"},
			"currency":             {"ILS"},
		}},
		{"price out of range", url.Values{
			"country_id":           {"3"},
			"vacation_description": {"A week in the islands"},
			"vacation_start":       {futureDate(7)},
			"vacation_ends":        {futureDate(14)},
			"vacation_price":       {"10001"},
			"currency":             {"ILS"},
		}},
	}
	for _, tc := range cases {
		w := doRequest(r, http.MethodPost, "/vacations/add", cookie, tc.form)
		if w.Code != http.StatusFound {
			t.Fatalf("%s: expected redirect, got %d", tc.name, w.Code)
		}
		if loc := w.Header().Get("Location"); !strings.HasPrefix(loc, "/vacations/add?error=") {
			t.Fatalf("%s: expected error banner, got %q", tc.name, loc)
		}
	}
}

func TestRouter_AddVacationUploadsFile(t *testing.T) {
	var gotFile string
	mux := http.NewServeMux()
	mux.HandleFunc("/users/login", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"user_id": 1, "first_name": "Dana", "last_name": "Levi",
			"user_email": "dana@example.com", "role_id": 1, "token": "tok-1",
		})
	})
	mux.HandleFunc("/vacations", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Write([]byte(`{"Massages":"no vacations yet"}`))
			return
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		if fh := r.MultipartForm.File["file"]; len(fh) > 0 {
			f, _ := fh[0].Open()
			defer f.Close()
			raw, _ := io.ReadAll(f)
			gotFile = string(raw)
		}
		json.NewEncoder(w).Encode(map[string]any{"vacation_id": 9})
	})
	backend := httptest.NewServer(mux)
	defer backend.Close()

	r := newTestRouter(t, backend.URL)
	cookie := login(t, r)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("country_id", "3")
	mw.WriteField("vacation_description", "A week in the islands")
	mw.WriteField("vacation_start", futureDate(7))
	mw.WriteField("vacation_ends", futureDate(14))
	mw.WriteField("vacation_price", "1200")
	mw.WriteField("currency", "EUR")
	fw, err := mw.CreateFormFile("file", "beach.jpg")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	fw.Write([]byte("jpegdata"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/vacations/add", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Cookie", cookie)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound || w.Header().Get("Location") != "/vacations" {
		t.Fatalf("expected redirect to /vacations, got %d %q", w.Code, w.Header().Get("Location"))
	}
	if gotFile != "jpegdata" {
		t.Fatalf("file content did not reach the backend: %q", gotFile)
	}
}

func TestRouter_PreferencesRoundTrip(t *testing.T) {
	backend := fakeBackend(t, 2)
	defer backend.Close()
	r := newTestRouter(t, backend.URL)

	w := doRequest(r, http.MethodPost, "/prefs", "", url.Values{
		"language":  {"en"},
		"theme":     {"dark"},
		"return_to": {"/vacations"},
	})
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/vacations" {
		t.Fatalf("prefs: expected redirect to /vacations, got %d %q", w.Code, w.Header().Get("Location"))
	}
	var parts []string
	for _, c := range w.Header().Values("Set-Cookie") {
		parts = append(parts, strings.SplitN(c, ";", 2)[0])
	}
	cookie := strings.Join(parts, "; ")

	w = doRequest(r, http.MethodGet, "/", cookie, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("home: expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `lang="en"`) || !strings.Contains(body, "theme-dark") {
		t.Fatalf("preferences not reflected in the page")
	}
}
