package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/studentorg/internal/db"
	"github.com/studentorg/internal/handler"
	"github.com/studentorg/internal/logger"
	"github.com/studentorg/internal/mailer"
	"github.com/studentorg/internal/router"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const baseURL = "http://example.test"

type e2eSuite struct {
	public *localClient
	admin  *localClient
	outbox *outbox
}

type outbox struct {
	mu   sync.Mutex
	sent []mailer.Message
}

func (o *outbox) Send(_ context.Context, msg mailer.Message) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sent = append(o.sent, msg)
	return nil
}

func (o *outbox) recipients() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	var out []string
	for _, msg := range o.sent {
		out = append(out, msg.To...)
	}
	return out
}

type localClient struct {
	handler http.Handler
	jar     http.CookieJar
}

func newLocalClient(handler http.Handler, withJar bool) *localClient {
	var jar http.CookieJar
	if withJar {
		if j, err := cookiejar.New(nil); err == nil {
			jar = j
		}
	}
	return &localClient{handler: handler, jar: jar}
}

func (c *localClient) Do(req *http.Request) *http.Response {
	if c.jar != nil {
		for _, cookie := range c.jar.Cookies(req.URL) {
			req.AddCookie(cookie)
		}
	}
	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, req)
	resp := w.Result()
	if c.jar != nil {
		c.jar.SetCookies(req.URL, resp.Cookies())
	}
	return resp
}

func newE2ESuite(t *testing.T) *e2eSuite {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open("file:e2e?mode=memory&cache=shared"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})

	if _, err := db.EnsureUser(gdb, "admin", "e2e-secret"); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	box := &outbox{}
	api := handler.NewAPI(gdb, handler.Options{
		Logger:   logger.Nop(),
		Mailer:   box,
		Composer: mailer.Composer{From: "noreply@example.test", ContactEmail: "office@example.test"},
	})
	engine := router.SetupRouter(api, "test-session-secret", logger.Nop())

	return &e2eSuite{
		public: newLocalClient(engine, false),
		admin:  newLocalClient(engine, true),
		outbox: box,
	}
}

func TestE2E_SiteLifecycle(t *testing.T) {
	s := newE2ESuite(t)

	t.Run("empty site", s.testEmptySite)
	t.Run("admin login", s.testLogin)
	t.Run("publish content", s.testPublishContent)
	t.Run("visitor submissions", s.testSubmissions)
	t.Run("admin triage", s.testTriage)
	t.Run("metrics", s.testMetrics)
	t.Run("logout", s.testLogout)
}

func (s *e2eSuite) testEmptySite(t *testing.T) {
	var body map[string]interface{}
	s.expectJSON(t, s.public, http.MethodGet, "/api/site-settings", nil, http.StatusOK, &body)
	if body["success"] != false {
		t.Fatalf("expected unconfigured settings, got %v", body)
	}

	s.expectJSON(t, s.public, http.MethodGet, "/api/slider-content", nil, http.StatusOK, &body)
	if body["count"] != float64(0) {
		t.Fatalf("expected empty slider, got %v", body)
	}

	s.expectJSON(t, s.public, http.MethodPost, "/admin/api/events", map[string]interface{}{}, http.StatusUnauthorized, nil)
}

func (s *e2eSuite) testLogin(t *testing.T) {
	s.expectJSON(t, s.admin, http.MethodPost, "/admin/login", map[string]interface{}{
		"username": "admin", "password": "nope",
	}, http.StatusUnauthorized, nil)

	s.expectJSON(t, s.admin, http.MethodPost, "/admin/login", map[string]interface{}{
		"username": "admin", "password": "e2e-secret",
	}, http.StatusOK, nil)
}

func (s *e2eSuite) testPublishContent(t *testing.T) {
	s.expectJSON(t, s.admin, http.MethodPut, "/admin/api/site-settings", map[string]interface{}{
		"site_name": "Campus Volunteers", "email": "hello@example.test",
	}, http.StatusOK, nil)
	s.expectJSON(t, s.admin, http.MethodPut, "/admin/api/about", map[string]interface{}{
		"content": "We help.",
	}, http.StatusOK, nil)
	s.expectJSON(t, s.admin, http.MethodPost, "/admin/api/heroes", map[string]interface{}{
		"title": "Welcome", "order": 1,
	}, http.StatusCreated, nil)
	s.expectJSON(t, s.admin, http.MethodPost, "/admin/api/events", map[string]interface{}{
		"title": "Blood Drive", "date": "2026-11-20", "start_time": "09:00", "end_time": "15:00",
		"location": "Gym", "description": "Give blood", "show_in_slider": true,
	}, http.StatusCreated, nil)
	s.expectJSON(t, s.admin, http.MethodPost, "/admin/api/news", map[string]interface{}{
		"title": "Drive Announced", "image": "drive.jpg", "excerpt": "Soon", "content": "Details follow.",
	}, http.StatusCreated, nil)

	var body map[string]interface{}
	s.expectJSON(t, s.public, http.MethodGet, "/api/site-settings", nil, http.StatusOK, &body)
	settings, _ := body["settings"].(map[string]interface{})
	if settings["site_name"] != "Campus Volunteers" {
		t.Fatalf("unexpected settings %v", body)
	}

	s.expectJSON(t, s.public, http.MethodGet, "/api/news/drive-announced", nil, http.StatusOK, nil)

	s.expectJSON(t, s.public, http.MethodGet, "/api/slider-content", nil, http.StatusOK, &body)
	if body["count"] != float64(2) {
		t.Fatalf("expected hero and event slides, got %v", body)
	}
}

func (s *e2eSuite) testSubmissions(t *testing.T) {
	s.expectJSON(t, s.public, http.MethodPost, "/api/contact", map[string]interface{}{
		"name": "Visitor", "email": "visitor@example.test", "subject": "Volunteering", "message": "How can I help?",
	}, http.StatusCreated, nil)
	s.expectJSON(t, s.public, http.MethodPost, "/api/subscribe", map[string]interface{}{
		"email": "reader@example.test",
	}, http.StatusCreated, nil)
	s.expectJSON(t, s.public, http.MethodPost, "/api/subscribe", map[string]interface{}{
		"email": "reader@example.test",
	}, http.StatusBadRequest, nil)
	s.expectJSON(t, s.public, http.MethodPost, "/api/donate-blood", map[string]interface{}{
		"name": "Donor", "email": "donor@example.test", "phone": "555-0100",
		"blood_type": "AB+", "age": 25, "address": "Dorm 4",
	}, http.StatusCreated, nil)

	got := strings.Join(s.outbox.recipients(), ",")
	for _, want := range []string{"office@example.test", "reader@example.test", "donor@example.test"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected a notification to %s, got %s", want, got)
		}
	}

	var body struct {
		Data struct {
			Contacts       int64 `json:"contacts"`
			Subscribers    int64 `json:"subscribers"`
			BloodDonations int64 `json:"blood_donations"`
		} `json:"data"`
	}
	s.expectJSON(t, s.public, http.MethodGet, "/api/stats", nil, http.StatusOK, &body)
	if body.Data.Contacts != 1 || body.Data.Subscribers != 1 || body.Data.BloodDonations != 1 {
		t.Fatalf("unexpected stats %+v", body.Data)
	}
}

func (s *e2eSuite) testTriage(t *testing.T) {
	var contacts struct {
		Contacts []struct {
			ID     uint   `json:"id"`
			Status string `json:"status"`
		} `json:"contacts"`
	}
	s.expectJSON(t, s.admin, http.MethodGet, "/admin/api/contacts?status=new", nil, http.StatusOK, &contacts)
	if len(contacts.Contacts) != 1 {
		t.Fatalf("expected one new contact, got %+v", contacts)
	}

	var result map[string]interface{}
	s.expectJSON(t, s.admin, http.MethodPost, "/admin/api/contacts/status", map[string]interface{}{
		"ids": []uint{contacts.Contacts[0].ID}, "status": "replied",
	}, http.StatusOK, &result)
	if result["updated"] != float64(1) {
		t.Fatalf("expected one updated contact, got %v", result)
	}

	s.expectJSON(t, s.admin, http.MethodGet, "/admin/api/contacts?status=new", nil, http.StatusOK, &contacts)
	if len(contacts.Contacts) != 0 {
		t.Fatalf("expected no new contacts after triage, got %+v", contacts)
	}
}

func (s *e2eSuite) testMetrics(t *testing.T) {
	resp := s.request(t, s.public, http.MethodGet, "/metrics", nil)
	defer resp.Body.Close()
	body := readBody(t, resp)
	if !strings.Contains(body, `studentorg_intake_submissions_total{kind="subscribe",outcome="duplicate"}`) {
		t.Fatalf("expected duplicate subscription to be counted")
	}
}

func (s *e2eSuite) testLogout(t *testing.T) {
	s.expectJSON(t, s.admin, http.MethodPost, "/admin/logout", nil, http.StatusOK, nil)
	s.expectJSON(t, s.admin, http.MethodGet, "/admin/api/contacts", nil, http.StatusUnauthorized, nil)
}

func (s *e2eSuite) request(t *testing.T, client *localClient, method, path string, payload map[string]interface{}) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to marshal payload: %v", err)
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		t.Fatalf("failed to build request %s %s: %v", method, path, err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return client.Do(req)
}

func (s *e2eSuite) expectJSON(t *testing.T, client *localClient, method, path string, payload map[string]interface{}, code int, dst interface{}) {
	t.Helper()

	resp := s.request(t, client, method, path, payload)
	defer resp.Body.Close()
	body := readBody(t, resp)
	if resp.StatusCode != code {
		t.Fatalf("%s %s: expected status %d, got %d\nbody=%s", method, path, code, resp.StatusCode, body)
	}
	if dst != nil {
		if err := json.Unmarshal([]byte(body), dst); err != nil {
			t.Fatalf("failed to decode json: %v\nbody=%s", err, body)
		}
	}
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return string(data)
}
