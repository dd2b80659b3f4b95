package handler_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studentorg/internal/db"
	"github.com/studentorg/internal/handler"
)

func TestAPIRootDescribesBackend(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/api", "/api/"} {
		rec := srv.do(http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, rec.Code, path)

		body := decode(t, rec)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, handler.Version, body["version"])

		database := body["database"].(map[string]interface{})
		assert.Equal(t, "SQLite", database["type"])
		assert.Equal(t, "Local/Other", database["environment"])
		assert.Nil(t, database["warning"])

		endpoints := body["endpoints"].(map[string]interface{})
		assert.Equal(t, "/api/stats", endpoints["stats"])
	}
}

func TestAPIRootWarnsAboutSQLiteOnVercel(t *testing.T) {
	srv := newTestServer(t, func(opts *handler.Options) {
		opts.Platform = "Vercel"
	})

	body := decode(t, srv.do(http.MethodGet, "/api", nil))
	database := body["database"].(map[string]interface{})
	assert.Equal(t, "Vercel", database["environment"])
	assert.Equal(t, "Using SQLite on Vercel - data will be lost!", database["warning"])
}

func TestHealthPingsDatabase(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode(t, rec)["status"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRequestIDIsEchoed(t *testing.T) {
	srv := newTestServer(t)

	req, _ := http.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := serve(srv, req)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestSingletonsReportNotConfigured(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(http.MethodGet, "/api/site-settings", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Settings not configured", body["message"])

	body = decode(t, srv.do(http.MethodGet, "/api/about", nil))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "About section not configured", body["message"])
}

func TestSaveSettingsThenRead(t *testing.T) {
	srv := newTestServer(t)
	cookies := srv.login()

	rec := srv.do(http.MethodPut, "/admin/api/site-settings", gin.H{"site_name": "Campus Club", "email": "hi@club.org"}, cookies...)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decode(t, srv.do(http.MethodGet, "/api/site-settings", nil))
	require.Equal(t, true, body["success"])
	settings := body["settings"].(map[string]interface{})
	assert.Equal(t, "Campus Club", settings["site_name"])
	assert.Equal(t, "hi@club.org", settings["email"])

	rec = srv.do(http.MethodPut, "/admin/api/site-settings", gin.H{"email": "not-an-email"}, cookies...)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	errs := decode(t, rec)["errors"].(map[string]interface{})
	assert.Contains(t, errs, "email")

	var count int64
	srv.db.Model(&db.SiteSettings{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestContentListsOnlyActive(t *testing.T) {
	srv := newTestServer(t)
	cookies := srv.login()

	for _, member := range []gin.H{
		{"name": "Ada", "position": "president", "bio": "Leads", "order": 1},
		{"name": "Ben", "position": "member", "bio": "Helps", "order": 2, "is_active": false},
	} {
		rec := srv.do(http.MethodPost, "/admin/api/team", member, cookies...)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	body := decode(t, srv.do(http.MethodGet, "/api/team", nil))
	team := body["team"].([]interface{})
	require.Len(t, team, 1)
	assert.Equal(t, "Ada", team[0].(map[string]interface{})["name"])

	rec := srv.do(http.MethodPost, "/admin/api/team", gin.H{"name": "Cy", "position": "captain", "bio": "?"}, cookies...)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec)["errors"], "position")
}

func TestFAQCategoryFilter(t *testing.T) {
	srv := newTestServer(t)
	cookies := srv.login()

	for _, faq := range []gin.H{
		{"question": "How do I join?", "answer": "Sign up.", "category": "membership"},
		{"question": "Who can donate?", "answer": "Adults.", "category": "donation"},
	} {
		rec := srv.do(http.MethodPost, "/admin/api/faqs", faq, cookies...)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	all := decode(t, srv.do(http.MethodGet, "/api/faqs", nil))["faqs"].([]interface{})
	assert.Len(t, all, 2)

	filtered := decode(t, srv.do(http.MethodGet, "/api/faqs?category=donation", nil))["faqs"].([]interface{})
	require.Len(t, filtered, 1)
	assert.Equal(t, "Who can donate?", filtered[0].(map[string]interface{})["question"])
}

func TestEventsHideInactive(t *testing.T) {
	srv := newTestServer(t)
	cookies := srv.login()

	for _, event := range []gin.H{
		{"title": "Orientation", "date": "2026-09-01", "start_time": "09:00", "end_time": "11:00", "location": "Hall", "description": "Welcome"},
		{"title": "Cancelled", "date": "2026-08-01", "start_time": "09:00", "end_time": "11:00", "location": "Hall", "description": "Gone", "is_active": false},
	} {
		rec := srv.do(http.MethodPost, "/admin/api/events", event, cookies...)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	events := decode(t, srv.do(http.MethodGet, "/api/events", nil))["events"].([]interface{})
	require.Len(t, events, 1)
	event := events[0].(map[string]interface{})
	assert.Equal(t, "Orientation", event["title"])
	assert.Equal(t, "2026-09-01", event["date"])
	assert.Equal(t, "09:00:00", event["start_time"])
}

func TestSliderMergesSources(t *testing.T) {
	srv := newTestServer(t)
	cookies := srv.login()

	creates := []struct {
		path string
		body gin.H
	}{
		{"/admin/api/heroes", gin.H{"title": "Late hero", "order": 20}},
		{"/admin/api/heroes", gin.H{"title": "Welcome", "order": 0}},
		{"/admin/api/events", gin.H{"title": "Drive", "date": "2026-10-01", "start_time": "09:00", "end_time": "12:00", "location": "Gym", "description": "Give blood", "show_in_slider": true}},
		{"/admin/api/news", gin.H{"title": "We won", "image": "n.jpg", "excerpt": "Short", "content": "Long", "show_in_slider": true}},
		{"/admin/api/gallery", gin.H{"title": "Photo", "image": "g.jpg", "show_in_slider": true}},
		{"/admin/api/gallery", gin.H{"title": "Not promoted", "image": "h.jpg"}},
	}
	for _, item := range creates {
		rec := srv.do(http.MethodPost, item.path, item.body, cookies...)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := srv.do(http.MethodGet, "/api/slider-content", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, float64(5), body["count"])

	var types, titles []string
	for _, raw := range body["slides"].([]interface{}) {
		slide := raw.(map[string]interface{})
		types = append(types, slide["type"].(string))
		titles = append(titles, slide["title"].(string))
	}
	assert.Equal(t, []string{"hero", "event", "news", "gallery", "hero"}, types)
	assert.Equal(t, "Welcome", titles[0])
	assert.Equal(t, "Late hero", titles[4])
}

func TestNewsDetail(t *testing.T) {
	srv := newTestServer(t)
	cookies := srv.login()

	for _, article := range []gin.H{
		{"title": "Spring Fair", "image": "a.jpg", "excerpt": "Fair", "content": "Details"},
		{"title": "Secret Plans", "image": "b.jpg", "excerpt": "Draft", "content": "Hidden", "is_published": false},
	} {
		rec := srv.do(http.MethodPost, "/admin/api/news", article, cookies...)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := srv.do(http.MethodGet, "/api/news/spring-fair", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	article := decode(t, rec)["article"].(map[string]interface{})
	assert.Equal(t, "Spring Fair", article["title"])
	assert.Equal(t, "Admin", article["author"])

	for _, slug := range []string{"secret-plans", "does-not-exist"} {
		rec := srv.do(http.MethodGet, "/api/news/"+slug, nil)
		require.Equal(t, http.StatusNotFound, rec.Code, slug)
		body := decode(t, rec)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Article not found", body["message"])
	}
}

func TestNewsLimit(t *testing.T) {
	srv := newTestServer(t)
	cookies := srv.login()

	for _, title := range []string{"One", "Two", "Three"} {
		rec := srv.do(http.MethodPost, "/admin/api/news", gin.H{"title": title, "image": "x.jpg", "excerpt": "e", "content": "c"}, cookies...)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	news := decode(t, srv.do(http.MethodGet, "/api/news?limit=2", nil))["news"].([]interface{})
	assert.Len(t, news, 2)

	news = decode(t, srv.do(http.MethodGet, "/api/news", nil))["news"].([]interface{})
	assert.Len(t, news, 3)

	rec := srv.do(http.MethodGet, "/api/news?limit=0", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	news = decode(t, rec)["news"].([]interface{})
	assert.Empty(t, news)

	for _, bad := range []string{"abc", "-1"} {
		rec := srv.do(http.MethodGet, "/api/news?limit="+bad, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, bad)
	}
}

func TestInternalErrorDetailOnlyOutsideProduction(t *testing.T) {
	cases := []struct {
		name       string
		production bool
	}{
		{"development", false},
		{"production", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := newTestServer(t, func(opts *handler.Options) {
				opts.Production = tc.production
			})
			sqlDB, err := srv.db.DB()
			require.NoError(t, err)
			require.NoError(t, sqlDB.Close())

			rec := srv.do(http.MethodGet, "/api/events", nil)
			require.Equal(t, http.StatusInternalServerError, rec.Code)
			body := decode(t, rec)
			assert.Equal(t, "Internal Server Error", body["message"])
			if tc.production {
				assert.NotContains(t, body, "error")
			} else {
				assert.NotEmpty(t, body["error"])
			}
		})
	}
}
