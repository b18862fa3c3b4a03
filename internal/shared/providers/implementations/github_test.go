package implementations

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/golangci/golangci-hooks/internal/shared/logutil"
	"github.com/golangci/golangci-hooks/internal/shared/providers/provider"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGithub struct {
	server  *httptest.Server
	created []map[string]interface{}
	deleted []int
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newFakeGithub(t *testing.T) *fakeGithub {
	fg := &fakeGithub{}

	r := mux.NewRouter()
	r.Methods("GET").Path("/repos/{owner}/{repo}").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		switch vars["repo"] {
		case "missing":
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not Found"})
		case "secret":
			writeJSON(w, http.StatusForbidden, map[string]string{"message": "Forbidden"})
		default:
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"id":          1,
				"full_name":   vars["owner"] + "/" + vars["repo"],
				"private":     true,
				"permissions": map[string]bool{"admin": true, "push": true},
			})
		}
	})
	r.Methods("GET").Path("/repos/{owner}/{repo}/hooks").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		if page == "" || page == "1" {
			w.Header().Set("Link", fmt.Sprintf(`<%s%s?page=2>; rel="next"`, fg.server.URL, r.URL.Path))
			writeJSON(w, http.StatusOK, []map[string]interface{}{{
				"id":     10,
				"name":   "web",
				"active": true,
				"events": []string{"push"},
				"config": map[string]interface{}{"url": "http://hook.endpoint/", "insecure_ssl": 0},
			}})
			return
		}

		writeJSON(w, http.StatusOK, []map[string]interface{}{{
			"id":     11,
			"name":   "jenkins",
			"active": true,
			"events": []string{"push"},
			"config": map[string]interface{}{"jenkins_hook_url": "http://hook.endpoint/"},
		}})
	})
	r.Methods("POST").Path("/repos/{owner}/{repo}/hooks").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		fg.created = append(fg.created, body)
		body["id"] = 12
		writeJSON(w, http.StatusCreated, body)
	})
	r.Methods("DELETE").Path("/repos/{owner}/{repo}/hooks/{hookID}").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(mux.Vars(r)["hookID"])
		require.NoError(t, err)
		if id == 404 {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not Found"})
			return
		}
		fg.deleted = append(fg.deleted, id)
		w.WriteHeader(http.StatusNoContent)
	})

	fg.server = httptest.NewServer(r)
	t.Cleanup(fg.server.Close)
	return fg
}

func newTestGithub(t *testing.T, fg *fakeGithub) *Github {
	p := NewGithub("token", logutil.NewStderrLog("test"))
	require.NoError(t, p.SetBaseURL(fg.server.URL))
	return p
}

func TestGetRepoByName(t *testing.T) {
	fg := newFakeGithub(t)
	p := newTestGithub(t, fg)

	repo, err := p.GetRepoByName(context.Background(), "owner", "name")
	require.NoError(t, err)
	assert.Equal(t, &provider.Repo{ID: 1, FullName: "owner/name", IsAdmin: true, IsPrivate: true}, repo)
	assert.Equal(t, "owner", repo.Owner())
	assert.Equal(t, "name", repo.Name())
}

func TestGetRepoByNameErrors(t *testing.T) {
	fg := newFakeGithub(t)
	p := newTestGithub(t, fg)

	_, err := p.GetRepoByName(context.Background(), "owner", "missing")
	assert.Equal(t, provider.ErrNotFound, err)

	_, err = p.GetRepoByName(context.Background(), "owner", "secret")
	assert.Equal(t, provider.ErrForbidden, err)
}

func TestListRepoHooksFollowsPages(t *testing.T) {
	fg := newFakeGithub(t)
	p := newTestGithub(t, fg)

	hooks, err := p.ListRepoHooks(context.Background(), "owner", "name")
	require.NoError(t, err)
	require.Len(t, hooks, 2)

	assert.Equal(t, provider.Hook{
		ID:     10,
		Name:   "web",
		Events: []string{"push"},
		Active: true,
		Config: map[string]string{"url": "http://hook.endpoint/"},
	}, hooks[0])
	assert.Equal(t, "jenkins", hooks[1].Name)
	assert.Equal(t, "http://hook.endpoint/", hooks[1].Config["jenkins_hook_url"])
}

func TestCreateRepoHook(t *testing.T) {
	fg := newFakeGithub(t)
	p := newTestGithub(t, fg)

	hook, err := p.CreateRepoHook(context.Background(), "owner", "name", &provider.HookConfig{
		Name:        "web",
		URL:         "http://hook.endpoint/",
		ContentType: "json",
		Secret:      "s3cr3t",
	})
	require.NoError(t, err)
	assert.Equal(t, 12, hook.ID)
	assert.Empty(t, hook.Events)

	require.Len(t, fg.created, 1)
	assert.Equal(t, []interface{}{}, fg.created[0]["events"])
	assert.Equal(t, map[string]interface{}{
		"url":          "http://hook.endpoint/",
		"content_type": "json",
		"secret":       "s3cr3t",
	}, fg.created[0]["config"])
}

func TestDeleteRepoHook(t *testing.T) {
	fg := newFakeGithub(t)
	p := newTestGithub(t, fg)

	require.NoError(t, p.DeleteRepoHook(context.Background(), "owner", "name", 10))
	assert.Equal(t, []int{10}, fg.deleted)

	err := p.DeleteRepoHook(context.Background(), "owner", "name", 404)
	assert.Equal(t, provider.ErrNotFound, err)
}
