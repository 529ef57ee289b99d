// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/pollbooth/auth"
	"github.com/danielhkuo/pollbooth/cliparse"
	"github.com/danielhkuo/pollbooth/models"
	"github.com/danielhkuo/pollbooth/poll"
	"github.com/danielhkuo/pollbooth/store"
)

// NewTestStore returns a guarded in-memory store for handler tests.
func NewTestStore() *store.Guard {
	return store.NewGuard(store.NewMem())
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          4380,
		StoreKind:     cliparse.StoreFile,
		DataFile:      "test-data.json",
		AdminKeySalt:  "test-admin-salt",
		SweepInterval: time.Minute,
	}
}

// CreateTestPoll inserts a poll with the given status and options and
// returns its ID and admin key. With no options it defaults to
// "Option A", "Option B", "Option C"; expiration is far in the future
// so only the forced status decides whether the poll accepts votes.
func CreateTestPoll(t *testing.T, st *store.Guard, cfg cliparse.Config, status models.Status, options ...string) (pollID, adminKey string) {
	t.Helper()

	if len(options) == 0 {
		options = []string{"Option A", "Option B", "Option C"}
	}

	pollID, p, err := poll.New("Test Poll", "A test poll", options, "2100-01-01")
	if err != nil {
		t.Fatalf("Failed to build test poll: %v", err)
	}
	p.Status = status

	err = st.Update(func(c *models.Collection) (bool, error) {
		c.Polls[pollID] = p
		return true, nil
	})
	if err != nil {
		t.Fatalf("Failed to store test poll: %v", err)
	}

	return pollID, auth.GenerateAdminKey(pollID, cfg.AdminKeySalt)
}

// GetPoll loads a single poll from the store, failing the test when it
// does not exist.
func GetPoll(t *testing.T, st *store.Guard, pollID string) *models.Poll {
	t.Helper()

	var p *models.Poll
	err := st.View(func(c *models.Collection) error {
		p = c.Polls[pollID]
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to load test poll: %v", err)
	}
	if p == nil {
		t.Fatalf("Poll %s not found in store", pollID)
	}
	return p
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
