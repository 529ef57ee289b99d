// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/pollbooth/eventlog"
	"github.com/danielhkuo/pollbooth/models"
	"github.com/danielhkuo/pollbooth/testutil"
)

// TestFullVotingWorkflow tests the complete end-to-end workflow:
// 1. Create poll
// 2. Cast a vote
// 3. Reject the duplicate
// 4. Read results
// 5. Close the poll as admin
// 6. Reject votes after close
func TestFullVotingWorkflow(t *testing.T) {
	st := testutil.NewTestStore()
	cfg := testutil.GetTestConfig()
	events := eventlog.Nop()
	pollHandler := NewPollHandler(st, cfg, events)
	votingHandler := NewVotingHandler(st, cfg, events)
	resultsHandler := NewResultsHandler(st, cfg)

	// Step 1: Create a poll
	req := testutil.MakeRequest("POST", "/polls", models.CreatePollRequest{
		Title:       "Favorite Cloud Provider?",
		Description: "One vote per email",
		Options:     []string{"AWS", "GCP", "Azure"},
		Expiration:  "2100-10-09",
	}, nil)
	w := httptest.NewRecorder()
	pollHandler.CreatePoll(w, req)
	testutil.AssertStatus(t, w, 201)

	var createResp models.CreatePollResponse
	testutil.AssertJSON(t, w, &createResp)
	pollID := createResp.PollID
	adminKey := createResp.AdminKey
	if pollID == "" || adminKey == "" {
		t.Fatal("Step 1 - Missing poll_id or admin_key")
	}
	t.Logf("Step 1 - Created poll: %s", pollID)

	// Step 2: Cast a vote
	testutil.AssertStatus(t, castVote(t, votingHandler, pollID, "GCP", "sandra@example.com"), 200)

	// Step 3: Duplicate vote with different casing conflicts
	testutil.AssertStatus(t, castVote(t, votingHandler, pollID, "GCP", "saNDra@EXAMPle.com"), 409)

	// Step 4: Results show exactly one vote for GCP
	req = testutil.MakeRequest("GET", "/polls/"+pollID+"/results", nil, nil)
	req.SetPathValue("id", pollID)
	w = httptest.NewRecorder()
	resultsHandler.GetResults(w, req)
	testutil.AssertStatus(t, w, 200)

	var results models.ResultsResponse
	testutil.AssertJSON(t, w, &results)
	if results.Results["AWS"] != 0 || results.Results["GCP"] != 1 || results.Results["Azure"] != 0 {
		t.Fatalf("Step 4 - results = %v, want {AWS:0 GCP:1 Azure:0}", results.Results)
	}

	// Step 5: Close the poll with the admin key
	req = testutil.MakeRequest("POST", "/polls/"+pollID+"/close", nil, map[string]string{
		"X-Admin-Key": adminKey,
	})
	req.SetPathValue("id", pollID)
	w = httptest.NewRecorder()
	pollHandler.ClosePoll(w, req)
	testutil.AssertStatus(t, w, 200)

	var closeResp models.ClosePollResponse
	testutil.AssertJSON(t, w, &closeResp)
	if closeResp.Results["GCP"] != 1 {
		t.Fatalf("Step 5 - close results = %v", closeResp.Results)
	}

	// Step 6: Voting after close is forbidden and changes nothing
	testutil.AssertStatus(t, castVote(t, votingHandler, pollID, "AWS", "newvoter@example.com"), 403)

	stored := testutil.GetPoll(t, st, pollID)
	if stored.Results["GCP"] != 1 || stored.Results["AWS"] != 0 {
		t.Fatalf("Step 6 - results mutated after close: %v", stored.Results)
	}
	if stored.Status != models.StatusClosed {
		t.Fatalf("Step 6 - status = %v, want closed", stored.Status)
	}
}
