// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Request types

type CreatePollRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Options     []string `json:"options"`
	Expiration  string   `json:"expiration"`
}

type VoteRequest struct {
	Option string `json:"option"`
	Email  string `json:"email"`
}

// Response types

type CreatePollResponse struct {
	Message  string `json:"message"`
	PollID   string `json:"poll_id"`
	AdminKey string `json:"admin_key"`
}

type VoteResponse struct {
	Message string `json:"message"`
}

type ResultsResponse struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Results     map[string]int `json:"results"`
	Status      Status         `json:"status"`
}

type ClosePollResponse struct {
	ClosedAt time.Time      `json:"closed_at"`
	Results  map[string]int `json:"results"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Domain types

// Poll is the unit of voting. Results keys always mirror Options, and
// Voters holds the normalized email of everyone who has voted.
type Poll struct {
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Options        []string       `json:"options"`
	CreatedAt      time.Time      `json:"created_at"`
	ExpirationDate time.Time      `json:"expiration_date"`
	Status         Status         `json:"status"`
	Results        map[string]int `json:"results"`
	Voters         []string       `json:"voters"`
}

// Clone returns a deep copy of the poll.
func (p *Poll) Clone() *Poll {
	cp := *p
	cp.Options = append([]string(nil), p.Options...)
	cp.Voters = append([]string(nil), p.Voters...)
	cp.Results = make(map[string]int, len(p.Results))
	for k, v := range p.Results {
		cp.Results[k] = v
	}
	return &cp
}

// Collection is the full set of polls keyed by ID. It is the unit of
// persistence: stores load and save it wholesale.
type Collection struct {
	Polls map[string]*Poll `json:"polls"`
}

func NewCollection() *Collection {
	return &Collection{Polls: make(map[string]*Poll)}
}

// Clone returns a deep copy of the collection.
func (c *Collection) Clone() *Collection {
	cp := NewCollection()
	for id, p := range c.Polls {
		cp.Polls[id] = p.Clone()
	}
	return cp
}
