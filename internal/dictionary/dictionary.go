// Package dictionary is a client for the Free Dictionary API
// (https://dictionaryapi.dev) entry lookup endpoint.
package dictionary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var (
	// ErrNotFound is returned when the service has no entry for the headword.
	ErrNotFound = errors.New("no definitions found")

	// ErrNoEntries is returned for a successful response with an empty entry list.
	ErrNoEntries = errors.New("empty response")
)

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 1 << 20

// Entry is one dictionary entry for a headword.
type Entry struct {
	Word      string     `json:"word"`
	Phonetic  string     `json:"phonetic,omitempty"`
	Phonetics []Phonetic `json:"phonetics,omitempty"`
	Meanings  []Meaning  `json:"meanings"`
}

// Phonetic is one pronunciation of an entry.
type Phonetic struct {
	Text  string `json:"text,omitempty"`
	Audio string `json:"audio,omitempty"`
}

// Meaning groups definitions by part of speech.
type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
}

// Definition is a single sense with an optional usage example.
type Definition struct {
	Definition string `json:"definition"`
	Example    string `json:"example,omitempty"`
}

// StatusError reports a non-2xx response.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("dictionary api returned status: %s", e.Status)
}

// Client looks up headwords over HTTP.
type Client struct {
	endpoint   string
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a client for endpoint; the escaped headword is appended to it.
// A zero timeout leaves requests bounded only by their context.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if !strings.HasSuffix(endpoint, "/") {
		endpoint += "/"
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  "wordly",
	}
}

// Lookup fetches the entries for headword.
func (c *Client) Lookup(ctx context.Context, headword string) ([]Entry, error) {
	headword = strings.TrimSpace(headword)
	if headword == "" {
		return nil, fmt.Errorf("headword is required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+url.PathEscape(headword), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%q: %w", headword, ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var entries []Entry
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}

	return entries, nil
}
