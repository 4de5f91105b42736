// Package client talks to the Advent of Code website: it downloads puzzle
// inputs and submits answers. Authentication uses the session cookie from the
// AOC_SESSION environment variable, injected into every request by a custom
// transport.
package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/SebastiaanZ/aoc-2020/internal/apperr"
	"github.com/SebastiaanZ/aoc-2020/internal/logging"
	"github.com/SebastiaanZ/aoc-2020/internal/ui"
)

// DefaultBaseURL is the event root all puzzle URLs hang off.
const DefaultBaseURL = "https://adventofcode.com/2020"

var log = &logging.Logger{PrefixText: "Web:", PrefixColor: ui.FgMagenta}

// SetLogger sets an optional destination for request logs.
func SetLogger(w io.Writer) { log.SetWriter(w) }

// sessionTransport injects the session cookie into every request.
type sessionTransport struct {
	base    http.RoundTripper
	session string
}

func (t *sessionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.AddCookie(&http.Cookie{Name: "session", Value: t.session})
	return t.base.RoundTrip(req)
}

// Client performs authenticated requests against one event's base URL.
type Client struct {
	http    *http.Client
	baseURL string
	session string
}

// New creates a Client. timeout is the per-request deadline (0 = none).
// session may be empty; operations that need authentication then fail with
// apperr.ErrNoSession.
func New(baseURL string, session string, timeout time.Duration) *Client {
	session = strings.TrimSpace(session)
	var transport http.RoundTripper = http.DefaultTransport
	if session != "" {
		transport = &sessionTransport{base: http.DefaultTransport, session: session}
	}
	return &Client{
		http:    &http.Client{Timeout: timeout, Transport: transport},
		baseURL: strings.TrimRight(baseURL, "/"),
		session: session,
	}
}

// HasSession reports whether a session cookie is configured.
func (c *Client) HasSession() bool { return c.session != "" }

// PuzzleURL returns the puzzle page for a day.
func (c *Client) PuzzleURL(day int) string {
	return fmt.Sprintf("%s/day/%d", c.baseURL, day)
}

func (c *Client) inputURL(day int) string { return c.PuzzleURL(day) + "/input" }

func (c *Client) answerURL(day int) string { return c.PuzzleURL(day) + "/answer" }

// FetchInput downloads the raw puzzle input for a day.
func (c *Client) FetchInput(ctx context.Context, day int) (string, error) {
	if c.session == "" {
		return "", apperr.ErrNoSession
	}

	d := strconv.Itoa(day)
	log.Logf(d, "downloading puzzle input")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.inputURL(day), nil)
	if err != nil {
		return "", err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", apperr.Fetchf("day %d: %v", day, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", apperr.Fetchf("day %d: status code %d", day, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperr.Fetchf("day %d: reading body: %v", day, err)
	}
	log.Logf(d, "input downloaded, %d bytes", len(body))
	return string(body), nil
}

// SubmitAnswer posts an answer for one part of a day's puzzle and classifies
// the website's textual response. Transport-level failures are fatal; the
// classification of a successfully delivered submission is up to the caller.
func (c *Client) SubmitAnswer(ctx context.Context, day int, part string, answer string) (Response, error) {
	if c.session == "" {
		return Response{}, apperr.ErrNoSession
	}

	d := strconv.Itoa(day)
	log.Logf(d, "submitting answer for part %s", part)

	form := url.Values{"level": {part}, "answer": {answer}}
	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.answerURL(day), strings.NewReader(form.Encode()),
	)
	if err != nil {
		return Response{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return Response{}, apperr.Submitf("day %d part %s: %v", day, part, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Response{}, apperr.Submitf("day %d part %s: status code %d", day, part, resp.StatusCode)
	}

	message, err := ExtractMessage(resp.Body)
	if err != nil {
		return Response{}, apperr.Submitf("day %d part %s: parsing response: %v", day, part, err)
	}

	classified := Classify(message)
	log.Logf(d, "submission response classified as %s", classified.Verdict)
	return classified, nil
}
