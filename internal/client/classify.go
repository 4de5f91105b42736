package client

import (
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Verdict is the classification of a submission response.
type Verdict int

const (
	VerdictUnknown Verdict = iota
	VerdictCorrect
	VerdictWrong
	VerdictPending
	VerdictWrongLevel
)

func (v Verdict) String() string {
	switch v {
	case VerdictCorrect:
		return "correct"
	case VerdictWrong:
		return "wrong"
	case VerdictPending:
		return "pending"
	case VerdictWrongLevel:
		return "wrong level"
	default:
		return "unknown"
	}
}

// Response is a classified submission response. Wait is only set for
// VerdictPending and holds the cooldown the website asked for.
type Response struct {
	Verdict Verdict
	Message string
	Wait    time.Duration
}

var waitRe = regexp.MustCompile(`You have (?:(\d+)m )?(\d+)s left to wait`)

// Classify matches the human-readable response text against the fixed
// prefixes the website is known to return.
func Classify(message string) Response {
	resp := Response{Message: message}
	switch {
	case strings.HasPrefix(message, "That's the right answer"):
		resp.Verdict = VerdictCorrect
	case strings.HasPrefix(message, "You gave an answer too recently"):
		resp.Verdict = VerdictPending
		resp.Wait = parseWait(message)
	case strings.HasPrefix(message, "That's not the right answer"):
		resp.Verdict = VerdictWrong
	case strings.HasPrefix(message, "You don't seem to be solving the right level."):
		resp.Verdict = VerdictWrongLevel
	default:
		resp.Verdict = VerdictUnknown
	}
	return resp
}

// parseWait extracts the server-dictated cooldown from a "too recently"
// response, e.g. "You have 1m 30s left to wait" -> 91s. The extra second
// keeps us from resubmitting a hair too early.
func parseWait(message string) time.Duration {
	m := waitRe.FindStringSubmatch(message)
	if m == nil {
		// The website always states the remaining time; if it ever stops,
		// a minute is a safe cooldown.
		return time.Minute
	}
	minutes := 0
	if m[1] != "" {
		minutes, _ = strconv.Atoi(m[1])
	}
	seconds, _ := strconv.Atoi(m[2])
	return time.Duration(60*minutes+seconds+1) * time.Second
}

// ExtractMessage reduces a response page to its human-readable first
// paragraph (<main><article><p>). When the page has no such paragraph the
// whole body text is returned so an unexpected response still surfaces
// verbatim.
func ExtractMessage(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", err
	}
	if p := doc.Find("main article p").First(); p.Length() > 0 {
		return strings.TrimSpace(p.Text()), nil
	}
	return strings.TrimSpace(doc.Find("body").Text()), nil
}
