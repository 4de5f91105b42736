package runner

import (
	"context"
	"fmt"
	"strconv"

	"github.com/SebastiaanZ/aoc-2020/internal/apperr"
	"github.com/SebastiaanZ/aoc-2020/internal/cache"
	"github.com/SebastiaanZ/aoc-2020/internal/client"
)

// Status is the recorded outcome of a submission attempt.
type Status string

const (
	StatusCorrect      Status = "correct"
	StatusWrong        Status = "wrong"
	StatusPending      Status = "pending"
	StatusFailed       Status = "failed"
	StatusNotSubmitted Status = "not submitted"
)

// terminal reports whether a status is a final verdict worth caching.
func (s Status) terminal() bool { return s == StatusCorrect || s == StatusWrong }

// Submit sends one answer for one part to the website, at most once per
// (part, answer) pair.
//
// A previously recorded verdict short-circuits without a network call. A
// "too recently" response triggers exactly one retry after the
// server-dictated cooldown. Only correct and wrong verdicts are written back
// to the cache; pending and failed outcomes stay unresolved so a future run
// may try again.
func (p *Puzzle) Submit(ctx context.Context, part string, answer cache.Value) (Status, error) {
	key := answer.Key()
	if answer.IsNull() || key == "" {
		return "", apperr.ErrEmptyAnswer
	}

	d := strconv.Itoa(p.Day)

	var previous cache.Value
	err := p.store.Update(func(s *cache.Store) error {
		v, err := s.Get("cached_submissions", part, key)
		previous = v
		return err
	})
	if err != nil {
		return "", err
	}
	if text, ok := previous.Str(); ok {
		log.Logf(d, "answer %q for part %s was already submitted and came back as %q", key, part, text)
		return Status(text), nil
	}

	cl := p.opts.Client
	if cl == nil || !cl.HasSession() {
		return "", apperr.ErrNoSession
	}

	var result Status
	var message string

attempts:
	for attempt := 1; attempt <= 2; attempt++ {
		log.Logf(d, "trying to submit answer (attempt %d/2)", attempt)
		resp, err := cl.SubmitAnswer(ctx, p.Day, part, key)
		if err != nil {
			return "", err
		}
		message = resp.Message

		switch resp.Verdict {
		case client.VerdictCorrect:
			result = StatusCorrect
		case client.VerdictWrong:
			result = StatusWrong
		case client.VerdictPending:
			result = StatusPending
			log.Logf(d, "answered too fast after an incorrect answer")
			if attempt == 1 {
				log.Logf(d, "retrying in %s", resp.Wait)
				p.opts.Sleep(resp.Wait)
				continue attempts
			}
			log.Logf(d, "out of retries, aborting answer submission")
		case client.VerdictWrongLevel:
			result = StatusFailed
			log.Logf(d, "the website reports the wrong level: part %s is already solved or not unlocked yet", part)
			if err := p.opts.OpenPage(cl.PuzzleURL(p.Day)); err != nil {
				log.Logf(d, "could not open puzzle page: %v", err)
			}
		default:
			result = StatusFailed
			log.Logf(d, "received an unexpected answer from the website:\n\n%s", message)
		}
		break
	}

	if !result.terminal() {
		log.Logf(d, "failed to submit answer")
		return result, nil
	}

	fmt.Fprintf(p.opts.Out, "Submitted `%s` as the answer of day %d, part %s.\n", key, p.Day, part)
	fmt.Fprintf(p.opts.Out, "The answer is %s\n", result)
	if result == StatusWrong {
		fmt.Fprintf(p.opts.Out, "Response: %s\n", message)
	}

	err = p.store.Update(func(s *cache.Store) error {
		return s.Set(cache.Text(string(result)), "cached_submissions", part, key)
	})
	if err != nil {
		return result, err
	}

	// A correct part one unlocks part two; show it right away.
	if part == "1" && result == StatusCorrect {
		if err := p.opts.OpenPage(cl.PuzzleURL(p.Day)); err != nil {
			log.Logf(d, "could not open puzzle page: %v", err)
		}
	}
	return result, nil
}
