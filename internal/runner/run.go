package runner

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/SebastiaanZ/aoc-2020/internal/apperr"
	"github.com/SebastiaanZ/aoc-2020/internal/cache"
	"github.com/SebastiaanZ/aoc-2020/internal/solve"
	"github.com/SebastiaanZ/aoc-2020/internal/ui"
)

// RunOptions control one Run invocation.
type RunOptions struct {
	// Submit sends the most advanced non-null answer to the website after
	// the run.
	Submit bool
	// IgnoreCache recomputes even when a cached answer exists for the
	// current fingerprint.
	IgnoreCache bool
}

// Run executes the day's solution (or serves cached answers), persists the
// results, optionally submits, and prints the summary block.
func (p *Puzzle) Run(ctx context.Context, opts RunOptions) error {
	d := strconv.Itoa(p.Day)

	fingerprint, err := p.Fingerprint()
	if err != nil {
		return err
	}
	answersPath := []string{"cached_answers", fingerprint}

	var cached cache.Value
	err = p.store.Update(func(s *cache.Store) error {
		v, err := s.Get(answersPath...)
		cached = v
		return err
	})
	if err != nil {
		return err
	}
	cachedFields, haveCached := cached.Fields()

	var answerOne, answerTwo cache.Value
	var elapsed time.Duration
	fromCache := false

	if opts.IgnoreCache || !haveCached {
		solver, ok := solve.Lookup(p.Day)
		if !ok {
			return fmt.Errorf(
				"%w: no solver registered for day %d (missing blank import in internal/solutions?)",
				apperr.ErrInvalidLayout, p.Day,
			)
		}

		start := p.opts.Now()
		if prep, ok := solver.(solve.Preparer); ok {
			log.Logf(d, "running prepare function")
			if err := prep.Prepare(p.Context); err != nil {
				return fmt.Errorf("day %d prepare: %w", p.Day, err)
			}
		}
		if answerOne, err = solver.PartOne(p.Context); err != nil {
			return fmt.Errorf("day %d part one: %w", p.Day, err)
		}
		if answerTwo, err = solver.PartTwo(p.Context); err != nil {
			return fmt.Errorf("day %d part two: %w", p.Day, err)
		}
		elapsed = p.opts.Now().Sub(start)

		err = p.store.Update(func(s *cache.Store) error {
			if err := s.Set(answerOne, append(answersPath, "answer_one")...); err != nil {
				return err
			}
			return s.Set(answerTwo, append(answersPath, "answer_two")...)
		})
		if err != nil {
			return err
		}
	} else {
		log.Logf(d, "no changes detected, fetching answers from cache")
		answerOne = cachedFields["answer_one"]
		answerTwo = cachedFields["answer_two"]
		fromCache = true
	}

	if opts.Submit {
		part, answer := "1", answerOne
		if !answerTwo.IsNull() {
			part, answer = "2", answerTwo
		}
		log.Logf(d, "submitting %q as the answer of part %s", answer.Key(), part)
		if _, err := p.Submit(ctx, part, answer); err != nil {
			return err
		}
	}

	statusOne, statusTwo := StatusNotSubmitted, StatusNotSubmitted
	err = p.store.Update(func(s *cache.Store) error {
		one, err := s.GetDefault(cache.Text(string(StatusNotSubmitted)), "cached_submissions", "1", answerOne.Key())
		if err != nil {
			return err
		}
		two, err := s.GetDefault(cache.Text(string(StatusNotSubmitted)), "cached_submissions", "2", answerTwo.Key())
		if err != nil {
			return err
		}
		if text, ok := one.Str(); ok {
			statusOne = Status(text)
		}
		if text, ok := two.Str(); ok {
			statusTwo = Status(text)
		}
		return nil
	})
	if err != nil {
		return err
	}

	ui.RunReport{
		Day:       p.Day,
		AnswerOne: answerOne.Display(),
		AnswerTwo: answerTwo.Display(),
		StatusOne: string(statusOne),
		StatusTwo: string(statusTwo),
		Elapsed:   elapsed,
		Cached:    fromCache,
	}.Render(p.opts.Out)
	return nil
}
