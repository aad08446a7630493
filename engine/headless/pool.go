package headless

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/charmbracelet/log"
)

// Summary aggregates the results of many sessions.
type Summary struct {
	Sessions int
	Won      int
	Lost     int
	// Unfinished counts sessions whose last round was still being played or never started.
	Unfinished int
	BestScore  uint32
	Elapsed    time.Duration
}

// Summarize counts outcomes and finds the best winning score.
func Summarize(results []Result) Summary {
	s := Summary{Sessions: len(results)}
	for _, r := range results {
		switch r.Outcome {
		case OutcomeWon:
			s.Won++
			if r.Score > s.BestScore {
				s.BestScore = r.Score
			}
		case OutcomeLost:
			s.Lost++
		default:
			s.Unfinished++
		}
	}
	return s
}

// RunSessions plays every session on a pool of at most workers goroutines and waits for all of them.
// Each session runs start to finish on one worker. Results are returned in the order of sessions;
// errors from individual sessions are joined.
//
// Parameters:
//   - ctx: cancels sessions between frames
//   - sessions: the sessions to play
//   - workers: maximum concurrent sessions (at least 1)
//   - logger: receives a line per finished session, or nil
//
// Returns:
//   - []Result: one result per session
//   - error: the joined session errors, or nil
func RunSessions(ctx context.Context, sessions []*Session, workers int, logger *log.Logger) ([]Result, error) {
	if len(sessions) == 0 {
		return nil, nil
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if workers > len(sessions) {
		workers = len(sessions)
	}

	pool := worker.NewDynamicWorkerPool(workers, len(sessions), 1*time.Second)
	defer pool.Stop()

	results := make([]Result, len(sessions))
	errs := make([]error, len(sessions))

	// pool.Wait blocks until workers idle out, so a WaitGroup is the barrier.
	var wg sync.WaitGroup
	for i, s := range sessions {
		wg.Add(1)
		pool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				start := time.Now()
				r, err := s.Run(ctx)
				results[i], errs[i] = r, err
				logger.Debug("session done", "session", r.ID, "outcome", r.Outcome, "score", r.Score, "elapsed", time.Since(start), "error", err)
				return r, err
			},
		})
	}
	wg.Wait()

	return results, errors.Join(errs...)
}
