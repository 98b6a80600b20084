// Package bench times prime producers and reports one line per run.
package bench

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
	"time"

	"github.com/tuannh982/prime-sieve/utils/collections"
	"github.com/tuannh982/prime-sieve/utils/math"
	"github.com/tuannh982/prime-sieve/utils/timer"

	log "github.com/sirupsen/logrus"
)

const reportDigits = 5

var (
	ErrDuplicateTask = errors.New("duplicate task")
	ErrTaskPanicked  = errors.New("task panicked")
	ErrNoResult      = errors.New("no result")
)

// Task is a labelled unit of work. run returns how many primes it produced.
type Task struct {
	Label string
	run   func() int
}

// Eager wraps a producer that returns a materialized sequence. Only the call
// itself is timed; the slice is discarded.
func Eager(label string, producer func() []int) Task {
	return Task{
		Label: label,
		run: func() int {
			return len(producer())
		},
	}
}

// Lazy wraps a producer of a lazy sequence. The timed section covers building
// the sequence and draining it to exhaustion.
func Lazy(label string, producer func() iter.Seq[int]) Task {
	return Task{
		Label: label,
		run: func() int {
			count := 0
			for range producer() {
				count++
			}
			return count
		},
	}
}

type Result struct {
	Label   string
	Elapsed time.Duration
	Count   int
	Err     error
}

// Seconds is the elapsed time in seconds rounded for the report.
func (r Result) Seconds() float64 {
	return math.Round(r.Elapsed.Seconds(), reportDigits)
}

func (r Result) String() string {
	if r.Err != nil {
		return fmt.Sprintf("Program: %s    failed --- %v ---", r.Label, r.Err)
	}
	return fmt.Sprintf("Program: %s    runs in --- %s seconds ---", r.Label, formatSeconds(r.Seconds()))
}

// formatSeconds prints the shortest form that keeps at least one decimal,
// so whole seconds read "2.0".
func formatSeconds(s float64) string {
	str := strconv.FormatFloat(s, 'f', -1, 64)
	if !strings.Contains(str, ".") {
		str += ".0"
	}
	return str
}

type Runner struct {
	out     io.Writer
	log     *log.Entry
	clock   timer.Clock
	pending collections.Queue[Task]
	labels  collections.Set[Task]
	results collections.Map[string, Result]
}

func NewRunner(out io.Writer, logger *log.Entry) *Runner {
	return &Runner{
		out:     out,
		log:     logger,
		clock:   time.Now,
		pending: collections.NewQueue[Task](),
		labels: collections.NewHashSet(func(t Task) string {
			return t.Label
		}),
		results: collections.NewLinkedHashMap[string, Result](),
	}
}

// WithClock replaces the wall clock used to time tasks.
func (r *Runner) WithClock(clock timer.Clock) *Runner {
	r.clock = clock
	return r
}

func (r *Runner) RunEager(label string, producer func() []int) Result {
	return r.run(Eager(label, producer))
}

func (r *Runner) RunLazy(label string, producer func() iter.Seq[int]) Result {
	return r.run(Lazy(label, producer))
}

// Add queues a task for RunAll. Labels must be unique among queued tasks.
func (r *Runner) Add(task Task) error {
	if err := r.labels.Add(task); err != nil {
		return fmt.Errorf("%w: %s", ErrDuplicateTask, task.Label)
	}
	r.pending.Push(task)
	return nil
}

// RunAll runs the queued tasks in the order they were added. A task that
// panics is reported as failed and the remaining tasks still run.
func (r *Runner) RunAll() []Result {
	results := make([]Result, 0, r.pending.Size())
	for r.pending.Size() > 0 {
		task := r.pending.Pop()
		_ = r.labels.Remove(task)
		results = append(results, r.run(task))
	}
	return results
}

func (r *Runner) Result(label string) (Result, error) {
	res, err := r.results.Get(label)
	if err != nil {
		return res, fmt.Errorf("%w: %s", ErrNoResult, label)
	}
	return res, nil
}

// Results returns the latest result of every label, in first-run order.
func (r *Runner) Results() []Result {
	return r.results.Values()
}

func (r *Runner) run(task Task) (res Result) {
	res.Label = task.Label
	logger := r.log.WithField("variant", task.Label)
	sw := timer.NewStopwatchWithClock(r.clock)
	defer func() {
		if p := recover(); p != nil {
			res.Elapsed = sw.Elapsed()
			if err, ok := p.(error); ok {
				res.Err = fmt.Errorf("%w: %w", ErrTaskPanicked, err)
			} else {
				res.Err = fmt.Errorf("%w: %v", ErrTaskPanicked, p)
			}
			logger.WithError(res.Err).Error("benchmark failed")
		}
		_ = r.results.Put(task.Label, res, true)
		r.report(res)
	}()
	logger.Debug("benchmark started")
	sw.Start()
	res.Count = task.run()
	res.Elapsed = sw.Elapsed()
	logger.WithFields(log.Fields{
		"elapsed": res.Elapsed,
		"primes":  res.Count,
	}).Info("benchmark finished")
	return res
}

func (r *Runner) report(res Result) {
	if _, err := fmt.Fprintln(r.out, res.String()); err != nil {
		r.log.WithError(err).Warn("could not write report")
	}
}
