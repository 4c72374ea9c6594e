// Package ctcheck is a statistical leakage detector for the queue's
// insert and remove primitives: it times many executions of one
// primitive against two classes of input (a fixed string and fresh
// random strings) and runs a Welch's t-test over the two timing
// populations. A large t statistic means execution time depends on
// the input, i.e. the primitive is not constant time.
//
// This is leakage detection, not a timing attack. The execution time
// distribution has a fat right tail (scheduler preemption, GC), so
// each batch drops its edge measurements and non-positive deltas
// before feeding the accumulator, and a check retries a few times
// before declaring failure.
//
// The package drives the queue strictly through its public API.
package ctcheck

import (
	"math"
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tychoish/queue"
)

// Operation selects which queue primitive a check drives.
type Operation int

const (
	InsertHead Operation = iota
	InsertTail
	RemoveHead
	RemoveTail
)

func (op Operation) String() string {
	switch op {
	case InsertHead:
		return "insert_head"
	case InsertTail:
		return "insert_tail"
	case RemoveHead:
		return "remove_head"
	case RemoveTail:
		return "remove_tail"
	default:
		return "unknown"
	}
}

// Thresholds for Welch's t-test.
const (
	// thresholdModerate fails the check.
	thresholdModerate = 10
	// thresholdBananas fails the check with overwhelming
	// probability; a trial hitting it is not worth retrying.
	thresholdBananas = 500
)

const (
	defaultMeasurements = 10000
	defaultTries        = 10

	// batchSize measurements are taken per batch; the first and
	// last dropEdge of each batch are discarded as warmup/cooldown
	// noise.
	batchSize = 150
	dropEdge  = 20

	// chunkSize is the length of the candidate strings, and
	// steadyState the number of elements kept in the queue while
	// measuring, so every timed call sees the same structure.
	chunkSize   = 16
	steadyState = 64
)

var fixedInput = strings.Repeat("0", chunkSize)

func randomInput() string {
	buf := make([]byte, chunkSize)
	for i := range buf {
		buf[i] = byte('a' + rand.Intn(26))
	}
	return string(buf)
}

// Result reports the outcome of checking one operation.
type Result struct {
	Operation    Operation
	Measurements int
	MaxT         float64
	MaxTau       float64
	Pass         bool
}

// Checker runs constant-time checks against the queue primitives.
// The zero value is usable; the fields override the defaults.
type Checker struct {
	// Logger receives per-trial reports. When nil, reporting is
	// discarded.
	Logger *zap.Logger

	// Measurements is the number of accepted measurements a trial
	// needs before its verdict counts. Default 10000.
	Measurements int

	// Tries bounds how many trials an operation gets before the
	// check gives up and reports the last result. Default 10.
	Tries int
}

func (c *Checker) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

func (c *Checker) measurements() int {
	if c.Measurements <= 0 {
		return defaultMeasurements
	}
	return c.Measurements
}

func (c *Checker) tries() int {
	if c.Tries <= 0 {
		return defaultTries
	}
	return c.Tries
}

// Check measures the given operation until it either passes a trial
// or exhausts the configured tries, and returns the last trial's
// result.
func (c *Checker) Check(op Operation) Result {
	var res Result
	for trial := 0; trial < c.tries(); trial++ {
		res = c.trial(op)

		c.logger().Info("timing trial",
			zap.String("op", op.String()),
			zap.Int("trial", trial+1),
			zap.Int("measurements", res.Measurements),
			zap.Float64("max_t", res.MaxT),
			zap.Float64("max_tau", res.MaxTau),
			zap.Float64("detect_estimate", 25/(res.MaxTau*res.MaxTau)),
		)

		if res.Pass || res.MaxT > thresholdBananas {
			break
		}
	}
	return res
}

// trial runs one full measurement campaign for op: a steady-state
// queue, batches of timed operations with edge cropping, and a
// t-test verdict once enough measurements accumulate.
func (c *Checker) trial(op Operation) Result {
	t := &welch{}

	list := queue.New()
	defer list.Destroy()
	for i := 0; i < steadyState; i++ {
		list.PushBack(fixedInput)
	}

	target := c.measurements()
	for int(t.observations()) < target {
		c.batch(list, op, t)
	}

	maxT := math.Abs(t.compute())
	obs := t.observations()

	return Result{
		Operation:    op,
		Measurements: int(obs),
		MaxT:         maxT,
		MaxTau:       maxT / math.Sqrt(obs),
		Pass:         maxT <= thresholdModerate,
	}
}

type sample struct {
	elapsed int64
	class   int
}

func (c *Checker) batch(list *queue.List, op Operation, t *welch) {
	var samples [batchSize]sample

	for i := range samples {
		class := rand.Intn(2)
		input := fixedInput
		if class == 1 {
			input = randomInput()
		}
		samples[i] = sample{elapsed: measure(list, op, input), class: class}
	}

	for _, s := range samples[dropEdge : batchSize-dropEdge] {
		// clock went backwards or the measurement was dropped
		if s.elapsed <= 0 {
			continue
		}
		t.push(float64(s.elapsed), s.class)
	}
}

// measure times exactly one primitive call, then undoes its effect so
// the queue stays at steady state for the next measurement.
func measure(list *queue.List, op Operation, input string) int64 {
	switch op {
	case InsertHead:
		start := time.Now()
		list.PushFront(input)
		elapsed := time.Since(start)
		list.PopFront().Release()
		return int64(elapsed)
	case InsertTail:
		start := time.Now()
		list.PushBack(input)
		elapsed := time.Since(start)
		list.PopBack().Release()
		return int64(elapsed)
	case RemoveHead:
		list.PushFront(input)
		start := time.Now()
		e := list.PopFront()
		elapsed := time.Since(start)
		e.Release()
		return int64(elapsed)
	case RemoveTail:
		list.PushBack(input)
		start := time.Now()
		e := list.PopBack()
		elapsed := time.Since(start)
		e.Release()
		return int64(elapsed)
	default:
		return 0
	}
}
