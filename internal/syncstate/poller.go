package syncstate

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/julianstephens/hrportal/internal/logger"
)

// Job is one poll. Its context is canceled when the next tick fires or the
// poller stops.
type Job func(ctx context.Context) error

// cronLogger routes cron's own logging through the app logger
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	logger.Debug("cron: "+msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	logger.Error("cron: "+msg, append([]interface{}{"err", err}, keysAndValues...)...)
}

// Poller runs named jobs on fixed intervals. A tick that fires while the
// previous run of the same job is still in flight cancels that run first.
type Poller struct {
	cron   *cron.Cron
	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	jobs     map[string]Job
	inflight map[string]context.CancelFunc
	wg       sync.WaitGroup
}

// NewPoller creates a stopped poller whose jobs inherit parent's context
func NewPoller(parent context.Context) *Poller {
	ctx, cancel := context.WithCancel(parent)
	return &Poller{
		cron:     cron.New(cron.WithChain(cron.Recover(cronLogger{})), cron.WithLogger(cronLogger{})),
		ctx:      ctx,
		cancel:   cancel,
		jobs:     make(map[string]Job),
		inflight: make(map[string]context.CancelFunc),
	}
}

// Every schedules job under name. Intervals below a second run every second.
func (p *Poller) Every(name string, interval time.Duration, job Job) error {
	p.mu.Lock()
	if _, exists := p.jobs[name]; exists {
		p.mu.Unlock()
		return fmt.Errorf("poll job %q already registered", name)
	}
	p.jobs[name] = job
	p.mu.Unlock()

	if _, err := p.cron.AddFunc(fmt.Sprintf("@every %s", interval), func() { p.Fire(name) }); err != nil {
		return fmt.Errorf("failed to schedule %q: %w", name, err)
	}
	return nil
}

// Start begins ticking
func (p *Poller) Start() {
	p.cron.Start()
}

// Fire runs a job now, canceling its previous run if still in flight
func (p *Poller) Fire(name string) {
	p.mu.Lock()
	job, ok := p.jobs[name]
	if !ok || p.ctx.Err() != nil {
		p.mu.Unlock()
		return
	}
	if prev, running := p.inflight[name]; running {
		prev()
	}
	ctx, cancel := context.WithCancel(p.ctx)
	p.inflight[name] = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	defer p.wg.Done()
	err := job(ctx)

	p.mu.Lock()
	// A newer run may have replaced this one while it was running
	if ctx.Err() == nil {
		delete(p.inflight, name)
	}
	p.mu.Unlock()
	cancel()

	if err != nil && ctx.Err() == nil {
		logger.Warn("poll failed", "job", name, "err", err)
	}
}

// Stop cancels every in-flight run and waits for the jobs to return
func (p *Poller) Stop() {
	p.mu.Lock()
	p.cancel()
	p.mu.Unlock()
	<-p.cron.Stop().Done()
	p.wg.Wait()
}
