package cpu

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Amr-9/SeedHunter/pkg/generator"
	"github.com/Amr-9/SeedHunter/pkg/generator/wallet"
	"go.uber.org/zap"
)

// pauseInterval is how long a paused worker sleeps between flag checks.
const pauseInterval = 50 * time.Millisecond

// CPUGenerator implements the Generator interface using CPU-based goroutines.
// Every worker derives complete wallets (TRON, EVM and Solana) from fresh
// mnemonics and tests the configured chains against the match policy.
type CPUGenerator struct {
	deriver  *wallet.Deriver
	sink     generator.Sink
	observer generator.Observer
	logger   *zap.Logger

	generated atomic.Uint64 // Candidates processed in the current run
	found     atomic.Uint64 // Vanity hits in the current run
	state     atomic.Int32
	slot      generator.ResultSlot

	mu  sync.Mutex // serializes Start against Stop
	run *run

	statsMu       sync.Mutex
	startTime     time.Time
	stopTime      time.Time
	lastSample    time.Time
	lastGenerated uint64
}

// run is the per-Start state shared by the workers of one search.
type run struct {
	chains  []generator.Chain
	policy  generator.MatchPolicy
	batch   int
	saveAll bool

	stop  atomic.Bool
	pause atomic.Bool
	wg    sync.WaitGroup
	done  chan struct{}
}

// Option configures a CPUGenerator.
type Option func(*CPUGenerator)

// WithDeriver sets the wallet pipeline used for every candidate.
func WithDeriver(d *wallet.Deriver) Option {
	return func(g *CPUGenerator) { g.deriver = d }
}

// WithSink sets where hits are persisted.
func WithSink(s generator.Sink) Option {
	return func(g *CPUGenerator) { g.sink = s }
}

// WithObserver sets the receiver of search events.
func WithObserver(o generator.Observer) Option {
	return func(g *CPUGenerator) { g.observer = o }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(g *CPUGenerator) { g.logger = l }
}

// NewCPUGenerator creates a new CPU-based generator.
// Without options it uses system entropy, keeps hits only in the result
// slot and logs nothing.
func NewCPUGenerator(opts ...Option) *CPUGenerator {
	g := &CPUGenerator{}
	for _, opt := range opts {
		opt(g)
	}
	if g.deriver == nil {
		g.deriver = wallet.NewDeriver()
	}
	if g.observer == nil {
		g.observer = nopObserver{}
	}
	if g.logger == nil {
		g.logger = zap.NewNop()
	}
	return g
}

// Name returns the implementation name.
func (g *CPUGenerator) Name() string {
	return "CPU"
}

// State returns the current lifecycle state.
func (g *CPUGenerator) State() generator.State {
	return generator.State(g.state.Load())
}

// Start begins the search. It returns ErrInvalidConfig for unusable
// configurations and ErrAlreadyRunning while a previous run is active.
func (g *CPUGenerator) Start(ctx context.Context, config *generator.Config) error {
	if err := config.Validate(); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	switch g.State() {
	case generator.StateRunning, generator.StatePaused:
		return generator.ErrAlreadyRunning
	}

	r := &run{
		chains:  append([]generator.Chain(nil), config.Chains...),
		policy:  generator.NewMatchPolicy(config.Patterns),
		batch:   config.BatchSize,
		saveAll: config.SaveAll,
		done:    make(chan struct{}),
	}

	g.generated.Store(0)
	g.found.Store(0)
	g.slot.Reset()

	now := time.Now()
	g.statsMu.Lock()
	g.startTime = now
	g.stopTime = time.Time{}
	g.lastSample = now
	g.lastGenerated = 0
	g.statsMu.Unlock()

	g.run = r
	g.state.Store(int32(generator.StateRunning))

	r.wg.Add(config.Threads)
	for i := 0; i < config.Threads; i++ {
		go g.worker(r)
	}

	go func() {
		r.wg.Wait()
		g.statsMu.Lock()
		g.stopTime = time.Now()
		g.statsMu.Unlock()
		g.state.Store(int32(generator.StateStopped))
		close(r.done)
	}()

	// Cancelling the context stops this run only.
	go func() {
		select {
		case <-ctx.Done():
			r.stop.Store(true)
		case <-r.done:
		}
	}()

	g.logger.Info("search started",
		zap.Int("threads", config.Threads),
		zap.Int("batch_size", config.BatchSize),
		zap.Strings("patterns", r.policy.Patterns()),
		zap.Bool("save_all", config.SaveAll))
	return nil
}

// Pause suspends the workers at their next batch boundary.
func (g *CPUGenerator) Pause() error {
	r := g.current()
	if r == nil || !g.state.CompareAndSwap(int32(generator.StateRunning), int32(generator.StatePaused)) {
		return generator.ErrNotRunning
	}
	r.pause.Store(true)
	return nil
}

// Resume continues a paused search.
func (g *CPUGenerator) Resume() error {
	r := g.current()
	if r == nil || !g.state.CompareAndSwap(int32(generator.StatePaused), int32(generator.StateRunning)) {
		return generator.ErrNotRunning
	}
	r.pause.Store(false)
	return nil
}

// Stop ends the current run and blocks until every worker has exited.
// It is safe to call more than once and from several goroutines.
func (g *CPUGenerator) Stop() {
	r := g.current()
	if r == nil {
		return
	}
	r.stop.Store(true)
	<-r.done
}

// Done returns a channel closed when the current run has stopped.
// Before the first Start the channel is already closed.
func (g *CPUGenerator) Done() <-chan struct{} {
	if r := g.current(); r != nil {
		return r.done
	}
	closed := make(chan struct{})
	close(closed)
	return closed
}

// Wait blocks until the current run has stopped.
func (g *CPUGenerator) Wait() {
	<-g.Done()
}

// Take removes and returns the latest unconsumed hit.
func (g *CPUGenerator) Take() (generator.Hit, bool) {
	return g.slot.Take()
}

// Dropped returns how many hits were replaced before being taken.
func (g *CPUGenerator) Dropped() uint64 {
	return g.slot.Dropped()
}

// Poll returns statistics whose rate covers the interval since the previous
// Poll (or Start), then moves the sampling baseline.
func (g *CPUGenerator) Poll() generator.Stats {
	g.statsMu.Lock()
	defer g.statsMu.Unlock()

	now := time.Now()
	generated := g.generated.Load()

	var rate float64
	if dt := now.Sub(g.lastSample).Seconds(); dt > 0 && generated >= g.lastGenerated {
		rate = float64(generated-g.lastGenerated) / dt
	}
	g.lastSample = now
	g.lastGenerated = generated

	return generator.Stats{
		Generated:   generated,
		Found:       g.found.Load(),
		HashRate:    rate,
		ElapsedSecs: g.elapsedLocked(now),
	}
}

// Stats returns statistics with the rate averaged since Start.
func (g *CPUGenerator) Stats() generator.Stats {
	g.statsMu.Lock()
	elapsed := g.elapsedLocked(time.Now())
	g.statsMu.Unlock()

	generated := g.generated.Load()

	var rate float64
	if elapsed > 0 {
		rate = float64(generated) / elapsed
	}

	return generator.Stats{
		Generated:   generated,
		Found:       g.found.Load(),
		HashRate:    rate,
		ElapsedSecs: elapsed,
	}
}

func (g *CPUGenerator) elapsedLocked(now time.Time) float64 {
	if g.startTime.IsZero() {
		return 0
	}
	if !g.stopTime.IsZero() {
		now = g.stopTime
	}
	return now.Sub(g.startTime).Seconds()
}

func (g *CPUGenerator) current() *run {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.run
}

// worker processes batches until the run is stopped. The pause flag is
// checked between batches, the stop flag between candidates.
func (g *CPUGenerator) worker(r *run) {
	defer r.wg.Done()

	for !r.stop.Load() {
		if r.pause.Load() {
			time.Sleep(pauseInterval)
			continue
		}

		for i := 0; i < r.batch; i++ {
			if r.stop.Load() {
				return
			}
			g.candidate(r)
		}
	}
}

// candidate derives one wallet and reports every configured chain that matches.
func (g *CPUGenerator) candidate(r *run) {
	w, err := g.deriver.Generate()
	g.generated.Add(1)
	g.observer.CandidateGenerated()
	if err != nil {
		g.observer.CandidateFailed()
		g.logger.Debug("candidate skipped", zap.Error(err))
		return
	}

	matched := false
	for _, chain := range r.chains {
		pattern, ok := r.policy.MatchedPattern(w.Record(chain).Address)
		if !ok {
			continue
		}
		matched = true

		hit := generator.Hit{
			Chain:   chain,
			Wallet:  w,
			Vanity:  true,
			Pattern: pattern,
			FoundAt: time.Now(),
		}
		g.found.Add(1)
		g.observer.HitFound(chain)

		if g.slot.Put(hit) {
			g.observer.HitDropped()
			g.logger.Warn("unconsumed hit replaced", zap.Uint64("dropped", g.slot.Dropped()))
		}
		g.persist(hit)
	}

	if !matched && r.saveAll {
		g.persist(generator.Hit{
			Chain:   r.chains[0],
			Wallet:  w,
			FoundAt: time.Now(),
		})
	}
}

func (g *CPUGenerator) persist(hit generator.Hit) {
	if g.sink == nil {
		return
	}
	if err := g.sink.Save(hit); err != nil {
		g.observer.PersistFailed()
		g.logger.Warn("failed to save hit",
			zap.String("chain", hit.Chain.String()),
			zap.String("address", hit.Record().Address),
			zap.Error(err))
	}
}

type nopObserver struct{}

func (nopObserver) CandidateGenerated()      {}
func (nopObserver) CandidateFailed()         {}
func (nopObserver) HitFound(generator.Chain) {}
func (nopObserver) HitDropped()              {}
func (nopObserver) PersistFailed()           {}

var _ generator.Generator = (*CPUGenerator)(nil)
