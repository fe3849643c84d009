// Package live keeps dashboards up to date with the calling platform's
// call list. A Poller fetches the list on a fixed interval while anyone is
// watching and a Hub pushes each fresh snapshot to websocket clients.
package live

import (
	"context"
	"sync"
	"time"

	"calldesk/internal/metrics"
	"calldesk/internal/vapi"

	"go.uber.org/zap"
)

const DefaultLimit = 50

// Lister is satisfied by *vapi.Client.
type Lister interface {
	ListCalls(ctx context.Context, limit int, assistantID string) ([]vapi.Call, error)
}

// Snapshot is the result of one poll. Seq grows with every poll started,
// so a larger Seq always reflects a newer request.
type Snapshot struct {
	Seq       uint64      `json:"seq"`
	Calls     []vapi.Call `json:"calls"`
	Active    int         `json:"active"`
	FetchedAt time.Time   `json:"fetchedAt"`
	Error     string      `json:"error,omitempty"`
}

type PollerConfig struct {
	Interval    time.Duration
	Timeout     time.Duration
	Limit       int
	AssistantID string
}

type Poller struct {
	lister Lister
	cfg    PollerConfig

	mu        sync.Mutex
	seq       uint64
	published uint64
	latest    *Snapshot
	subs      map[chan Snapshot]struct{}

	wake chan struct{}
}

func NewPoller(lister Lister, cfg PollerConfig) *Poller {
	if cfg.Interval <= 0 {
		cfg.Interval = 5 * time.Second
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = cfg.Interval
	}
	if cfg.Limit <= 0 {
		cfg.Limit = DefaultLimit
	}
	return &Poller{
		lister: lister,
		cfg:    cfg,
		subs:   make(map[chan Snapshot]struct{}),
		wake:   make(chan struct{}, 1),
	}
}

// Run polls until ctx is done. Ticks with no subscribers are skipped.
// Each poll runs on its own goroutine so a slow request never delays the
// next tick; publish drops whichever finishes out of order.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		case <-p.wake:
		}
		if p.subscribers() == 0 {
			continue
		}
		seq := p.nextSeq()
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.poll(ctx, seq)
		}()
	}
}

func (p *Poller) poll(ctx context.Context, seq uint64) {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()

	snap := Snapshot{Seq: seq, FetchedAt: time.Now().UTC()}
	calls, err := p.lister.ListCalls(ctx, p.cfg.Limit, p.cfg.AssistantID)
	if err != nil {
		metrics.LivePolls.WithLabelValues("error").Inc()
		zap.L().Warn("live poll failed", zap.Uint64("seq", seq), zap.Error(err))
		snap.Error = err.Error()
	} else {
		snap.Calls = calls
		snap.Active = countActive(calls)
	}
	p.publish(snap)
}

func countActive(calls []vapi.Call) int {
	n := 0
	for _, c := range calls {
		if c.Status == "in-progress" {
			n++
		}
	}
	return n
}

func (p *Poller) nextSeq() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.seq++
	return p.seq
}

// publish delivers snap to every subscriber unless a newer poll has
// already been published. It reports whether snap was delivered.
func (p *Poller) publish(snap Snapshot) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if snap.Seq <= p.published {
		metrics.LivePolls.WithLabelValues("stale").Inc()
		zap.L().Warn("dropping stale live poll", zap.Uint64("seq", snap.Seq), zap.Uint64("published", p.published))
		return false
	}
	if snap.Error == "" {
		metrics.LivePolls.WithLabelValues("ok").Inc()
	}
	p.published = snap.Seq
	p.latest = &snap
	for ch := range p.subs {
		offer(ch, snap)
	}
	return true
}

// offer replaces any undelivered snapshot in ch with snap.
func offer(ch chan Snapshot, snap Snapshot) {
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- snap:
	default:
	}
}

// Subscribe registers a watcher. The latest snapshot, if any, is delivered
// right away and a fresh poll is requested. Call cancel when done.
func (p *Poller) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 1)

	p.mu.Lock()
	p.subs[ch] = struct{}{}
	if p.latest != nil {
		ch <- *p.latest
	}
	p.mu.Unlock()

	select {
	case p.wake <- struct{}{}:
	default:
	}

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			p.mu.Lock()
			delete(p.subs, ch)
			p.mu.Unlock()
		})
	}
}

func (p *Poller) subscribers() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.subs)
}

// Latest returns the most recently published snapshot.
func (p *Poller) Latest() (Snapshot, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.latest == nil {
		return Snapshot{}, false
	}
	return *p.latest, true
}
