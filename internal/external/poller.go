package external

import (
	"context"
	"sync"
	"time"

	"github.com/DhavalSuthar-24/livescore/internal/metrics"
	"github.com/DhavalSuthar-24/livescore/internal/realtime"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// Poller refreshes the live score cache on a fixed interval and emits
// score:update for every item whose score or status changed.
type Poller struct {
	clock    clockwork.Clock
	interval time.Duration
	fetchers map[Source]LiveFetcher
	cache    *Cache
	emitter  realtime.Emitter
}

func NewPoller(clock clockwork.Clock, interval time.Duration, fetchers map[Source]LiveFetcher, cache *Cache, emitter realtime.Emitter) *Poller {
	if emitter == nil {
		emitter = realtime.NopEmitter{}
	}
	return &Poller{
		clock:    clock,
		interval: interval,
		fetchers: fetchers,
		cache:    cache,
		emitter:  emitter,
	}
}

// Run polls immediately and then on every tick until ctx is done.
func (p *Poller) Run(ctx context.Context) {
	if len(p.fetchers) == 0 {
		log.Info().Msg("no pollable providers configured, poller idle")
		return
	}
	log.Info().Dur("interval", p.interval).Int("sources", len(p.fetchers)).Msg("live score poller started")

	ticker := p.clock.NewTicker(p.interval)
	defer ticker.Stop()

	p.PollOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("live score poller stopped")
			return
		case <-ticker.Chan():
			p.PollOnce(ctx)
		}
	}
}

// PollOnce fetches every source concurrently and waits for all of them.
func (p *Poller) PollOnce(ctx context.Context) {
	var wg sync.WaitGroup
	for source, fetcher := range p.fetchers {
		wg.Add(1)
		go func(source Source, fetcher LiveFetcher) {
			defer wg.Done()
			p.poll(ctx, source, fetcher)
		}(source, fetcher)
	}
	wg.Wait()
}

func (p *Poller) poll(ctx context.Context, source Source, fetcher LiveFetcher) {
	items, err := fetcher.LiveScores(ctx)
	if err != nil {
		metrics.ProviderFetches.WithLabelValues(string(source), "error").Inc()
		log.Warn().Err(err).Str("source", string(source)).Msg("live score fetch failed, keeping previous snapshot")
		p.cache.markError(source, err)
		return
	}
	metrics.ProviderFetches.WithLabelValues(string(source), "ok").Inc()
	if items == nil {
		items = []LiveScore{}
	}

	prev := p.cache.replace(source, items, p.clock.Now().UTC())
	changed := diff(prev.Items, items)
	for _, item := range changed {
		p.emitter.Emit(realtime.ExternalRoom(string(source), item.ID), realtime.EventScoreUpdate, item)
	}
	log.Debug().Str("source", string(source)).Int("items", len(items)).Int("changed", len(changed)).Msg("live scores refreshed")
}

// diff returns the items of next that are new or whose score or status differs from prev.
func diff(prev, next []LiveScore) []LiveScore {
	old := make(map[string]LiveScore, len(prev))
	for _, item := range prev {
		old[item.ID] = item
	}
	var changed []LiveScore
	for _, item := range next {
		before, ok := old[item.ID]
		if !ok || before.HomeScore != item.HomeScore || before.AwayScore != item.AwayScore || before.Status != item.Status {
			changed = append(changed, item)
		}
	}
	return changed
}
