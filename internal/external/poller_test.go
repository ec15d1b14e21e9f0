package external

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

type stubFetcher struct {
	mu     sync.Mutex
	items  []LiveScore
	err    error
	called chan struct{}
}

func (s *stubFetcher) set(items []LiveScore, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items, s.err = items, err
}

func (s *stubFetcher) LiveScores(context.Context) ([]LiveScore, error) {
	s.mu.Lock()
	items, err := s.items, s.err
	s.mu.Unlock()
	if s.called != nil {
		s.called <- struct{}{}
	}
	return items, err
}

type emitted struct {
	room, event string
	data        interface{}
}

type recordingEmitter struct {
	mu     sync.Mutex
	events []emitted
}

func (r *recordingEmitter) Emit(room, event string, data interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, emitted{room, event, data})
}

func (r *recordingEmitter) Broadcast(event string, data interface{}) {
	r.Emit("", event, data)
}

func (r *recordingEmitter) take() []emitted {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.events
	r.events = nil
	return out
}

func TestPollOnceEmitsOnlyChanges(t *testing.T) {
	fetcher := &stubFetcher{}
	fetcher.set([]LiveScore{
		{ID: "1", HomeScore: "0", AwayScore: "0", Status: "IN_PLAY"},
		{ID: "2", HomeScore: "1", AwayScore: "0", Status: "IN_PLAY"},
	}, nil)
	cache := NewCache()
	em := &recordingEmitter{}
	p := NewPoller(clockwork.NewFakeClock(), time.Minute, map[Source]LiveFetcher{SourceFootball: fetcher}, cache, em)

	p.PollOnce(context.Background())
	if got := em.take(); len(got) != 2 {
		t.Fatalf("first poll emitted %d events, want 2", len(got))
	}

	fetcher.set([]LiveScore{
		{ID: "1", HomeScore: "1", AwayScore: "0", Status: "IN_PLAY"},
		{ID: "2", HomeScore: "1", AwayScore: "0", Status: "IN_PLAY"},
	}, nil)
	p.PollOnce(context.Background())
	got := em.take()
	if len(got) != 1 {
		t.Fatalf("second poll emitted %d events, want 1", len(got))
	}
	if got[0].room != "external:football:1" || got[0].event != "score:update" {
		t.Errorf("emitted %+v", got[0])
	}

	p.PollOnce(context.Background())
	if got := em.take(); len(got) != 0 {
		t.Errorf("unchanged poll emitted %d events", len(got))
	}
}

func TestPollErrorKeepsSnapshot(t *testing.T) {
	fetcher := &stubFetcher{}
	fetcher.set([]LiveScore{{ID: "1", HomeScore: "3", AwayScore: "1"}}, nil)
	cache := NewCache()
	clock := clockwork.NewFakeClock()
	p := NewPoller(clock, time.Minute, map[Source]LiveFetcher{SourceCricket: fetcher}, cache, nil)

	p.PollOnce(context.Background())
	first, _ := cache.Get(SourceCricket)

	fetcher.set(nil, errors.New("boom"))
	p.PollOnce(context.Background())

	snap, ok := cache.Get(SourceCricket)
	if !ok {
		t.Fatal("snapshot missing")
	}
	if len(snap.Items) != 1 || snap.Items[0].HomeScore != "3" {
		t.Errorf("items = %+v, want previous snapshot", snap.Items)
	}
	if snap.Error != "boom" {
		t.Errorf("error = %q", snap.Error)
	}
	if !snap.FetchedAt.Equal(first.FetchedAt) {
		t.Errorf("fetched_at moved on failure")
	}

	fetcher.set([]LiveScore{{ID: "1", HomeScore: "3", AwayScore: "1"}}, nil)
	p.PollOnce(context.Background())
	if snap, _ := cache.Get(SourceCricket); snap.Error != "" {
		t.Errorf("error not cleared after recovery: %q", snap.Error)
	}
}

func TestFirstPollFailureLeavesEmptyItems(t *testing.T) {
	fetcher := &stubFetcher{}
	fetcher.set(nil, errors.New("down"))
	cache := NewCache()
	p := NewPoller(clockwork.NewFakeClock(), time.Minute, map[Source]LiveFetcher{SourceFootball: fetcher}, cache, nil)

	p.PollOnce(context.Background())
	snap, _ := cache.Get(SourceFootball)
	if snap.Items == nil || len(snap.Items) != 0 {
		t.Errorf("items = %#v, want empty slice", snap.Items)
	}
}

func TestRunPollsOnTicks(t *testing.T) {
	fetcher := &stubFetcher{called: make(chan struct{}, 4)}
	fetcher.set([]LiveScore{}, nil)
	clock := clockwork.NewFakeClock()
	p := NewPoller(clock, 30*time.Second, map[Source]LiveFetcher{SourceFootball: fetcher}, NewCache(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	wait := func(what string) {
		t.Helper()
		select {
		case <-fetcher.called:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for %s", what)
		}
	}

	wait("initial poll")
	clock.Advance(30 * time.Second)
	wait("poll after tick")

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}

func TestRunWithoutFetchersReturns(t *testing.T) {
	p := NewPoller(clockwork.NewFakeClock(), time.Second, nil, NewCache(), nil)
	done := make(chan struct{})
	go func() {
		p.Run(context.Background())
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run should return when nothing is pollable")
	}
}

func TestDiff(t *testing.T) {
	prev := []LiveScore{{ID: "1", Status: "LIVE"}, {ID: "2", Status: "LIVE"}}
	next := []LiveScore{{ID: "1", Status: "LIVE"}, {ID: "2", Status: "FINISHED"}, {ID: "3"}}
	got := diff(prev, next)
	if len(got) != 2 || got[0].ID != "2" || got[1].ID != "3" {
		t.Errorf("diff = %+v", got)
	}
}
