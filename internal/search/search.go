package search

import (
	"context"
	"time"
)

const (
	KindTeam   = "team"
	KindPlayer = "player"
)

// Document is what gets indexed for a team or player.
type Document struct {
	Kind      string    `json:"kind"`
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Sport     string    `json:"sport"`
	Country   string    `json:"country,omitempty"`
	TeamID    *uint     `json:"team_id,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Hit struct {
	Kind  string  `json:"kind"`
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Sport string  `json:"sport"`
	Score float64 `json:"score"`
}

// Indexer keeps the search index in step with writes.
type Indexer interface {
	Index(ctx context.Context, doc Document) error
	Delete(ctx context.Context, kind string, id uint) error
}

type Searcher interface {
	Search(ctx context.Context, query, kind string, limit int) ([]Hit, error)
}

type Engine interface {
	Indexer
	Searcher
}
