package search

import (
	"context"

	"gorm.io/gorm"
)

// DatabaseEngine searches the teams and players tables directly. Indexing is a no-op.
type DatabaseEngine struct {
	db *gorm.DB
}

func NewDatabaseEngine(db *gorm.DB) *DatabaseEngine {
	return &DatabaseEngine{db: db}
}

func (d *DatabaseEngine) Index(context.Context, Document) error { return nil }

func (d *DatabaseEngine) Delete(context.Context, string, uint) error { return nil }

func (d *DatabaseEngine) Search(ctx context.Context, query, kind string, limit int) ([]Hit, error) {
	like := "%" + query + "%"
	tables := map[string]string{KindTeam: "teams", KindPlayer: "players"}

	var hits []Hit
	for _, k := range []string{KindTeam, KindPlayer} {
		if kind != "" && kind != k {
			continue
		}
		var rows []Hit
		err := d.db.WithContext(ctx).
			Table(tables[k]).
			Select("? AS kind, id, name, sport, 1 AS score", k).
			Where("deleted_at IS NULL AND name ILIKE ?", like).
			Order("name").
			Limit(limit).
			Scan(&rows).Error
		if err != nil {
			return nil, err
		}
		hits = append(hits, rows...)
	}
	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits, nil
}
