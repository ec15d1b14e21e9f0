package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	es "github.com/elastic/go-elasticsearch/v8"
	"github.com/rs/zerolog/log"
)

const mapping = `{"settings":{"number_of_shards":1},"mappings":{"properties":{
	"kind":{"type":"keyword"},"id":{"type":"long"},"name":{"type":"text"},
	"sport":{"type":"keyword"},"country":{"type":"keyword"},"team_id":{"type":"long"},
	"updated_at":{"type":"date"}
}}}`

// ElasticEngine indexes teams and players into one Elasticsearch index.
type ElasticEngine struct {
	client *es.Client
	index  string
}

func NewElasticEngine(url, index string) (*ElasticEngine, error) {
	client, err := es.NewClient(es.Config{Addresses: []string{url}})
	if err != nil {
		return nil, fmt.Errorf("create elasticsearch client: %w", err)
	}
	return &ElasticEngine{client: client, index: index}, nil
}

// EnsureIndex creates the index with its mapping when missing.
func (e *ElasticEngine) EnsureIndex(ctx context.Context) error {
	exists, err := e.client.Indices.Exists([]string{e.index}, e.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("check index %s: %w", e.index, err)
	}
	exists.Body.Close()
	if exists.StatusCode == http.StatusOK {
		return nil
	}

	res, err := e.client.Indices.Create(e.index,
		e.client.Indices.Create.WithBody(bytes.NewBufferString(mapping)),
		e.client.Indices.Create.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("create index %s: %w", e.index, err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("create index %s: %s", e.index, res.String())
	}
	log.Info().Str("index", e.index).Msg("created search index")
	return nil
}

func documentID(kind string, id uint) string {
	return kind + "-" + strconv.FormatUint(uint64(id), 10)
}

func (e *ElasticEngine) Index(ctx context.Context, doc Document) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	res, err := e.client.Index(e.index, bytes.NewReader(body),
		e.client.Index.WithDocumentID(documentID(doc.Kind, doc.ID)),
		e.client.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("index %s: %w", documentID(doc.Kind, doc.ID), err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index %s: %s", documentID(doc.Kind, doc.ID), res.String())
	}
	return nil
}

func (e *ElasticEngine) Delete(ctx context.Context, kind string, id uint) error {
	res, err := e.client.Delete(e.index, documentID(kind, id), e.client.Delete.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("delete %s: %w", documentID(kind, id), err)
	}
	defer res.Body.Close()
	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("delete %s: %s", documentID(kind, id), res.String())
	}
	return nil
}

type searchResponse struct {
	Hits struct {
		Hits []struct {
			Score  float64  `json:"_score"`
			Source Document `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

func (e *ElasticEngine) Search(ctx context.Context, query, kind string, limit int) ([]Hit, error) {
	must := []interface{}{
		map[string]interface{}{
			"match": map[string]interface{}{
				"name": map[string]interface{}{"query": query, "fuzziness": "AUTO"},
			},
		},
	}
	if kind != "" {
		must = append(must, map[string]interface{}{"term": map[string]interface{}{"kind": kind}})
	}
	body, err := json.Marshal(map[string]interface{}{
		"query": map[string]interface{}{"bool": map[string]interface{}{"must": must}},
	})
	if err != nil {
		return nil, err
	}

	res, err := e.client.Search(
		e.client.Search.WithContext(ctx),
		e.client.Search.WithIndex(e.index),
		e.client.Search.WithBody(bytes.NewReader(body)),
		e.client.Search.WithSize(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("search: %s", res.String())
	}

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	var parsed searchResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	hits := make([]Hit, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		hits = append(hits, Hit{
			Kind:  h.Source.Kind,
			ID:    h.Source.ID,
			Name:  h.Source.Name,
			Sport: h.Source.Sport,
			Score: h.Score,
		})
	}
	return hits, nil
}
