// Package es keeps calculation history in an Elasticsearch index.
package es

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/safe-calc/internal/domain"
	"github.com/DjordjeVuckovic/safe-calc/internal/storage"
	"github.com/DjordjeVuckovic/safe-calc/pkg/pagination"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/refresh"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
)

type Store struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func NewStore(ctx context.Context, config ClientConfig) (*Store, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	indexName := config.IndexName
	if indexName == "" {
		indexName = DefaultIndexName
	}

	s := &Store{
		client:    client,
		indexName: indexName,
	}

	if err := s.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}

	return s, nil
}

func (s *Store) EnsureIndex(ctx context.Context) error {
	exists, err := s.client.Indices.Exists(s.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}
	if exists {
		slog.Info("Index already exists", "index", s.indexName)
		return nil
	}

	mappings := types.TypeMapping{
		Properties: map[string]types.Property{
			"id":         types.NewKeywordProperty(),
			"expression": types.NewKeywordProperty(),
			"result":     types.NewDoubleNumberProperty(),
			"timestamp":  types.NewDateProperty(),
			"user_id":    types.NewKeywordProperty(),
			"created_at": types.NewDateProperty(),
		},
	}

	res, err := s.client.Indices.Create(s.indexName).Mappings(&mappings).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	if !res.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created successfully", "index", s.indexName)
	return nil
}

// Save indexes the calculation and waits for it to become searchable, so a
// history read right after a calculate call sees it.
func (s *Store) Save(ctx context.Context, calc domain.Calculation) error {
	doc := toDocument(calc)

	res, err := s.client.Index(s.indexName).
		Id(doc.ID).
		Document(doc).
		Refresh(refresh.Waitfor).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to index calculation: %w", err)
	}

	slog.Debug("Calculation indexed", "id", doc.ID, "index", s.indexName, "result", res.Result)
	return nil
}

func (s *Store) List(ctx context.Context, q storage.HistoryQuery) (*storage.HistoryPage, error) {
	q.Normalize()

	desc := sortorder.Desc
	res, err := s.client.Search().
		Index(s.indexName).
		Query(buildQuery(q)).
		From(q.Offset).
		Size(q.Limit).
		TrackTotalHits(true).
		Sort(
			&types.SortOptions{SortOptions: map[string]types.FieldSort{"timestamp": {Order: &desc}}},
			&types.SortOptions{SortOptions: map[string]types.FieldSort{"id": {Order: &desc}}},
		).
		Do(ctx)
	if err != nil {
		slog.Error("Elasticsearch history query failed", "error", err)
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}

	items := make([]domain.Calculation, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var doc Document
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal document: %w", err)
		}
		c, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}

	var total int64
	if res.Hits.Total != nil {
		total = res.Hits.Total.Value
	}

	slog.Debug("Es history fetched", "total", total, "returned", len(items))

	return pagination.NewOffsetResult(items, total, q.Limit, q.Offset), nil
}

func (s *Store) Healthy(ctx context.Context) bool {
	ok, err := s.client.Ping().Do(ctx)
	return err == nil && ok
}

// Close is a no-op; the typed client holds no resources that need releasing.
func (s *Store) Close() error {
	return nil
}

func buildQuery(q storage.HistoryQuery) *types.Query {
	var filters []types.Query

	if q.Since != nil {
		since := q.Since.UTC().Format(time.RFC3339Nano)
		filters = append(filters, types.Query{
			Range: map[string]types.RangeQuery{
				"timestamp": types.DateRangeQuery{Gt: &since},
			},
		})
	}
	if q.UserID != "" {
		filters = append(filters, types.Query{
			Term: map[string]types.TermQuery{
				"user_id": {Value: q.UserID},
			},
		})
	}

	if len(filters) == 0 {
		return &types.Query{MatchAll: &types.MatchAllQuery{}}
	}
	return &types.Query{Bool: &types.BoolQuery{Filter: filters}}
}

var _ storage.Store = (*Store)(nil)
