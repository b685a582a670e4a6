package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/tomashops/bingobest/pkg/entities"
)

// Config holds configuration options for the session archive
type Config struct {
	URL         string
	Username    string
	Password    string
	IndexPrefix string
}

// DefaultConfig returns a default configuration for the session archive
func DefaultConfig() *Config {
	return &Config{
		URL:         "http://localhost:9200",
		IndexPrefix: "bingobest",
	}
}

// Repository archives closed game sessions to Elasticsearch so dashboard
// history survives process restarts. The economy itself never reads from
// here; the archive is write-mostly.
type Repository struct {
	client    *elasticsearch.Client
	indexName string
}

// NewRepository creates a new session archive
func NewRepository(config *Config) (*Repository, error) {
	// Configure the Elasticsearch client
	cfg := elasticsearch.Config{
		Addresses: []string{config.URL},
	}

	// Add authentication if provided
	if config.Username != "" && config.Password != "" {
		cfg.Username = config.Username
		cfg.Password = config.Password
	}

	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating Elasticsearch client: %w", err)
	}

	if config.IndexPrefix == "" {
		config.IndexPrefix = "bingobest"
	}

	repo := &Repository{
		client:    client,
		indexName: config.IndexPrefix + "_sessions",
	}

	if err := repo.initIndex(context.Background()); err != nil {
		return nil, fmt.Errorf("error initializing index: %w", err)
	}

	return repo, nil
}

// initIndex creates the sessions index if it doesn't exist
func (r *Repository) initIndex(ctx context.Context) error {
	res, err := r.client.Indices.Exists([]string{r.indexName})
	if err != nil {
		return fmt.Errorf("error checking if sessions index exists: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != 404 {
		return nil
	}

	mapping := `{
		"mappings": {
			"properties": {
				"session_id": { "type": "keyword" },
				"player_id": { "type": "keyword" },
				"entry_fee": { "type": "long" },
				"prize_pool": { "type": "long" },
				"prize_amount": { "type": "long" },
				"winner": { "type": "keyword" },
				"status": { "type": "keyword" },
				"start_time": { "type": "date" },
				"end_time": { "type": "date" }
			}
		}
	}`

	req := esapi.IndicesCreateRequest{
		Index: r.indexName,
		Body:  strings.NewReader(mapping),
	}

	createRes, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("error creating sessions index: %w", err)
	}
	defer createRes.Body.Close()

	if createRes.IsError() {
		return fmt.Errorf("error creating sessions index: %s", createRes.String())
	}

	return nil
}

// IndexSession archives a closed session. The session ID doubles as the
// document ID, so re-archiving the same session is idempotent.
func (r *Repository) IndexSession(ctx context.Context, session *entities.GameSession) error {
	if !session.IsClosed() {
		return fmt.Errorf("session %s is still active", session.ID)
	}

	jsonData, err := json.Marshal(newESSession(session))
	if err != nil {
		return fmt.Errorf("error marshaling session: %w", err)
	}

	res, err := r.client.Index(
		r.indexName,
		bytes.NewReader(jsonData),
		r.client.Index.WithContext(ctx),
		r.client.Index.WithDocumentID(session.ID),
	)
	if err != nil {
		return fmt.Errorf("error indexing session: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing session: %s", res.String())
	}

	return nil
}

// ArchiveClosedSessions archives every closed session in the batch and
// returns how many were indexed. Failures are logged and skipped so one bad
// document doesn't stall the sweep.
func (r *Repository) ArchiveClosedSessions(ctx context.Context, sessions []*entities.GameSession) (int, error) {
	archived := 0
	for _, session := range sessions {
		if !session.IsClosed() {
			continue
		}
		if err := r.IndexSession(ctx, session); err != nil {
			log.Printf("Error archiving session %s: %v", session.ID, err)
			continue
		}
		archived++
	}
	return archived, nil
}

// RecentSessions retrieves the most recently closed sessions from the archive
func (r *Repository) RecentSessions(ctx context.Context, limit int) ([]*ESSession, error) {
	query := `{
		"query": { "match_all": {} },
		"sort": [
			{ "end_time": { "order": "desc" } }
		]
	}`

	res, err := r.client.Search(
		r.client.Search.WithContext(ctx),
		r.client.Search.WithIndex(r.indexName),
		r.client.Search.WithBody(bytes.NewReader([]byte(query))),
		r.client.Search.WithSize(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("error searching for sessions: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("error searching for sessions: %s", res.String())
	}

	// Parse the response
	var result struct {
		Hits struct {
			Total struct {
				Value int `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source ESSession `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}

	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("error parsing session results: %w", err)
	}

	sessions := make([]*ESSession, 0, len(result.Hits.Hits))
	for _, hit := range result.Hits.Hits {
		session := hit.Source
		sessions = append(sessions, &session)
	}

	return sessions, nil
}
