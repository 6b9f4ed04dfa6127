package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/elastic/go-elasticsearch/v9"

	"autoservice-backend/internal/config"
	"autoservice-backend/internal/models"
)

func NewClient(cfg *config.Config) (*elasticsearch.Client, error) {
	esCfg := elasticsearch.Config{
		Addresses: []string{cfg.ES_URL},
		Username:  cfg.ES_USER,
		Password:  cfg.ES_PASSWORD,
	}

	client, err := elasticsearch.NewClient(esCfg)
	if err != nil {
		return nil, fmt.Errorf("elasticsearch client: %w", err)
	}

	res, err := client.Info()
	if err != nil {
		return nil, fmt.Errorf("elasticsearch info: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		log.Printf("Elasticsearch error response: %s", body)
		return nil, fmt.Errorf("elasticsearch error: %s", res.Status())
	}

	return client, nil
}

// IndexParts mirrors the seeded catalog into the search index. Document
// ids follow the catalog ids so re-indexing overwrites instead of
// duplicating.
func IndexParts(ctx context.Context, client *elasticsearch.Client, index string, parts []models.Part) error {
	for _, part := range parts {
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(part); err != nil {
			return err
		}

		res, err := client.Index(
			index,
			&buf,
			client.Index.WithContext(ctx),
			client.Index.WithDocumentID(fmt.Sprint(part.ID)),
		)
		if err != nil {
			return fmt.Errorf("index part %d: %w", part.ID, err)
		}
		res.Body.Close()
		if res.IsError() {
			return fmt.Errorf("index part %d: %s", part.ID, res.Status())
		}
	}
	return nil
}
