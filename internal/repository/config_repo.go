package repository

import (
	"context"

	"github.com/sorinslavic/graide-api/internal/models"
	"github.com/sorinslavic/graide-api/internal/schema"
	"github.com/sorinslavic/graide-api/internal/sheetdb"
)

// ConfigRepository is the key-value table; keys are unique and writes
// upsert.
type ConfigRepository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	All(ctx context.Context) ([]models.ConfigEntry, error)
}

type configRepository struct {
	store sheetdb.Store
}

// NewConfigRepository instantiates a sheet-backed config repository.
func NewConfigRepository(store sheetdb.Store) ConfigRepository {
	return &configRepository{store: store}
}

func (r *configRepository) Get(ctx context.Context, key string) (string, bool, error) {
	rows, err := r.store.ReadAll(ctx, schema.TableConfig)
	if err != nil {
		return "", false, err
	}

	for _, row := range rows {
		if len(row) > 0 && row[0] == key {
			if len(row) > 1 {
				return row[1], true, nil
			}
			return "", true, nil
		}
	}
	return "", false, nil
}

func (r *configRepository) Set(ctx context.Context, key, value string) error {
	rows, err := r.store.ReadAll(ctx, schema.TableConfig)
	if err != nil {
		return err
	}

	for i, row := range rows {
		if len(row) > 0 && row[0] == key {
			return r.store.UpdateRow(ctx, schema.TableConfig, i+1, []string{key, value})
		}
	}
	return r.store.Append(ctx, schema.TableConfig, [][]string{{key, value}})
}

func (r *configRepository) All(ctx context.Context) ([]models.ConfigEntry, error) {
	rows, err := r.store.ReadAll(ctx, schema.TableConfig)
	if err != nil {
		return nil, err
	}

	entries := make([]models.ConfigEntry, 0, len(rows))
	for _, row := range rows {
		entry := models.ConfigEntry{}
		if len(row) > 0 {
			entry.Key = row[0]
		}
		if len(row) > 1 {
			entry.Value = row[1]
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
