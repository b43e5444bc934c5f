package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	entsql "entgo.io/ent/dialect/sql"
)

// Preference keys. Each holds a JSON array of strings.
const (
	prefFavorites = "favorite_phonemes"
	prefCompleted = "completed_exercises"
)

type preferenceRepo struct {
	db *sql.DB
}

func (r *preferenceRepo) ToggleFavorite(ctx context.Context, symbol string) (bool, error) {
	set, err := r.readSet(ctx, prefFavorites)
	if err != nil {
		return false, err
	}
	_, on := set[symbol]
	if on {
		delete(set, symbol)
	} else {
		set[symbol] = struct{}{}
	}
	if err := r.writeSet(ctx, prefFavorites, set); err != nil {
		return false, err
	}
	return !on, nil
}

func (r *preferenceRepo) Favorites(ctx context.Context) ([]string, error) {
	set, err := r.readSet(ctx, prefFavorites)
	if err != nil {
		return nil, err
	}
	return sortedKeys(set), nil
}

func (r *preferenceRepo) MarkCompleted(ctx context.Context, exercise string) error {
	set, err := r.readSet(ctx, prefCompleted)
	if err != nil {
		return err
	}
	if _, ok := set[exercise]; ok {
		return nil
	}
	set[exercise] = struct{}{}
	return r.writeSet(ctx, prefCompleted, set)
}

func (r *preferenceRepo) Completed(ctx context.Context) ([]string, error) {
	set, err := r.readSet(ctx, prefCompleted)
	if err != nil {
		return nil, err
	}
	return sortedKeys(set), nil
}

func (r *preferenceRepo) readSet(ctx context.Context, key string) (map[string]struct{}, error) {
	query, args := sqlite.Select("value").
		From(sqlite.Table(tablePreferences)).
		Where(entsql.EQ("name", key)).
		Query()

	var raw string
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return make(map[string]struct{}), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read preference %s: %w", key, err)
	}

	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("decode preference %s: %w", key, err)
	}
	set := make(map[string]struct{}, len(items))
	for _, it := range items {
		set[it] = struct{}{}
	}
	return set, nil
}

func (r *preferenceRepo) writeSet(ctx context.Context, key string, set map[string]struct{}) error {
	raw, err := json.Marshal(sortedKeys(set))
	if err != nil {
		return fmt.Errorf("encode preference %s: %w", key, err)
	}
	_, err = exec(ctx, r.db, sqlite.Insert(tablePreferences).
		Columns("name", "value").
		Values(key, string(raw)).
		OnConflict(entsql.ConflictColumns("name"), entsql.ResolveWithNewValues()))
	if err != nil {
		return fmt.Errorf("write preference %s: %w", key, err)
	}
	return nil
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
