package storage

import (
	"encoding/json"

	"github.com/Sampath1576/sync-skill-hub-sub000/internal/errors"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/logging"
)

// LoadCollection reads the JSON array stored under key. A missing key or
// unparsable value degrades to an empty collection: corrupt local data is
// treated as "no data", never surfaced as an error.
func LoadCollection[T any](d *DB, key string) []T {
	data, err := d.GetBytes(key)
	if err != nil {
		if !IsErrKeyNotFound(err) {
			logging.Warn("collection read failed", logging.KeyStorage, key, logging.KeyError, err)
		}
		return nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		logging.Warn("collection unparsable, treating as empty", logging.KeyStorage, key, logging.KeyError, err)
		return nil
	}
	return items
}

// SaveCollection writes the whole collection as a JSON array under key.
// There are no partial writes; collections are small enough that full
// round trips are cheap.
func SaveCollection[T any](d *DB, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return errors.Wrapf(err, "encode %s", key)
	}
	if err := d.SetBytes(key, data); err != nil {
		return errors.ClassifyStorage(err)
	}
	logging.LogOperation("save_collection", logging.KeyStorage, key, logging.KeyCount, len(items))
	return nil
}

// LoadValue reads a single JSON value (preference boolean, demo bundle)
// stored under key. Returns ErrKeyNotFound when absent.
func LoadValue(d *DB, key string, v any) error {
	data, err := d.GetBytes(key)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// SaveValue writes a single JSON value under key.
func SaveValue(d *DB, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encode %s", key)
	}
	if err := d.SetBytes(key, data); err != nil {
		return errors.ClassifyStorage(err)
	}
	return nil
}
