/* Copyright 2018-2019 Comcast Cable Communications Management, LLC
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 * http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package provenance

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

var runsBucket = []byte("runs")

// BoltStore persists drained provenance graphs (as their JSON export
// form) in a bbolt database, keyed by an opaque run id. Unlike
// Recorder, BoltStore is never touched by the exec execution path
// itself — only cmd/synthd constructs one, after a run completes.
type BoltStore struct {
	db *bbolt.DB
}

// OpenBoltStore opens (creating if necessary) a bbolt database at
// path for provenance storage.
func OpenBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("provenance: open %s: %w", path, err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(runsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

// Put stores g's JSON export under runID, overwriting any prior run
// recorded under the same id.
func (s *BoltStore) Put(runID string, g *Graph) error {
	body, err := g.ExportJSON(false)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(runsBucket).Put([]byte(runID), []byte(body))
	})
}

// Get returns the decoded graph document stored under runID. The
// return value is the generic JSON structure (map[string]interface{}),
// not a reconstructed *Graph — BoltStore is a drained-graph archive,
// not something runs are replayed out of.
func (s *BoltStore) Get(runID string) (map[string]interface{}, error) {
	var doc map[string]interface{}
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(runsBucket).Get([]byte(runID))
		if v == nil {
			return fmt.Errorf("provenance: no run recorded under %q", runID)
		}
		return json.Unmarshal(v, &doc)
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// List returns every run id currently stored, in bbolt's key order
// (lexicographic byte order).
func (s *BoltStore) List() ([]string, error) {
	var ids []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(runsBucket).ForEach(func(k, _ []byte) error {
			ids = append(ids, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}
