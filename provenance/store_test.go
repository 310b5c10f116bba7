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
	"path/filepath"
	"testing"

	"github.com/typesynth/typesynth/solve"
)

func TestBoltStorePutGetList(t *testing.T) {
	dir := t.TempDir()
	store, err := OpenBoltStore(filepath.Join(dir, "provenance.db"))
	if err != nil {
		t.Fatalf("OpenBoltStore: %v", err)
	}
	defer store.Close()

	r := NewRecorder("http://example.org/provenance/")
	leaf := &solve.SolutionNode{Type: "Fuel"}
	act := r.BeginActivity("f1", "Fuel -> Energy")
	r.RecordUsed(act, leaf, 100.0, 0)
	r.EndActivity(act, 4200.0, []*solve.SolutionNode{leaf})

	if err := store.Put("run-1", r.Graph); err != nil {
		t.Fatalf("Put: %v", err)
	}

	doc, err := store.Get("run-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if doc["namespace"] != "http://example.org/provenance/" {
		t.Fatalf("got %v", doc["namespace"])
	}

	ids, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(ids) != 1 || ids[0] != "run-1" {
		t.Fatalf("got %v", ids)
	}
}

func TestBoltStoreGetUnknownRunErrors(t *testing.T) {
	dir := t.TempDir()
	store, err := OpenBoltStore(filepath.Join(dir, "provenance.db"))
	if err != nil {
		t.Fatalf("OpenBoltStore: %v", err)
	}
	defer store.Close()

	if _, err := store.Get("missing"); err == nil {
		t.Fatalf("expected an error for an unknown run id")
	}
}
