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

package httprest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/typesynth/typesynth/catalog"
)

func TestResolveIssuesGETAndParsesJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"temp": 21.5}`))
	}))
	defer srv.Close()

	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	fn := &catalog.FunctionDefinition{
		Name: "fetchTemp",
		Impl: catalog.Implementation{Kind: catalog.ImplRest, MethodAndURL: "GET " + srv.URL},
	}
	v, handled, err := r.Resolve(context.Background(), fn, nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !handled {
		t.Fatalf("expected handled=true")
	}
	out := v.(map[string]interface{})
	if out["temp"].(float64) != 21.5 {
		t.Fatalf("got %+v", out)
	}
}

func TestResolveDeclinesNonRestKinds(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	fn := &catalog.FunctionDefinition{Impl: catalog.Implementation{Kind: catalog.ImplSparql}}
	_, handled, err := r.Resolve(context.Background(), fn, nil)
	if err != nil || handled {
		t.Fatalf("expected (_, false, nil), got (_, %v, %v)", handled, err)
	}
}

func TestResolveErrorsOnHTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	fn := &catalog.FunctionDefinition{
		Impl: catalog.Implementation{Kind: catalog.ImplRest, MethodAndURL: "GET " + srv.URL},
	}
	if _, _, err := r.Resolve(context.Background(), fn, nil); err == nil {
		t.Fatalf("expected an error for a 500 response")
	}
}

func TestSplitMethodAndURLRejectsMalformed(t *testing.T) {
	if _, _, err := splitMethodAndURL("not-a-valid-spec"); err == nil {
		t.Fatalf("expected an error")
	}
}
