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

package ws

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"github.com/typesynth/typesynth/catalog"
)

// newEchoServer answers every inbound request message with a fixed
// reply{Value: 42}, enough to exercise Resolver's one-request-one-
// reply exchange without a real broker.
func newEchoServer(t *testing.T) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		var req request
		if err := conn.ReadJSON(&req); err != nil {
			return
		}
		conn.WriteJSON(reply{Value: float64(42)})
	}))
}

func TestResolveRoundTripsOverWebSocket(t *testing.T) {
	srv := newEchoServer(t)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	r, err := Dial(url)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer r.Close()

	fn := &catalog.FunctionDefinition{Name: "lookup", Impl: catalog.Implementation{Kind: catalog.ImplSparql}}
	v, handled, err := r.Resolve(context.Background(), fn, []interface{}{float64(1)})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !handled {
		t.Fatalf("expected handled=true")
	}
	if v.(float64) != 42 {
		t.Fatalf("got %v, want 42", v)
	}
}

func TestResolveDeclinesNonSparqlKinds(t *testing.T) {
	srv := newEchoServer(t)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	r, err := Dial(url)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer r.Close()

	fn := &catalog.FunctionDefinition{Impl: catalog.Implementation{Kind: catalog.ImplRest}}
	_, handled, err := r.Resolve(context.Background(), fn, nil)
	if err != nil || handled {
		t.Fatalf("expected (_, false, nil), got (_, %v, %v)", handled, err)
	}
}
