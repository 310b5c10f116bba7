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

// Package ws implements exec.ExternalResolver for sparql functions
// preferring a streaming-oriented websocket endpoint over plain HTTP:
// one request message out, one reply message in, per call, over a
// connection opened once and reused.
package ws

import (
	"context"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/typesynth/typesynth/catalog"
)

// Resolver holds one dialed connection, reused across calls — a
// single-request-in-flight-at-a-time design, which matches the
// executor's own single-threaded, cooperative call model.
type Resolver struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

type request struct {
	Function string        `json:"function"`
	Args     []interface{} `json:"args"`
}

type reply struct {
	Value interface{} `json:"value"`
	Error string      `json:"error,omitempty"`
}

// Dial opens a websocket connection to url, grounded on
// cmd/mcrew/client-ws.go's websocket.DefaultDialer.Dial usage.
func Dial(url string) (*Resolver, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, err
	}
	return &Resolver{conn: conn}, nil
}

// Resolve handles catalog.ImplSparql only.
func (r *Resolver) Resolve(ctx context.Context, fn *catalog.FunctionDefinition, args []interface{}) (interface{}, bool, error) {
	if fn.Impl.Kind != catalog.ImplSparql {
		return nil, false, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.conn.WriteJSON(request{Function: fn.Name, Args: args}); err != nil {
		return nil, false, err
	}

	done := make(chan error, 1)
	var rep reply
	go func() {
		done <- r.conn.ReadJSON(&rep)
	}()

	select {
	case err := <-done:
		if err != nil {
			return nil, false, err
		}
	case <-ctx.Done():
		return nil, false, ctx.Err()
	}

	if rep.Error != "" {
		return nil, false, fmt.Errorf("ws: %s: %s", fn.Name, rep.Error)
	}
	return rep.Value, true, nil
}

// Close closes the underlying connection.
func (r *Resolver) Close() error {
	return r.conn.Close()
}
