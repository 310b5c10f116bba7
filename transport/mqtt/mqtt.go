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

// Package mqtt implements exec.ExternalResolver over a request/reply
// exchange on an MQTT broker: a call publishes on
// "<prefix>/<function>/request" and awaits the correlated reply on
// "<prefix>/<function>/reply".
package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"sync"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/typesynth/typesynth/catalog"
)

// Resolver publishes requests and correlates replies by a random
// request id embedded in both topics' payloads.
type Resolver struct {
	client       paho.Client
	topicPrefix  string
	replyTimeout time.Duration

	mu      sync.Mutex
	pending map[string]chan envelope
}

type envelope struct {
	RequestID string      `json:"requestId"`
	Value     interface{} `json:"value"`
	Error     string      `json:"error,omitempty"`
}

// New connects to broker and subscribes to "<topicPrefix>/+/reply".
// Grounded on sio/siomq's opts.AddBroker/Connect()/Subscribe()
// sequence (token.Wait(); token.Error() after each).
func New(broker, topicPrefix string, replyTimeout time.Duration) (*Resolver, error) {
	opts := paho.NewClientOptions()
	opts.AddBroker(broker)
	opts.SetClientID("typesynth-" + randSuffix())

	r := &Resolver{topicPrefix: topicPrefix, replyTimeout: replyTimeout, pending: make(map[string]chan envelope)}

	client := paho.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}
	r.client = client

	replyTopic := topicPrefix + "/+/reply"
	if token := client.Subscribe(replyTopic, 1, r.onReply); token.Wait() && token.Error() != nil {
		client.Disconnect(250)
		return nil, token.Error()
	}

	return r, nil
}

func (r *Resolver) onReply(_ paho.Client, msg paho.Message) {
	var env envelope
	if err := json.Unmarshal(msg.Payload(), &env); err != nil {
		return
	}
	r.mu.Lock()
	ch, ok := r.pending[env.RequestID]
	r.mu.Unlock()
	if ok {
		ch <- env
	}
}

// Resolve handles both catalog.ImplSparql and catalog.ImplRest, since
// an operator may prefer routing either through a broker.
func (r *Resolver) Resolve(ctx context.Context, fn *catalog.FunctionDefinition, args []interface{}) (interface{}, bool, error) {
	if fn.Impl.Kind != catalog.ImplSparql && fn.Impl.Kind != catalog.ImplRest {
		return nil, false, nil
	}

	requestID := randSuffix()
	ch := make(chan envelope, 1)
	r.mu.Lock()
	r.pending[requestID] = ch
	r.mu.Unlock()
	defer func() {
		r.mu.Lock()
		delete(r.pending, requestID)
		r.mu.Unlock()
	}()

	payload, err := json.Marshal(envelope{RequestID: requestID, Value: args})
	if err != nil {
		return nil, false, err
	}

	requestTopic := fmt.Sprintf("%s/%s/request", r.topicPrefix, fn.Name)
	if token := r.client.Publish(requestTopic, 1, false, payload); token.Wait() && token.Error() != nil {
		return nil, false, token.Error()
	}

	timeout := time.NewTimer(r.replyTimeout)
	defer timeout.Stop()

	select {
	case env := <-ch:
		if env.Error != "" {
			return nil, false, fmt.Errorf("mqtt: %s: %s", fn.Name, env.Error)
		}
		return env.Value, true, nil
	case <-ctx.Done():
		return nil, false, ctx.Err()
	case <-timeout.C:
		return nil, false, fmt.Errorf("mqtt: %s: no reply within %s", fn.Name, r.replyTimeout)
	}
}

// Close disconnects from the broker.
func (r *Resolver) Close() {
	r.client.Disconnect(250)
}

func randSuffix() string {
	const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, 8)
	for i := range b {
		b[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return string(b)
}
