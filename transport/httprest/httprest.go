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

// Package httprest implements exec.ExternalResolver for catalog.ImplRest
// functions, issuing the "METHOD url" implementation argument as a
// real HTTP request.
package httprest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"

	"golang.org/x/net/publicsuffix"

	"github.com/typesynth/typesynth/catalog"
)

// Resolver holds one cookie-jar-equipped client, reused across calls:
// a fresh *http.Client per request would mean a fresh connection pool
// per request too.
type Resolver struct {
	Client *http.Client
}

// New builds a Resolver with a public-suffix-aware cookie jar.
func New() (*Resolver, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, err
	}
	return &Resolver{Client: &http.Client{Jar: jar}}, nil
}

// Resolve handles catalog.ImplRest only; any other kind returns
// (nil, false, nil) so the engine falls through to its mock value.
func (r *Resolver) Resolve(ctx context.Context, fn *catalog.FunctionDefinition, args []interface{}) (interface{}, bool, error) {
	if fn.Impl.Kind != catalog.ImplRest {
		return nil, false, nil
	}

	method, url, err := splitMethodAndURL(fn.Impl.MethodAndURL)
	if err != nil {
		return nil, false, err
	}

	var body io.Reader
	if method == http.MethodPost || method == http.MethodPut || method == http.MethodPatch {
		payload, err := json.Marshal(args)
		if err != nil {
			return nil, false, err
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, false, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, false, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, false, err
	}
	if resp.StatusCode >= 400 {
		return nil, false, fmt.Errorf("httprest: %s %s: %s", method, url, resp.Status)
	}

	var parsed interface{}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		// Not every endpoint returns JSON; fall back to the raw body.
		return string(respBody), true, nil
	}
	return parsed, true, nil
}

func splitMethodAndURL(s string) (method, url string, err error) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("httprest: expected \"METHOD url\", got %q", s)
	}
	return strings.ToUpper(parts[0]), parts[1], nil
}
