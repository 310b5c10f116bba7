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

package exec

import (
	stdcontext "context"

	"github.com/typesynth/typesynth/catalog"
	"github.com/typesynth/typesynth/impl"
	_ "github.com/typesynth/typesynth/impl/builtin"
	_ "github.com/typesynth/typesynth/impl/formula"
	_ "github.com/typesynth/typesynth/impl/jsontemplate"
	"github.com/typesynth/typesynth/impl/remote"
	_ "github.com/typesynth/typesynth/impl/stringtemplate"
	"github.com/typesynth/typesynth/solve"
)

// Option configures an Execute call.
type Option func(*engine)

// WithResolver registers the delegate used for sparql/rest
// implementations not already bound in the Context.
func WithResolver(r ExternalResolver) Option {
	return func(e *engine) { e.resolver = r }
}

// WithRecorder enables provenance recording for this evaluation.
func WithRecorder(r Recorder) Option {
	return func(e *engine) { e.recorder = r }
}

// WithGoContext sets the standard context.Context threaded to any
// registered ExternalResolver, for cancellation at function-call
// boundaries (in-flight expression evaluation always runs to
// completion).
func WithGoContext(ctx stdcontext.Context) Option {
	return func(e *engine) { e.goCtx = ctx }
}

type engine struct {
	ctx      Context
	resolver ExternalResolver
	recorder Recorder
	goCtx    stdcontext.Context
	memo     map[*solve.SolutionNode]interface{}
}

// Execute walks root post-order against ctx, evaluating children
// before parents and memoizing already-evaluated nodes by pointer
// identity — the one mechanism that serves both the tree case (every
// node is evaluated exactly once anyway) and the DAG case (a shared
// leaf or subtree is evaluated once and reused at every position that
// references it).
func Execute(root *solve.SolutionNode, ctx Context, opts ...Option) (interface{}, error) {
	e := &engine{ctx: ctx, goCtx: stdcontext.Background(), memo: make(map[*solve.SolutionNode]interface{})}
	for _, opt := range opts {
		opt(e)
	}
	return e.eval(root)
}

func (e *engine) eval(n *solve.SolutionNode) (interface{}, error) {
	if v, ok := e.memo[n]; ok {
		return v, nil
	}
	v, err := e.evalUncached(n)
	if err != nil {
		return nil, err
	}
	e.memo[n] = v
	return v, nil
}

func (e *engine) evalUncached(n *solve.SolutionNode) (interface{}, error) {
	if n.IsLeaf() {
		key := n.SourceID
		if key == "" {
			key = n.Type
		}
		v, ok := e.ctx[key]
		if !ok {
			return nil, &MissingSourceBinding{Name: key}
		}
		return v, nil
	}

	f := n.Func

	var act Activity
	if e.recorder != nil {
		act = e.recorder.BeginActivity(f.ID, f.Signature())
	}

	childValues := make([]interface{}, len(n.Children))
	for i, c := range n.Children {
		v, err := e.eval(c)
		if err != nil {
			if _, ok := err.(*MissingSourceBinding); ok {
				return nil, &Error{FuncID: f.ID, Cause: err}
			}
			return nil, err
		}
		childValues[i] = v
		if e.recorder != nil {
			e.recorder.RecordUsed(act, c, v, i)
		}
	}

	out, err := e.dispatch(f, childValues)
	if err != nil {
		return nil, &Error{FuncID: f.ID, Cause: err}
	}

	if e.recorder != nil {
		e.recorder.EndActivity(act, out, n.Children)
	}

	return out, nil
}

func (e *engine) dispatch(f *catalog.FunctionDefinition, childValues []interface{}) (interface{}, error) {
	// sparql/rest need Context and ExternalResolver state an
	// impl.Evaluator's Compile/Exec signature doesn't carry, so the
	// engine resolves them directly rather than through the registry.
	if f.Impl.Kind == catalog.ImplSparql || f.Impl.Kind == catalog.ImplRest {
		return e.dispatchRemote(f, childValues)
	}

	ev, ok := impl.DefaultEvaluators[f.Impl.Kind]
	if !ok {
		return nil, &UnknownBuiltin{Name: string(f.Impl.Kind)}
	}
	compiled, err := ev.Compile(f.Impl)
	if err != nil {
		return nil, err
	}
	return ev.Exec(compiled, childValues)
}

func (e *engine) dispatchRemote(f *catalog.FunctionDefinition, childValues []interface{}) (interface{}, error) {
	if v, ok := e.ctx[f.Name]; ok {
		return v, nil
	}
	if e.resolver != nil {
		v, handled, err := e.resolver.Resolve(e.goCtx, f, childValues)
		if err != nil {
			return nil, err
		}
		if handled {
			return v, nil
		}
	}
	return remote.MockValue, nil
}
