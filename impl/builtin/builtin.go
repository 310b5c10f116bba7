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

// Package builtin implements impl.Evaluator for catalog.ImplBuiltin:
// the small named set of host-provided aggregate and scalar functions
// a catalog author can reach for without writing a formula.
package builtin

import (
	"fmt"
	"math"

	"github.com/typesynth/typesynth/catalog"
	"github.com/typesynth/typesynth/impl"
)

func init() {
	impl.Register(catalog.ImplBuiltin, Evaluator{})
}

type Evaluator struct{}

func (Evaluator) Compile(im catalog.Implementation) (interface{}, error) {
	return im.BuiltinName, nil
}

// UnknownBuiltin reports a builtin() name outside the set this
// package implements.
type UnknownBuiltin struct {
	Name string
}

func (e *UnknownBuiltin) Error() string {
	return fmt.Sprintf("unknown builtin %q", e.Name)
}

func (Evaluator) Exec(compiled interface{}, args []interface{}) (interface{}, error) {
	name := compiled.(string)

	// A single domain argument is passed through as-is (the common
	// case: a unary aggregate over one sequence-valued source). An
	// n-ary domain collapses into one tuple value, which is what lets
	// builtin("identity") double as the explicit product constructor
	// for an (A, B, C) -> Product function.
	var input interface{}
	if len(args) == 1 {
		input = args[0]
	} else {
		input = args
	}

	switch name {
	case "identity":
		return input, nil
	case "sum":
		seq, err := asSequence(name, input)
		if err != nil {
			return nil, err
		}
		total := 0.0
		for _, v := range seq {
			f, err := asFloat(v)
			if err != nil {
				return nil, err
			}
			total += f
		}
		return total, nil
	case "product":
		seq, err := asSequence(name, input)
		if err != nil {
			return nil, err
		}
		total := 1.0
		for _, v := range seq {
			f, err := asFloat(v)
			if err != nil {
				return nil, err
			}
			total *= f
		}
		return total, nil
	case "average":
		seq, err := asSequence(name, input)
		if err != nil {
			return nil, err
		}
		if len(seq) == 0 {
			return 0.0, nil
		}
		total := 0.0
		for _, v := range seq {
			f, err := asFloat(v)
			if err != nil {
				return nil, err
			}
			total += f
		}
		return total / float64(len(seq)), nil
	case "first":
		seq, err := asSequence(name, input)
		if err != nil {
			return nil, err
		}
		if len(seq) == 0 {
			return nil, errEmptySequence(name)
		}
		return seq[0], nil
	case "last":
		seq, err := asSequence(name, input)
		if err != nil {
			return nil, err
		}
		if len(seq) == 0 {
			return nil, errEmptySequence(name)
		}
		return seq[len(seq)-1], nil
	case "count":
		seq, err := asSequence(name, input)
		if err != nil {
			return nil, err
		}
		return float64(len(seq)), nil
	case "abs":
		f, err := asFloat(input)
		if err != nil {
			return nil, err
		}
		return math.Abs(f), nil
	case "round":
		f, err := asFloat(input)
		if err != nil {
			return nil, err
		}
		return math.Round(f), nil
	default:
		return nil, &UnknownBuiltin{Name: name}
	}
}

func asSequence(builtin string, v interface{}) ([]interface{}, error) {
	seq, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("builtin %q requires a sequence input, got %v (%T)", builtin, v, v)
	}
	return seq, nil
}

func asFloat(v interface{}) (float64, error) {
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("expected a number, got %v (%T)", v, v)
	}
	return f, nil
}

func errEmptySequence(builtin string) error {
	return fmt.Errorf("builtin %q requires a non-empty sequence", builtin)
}
