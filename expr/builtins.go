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

package expr

import (
	"fmt"
	"math"
)

// whitelist is the closed set of callable functions. Any identifier
// in call position that is not a key of this map is a runtime error:
// there is no way, from expression text alone, to invoke anything
// else.
var whitelist = map[string]func(args []interface{}) (interface{}, error){
	"abs":        biAbs,
	"round":      biRound,
	"min":        biMin,
	"max":        biMax,
	"sum":        biSum,
	"len":        biLen,
	"sqrt":       biSqrt,
	"log":        biLog,
	"exp":        biExp,
	"sin":        biSin,
	"cos":        biCos,
	"tan":        biTan,
	"isinstance": biIsinstance,
	"dict":       biDict,
	"list":       biList,
	"tuple":      biTuple,
	"str":        biStr,
	"int":        biInt,
	"float":      biFloat,
	"dir":        biDir,
}

func evalCall(c *Call, scope Scope) (interface{}, error) {
	fn, ok := whitelist[c.Name]
	if !ok {
		return nil, fmt.Errorf("unknown function %q", c.Name)
	}
	args := make([]interface{}, len(c.Args))
	for i, a := range c.Args {
		v, err := evalNode(a, scope)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return fn(args)
}

func arity(name string, args []interface{}, want int) error {
	if len(args) != want {
		return fmt.Errorf("%s() takes %d argument(s), got %d", name, want, len(args))
	}
	return nil
}

func biAbs(args []interface{}) (interface{}, error) {
	if err := arity("abs", args, 1); err != nil {
		return nil, err
	}
	n, err := toFloat(args[0])
	if err != nil {
		return nil, err
	}
	return math.Abs(n), nil
}

func biRound(args []interface{}) (interface{}, error) {
	if len(args) < 1 || len(args) > 2 {
		return nil, fmt.Errorf("round() takes 1 or 2 arguments, got %d", len(args))
	}
	n, err := toFloat(args[0])
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		return math.Round(n), nil
	}
	digits, err := toInt(args[1])
	if err != nil {
		return nil, err
	}
	mult := math.Pow(10, float64(digits))
	return math.Round(n*mult) / mult, nil
}

func biMin(args []interface{}) (interface{}, error) {
	vals, err := numericVarArgs("min", args)
	if err != nil {
		return nil, err
	}
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m, nil
}

func biMax(args []interface{}) (interface{}, error) {
	vals, err := numericVarArgs("max", args)
	if err != nil {
		return nil, err
	}
	m := vals[0]
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}
	return m, nil
}

// numericVarArgs accepts either a single sequence argument or one or
// more scalar arguments; a lone scalar is treated as a one-element list.
func numericVarArgs(name string, args []interface{}) ([]float64, error) {
	if len(args) == 1 {
		if seq, ok := toSeq(args[0]); ok {
			return floatSlice(seq)
		}
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("%s() takes at least one argument", name)
	}
	return floatSlice(args)
}

func floatSlice(vs []interface{}) ([]float64, error) {
	out := make([]float64, len(vs))
	for i, v := range vs {
		f, err := toFloat(v)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

func biSum(args []interface{}) (interface{}, error) {
	if err := arity("sum", args, 1); err != nil {
		return nil, err
	}
	seq, ok := toSeq(args[0])
	if !ok {
		return nil, fmt.Errorf("sum() requires a sequence, got %v", args[0])
	}
	vals, err := floatSlice(seq)
	if err != nil {
		return nil, err
	}
	total := 0.0
	for _, v := range vals {
		total += v
	}
	return total, nil
}

func biLen(args []interface{}) (interface{}, error) {
	if err := arity("len", args, 1); err != nil {
		return nil, err
	}
	switch t := args[0].(type) {
	case []interface{}:
		return float64(len(t)), nil
	case map[string]interface{}:
		return float64(len(t)), nil
	case string:
		return float64(len([]rune(t))), nil
	default:
		return nil, fmt.Errorf("len() requires a sequence, record, or string, got %v", args[0])
	}
}

func math1(name string, f func(float64) float64) func([]interface{}) (interface{}, error) {
	return func(args []interface{}) (interface{}, error) {
		if err := arity(name, args, 1); err != nil {
			return nil, err
		}
		n, err := toFloat(args[0])
		if err != nil {
			return nil, err
		}
		return f(n), nil
	}
}

var (
	biSqrt = math1("sqrt", math.Sqrt)
	biLog  = math1("log", math.Log)
	biExp  = math1("exp", math.Exp)
	biSin  = math1("sin", math.Sin)
	biCos  = math1("cos", math.Cos)
	biTan  = math1("tan", math.Tan)
)

// biIsinstance implements the two-argument isinstance(value,
// type-name-string) form. Recognized type names: "number" (or "float",
// "int"), "string" (or "str"), "bool", "list" (or "tuple"), "dict".
func biIsinstance(args []interface{}) (interface{}, error) {
	if err := arity("isinstance", args, 2); err != nil {
		return nil, err
	}
	typeName, ok := args[1].(string)
	if !ok {
		return nil, fmt.Errorf("isinstance() second argument must be a type-name string")
	}
	switch typeName {
	case "number", "float", "int":
		_, ok := args[0].(float64)
		return ok, nil
	case "string", "str":
		_, ok := args[0].(string)
		return ok, nil
	case "bool":
		_, ok := args[0].(bool)
		return ok, nil
	case "list", "tuple":
		_, ok := args[0].([]interface{})
		return ok, nil
	case "dict":
		_, ok := args[0].(map[string]interface{})
		return ok, nil
	default:
		return false, nil
	}
}

func biDict(args []interface{}) (interface{}, error) {
	if len(args) == 0 {
		return map[string]interface{}{}, nil
	}
	if err := arity("dict", args, 1); err != nil {
		return nil, err
	}
	rec, ok := args[0].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("dict() requires a record argument")
	}
	out := make(map[string]interface{}, len(rec))
	for k, v := range rec {
		out[k] = v
	}
	return out, nil
}

func biList(args []interface{}) (interface{}, error) {
	if len(args) == 0 {
		return []interface{}{}, nil
	}
	if err := arity("list", args, 1); err != nil {
		return nil, err
	}
	seq, ok := toSeq(args[0])
	if !ok {
		return nil, fmt.Errorf("list() requires a sequence argument")
	}
	out := make([]interface{}, len(seq))
	copy(out, seq)
	return out, nil
}

func biTuple(args []interface{}) (interface{}, error) {
	return biList(args)
}

func biStr(args []interface{}) (interface{}, error) {
	if err := arity("str", args, 1); err != nil {
		return nil, err
	}
	return fmt.Sprintf("%v", args[0]), nil
}

func biInt(args []interface{}) (interface{}, error) {
	if err := arity("int", args, 1); err != nil {
		return nil, err
	}
	switch t := args[0].(type) {
	case string:
		var f float64
		if _, err := fmt.Sscanf(t, "%g", &f); err != nil {
			return nil, fmt.Errorf("int(): cannot convert %q", t)
		}
		return math.Trunc(f), nil
	default:
		n, err := toFloat(args[0])
		if err != nil {
			return nil, err
		}
		return math.Trunc(n), nil
	}
}

func biFloat(args []interface{}) (interface{}, error) {
	if err := arity("float", args, 1); err != nil {
		return nil, err
	}
	if s, ok := args[0].(string); ok {
		var f float64
		if _, err := fmt.Sscanf(s, "%g", &f); err != nil {
			return nil, fmt.Errorf("float(): cannot convert %q", s)
		}
		return f, nil
	}
	return toFloat(args[0])
}

// biDir lists the scope-visible names of its record argument, mirroring
// Python's introspection builtin closely enough for the whitelist.
func biDir(args []interface{}) (interface{}, error) {
	if err := arity("dir", args, 1); err != nil {
		return nil, err
	}
	rec, ok := args[0].(map[string]interface{})
	if !ok {
		return []interface{}{}, nil
	}
	names := make([]interface{}, 0, len(rec))
	for k := range rec {
		names = append(names, k)
	}
	return names, nil
}
