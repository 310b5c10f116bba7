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
	"sort"
)

// Eval parses and evaluates source against scope in one step. The
// JSON-template and string-template evaluators use it; package impl's
// formula evaluator parses once and calls EvalAST instead.
func Eval(source string, scope Scope) (interface{}, error) {
	ast, err := Parse(source)
	if err != nil {
		return nil, newEvalError(source, scope, err)
	}
	return EvalAST(ast, source, scope)
}

// EvalAST evaluates an already-parsed AST against scope. source is
// carried through only for error messages; callers that Parse once
// and Exec many times (package impl's formula evaluator) use this to
// skip re-parsing on every call.
func EvalAST(ast Node, source string, scope Scope) (interface{}, error) {
	v, err := evalNode(ast, scope)
	if err != nil {
		return nil, newEvalError(source, scope, err)
	}
	return v, nil
}

func evalNode(n Node, scope Scope) (interface{}, error) {
	switch t := n.(type) {
	case *NumberLit:
		return t.Value, nil
	case *StringLit:
		return t.Value, nil
	case *BoolLit:
		return t.Value, nil
	case *Ident:
		v, ok := scope[t.Name]
		if !ok {
			return nil, fmt.Errorf("unknown identifier %q", t.Name)
		}
		return v, nil
	case *MemberAccess:
		obj, err := evalNode(t.Object, scope)
		if err != nil {
			return nil, err
		}
		return memberGet(obj, t.Key)
	case *IndexAccess:
		obj, err := evalNode(t.Object, scope)
		if err != nil {
			return nil, err
		}
		idx, err := evalNode(t.Index, scope)
		if err != nil {
			return nil, err
		}
		return indexGet(obj, idx)
	case *UnaryOp:
		return evalUnary(t, scope)
	case *BinaryOp:
		return evalBinary(t, scope)
	case *Ternary:
		cond, err := evalNode(t.Cond, scope)
		if err != nil {
			return nil, err
		}
		if truthy(cond) {
			return evalNode(t.Then, scope)
		}
		return evalNode(t.Else, scope)
	case *Call:
		return evalCall(t, scope)
	default:
		return nil, fmt.Errorf("internal: unhandled node type %T", n)
	}
}

func memberGet(obj interface{}, key string) (interface{}, error) {
	rec, ok := obj.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("cannot access member %q of non-record value %v", key, obj)
	}
	v, ok := rec[key]
	if !ok {
		return nil, fmt.Errorf("record has no key %q", key)
	}
	return v, nil
}

func indexGet(obj, idx interface{}) (interface{}, error) {
	switch o := obj.(type) {
	case map[string]interface{}:
		key, ok := idx.(string)
		if !ok {
			return nil, fmt.Errorf("record index must be a string, got %v", idx)
		}
		v, ok := o[key]
		if !ok {
			return nil, fmt.Errorf("record has no key %q", key)
		}
		return v, nil
	case []interface{}:
		n, err := toInt(idx)
		if err != nil {
			return nil, err
		}
		if n < 0 {
			n += len(o)
		}
		if n < 0 || n >= len(o) {
			return nil, fmt.Errorf("index %d out of range for sequence of length %d", n, len(o))
		}
		return o[n], nil
	case string:
		n, err := toInt(idx)
		if err != nil {
			return nil, err
		}
		runes := []rune(o)
		if n < 0 {
			n += len(runes)
		}
		if n < 0 || n >= len(runes) {
			return nil, fmt.Errorf("index %d out of range for string of length %d", n, len(runes))
		}
		return string(runes[n]), nil
	default:
		return nil, fmt.Errorf("cannot index non-sequence value %v", obj)
	}
}

func evalUnary(t *UnaryOp, scope Scope) (interface{}, error) {
	v, err := evalNode(t.Operand, scope)
	if err != nil {
		return nil, err
	}
	switch t.Op {
	case "+":
		n, err := toFloat(v)
		if err != nil {
			return nil, err
		}
		return n, nil
	case "-":
		n, err := toFloat(v)
		if err != nil {
			return nil, err
		}
		return -n, nil
	case "!":
		return !truthy(v), nil
	default:
		return nil, fmt.Errorf("internal: unknown unary operator %q", t.Op)
	}
}

func evalBinary(t *BinaryOp, scope Scope) (interface{}, error) {
	// && and || short-circuit, so their right operand is only
	// evaluated when needed.
	switch t.Op {
	case "&&":
		l, err := evalNode(t.Left, scope)
		if err != nil {
			return nil, err
		}
		if !truthy(l) {
			return false, nil
		}
		r, err := evalNode(t.Right, scope)
		if err != nil {
			return nil, err
		}
		return truthy(r), nil
	case "||":
		l, err := evalNode(t.Left, scope)
		if err != nil {
			return nil, err
		}
		if truthy(l) {
			return true, nil
		}
		r, err := evalNode(t.Right, scope)
		if err != nil {
			return nil, err
		}
		return truthy(r), nil
	}

	l, err := evalNode(t.Left, scope)
	if err != nil {
		return nil, err
	}
	r, err := evalNode(t.Right, scope)
	if err != nil {
		return nil, err
	}

	switch t.Op {
	case "==":
		return looseEqual(l, r), nil
	case "!=":
		return !looseEqual(l, r), nil
	}

	// "+" additionally supports string concatenation.
	if t.Op == "+" {
		ls, lok := l.(string)
		rs, rok := r.(string)
		if lok && rok {
			return ls + rs, nil
		}
	}

	lf, err := toFloat(l)
	if err != nil {
		return nil, err
	}
	rf, err := toFloat(r)
	if err != nil {
		return nil, err
	}

	switch t.Op {
	case "+":
		return lf + rf, nil
	case "-":
		return lf - rf, nil
	case "*":
		return lf * rf, nil
	case "/":
		if rf == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		return lf / rf, nil
	case "%":
		if rf == 0 {
			return nil, fmt.Errorf("modulo by zero")
		}
		return math.Mod(lf, rf), nil
	case "**":
		return math.Pow(lf, rf), nil
	case "<":
		return lf < rf, nil
	case "<=":
		return lf <= rf, nil
	case ">":
		return lf > rf, nil
	case ">=":
		return lf >= rf, nil
	default:
		return nil, fmt.Errorf("internal: unknown binary operator %q", t.Op)
	}
}

func looseEqual(a, b interface{}) bool {
	af, aerr := toFloat(a)
	bf, berr := toFloat(b)
	if aerr == nil && berr == nil {
		return af == bf
	}
	as, aok := a.(string)
	bs, bok := b.(string)
	if aok && bok {
		return as == bs
	}
	ab, aok := a.(bool)
	bb, bok := b.(bool)
	if aok && bok {
		return ab == bb
	}
	return fmt.Sprintf("%v", a) == fmt.Sprintf("%v", b)
}

func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	case []interface{}:
		return len(t) > 0
	case map[string]interface{}:
		return len(t) > 0
	default:
		return true
	}
}

func toFloat(v interface{}) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case int:
		return float64(t), nil
	case bool:
		if t {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("expected a number, got %v (%T)", v, v)
	}
}

func toInt(v interface{}) (int, error) {
	f, err := toFloat(v)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

func toSeq(v interface{}) ([]interface{}, bool) {
	s, ok := v.([]interface{})
	return s, ok
}

func sortedScopeKeys(scope Scope) []string {
	keys := make([]string, 0, len(scope))
	for k := range scope {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
