// Copyright 2018-2020 The hw developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package wallet

import (
	"bytes"
	"encoding/json"
	"reflect"

	"gopkg.in/yaml.v3"
)

// OrderedResult is a Result whose fields keep their declaration order when
// rendered, in both output formats. Empty values (empty string, slice, map
// or nil) are omitted when marshaling.
type OrderedResult []KV

type KV struct {
	Key string
	Val interface{}
}

func (ores OrderedResult) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("{")
	first := true
	for _, kv := range ores {
		if isEmptyValue(reflect.ValueOf(kv.Val)) {
			continue // omit empty
		}
		if !first {
			buf.WriteString(",")
		}
		first = false
		key, err := json.Marshal(kv.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteString(":")
		val, err := json.Marshal(kv.Val)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteString("}")
	return buf.Bytes(), nil
}

// MarshalYAML renders the result as a mapping node so the block format
// keeps the same field order as the JSON format.
func (ores OrderedResult) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, kv := range ores {
		if isEmptyValue(reflect.ValueOf(kv.Val)) {
			continue
		}
		keyNode := &yaml.Node{}
		keyNode.SetString(kv.Key)
		valNode := &yaml.Node{}
		if err := valNode.Encode(kv.Val); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Interface, reflect.Ptr:
		return v.IsNil()
	case reflect.Invalid:
		return true
	}
	return false
}
