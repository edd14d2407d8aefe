package jsonvalue

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

// DefaultMaxDepth is the nesting limit applied when no WithMaxDepth option is given.
const DefaultMaxDepth = 64

// ParseOption customizes Parse.
type ParseOption func(*parseOptions)

type parseOptions struct {
	maxDepth int
}

// WithMaxDepth sets the maximum object/array nesting depth.
// Values <= 0 select DefaultMaxDepth.
func WithMaxDepth(n int) ParseOption {
	return func(o *parseOptions) {
		if n > 0 {
			o.maxDepth = n
		}
	}
}

// parseAPI only drives the Iterator. Numbers are taken as literals via
// ReadNumber, so no number decoding setting applies.
var parseAPI = jsoniter.ConfigDefault

// Parse decodes text into an ordered Value tree.
// Input must be exactly one RFC 8259 JSON value surrounded by optional whitespace.
func Parse(text string, opts ...ParseOption) (*Value, error) {
	o := parseOptions{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&o)
	}

	// The iterator accepts some malformed input, so strict validation comes first.
	if !json.Valid([]byte(text)) {
		return nil, ErrInvalidJSON
	}

	p := &parser{
		iter:     jsoniter.ParseString(parseAPI, text),
		maxDepth: o.maxDepth,
	}
	root := p.readValue(0)
	if p.err != nil {
		return nil, p.err
	}
	if err := p.iter.Error; err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if root == nil {
		return nil, ErrInvalidJSON
	}
	return root, nil
}

type parser struct {
	iter     *jsoniter.Iterator
	maxDepth int
	err      error
}

// readValue reads the next value at the given container depth.
// It returns nil and records p.err on failure.
func (p *parser) readValue(depth int) *Value {
	switch p.iter.WhatIsNext() {
	case jsoniter.StringValue:
		return NewString(p.iter.ReadString())
	case jsoniter.NumberValue:
		return NewNumber(string(p.iter.ReadNumber()))
	case jsoniter.BoolValue:
		return NewBool(p.iter.ReadBool())
	case jsoniter.NilValue:
		p.iter.ReadNil()
		return NewNull()
	case jsoniter.ArrayValue:
		if depth >= p.maxDepth {
			p.err = fmt.Errorf("%w (limit %d)", ErrMaxDepth, p.maxDepth)
			return nil
		}
		arr := NewArray()
		p.iter.ReadArrayCB(func(it *jsoniter.Iterator) bool {
			item := p.readValue(depth + 1)
			if item == nil {
				return false
			}
			arr.Append(item)
			return it.Error == nil
		})
		if p.err != nil {
			return nil
		}
		return arr
	case jsoniter.ObjectValue:
		if depth >= p.maxDepth {
			p.err = fmt.Errorf("%w (limit %d)", ErrMaxDepth, p.maxDepth)
			return nil
		}
		obj := NewObject()
		p.iter.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
			val := p.readValue(depth + 1)
			if val == nil {
				return false
			}
			obj.Set(key, val)
			return it.Error == nil
		})
		if p.err != nil {
			return nil
		}
		return obj
	default:
		p.err = fmt.Errorf("%w: unexpected token", ErrInvalidJSON)
		return nil
	}
}
