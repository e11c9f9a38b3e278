package store

import (
	"encoding/json"
	"fmt"

	"github.com/roach88/simgroup/internal/param"
)

// marshalParams converts Params to JSON TEXT with sorted keys.
func marshalParams(p param.Params) (string, error) {
	if p == nil {
		p = param.Params{}
	}
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("marshal params: %w", err)
	}
	return string(data), nil
}

// unmarshalParams parses JSON TEXT into Params, keeping Int and Float apart.
func unmarshalParams(data string) (param.Params, error) {
	if data == "" || data == "{}" {
		return param.Params{}, nil
	}
	var p param.Params
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, fmt.Errorf("unmarshal params: %w", err)
	}
	return p, nil
}

// marshalLxyz converts a domain-size vector to JSON TEXT.
func marshalLxyz(lxyz [3]float64) (string, error) {
	arr := param.Array{param.Float(lxyz[0]), param.Float(lxyz[1]), param.Float(lxyz[2])}
	data, err := param.MarshalValue(arr)
	if err != nil {
		return "", fmt.Errorf("marshal lxyz: %w", err)
	}
	return string(data), nil
}

func unmarshalLxyz(data string) ([3]float64, error) {
	var lxyz [3]float64
	if err := json.Unmarshal([]byte(data), &lxyz); err != nil {
		return lxyz, fmt.Errorf("unmarshal lxyz: %w", err)
	}
	return lxyz, nil
}
