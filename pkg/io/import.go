package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/cogmap/pkg/dex"
)

// ReadJSON decodes a result previously written by [WriteJSON].
//
// ReadJSON does not validate the tables beyond JSON decoding; in
// particular edge endpoints are not checked against node names. Use
// [dex.Result.DanglingEdges] for that. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*dex.Result, error) {
	var res dex.Result
	if err := json.NewDecoder(r).Decode(&res); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return &res, nil
}

// ImportJSON reads a JSON result file at path.
// The error wraps the underlying cause with the file path for context.
func ImportJSON(path string) (*dex.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
