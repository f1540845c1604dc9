// Package dataset packages labeled images into per-split archives the
// training container consumes.
package dataset

import (
	"bytes"
	"compress/gzip"
	"encoding/gob"
	"fmt"
	"io"
)

// Example is a single labeled image.
type Example struct {
	Image []byte
	Label int
}

// Split is a named set of labeled examples, e.g. "train" or "test".
type Split struct {
	Name     string
	Examples []Example
}

// Archive is the serialized form uploaded per channel: raw image bytes
// alongside one-hot encoded labels.
type Archive struct {
	Features [][]byte
	Labels   [][]float32
}

// OneHot encodes integer labels into rows of the given width.
// Fails on any label outside [0, classes).
func OneHot(labels []int, classes int) ([][]float32, error) {
	if classes < 1 {
		return nil, fmt.Errorf("class count must be positive; got %d", classes)
	}
	out := make([][]float32, len(labels))
	for i, l := range labels {
		if l < 0 || l >= classes {
			return nil, fmt.Errorf("label %d at index %d is out of range for %d classes", l, i, classes)
		}
		row := make([]float32, classes)
		row[l] = 1
		out[i] = row
	}
	return out, nil
}

// Pack serializes the split into a gzip-compressed gob archive.
func Pack(split Split, classes int) ([]byte, error) {
	if len(split.Examples) == 0 {
		return nil, fmt.Errorf("split %q contains no examples", split.Name)
	}
	labels := make([]int, len(split.Examples))
	features := make([][]byte, len(split.Examples))
	for i, ex := range split.Examples {
		labels[i] = ex.Label
		features[i] = ex.Image
	}
	encoded, err := OneHot(labels, classes)
	if err != nil {
		return nil, fmt.Errorf("error while encoding labels of split %q: %s", split.Name, err)
	}

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	a := Archive{
		Features: features,
		Labels:   encoded,
	}
	if err := gob.NewEncoder(zw).Encode(a); err != nil {
		return nil, fmt.Errorf("error while encoding split %q: %s", split.Name, err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("error while compressing split %q: %s", split.Name, err)
	}
	return buf.Bytes(), nil
}

// Unpack reads an archive produced by Pack.
func Unpack(r io.Reader) (*Archive, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("error while opening archive: %s", err)
	}
	defer zr.Close()
	a := &Archive{}
	if err := gob.NewDecoder(zr).Decode(a); err != nil {
		return nil, fmt.Errorf("error while decoding archive: %s", err)
	}
	return a, nil
}
