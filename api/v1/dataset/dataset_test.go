package dataset

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/neuromation/hypertune/log"
)

func TestMain(m *testing.M) {
	log.SuppressOutput(true)
	retCode := m.Run()
	log.SuppressOutput(false)
	os.Exit(retCode)
}

func TestOneHot_Positive(t *testing.T) {
	labels := []int{0, 2, 1}
	rows, err := OneHot(labels, 3)
	if err != nil {
		t.Fatalf("unexpected err: %s", err)
	}
	if len(rows) != len(labels) {
		t.Fatalf("got %d rows; expected %d", len(rows), len(labels))
	}
	for i, row := range rows {
		if len(row) != 3 {
			t.Fatalf("row %d has width %d; expected width equal to class count 3", i, len(row))
		}
		for j, v := range row {
			expected := float32(0)
			if j == labels[i] {
				expected = 1
			}
			if v != expected {
				t.Fatalf("row %d position %d is %v; expected %v", i, j, v, expected)
			}
		}
	}
}

func TestOneHot_Negative(t *testing.T) {
	testCases := []struct {
		name    string
		labels  []int
		classes int
		err     string
	}{
		{
			"label equals class count",
			[]int{0, 3},
			3,
			"out of range",
		},
		{
			"label above class count",
			[]int{10},
			3,
			"out of range",
		},
		{
			"negative label",
			[]int{-1},
			3,
			"out of range",
		},
		{
			"zero classes",
			[]int{0},
			0,
			"class count must be positive",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := OneHot(tc.labels, tc.classes)
			if err == nil {
				t.Fatalf("expected to get err; got nil instead")
			}
			if !strings.Contains(err.Error(), tc.err) {
				t.Fatalf("expected to get err: %s; got instead: %q", tc.err, err)
			}
		})
	}
}

func TestPackUnpack(t *testing.T) {
	split := Split{
		Name: "train",
		Examples: []Example{
			{Image: []byte{1, 2, 3}, Label: 0},
			{Image: []byte{4, 5, 6}, Label: 2},
		},
	}
	b, err := Pack(split, 3)
	if err != nil {
		t.Fatalf("unexpected err: %s", err)
	}

	a, err := Unpack(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("unexpected err: %s", err)
	}
	if len(a.Features) != 2 || len(a.Labels) != 2 {
		t.Fatalf("got %d features and %d labels; expected 2 of each", len(a.Features), len(a.Labels))
	}
	if !bytes.Equal(a.Features[1], []byte{4, 5, 6}) {
		t.Fatalf("got feature %v; expected %v", a.Features[1], []byte{4, 5, 6})
	}
	if a.Labels[1][2] != 1 {
		t.Fatalf("got label row %v; expected one-hot at position 2", a.Labels[1])
	}
}

func TestPack_Negative(t *testing.T) {
	if _, err := Pack(Split{Name: "empty"}, 3); err == nil {
		t.Fatalf("expected to get err for empty split; got nil instead")
	}
	split := Split{
		Name:     "train",
		Examples: []Example{{Image: []byte{1}, Label: 3}},
	}
	if _, err := Pack(split, 3); err == nil {
		t.Fatalf("expected to get err for out-of-range label; got nil instead")
	}
}
