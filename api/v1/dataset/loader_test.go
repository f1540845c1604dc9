package dataset

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

var testDir = "./testdata/temp"

func setupSplitDir(t *testing.T, split string, labels map[string][]string) {
	t.Helper()
	for label, files := range labels {
		dir := filepath.Join(testDir, split, label)
		if err := os.MkdirAll(dir, 0700); err != nil {
			t.Fatalf("unable to create dir %q: %s", dir, err)
		}
		for _, f := range files {
			if err := ioutil.WriteFile(filepath.Join(dir, f), []byte(f), 0600); err != nil {
				t.Fatalf("unable to write file %q: %s", f, err)
			}
		}
	}
}

func TestLoadSplit_Positive(t *testing.T) {
	defer os.RemoveAll(testDir)
	setupSplitDir(t, "train", map[string][]string{
		"0": {"a.png", "b.png"},
		"1": {"c.png"},
	})

	split, err := LoadSplit(testDir, "train")
	if err != nil {
		t.Fatalf("unexpected err: %s", err)
	}
	if split.Name != "train" {
		t.Fatalf("got split name %q; expected %q", split.Name, "train")
	}
	if len(split.Examples) != 3 {
		t.Fatalf("got %d examples; expected 3", len(split.Examples))
	}
	var ones int
	for _, ex := range split.Examples {
		if len(ex.Image) == 0 {
			t.Fatalf("example has empty image")
		}
		if ex.Label == 1 {
			ones++
		}
	}
	if ones != 1 {
		t.Fatalf("got %d examples of class 1; expected 1", ones)
	}
}

func TestLoadSplit_Negative(t *testing.T) {
	defer os.RemoveAll(testDir)

	if _, err := LoadSplit(testDir, "missing"); err == nil {
		t.Fatalf("expected to get err for missing split; got nil instead")
	}

	setupSplitDir(t, "train", map[string][]string{"cat": {"a.png"}})
	if _, err := LoadSplit(testDir, "train"); err == nil {
		t.Fatalf("expected to get err for non-integer label dir; got nil instead")
	}
}
