package dataset

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/neuromation/hypertune/api/v1/storage"
)

type fakeUploader struct {
	keys []string
	fail bool
}

func (f *fakeUploader) Upload(_ context.Context, key string, body io.Reader) (string, error) {
	if f.fail {
		return "", fmt.Errorf("connection reset by peer")
	}
	f.keys = append(f.keys, key)
	return storage.Location("bucket", key), nil
}

func TestPackagerUpload_Positive(t *testing.T) {
	uploader := &fakeUploader{}
	packager := NewPackager(uploader, "cnn-tuning", 2)

	train := Split{Name: "train", Examples: []Example{{Image: []byte{1}, Label: 0}}}
	test := Split{Name: "test", Examples: []Example{{Image: []byte{2}, Label: 1}}}

	channels, err := packager.Upload(context.Background(), train, test)
	if err != nil {
		t.Fatalf("unexpected err: %s", err)
	}
	if len(channels) != 2 {
		t.Fatalf("got %d channels; expected 2", len(channels))
	}
	expectedKeys := []string{
		"data/cnn-tuning/train/train.gob.gz",
		"data/cnn-tuning/test/test.gob.gz",
	}
	for i, key := range expectedKeys {
		if uploader.keys[i] != key {
			t.Fatalf("got key %q; expected %q", uploader.keys[i], key)
		}
		// the location handed to the submitter must be exactly
		// where the archive was stored
		expectedLocation := storage.Location("bucket", key)
		if channels[i].Location != expectedLocation {
			t.Fatalf("got location %q; expected %q", channels[i].Location, expectedLocation)
		}
		if channels[i].Compression != "Gzip" {
			t.Fatalf("got compression %q; expected %q", channels[i].Compression, "Gzip")
		}
	}
	if channels[0].Name != "train" || channels[1].Name != "test" {
		t.Fatalf("got channel names %q, %q; expected train, test", channels[0].Name, channels[1].Name)
	}
}

func TestPackagerUpload_Negative(t *testing.T) {
	packager := NewPackager(&fakeUploader{fail: true}, "cnn-tuning", 2)
	split := Split{Name: "train", Examples: []Example{{Image: []byte{1}, Label: 0}}}
	if _, err := packager.Upload(context.Background(), split); err == nil {
		t.Fatalf("expected to get err; got nil instead")
	}

	packager = NewPackager(&fakeUploader{}, "cnn-tuning", 1)
	bad := Split{Name: "train", Examples: []Example{{Image: []byte{1}, Label: 5}}}
	if _, err := packager.Upload(context.Background(), bad); err == nil {
		t.Fatalf("expected to get err for bad label; got nil instead")
	}
}
