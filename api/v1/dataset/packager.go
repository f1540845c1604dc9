package dataset

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/neuromation/hypertune/api/v1/storage"
	"github.com/neuromation/hypertune/api/v1/tuning"
	"github.com/neuromation/hypertune/log"
)

// Uploader puts an object under key and returns its storage location.
// Satisfied by *storage.S3Storage.
type Uploader interface {
	Upload(ctx context.Context, key string, body io.Reader) (string, error)
}

// Packager packages splits and uploads one archive per channel.
type Packager struct {
	uploader Uploader
	prefix   string
	classes  int
}

// NewPackager creates a Packager scoped by prefix for the given class count
func NewPackager(uploader Uploader, prefix string, classes int) *Packager {
	return &Packager{
		uploader: uploader,
		prefix:   prefix,
		classes:  classes,
	}
}

// Upload packages every split and uploads it under a deterministic key.
// Returned channels carry the exact locations the tuning job must consume.
func (p *Packager) Upload(ctx context.Context, splits ...Split) ([]tuning.Channel, error) {
	channels := make([]tuning.Channel, 0, len(splits))
	for _, split := range splits {
		b, err := Pack(split, p.classes)
		if err != nil {
			return nil, fmt.Errorf("error while packing split %q: %s", split.Name, err)
		}
		key := storage.DataKey(p.prefix, split.Name, split.Name+".gob.gz")
		location, err := p.uploader.Upload(ctx, key, bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("error while uploading split %q: %s", split.Name, err)
		}
		log.Infof("uploaded split %q (%d examples, %d bytes) to %s",
			split.Name, len(split.Examples), len(b), location)
		channels = append(channels, tuning.Channel{
			Name:        split.Name,
			Location:    location,
			Compression: "Gzip",
		})
	}
	return channels, nil
}
