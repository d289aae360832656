// internal/storage/gridfs.go
package storage

import (
	"context"
	"fmt"
	"io"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BlobStore is the port for large binary files. Resumes stream into GridFS
// rather than the relational store.
type BlobStore interface {
	Put(ctx context.Context, filename string, r io.Reader, metadata map[string]string) (string, error)
	Get(ctx context.Context, id string, w io.Writer) (int64, error)
	Remove(ctx context.Context, id string) error
}

type GridFSStore struct {
	bucket *gridfs.Bucket
}

// NewGridFSStore opens a named bucket on the given database.
func NewGridFSStore(db *mongo.Database, bucketName string) (*GridFSStore, error) {
	bucket, err := gridfs.NewBucket(db, options.GridFSBucket().SetName(bucketName))
	if err != nil {
		return nil, fmt.Errorf("opening gridfs bucket %s: %w", bucketName, err)
	}
	return &GridFSStore{bucket: bucket}, nil
}

func (s *GridFSStore) Put(ctx context.Context, filename string, r io.Reader, metadata map[string]string) (string, error) {
	meta := bson.M{}
	for k, v := range metadata {
		meta[k] = v
	}

	uploadOpts := options.GridFSUpload().SetMetadata(meta)
	id, err := s.bucket.UploadFromStream(filename, r, uploadOpts)
	if err != nil {
		return "", fmt.Errorf("uploading %s to gridfs: %w", filename, err)
	}
	return id.Hex(), nil
}

func (s *GridFSStore) Get(ctx context.Context, id string, w io.Writer) (int64, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("invalid gridfs id %q: %w", id, err)
	}

	n, err := s.bucket.DownloadToStream(objectID, w)
	if err != nil {
		return 0, fmt.Errorf("downloading gridfs file %s: %w", id, err)
	}
	return n, nil
}

func (s *GridFSStore) Remove(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid gridfs id %q: %w", id, err)
	}

	if err := s.bucket.Delete(objectID); err != nil {
		return fmt.Errorf("deleting gridfs file %s: %w", id, err)
	}
	return nil
}
