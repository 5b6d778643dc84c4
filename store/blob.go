package store

import (
	"context"
	"errors"
	"io"

	"snapill/config/db"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
)

// BlobStore holds uploaded video assets. The GridFS implementation keeps them
// next to the rest of the data so one database backs the whole service.
type BlobStore interface {
	Save(ctx context.Context, key string, src io.Reader) (fileId string, err error)
	Open(ctx context.Context, fileId string) (io.ReadCloser, error)
}

var Videos BlobStore = &gridfsBlobStore{}

type gridfsBlobStore struct{}

func (s *gridfsBlobStore) Save(ctx context.Context, key string, src io.Reader) (string, error) {
	bucket, err := gridfs.NewBucket(db.Database())
	if err != nil {
		return "", err
	}
	// The v1 GridFS API carries cancellation through deadlines, not contexts.
	if deadline, ok := ctx.Deadline(); ok {
		if err := bucket.SetWriteDeadline(deadline); err != nil {
			return "", err
		}
	}
	stream, err := bucket.OpenUploadStream(key)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(stream, src); err != nil {
		stream.Abort()
		return "", err
	}
	if err := stream.Close(); err != nil {
		return "", err
	}
	fileId, ok := stream.FileID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected GridFS file id type")
	}
	return fileId.Hex(), nil
}

func (s *gridfsBlobStore) Open(ctx context.Context, fileId string) (io.ReadCloser, error) {
	id, err := primitive.ObjectIDFromHex(fileId)
	if err != nil {
		return nil, err
	}
	bucket, err := gridfs.NewBucket(db.Database())
	if err != nil {
		return nil, err
	}
	if deadline, ok := ctx.Deadline(); ok {
		if err := bucket.SetReadDeadline(deadline); err != nil {
			return nil, err
		}
	}
	return bucket.OpenDownloadStream(id)
}
