package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"github.com/google/uuid"

	"osta/pkg/errors"
)

// CloudStorageClient uploads user avatars and chat attachments to the
// project's Firebase storage bucket.
type CloudStorageClient struct {
	bucket     *storage.BucketHandle
	bucketName string
}

func NewCloudStorageClient(ctx context.Context, app *firebase.App, bucketName string) (*CloudStorageClient, error) {
	client, err := app.Storage(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to open bucket %s: %w", bucketName, err)
	}

	return &CloudStorageClient{
		bucket:     bucket,
		bucketName: bucketName,
	}, nil
}

func objectName(folder, contentType string) string {
	name := fmt.Sprintf("%s/%s-%s", folder, uuid.New().String(), time.Now().Format("20060102150405"))
	switch contentType {
	case "image/jpeg", "image/jpg":
		return name + ".jpg"
	case "image/png":
		return name + ".png"
	case "image/gif":
		return name + ".gif"
	case "application/pdf":
		return name + ".pdf"
	default:
		return name + ".bin"
	}
}

// UploadFile streams the file into the bucket and returns its public URL.
func (c *CloudStorageClient) UploadFile(ctx context.Context, file io.Reader, contentType, folder string) (string, error) {
	name := objectName(folder, contentType)

	obj := c.bucket.Object(name)
	wc := obj.NewWriter(ctx)
	wc.ContentType = contentType
	wc.CacheControl = "public, max-age=86400"

	if _, err := io.Copy(wc, file); err != nil {
		return "", errors.Internal("Failed to upload file", err)
	}
	if err := wc.Close(); err != nil {
		return "", errors.Internal("Failed to upload file", err)
	}

	if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return "", errors.Internal("Failed to publish file", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, name), nil
}

// DeleteFile removes an object previously returned by UploadFile.
func (c *CloudStorageClient) DeleteFile(ctx context.Context, fileURL string) error {
	prefix := fmt.Sprintf("https://storage.googleapis.com/%s/", c.bucketName)
	if !strings.HasPrefix(fileURL, prefix) {
		return errors.BadRequest("Invalid file URL", nil)
	}

	name := fileURL[len(prefix):]
	if err := c.bucket.Object(name).Delete(ctx); err != nil {
		return errors.Internal("Failed to delete file", err)
	}
	return nil
}
