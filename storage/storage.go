// Package storage persists report images in Azure Blob Storage.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
)

var (
	ErrEmptyKey   = errors.New("storage: empty blob key")
	ErrInvalidKey = errors.New("storage: invalid blob key")
)

// ImageStore uploads an image and returns its public URL.
type ImageStore interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
}

// AzureStore is the Azure Blob Storage implementation of ImageStore.
type AzureStore struct {
	client    *azblob.Client
	container string
}

// NewAzureStore dials the storage account and makes sure the container
// exists.
func NewAzureStore(ctx context.Context, connectionString, container string) (*AzureStore, error) {
	client, err := azblob.NewClientFromConnectionString(connectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	if _, err := client.CreateContainer(ctx, container, nil); err != nil {
		if !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
			return nil, fmt.Errorf("create container %s: %w", container, err)
		}
	}

	return &AzureStore{client: client, container: container}, nil
}

// Upload streams the image to a blob at key and returns the blob URL.
func (a *AzureStore) Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error) {
	if err := validateKey(key); err != nil {
		return "", err
	}

	opts := &azblob.UploadStreamOptions{
		HTTPHeaders: &blob.HTTPHeaders{
			BlobContentType: &contentType,
		},
	}

	if _, err := a.client.UploadStream(ctx, a.container, key, r, opts); err != nil {
		return "", fmt.Errorf("upload blob %s: %w", key, err)
	}

	return a.blobURL(key), nil
}

func (a *AzureStore) blobURL(key string) string {
	base := strings.TrimSuffix(a.client.URL(), "/")
	return fmt.Sprintf("%s/%s/%s", base, a.container, key)
}

func validateKey(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if strings.Contains(key, "..") {
		return ErrInvalidKey
	}
	return nil
}
