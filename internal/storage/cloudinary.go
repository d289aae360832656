// internal/storage/cloudinary.go
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Media is an uploaded asset reference.
type Media struct {
	URL      string
	PublicID string
}

// MediaStore is the port for image and document hosting. Banners, company
// logos, mentor avatars, and legal documents go through it.
type MediaStore interface {
	Upload(ctx context.Context, r io.Reader, folder, name string) (*Media, error)
	Delete(ctx context.Context, publicID string) error
}

type CloudinaryStore struct {
	client *cloudinary.Cloudinary
}

// NewCloudinaryStore builds a store from a cloudinary:// URL.
func NewCloudinaryStore(url string) (*CloudinaryStore, error) {
	client, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, fmt.Errorf("initializing cloudinary: %w", err)
	}
	return &CloudinaryStore{client: client}, nil
}

func (s *CloudinaryStore) Upload(ctx context.Context, r io.Reader, folder, name string) (*Media, error) {
	resp, err := s.client.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:       folder,
		PublicID:     name,
		ResourceType: "auto",
	})
	if err != nil {
		return nil, fmt.Errorf("uploading to cloudinary: %w", err)
	}

	return &Media{
		URL:      resp.SecureURL,
		PublicID: resp.PublicID,
	}, nil
}

func (s *CloudinaryStore) Delete(ctx context.Context, publicID string) error {
	_, err := s.client.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("deleting cloudinary asset %s: %w", publicID, err)
	}
	return nil
}
