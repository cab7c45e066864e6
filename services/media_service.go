package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"log"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

const (
	avatarMaxDimension = 800
	avatarJPEGQuality  = 70
)

// Uploader stores an object and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// MediaService compresses avatar images and pushes them through the
// configured uploader. Satisfies the wizard's MediaStore contract.
type MediaService struct {
	Uploader Uploader
}

func NewMediaService(uploader Uploader) *MediaService {
	return &MediaService{Uploader: uploader}
}

// UploadAvatar re-encodes the image and uploads it under the owner's
// avatar prefix, returning the public URL.
func (m *MediaService) UploadAvatar(ctx context.Context, data []byte, ownerID string) (string, error) {
	compressed, err := CompressImage(data, avatarMaxDimension, avatarJPEGQuality)
	if err != nil {
		return "", fmt.Errorf("failed to compress avatar: %w", err)
	}
	log.Printf("Compressed avatar for %s: %d -> %d bytes", ownerID, len(data), len(compressed))

	key := fmt.Sprintf("avatars/%s/%s.jpg", ownerID, uuid.New().String())
	return m.Uploader.Upload(ctx, key, compressed, "image/jpeg")
}

// CompressImage decodes any registered image format, scales it down to
// maxDimension on the longer side preserving aspect ratio, and re-encodes
// as JPEG at the given quality.
func CompressImage(data []byte, maxDimension, quality int) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	newWidth, newHeight := width, height
	if width >= height {
		if width > maxDimension {
			newWidth = maxDimension
			newHeight = int(float64(height) * float64(maxDimension) / float64(width))
		}
	} else {
		if height > maxDimension {
			newHeight = maxDimension
			newWidth = int(float64(width) * float64(maxDimension) / float64(height))
		}
	}

	resized := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(resized, resized.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// S3Uploader stores objects in an S3 bucket and serves them by public URL.
type S3Uploader struct {
	Client *s3.Client
	Bucket string
	Region string
}

func (u *S3Uploader) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := u.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload '%s' to bucket '%s': %w", key, u.Bucket, err)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.Bucket, u.Region, key), nil
}

// MemoryUploader keeps objects in a map, used with the memory store
// backend and in tests.
type MemoryUploader struct {
	mu      sync.Mutex
	Objects map[string][]byte
}

func NewMemoryUploader() *MemoryUploader {
	return &MemoryUploader{Objects: make(map[string][]byte)}
}

func (u *MemoryUploader) Upload(_ context.Context, key string, data []byte, _ string) (string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.Objects[key] = data
	return "memory://" + key, nil
}
