package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"

	"velora_back_end/internal/database"
)

// UploadProductImage stores a product image under products/<id><ext> and
// returns the object URL recorded on the product.
func UploadProductImage(ctx context.Context, productID string, file *multipart.FileHeader) (string, error) {
	if database.MinIO == nil {
		return "", fmt.Errorf("MinIO not initialized")
	}

	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	bucket := os.Getenv("MINIO_BUCKET")
	object := fmt.Sprintf("products/%s%s", productID, filepath.Ext(file.Filename))

	_, err = database.MinIO.PutObject(ctx, bucket, object, f, file.Size,
		minio.PutObjectOptions{ContentType: file.Header.Get("Content-Type")})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("http://%s/%s/%s", os.Getenv("MINIO_ENDPOINT"), bucket, object), nil
}

// GenerateSignedURL turns a stored object URL into a presigned GET link.
// URLs that do not point at our bucket are returned untouched.
func GenerateSignedURL(ctx context.Context, objectURL string, duration time.Duration) (string, error) {
	bucket := os.Getenv("MINIO_BUCKET")
	prefix := fmt.Sprintf("http://%s/%s/", os.Getenv("MINIO_ENDPOINT"), bucket)

	if database.MinIO == nil || !strings.HasPrefix(objectURL, prefix) {
		return objectURL, nil
	}

	key := strings.TrimPrefix(objectURL, prefix)

	presigned, err := database.MinIO.PresignedGetObject(ctx, bucket, key, duration, make(url.Values))
	if err != nil {
		return "", err
	}

	return presigned.String(), nil
}
