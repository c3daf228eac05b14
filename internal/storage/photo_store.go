package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// PhotoStore abstrae el bucket de fotos de estudiantes.
type PhotoStore interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// PhotoKey arma la clave del objeto: <studentId>_<timestamp>.jpg.
func PhotoKey(studentID string, now time.Time) string {
	return fmt.Sprintf("%s_%d.jpg", studentID, now.Unix())
}

// KeyFromURL recupera la clave del objeto desde la URL publica guardada en el
// registro, para poder borrar la foto cuando se borra el estudiante.
func KeyFromURL(photoURL string) string {
	idx := strings.LastIndex(photoURL, "/")
	if idx < 0 {
		return photoURL
	}
	return photoURL[idx+1:]
}

// S3PhotoStore sube fotos a un bucket S3 con lectura publica.
type S3PhotoStore struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewS3PhotoStore(ctx context.Context, region, bucket, baseURL string) (*S3PhotoStore, error) {
	if strings.TrimSpace(bucket) == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
	}
	return &S3PhotoStore{
		client:  s3.NewFromConfig(cfg),
		bucket:  bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

func (s *S3PhotoStore) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	if contentType == "" {
		contentType = "image/jpeg"
	}
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}
	return s.baseURL + "/" + key, nil
}

func (s *S3PhotoStore) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", key, err)
	}
	return nil
}

type disabledPhotoStore struct {
	reason string
}

// NewDisabledPhotoStore devuelve un store que rechaza toda operacion, para
// ambientes sin bucket configurado.
func NewDisabledPhotoStore(reason string) PhotoStore {
	return &disabledPhotoStore{reason: reason}
}

func (s *disabledPhotoStore) Upload(_ context.Context, _ string, _ io.Reader, _ string) (string, error) {
	return "", s.err()
}

func (s *disabledPhotoStore) Delete(_ context.Context, _ string) error {
	return s.err()
}

func (s *disabledPhotoStore) err() error {
	if s.reason == "" {
		return errors.New("photo store disabled")
	}
	return errors.New(s.reason)
}
