package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/hedibld92/Grimovies/internal/config"
)

type fakeS3 struct {
	manager.UploadAPIClient

	inputs []*s3.PutObjectInput
	bodies []string
	err    error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.inputs = append(f.inputs, in)
	f.bodies = append(f.bodies, string(body))
	return &s3.PutObjectOutput{}, nil
}

func TestS3StorageSave(t *testing.T) {
	client := &fakeS3{}
	store := newS3Storage(client, config.PosterMirrorConfig{
		Bucket:        "posters",
		PublicBaseURL: "https://cdn.example.com/",
	})

	location, err := store.Save(context.Background(), "/w500/abc.jpg", strings.NewReader("jpeg"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if location != "https://cdn.example.com/w500/abc.jpg" {
		t.Fatalf("unexpected location %q", location)
	}
	if len(client.inputs) != 1 {
		t.Fatalf("expected one upload got %d", len(client.inputs))
	}
	in := client.inputs[0]
	if aws.ToString(in.Bucket) != "posters" || aws.ToString(in.Key) != "w500/abc.jpg" {
		t.Fatalf("unexpected target %s/%s", aws.ToString(in.Bucket), aws.ToString(in.Key))
	}
	if aws.ToString(in.ContentType) != "image/jpeg" {
		t.Fatalf("unexpected content type %q", aws.ToString(in.ContentType))
	}
	if client.bodies[0] != "jpeg" {
		t.Fatalf("unexpected body %q", client.bodies[0])
	}
}

func TestS3StorageSaveWithoutBaseURL(t *testing.T) {
	store := newS3Storage(&fakeS3{}, config.PosterMirrorConfig{Bucket: "posters"})

	location, err := store.Save(context.Background(), "w500/abc.jpg", strings.NewReader("jpeg"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if location != "w500/abc.jpg" {
		t.Fatalf("expected bare key got %q", location)
	}
}

func TestS3StorageSaveErrors(t *testing.T) {
	store := newS3Storage(&fakeS3{err: errors.New("denied")}, config.PosterMirrorConfig{Bucket: "posters"})

	if _, err := store.Save(context.Background(), "/", strings.NewReader("x")); err == nil {
		t.Fatal("expected error for empty key")
	}
	if _, err := store.Save(context.Background(), "w500/abc.jpg", strings.NewReader("x")); err == nil {
		t.Fatal("expected upload error")
	}
}

func TestNewS3StorageRequiresBucket(t *testing.T) {
	if _, err := NewS3Storage(context.Background(), config.PosterMirrorConfig{}); err == nil {
		t.Fatal("expected error without bucket")
	}
}
