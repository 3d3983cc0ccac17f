package storage

import (
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperationsWithoutClient(t *testing.T) {
	s3 := &awsS3{bucket: "bucket", region: "us-east-1"}
	file := &multipart.FileHeader{Filename: "photo.jpg"}

	_, err := s3.UploadFile("food-1", file, "food-items", AllowImage...)
	assert.ErrorIs(t, err, ErrStorageNotConfigured)

	_, err = s3.UpdateFile("food-items/food-1.jpg", file, AllowImage...)
	assert.ErrorIs(t, err, ErrStorageNotConfigured)

	assert.ErrorIs(t, s3.DeleteFile("food-items/food-1.jpg"), ErrStorageNotConfigured)
}

func TestExtAllowed(t *testing.T) {
	assert.True(t, extAllowed("photo.JPG", AllowImage))
	assert.True(t, extAllowed("photo.webp", AllowImage))
	assert.False(t, extAllowed("notes.pdf", AllowImage))
	assert.False(t, extAllowed("photo", AllowImage))
}
