package service

import (
	"Minbar/internal/api/dto"
	"Minbar/internal/pkg/minio"
	"Minbar/internal/pkg/util"
	"bytes"
	"context"
	"path"

	"github.com/google/uuid"
)

// uploadMedia stores a payload under prefix and returns the object key.
func uploadMedia(ctx context.Context, prefix string, f *dto.FilePayload) (string, error) {
	objectName := prefix + "/" + uuid.NewString() + path.Ext(f.Name)
	return minio.UploadFile(ctx, objectName, bytes.NewReader(f.Data), int64(len(f.Data)), f.ContentType)
}

// uploadThumbnail renders and stores a jpeg thumbnail for an image
// payload.
func uploadThumbnail(ctx context.Context, prefix string, f *dto.FilePayload) (string, error) {
	thumb, err := util.MakeThumbnail(bytes.NewReader(f.Data))
	if err != nil {
		return "", err
	}
	objectName := prefix + "/thumb/" + uuid.NewString() + ".jpg"
	return minio.UploadFile(ctx, objectName, thumb, int64(thumb.Len()), "image/jpeg")
}
