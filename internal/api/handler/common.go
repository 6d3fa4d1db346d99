package handler

import (
	"Minbar/internal/api/dto"
	"Minbar/internal/pkg/minio"
	"Minbar/internal/pkg/response"
	"Minbar/internal/pkg/util"
	"Minbar/internal/service"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

func parseID(c *gin.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, service.ErrParamInvalid
	}
	return id, nil
}

// pageWindow clamps the pagination query into a limit/offset pair.
func pageWindow(page *dto.PageDTO) (int, int) {
	limit := util.ClampLimit(page.Limit, defaultListLimit, maxListLimit)
	offset := page.Offset
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// formFile reads an optional multipart field into memory. A missing
// field is not an error.
func formFile(c *gin.Context, field string) (*dto.FilePayload, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return &dto.FilePayload{
		Data:        data,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Name:        fileHeader.Filename,
	}, nil
}

// streamObject proxies a stored object to the client.
func streamObject(c *gin.Context, key string) {
	obj, info, err := minio.StreamFile(c.Request.Context(), key)
	if err != nil {
		response.Error(c, service.ErrFileNotFound)
		return
	}
	defer obj.Close()

	c.DataFromReader(200, info.Size, info.ContentType, obj, nil)
}
