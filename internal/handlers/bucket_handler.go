package handlers

import (
	"net/http"

	"user-directory-api/internal/models"
	"user-directory-api/pkg/lambda"
)

// BucketHandler handles GET /bucket
type BucketHandler struct {
	descriptor models.BucketDescriptor
}

// NewBucketHandler creates a new bucket-info handler
func NewBucketHandler(descriptor models.BucketDescriptor) *BucketHandler {
	return &BucketHandler{
		descriptor: descriptor,
	}
}

// Handle returns the static bucket descriptor
func (h *BucketHandler) Handle() (*lambda.Response, error) {
	return Respond(http.StatusOK, h.descriptor)
}
