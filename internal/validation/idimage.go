package validation

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime"
	"mime/multipart"
	"path/filepath"

	_ "golang.org/x/image/webp"

	internal_errors "github.com/ryuk156/backend-AOL/internal/errors"
)

// ValidateIdImage reads and checks an uploaded identity document image.
// It enforces the size limit, the allowed MIME types, and that the payload
// actually decodes as an image of the declared kind.
func ValidateIdImage(fileHeader *multipart.FileHeader, allowedMimes []string, maxSizeBytes int64) ([]byte, string, error) {
	if fileHeader.Size > maxSizeBytes {
		return nil, "", internal_errors.Validation("identity image exceeds the limit of %d bytes", maxSizeBytes)
	}

	mimeType, err := DetectMimeType(fileHeader)
	if err != nil {
		return nil, "", internal_errors.Validation("%v", err)
	}

	allowed := make(map[string]bool, len(allowedMimes))
	for _, m := range allowedMimes {
		allowed[m] = true
	}
	if !allowed[mimeType] {
		return nil, "", internal_errors.Validation("unsupported identity image type: %s", mimeType)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxSizeBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read uploaded file: %w", err)
	}
	if int64(len(data)) > maxSizeBytes {
		return nil, "", internal_errors.Validation("identity image exceeds the limit of %d bytes", maxSizeBytes)
	}

	// Content-Type headers lie, decoded pixels do not.
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return nil, "", internal_errors.Validation("identity image is not a decodable image")
	}

	return data, mimeType, nil
}

func DetectMimeType(fileHeader *multipart.FileHeader) (string, error) {
	mimeType := fileHeader.Header.Get("Content-Type")

	// If no Content-Type or it's generic, detect from extension
	if mimeType == "" || mimeType == "application/octet-stream" {
		ext := filepath.Ext(fileHeader.Filename)
		if detectedType := mime.TypeByExtension(ext); detectedType != "" {
			mimeType = detectedType
		}
	}

	if mimeType == "" {
		return "", fmt.Errorf("could not detect MIME type for file: %s", fileHeader.Filename)
	}

	return mimeType, nil
}
