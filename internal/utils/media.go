package utils

import (
	"encoding/base64"
	"fmt"
	"mime"
	"net/http"
	"strings"
)

// MaxPhotoBytes caps a decoded recipe photo.
const MaxPhotoBytes = 8 << 20

// DecodeImagePayload decodes an inline base64 or data URL image and returns
// the raw bytes together with a file extension. Non-image content is
// rejected.
func DecodeImagePayload(payload string) ([]byte, string, error) {
	trimmed := strings.TrimSpace(payload)
	if trimmed == "" {
		return nil, "", fmt.Errorf("empty image payload")
	}

	mimeType, base64Payload := SplitDataURL(trimmed)
	base64Payload = strings.TrimSpace(base64Payload)
	if base64Payload == "" {
		return nil, "", fmt.Errorf("empty base64 payload")
	}

	data, err := base64.StdEncoding.DecodeString(base64Payload)
	if err != nil {
		return nil, "", fmt.Errorf("decode base64: %w", err)
	}
	if len(data) > MaxPhotoBytes {
		return nil, "", fmt.Errorf("image too large: %d bytes", len(data))
	}

	// 以实际内容为准，data URL 声明的类型只作兜底
	ext := ExtensionFromMime(http.DetectContentType(data))
	if ext == "" {
		ext = ExtensionFromMime(mimeType)
	}
	if ext == "" {
		return nil, "", fmt.Errorf("unsupported image type")
	}

	return data, ext, nil
}

// SplitDataURL returns the mime type and base64 part of a data URL. Bare
// base64 is assumed to be JPEG.
func SplitDataURL(value string) (string, string) {
	if !strings.HasPrefix(value, "data:") {
		return "image/jpeg", value
	}

	value = strings.TrimPrefix(value, "data:")
	parts := strings.SplitN(value, ";base64,", 2)
	if len(parts) != 2 {
		return "image/jpeg", ""
	}
	return parts[0], parts[1]
}

// ExtensionFromMime maps an image mime type to a file extension, or "" when
// the type is not an image we keep.
func ExtensionFromMime(mimeType string) string {
	if mimeType == "" {
		return ""
	}
	if parsed, _, err := mime.ParseMediaType(mimeType); err == nil {
		mimeType = parsed
	}

	switch strings.ToLower(mimeType) {
	case "image/png":
		return "png"
	case "image/jpeg", "image/jpg":
		return "jpg"
	case "image/webp":
		return "webp"
	case "image/gif":
		return "gif"
	case "image/heic":
		return "heic"
	case "image/heif":
		return "heif"
	default:
		return ""
	}
}
