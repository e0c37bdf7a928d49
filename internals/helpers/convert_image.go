package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	webpQuality = 85
	maxImageW   = 1600
	maxImageH   = 1600
)

// SaveImageAsWebP converts an uploaded image to webp and writes it under
// uploadDir/folder. Returns the public path ("/uploads/<folder>/<name>.webp").
func SaveImageAsWebP(uploadDir, folder string, fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("cannot open uploaded image: %w", err)
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return "", fmt.Errorf("cannot decode image: %w", err)
	}

	img = downscaleIfNeeded(img, maxImageW, maxImageH)

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: webpQuality}); err != nil {
		return "", fmt.Errorf("webp encode failed: %w", err)
	}

	name := uniqueWebpName(fileHeader.Filename)
	dir := filepath.Join(uploadDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(dir, name), buf.Bytes(), 0o644); err != nil {
		return "", err
	}

	return "/uploads/" + folder + "/" + name, nil
}

// DeleteUpload removes a previously stored file given its public path.
func DeleteUpload(uploadDir, publicPath string) error {
	rel := strings.TrimPrefix(publicPath, "/uploads/")
	if rel == "" || strings.Contains(rel, "..") {
		return fmt.Errorf("invalid upload path")
	}
	return os.Remove(filepath.Join(uploadDir, rel))
}

func downscaleIfNeeded(img image.Image, maxW, maxH int) image.Image {
	b := img.Bounds()
	if b.Dx() <= maxW && b.Dy() <= maxH {
		return img
	}
	return imaging.Fit(img, maxW, maxH, imaging.Lanczos)
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func uniqueWebpName(original string) string {
	base := strings.TrimSuffix(original, filepath.Ext(original))
	safe := unsafeFilenameChars.ReplaceAllString(base, "_")
	return fmt.Sprintf("%s-%s-%s.webp", time.Now().Format("20060102"), uuid.New().String(), safe)
}
