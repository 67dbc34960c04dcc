package logic

import (
	"fmt"
	"github.com/spaolacci/murmur3"
	"mood_parrot/shared"
	"os"
	"path/filepath"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../mocks/mock_image_loader.go -package mocks mood_parrot/logic IImageLoader

type IImageLoader interface {
	Load(imagePath string) ([]byte, error)
}

type imageLoader struct {
	cfg *shared.Config
}

func NewImageLoader(cfg *shared.Config) IImageLoader {
	return &imageLoader{cfg}
}

// Load reads the image; relative paths are resolved against the configured images directory.
func (il *imageLoader) Load(imagePath string) ([]byte, error) {
	fullPath := imagePath
	if !filepath.IsAbs(fullPath) && il.cfg.ImagesDir != "" {
		fullPath = filepath.Join(il.cfg.ImagesDir, fullPath)
	}
	data, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageLoad, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrImageLoad, fullPath)
	}
	return data, nil
}

// ImageFingerprint identifies image content in logs and tick history. It is not Slack's avatar hash.
func ImageFingerprint(data []byte) string {
	return fmt.Sprintf("%08x", murmur3.Sum32(data))
}
