package logic

import "errors"

var (
	ErrFetch     = errors.New("failed to fetch status")
	ErrUpload    = errors.New("failed to upload avatar")
	ErrImageLoad = errors.New("failed to load image")
	ErrStore     = errors.New("failed to access mood state store")
)
