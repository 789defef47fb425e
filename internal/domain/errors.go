package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrTooManyFiles        = errors.New("too many files in one upload")
	ErrUploadFailed        = errors.New("artifact upload to storage failed")
	ErrStyleNameRequired   = errors.New("style name is required")
	ErrDuplicateStyleName  = errors.New("a style with this name already exists")
	ErrEmptyContent        = errors.New("content is empty")
	ErrUnknownGuideline    = errors.New("unknown guideline section")
	ErrUnsupportedFormat   = errors.New("unsupported export format")
	ErrModelUnavailable    = errors.New("language model returned no usable output")
	ErrRateLimited         = errors.New("all language model providers are rate limited")
)
