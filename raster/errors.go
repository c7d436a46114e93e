package raster

import "errors"

var (
	ErrImportFailed = errors.New("image import failed")
	ErrFontFailed   = errors.New("font loading failed")
)
