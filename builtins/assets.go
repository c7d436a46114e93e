package builtins

import (
	"fmt"
	"path/filepath"

	"github.com/goweiwen/kantera/raster"
	"github.com/goweiwen/kantera/value"
)

// Assets loads the files import_image and text_to_image depend on.
type Assets interface {
	ImportImage(path string) (*raster.Image, error)
	Font() (*raster.Font, error)
}

// DiskAssets resolves relative image paths against Dir and loads the font at
// FontPath on first use.
type DiskAssets struct {
	dir      string
	fontPath string
	font     *raster.Font
}

// NewDiskAssets resolves relative image paths against dir and loads the font
// at fontPath on first use.
func NewDiskAssets(dir, fontPath string) *DiskAssets {
	return &DiskAssets{dir: dir, fontPath: fontPath}
}

// ImportImage decodes the PNG, JPEG or GIF file at path.
func (a *DiskAssets) ImportImage(path string) (*raster.Image, error) {
	if !filepath.IsAbs(path) && a.dir != "" {
		path = filepath.Join(a.dir, path)
	}
	return raster.Import(path)
}

// Font returns the configured font, parsing it once. Without a font path it
// fails with raster.ErrFontFailed.
func (a *DiskAssets) Font() (*raster.Font, error) {
	if a.font != nil {
		return a.font, nil
	}
	if a.fontPath == "" {
		return nil, fmt.Errorf("%w: no font configured", raster.ErrFontFailed)
	}
	f, err := raster.LoadFont(a.fontPath)
	if err != nil {
		return nil, err
	}
	a.font = f
	return f, nil
}

func (r *Registry) importImage(args []value.Value) (value.Value, error) {
	path, err := value.ArgAs(args, 0, value.AsString)
	if err != nil {
		return value.Value{}, fmt.Errorf("import_image: %w", err)
	}
	img, err := r.assets.ImportImage(path)
	if err != nil {
		r.logger.Error("image import failed", "path", path, "error", err)
		return value.Value{}, fmt.Errorf("import_image: %w", err)
	}
	return value.NewImage(img), nil
}

// textToImage rasterizes (text scale) with the configured font.
func (r *Registry) textToImage(args []value.Value) (value.Value, error) {
	text, err := value.ArgAs(args, 0, value.AsString)
	if err != nil {
		return value.Value{}, fmt.Errorf("text_to_image: %w", err)
	}
	scale, err := value.ArgAs(args, 1, value.AsFloat)
	if err != nil {
		return value.Value{}, fmt.Errorf("text_to_image: %w", err)
	}
	font, err := r.assets.Font()
	if err != nil {
		r.logger.Error("font unavailable", "error", err)
		return value.Value{}, fmt.Errorf("text_to_image: %w", err)
	}
	img, err := raster.Text(font, scale, text)
	if err != nil {
		return value.Value{}, fmt.Errorf("text_to_image: %w", err)
	}
	return value.NewImage(img), nil
}
