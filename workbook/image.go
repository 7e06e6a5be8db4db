package workbook

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ImageOptions controls how DrawImage places a picture.
type ImageOptions struct {
	// Height in pixels; the width follows proportionally. Zero keeps the original size.
	Height  int
	OffsetX int
	OffsetY int
}

// DefaultImageOptions returns a 50px high image offset 10px right and down.
func DefaultImageOptions() ImageOptions {
	return ImageOptions{Height: 50, OffsetX: 10, OffsetY: 10}
}

// DrawImage anchors the image at imagePath to cell. The description becomes
// the picture's alternative text; name is used when description is empty.
func (s *Sheet) DrawImage(cell, name, description, imagePath string, opts ImageOptions) error {
	ref, err := normalizeCell(cell)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(imagePath)
	if err != nil {
		return &IOError{Op: "read image", Path: imagePath, Err: err}
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return &IOError{Op: "decode image", Path: imagePath, Err: err}
	}

	scale := 1.0
	if opts.Height > 0 && cfg.Height > 0 {
		scale = float64(opts.Height) / float64(cfg.Height)
	}

	alt := description
	if alt == "" {
		alt = name
	}

	s.wb.mu.Lock()
	defer s.wb.mu.Unlock()

	if err := s.wb.file.AddPictureFromBytes(s.name, ref, &excelize.Picture{
		Extension: strings.ToLower(filepath.Ext(imagePath)),
		File:      data,
		Format: &excelize.GraphicOptions{
			AltText:         alt,
			OffsetX:         opts.OffsetX,
			OffsetY:         opts.OffsetY,
			ScaleX:          scale,
			ScaleY:          scale,
			LockAspectRatio: true,
		},
	}); err != nil {
		return fmt.Errorf("add picture %s at %s: %w", name, ref, err)
	}

	s.wb.log.Debug().Str("sheet", s.name).Str("cell", ref).Str("name", name).Str("path", imagePath).Float64("scale", scale).Msg("draw image")
	return nil
}
