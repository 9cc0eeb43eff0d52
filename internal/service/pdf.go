package service

import (
	"fmt"

	"github.com/gen2brain/go-fitz"
	"github.com/set-night/gemigram/internal/domain"
)

// PDFRasterizer renders PDF pages to PNG with MuPDF.
type PDFRasterizer struct {
	dpi float64
}

func NewPDFRasterizer(dpi float64) *PDFRasterizer {
	return &PDFRasterizer{dpi: dpi}
}

// FirstPage renders only the first page. Other pages are never decoded.
func (r *PDFRasterizer) FirstPage(pdf []byte) ([]byte, error) {
	doc, err := fitz.NewFromMemory(pdf)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer doc.Close()

	if doc.NumPage() == 0 {
		return nil, domain.ErrEmptyDocument
	}

	img, err := doc.ImagePNG(0, r.dpi)
	if err != nil {
		return nil, fmt.Errorf("render first page: %w", err)
	}
	return img, nil
}
