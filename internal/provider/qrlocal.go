package provider

import (
	"bytes"
	"context"
	"encoding/base64"
	"hash/fnv"
	"image"
	"image/color"
	"image/png"
	"math/rand/v2"

	"infinityqr-go/internal/model"
)

// LocalQR renders a client-side placeholder raster when every networked QR
// provider failed. The pattern is seeded from the payload so the same input
// yields the same image; it is a placeholder, not a scannable code.
type LocalQR struct{}

func NewLocalQR() *LocalQR { return &LocalQR{} }

func (l *LocalQR) Name() string { return "localqr" }

const qrGridCells = 25

func (l *LocalQR) Generate(ctx context.Context, target string, opts model.QROptions) (*model.QRCodeRecord, error) {
	size := opts.Size
	if size <= 0 {
		size = 300
	}

	h := fnv.New64a()
	h.Write([]byte(target))
	rng := rand.New(rand.NewPCG(h.Sum64(), uint64(size)))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	dark := color.RGBA{A: 255}
	light := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	cell := size / qrGridCells
	if cell < 1 {
		cell = 1
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, light)
		}
	}
	for i := 0; i < qrGridCells; i++ {
		for j := 0; j < qrGridCells; j++ {
			if rng.IntN(2) == 0 {
				continue
			}
			for y := j * cell; y < (j+1)*cell && y < size; y++ {
				for x := i * cell; x < (i+1)*cell && x < size; x++ {
					img.SetRGBA(x, y, dark)
				}
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, newError(l.Name(), ReasonBadBody, 0, err)
	}

	return &model.QRCodeRecord{
		ID:        newRecordID(),
		URL:       target,
		ImageURL:  "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
		Size:      size,
		Format:    "png",
		CreatedAt: nowISO(),
		Downloads: 0,
	}, nil
}
