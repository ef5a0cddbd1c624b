package level

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"io/fs"
)

// Texture is a grid of straight-alpha texel rows, loaded once.
type Texture struct {
	rows   [][]color.NRGBA
	width  int
	height int
}

func TextureFromImage(img image.Image) *Texture {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	rows := make([][]color.NRGBA, height)
	for y := 0; y < height; y++ {
		rows[y] = make([]color.NRGBA, width)
		for x := 0; x < width; x++ {
			rows[y][x] = color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
		}
	}

	return &Texture{rows: rows, width: width, height: height}
}

func DecodeTexture(r io.Reader) (*Texture, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode texture: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("decode texture: empty image")
	}
	return TextureFromImage(img), nil
}

func LoadTexture(fsys fs.FS, path string) (*Texture, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture %s: %w", path, err)
	}
	defer file.Close()

	t, err := DecodeTexture(file)
	if err != nil {
		return nil, fmt.Errorf("load texture %s: %w", path, err)
	}
	return t, nil
}

func (t *Texture) Width() int  { return t.width }
func (t *Texture) Height() int { return t.height }

// At returns the texel at (x, y) with both coordinates clamped into range.
func (t *Texture) At(x, y int) color.NRGBA {
	if t.width == 0 || t.height == 0 {
		return color.NRGBA{}
	}
	return t.rows[clamp(y, t.height)][clamp(x, t.width)]
}

// Row returns texel row i, clamped into range. The slice must not be modified.
func (t *Texture) Row(i int) []color.NRGBA {
	if t.height == 0 {
		return nil
	}
	return t.rows[clamp(i, t.height)]
}

func clamp(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
