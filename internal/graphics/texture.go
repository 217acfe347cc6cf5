package graphics

import (
	"fmt"
	"image"
	"image/color"

	"github.com/go-gl/gl/v4.1-core/gl"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/colornames"
)

// Checker colors. The first column (U near 0) is marked so the sphere seam is easy to spot.
var (
	CheckerLight  = colornames.Whitesmoke
	CheckerDark   = colornames.Steelblue
	CheckerMarker = colornames.Crimson
)

// CheckerImage renders a cells x cells checkerboard scaled up to size x size pixels.
// Row 0 of the image is V = 0.
func CheckerImage(size, cells int) (*image.RGBA, error) {
	if cells <= 0 || size < cells {
		return nil, fmt.Errorf("checker: need 0 < cells <= size, got cells=%d size=%d", cells, size)
	}

	small := image.NewRGBA(image.Rect(0, 0, cells, cells))
	for y := 0; y < cells; y++ {
		for x := 0; x < cells; x++ {
			var c color.RGBA
			switch {
			case x == 0:
				c = CheckerMarker
			case (x+y)%2 == 0:
				c = CheckerLight
			default:
				c = CheckerDark
			}
			small.SetRGBA(x, y, c)
		}
	}

	out := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.NearestNeighbor.Scale(out, out.Bounds(), small, small.Bounds(), xdraw.Src, nil)
	return out, nil
}

// Texture is a 2D RGBA texture
type Texture struct {
	ID     uint32
	Width  int
	Height int
}

// NewTexture uploads img with repeat wrapping and mipmaps
func NewTexture(img *image.RGBA) (*Texture, error) {
	size := img.Rect.Size()
	if size.X == 0 || size.Y == 0 {
		return nil, fmt.Errorf("texture: empty image")
	}

	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(size.X),
		int32(size.Y),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if err := glError("texture"); err != nil {
		gl.DeleteTextures(1, &texture)
		return nil, err
	}
	return &Texture{ID: texture, Width: size.X, Height: size.Y}, nil
}

// Bind binds the texture to the given texture unit
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
}

// Delete frees the texture
func (t *Texture) Delete() {
	if t.ID != 0 {
		gl.DeleteTextures(1, &t.ID)
		t.ID = 0
	}
}
