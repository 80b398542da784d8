package main

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"
)

// maxTextureDim guards NewImageFromImage, which panics rather than
// returning an error when a dimension exceeds what the GPU accepts.
const maxTextureDim = 16384

// session owns the GPU resources for one image+shader pairing: the
// uploaded texture, the compiled Kage program, and the quad geometry. A
// session is built from scratch on every reload and released when
// superseded; at most one exists at a time.
type session struct {
	imagePath  string
	shaderPath string

	texture *ebiten.Image
	shader  *ebiten.Shader
	quad    [6]vertex
	texW    int
	texH    int
}

// newSession loads the image, uploads it as a texture, then reads and
// compiles the shader. On any failure it releases whatever was already
// built and returns only the error; no partial session escapes.
func newSession(imagePath, shaderPath string) (*session, error) {
	s := &session{
		imagePath:  imagePath,
		shaderPath: shaderPath,
		quad:       fullscreenQuad(),
	}

	tex, w, h, err := loadTexture(imagePath)
	if err != nil {
		return nil, err
	}
	s.texture, s.texW, s.texH = tex, w, h

	src, err := readShader(shaderPath)
	if err != nil {
		s.release()
		return nil, err
	}
	shader, err := ebiten.NewShader(src)
	if err != nil {
		s.release()
		return nil, fmt.Errorf("%w %s: %v", errShaderCompile, shaderPath, err)
	}
	s.shader = shader
	return s, nil
}

// loadTexture decodes the image at path, converts it to RGBA, flips it
// vertically so the texture origin sits at the bottom-left like the quad's
// texture coordinates, and uploads it.
func loadTexture(path string) (*ebiten.Image, int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("%w %s: %v", errImageLoad, path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("%w %s: %v", errImageLoad, path, err)
	}
	rgba := toRGBA(img)
	flipVertical(rgba)

	b := rgba.Bounds()
	if b.Dx() < 1 || b.Dy() < 1 || b.Dx() > maxTextureDim || b.Dy() > maxTextureDim {
		return nil, 0, 0, fmt.Errorf("%w: unsupported %s size %dx%d", errTextureCreate, format, b.Dx(), b.Dy())
	}
	logDebug("texture %s: %dx%d %s (%s)", path, b.Dx(), b.Dy(), format, humanize.Bytes(uint64(len(rgba.Pix))))
	return ebiten.NewImageFromImage(rgba), b.Dx(), b.Dy(), nil
}

// toRGBA returns img as an RGBA buffer, copying only when the decoder
// produced some other pixel format.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// flipVertical reverses the pixel rows in place.
func flipVertical(img *image.RGBA) {
	h := img.Bounds().Dy()
	tmp := make([]byte, img.Stride)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : (y+1)*img.Stride]
		bot := img.Pix[(h-1-y)*img.Stride : (h-y)*img.Stride]
		copy(tmp, top)
		copy(top, bot)
		copy(bot, tmp)
	}
}

func readShader(path string) ([]byte, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", errShaderRead, path, err)
	}
	return src, nil
}

// release deallocates the session's GPU resources. Safe on a partially
// built session and on repeated calls.
func (s *session) release() {
	if s == nil {
		return
	}
	if s.texture != nil {
		s.texture.Deallocate()
		s.texture = nil
	}
	if s.shader != nil {
		s.shader.Deallocate()
		s.shader = nil
	}
}
