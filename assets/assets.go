package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"path"
	"regexp"
	"strconv"

	"github.com/automoto/spriteplay/assets/animations"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// ErrBadSheet is returned for sheet frame sizes or counts below one.
var ErrBadSheet = errors.New("frame size and count must be positive")

// Loader reads images from a file system and caches them by path.
type Loader struct {
	fsys       fs.FS
	cache      map[string]*ebiten.Image
	frameCache map[string]*ebiten.Image
}

func NewLoader(fsys fs.FS) *Loader {
	return &Loader{
		fsys:       fsys,
		cache:      make(map[string]*ebiten.Image),
		frameCache: make(map[string]*ebiten.Image),
	}
}

// LoadImage returns the image at p, decoding it on first use.
func (l *Loader) LoadImage(p string) (*ebiten.Image, error) {
	if img, ok := l.cache[p]; ok {
		return img, nil
	}

	img, _, err := ebitenutil.NewImageFromFileSystem(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("load image %s: %w", p, err)
	}

	l.cache[p] = img
	return img, nil
}

func (l *Loader) MustLoadImage(p string) *ebiten.Image {
	img, err := l.LoadImage(p)
	if err != nil {
		panic(err)
	}
	return img
}

// Frame returns a cached sub-image of the sheet at sheetPath.
func (l *Loader) Frame(sheetPath string, frameIndex int, srcRect image.Rectangle) (*ebiten.Image, error) {
	key := fmt.Sprintf("%s/%d", sheetPath, frameIndex)
	if img, ok := l.frameCache[key]; ok {
		return img, nil
	}

	sheet, err := l.LoadImage(sheetPath)
	if err != nil {
		return nil, err
	}

	frame := sheet.SubImage(srcRect).(*ebiten.Image)
	l.frameCache[key] = frame
	return frame, nil
}

// LoadAnimation builds an animation from an explicit list of image paths.
func (l *Loader) LoadAnimation(paths ...string) (*animations.SpriteAnimation, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("load animation: no images given")
	}
	frames := make([]*ebiten.Image, 0, len(paths))
	for _, p := range paths {
		img, err := l.LoadImage(p)
		if err != nil {
			return nil, err
		}
		frames = append(frames, img)
	}
	ani := animations.New(frames...)
	ani.Name = path.Base(paths[0])
	return ani, nil
}

// LoadSequence infers a numbered sequence from the first image and the
// last frame number: ("walk_001.png", 4) loads walk_001.png to walk_004.png.
func (l *Loader) LoadSequence(first string, last int) (*animations.SpriteAnimation, error) {
	paths, err := SequencePaths(first, last)
	if err != nil {
		return nil, err
	}
	return l.LoadAnimation(paths...)
}

// LoadSheet slices count frames of frameW x frameH out of the sheet at
// sheetPath, left to right then top to bottom.
func (l *Loader) LoadSheet(sheetPath string, frameW, frameH, count int) (*animations.SpriteAnimation, error) {
	if frameW < 1 || frameH < 1 || count < 1 {
		return nil, fmt.Errorf("load sheet %s: %dx%d x%d: %w", sheetPath, frameW, frameH, count, ErrBadSheet)
	}
	sheet, err := l.LoadImage(sheetPath)
	if err != nil {
		return nil, err
	}
	cols := sheet.Bounds().Dx() / frameW
	if cols < 1 {
		return nil, fmt.Errorf("load sheet %s: frame wider than sheet", sheetPath)
	}
	if rows := (count + cols - 1) / cols; rows*frameH > sheet.Bounds().Dy() {
		return nil, fmt.Errorf("load sheet %s: %d frames do not fit", sheetPath, count)
	}

	frames := make([]*ebiten.Image, 0, count)
	for i := 0; i < count; i++ {
		sx := (i % cols) * frameW
		sy := (i / cols) * frameH
		frame, err := l.Frame(sheetPath, i, image.Rect(sx, sy, sx+frameW, sy+frameH))
		if err != nil {
			return nil, err
		}
		frames = append(frames, frame)
	}
	ani := animations.New(frames...)
	ani.Name = path.Base(sheetPath)
	return ani, nil
}

var trailingNumber = regexp.MustCompile(`^(.*?)(\d+)(\.[^./]+)$`)

// SequencePaths expands a numbered file name into every path from its
// number up to last, keeping zero padding.
func SequencePaths(first string, last int) ([]string, error) {
	m := trailingNumber.FindStringSubmatch(first)
	if m == nil {
		return nil, fmt.Errorf("sequence %s: file name has no frame number", first)
	}
	prefix, digits, ext := m[1], m[2], m[3]
	start, err := strconv.Atoi(digits)
	if err != nil {
		return nil, fmt.Errorf("sequence %s: %w", first, err)
	}
	if last < start {
		return nil, fmt.Errorf("sequence %s: last frame %d before first %d", first, last, start)
	}

	width := len(digits)
	paths := make([]string, 0, last-start+1)
	for n := start; n <= last; n++ {
		paths = append(paths, fmt.Sprintf("%s%0*d%s", prefix, width, n, ext))
	}
	return paths, nil
}
