package fonts

import (
	"fmt"
	"math"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Mono    FontName = "mono"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

// Sized returns the face at size points, parsing it on first use.
func (f FontName) Sized(size float64) font.Face {
	return getSized(f, size)
}

var (
	mu    sync.Mutex
	fonts = map[FontName]*truetype.Font{}
	faces = map[FontName]map[int]font.Face{}
	ttfs  = map[FontName][]byte{
		Regular: goregular.TTF,
		Mono:    gomono.TTF,
	}
)

// LoadFont registers ttf under name, replacing any built-in font.
func LoadFont(name FontName, ttf []byte) error {
	parsed, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	mu.Lock()
	defer mu.Unlock()
	fonts[name] = parsed
	delete(faces, name)
	return nil
}

func getFont(name FontName) font.Face {
	return getSized(name, 10)
}

func getSized(name FontName, size float64) font.Face {
	mu.Lock()
	defer mu.Unlock()

	parsed, ok := fonts[name]
	if !ok {
		ttf, builtin := ttfs[name]
		if !builtin {
			panic(fmt.Sprintf("Font %s not found", name))
		}
		var err error
		parsed, err = truetype.Parse(ttf)
		if err != nil {
			panic(fmt.Sprintf("Font %s: %v", name, err))
		}
		fonts[name] = parsed
	}

	key := int(math.Round(size))
	if faces[name] == nil {
		faces[name] = map[int]font.Face{}
	}
	face, ok := faces[name][key]
	if !ok {
		face = truetype.NewFace(parsed, &truetype.Options{Size: float64(key)})
		faces[name][key] = face
	}
	return face
}
