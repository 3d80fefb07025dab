package play

import (
	"fmt"

	"github.com/automoto/spriteplay/assets/animations"
	"github.com/automoto/spriteplay/physics"
	"github.com/hajimehoshi/ebiten/v2"
)

// spriteArgs is the decoded argument list of NewSprite.
type spriteArgs struct {
	ani         *animations.SpriteAnimation
	nums        []float64
	line        []float64
	collider    physics.ColliderType
	hasCollider bool
}

// parseArgs accepts, in order: an optional animation or image, up to four
// numbers, an optional []float64 line form, an optional collider type
// given as a physics.ColliderType or its name.
func parseArgs(args []any) (spriteArgs, error) {
	var sa spriteArgs
	for i, arg := range args {
		switch v := arg.(type) {
		case *animations.SpriteAnimation:
			if i != 0 {
				return sa, fmt.Errorf("%w: animation must come first", ErrBadArgs)
			}
			sa.ani = v
		case *ebiten.Image:
			if i != 0 {
				return sa, fmt.Errorf("%w: image must come first", ErrBadArgs)
			}
			sa.ani = animations.New(v)
		case float64, float32, int, int32, int64:
			if sa.hasCollider || sa.line != nil {
				return sa, fmt.Errorf("%w: number after collider", ErrBadArgs)
			}
			sa.nums = append(sa.nums, toFloat(v))
		case []float64:
			if len(sa.nums) != 2 || len(v) == 0 || len(v) > 2 {
				return sa, fmt.Errorf("%w: line needs x, y, [length, angle]", ErrBadArgs)
			}
			sa.line = []float64{v[0], 0}
			if len(v) == 2 {
				sa.line[1] = v[1]
			}
		case physics.ColliderType:
			sa.collider, sa.hasCollider = v, true
		case string:
			c, err := physics.ParseColliderType(v)
			if err != nil {
				return sa, fmt.Errorf("%w: %w", ErrBadArgs, err)
			}
			sa.collider, sa.hasCollider = c, true
		default:
			return sa, fmt.Errorf("%w: unexpected %T", ErrBadArgs, arg)
		}
	}

	switch len(sa.nums) {
	case 0, 2, 3, 4:
	default:
		return sa, fmt.Errorf("%w: %d numbers", ErrBadArgs, len(sa.nums))
	}
	if sa.line != nil && len(sa.nums) != 2 {
		return sa, fmt.Errorf("%w: line needs x, y, [length, angle]", ErrBadArgs)
	}
	return sa, nil
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	}
	return 0
}
