package physics

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/kinecam/core"
	"github.com/lixenwraith/kinecam/parameter"
	"github.com/lixenwraith/kinecam/vmath"
)

// FrictionFactor maps the configured drag setting to a per-tick velocity
// retention factor in [0, FrictionBase].
func FrictionFactor(drag float64) float64 {
	f := parameter.FrictionBase - parameter.FrictionScale*drag
	if f < 0 {
		f = 0
	}
	return f
}

// Decay applies one tick of friction: multiplicative on the linear and zoom
// channels, slerp toward identity on the angular channel.
func Decay(k core.Kinetic, friction float64) core.Kinetic {
	k.Pan = k.Pan.Mul(friction)
	k.Zoom *= friction
	k.Rot = vmath.Slerp(k.Rot, mgl64.QuatIdent(), 1-friction)
	return k
}
