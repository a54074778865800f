package renderer

import (
	"math"

	"github.com/ivlev/cinematool/internal/cinema"
)

// CameraState is the camera pose at one point along a path
type CameraState struct {
	Position    [3]float64 // world space
	Orientation [4]float64 // unit quaternion x, y, z, w
}

// Normalize maps a raw keyframe integer into [-1, 1].
func Normalize(raw int) float64 {
	return float64(raw) / cinema.KeyframeScale
}

// WorldPosition maps a keyframe into world space through the path's Min and
// Range. Relative paths are offset by the path position.
func WorldPosition(p *cinema.CameraPath, k cinema.Keyframe) [3]float64 {
	var out [3]float64
	for i := range out {
		out[i] = p.Min[i] + Normalize(k.Position[i])*p.Range[i]
		if p.Relative {
			out[i] += p.Position[i]
		}
	}
	return out
}

// WorldOrientation returns the keyframe rotation as a unit quaternion.
func WorldOrientation(k cinema.Keyframe) [4]float64 {
	var q [4]float64
	for i := range q {
		q[i] = Normalize(k.Orientation[i])
	}
	return normalizeQuat(q)
}

// SamplePath returns the camera state at t in [0, 1] along the path.
// Keyframes are evenly spaced; closed paths return to the first keyframe
// at t = 1. Smooth paths ease in and out between keyframes.
func SamplePath(p *cinema.CameraPath, t float64) CameraState {
	keys := p.Keyframes
	if len(keys) == 0 {
		keys = []cinema.Keyframe{{}}
	}
	if p.Closed && len(keys) > 1 {
		keys = append(keys[:len(keys):len(keys)], keys[0])
	}

	state := func(k cinema.Keyframe) CameraState {
		return CameraState{Position: WorldPosition(p, k), Orientation: WorldOrientation(k)}
	}

	// before first / after last
	if t <= 0 || len(keys) == 1 {
		return state(keys[0])
	}
	if t >= 1 {
		return state(keys[len(keys)-1])
	}

	segments := float64(len(keys) - 1)
	i := int(t * segments)
	local := t*segments - float64(i)
	if p.Smooth {
		local = easeInOutCubic(local)
	}

	prev, next := state(keys[i]), state(keys[i+1])
	var out CameraState
	for j := range out.Position {
		out.Position[j] = lerp(prev.Position[j], next.Position[j], local)
	}
	out.Orientation = nlerp(prev.Orientation, next.Orientation, local)
	return out
}

// lerp performs linear interpolation between a and b
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// easeInOutCubic applies smooth easing function
func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// nlerp interpolates along the shorter arc and renormalizes.
func nlerp(a, b [4]float64, t float64) [4]float64 {
	dot := a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
	if dot < 0 {
		for i := range b {
			b[i] = -b[i]
		}
	}
	var q [4]float64
	for i := range q {
		q[i] = lerp(a[i], b[i], t)
	}
	return normalizeQuat(q)
}

func normalizeQuat(q [4]float64) [4]float64 {
	n := math.Sqrt(q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3])
	if n == 0 {
		return [4]float64{0, 0, 0, 1}
	}
	for i := range q {
		q[i] /= n
	}
	return q
}
