package wecs

import "github.com/go-gl/mathgl/mgl64"

// Transform is the standard spatial component: a position, an orientation
// and a scale. Systems that move entities around read and write this.
type Transform struct {
	// Translation is the position in world space.
	Translation mgl64.Vec3

	// Rotation is the orientation as a quaternion.
	Rotation mgl64.Quat

	// Scale is the per-axis scale factor.
	Scale mgl64.Vec3
}

// IdentityTransform returns a transform at the origin with no rotation and
// a scale of one.
func IdentityTransform() Transform {
	return Transform{
		Rotation: mgl64.QuatIdent(),
		Scale:    mgl64.Vec3{1, 1, 1},
	}
}

// TransformFromTranslation returns an identity transform moved to the given
// position.
func TransformFromTranslation(translation mgl64.Vec3) Transform {
	t := IdentityTransform()
	t.Translation = translation
	return t
}

// LookingAt returns a copy of the transform rotated to face target, using
// up to resolve the roll.
func (t Transform) LookingAt(target, up mgl64.Vec3) Transform {
	t.Rotation = mgl64.QuatLookAtV(t.Translation, target, up)
	return t
}
