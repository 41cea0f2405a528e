package motion

// Animation parameter names pushed to an Animator.
const (
	AnimInAir     = "IsInAir"
	AnimWalking   = "IsWalking"
	AnimCrouching = "IsCrouching"
	AnimClimbing  = "IsClimbing"
	AnimKnockback = "IsKnockback"
)

// AnimationFlags are the presentation booleans for one frame. They are
// always recomputed from mode and input, never stored as state.
type AnimationFlags struct {
	InAir     bool
	Walking   bool
	Crouching bool
	Climbing  bool
	Knockback bool
}

// DeriveAnimation computes the flags for a frame.
func DeriveAnimation(mode Mode, grounded bool, inputX float64) AnimationFlags {
	climbing := mode == Climbing
	knocked := mode == Knockbacked
	return AnimationFlags{
		InAir:     !grounded && !climbing,
		Walking:   inputX != 0 && !climbing && !knocked,
		Crouching: mode == Crouching,
		Climbing:  climbing,
		Knockback: knocked,
	}
}

// Apply pushes every flag to a.
func (f AnimationFlags) Apply(a Animator) {
	a.SetBool(AnimInAir, f.InAir)
	a.SetBool(AnimWalking, f.Walking)
	a.SetBool(AnimCrouching, f.Crouching)
	a.SetBool(AnimClimbing, f.Climbing)
	a.SetBool(AnimKnockback, f.Knockback)
}
