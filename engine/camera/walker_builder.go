package camera

// WalkerOption is a functional option for configuring a Walker.
type WalkerOption func(*walkerImpl)

// WithDamping sets how quickly velocity decays, as a fraction per second.
//
// Parameters:
//   - damping: decay rate (values <= 0 keep the default)
//
// Returns:
//   - WalkerOption: functional option to set the damping
func WithDamping(damping float32) WalkerOption {
	return func(w *walkerImpl) {
		if damping > 0 {
			w.damping = damping
		}
	}
}

// WithAcceleration sets the acceleration applied while a movement key is held.
//
// Parameters:
//   - acceleration: units per second squared (values <= 0 keep the default)
//
// Returns:
//   - WalkerOption: functional option to set the acceleration
func WithAcceleration(acceleration float32) WalkerOption {
	return func(w *walkerImpl) {
		if acceleration > 0 {
			w.acceleration = acceleration
		}
	}
}
