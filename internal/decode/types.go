// Package decode implements the fixed-width layout decoders for the three
// shared-memory segments (physics, graphics, statics) and the small value
// types the frames are built from.
package decode

// Vector3f is a 3-component vector as published by the simulator.
type Vector3f struct {
	X, Y, Z float32
}

// Wheels groups one float per wheel, always in FrontLeft/FrontRight/
// RearLeft/RearRight order.
type Wheels struct {
	FrontLeft, FrontRight, RearLeft, RearRight float32
}

// Average returns the mean of the four wheel values.
func (w Wheels) Average() float32 {
	return (w.FrontLeft + w.FrontRight + w.RearLeft + w.RearRight) / 4
}

// ContactPoint groups a Vector3f per wheel.
type ContactPoint struct {
	FrontLeft, FrontRight, RearLeft, RearRight Vector3f
}

// CarDamage groups the five damage-zone floats.
type CarDamage struct {
	Front, Rear, Left, Right, Center float32
}
