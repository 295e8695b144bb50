// Package overlay draws interactive screen annotations over a 3D viewport.
//
// Drawables hold geometry in world coordinates (Dim3) or pixel coordinates
// (Dim2). On Draw they project every point through the Context and issue
// immediate mode primitives to a Host. Screen coordinates have their origin
// at the bottom left corner of the region with Y growing upward; hosts
// convert to their own convention.
//
// Every Draw saves the host draw state and restores it on return, even when
// a host call panics, so no drawable leaks colour, width, blending or
// stipple into the next one.
package overlay
