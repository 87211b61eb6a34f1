// Package physics implements the particle engine: point masses with a
// material, damped springs between them, a rectangular world that reflects
// them, and a pairwise collision response.
//
//   - [Material]: mass, friction, bounce and color, validated on construction
//   - [World]: the constraint rectangle [0, width] x [0, height]
//   - [Particle]: position, velocity and an acceleration accumulator
//   - [Spring]: Hookean spring with damping between two particle handles
//   - [Engine]: owns all of the above and advances them one step at a time
//
// # Step Order
//
// [Engine.Update] integrates every particle (gravity and drag included),
// then resolves every unordered pair, then lets every spring accumulate
// force. Spring forces are therefore integrated on the following step.
//
//	eng, _ := physics.NewEngine(physics.DefaultConfig())
//	mat, _ := eng.Config().DefaultMaterial()
//	a := eng.AddParticle(dynamo.V(400, 500), dynamo.Zero, mat)
//	b := eng.AddParticle(dynamo.V(400, 300), dynamo.Zero, mat)
//	eng.AddSpring(a, b, 200)
//	for i := 0; i < 100; i++ {
//	    eng.Update()
//	}
//
// # Massless Particles
//
// A particle with zero mass is an anchor: Update, ApplyForce and Displace
// leave it alone, though collisions can still change its velocity.
package physics
