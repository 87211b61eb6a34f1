package physics

import (
	"image/color"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/springsim/internal/dynamo"
	"github.com/san-kum/springsim/internal/integrators"
)

var _ = Describe("Engine", func() {
	var (
		cfg Config
		eng *Engine
		mat Material
	)

	BeforeEach(func() {
		var err error
		cfg = DefaultConfig()
		eng, err = NewEngine(cfg)
		Expect(err).NotTo(HaveOccurred())
		mat, err = cfg.DefaultMaterial()
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("construction", func() {
		It("builds the world from the config", func() {
			Expect(eng.World().Width()).To(Equal(cfg.WorldWidth))
			Expect(eng.World().Height()).To(Equal(cfg.WorldHeight))
			Expect(eng.World().Center()).To(Equal(dynamo.Zero))
			Expect(eng.SchemeName()).To(Equal(integrators.NameHalfStep))
		})

		It("rejects an invalid config", func() {
			bad := DefaultConfig()
			bad.Dt = -1
			_, err := NewEngine(bad)
			Expect(err).To(MatchError(dynamo.ErrParameterBounds))
		})

		It("assigns particle ids in insertion order", func() {
			Expect(eng.AddParticle(dynamo.V(1, 1), dynamo.Zero, mat)).To(Equal(0))
			Expect(eng.AddParticle(dynamo.V(2, 2), dynamo.Zero, mat)).To(Equal(1))
			Expect(eng.NumParticles()).To(Equal(2))
		})
	})

	Describe("springs", func() {
		BeforeEach(func() {
			eng.AddParticle(dynamo.V(100, 100), dynamo.Zero, mat)
			eng.AddParticle(dynamo.V(100, 200), dynamo.Zero, mat)
		})

		It("uses the config defaults", func() {
			id, err := eng.AddSpring(0, 1, 100)
			Expect(err).NotTo(HaveOccurred())
			s, err := eng.Spring(id)
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Hooke).To(Equal(cfg.SpringHooke))
			Expect(s.Damp).To(Equal(cfg.SpringDamp))
		})

		It("rejects unknown handles", func() {
			_, err := eng.AddSpring(0, 7, 10)
			Expect(err).To(MatchError(dynamo.ErrUnknownParticle))
			_, err = eng.AddSpring(-1, 0, 10)
			Expect(err).To(MatchError(dynamo.ErrUnknownParticle))
			Expect(eng.NumSprings()).To(BeZero())
		})

		It("rejects a spring from a particle to itself", func() {
			_, err := eng.AddSpring(1, 1, 10)
			Expect(err).To(MatchError(dynamo.ErrSelfSpring))
		})

		It("rejects negative coefficients", func() {
			_, err := eng.AddSpringWith(0, 1, 10, -1, 0)
			Expect(err).To(MatchError(dynamo.ErrParameterBounds))
		})

		It("reports endpoint positions", func() {
			id, err := eng.AddSpring(0, 1, 100)
			Expect(err).NotTo(HaveOccurred())
			a, b, err := eng.SpringEndpoints(id)
			Expect(err).NotTo(HaveOccurred())
			Expect(a).To(Equal(dynamo.V(100, 100)))
			Expect(b).To(Equal(dynamo.V(100, 200)))

			_, _, err = eng.SpringEndpoints(9)
			Expect(err).To(MatchError(dynamo.ErrUnknownSpring))
		})
	})

	Describe("Update", func() {
		It("advances step and time", func() {
			eng.AddParticle(dynamo.V(400, 300), dynamo.Zero, mat)
			for i := 0; i < 10; i++ {
				eng.Update()
			}
			Expect(eng.Step()).To(Equal(10))
			Expect(eng.Time()).To(BeNumerically("~", 10*cfg.Dt, 1e-12))
		})

		It("pulls free particles down", func() {
			id := eng.AddParticle(dynamo.V(400, 300), dynamo.Zero, mat)
			eng.Update()
			p, err := eng.Particle(id)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Velocity.Y).To(BeNumerically("<", 0))
			Expect(p.Position.Y).To(BeNumerically("<", 300))
		})

		It("applies spring forces on the following step", func() {
			anchor, _ := NewMaterial(0, 0.1, 0.4, mat.Color())
			eng.AddParticle(dynamo.V(400, 500), dynamo.Zero, anchor)
			free := eng.AddParticle(dynamo.V(400, 200), dynamo.Zero, mat)
			_, err := eng.AddSpring(0, free, 100)
			Expect(err).NotTo(HaveOccurred())

			eng.Update()
			p, _ := eng.Particle(free)
			Expect(p.Acceleration.Y).To(BeNumerically(">", 0), "spring force pending after the step")
		})

		It("counts pairwise collisions", func() {
			eng.AddParticle(dynamo.V(400, 300), dynamo.V(1, 0), mat)
			eng.AddParticle(dynamo.V(403, 300), dynamo.V(-1, 0), mat)
			eng.AddParticle(dynamo.V(100, 100), dynamo.Zero, mat)
			eng.Update()
			Expect(eng.LastCollisions()).To(Equal(1))
		})

		It("keeps every particle inside the world", func() {
			for i := 0; i < 20; i++ {
				eng.AddParticle(dynamo.V(float64(40*i), 10), dynamo.V(float64(i-10)*50, -80), mat)
			}
			for i := 0; i < 500; i++ {
				eng.Update()
			}
			for _, p := range eng.Particles() {
				Expect(eng.World().Contains(p.Position)).To(BeTrue(), "particle escaped to %v", p.Position)
			}
		})
	})

	Describe("the three-particle scene", func() {
		var anchorPos dynamo.Vec2

		BeforeEach(func() {
			w := cfg.WorldWidth
			eng.AddParticle(dynamo.V(w/2, 500), dynamo.Zero, mat)
			eng.AddParticle(dynamo.V(w/2, 300), dynamo.Zero, mat)
			eng.AddParticle(dynamo.V(w/2+100*math.Cos(90*math.Pi), 200+100*math.Sin(90*math.Pi)), dynamo.Zero, mat)
			_, err := eng.AddSpring(0, 1, 200)
			Expect(err).NotTo(HaveOccurred())
			_, err = eng.AddSpring(1, 2, 100)
			Expect(err).NotTo(HaveOccurred())

			colors := []color.RGBA{{255, 0, 0, 255}, {0, 255, 0, 255}, {0, 0, 255, 255}}
			for i, c := range colors {
				p, err := eng.Particle(i)
				Expect(err).NotTo(HaveOccurred())
				p.SetColor(c)
			}
			p0, _ := eng.Particle(0)
			Expect(p0.SetMass(0)).To(Succeed())
			anchorPos = p0.Position
		})

		It("moves everything but the anchor after one step", func() {
			Expect(eng.Update).NotTo(Panic())

			ps := eng.Particles()
			Expect(ps[0].Position).To(Equal(anchorPos))
			Expect(ps[1].Velocity.Norm()).To(BeNumerically(">", 0))
			Expect(ps[2].Velocity.Norm()).To(BeNumerically(">", 0))
		})

		It("never moves the anchor", func() {
			for i := 0; i < 2000; i++ {
				eng.Update()
			}
			Expect(eng.Particles()[0].Position).To(Equal(anchorPos))
			Expect(eng.Snapshot().IsValid()).To(BeTrue())
		})

		It("snapshots positions by id", func() {
			eng.Update()
			f := eng.Snapshot()
			Expect(f.Step).To(Equal(1))
			Expect(f.Positions).To(HaveLen(3))
			Expect(f.Positions[0]).To(Equal(anchorPos))
		})

		It("hands out copies of the arena", func() {
			ps := eng.Particles()
			ps[1].Position = dynamo.V(-1000, -1000)
			p1, _ := eng.Particle(1)
			Expect(p1.Position).NotTo(Equal(ps[1].Position))
		})
	})

	DescribeTable("step schemes",
		func(scheme string) {
			c := DefaultConfig()
			c.Scheme = scheme
			e, err := NewEngine(c)
			Expect(err).NotTo(HaveOccurred())
			e.AddParticle(dynamo.V(400, 300), dynamo.Zero, mat)
			e.Update()
			Expect(e.SchemeName()).To(Equal(scheme))
			Expect(e.Particles()[0].Velocity.Y).To(BeNumerically("<", 0))
		},
		Entry("halfstep", integrators.NameHalfStep),
		Entry("verlet", integrators.NameVerlet),
		Entry("euler", integrators.NameEuler),
	)
})
