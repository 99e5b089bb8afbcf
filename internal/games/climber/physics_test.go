package climber

import (
	"math"
	"testing"

	"github.com/vovakirdan/sky-climber/internal/core"
)

const eps = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func platform(x, y float64) Obstacle {
	return Obstacle{Kind: KindSolid, Box: core.NewBox(x, y, 60, 20)}
}

func TestResolveTouchingIsNotCollision(t *testing.T) {
	e := NewEngine(DefaultPhysics(), nil)
	p := NewPlayer(10, 100, 10, 10)
	p.VY = 1.5

	axis := e.Resolve(&p, platform(0, 110))

	if axis != AxisNone {
		t.Errorf("Resolve() = %v, expected %v", axis, AxisNone)
	}
	if p.Box.Y != 100 || p.VY != 1.5 {
		t.Errorf("touching player changed: y=%v vy=%v", p.Box.Y, p.VY)
	}
}

func TestResolveBoundary(t *testing.T) {
	const d = 1e-9

	tests := []struct {
		name  string
		x, y  float64
		axis  Axis
		wantX float64
		wantY float64
	}{
		{"touching right side", 60, 115, AxisNone, 60, 115},
		{"inside right side", 60 - d, 115, AxisHorizontal, 60, 115},
		{"touching left side", -10, 115, AxisNone, -10, 115},
		{"inside left side", -10 + d, 115, AxisHorizontal, -10, 115},
		{"touching top", 10, 100, AxisNone, 10, 100},
		{"inside top", 10, 100 + d, AxisVertical, 10, 100},
		{"touching bottom", 10, 130, AxisNone, 10, 130},
		{"inside bottom", 10, 130 - d, AxisVertical, 10, 130},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(DefaultPhysics(), nil)
			p := NewPlayer(tt.x, tt.y, 10, 10)

			axis := e.Resolve(&p, platform(0, 110))

			if axis != tt.axis {
				t.Errorf("Resolve() = %v, expected %v", axis, tt.axis)
			}
			if !almostEqual(p.Box.X, tt.wantX) || !almostEqual(p.Box.Y, tt.wantY) {
				t.Errorf("position = (%v, %v), expected (%v, %v)", p.Box.X, p.Box.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestResolveLandingFlush(t *testing.T) {
	e := NewEngine(DefaultPhysics(), nil)
	p := NewPlayer(10, 100.1, 10, 10)
	p.VY = 2

	axis := e.Resolve(&p, platform(0, 110))

	if axis != AxisVertical {
		t.Fatalf("Resolve() = %v, expected %v", axis, AxisVertical)
	}
	if !almostEqual(p.Box.Y, 100) {
		t.Errorf("Box.Y = %v, expected 100", p.Box.Y)
	}
	if p.VY != 0.8 {
		t.Errorf("VY = %v, expected 0.8", p.VY)
	}
	if p.Box.X != 10 {
		t.Errorf("Box.X = %v, expected 10", p.Box.X)
	}
}

func TestResolveFromBelow(t *testing.T) {
	e := NewEngine(DefaultPhysics(), nil)
	// Head 2 units into the underside of the platform
	p := NewPlayer(20, 128, 10, 10)
	p.VY = -3

	axis := e.Resolve(&p, platform(0, 110))

	if axis != AxisVertical {
		t.Fatalf("Resolve() = %v, expected %v", axis, AxisVertical)
	}
	if !almostEqual(p.Box.Y, 130) {
		t.Errorf("Box.Y = %v, expected 130", p.Box.Y)
	}
	if p.VY != 0.8 {
		t.Errorf("VY = %v, expected 0.8", p.VY)
	}
}

func TestResolveHorizontal(t *testing.T) {
	e := NewEngine(DefaultPhysics(), nil)
	p := NewPlayer(55, 115, 10, 10)
	p.VY = 1

	axis := e.Resolve(&p, platform(0, 110))

	if axis != AxisHorizontal {
		t.Fatalf("Resolve() = %v, expected %v", axis, AxisHorizontal)
	}
	if !almostEqual(p.Box.X, 60) {
		t.Errorf("Box.X = %v, expected 60", p.Box.X)
	}
	if p.VY != 1 {
		t.Errorf("VY = %v, expected unchanged 1", p.VY)
	}

	// Mirror case pushes left
	q := NewPlayer(-5, 115, 10, 10)
	e.Resolve(&q, platform(0, 110))
	if !almostEqual(q.Box.X, -10) {
		t.Errorf("Box.X = %v, expected -10", q.Box.X)
	}
}

func TestResolveEqualPenetration(t *testing.T) {
	e := NewEngine(DefaultPhysics(), nil)
	p := NewPlayer(0, 0, 10, 10)
	p.VY = 0.3
	o := Obstacle{Kind: KindSolid, Box: core.NewBox(5, 5, 10, 10)}

	axis := e.Resolve(&p, o)

	if axis != AxisNone {
		t.Errorf("Resolve() = %v, expected %v", axis, AxisNone)
	}
	if p.Box.X != 0 || p.Box.Y != 0 || p.VY != 0.3 {
		t.Errorf("player changed on equal penetration: %+v", p)
	}
}

func TestResolveCollisionsSkipsOnlyEmpty(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		v    int
		y    float64
	}{
		{"empty", KindEmpty, 0, 105},
		{"solid", KindSolid, 1, 100},
		{"spawned", KindSpawnedSolid, 1, 100},
		{"enemy", KindEnemy, 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(DefaultPhysics(), nil)
			p := NewPlayer(10, 105, 10, 10)
			set := NewObstacleSet(Obstacle{Kind: tt.kind, Box: core.NewBox(0, 110, 60, 20)})

			v, h := e.ResolveCollisions(&p, set)

			if v != tt.v || h != 0 {
				t.Errorf("ResolveCollisions() = (%d, %d), expected (%d, 0)", v, h, tt.v)
			}
			if !almostEqual(p.Box.Y, tt.y) {
				t.Errorf("Box.Y = %v, expected %v", p.Box.Y, tt.y)
			}
		})
	}
}

func TestResolveCollisionsEnemyFromGrid(t *testing.T) {
	e := NewEngine(DefaultPhysics(), nil)
	set := ToObstacles([][]int{{0}, {0}, {0}, {0}, {0}, {3}}, 60, 20)
	// Feet 1 unit into the enemy cell at y=100
	p := NewPlayer(10, 91, 10, 10)

	v, _ := e.ResolveCollisions(&p, set)

	if v != 1 {
		t.Errorf("vertical contacts = %d, expected 1", v)
	}
	if !almostEqual(p.Box.Y, 90) || p.VY != 0.8 {
		t.Errorf("player = (y %v, vy %v), expected (90, 0.8)", p.Box.Y, p.VY)
	}
}

func TestResolveCollisionsSpawnedSolid(t *testing.T) {
	e := NewEngine(DefaultPhysics(), nil)
	p := NewPlayer(10, 101, 10, 10)
	set := NewObstacleSet(Obstacle{Kind: KindSpawnedSolid, Box: core.NewBox(0, 110, 60, 20)})

	v, _ := e.ResolveCollisions(&p, set)

	if v != 1 {
		t.Errorf("vertical contacts = %d, expected 1", v)
	}
	if !almostEqual(p.Box.Y, 100) {
		t.Errorf("Box.Y = %v, expected 100", p.Box.Y)
	}
}

func TestResolveCollisionsSequential(t *testing.T) {
	e := NewEngine(DefaultPhysics(), nil)
	// Two stacked platforms; the first push moves the player clear of the second
	p := NewPlayer(10, 101, 10, 10)
	set := NewObstacleSet(platform(0, 110), platform(0, 111))

	v, h := e.ResolveCollisions(&p, set)

	if v != 1 || h != 0 {
		t.Errorf("ResolveCollisions() = (%d, %d), expected (1, 0)", v, h)
	}
	if !almostEqual(p.Box.Y, 100) {
		t.Errorf("Box.Y = %v, expected 100", p.Box.Y)
	}
}

func TestTickJumpSkipsCollisionAndGravity(t *testing.T) {
	ph := DefaultPhysics()
	e := NewEngine(ph, nil)
	p := NewPlayer(10, 101, 10, 10)
	p.Jumping = true
	set := NewObstacleSet(platform(0, 110))

	report := e.Tick(&p, set)

	if !report.Jumped || report.Vertical != 0 || report.Horizontal != 0 {
		t.Errorf("Tick() report = %+v, expected jump only", report)
	}
	if !almostEqual(p.Box.Y, 100) {
		t.Errorf("Box.Y = %v, expected 100", p.Box.Y)
	}
	if p.VY != ph.JumpVelocity() {
		t.Errorf("VY = %v, expected %v", p.VY, ph.JumpVelocity())
	}
	if !almostEqual(p.VY, -3.5) {
		t.Errorf("VY = %v, expected -3.5", p.VY)
	}
	if p.Jumping {
		t.Error("Jumping should be consumed")
	}
	if set.At(0).Box.Y != 110.5 {
		t.Errorf("obstacle Y = %v, expected 110.5", set.At(0).Box.Y)
	}
}

func TestTickOrder(t *testing.T) {
	e := NewEngine(DefaultPhysics(), nil)
	p := NewPlayer(10, 100.1, 10, 10)
	p.VY = 3
	p.MovingRight = true
	set := NewObstacleSet(platform(0, 110))

	report := e.Tick(&p, set)

	if report.Jumped || report.Vertical != 1 {
		t.Errorf("Tick() report = %+v, expected one vertical contact", report)
	}
	// Resolution grounds VY to 0.8, then gravity adds 0.1 and integrates
	if !almostEqual(p.VY, 0.9) {
		t.Errorf("VY = %v, expected 0.9", p.VY)
	}
	if !almostEqual(p.Box.Y, 100.9) {
		t.Errorf("Box.Y = %v, expected 100.9", p.Box.Y)
	}
	if p.Box.X != 12 {
		t.Errorf("Box.X = %v, expected 12", p.Box.X)
	}
	if set.At(0).Box.Y != 110.5 {
		t.Errorf("obstacle Y = %v, expected 110.5", set.At(0).Box.Y)
	}
}

func TestTickLandingFromFlush(t *testing.T) {
	ph := DefaultPhysics()
	ph.ScrollSpeed = 0
	e := NewEngine(ph, nil)
	p := NewPlayer(10, 100, 10, 10)
	set := NewObstacleSet(platform(0, 110))

	tests := []struct {
		vertical int
		y, vy    float64
	}{
		// Resting flush is not a contact, so gravity sinks the player in
		{0, 100.1, 0.1},
		// The next tick pushes back onto the top, then gravity applies
		{1, 100.9, 0.9},
		{1, 100.9, 0.9},
	}

	for i, tt := range tests {
		report := e.Tick(&p, set)
		if report.Vertical != tt.vertical || report.Horizontal != 0 {
			t.Errorf("tick %d: report = %+v, expected %d vertical", i, report, tt.vertical)
		}
		if !almostEqual(p.Box.Y, tt.y) || !almostEqual(p.VY, tt.vy) {
			t.Errorf("tick %d: (y, vy) = (%v, %v), expected (%v, %v)", i, p.Box.Y, p.VY, tt.y, tt.vy)
		}
	}
	if set.At(0).Box.Y != 110 {
		t.Errorf("obstacle Y = %v, expected 110 with no scroll", set.At(0).Box.Y)
	}
}

func TestTickMoveRight(t *testing.T) {
	e := NewEngine(DefaultPhysics(), nil)
	p := NewPlayer(10, 0, 10, 10)
	p.Apply(IntentPressRight)
	set := NewObstacleSet()

	for range 5 {
		e.Tick(&p, set)
	}

	if p.Box.X != 20 {
		t.Errorf("Box.X = %v, expected 20", p.Box.X)
	}
}

func TestApplyGravity(t *testing.T) {
	e := NewEngine(DefaultPhysics(), nil)
	p := NewPlayer(0, 50, 10, 10)

	e.ApplyGravity(&p)

	if !almostEqual(p.VY, 0.1) || !almostEqual(p.Box.Y, 50.1) {
		t.Errorf("after gravity VY=%v Y=%v, expected 0.1 and 50.1", p.VY, p.Box.Y)
	}
}

func TestAxisString(t *testing.T) {
	tests := []struct {
		axis     Axis
		expected string
	}{
		{AxisNone, "none"},
		{AxisVertical, "vertical"},
		{AxisHorizontal, "horizontal"},
	}
	for _, tt := range tests {
		if got := tt.axis.String(); got != tt.expected {
			t.Errorf("Axis(%d).String() = %q, expected %q", tt.axis, got, tt.expected)
		}
	}
}
