// seehuhn.de/go/scribble - scribble strokes between glyph contours
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package noise

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func seeded(seed uint64) Option {
	return Rand(rand.New(rand.NewPCG(seed, seed+1)))
}

func TestDeterministic(t *testing.T) {
	f, err := New(Octaves(4), seeded(7))
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range [][2]float64{{0.5, 0.25}, {-3.7, 12.1}, {100.3, -0.01}} {
		a := f.At(p[0], p[1])
		b := f.At(p[0], p[1])
		if a != b {
			t.Errorf("%v: got %g then %g", p, a, b)
		}
	}
}

func TestRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for _, octaves := range []int{1, 4, 8} {
		t.Run(fmt.Sprintf("octaves_%d", octaves), func(t *testing.T) {
			f, err := New(Octaves(octaves), seeded(uint64(octaves)))
			if err != nil {
				t.Fatal(err)
			}
			for range 10000 {
				x := 200*rng.Float64() - 100
				y := 200*rng.Float64() - 100
				v := f.At(x, y)
				if v < -1.05 || v > 1.05 || math.IsNaN(v) {
					t.Fatalf("noise(%g, %g) = %g out of range", x, y, v)
				}
			}
		})
	}
}

func TestLatticeZero(t *testing.T) {
	f, err := New(seeded(1))
	if err != nil {
		t.Fatal(err)
	}
	for x := -3; x <= 3; x++ {
		for y := -3; y <= 3; y++ {
			if v := f.At(float64(x), float64(y)); math.Abs(v) > 1e-12 {
				t.Errorf("noise(%d, %d) = %g, want 0", x, y, v)
			}
		}
	}
}

func TestFieldsDiffer(t *testing.T) {
	a, _ := New(seeded(1))
	b, _ := New(seeded(2))
	same := true
	for i := range 20 {
		x := 0.37 + float64(i)*1.3
		if a.At(x, 0.5) != b.At(x, 0.5) {
			same = false
		}
	}
	if same {
		t.Error("fields with different gradients agree everywhere")
	}
}

func TestTile(t *testing.T) {
	f, err := New(Octaves(3), Tile(2, 3), seeded(5))
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range [][2]float64{{0.3, 0.4}, {1.7, 2.2}, {-0.6, 1.1}} {
		a := f.At(p[0], p[1])
		b := f.At(p[0]+2, p[1])
		c := f.At(p[0], p[1]-3)
		if math.Abs(a-b) > 1e-9 || math.Abs(a-c) > 1e-9 {
			t.Errorf("%v: not periodic: %g %g %g", p, a, b, c)
		}
	}
}

func TestUnbias(t *testing.T) {
	plain, _ := New(Octaves(4), seeded(11))
	unbiased, _ := New(Octaves(4), Unbias(), seeded(11))
	for i := range 200 {
		x, y := 0.13*float64(i), 0.07*float64(i)+0.5
		a := plain.At(x, y)
		b := unbiased.At(x, y)
		if b < -1 || b > 1 {
			t.Fatalf("unbiased value %g out of range", b)
		}
		if math.Abs(b) < math.Abs(a)-1e-12 {
			t.Errorf("point %d: unbiasing moved %g towards zero (%g)", i, a, b)
		}
	}
}

func TestDimension(t *testing.T) {
	f, _ := New(seeded(1))
	if _, err := f.Noise(1, 2, 3); !errors.Is(err, ErrDimension) {
		t.Errorf("got %v, want ErrDimension", err)
	}

	f3, err := New(Dimension(3), Octaves(2), seeded(1))
	if err != nil {
		t.Fatal(err)
	}
	if v, err := f3.Noise(0.5, 0.5, 0.5); err != nil || math.Abs(v) > 1.05 {
		t.Errorf("3d noise: %g, %v", v, err)
	}
	defer func() {
		if recover() == nil {
			t.Error("At on a 3d field did not panic")
		}
	}()
	f3.At(1, 2)
}

func TestConfig(t *testing.T) {
	bad := [][]Option{
		{Dimension(0)},
		{Dimension(MaxDimension + 1)},
		{Octaves(0)},
		{Tile(-1)},
		{Tile(1, 1, 1)},
	}
	for i, opts := range bad {
		if _, err := New(opts...); !errors.Is(err, ErrConfig) {
			t.Errorf("case %d: got %v, want ErrConfig", i, err)
		}
	}
}

// constant is a field with the same value everywhere.
type constant float64

func (c constant) At(x, y float64) float64 { return float64(c) }

func TestDisplaceOpen(t *testing.T) {
	pts := []vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 0}}
	out := Displace(pts, false, constant(0.5), 4)
	if len(out) != len(pts) {
		t.Fatalf("got %d points, want %d", len(out), len(pts))
	}
	if out[0] != pts[0] {
		t.Errorf("first point moved to %v", out[0])
	}
	want := vec.Vec2{X: 10 + 2*math.Cos(90), Y: 2 * math.Sin(90)}
	if out[1].Sub(want).Length() > 1e-12 {
		t.Errorf("got %v, want %v", out[1], want)
	}
}

func TestDisplaceClosed(t *testing.T) {
	pts := []vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}

	out := Displace(pts, true, constant(1), 0)
	if len(out) != 4 {
		t.Fatalf("got %d points, want 4", len(out))
	}
	for i, p := range pts {
		if out[i] != p {
			t.Errorf("point %d moved to %v", i, out[i])
		}
	}
	if out[3] != pts[0] {
		t.Errorf("closing vertex %v, want %v", out[3], pts[0])
	}

	out = Displace(pts, true, constant(1), 3)
	// closing edge runs from (10, 10) to (0, 0)
	angle := math.Atan2(-10, -10) + 90
	want := vec.Vec2{X: 3 * math.Cos(angle), Y: 3 * math.Sin(angle)}
	if out[3].Sub(want).Length() > 1e-12 {
		t.Errorf("closing vertex %v, want %v", out[3], want)
	}

	if Displace(nil, true, constant(1), 1) != nil {
		t.Error("empty input should give nil")
	}
}

func TestDisplaceWithField(t *testing.T) {
	f, _ := New(Octaves(4), Tile(1000.0/600, 1000.0/600), seeded(9))
	pts := make([]vec.Vec2, 50)
	for i := range pts {
		pts[i] = vec.Vec2{X: 7 * float64(i), Y: 3}
	}
	out := Displace(pts, false, f, 10)
	for i := range out {
		if d := out[i].Sub(pts[i]).Length(); d > 10*1.05 {
			t.Errorf("point %d moved by %g", i, d)
		}
	}
}
