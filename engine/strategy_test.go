package engine_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/wojtekolesinski/battleships/engine"
)

func miss(r, c int) engine.Shot {
	return engine.Shot{Coord: engine.Coord{Row: r, Col: c}, Outcome: engine.Outcome{Result: engine.ResultMiss}}
}

func hit(r, c int, id engine.ShipID) engine.Shot {
	return engine.Shot{Coord: engine.Coord{Row: r, Col: c}, Outcome: engine.Outcome{Result: engine.ResultHit, Ship: id}}
}

func sunk(r, c int, id engine.ShipID) engine.Shot {
	return engine.Shot{Coord: engine.Coord{Row: r, Col: c}, Outcome: engine.Outcome{Result: engine.ResultSunk, Ship: id}}
}

func TestNextShot_HuntsAroundHit(t *testing.T) {
	tests := []struct {
		name    string
		history []engine.Shot
		want    []engine.Coord
	}{
		{
			name:    "open water",
			history: []engine.Shot{miss(0, 0), hit(4, 4, 1)},
			want:    []engine.Coord{{Row: 3, Col: 4}, {Row: 5, Col: 4}, {Row: 4, Col: 3}, {Row: 4, Col: 5}},
		},
		{
			name:    "corner",
			history: []engine.Shot{hit(0, 0, 2)},
			want:    []engine.Coord{{Row: 1, Col: 0}, {Row: 0, Col: 1}},
		},
		{
			name:    "neighbours partly fired",
			history: []engine.Shot{miss(3, 4), miss(4, 3), hit(4, 4, 1)},
			want:    []engine.Coord{{Row: 5, Col: 4}, {Row: 4, Col: 5}},
		},
		{
			name:    "sunk ship ignored",
			history: []engine.Shot{hit(7, 7, 1), hit(2, 2, 3), sunk(2, 3, 3)},
			want:    []engine.Coord{{Row: 6, Col: 7}, {Row: 8, Col: 7}, {Row: 7, Col: 6}, {Row: 7, Col: 8}},
		},
		{
			name:    "boxed in hit falls back to older one",
			history: []engine.Shot{hit(9, 0, 1), miss(4, 4), miss(5, 4), miss(4, 3), miss(4, 5), hit(3, 4, 2), miss(2, 4), miss(3, 3), miss(3, 5)},
			want:    []engine.Coord{{Row: 8, Col: 0}, {Row: 9, Col: 1}},
		},
	}
	for _, tt := range tests {
		allowed := make(map[engine.Coord]bool)
		for _, c := range tt.want {
			allowed[c] = true
		}
		seen := make(map[engine.Coord]bool)
		rng := rand.New(rand.NewSource(7))
		for i := 0; i < 200; i++ {
			got, err := engine.NextShot(tt.history, rng)
			if err != nil {
				t.Fatalf("%s: %v", tt.name, err)
			}
			if !allowed[got] {
				t.Fatalf("%s: picked %v, want one of %v", tt.name, got, tt.want)
			}
			seen[got] = true
		}
		if len(seen) != len(allowed) {
			t.Errorf("%s: only picked %d of %d candidates", tt.name, len(seen), len(allowed))
		}
	}
}

func TestNextShot_SearchNeverRepeats(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	var history []engine.Shot
	fired := make(map[engine.Coord]bool)

	for i := 0; i < engine.Size*engine.Size; i++ {
		c, err := engine.NextShot(history, rng)
		if err != nil {
			t.Fatalf("shot %d: %v", i, err)
		}
		if fired[c] {
			t.Fatalf("shot %d: %v fired twice", i, c)
		}
		fired[c] = true
		history = append(history, miss(c.Row, c.Col))
	}

	if _, err := engine.NextShot(history, rng); !errors.Is(err, engine.ErrNoTargets) {
		t.Errorf("expected ErrNoTargets, got %v", err)
	}
}

func TestNextShot_Deterministic(t *testing.T) {
	history := []engine.Shot{miss(1, 1), miss(5, 5)}
	a, _ := engine.NextShot(history, rand.New(rand.NewSource(11)))
	b, _ := engine.NextShot(history, rand.New(rand.NewSource(11)))
	if a != b {
		t.Errorf("same seed gave %v and %v", a, b)
	}
}

func TestNextShot_SinksWholeFleet(t *testing.T) {
	b := engine.NewBoard()
	deploy(t, b)
	rng := rand.New(rand.NewSource(5))

	for shots := 0; !b.AllSunk(); shots++ {
		if shots >= engine.Size*engine.Size {
			t.Fatal("fleet not sunk after shooting the whole board")
		}
		c, err := engine.NextShot(b.History(), rng)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := b.Fire(c); err != nil {
			t.Fatalf("Fire(%v): %v", c, err)
		}
	}
}
