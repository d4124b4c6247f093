package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

type Side uint8

const (
	Human Side = iota
	Computer
)

func (s Side) String() string {
	if s == Computer {
		return "computer"
	}
	return "human"
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == Human {
		return Computer
	}
	return Human
}

type Phase uint8

const (
	Setup Phase = iota
	Playing
	Finished
)

func (p Phase) String() string {
	switch p {
	case Playing:
		return "playing"
	case Finished:
		return "finished"
	}
	return "setup"
}

// View is a read-only snapshot of one side's board.
type View struct {
	Cells [Size][Size]Cell
	Ships []ShipStatus
	Shots []Shot
	Ready bool
}

// Game owns both boards and enforces the turn order. The human always opens
// fire and a sinking shot does not grant an extra turn.
//
// Game is not safe for concurrent use; callers serialize moves.
type Game struct {
	ID string

	boards   [2]*Board
	phase    Phase
	turn     Side
	winner   Side
	strategy Strategy
	rng      *rand.Rand
	log      *log.Logger
}

type Option func(*Game)

// WithRand sets the randomness source used by the strategy and random deployment.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

func WithStrategy(s Strategy) Option {
	return func(g *Game) {
		g.strategy = s
	}
}

func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.log = l
	}
}

func NewGame(opts ...Option) *Game {
	g := &Game{
		ID:       uuid.NewString()[:10],
		boards:   [2]*Board{NewBoard(), NewBoard()},
		phase:    Setup,
		turn:     Human,
		strategy: NextShot,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.log == nil {
		g.log = log.Default()
	}
	g.log = g.log.With("game", g.ID)
	return g
}

func (g *Game) Phase() Phase {
	return g.phase
}

func (g *Game) Turn() Side {
	return g.turn
}

// Winner returns the winning side once the game is finished.
func (g *Game) Winner() (Side, bool) {
	return g.winner, g.phase == Finished
}

// Place deploys a ship on the given side's board during setup.
func (g *Game) Place(side Side, kind ShipKind, origin Coord, o Orientation) (ShipID, error) {
	if g.phase != Setup {
		return 0, ErrPlacementClosed
	}
	id, err := g.boards[side].Place(kind, origin, o)
	if err != nil {
		return 0, err
	}
	g.log.Debug("engine [Place]", "side", side, "kind", kind, "origin", origin, "orientation", o, "id", id)
	g.advance()
	return id, nil
}

// PlaceRandom deploys the rest of the given side's fleet at random.
func (g *Game) PlaceRandom(side Side) error {
	if g.phase != Setup {
		return ErrPlacementClosed
	}
	if err := g.boards[side].PlaceRandom(g.rng); err != nil {
		return err
	}
	g.log.Debug("engine [PlaceRandom]", "side", side)
	g.advance()
	return nil
}

func (g *Game) FinishPlacement(side Side) error {
	if g.phase != Setup {
		return ErrPlacementClosed
	}
	if err := g.boards[side].FinishPlacement(); err != nil {
		return err
	}
	g.advance()
	return nil
}

// Remaining lists the fleet kinds the side still has to deploy.
func (g *Game) Remaining(side Side) []ShipKind {
	return g.boards[side].Remaining()
}

func (g *Game) advance() {
	if g.phase == Setup && g.boards[Human].Frozen() && g.boards[Computer].Frozen() {
		g.phase = Playing
		g.log.Info("engine [advance]", "phase", g.phase, "turn", g.turn)
	}
}

// Fire is the human's shot at the computer's board.
func (g *Game) Fire(c Coord) (Outcome, error) {
	return g.fire(Human, c)
}

// ComputerTurn lets the strategy choose a coordinate on the human's board and
// fires at it.
func (g *Game) ComputerTurn() (Coord, Outcome, error) {
	if err := g.check(Computer); err != nil {
		return Coord{}, Outcome{}, err
	}
	c, err := g.strategy(g.boards[Human].History(), g.rng)
	if err != nil {
		return Coord{}, Outcome{}, fmt.Errorf("strategy: %w", err)
	}
	out, err := g.fire(Computer, c)
	if err != nil {
		return c, Outcome{}, err
	}
	return c, out, nil
}

func (g *Game) check(side Side) error {
	switch g.phase {
	case Setup:
		return ErrNotPlaying
	case Finished:
		return ErrGameOver
	}
	if g.turn != side {
		return fmt.Errorf("%w: %s", ErrNotYourTurn, side)
	}
	return nil
}

func (g *Game) fire(side Side, c Coord) (Outcome, error) {
	if err := g.check(side); err != nil {
		return Outcome{}, err
	}
	target := g.boards[side.Opponent()]
	out, err := target.Fire(c)
	if err != nil {
		return Outcome{}, err
	}
	g.log.Debug("engine [fire]", "side", side, "coord", c, "result", out.Result, "ship", out.Ship)

	if target.AllSunk() {
		g.phase = Finished
		g.winner = side
		g.log.Info("engine [fire]", "phase", g.phase, "winner", side)
		return out, nil
	}
	g.turn = side.Opponent()
	return out, nil
}

// View returns a snapshot of the given side's board.
func (g *Game) View(side Side) View {
	b := g.boards[side]
	return View{
		Cells: b.Cells(),
		Ships: b.Ships(),
		Shots: b.History(),
		Ready: b.Frozen(),
	}
}
