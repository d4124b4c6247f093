package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/wojtekolesinski/battleships/config"
	"github.com/wojtekolesinski/battleships/engine"
)

type App struct {
	cfg  config.Config
	game *engine.Game
	ui   *ui
}

func New(cfg config.Config) *App {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	game := engine.NewGame(
		engine.WithRand(rand.New(rand.NewSource(seed))),
		engine.WithLogger(log.Default()),
	)
	log.Info("app [New]", "game", game.ID, "seed", seed)
	return &App{
		cfg:  cfg,
		game: game,
	}
}

func (a *App) Run(ctx context.Context) error {
	auto := a.cfg.Deploy == config.DeployAuto
	if a.cfg.Deploy == config.DeployAsk {
		auto = promptPlayer("Deploy your fleet automatically?")
	}

	if err := a.game.PlaceRandom(engine.Computer); err != nil {
		return fmt.Errorf("game.PlaceRandom: %w", err)
	}
	if auto {
		if err := a.game.PlaceRandom(engine.Human); err != nil {
			return fmt.Errorf("game.PlaceRandom: %w", err)
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.ui = newUi()
	a.render()
	go a.play(ctx)

	a.ui.gui.Start(ctx, nil)
	return nil
}

func (a *App) play(ctx context.Context) {
	if err := a.deploy(ctx); err != nil {
		log.Error("app [play]", "err", err)
		return
	}
	if err := a.battle(ctx); err != nil {
		log.Error("app [play]", "err", err)
		return
	}

	a.render()
	if winner, ok := a.game.Winner(); ok {
		log.Info("app [play]", "winner", winner)
		a.ui.renderGameResult(winner == engine.Human)
	}
	a.ui.setExitText("Game over. Press Ctrl+C to exit")
}

// deploy lets the human place the remaining ships by clicking the bow cell and
// then a cell to its right or below it.
func (a *App) deploy(ctx context.Context) error {
	for a.game.Phase() == engine.Setup {
		left := a.game.Remaining(engine.Human)
		if len(left) == 0 {
			if err := a.game.FinishPlacement(engine.Human); err != nil {
				return fmt.Errorf("game.FinishPlacement: %w", err)
			}
			continue
		}
		kind := left[0]

		a.ui.setInfoText(fmt.Sprintf("Place your %s (%d): click the bow", kind, kind.Size()))
		bow, err := a.listen(ctx, a.ui.board1.Listen)
		if err != nil {
			return err
		}
		a.ui.setInfoText(fmt.Sprintf("Place your %s (%d): click right of %s for horizontal, below for vertical", kind, kind.Size(), bow))
		next, err := a.listen(ctx, a.ui.board1.Listen)
		if err != nil {
			return err
		}

		o, ok := orientationOf(bow, next)
		if !ok {
			a.ui.setInfoText(fmt.Sprintf("%s is not right of or below %s, try again", next, bow))
			continue
		}
		if _, err := a.game.Place(engine.Human, kind, bow, o); err != nil {
			log.Debug("app [deploy]", "kind", kind, "bow", bow, "orientation", o, "err", err)
			a.ui.setInfoText(fmt.Sprintf("Cannot place %s: %s", kind, err))
			continue
		}
		a.render()
	}
	return nil
}

func (a *App) battle(ctx context.Context) error {
	a.ui.setInfoText("Your turn: fire at the opponent's board")
	for a.game.Phase() == engine.Playing {
		c, err := a.listen(ctx, a.ui.board2.Listen)
		if err != nil {
			return err
		}
		out, err := a.game.Fire(c)
		if err != nil {
			if errors.Is(err, engine.ErrGameOver) {
				return nil
			}
			a.ui.setInfoText(fmt.Sprintf("Cannot fire at %s: %s", c, err))
			continue
		}
		msg := describeShot("You", c, out, a.game.View(engine.Computer))
		a.render()
		if a.game.Phase() != engine.Playing {
			a.ui.setInfoText(msg)
			break
		}

		cc, cout, err := a.game.ComputerTurn()
		if err != nil {
			return fmt.Errorf("game.ComputerTurn: %w", err)
		}
		msg += ". " + describeShot("Computer", cc, cout, a.game.View(engine.Human))
		a.ui.setInfoText(msg)
		a.render()
	}
	return nil
}

// listen waits for a click on a board and parses it.
func (a *App) listen(ctx context.Context, listen func(context.Context) string) (engine.Coord, error) {
	for {
		raw := listen(ctx)
		if err := ctx.Err(); err != nil {
			return engine.Coord{}, err
		}
		c, err := engine.ParseCoord(raw)
		if err != nil {
			log.Error("app [listen]", "err", err, "raw", raw)
			continue
		}
		return c, nil
	}
}

func (a *App) render() {
	player := a.game.View(engine.Human)
	opponent := a.game.View(engine.Computer)
	_, over := a.game.Winner()

	a.ui.renderBoards(newBoard(player, true), newBoard(opponent, over))
	a.ui.updateAccuracy(accuracy(opponent.Shots), accuracy(player.Shots))
	a.ui.renderFleets(fleetStatus(player.Ships), fleetStatus(opponent.Ships))
}
