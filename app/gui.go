package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	gui "github.com/grupawp/warships-gui/v2"
	"github.com/mitchellh/go-wordwrap"
)

const (
	fleetLines = 6
	fleetWidth = 40
)

type ui struct {
	gui         *gui.GUI
	board1      *gui.Board
	board2      *gui.Board
	infoText    *gui.Text
	exitText    *gui.Text
	playerStats *gui.Text
	oppStats    *gui.Text
	playerFleet []*gui.Text
	oppFleet    []*gui.Text
}

func newUi() *ui {
	g := gui.NewGUI(true)
	board1 := gui.NewBoard(2, 6, nil)
	board2 := gui.NewBoard(60, 6, nil)
	exitText := gui.NewText(2, 2, "Press Ctrl+C to exit", nil)
	infoText := gui.NewText(2, 4, "", nil)
	playerStats := gui.NewText(2, 28, "0.00%", &gui.TextConfig{FgColor: gui.White, BgColor: gui.Black})
	oppStats := gui.NewText(60, 28, "0.00%", &gui.TextConfig{FgColor: gui.White, BgColor: gui.Black})

	g.Draw(board1)
	g.Draw(board2)
	g.Draw(exitText)
	g.Draw(infoText)
	g.Draw(gui.NewText(2, 27, "Your accuracy:", nil))
	g.Draw(gui.NewText(60, 27, "Computer accuracy:", nil))
	g.Draw(playerStats)
	g.Draw(oppStats)

	u := &ui{
		gui:         g,
		board1:      board1,
		board2:      board2,
		infoText:    infoText,
		exitText:    exitText,
		playerStats: playerStats,
		oppStats:    oppStats,
	}
	for i := 0; i < fleetLines; i++ {
		p := gui.NewText(2, 30+i, "", nil)
		o := gui.NewText(60, 30+i, "", nil)
		g.Draw(p)
		g.Draw(o)
		u.playerFleet = append(u.playerFleet, p)
		u.oppFleet = append(u.oppFleet, o)
	}
	return u
}

func (u *ui) renderBoards(player, opponent Board) {
	u.board1.SetStates(player)
	u.board2.SetStates(opponent)
}

func (u *ui) renderFleets(playerDesc, oppDesc string) {
	log.Debug("app [renderFleets]", "playerDesc", playerDesc, "oppDesc", oppDesc)
	fillLines(u.playerFleet, playerDesc)
	fillLines(u.oppFleet, oppDesc)
}

func fillLines(lines []*gui.Text, text string) {
	fragments := wrap(text, fleetWidth)
	for i, l := range lines {
		if i < len(fragments) {
			l.SetText(fragments[i])
		} else {
			l.SetText("")
		}
	}
}

func wrap(text string, width uint) []string {
	if text == "" {
		return nil
	}
	return strings.Split(wordwrap.WrapString(text, width), "\n")
}

func (u *ui) setInfoText(text string) {
	u.infoText.SetText(text)
}

func (u *ui) setExitText(text string) {
	u.exitText.SetText(text)
}

func (u *ui) renderGameResult(won bool) {
	u.infoText.SetFgColor(gui.White)
	if won {
		u.infoText.SetBgColor(gui.Green)
		u.setInfoText("You win")
	} else {
		u.infoText.SetBgColor(gui.Red)
		u.setInfoText("You lose")
	}
}

func (u *ui) updateAccuracy(player, opponent float32) {
	u.playerStats.SetText(fmt.Sprintf("%.2f%%", player))
	u.oppStats.SetText(fmt.Sprintf("%.2f%%", opponent))
}
