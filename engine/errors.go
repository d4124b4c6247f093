package engine

import "errors"

var (
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrOutOfBounds       = errors.New("ship does not fit on the board")
	ErrOverlap           = errors.New("ship overlaps or touches another ship")
	ErrShipNotInFleet    = errors.New("ship is not left in the fleet")
	ErrFleetIncomplete   = errors.New("fleet is not fully deployed")
	ErrPlacementClosed   = errors.New("placement is closed")
	ErrPlacementOpen     = errors.New("board is still in placement")
	ErrAlreadyShot       = errors.New("coordinate already shot")
	ErrNotPlaying        = errors.New("game is not in play")
	ErrNotYourTurn       = errors.New("not this side's turn")
	ErrGameOver          = errors.New("game is over")
	ErrNoTargets         = errors.New("no coordinates left to fire at")
)
