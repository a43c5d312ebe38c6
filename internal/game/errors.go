// internal/game/errors.go
package game

import "errors"

var (
	ErrInsufficientFunds = errors.New("game: not enough currency")
	ErrInvalidTarget     = errors.New("game: action target no longer valid")
	ErrMaxLevel          = errors.New("game: tower already at max level")
)
