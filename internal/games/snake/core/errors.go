package core

import "errors"

var (
	// ErrGridTooSmall is returned by New when the initial snake cannot be placed.
	ErrGridTooSmall = errors.New("snake: grid too small for initial snake")

	// ErrSpawnExhausted is returned when no free cell is left for food.
	// The board is full, which shells may present as a win.
	ErrSpawnExhausted = errors.New("snake: no free cell for food")

	// ErrGameOver is returned by Tick once the game has ended.
	ErrGameOver = errors.New("snake: tick after game over")
)
