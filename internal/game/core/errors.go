package core

import "errors"

var (
	ErrOutOfBounds      = errors.New("destination is out of bounds")
	ErrNoMovesLeft      = errors.New("unit has no moves left")
	ErrUnitDead         = errors.New("unit is not alive")
	ErrNotYourUnit      = errors.New("unit belongs to another player")
	ErrWrongTerrain     = errors.New("unit cannot enter that terrain")
	ErrTileOccupied     = errors.New("destination tile is occupied by a friendly unit")
	ErrDirectionLocked  = errors.New("missile is locked on its launch heading")
	ErrInvalidDirection = errors.New("direction must be a single-tile step")
	ErrUnknownUnitType  = errors.New("unknown unit type")
	ErrNotAMissile      = errors.New("unit is not a nuclear missile")
	ErrNotAnArmy        = errors.New("unit is not an army")
	ErrCityExists       = errors.New("a city already stands on this tile")
	ErrEnemyPresent     = errors.New("an enemy unit shares this tile")
	ErrGameOver         = errors.New("game is over")
)
