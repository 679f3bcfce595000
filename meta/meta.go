// meta/meta.go
package meta

// DefaultBoardWidth is the number of board columns.
const DefaultBoardWidth = 15

// DefaultBoardHeight is the number of board rows: 3 per player plus 2 borderland rows.
const DefaultBoardHeight = 8

// GoldCap is the most gold a player can hold.
const GoldCap = 20

// DeployCost is the gold price of a DEPLOY_UNIT action.
const DeployCost = 5

// MaxGenerators is how many capital hexes a player may light as generators.
const MaxGenerators = 6

// Stats used for unit cards that do not specify their own.
const (
	DefaultCardUnitAP = 2
	DefaultCardUnitHP = 3
)

// Stats of the basic unit deployed by the headless driver.
const (
	DeployUnitAP = 3
	DeployUnitHP = 5
)

// MAX_TURNS bounds the headless driver's scripted game.
const MAX_TURNS = 300
