package game

import "fmt"

// Category groups rejection codes by the kind of rule that was broken.
type Category string

const (
	CategoryReferential   Category = "referential"
	CategoryAuthorization Category = "authorization"
	CategoryPhase         Category = "phase"
	CategorySpatial       Category = "spatial"
	CategoryEconomic      Category = "economic"
	CategoryInvalid       Category = "invalid"
)

// RejectionCode identifies why an action was declined.
type RejectionCode string

const (
	CodeUnitNotFound     RejectionCode = "unit_not_found"
	CodeCardNotInHand    RejectionCode = "card_not_in_hand"
	CodeHexNotFound      RejectionCode = "hex_not_found"
	CodeDeckEmpty        RejectionCode = "deck_empty"
	CodeNotYourUnit      RejectionCode = "not_your_unit"
	CodeFriendlyTarget   RejectionCode = "friendly_target"
	CodeWrongZone        RejectionCode = "wrong_zone"
	CodeWrongPhase       RejectionCode = "wrong_phase"
	CodeSetupComplete    RejectionCode = "setup_complete"
	CodeCapitalsMissing  RejectionCode = "capitals_missing"
	CodeAlreadyMoved     RejectionCode = "already_moved"
	CodeNotAdjacent      RejectionCode = "not_adjacent"
	CodeOccupied         RejectionCode = "occupied"
	CodeNotCapital       RejectionCode = "not_capital"
	CodeTargetRequired   RejectionCode = "target_required"
	CodeGeneratorLimit   RejectionCode = "generator_limit"
	CodeInsufficientGold RejectionCode = "insufficient_gold"
	CodeInvalidPlayer    RejectionCode = "invalid_player"
	CodeInvalidStats     RejectionCode = "invalid_stats"
	CodeUnknownAction    RejectionCode = "unknown_action"
)

var codeCategories = map[RejectionCode]Category{
	CodeUnitNotFound:     CategoryReferential,
	CodeCardNotInHand:    CategoryReferential,
	CodeHexNotFound:      CategorySpatial,
	CodeDeckEmpty:        CategoryReferential,
	CodeNotYourUnit:      CategoryAuthorization,
	CodeFriendlyTarget:   CategoryAuthorization,
	CodeWrongZone:        CategoryAuthorization,
	CodeWrongPhase:       CategoryPhase,
	CodeSetupComplete:    CategoryPhase,
	CodeCapitalsMissing:  CategoryPhase,
	CodeAlreadyMoved:     CategoryPhase,
	CodeNotAdjacent:      CategorySpatial,
	CodeOccupied:         CategorySpatial,
	CodeNotCapital:       CategorySpatial,
	CodeTargetRequired:   CategorySpatial,
	CodeGeneratorLimit:   CategoryEconomic,
	CodeInsufficientGold: CategoryEconomic,
	CodeInvalidPlayer:    CategoryInvalid,
	CodeInvalidStats:     CategoryInvalid,
	CodeUnknownAction:    CategoryInvalid,
}

func (c RejectionCode) Category() Category {
	if cat, ok := codeCategories[c]; ok {
		return cat
	}
	return CategoryInvalid
}

// Rejection captures why an action was declined. It is an error so callers
// can use it with errors.As.
type Rejection struct {
	Code    RejectionCode
	Message string
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("%s: %s", r.Code, r.Message)
}

func (r *Rejection) Category() Category {
	return r.Code.Category()
}

func reject(code RejectionCode, format string, args ...any) *Rejection {
	return &Rejection{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Result is the outcome of applying an action. A rejected action carries the
// exact input state and a Rejection.
type Result struct {
	State     *GameState
	Rejection *Rejection
}

func (r Result) Accepted() bool {
	return r.Rejection == nil
}

// Err returns the rejection as an error, or nil when the action was accepted.
func (r Result) Err() error {
	if r.Rejection == nil {
		return nil
	}
	return r.Rejection
}
