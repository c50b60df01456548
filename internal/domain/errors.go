package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Command errors
	ErrMsgUnknownCommand = "unknown command"
	ErrMsgMissingParam   = "missing parameter"
	ErrMsgInvalidLength  = "invalid length"
	ErrMsgInvalidParam   = "invalid parameter"
	ErrMsgNotLoggedIn    = "not logged in"

	// Lookup errors
	ErrMsgNotFound        = "not found"
	ErrMsgEmpty           = "nothing here"
	ErrMsgTemplateMissing = "item template missing"

	// Shop errors
	ErrMsgShopNotSelling    = "shop is not selling"
	ErrMsgShopNotBuying     = "shop is not buying"
	ErrMsgRankTooLow        = "rank too low"
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgOutOfStock        = "out of stock"
	ErrMsgNoInventorySpace  = "no inventory space"
	ErrMsgNotWanted         = "item not wanted"
	ErrMsgNoneLeft          = "none left"

	// Cooldown errors
	ErrMsgOnCooldown = "action on cooldown"

	// Persistence errors
	ErrMsgPersistence = "persistence failure"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrUnknownCommand = errors.New(ErrMsgUnknownCommand)
	ErrMissingParam   = errors.New(ErrMsgMissingParam)
	ErrInvalidLength  = errors.New(ErrMsgInvalidLength)
	ErrInvalidParam   = errors.New(ErrMsgInvalidParam)
	ErrNotLoggedIn    = errors.New(ErrMsgNotLoggedIn)

	ErrNotFound        = errors.New(ErrMsgNotFound)
	ErrEmpty           = errors.New(ErrMsgEmpty)
	ErrTemplateMissing = errors.New(ErrMsgTemplateMissing)

	ErrShopNotSelling    = errors.New(ErrMsgShopNotSelling)
	ErrShopNotBuying     = errors.New(ErrMsgShopNotBuying)
	ErrRankTooLow        = errors.New(ErrMsgRankTooLow)
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrOutOfStock        = errors.New(ErrMsgOutOfStock)
	ErrNoInventorySpace  = errors.New(ErrMsgNoInventorySpace)
	ErrNotWanted         = errors.New(ErrMsgNotWanted)
	ErrNoneLeft          = errors.New(ErrMsgNoneLeft)

	ErrOnCooldown = errors.New(ErrMsgOnCooldown)

	ErrPersistence = errors.New(ErrMsgPersistence)
)

// Kind classifies an error for rendering and logging decisions.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindPrecondition
	KindNotFound
	KindPersistence
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindPrecondition:
		return "precondition"
	case KindNotFound:
		return "not_found"
	case KindPersistence:
		return "persistence"
	default:
		return "internal"
	}
}

var kindTable = []struct {
	kind Kind
	errs []error
}{
	{KindValidation, []error{ErrMissingParam, ErrInvalidLength, ErrInvalidParam}},
	{KindNotFound, []error{ErrUnknownCommand, ErrNotFound, ErrEmpty, ErrTemplateMissing}},
	{KindPrecondition, []error{
		ErrNotLoggedIn, ErrShopNotSelling, ErrShopNotBuying, ErrRankTooLow, ErrInsufficientFunds,
		ErrOutOfStock, ErrNoInventorySpace, ErrNotWanted, ErrNoneLeft, ErrOnCooldown,
	}},
	{KindPersistence, []error{ErrPersistence}},
}

// KindOf maps err onto the error taxonomy. Anything unrecognised is internal.
func KindOf(err error) Kind {
	for _, row := range kindTable {
		for _, target := range row.errs {
			if errors.Is(err, target) {
				return row.kind
			}
		}
	}
	return KindInternal
}

// UserCorrectable reports whether the actor can fix the failure themselves.
func (k Kind) UserCorrectable() bool {
	return k == KindValidation || k == KindPrecondition || k == KindNotFound
}
