package finance

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrNotRegistered     = errors.New("user not registered")
	ErrAlreadyRegistered = errors.New("user already registered")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInvalidCurrency   = errors.New("invalid currency")
)

// NotRegisteredMessage is shown on every entry point that needs a user.
const NotRegisteredMessage = "Você precisa se cadastrar primeiro. Use o comando /start para começar."
