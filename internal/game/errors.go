package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        GameError = "config cannot be nil"
	ErrNilDie           GameError = "die cannot be nil"
	ErrInvalidForm      GameError = "form must be wide or narrow"
	ErrInvalidRollCount GameError = "roll count cannot be negative"
)
