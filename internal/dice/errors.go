package dice

// DiceError is a custom error type for die errors
type DiceError string

// Error implements the error interface
func (e DiceError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidInputType DiceError = "invalid face input"
	ErrDuplicateFace    DiceError = "duplicate face"
	ErrUnknownFace      DiceError = "unknown face"
	ErrInvalidWeight    DiceError = "invalid weight"
	ErrInvalidRollCount DiceError = "roll count cannot be negative"
)
