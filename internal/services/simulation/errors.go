package simulation

// SimulationError is a custom error type for simulation errors
type SimulationError string

// Error implements the error interface
func (e SimulationError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        SimulationError = "config cannot be nil"
	ErrNilRunRepo       SimulationError = "run repository cannot be nil"
	ErrNilClock         SimulationError = "clock cannot be nil"
	ErrNilUUIDGenerator SimulationError = "UUID generator cannot be nil"
	ErrNilInput         SimulationError = "input cannot be nil"
	ErrNoDice           SimulationError = "at least one die is required"
	ErrTooManyDice      SimulationError = "too many dice"
	ErrInvalidRolls     SimulationError = "rolls cannot be negative"
	ErrTooManyRolls     SimulationError = "too many rolls"
	ErrRunNotFound      SimulationError = "run not found"
)
