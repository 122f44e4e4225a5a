package messaging

import (
	"math/rand"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneSarcastic is used when the dice never lined up
	ToneSarcastic MessageTone = "sarcastic"

	// ToneEncouraging is used for the occasional jackpot
	ToneEncouraging MessageTone = "encouraging"

	// ToneCelebration is used when jackpots are common
	ToneCelebration MessageTone = "celebration"
)

// Config holds configuration for the messaging service
type Config struct {
	// Random picks between messages; nil seeds one from the current time
	Random *rand.Rand
}

// GetRunResultMessageInput contains parameters for describing a run
type GetRunResultMessageInput struct {
	// Name is the optional run label
	Name string

	// Dice is the number of dice in the run
	Dice int

	// Rolls is the number of rolls in the run
	Rolls int

	// Jackpots is the number of rolls where every die matched
	Jackpots int
}

// GetRunResultMessageOutput contains the generated title and message
type GetRunResultMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// Err is the error returned by the simulation service
	Err error
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	Title   string
	Message string
}
