package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/KirkDiggler/montecarlo/internal/dice"
	"github.com/KirkDiggler/montecarlo/internal/services/simulation"
)

// jackpot rates at or above this are worth celebrating
const celebrationRate = 0.1

// service implements the Service interface. It is shared by every Discord
// interaction, so the random source is guarded.
type service struct {
	mu   sync.Mutex
	rand *rand.Rand
}

// New creates a new messaging service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	r := cfg.Random
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &service{
		rand: r,
	}, nil
}

// GetRunResultMessage returns a title and flavor line for a finished run
func (s *service) GetRunResultMessage(ctx context.Context, input *GetRunResultMessageInput) (*GetRunResultMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	title := input.Name
	if title == "" {
		title = fmt.Sprintf("%d dice × %d rolls", input.Dice, input.Rolls)
	}

	var messages []string
	var tone MessageTone

	switch {
	case input.Rolls == 0:
		tone = ToneNeutral
		messages = []string{
			"Zero rolls. The dice stayed in the cup.",
			"Nothing rolled, nothing learned.",
		}
	case input.Dice < 2:
		// A single die hits a jackpot every roll, so there's nothing to cheer
		tone = ToneNeutral
		messages = []string{
			fmt.Sprintf("One die, %d rolls. Every roll matches itself.", input.Rolls),
			"A lonely die. Add another one for real jackpots.",
		}
	case input.Jackpots == 0:
		tone = ToneSarcastic
		messages = []string{
			fmt.Sprintf("%d rolls and not a single jackpot. The dice are not your friends.", input.Rolls),
			"No jackpots. Maybe load the dice next time?",
			"The dice refused to agree on anything.",
		}
	case float64(input.Jackpots)/float64(input.Rolls) >= celebrationRate:
		tone = ToneCelebration
		messages = []string{
			fmt.Sprintf("JACKPOT! %d times! Someone check those dice.", input.Jackpots),
			fmt.Sprintf("%d jackpots in %d rolls. Suspiciously lucky.", input.Jackpots, input.Rolls),
			"The dice are in perfect harmony tonight.",
		}
	default:
		tone = ToneEncouraging
		messages = []string{
			fmt.Sprintf("%d jackpots. Rare, but they happen.", input.Jackpots),
			fmt.Sprintf("Every die lined up %d times out of %d.", input.Jackpots, input.Rolls),
			"A few jackpots slipped through. Roll again?",
		}
	}

	return &GetRunResultMessageOutput{
		Title:   title,
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil || input.Err == nil {
		return nil, errors.New("input cannot be nil")
	}

	err := input.Err
	switch {
	case errors.Is(err, dice.ErrDuplicateFace):
		return &GetErrorMessageOutput{
			Title:   "Duplicate Face",
			Message: "Each face can only appear once on a die.",
		}, nil
	case errors.Is(err, dice.ErrUnknownFace):
		return &GetErrorMessageOutput{
			Title:   "Unknown Face",
			Message: "A weight names a face the die doesn't have.",
		}, nil
	case errors.Is(err, dice.ErrInvalidWeight):
		return &GetErrorMessageOutput{
			Title:   "Invalid Weight",
			Message: "Weights must be non-negative numbers, like `6=10,1=0.5`, and at least one must be above zero.",
		}, nil
	case errors.Is(err, dice.ErrInvalidInputType):
		return &GetErrorMessageOutput{
			Title:   "Invalid Faces",
			Message: "Faces are a comma separated list, like `1,2,3,4,5,6` or `heads,tails`.",
		}, nil
	case errors.Is(err, simulation.ErrTooManyDice),
		errors.Is(err, simulation.ErrTooManyRolls),
		errors.Is(err, simulation.ErrInvalidRolls),
		errors.Is(err, simulation.ErrNoDice):
		return &GetErrorMessageOutput{
			Title:   "Can't Roll That",
			Message: err.Error(),
		}, nil
	case errors.Is(err, simulation.ErrRunNotFound):
		return &GetErrorMessageOutput{
			Title:   "Run Not Found",
			Message: "I couldn't find that run. Try `/montecarlo history`.",
		}, nil
	}

	messages := []string{
		"Something went wrong rolling those dice.",
		"The dice fell off the table. Try again?",
		"Well, that didn't work. Try again in a moment.",
	}

	return &GetErrorMessageOutput{
		Title:   "Error",
		Message: s.pick(messages),
	}, nil
}

// pick returns a random message
func (s *service) pick(messages []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return messages[s.rand.Intn(len(messages))]
}
