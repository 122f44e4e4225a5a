package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/KirkDiggler/montecarlo/internal/models"
	"github.com/KirkDiggler/montecarlo/internal/services/messaging"
	"github.com/KirkDiggler/montecarlo/internal/services/simulation"
	"github.com/bwmarrin/discordgo"
)

const (
	defaultDiceOption  = 2
	defaultRollsOption = 1000

	// Discord accepts at most this many dice per roll; the service may allow fewer
	maxDiceOption = 100

	// how many recent runs a short ID is matched against
	prefixSearchLimit = 50
)

// MonteCarloCommand handles the /montecarlo command
type MonteCarloCommand struct {
	BaseCommand
	simulationService simulation.Service
	messagingService  messaging.Service
}

// NewMonteCarloCommand creates a new montecarlo command handler
func NewMonteCarloCommand(simulationService simulation.Service, messagingService messaging.Service) *MonteCarloCommand {
	minDice := 1.0
	maxDice := float64(maxDiceOption)
	minRolls := 0.0

	return &MonteCarloCommand{
		BaseCommand: BaseCommand{
			Name:        "montecarlo",
			Description: "Roll weighted dice many times and look at the odds",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "roll",
					Description: "Roll a set of identical dice",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "faces",
							Description: "Comma separated faces, e.g. 1,2,3,4,5,6",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "dice",
							Description: "Number of dice (default 2)",
							MinValue:    &minDice,
							MaxValue:    maxDice,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "rolls",
							Description: "Number of rolls (default 1000)",
							MinValue:    &minRolls,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "weights",
							Description: "Face weights, e.g. 6=10,1=0.5",
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "seed",
							Description: "Random seed to reproduce a run",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "history",
					Description: "Show recent runs",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "show",
					Description: "Show a stored run",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "id",
							Description: "Run ID, or its first characters",
							Required:    true,
						},
					},
				},
			},
		},
		simulationService: simulationService,
		messagingService:  messagingService,
	}
}

// Handle processes a Discord interaction for the montecarlo command
func (c *MonteCarloCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	sub := data.Options[0]
	options := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(sub.Options))
	for _, opt := range sub.Options {
		options[opt.Name] = opt
	}

	switch sub.Name {
	case "roll":
		return c.handleRoll(s, i, options)
	case "history":
		return c.handleHistory(s, i)
	case "show":
		return c.handleShow(s, i, options)
	default:
		return errors.New("unknown subcommand")
	}
}

// handleRoll handles the roll subcommand
func (c *MonteCarloCommand) handleRoll(s *discordgo.Session, i *discordgo.InteractionCreate, options map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	input, err := rollInput(options)
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, err)
	}

	output, err := c.simulationService.RunSimulation(ctx, input)
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, err)
	}

	return c.respondWithRun(ctx, s, i, output.Run)
}

// handleHistory handles the history subcommand
func (c *MonteCarloCommand) handleHistory(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	output, err := c.simulationService.ListRuns(ctx, &simulation.ListRunsInput{})
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, err)
	}

	return RespondWithEmbed(s, i, renderHistory(output.Runs))
}

// handleShow handles the show subcommand
func (c *MonteCarloCommand) handleShow(s *discordgo.Session, i *discordgo.InteractionCreate, options map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	id := ""
	if opt, ok := options["id"]; ok {
		id = strings.TrimSpace(opt.StringValue())
	}

	run, err := c.findRun(ctx, id)
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, err)
	}

	return c.respondWithRun(ctx, s, i, run)
}

// HandleRerun plays a stored run again in response to a Roll Again button
func (c *MonteCarloCommand) HandleRerun(s *discordgo.Session, i *discordgo.InteractionCreate, runID string) error {
	ctx := context.Background()

	output, err := c.simulationService.RerunSimulation(ctx, &simulation.RerunSimulationInput{RunID: runID})
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, err)
	}

	return c.respondWithRun(ctx, s, i, output.Run)
}

// findRun looks a run up by full ID, falling back to a unique prefix among recent runs
func (c *MonteCarloCommand) findRun(ctx context.Context, id string) (*models.Run, error) {
	output, err := c.simulationService.GetRun(ctx, &simulation.GetRunInput{RunID: id})
	if err == nil {
		return output.Run, nil
	}
	if !errors.Is(err, simulation.ErrRunNotFound) || id == "" {
		return nil, err
	}

	recent, listErr := c.simulationService.ListRuns(ctx, &simulation.ListRunsInput{Limit: prefixSearchLimit})
	if listErr != nil {
		return nil, listErr
	}

	run, ok := matchRunPrefix(recent.Runs, id)
	if !ok {
		return nil, err
	}
	return run, nil
}

func (c *MonteCarloCommand) respondWithRun(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, run *models.Run) error {
	msg, err := c.messagingService.GetRunResultMessage(ctx, &messaging.GetRunResultMessageInput{
		Name:     run.Name,
		Dice:     len(run.Dice),
		Rolls:    run.Rolls,
		Jackpots: run.Stats.Jackpots,
	})
	if err != nil {
		return err
	}

	embed := renderRun(run, msg.Title, msg.Message)
	return RespondWithEmbedAndButtons(s, i, embed, []discordgo.MessageComponent{rerunButton(run.ID)})
}

func (c *MonteCarloCommand) respondWithServiceError(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, err error) error {
	log.Printf("montecarlo: %v", err)

	msg, msgErr := c.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: err})
	if msgErr != nil {
		return RespondWithError(s, i, "Error", err.Error())
	}
	return RespondWithError(s, i, msg.Title, msg.Message)
}

// rollInput turns the roll subcommand's options into a simulation request
func rollInput(options map[string]*discordgo.ApplicationCommandInteractionDataOption) (*simulation.RunSimulationInput, error) {
	rawFaces := ""
	if opt, ok := options["faces"]; ok {
		rawFaces = opt.StringValue()
	}
	faces, err := parseFaces(rawFaces)
	if err != nil {
		return nil, err
	}

	var weights map[string]float64
	if opt, ok := options["weights"]; ok {
		weights, err = parseWeights(opt.StringValue())
		if err != nil {
			return nil, err
		}
	}

	count := defaultDiceOption
	if opt, ok := options["dice"]; ok {
		n := opt.IntValue()
		if n > maxDiceOption {
			return nil, fmt.Errorf("%w: %d is more than %d", simulation.ErrTooManyDice, n, maxDiceOption)
		}
		count = int(n)
	}
	if count < 1 {
		return nil, fmt.Errorf("%w: dice must be at least 1", simulation.ErrNoDice)
	}

	rolls := defaultRollsOption
	if opt, ok := options["rolls"]; ok {
		rolls = int(opt.IntValue())
	}

	var seed int64
	if opt, ok := options["seed"]; ok {
		seed = opt.IntValue()
	}

	return &simulation.RunSimulationInput{
		Dice:  identicalDice(faces, weights, count),
		Rolls: rolls,
		Seed:  seed,
	}, nil
}

// matchRunPrefix finds the only run whose ID starts with prefix
func matchRunPrefix(runs []*models.Run, prefix string) (*models.Run, bool) {
	var match *models.Run
	for _, run := range runs {
		if !strings.HasPrefix(run.ID, prefix) {
			continue
		}
		if match != nil {
			return nil, false
		}
		match = run
	}
	return match, match != nil
}
