package experiments

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher"
)

// MatchUp pairs two agents by ID. Green and Red swap sides on every other game.
type MatchUp struct {
	Green int `yaml:"green"`
	Red   int `yaml:"red"`
}

// Setup describes a series of bot-vs-bot games.
type Setup struct {
	Name         string                `yaml:"name"`
	Games        int                   `yaml:"games"` // Per match up
	BoardSize    int                   `yaml:"board_size"`
	OpeningPlies int                   `yaml:"opening_plies"`
	Seed         uint64                `yaml:"seed"`
	Agents       []metrics.AgentConfig `yaml:"agents"`
	MatchUps     []MatchUp             `yaml:"matchups"`
}

// LoadSetup reads a YAML setup file.
func LoadSetup(path string) (*Setup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read setup: %w", err)
	}
	setup, err := ParseSetup(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return setup, nil
}

// ParseSetup decodes and validates a YAML setup, filling in defaults.
func ParseSetup(data []byte) (*Setup, error) {
	setup := &Setup{}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(setup); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse setup: %w", err)
	}
	if err := setup.validate(); err != nil {
		return nil, err
	}
	return setup, nil
}

func (s *Setup) validate() error {
	if s.Name == "" {
		return errors.New("setup needs a name")
	}
	if s.Games == 0 {
		s.Games = 1
	}
	if s.BoardSize == 0 {
		s.BoardSize = game.DefaultBoardSize
	}
	switch {
	case s.Games < 0:
		return fmt.Errorf("games must be positive, got %d", s.Games)
	case s.BoardSize < game.MinBoardSize || s.BoardSize%2 != 0:
		return fmt.Errorf("board size must be even and at least %d, got %d", game.MinBoardSize, s.BoardSize)
	case s.OpeningPlies < 0:
		return fmt.Errorf("opening plies must not be negative, got %d", s.OpeningPlies)
	case len(s.MatchUps) == 0:
		return errors.New("setup needs at least one match up")
	}

	ids := make(map[int]bool, len(s.Agents))
	for _, agent := range s.Agents {
		if ids[agent.ID] {
			return fmt.Errorf("duplicate agent id %d", agent.ID)
		}
		ids[agent.ID] = true
		if _, err := NewBot(agent); err != nil {
			return fmt.Errorf("agent %d: %w", agent.ID, err)
		}
	}
	for _, m := range s.MatchUps {
		if !ids[m.Green] || !ids[m.Red] {
			return fmt.Errorf("match up %d vs %d names an unknown agent", m.Green, m.Red)
		}
	}
	return nil
}

// Agent returns the config with the given ID.
func (s *Setup) Agent(id int) (metrics.AgentConfig, bool) {
	for _, agent := range s.Agents {
		if agent.ID == id {
			return agent, true
		}
	}
	return metrics.AgentConfig{}, false
}

// NewBot builds the bot an agent config describes.
func NewBot(config metrics.AgentConfig) (*searcher.Bot, error) {
	algorithm, err := searcher.ParseAlgorithm(config.Algorithm)
	if err != nil {
		return nil, err
	}

	options := []searcher.Option{}
	if config.Heuristic != "" {
		heuristic, err := game.ParseHeuristic(config.Heuristic)
		if err != nil {
			return nil, err
		}
		options = append(options, searcher.WithHeuristic(heuristic))
	}
	switch {
	case config.Difficulty != "":
		difficulty, err := searcher.ParseDifficulty(config.Difficulty)
		if err != nil {
			return nil, err
		}
		options = append(options, searcher.WithDepth(difficulty.Depth()))
	case config.Depth < 0:
		return nil, fmt.Errorf("depth must not be negative, got %d", config.Depth)
	case config.Depth > 0:
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if config.Goroutines < 0 {
		return nil, fmt.Errorf("goroutines must not be negative, got %d", config.Goroutines)
	}
	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}

	return searcher.NewBot(algorithm, options...), nil
}
