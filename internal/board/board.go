package board

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/WillyV3/pilotprogress/internal/progress"
)

const (
	boardFileName = ".pilotprogress.yaml"

	// HoursWeightKey names the hours metric in the overall weight map.
	HoursWeightKey = "hours"
)

var (
	validate = validator.New()

	// taskNamespace seeds derived task IDs so they stay stable across runs.
	taskNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/WillyV3/pilotprogress/tasks"))
)

// Task is a single checklist item.
type Task struct {
	ID    string `yaml:"id,omitempty" validate:"omitempty,max=128,ne=flyingHours"`
	Title string `yaml:"title" validate:"required"`
}

// Category groups tasks that share one weight in the overall score.
type Category struct {
	Key    string  `yaml:"key" validate:"required,ne=hours,ne=overall"`
	Name   string  `yaml:"name" validate:"required"`
	Weight float64 `yaml:"weight" validate:"gte=0,lte=1"`
	Tasks  []Task  `yaml:"tasks" validate:"dive"`
}

// HoursGoal configures the hours metric.
type HoursGoal struct {
	Name   string  `yaml:"name"`
	Target float64 `yaml:"target" validate:"gt=0"`
	Weight float64 `yaml:"weight" validate:"gte=0,lte=1"`
}

// Board is the full tracker layout: categories, hours goal and weights.
type Board struct {
	Title      string     `yaml:"title"`
	Version    string     `yaml:"version"`
	Categories []Category `yaml:"categories" validate:"required,min=1,dive"`
	Hours      HoursGoal  `yaml:"hours"`
}

// DefaultPath returns ~/.pilotprogress.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, boardFileName), nil
}

// Load reads and validates the board at path. A missing file yields the
// default board.
func Load(path string) (*Board, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read board: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML board, fills in derived task IDs and validates it.
func Parse(data []byte) (*Board, error) {
	var b Board
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("decode board: %w", err)
	}
	if b.Hours.Target == 0 {
		b.Hours.Target = float64(progress.DefaultHoursTarget)
	}
	b.assignIDs()
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

// WriteFile saves the board as YAML.
func WriteFile(path string, b *Board) error {
	data, err := yaml.Marshal(b)
	if err != nil {
		return fmt.Errorf("encode board: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

func (b *Board) assignIDs() {
	for ci := range b.Categories {
		c := &b.Categories[ci]
		for ti := range c.Tasks {
			if strings.TrimSpace(c.Tasks[ti].ID) == "" {
				c.Tasks[ti].ID = DeriveTaskID(c.Key, c.Tasks[ti].Title)
			}
		}
	}
}

// DeriveTaskID returns a stable ID for a task that has none.
func DeriveTaskID(categoryKey, title string) string {
	return uuid.NewSHA1(taskNamespace, []byte(categoryKey+"/"+title)).String()[:8]
}

// Validate checks field constraints plus board-wide uniqueness rules.
func (b *Board) Validate() error {
	if err := validate.Struct(b); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid board: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid board: %w", err)
	}

	keys := map[string]bool{}
	ids := map[string]string{}
	for _, c := range b.Categories {
		if keys[c.Key] {
			return fmt.Errorf("invalid board: duplicate category key %q", c.Key)
		}
		keys[c.Key] = true
		for _, t := range c.Tasks {
			if owner, ok := ids[t.ID]; ok {
				return fmt.Errorf("invalid board: task id %q used in %q and %q", t.ID, owner, c.Key)
			}
			ids[t.ID] = c.Key
		}
	}
	return nil
}

// Weights maps each category key and HoursWeightKey to its weight.
func (b *Board) Weights() map[string]float64 {
	w := make(map[string]float64, len(b.Categories)+1)
	for _, c := range b.Categories {
		w[c.Key] = c.Weight
	}
	w[HoursWeightKey] = b.Hours.Weight
	return w
}

// WeightsBalanced reports whether the weights sum to one.
func (b *Board) WeightsBalanced() bool {
	var sum float64
	for _, w := range b.Weights() {
		sum += w
	}
	return math.Abs(sum-1) < 1e-9
}

// HoursTarget returns the hours target as a progress value.
func (b *Board) HoursTarget() progress.Hours {
	return progress.Hours(b.Hours.Target)
}

// TaskCount returns the number of tasks across all categories.
func (b *Board) TaskCount() int {
	n := 0
	for _, c := range b.Categories {
		n += len(c.Tasks)
	}
	return n
}
