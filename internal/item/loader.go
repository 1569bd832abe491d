package item

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/CraftQuest_Go/internal/domain"
)

// Sentinel errors for item loader
var (
	ErrDuplicateItem = errors.New("duplicate item")

	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config represents the JSON configuration for items
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Items []domain.Item `json:"items"`
}

// Loader handles loading and validating item configuration
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
}

type itemLoader struct {
	validate *validator.Validate
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &itemLoader{
		validate: validator.New(),
	}
}

// Load reads and parses an items JSON file
func (l *itemLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	return &config, nil
}

// Validate checks the item configuration for errors
func (l *itemLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}

	if len(config.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoItemsDefined)
	}

	seen := make(map[domain.ItemKey]bool, len(config.Items))
	for i := range config.Items {
		def := &config.Items[i]

		if err := l.validate.Struct(def); err != nil {
			return fmt.Errorf(ErrFmtItemInvalid, ErrInvalidConfig, i, def.Key(), describeValidationError(err))
		}

		if seen[def.Key()] {
			return fmt.Errorf(ErrFmtItemDuplicate, ErrDuplicateItem, def.Key())
		}
		seen[def.Key()] = true
	}

	return nil
}

// describeValidationError flattens validator errors into "field:tag" pairs
func describeValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	parts := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		parts = append(parts, strings.ToLower(e.Field())+":"+e.Tag())
	}
	return strings.Join(parts, ", ")
}
