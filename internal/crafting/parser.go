package crafting

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/CraftQuest_Go/internal/domain"
)

// Parser tokenizes ingredient specs embedded in item metadata.
// It checks shape only; resolving (kind, id) against a registry is the catalog's job.
type Parser struct {
	format string
	cache  *expirable.LRU[string, []domain.Ingredient]
}

// NewParser creates a parser for the given format (FormatAuto, FormatColon or FormatLegacy)
func NewParser(format string) (*Parser, error) {
	if format == "" {
		format = FormatAuto
	}
	switch format {
	case FormatAuto, FormatColon, FormatLegacy:
	default:
		return nil, fmt.Errorf(ErrFmtUnknownFormat, format)
	}
	return &Parser{
		format: format,
		cache:  expirable.NewLRU[string, []domain.Ingredient](TokenCacheSize, nil, TokenCacheTTL),
	}, nil
}

// Format returns the configured spec format
func (p *Parser) Format() string {
	return p.format
}

// Parse splits spec into ingredients. Any bad token fails the whole spec.
// The returned slice is owned by the caller.
func (p *Parser) Parse(spec string) ([]domain.Ingredient, error) {
	if cached, ok := p.cache.Get(spec); ok {
		return cloneIngredients(cached), nil
	}

	tokens := strings.Fields(spec)
	if len(tokens) == 0 {
		return nil, fmt.Errorf(ErrFmtEmptySpec, domain.ErrMalformedIngredient)
	}

	var (
		ingredients []domain.Ingredient
		err         error
	)
	if p.useLegacy(tokens) {
		ingredients, err = parseTriplets(tokens)
	} else {
		ingredients, err = parseColonTokens(tokens)
	}
	if err != nil {
		return nil, err
	}

	p.cache.Add(spec, ingredients)
	return cloneIngredients(ingredients), nil
}

func (p *Parser) useLegacy(tokens []string) bool {
	switch p.format {
	case FormatLegacy:
		return true
	case FormatColon:
		return false
	}
	for _, t := range tokens {
		if strings.Contains(t, tokenSeparator) {
			return false
		}
	}
	return true
}

func parseColonTokens(tokens []string) ([]domain.Ingredient, error) {
	out := make([]domain.Ingredient, 0, len(tokens))
	for _, token := range tokens {
		parts := strings.Split(token, tokenSeparator)
		if len(parts) != tokenFields {
			return nil, fmt.Errorf(ErrFmtTokenShape, domain.ErrMalformedIngredient, token)
		}
		ing, err := parseFields(parts[0], parts[1], parts[2], token)
		if err != nil {
			return nil, err
		}
		out = append(out, ing)
	}
	return out, nil
}

func parseTriplets(tokens []string) ([]domain.Ingredient, error) {
	if len(tokens)%tokenFields != 0 {
		return nil, fmt.Errorf(ErrFmtTripletShape, domain.ErrMalformedIngredient, len(tokens))
	}
	out := make([]domain.Ingredient, 0, len(tokens)/tokenFields)
	for i := 0; i < len(tokens); i += tokenFields {
		source := strings.Join(tokens[i:i+tokenFields], " ")
		ing, err := parseFields(tokens[i], tokens[i+1], tokens[i+2], source)
		if err != nil {
			return nil, err
		}
		out = append(out, ing)
	}
	return out, nil
}

func parseFields(kindToken, idToken, countToken, source string) (domain.Ingredient, error) {
	kind, ok := domain.ParseItemKind(kindToken)
	if !ok {
		if hint := SuggestKind(kindToken); hint != "" {
			return domain.Ingredient{}, fmt.Errorf(ErrFmtUnknownKindHint, domain.ErrMalformedIngredient, kindToken, source, hint)
		}
		return domain.Ingredient{}, fmt.Errorf(ErrFmtUnknownKind, domain.ErrMalformedIngredient, kindToken, source)
	}

	id, err := strconv.Atoi(idToken)
	if err != nil || id < 1 {
		return domain.Ingredient{}, fmt.Errorf(ErrFmtBadID, domain.ErrMalformedIngredient, idToken, source)
	}

	count, err := strconv.Atoi(countToken)
	if err != nil || count < 1 {
		return domain.Ingredient{}, fmt.Errorf(ErrFmtBadCount, domain.ErrMalformedIngredient, countToken, source)
	}

	return domain.Ingredient{Kind: kind, ID: id, Count: count}, nil
}

// SuggestKind returns the closest kind token to a misspelt one, or "" when nothing is close
func SuggestKind(token string) string {
	token = strings.ToLower(token)
	best, bestDist := "", -1
	for _, k := range domain.ItemKinds {
		cand := string(k)
		if token == cand {
			return cand
		}
		dist := levenshtein.ComputeDistance(token, cand)
		if dist > levenshteinLimit(len(cand)) {
			continue
		}
		if bestDist == -1 || dist < bestDist {
			best, bestDist = cand, dist
		}
	}
	return best
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func cloneIngredients(in []domain.Ingredient) []domain.Ingredient {
	out := make([]domain.Ingredient, len(in))
	copy(out, in)
	return out
}
