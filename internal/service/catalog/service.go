package catalog

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/zhouzirui/pokedex/backend/internal/model/pokemon"
)

// DefaultIconURLTemplate is the sprite URL used by IconURL; {name} is replaced.
const DefaultIconURLTemplate = "https://img.pokemondb.net/sprites/silver/normal/{name}.png"

// Publisher receives records whose selection was toggled.
type Publisher interface {
	Publish(p pokemon.Pokemon)
}

// ListResult is the listing payload.
type ListResult struct {
	Page         int               `json:"page"`
	PageSize     int               `json:"page_size"`
	TotalItems   int               `json:"total_items"`
	TotalPages   int               `json:"total_pages"`
	SortBy       string            `json:"sort_by"`
	Order        string            `json:"order"`
	TypesFilter  []string          `json:"types_filter"`
	NextPage     *string           `json:"next_page"`
	PreviousPage *string           `json:"previous_page"`
	Pokemons     []pokemon.Pokemon `json:"pokemons"`
}

// Service runs catalog queries and mutations against a pokemon.Store.
type Service struct {
	store        pokemon.Store
	publishers   []Publisher
	iconTemplate string
}

// Option customises a Service.
type Option func(*Service)

// WithPublisher notifies p after every successful toggle. It may be given more than once.
func WithPublisher(p Publisher) Option {
	return func(s *Service) {
		if p != nil {
			s.publishers = append(s.publishers, p)
		}
	}
}

// WithIconTemplate overrides DefaultIconURLTemplate.
func WithIconTemplate(template string) Option {
	return func(s *Service) {
		if template != "" {
			s.iconTemplate = template
		}
	}
}

// NewService builds a catalog service over store.
func NewService(store pokemon.Store, opts ...Option) *Service {
	s := &Service{store: store, iconTemplate: DefaultIconURLTemplate}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List validates query, then filters, sorts and paginates the store. base is the
// absolute request URL without its query and is used for navigation links.
func (s *Service) List(_ context.Context, query url.Values, base *url.URL) (ListResult, error) {
	var result ListResult
	err := s.store.View(func(items []pokemon.Pokemon) error {
		params, err := ParseListParams(query)
		if err != nil {
			return err
		}

		if len(params.Types) > 0 {
			if invalid := InvalidTypes(params.Types, AvailableTypes(items)); len(invalid) > 0 {
				return invalidArgument(fmt.Sprintf("Invalid type(s): %s.", strings.Join(invalid, ", ")))
			}
		}

		filtered := FilterByType(items, params.Types)
		SortByNumber(filtered, params.Order)

		page := Paginate(filtered, params.Page, params.PageSize)
		if len(page) == 0 && params.Page != 1 {
			return &Error{Kind: ErrOutOfRange, Message: "Page number out of range."}
		}

		pokemons := make([]pokemon.Pokemon, len(page))
		for i, item := range page {
			pokemons[i] = item.Clone()
		}

		totalPages := TotalPages(len(filtered), params.PageSize)
		result = ListResult{
			Page:        params.Page,
			PageSize:    params.PageSize,
			TotalItems:  len(filtered),
			TotalPages:  totalPages,
			SortBy:      params.SortBy,
			Order:       params.Order,
			TypesFilter: params.Types,
			Pokemons:    pokemons,
		}
		if params.Page < totalPages {
			next := BuildPageURL(base, query, params.Page+1)
			result.NextPage = &next
		}
		if params.Page > 1 {
			prev := BuildPageURL(base, query, params.Page-1)
			result.PreviousPage = &prev
		}
		return nil
	})
	if err != nil {
		return ListResult{}, err
	}
	return result, nil
}

// ToggleSelection flips the selected flag of the record with the given number
// and returns the updated record.
func (s *Service) ToggleSelection(_ context.Context, number int) (pokemon.Pokemon, error) {
	var updated pokemon.Pokemon
	err := s.store.Update(func(items []pokemon.Pokemon) error {
		for i := range items {
			if items[i].Number == number {
				items[i].Selected = !items[i].Selected
				updated = items[i].Clone()
				return nil
			}
		}
		return ErrNotFound
	})
	if err != nil {
		return pokemon.Pokemon{}, err
	}

	log.Printf("[catalog] pokemon %d selected=%t", updated.Number, updated.Selected)
	for _, p := range s.publishers {
		p.Publish(updated)
	}
	return updated, nil
}

// Types returns every type present in the store, normalized and sorted.
func (s *Service) Types(_ context.Context) ([]string, error) {
	var types []string
	err := s.store.View(func(items []pokemon.Pokemon) error {
		types = SortedTypes(AvailableTypes(items))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return types, nil
}

// IconURL returns the sprite URL for name. name is not checked against the store.
func (s *Service) IconURL(name string) string {
	return strings.ReplaceAll(s.iconTemplate, "{name}", name)
}

// Count returns the number of records in the store.
func (s *Service) Count() int {
	return s.store.Len()
}
