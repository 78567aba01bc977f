package query

import (
	"errors"
	"fmt"
	"strings"

	"reel/internal/catalog"
)

var (
	ErrNotFilterable = errors.New("field cannot be used as a filter")
	ErrBadCriterion  = errors.New("filter must look like field=value")
)

type Criterion struct {
	Field catalog.Field
	Value string
}

func Filterable(f catalog.Field) bool {
	return f == catalog.FieldDirector || f == catalog.FieldGenre || f == catalog.FieldYear
}

func FilterFields() []catalog.Field {
	return []catalog.Field{catalog.FieldYear, catalog.FieldGenre, catalog.FieldDirector}
}

func ParseCriterion(s string) (Criterion, error) {
	name, value, ok := strings.Cut(s, "=")
	if !ok || strings.TrimSpace(value) == "" {
		return Criterion{}, fmt.Errorf("%w: %q", ErrBadCriterion, s)
	}

	field, err := catalog.ParseField(name)
	if err != nil {
		return Criterion{}, err
	}

	c := Criterion{Field: field, Value: strings.TrimSpace(value)}
	if _, err := c.matcher(); err != nil {
		return Criterion{}, err
	}
	return c, nil
}

func (c *Criterion) UnmarshalText(text []byte) error {
	parsed, err := ParseCriterion(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func MatchAll(criteria []Criterion) (func(catalog.Movie) bool, error) {
	matchers := make([]func(catalog.Movie) bool, 0, len(criteria))
	for _, c := range criteria {
		m, err := c.matcher()
		if err != nil {
			return nil, err
		}
		matchers = append(matchers, m)
	}
	return func(m catalog.Movie) bool {
		for _, match := range matchers {
			if !match(m) {
				return false
			}
		}
		return true
	}, nil
}

func (c Criterion) matcher() (func(catalog.Movie) bool, error) {
	if !Filterable(c.Field) {
		return nil, fmt.Errorf("%w: %s", ErrNotFilterable, c.Field)
	}
	return c.Field.Matcher(c.Value)
}

func (c Criterion) String() string {
	return c.Field.String() + ": " + c.Value
}

// Filter removes from s every movie whose field differs from value. value is
// parsed first, so a bad value leaves s untouched.
func Filter(s *catalog.Store, field catalog.Field, value string) (int, error) {
	match, err := Criterion{Field: field, Value: value}.matcher()
	if err != nil {
		return 0, err
	}
	return s.KeepMatching(match), nil
}
