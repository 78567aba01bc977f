package catalog

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

var ErrUnknownField = errors.New("unknown field")

type Field int

const (
	FieldTitle Field = iota + 1
	FieldDirector
	FieldGenre
	FieldYear
)

type fieldDef struct {
	name    string
	key     func(Movie) string
	compare func(a, b Movie) int
	matcher func(value string) (func(Movie) bool, error)
}

var fieldDefs = [...]fieldDef{
	FieldTitle: {
		name:    "Title",
		key:     func(m Movie) string { return m.Title },
		compare: func(a, b Movie) int { return strings.Compare(a.Title, b.Title) },
		matcher: func(value string) (func(Movie) bool, error) {
			return func(m Movie) bool { return m.Title == value }, nil
		},
	},
	FieldDirector: {
		name:    "Director",
		key:     func(m Movie) string { return m.Director },
		compare: func(a, b Movie) int { return strings.Compare(a.Director, b.Director) },
		matcher: func(value string) (func(Movie) bool, error) {
			return func(m Movie) bool { return m.Director == value }, nil
		},
	},
	// Genres order by name, not by declaration order.
	FieldGenre: {
		name:    "Genre",
		key:     func(m Movie) string { return m.Genre.String() },
		compare: func(a, b Movie) int { return strings.Compare(a.Genre.String(), b.Genre.String()) },
		matcher: func(value string) (func(Movie) bool, error) {
			g, err := ParseGenre(value)
			if err != nil {
				return nil, err
			}
			return func(m Movie) bool { return m.Genre == g }, nil
		},
	},
	FieldYear: {
		name:    "Year",
		key:     func(m Movie) string { return strconv.Itoa(m.Year) },
		compare: func(a, b Movie) int { return cmp.Compare(a.Year, b.Year) },
		matcher: func(value string) (func(Movie) bool, error) {
			year, err := ParseYear(value)
			if err != nil {
				return nil, err
			}
			return func(m Movie) bool { return m.Year == year }, nil
		},
	},
}

func Fields() []Field {
	return []Field{FieldTitle, FieldDirector, FieldGenre, FieldYear}
}

func (f Field) Valid() bool {
	return f >= FieldTitle && f <= FieldYear
}

func (f Field) def() fieldDef {
	if !f.Valid() {
		panic(fmt.Sprintf("catalog: invalid field %d", int(f)))
	}
	return fieldDefs[f]
}

func (f Field) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldDefs[f].name
}

func ParseField(s string) (Field, error) {
	token := strings.TrimSpace(s)
	for _, f := range Fields() {
		if strings.EqualFold(fieldDefs[f].name, token) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, s)
}

func (f Field) Key(m Movie) string {
	return f.def().key(m)
}

func (f Field) Compare(a, b Movie) int {
	return f.def().compare(a, b)
}

func (f Field) Matcher(value string) (func(Movie) bool, error) {
	return f.def().matcher(value)
}

func (f *Field) UnmarshalText(text []byte) error {
	parsed, err := ParseField(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

func distinctKeys(movies []Movie, f Field) []string {
	seen := make(map[string]bool)
	var keys []string
	for _, m := range movies {
		k := f.Key(m)
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys
}
