package maze

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// Generator names one maze strategy.
type Generator string

// Supported generators.
const (
	GenRandom            Generator = "random"
	GenRecursiveDivision Generator = "recursive"
	GenPattern           Generator = "pattern"
)

var generatorAliases = map[string]Generator{
	"uniform":            GenRandom,
	"recursive-division": GenRecursiveDivision,
	"division":           GenRecursiveDivision,
	"bars":               GenPattern,
}

// Generators returns the supported generators in presentation order.
func Generators() []Generator {
	return []Generator{GenRandom, GenRecursiveDivision, GenPattern}
}

// ParseGenerator resolves a case-insensitive name or alias.
func ParseGenerator(name string) (Generator, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if gen, ok := generatorAliases[key]; ok {
		return gen, nil
	}
	for _, gen := range Generators() {
		if string(gen) == key {
			return gen, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownGenerator, name)
}

// Generate dispatches to the generator named by gen.
func Generate(gen Generator, g *grid.Grid, start, finish grid.Coord, opts ...Option) (*grid.Grid, error) {
	switch gen {
	case GenRandom:
		return Random(g, start, finish, opts...)
	case GenRecursiveDivision:
		return RecursiveDivision(g, start, finish, opts...)
	case GenPattern:
		return Pattern(g, start, finish, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGenerator, gen)
	}
}
