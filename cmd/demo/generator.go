package main

import (
	"fmt"
	"math/rand"
	"strings"
)

// InputGenerator produces random short structured strings in the shapes the
// demo grammar knows, plus the occasional junk input that matches nothing.
type InputGenerator struct {
	rng *rand.Rand
}

// NewInputGenerator creates a generator with the given seed.
func NewInputGenerator(seed int64) *InputGenerator {
	return &InputGenerator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

var (
	forenames = []string{"Harry", "Hermione", "Ron", "Luna", "Neville", "Ginny", "Albus", "Minerva"}
	surnames  = []string{"Potter", "Granger", "Weasley", "Lovegood", "Longbottom", "Dumbledore", "McGonagall"}
	streets   = []string{"Privet Drive", "Diagon Alley", "Grimmauld Place", "Magnolia Crescent", "Knockturn Alley"}
	cities    = []string{"Little Whinging", "London", "Hogsmeade", "Godric Hollow", "Ottery St Catchpole"}
	junk      = []string{"lowercase noise", "???", "x", "1234 5678 9012"}
)

// Generate produces one random input.
func (g *InputGenerator) Generate() string {
	switch g.rng.Intn(10) {
	case 0, 1, 2:
		return g.fullname()
	case 3, 4, 5:
		return g.address()
	case 6, 7:
		return g.birthday()
	case 8:
		return g.nickname()
	default:
		return junk[g.rng.Intn(len(junk))]
	}
}

// GenerateBatch produces n random inputs.
func (g *InputGenerator) GenerateBatch(n int) []string {
	inputs := make([]string, n)
	for i := range inputs {
		inputs[i] = g.Generate()
	}
	return inputs
}

func (g *InputGenerator) fullname() string {
	parts := []string{forenames[g.rng.Intn(len(forenames))]}
	if g.rng.Intn(3) == 0 {
		parts = append(parts, forenames[g.rng.Intn(len(forenames))])
	}
	parts = append(parts, surnames[g.rng.Intn(len(surnames))])
	return strings.Join(parts, " ")
}

func (g *InputGenerator) address() string {
	street := streets[g.rng.Intn(len(streets))]
	city := cities[g.rng.Intn(len(cities))]
	if g.rng.Intn(2) == 0 {
		return fmt.Sprintf("%d %s %s", 1+g.rng.Intn(200), street, city)
	}
	return street + " " + city
}

func (g *InputGenerator) birthday() string {
	month := 1 + g.rng.Intn(12)
	if g.rng.Intn(8) == 0 {
		// Pattern-valid but calendar-invalid, pruned by the date verifier.
		month = 13
	}
	return fmt.Sprintf("%d-%02d-%02d", 1960+g.rng.Intn(50), month, 1+g.rng.Intn(28))
}

func (g *InputGenerator) nickname() string {
	return fmt.Sprintf("Undesirable No %d", 1+g.rng.Intn(9))
}
