package service

import (
	_ "embed"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"sync"
	"time"
)

// DistractorCount is the number of wrong options in every question.
const DistractorCount = 3

//go:embed data/distractors.txt
var distractorData string

var defaultPool = parsePool(distractorData)

func parsePool(data string) []string {
	pool := make([]string, 0, 256)
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		pool = append(pool, line)
	}
	return pool
}

// DefaultDistractorPool returns a copy of the embedded pool.
func DefaultDistractorPool() []string {
	return append([]string(nil), defaultPool...)
}

var (
	spaceRun         = regexp.MustCompile(`\s+`)
	trailingPunctRun = regexp.MustCompile(`[;.,!?:]+$`)
)

// Normalize lowercases, trims, collapses whitespace and strips trailing punctuation.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = spaceRun.ReplaceAllString(s, " ")
	return trailingPunctRun.ReplaceAllString(s, "")
}

// TrueMeanings is the normalized set of every accepted meaning of a headword.
func TrueMeanings(correct string, alternates []string) map[string]struct{} {
	set := make(map[string]struct{}, len(alternates)+1)
	if norm := Normalize(correct); norm != "" {
		set[norm] = struct{}{}
	}
	for _, m := range alternates {
		if norm := Normalize(m); norm != "" {
			set[norm] = struct{}{}
		}
	}
	return set
}

type DistractorGenerator struct {
	pool []string

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewDistractorGenerator(pool []string, seed int64) *DistractorGenerator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &DistractorGenerator{
		pool: pool,
		rnd:  rand.New(rand.NewSource(seed)),
	}
}

// Build returns the shuffled options and the index of correct among them.
// Exactly DistractorCount options are wrong and none of them normalizes into
// meanings; placeholders fill in when the pool runs dry.
func (g *DistractorGenerator) Build(correct string, meanings map[string]struct{}) ([]string, int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	taken := make(map[string]struct{}, len(meanings)+DistractorCount+1)
	for m := range meanings {
		taken[m] = struct{}{}
	}
	taken[Normalize(correct)] = struct{}{}

	wrong := make([]string, 0, DistractorCount+1)
	for _, i := range g.rnd.Perm(len(g.pool)) {
		if len(wrong) == DistractorCount {
			break
		}
		candidate := strings.TrimSpace(g.pool[i])
		norm := Normalize(candidate)
		if norm == "" {
			continue
		}
		if _, ok := taken[norm]; ok {
			continue
		}
		taken[norm] = struct{}{}
		wrong = append(wrong, candidate)
	}

	for n := len(wrong) + 1; len(wrong) < DistractorCount; n++ {
		filler := fmt.Sprintf("Other wrong translation %d", n)
		if _, ok := taken[Normalize(filler)]; ok {
			continue
		}
		wrong = append(wrong, filler)
	}

	options := append(wrong, correct)
	g.rnd.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	correctIndex := 0
	for i, o := range options {
		if o == correct {
			correctIndex = i
			break
		}
	}

	return options, correctIndex
}
