package recipe

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"sync"
	"time"
)

// Upstream records carry at most 20 numbered ingredient/measure pairs.
const maxIngredientSlots = 20

// Labels attached to every normalized recipe. The cooking metrics are
// estimates, not source data.
var estimatedLabels = []string{"estimated", "api"}

var (
	stepMarkerRe = regexp.MustCompile(`(?i)^STEP \d+$`)
	listMarkerRe = regexp.MustCompile(`^\d+[.)]\s*`)
)

// Normalizer reshapes raw upstream records into canonical recipes. The
// upstream source provides no calorie or timing data, so those fields are
// estimated from the supplied random source on every call; repeated
// normalization of the same record yields different estimates.
type Normalizer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewNormalizer creates a Normalizer backed by rng. A nil rng gets a
// time-seeded source; tests pass a fixed seed instead.
func NewNormalizer(rng *rand.Rand) *Normalizer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Normalizer{rng: rng}
}

// Normalize converts a raw upstream record into a canonical recipe. A nil
// record normalizes to nil; there are no error conditions.
func (n *Normalizer) Normalize(rec SourceRecord) *Recipe {
	if rec == nil {
		return nil
	}

	ingredients := parseIngredients(rec)
	steps := parseSteps(rec["strInstructions"])

	return &Recipe{
		ID:          rec["idMeal"],
		Title:       rec["strMeal"],
		Image:       rec["strMealThumb"],
		Ingredients: ingredients,
		Steps:       steps,
		Calories:    400 + n.intn(400),
		PrepMinutes: 15 + n.intn(20),
		CookMinutes: 20 + n.intn(40),
		Labels:      estimatedLabels,
		Category:    rec["strCategory"],
		Area:        rec["strArea"],
	}
}

func (n *Normalizer) intn(limit int) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.rng.Intn(limit)
}

// parseIngredients walks the numbered strIngredientN/strMeasureN pairs in
// ascending order. A pair is kept iff its name is non-blank after trimming;
// gaps in the numbering are skipped.
func parseIngredients(rec SourceRecord) []Ingredient {
	ingredients := []Ingredient{}
	for i := 1; i <= maxIngredientSlots; i++ {
		name := strings.TrimSpace(rec[fmt.Sprintf("strIngredient%d", i)])
		if name == "" {
			continue
		}
		amount := strings.TrimSpace(rec[fmt.Sprintf("strMeasure%d", i)])
		ingredients = append(ingredients, Ingredient{Name: name, Amount: amount})
	}
	return ingredients
}

// parseSteps splits a freeform instructions blob into trimmed step lines.
// Blank lines and bare "STEP n" markers are dropped, and a single leading
// "1. " or "1) " list marker is stripped from each remaining line.
func parseSteps(instructions string) []string {
	steps := []string{}
	for _, line := range strings.Split(strings.ReplaceAll(instructions, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || stepMarkerRe.MatchString(line) {
			continue
		}
		steps = append(steps, listMarkerRe.ReplaceAllString(line, ""))
	}
	return steps
}
