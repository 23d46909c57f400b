// Package selector builds the working set of items for one practice
// session from the catalog.
package selector

import (
	"math/rand"
	"sync"
	"time"

	"github.com/example/kanasensei/internal/catalog"
	"github.com/example/kanasensei/internal/romaji"
	"github.com/example/kanasensei/pkg/models"
)

// Scope is the top-level script filter for a session
type Scope string

const (
	ScopeAll      Scope = "all"
	ScopeHiragana Scope = "hiragana"
	ScopeKatakana Scope = "katakana"
	ScopeKanji    Scope = "kanji"
)

// SetSelection toggles the finer-grained subsets within a scope.
// Extended only applies to katakana.
type SetSelection struct {
	Main     bool `json:"main"`
	Dakuten  bool `json:"dakuten"`
	Yoon     bool `json:"yoon"`
	Extended bool `json:"extended"`
}

// Selector draws randomized sessions from a catalog. Safe for concurrent
// use: the shared random source is guarded, since request handlers call
// into one selector from their own goroutines.
type Selector struct {
	catalog *catalog.Catalog
	mu      sync.Mutex
	rnd     *rand.Rand
}

// New creates a selector with its own random source
func New(c *catalog.Catalog) *Selector {
	return &Selector{
		catalog: c,
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Characters returns the session working set for the given scope and
// subset flags: filtered, de-duplicated by composite identity, uniformly
// shuffled and truncated to maxCount when maxCount > 0. An empty result
// is a valid outcome the caller must surface, not an error.
func (s *Selector) Characters(scope Scope, sets SetSelection, maxCount int) []models.Character {
	types := enabledTypes(scope, sets)
	pool := s.catalog.ByTypes(types...)

	uniq := make(map[string]bool, len(pool))
	chars := make([]models.Character, 0, len(pool))
	for _, c := range pool {
		if uniq[c.Key()] {
			continue
		}
		uniq[c.Key()] = true
		chars = append(chars, c)
	}

	s.mu.Lock()
	s.rnd.Shuffle(len(chars), func(i, j int) {
		chars[i], chars[j] = chars[j], chars[i]
	})
	s.mu.Unlock()
	if maxCount > 0 && len(chars) > maxCount {
		chars = chars[:maxCount]
	}
	return chars
}

// Types expands scope plus subset flags into concrete subtypes. Exposed
// for catalog browsing, which filters without shuffling.
func Types(scope Scope, sets SetSelection) []models.ScriptType {
	return enabledTypes(scope, sets)
}

// enabledTypes expands scope plus subset flags into concrete subtypes
func enabledTypes(scope Scope, sets SetSelection) []models.ScriptType {
	var types []models.ScriptType
	if scope == ScopeKanji {
		return []models.ScriptType{models.ScriptKanji}
	}
	if scope == ScopeHiragana || scope == ScopeAll {
		if sets.Main {
			types = append(types, models.ScriptHiragana)
		}
		if sets.Dakuten {
			types = append(types, models.ScriptHiraganaDakuten, models.ScriptHiraganaHandakuten)
		}
		if sets.Yoon {
			types = append(types, models.ScriptHiraganaYoon)
		}
	}
	if scope == ScopeKatakana || scope == ScopeAll {
		if sets.Main {
			types = append(types, models.ScriptKatakana)
		}
		if sets.Dakuten {
			types = append(types, models.ScriptKatakanaDakuten, models.ScriptKatakanaHandakuten)
		}
		if sets.Yoon {
			types = append(types, models.ScriptKatakanaYoon)
		}
		if sets.Extended {
			types = append(types, models.ScriptKatakanaExtended)
		}
	}
	return types
}

// Pairs builds the data source for the hiragana-katakana matching mode:
// hiragana and katakana items are grouped by normalized romanization,
// only romanizations present on both sides survive, and each romanization
// contributes exactly one pair (first representative per script). Pairs
// are shuffled and truncated to numPairs when numPairs > 0.
func (s *Selector) Pairs(hiraganaSets, katakanaSets SetSelection, numPairs int) []models.KanaPair {
	hira := s.catalog.ByTypes(enabledTypes(ScopeHiragana, hiraganaSets)...)
	kata := s.catalog.ByTypes(enabledTypes(ScopeKatakana, katakanaSets)...)

	hiraByRomaji := make(map[string]models.Character, len(hira))
	for _, h := range hira {
		key := romaji.Normalize(h.Romaji)
		if _, ok := hiraByRomaji[key]; !ok {
			hiraByRomaji[key] = h
		}
	}

	var pairs []models.KanaPair
	paired := make(map[string]bool)
	for _, k := range kata {
		common := romaji.Normalize(k.Romaji)
		h, ok := hiraByRomaji[common]
		if !ok || paired[common] {
			continue
		}
		paired[common] = true
		pairs = append(pairs, models.KanaPair{
			ID:           common,
			Hiragana:     h,
			Katakana:     k,
			CommonRomaji: common,
		})
	}

	s.mu.Lock()
	s.rnd.Shuffle(len(pairs), func(i, j int) {
		pairs[i], pairs[j] = pairs[j], pairs[i]
	})
	s.mu.Unlock()
	if numPairs > 0 && len(pairs) > numPairs {
		pairs = pairs[:numPairs]
	}
	return pairs
}
