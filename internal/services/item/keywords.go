package item

import (
	"strings"
	"unicode"
)

const maxArtKeywords = 5

// creatureWords keep creatures out of item artwork
var creatureWords = setOf(
	"creature", "creatures", "monster", "beast", "beasts", "dragon", "dragons", "drake", "wyrm",
	"wolf", "wolves", "bear", "lion", "tiger", "fox", "owl", "hawk", "eagle", "raven", "bird",
	"snake", "serpent", "spider", "horse", "unicorn", "phoenix", "griffin", "golem", "demon",
	"angel", "spirit", "titan", "giant", "knight", "warrior", "wizard", "mage", "witch",
	"guardian", "hunter", "mystic", "trickster", "elemental", "fairy", "goblin", "troll",
	"dwarf", "human", "person", "animal", "kraken", "whale", "shark", "turtle", "moth",
	"ally", "allies", "enemy", "enemies", "foe", "foes", "wielder", "wearer",
)

var stopWords = setOf(
	"this", "that", "with", "from", "into", "onto", "when", "then", "than", "them", "they",
	"their", "there", "have", "will", "your", "also", "each", "more", "most", "very", "which",
	"while", "item", "card", "deals", "deal", "grants", "grant", "provides", "provide",
	"against", "ability", "abilities", "power", "damage", "extra", "used", "uses", "battle",
	"temporary", "temporarily", "bonus", "increases", "reduces", "enhances", "sources",
	"about", "like", "some", "made", "make", "able",
)

func setOf(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// artKeywords picks up to five distinct thematic words from the given texts,
// skipping short words, filler and anything naming a creature
func artKeywords(texts ...string) []string {
	var keywords []string
	seen := make(map[string]struct{})

	for _, text := range texts {
		words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
			return !unicode.IsLetter(r)
		})
		for _, w := range words {
			if len([]rune(w)) <= 3 {
				continue
			}
			if _, ok := creatureWords[w]; ok {
				continue
			}
			if _, ok := stopWords[w]; ok {
				continue
			}
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			keywords = append(keywords, w)
			if len(keywords) == maxArtKeywords {
				return keywords
			}
		}
	}
	return keywords
}
