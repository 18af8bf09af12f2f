package query

import (
	"regexp"
	"strconv"
	"strings"
)

// Keyword tables for Extract. Each list is scanned in order with independent
// checks, so a later match overwrites an earlier one (last-wins). This
// overwrite behavior is intentional and relied on by existing chat clients;
// do not replace it with priority or ranking logic.
var (
	brandTokens = []string{
		"westco", "bakema", "caravn", "carava", "trigal", "concor",
		"dncn hnz", "kruste", "cacaob", "cestvi", "barryc", "calbut",
		"guitta", "caca0b", "asm", "ambros", "nestle",
	}

	categoryTokens = []string{
		"brownie", "chocolate", "cocoa", "cake", "bread", "muffin",
		"pancake", "biscuit", "cookie",
	}

	itemTokens = []string{"mix", "chip", "drop"}
)

// Price bound patterns, tried in order against the raw query. "between" runs
// last and overwrites any prior under/over result.
var (
	underRe   = regexp.MustCompile(`under \$?(\d+(?:\.\d+)?)`)
	overRe    = regexp.MustCompile(`over \$?(\d+(?:\.\d+)?)`)
	betweenRe = regexp.MustCompile(`between \$?(\d+(?:\.\d+)?) and \$?(\d+(?:\.\d+)?)`)
)

// Extract derives filter criteria from a free-text query. It is a best-effort
// keyword scan, not a parser: no synonyms, no negation, no disambiguation.
// The first brand token found wins; category and item tokens are last-wins.
func Extract(text string) Criteria {
	q := strings.ToLower(text)

	var c Criteria

	for _, b := range brandTokens {
		if strings.Contains(q, b) {
			c.Brand = b
			break
		}
	}

	for _, t := range categoryTokens {
		if strings.Contains(q, t) {
			c.Category = t
		}
	}

	for _, t := range itemTokens {
		if strings.Contains(q, t) {
			c.Item = t
		}
	}

	if m := underRe.FindStringSubmatch(q); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			c.MaxPrice = &v
		}
	}
	if m := overRe.FindStringSubmatch(q); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			c.MinPrice = &v
		}
	}
	if m := betweenRe.FindStringSubmatch(q); m != nil {
		lo, err1 := strconv.ParseFloat(m[1], 64)
		hi, err2 := strconv.ParseFloat(m[2], 64)
		if err1 == nil && err2 == nil {
			c.MinPrice = &lo
			c.MaxPrice = &hi
		}
	}

	return c
}
