package words

import (
	"errors"
	"math/rand"
	"sort"
	"strings"
)

var (
	ErrUnknownCategory = errors.New("unknown word category")
	ErrEmptyBank       = errors.New("word bank is empty")
)

// Bank is a read-only category to word-list mapping. Words are stored in
// canonical uppercase so guesses compare against a single form.
type Bank struct {
	categories map[string][]string
	all        []string
}

// NewBank builds a bank from raw category lists, trimming blanks and
// uppercasing every word.
func NewBank(categories map[string][]string) *Bank {
	b := &Bank{categories: make(map[string][]string, len(categories))}
	for name, list := range categories {
		clean := make([]string, 0, len(list))
		for _, w := range list {
			w = strings.TrimSpace(w)
			if w == "" {
				continue
			}
			clean = append(clean, strings.ToUpper(w))
		}
		b.categories[name] = clean
		b.all = append(b.all, clean...)
	}
	return b
}

// DefaultBank returns the built-in word lists.
func DefaultBank() *Bank {
	return NewBank(defaultWords)
}

// Categories returns the category names in sorted order.
func (b *Bank) Categories() []string {
	names := make([]string, 0, len(b.categories))
	for name := range b.categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (b *Bank) HasCategory(name string) bool {
	_, ok := b.categories[name]
	return ok
}

// RandomWord draws a uniformly random word, scoped to category when one is
// given, otherwise across all categories.
func (b *Bank) RandomWord(category string) (string, error) {
	if category != "" {
		list, ok := b.categories[category]
		if !ok {
			return "", ErrUnknownCategory
		}
		if len(list) == 0 {
			return "", ErrEmptyBank
		}
		return list[rand.Intn(len(list))], nil
	}
	if len(b.all) == 0 {
		return "", ErrEmptyBank
	}
	return b.all[rand.Intn(len(b.all))], nil
}
