package domain

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/bxcodec/faker/v4"
)

// Entry is one line of a payment ledger.
type Entry struct {
	Date      time.Time
	Payee     string
	Reference string // zero-padded, must stay text in the sheet
	Category  string
	Amount    float64
}

var categories = []string{
	"Salary",
	"Rent",
	"Utilities",
	"Travel",
	"Equipment",
	"Consulting",
}

// GenerateEntries creates n ledger entries with random data, dated within
// the current month in ascending order.
func GenerateEntries(n int) []Entry {
	if n <= 0 {
		return nil
	}

	start := monthStart(time.Now())
	days := start.AddDate(0, 1, -1).Day()
	entries := make([]Entry, n)

	for i := range n {
		entries[i] = Entry{
			Date:      start.AddDate(0, 0, i*days/n),
			Payee:     faker.Name(),
			Reference: fmt.Sprintf("%06d", i+1),
			Category:  categories[rand.IntN(len(categories))],
			Amount:    randomAmount(),
		}
	}

	return entries
}

// Total sums the amounts of entries.
func Total(entries []Entry) float64 {
	var sum float64
	for _, e := range entries {
		sum += e.Amount
	}
	return math.Round(sum*100) / 100
}

func randomAmount() float64 {
	cents := 1000 + rand.IntN(500000)
	return float64(cents) / 100
}

func monthStart(t time.Time) time.Time {
	year, month, _ := t.Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
}
