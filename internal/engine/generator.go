package engine

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"data-gate/internal/schema"
	"data-gate/internal/types"
)

// Layouts used for generated temporal values. Both are understood by the
// table reader and the type check.
const (
	dateTimeLayout  = "2006-01-02 15:04:05"
	timeOfDayLayout = "15:04:05"
)

func truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) > limit {
		return string(runes[:limit])
	}
	return s
}

func isIdentifier(attr string) bool {
	a := strings.ToLower(attr)
	return a == "id" || strings.HasSuffix(a, "_id") || strings.HasSuffix(a, " id")
}

// valueGenerator produces cell text for one rule entry.
type valueGenerator struct {
	faker *gofakeit.Faker
	now   time.Time
}

// generateValue renders a random value for rule that converts losslessly
// into kind. index is the zero-based row, used for identifier columns.
func (g *valueGenerator) generateValue(rule schema.RuleEntry, kind types.LogicalKind, index int) (string, error) {
	attr := strings.ToLower(rule.SourceAttribute)
	meaning := schema.AnalyzeMeaning(rule.SourceAttribute)

	limit := 0
	if rule.HasMaxLength() {
		limit = *rule.MaxLength
	}

	switch kind {
	case types.Boolean:
		return strconv.FormatBool(g.faker.Bool()), nil

	case types.Int8:
		if meaning == "yesno" {
			return strconv.Itoa(g.faker.Number(0, 1)), nil
		}
		return strconv.Itoa(g.faker.Number(-128, 127)), nil

	case types.Integer:
		// Sequential identifiers avoid duplicates, like generated keys.
		if isIdentifier(attr) {
			return strconv.Itoa(index + 1), nil
		}
		if meaning == "yesno" {
			return strconv.Itoa(g.faker.Number(0, 1)), nil
		}
		if strings.Contains(attr, "year") {
			return strconv.Itoa(2000 + g.faker.Number(0, 25)), nil
		}
		return strconv.Itoa(g.faker.Number(1, 50000)), nil

	case types.Float:
		if meaning == "price" {
			return strconv.FormatFloat(g.faker.Price(0.99, 9999.99), 'f', 2, 64), nil
		}
		return strconv.FormatFloat(g.faker.Float64Range(0, 1000), 'f', 4, 64), nil

	case types.DateTime:
		val := g.faker.DateRange(g.now.AddDate(-1, 0, 0), g.now)
		return val.Format(dateTimeLayout), nil

	case types.TimeOfDay:
		val := g.faker.DateRange(g.now.AddDate(0, 0, -1), g.now)
		return val.Format(timeOfDayLayout), nil

	case types.Unicode, types.Object:
		return truncate(g.text(attr, meaning, limit, index), limit), nil
	}
	return "", &GenerateError{Attribute: rule.SourceAttribute, LogicalType: rule.LogicalType}
}

// text picks a string value from the attribute's meaning first, then falls
// back to words sized to the column.
func (g *valueGenerator) text(attr, meaning string, limit, index int) string {
	if isIdentifier(attr) || meaning == "code" {
		return fmt.Sprintf("%s%06d", strings.ToUpper(g.faker.LetterN(2)), index+1)
	}

	switch meaning {
	case "email":
		return g.faker.Email()
	case "phone":
		return g.faker.Phone()
	case "name":
		if limit > 0 && limit < 3 {
			return strings.ToUpper(g.faker.LetterN(uint(limit)))
		}
		if strings.Contains(attr, "first") {
			return g.faker.FirstName()
		}
		if strings.Contains(attr, "last") {
			return g.faker.LastName()
		}
		return g.faker.Name()
	case "address":
		if strings.Contains(attr, "2") {
			return fmt.Sprintf("Apt. %d", g.faker.Number(1, 999))
		}
		return g.faker.Street()
	case "zipcode":
		return g.faker.Zip()
	case "city":
		return g.faker.City()
	case "country":
		return g.faker.Country()
	case "company":
		return g.faker.Company()
	case "url":
		return g.faker.URL()
	case "yesno":
		if g.faker.Bool() {
			return "Y"
		}
		return "N"
	case "title":
		return g.faker.Sentence(3)
	case "description":
		return g.faker.Sentence(10)
	}

	if limit > 0 && limit < 20 {
		return g.faker.Word()
	}
	return g.faker.Sentence(5)
}
