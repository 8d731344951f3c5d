package parser

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/fancybaby404/FitTrack/internal/models"
)

const kgPerLb = 0.45359237

// ParsedExercise represents an exercise parsed from quick-add syntax
type ParsedExercise struct {
	Name   string
	Weight float64
	Reps   int
	Sets   int
	Errors []string
}

var (
	weightRegex   = regexp.MustCompile(`(?i)(?:^|\s)(\d+(?:[.,]\d+)?)\s?(kg|kgs|lb|lbs)\b`)
	schemeRegex   = regexp.MustCompile(`(?i)(?:^|\s)(\d+)\s?[x×]\s?(\d+)(?:\s|$)`)
	repsTagRegex  = regexp.MustCompile(`(?i)(?:^|\s)reps:(\S+)`)
	setsTagRegex  = regexp.MustCompile(`(?i)(?:^|\s)sets:(\S+)`)
	weightTagExpr = regexp.MustCompile(`(?i)(?:^|\s)(?:w|weight):(\S+)`)
)

// ParseExerciseSpec extracts an exercise from a short description
// Syntax: "Bench Press 80kg 5x3" (reps x sets), "Row 135lb reps:10 sets:4"
func ParseExerciseSpec(input string) ParsedExercise {
	result := ParsedExercise{
		Errors: []string{},
	}

	// Weight with unit (80kg, 135 lb, 42,5kg)
	if m := weightRegex.FindStringSubmatch(input); len(m) == 3 {
		w, err := strconv.ParseFloat(strings.Replace(m[1], ",", ".", 1), 64)
		if err != nil {
			result.Errors = append(result.Errors, "Invalid weight '"+m[1]+"'")
		} else {
			if strings.HasPrefix(strings.ToLower(m[2]), "lb") {
				w = math.Round(w*kgPerLb*100) / 100
			}
			result.Weight = w
		}
		input = weightRegex.ReplaceAllString(input, " ")
	}

	// Bare weight tag (w:80)
	if m := weightTagExpr.FindStringSubmatch(input); len(m) == 2 {
		w, err := strconv.ParseFloat(m[1], 64)
		if err != nil || w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			result.Errors = append(result.Errors, "Invalid weight '"+m[1]+"'")
		} else {
			result.Weight = w
		}
		input = weightTagExpr.ReplaceAllString(input, " ")
	}

	// Rep scheme (5x3 means 5 reps for 3 sets)
	if m := schemeRegex.FindStringSubmatch(input); len(m) == 3 {
		if n, ok := parseCount(m[1]); ok {
			result.Reps = n
		} else {
			result.Errors = append(result.Errors, "Invalid reps '"+m[1]+"'")
		}
		if n, ok := parseCount(m[2]); ok {
			result.Sets = n
		} else {
			result.Errors = append(result.Errors, "Invalid sets '"+m[2]+"'")
		}
		input = schemeRegex.ReplaceAllString(input, " ")
	}

	// Explicit tags override the scheme
	if m := repsTagRegex.FindStringSubmatch(input); len(m) == 2 {
		if n, ok := parseCount(m[1]); ok {
			result.Reps = n
		} else {
			result.Errors = append(result.Errors, "Invalid reps '"+m[1]+"'")
		}
		input = repsTagRegex.ReplaceAllString(input, " ")
	}
	if m := setsTagRegex.FindStringSubmatch(input); len(m) == 2 {
		if n, ok := parseCount(m[1]); ok {
			result.Sets = n
		} else {
			result.Errors = append(result.Errors, "Invalid sets '"+m[1]+"'")
		}
		input = setsTagRegex.ReplaceAllString(input, " ")
	}

	// Whatever is left is the name
	result.Name = strings.Join(strings.Fields(input), " ")
	if err := models.ValidateName(result.Name); err != nil {
		result.Errors = append(result.Errors, "Invalid exercise name: "+err.Error())
	}
	if result.Sets == 0 {
		result.Errors = append(result.Errors, "Sets are required (use 5x3 or sets:3)")
	}

	return result
}

// Exercise converts the parsed values into a model
func (p ParsedExercise) Exercise() models.Exercise {
	return models.NewExercise(p.Name, p.Weight, p.Reps, p.Sets)
}

// Valid reports whether parsing produced no errors
func (p ParsedExercise) Valid() bool {
	return len(p.Errors) == 0
}

// ParseWeight parses a single weight value in kilograms.
// "80", "80kg", "42,5" and "135lb" (converted to kg) are accepted; empty means 0.
func ParseWeight(input string) (float64, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return 0, nil
	}

	pounds := false
	for _, unit := range []string{"kgs", "kg", "lbs", "lb"} {
		if strings.HasSuffix(s, unit) {
			pounds = strings.HasPrefix(unit, "lb")
			s = strings.TrimSpace(strings.TrimSuffix(s, unit))
			break
		}
	}

	w, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil || w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return 0, fmt.Errorf("invalid weight '%s'", input)
	}
	if pounds {
		w = math.Round(w*kgPerLb*100) / 100
	}
	return w, nil
}

// ParseCount parses a non-negative rep or set count
func ParseCount(input string) (int, error) {
	n, ok := parseCount(input)
	if !ok {
		return 0, fmt.Errorf("invalid number '%s'", input)
	}
	return n, nil
}

func parseCount(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
