// Package sectorprompt builds the sector question sent to language models
// and reads their answers back.
package sectorprompt

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"enrichio/internal/ports"
)

// NoMatch is the answer a model gives when no listed sector fits
const NoMatch = "Unknown"

// ErrNoJSON is returned when a model answer holds no JSON object
var ErrNoJSON = errors.New("no JSON object found in response")

var codeBlockRe = regexp.MustCompile("```(?:json)?\\s*\\n?([\\s\\S]*?)\\n?```")

type answerJSON struct {
	Sector     string `json:"sector"`
	Confidence string `json:"confidence"`
	Reasoning  string `json:"reasoning"`
}

// Build returns the prompt asking which of sectors fits companyName
func Build(companyName string, sectors []string) string {
	quoted := make([]string, len(sectors))
	for i, s := range sectors {
		quoted[i] = fmt.Sprintf("%q", s)
	}

	return fmt.Sprintf(`Tu es un expert en classification d'entreprises.
Identifie le secteur d'activité de l'entreprise suivante : "%s".

Tu DOIS choisir le secteur le plus pertinent PARMI cette liste stricte :
[%s]

Si tu ne trouves aucune correspondance ou si l'entreprise est inconnue, réponds "%s".

Réponds UNIQUEMENT au format JSON (pas de markdown) :
{"sector": "Le secteur exact de la liste", "confidence": "Haut/Moyen/Bas", "reasoning": "Brève explication"}`,
		companyName, strings.Join(quoted, ", "), NoMatch)
}

// Parse reads a model answer. It returns nil when the model had no pick or
// picked a label outside sectors.
func Parse(result string, sectors []string) (*ports.SectorSuggestion, error) {
	result = strings.TrimSpace(result)

	if matches := codeBlockRe.FindStringSubmatch(result); len(matches) > 1 {
		result = strings.TrimSpace(matches[1])
	}

	start := strings.Index(result, "{")
	end := strings.LastIndex(result, "}")
	if start == -1 || end == -1 || end <= start {
		return nil, ErrNoJSON
	}
	jsonStr := result[start : end+1]

	var raw answerJSON
	if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse sector JSON: %w (json: %s)", err, jsonStr)
	}

	sector := strings.TrimSpace(raw.Sector)
	if sector == "" || strings.EqualFold(sector, NoMatch) || !slices.Contains(sectors, sector) {
		return nil, nil
	}
	return &ports.SectorSuggestion{
		Sector:     sector,
		Confidence: strings.TrimSpace(raw.Confidence),
		Reasoning:  strings.TrimSpace(raw.Reasoning),
	}, nil
}
