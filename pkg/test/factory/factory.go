package factory

import (
	"fmt"
	"math/rand/v2"

	fab "github.com/Goldziher/fabricator"
)

// NewUser builds a T filled with random data. Name, Email and IsActive
// always receive realistic values unless customData overrides them.
func NewUser[T any](customData ...map[string]any) T {
	instance := fab.New(*new(T))

	n := rand.IntN(100000)

	defaults := map[string]any{
		"ID":       int64(0),
		"Name":     fmt.Sprintf("User %d", n),
		"Email":    fmt.Sprintf("user%d@example.com", n),
		"IsActive": true,
	}

	return instance.Build(merge(defaults, customData)...)
}

// NewMovie builds a T whose numeric fields always satisfy the movie rules.
func NewMovie[T any](customData ...map[string]any) T {
	instance := fab.New(*new(T))

	n := rand.IntN(100000)

	defaults := map[string]any{
		"ID":            int64(0),
		"Nome":          fmt.Sprintf("Filme %d", n),
		"Descricao":     "Uma descrição qualquer",
		"Genero":        "Drama",
		"Duracao":       90 + rand.IntN(90),
		"AnoLancamento": 1950 + rand.IntN(70),
	}

	return instance.Build(merge(defaults, customData)...)
}

func merge(defaults map[string]any, customData []map[string]any) []map[string]any {
	merged := make(map[string]any, len(defaults))

	for k, v := range defaults {
		merged[k] = v
	}

	for _, data := range customData {
		for k, v := range data {
			merged[k] = v
		}
	}

	return []map[string]any{merged}
}
