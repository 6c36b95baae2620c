//go:build integration

package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokemon-world/pokemon-service/internal/adapters/http/dto"
)

type lookupResult struct {
	status int
	body   dto.PokemonResponse
	err    error
}

func lookup(url string) lookupResult {
	resp, err := http.Get(url) //nolint:noctx // test helper
	if err != nil {
		return lookupResult{err: err}
	}
	defer resp.Body.Close()

	var body dto.PokemonResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return lookupResult{status: resp.StatusCode, err: err}
	}

	return lookupResult{status: resp.StatusCode, body: body}
}

// TestConcurrent_MultipleRequests verifies that concurrent lookups for
// different species never see each other's data.
func TestConcurrent_MultipleRequests(t *testing.T) {
	st, err := newStack(stackOptions{})
	require.NoError(t, err)
	defer st.close()

	const numSpecies = 25

	for i := 0; i < numSpecies; i++ {
		st.species.add(species{
			Name:        fmt.Sprintf("species-%d", i),
			Description: fmt.Sprintf("description %d", i),
			Habitat:     "forest",
		})
	}

	results := make([]lookupResult, numSpecies*2)

	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = lookup(fmt.Sprintf("%s/pokemon/species-%d", st.service.URL, i%numSpecies))
		}(i)
	}

	wg.Wait()

	for i, r := range results {
		require.NoError(t, r.err)
		assert.Equal(t, http.StatusOK, r.status)
		assert.Equal(t, fmt.Sprintf("species-%d", i%numSpecies), r.body.Name)
		assert.Equal(t, fmt.Sprintf("description %d", i%numSpecies), r.body.Description)
	}

	assert.Equal(t, numSpecies*2, st.species.calls(), "nothing is cached")
}

// TestConcurrent_MixedLookups verifies basic and translated lookups for the
// same species can run side by side.
func TestConcurrent_MixedLookups(t *testing.T) {
	st, err := newStack(stackOptions{})
	require.NoError(t, err)
	defer st.close()

	st.species.add(species{Name: "zubat", Description: "Lives in caves.", Habitat: "Cave"})

	const numGoroutines = 20

	results := make([]lookupResult, numGoroutines)

	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			path := "/pokemon/zubat"
			if i%2 == 1 {
				path = "/pokemon/translated/zubat"
			}

			results[i] = lookup(st.service.URL + path)
		}(i)
	}

	wg.Wait()

	for i, r := range results {
		require.NoError(t, r.err)
		assert.Equal(t, http.StatusOK, r.status)

		if i%2 == 1 {
			assert.Equal(t, "yoda: Lives in caves.", r.body.Description)
		} else {
			assert.Equal(t, "Lives in caves.", r.body.Description)
		}
	}

	assert.Len(t, st.translation.requestedDialects(), numGoroutines/2)
}
