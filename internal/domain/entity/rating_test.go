package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatingAggregate(t *testing.T) {
	provider := &Provider{Ratings: []float64{4, 5, 3}}
	assert.Equal(t, 4.0, provider.Rating())
	assert.Equal(t, 3, provider.RatingCount())

	user := &User{Ratings: []float64{4, 4, 5}}
	assert.Equal(t, 4.3, user.Rating(), "mean rounds to one decimal")

	empty := &User{}
	assert.Equal(t, 0.0, empty.Rating())
	assert.Equal(t, 0, empty.RatingCount())
}

func TestUserJSONCarriesDerivedRating(t *testing.T) {
	user := User{ID: "u1", Name: "Lina", Ratings: []float64{5, 4}}

	data, err := json.Marshal(user)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 4.5, decoded["rating"])
	assert.Equal(t, 2.0, decoded["rating_count"])
	_, hasPassword := decoded["password"]
	assert.False(t, hasPassword)
}
