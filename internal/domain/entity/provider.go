package entity

import (
	"encoding/json"
	"time"
)

type Provider struct {
	ID       string `json:"id" firestore:"id"`
	Name     string `json:"name" firestore:"name"`
	Email    string `json:"email" firestore:"email"`
	Password string `json:"-" firestore:"password"`

	// Category is the legacy single profession; Categories supersedes it but
	// both are kept so older clients keep working.
	Category      string   `json:"category" firestore:"category"`
	Categories    []string `json:"categories" firestore:"categories"`
	Subcategories []string `json:"subcategories" firestore:"subcategories"`

	Regions ProviderRegions `json:"regions" firestore:"regions"`

	Avatar string `json:"avatar" firestore:"avatar"`

	Ratings []float64 `json:"ratings" firestore:"ratings"`
	Reviews []string  `json:"reviews" firestore:"reviews"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// ProviderRegions describes where a provider operates. Everywhere overrides
// the city/area lists.
type ProviderRegions struct {
	Everywhere bool     `json:"everywhere" firestore:"everywhere"`
	Cities     []string `json:"cities" firestore:"cities"`
	Areas      []string `json:"areas" firestore:"areas"`
}

func (p *Provider) Rating() float64 {
	return averageRating(p.Ratings)
}

func (p *Provider) RatingCount() int {
	return len(p.Ratings)
}

// ServesCategory matches either the legacy single category or the list.
func (p *Provider) ServesCategory(category string) bool {
	if p.Category == category {
		return true
	}
	for _, c := range p.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// ServesRegion matches a city or area filter against the provider's regions.
func (p *Provider) ServesRegion(city, area string) bool {
	if p.Regions.Everywhere {
		return true
	}
	if city != "" {
		for _, c := range p.Regions.Cities {
			if c == city {
				return true
			}
		}
	}
	if area != "" {
		for _, a := range p.Regions.Areas {
			if a == area {
				return true
			}
		}
	}
	return false
}

func (p Provider) MarshalJSON() ([]byte, error) {
	type alias Provider
	return json.Marshal(struct {
		alias
		Rating      float64 `json:"rating"`
		RatingCount int     `json:"rating_count"`
	}{
		alias:       alias(p),
		Rating:      p.Rating(),
		RatingCount: p.RatingCount(),
	})
}
