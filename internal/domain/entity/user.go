package entity

import (
	"encoding/json"
	"time"
)

type User struct {
	ID       string `json:"id" firestore:"id"`
	Name     string `json:"name" firestore:"name"`
	Email    string `json:"email" firestore:"email"`
	Password string `json:"-" firestore:"password"`
	Role     string `json:"role" firestore:"role"`

	Avatar   string     `json:"avatar" firestore:"avatar"`
	Online   bool       `json:"online" firestore:"online"`
	LastSeen *time.Time `json:"last_seen,omitempty" firestore:"lastSeen,omitempty"`

	Ratings []float64    `json:"ratings" firestore:"ratings"`
	Reviews []UserReview `json:"reviews" firestore:"reviews"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// UserReview is a single review left on a user by a provider.
type UserReview struct {
	ReviewerID string    `json:"reviewer_id" firestore:"reviewerId"`
	Text       string    `json:"text" firestore:"text"`
	Rating     float64   `json:"rating" firestore:"rating"`
	CreatedAt  time.Time `json:"created_at" firestore:"createdAt"`
}

// Rating is the derived aggregate: mean of Ratings rounded to one decimal,
// 0 when nothing has been submitted yet.
func (u *User) Rating() float64 {
	return averageRating(u.Ratings)
}

func (u *User) RatingCount() int {
	return len(u.Ratings)
}

func (u User) MarshalJSON() ([]byte, error) {
	type alias User
	return json.Marshal(struct {
		alias
		Rating      float64 `json:"rating"`
		RatingCount int     `json:"rating_count"`
	}{
		alias:       alias(u),
		Rating:      u.Rating(),
		RatingCount: u.RatingCount(),
	})
}
