package entity

import "time"

// Category is a minimal name-only container.
type Category struct {
	ID        string    `json:"id" firestore:"id"`
	Name      string    `json:"name" firestore:"name"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// Subcategory has a globally unique name under a parent category name.
type Subcategory struct {
	ID        string    `json:"id" firestore:"id"`
	Name      string    `json:"name" firestore:"name"`
	Category  string    `json:"category" firestore:"category"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

type Region struct {
	ID    string   `json:"id" firestore:"id"`
	City  string   `json:"city" firestore:"city"`
	Areas []string `json:"areas" firestore:"areas"`
}
