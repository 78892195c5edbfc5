package models

import "time"

type Subscriber struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	DiscountCode string    `json:"discount_code"`
	CreatedAt    time.Time `json:"created_at"`
}

type GardenPlan struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	Space          string    `json:"space"`
	Grow           string    `json:"grow"`
	Experience     string    `json:"experience"`
	SpecificPlants string    `json:"specific_plants,omitempty"`
	Seeds          string    `json:"seeds,omitempty"`
	Fertilizer     string    `json:"fertilizer,omitempty"`
	Mixes          string    `json:"mixes,omitempty"`
	Pots           string    `json:"pots,omitempty"`
	Guidance       string    `json:"guidance,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type ContactMessage struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
