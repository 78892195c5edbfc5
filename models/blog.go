package models

import "time"

type BlogPost struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content,omitempty"`
	ImageURL    string    `json:"image_url"`
	Category    string    `json:"category"`
	Author      string    `json:"author"`
	PublishDate time.Time `json:"publish_date"`
	ReadTime    string    `json:"read_time"`
	Status      string    `json:"status"`
}
