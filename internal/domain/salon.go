package domain

import "time"

type Salon struct {
	ID         string
	Name       string
	Area       string
	Rating     float64
	Services   []string
	PriceRange string
	Phone      string
	Address    string
	Hours      string
	Notes      string
	CreatedAt  time.Time
}
