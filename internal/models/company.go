package models

import "time"

type Company struct {
	ID        string    `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

func (c Company) DocID() string { return c.ID }

type Program struct {
	ID             string    `bson:"_id" json:"id"`
	Name           string    `bson:"name" json:"name"`
	Description    string    `bson:"description,omitempty" json:"description,omitempty"`
	PassPercentage float64   `bson:"pass_percentage" json:"pass_percentage"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}

func (p Program) DocID() string { return p.ID }

const DefaultPassPercentage = 70.0
