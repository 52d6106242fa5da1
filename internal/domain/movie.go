package domain

import "context"

type Movie struct {
	ID       int
	Title    string
	Genre    string
	Format   string
	Duration int
}

type Customer struct {
	Name  string
	Email string
	Phone string
}

type MovieRepository interface {
	GetById(ctx context.Context, id int) (*Movie, error)
	GetAll(ctx context.Context) ([]*Movie, error)
}
