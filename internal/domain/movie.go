package domain

type Movie struct {
	ID       int64
	Title    string
	Year     int
	Director string
	Genres   []string
	Score    float64
}

// MovieUpdate carries a partial update; nil fields are left untouched.
type MovieUpdate struct {
	Title    *string
	Year     *int
	Director *string
	Genres   []string
	Score    *float64
}
