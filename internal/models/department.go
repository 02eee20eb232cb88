package models

import "github.com/lib/pq"

// Department groups the programs of one academic unit. Immutable at request
// time; the recommender treats the full department list as a snapshot.
type Department struct {
	ID              int            `db:"id" json:"id"`
	Name            string         `db:"name" json:"name"`
	Code            string         `db:"code" json:"code"`
	Contact         string         `db:"contact" json:"contact"`
	Head            string         `db:"head" json:"head"`
	Description     string         `db:"description" json:"description"`
	Programs        pq.StringArray `db:"programs" json:"programs"`
	Faculty         string         `db:"faculty" json:"faculty"`
	Location        string         `db:"location" json:"location"`
	Website         string         `db:"website" json:"website"`
	EstablishedYear int            `db:"established_year" json:"established_year"`
	StudentCapacity int            `db:"student_capacity" json:"student_capacity"`
	Accreditation   string         `db:"accreditation" json:"accreditation"`
}

// DepartmentSummary is the subset of department fields returned with a
// recommendation.
type DepartmentSummary struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Programs    pq.StringArray `json:"programs"`
	Faculty     string         `json:"faculty"`
	Contact     string         `json:"contact"`
	Website     string         `json:"website"`
}
