package models

// ResultFilter narrows a tally to one grade and/or class.
type ResultFilter struct {
	GradeYear   string
	ClassLetter string
}

// ResultRow is the vote count of one approved candidate.
type ResultRow struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	GradeYear   string `db:"grade_year" json:"gradeYear"`
	ClassLetter string `db:"class_letter" json:"classLetter"`
	Votes       int    `db:"votes" json:"votes"`
}
