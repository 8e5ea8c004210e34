package models

// CatalogSubject lists the course numbers offered under one subject code.
type CatalogSubject struct {
	Subject       string   `json:"subject" bson:"_id"`
	CourseNumbers []string `json:"course_numbers" bson:"course_numbers"`
}
