package types

import "github.com/google/uuid"

type Faculty struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	OfficeHours string `json:"office_hours"`
}

type Course struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Credits     int     `json:"credits"`
	Semester    string  `json:"semester"`
	Faculty     Faculty `json:"faculty"`
}

type MajorSummary struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type CourseViews struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Views int    `json:"views"`
}

// SelectedCourse is the denormalized snapshot held in the selection cart.
type SelectedCourse struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Credits  int    `json:"credits"`
	Semester string `json:"semester"`
}

type User struct {
	UID                      uuid.UUID `json:"uid"`
	Name                     string    `json:"name"`
	Email                    string    `json:"email"`
	PasswordHash             string    `json:"password_hash"`
	RegisteredCourses        []Course  `json:"registered_courses"`
	HasCompletedRegistration bool      `json:"has_completed_registration"`
}

// RecommendedCourse is a course annotated with its cosine similarity to the
// query course, rounded to 3 decimal places.
type RecommendedCourse struct {
	Course
	Similarity float64 `json:"similarity"`
}
