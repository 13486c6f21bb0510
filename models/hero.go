package models

// HeroID is the fixed key of the single hero profile row.
const HeroID int64 = 1

type HeroProfile struct {
	ID           int64   `json:"id" bson:"_id" db:"id"`
	Name         string  `json:"name" bson:"name" db:"name"`
	Title        string  `json:"title" bson:"title" db:"title"`
	Description  string  `json:"description" bson:"description" db:"description"`
	Phone        string  `json:"phone" bson:"phone" db:"phone"`
	Email        string  `json:"email" bson:"email" db:"email"`
	Location     string  `json:"location" bson:"location" db:"location"`
	ProfileImage *string `json:"profileImage,omitempty" bson:"profile_image,omitempty" db:"profile_image"`
	ResumeURL    *string `json:"resumeUrl,omitempty" bson:"resume_url,omitempty" db:"resume_url"`
}
