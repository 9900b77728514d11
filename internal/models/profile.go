package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Profile extends a User one-to-one with professional details. The
// experience and education lists live inside the row as jsonb documents,
// newest entry first.
type Profile struct {
	ID             uuid.UUID                       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID         uuid.UUID                       `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	User           *User                           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Company        string                          `gorm:"size:255" json:"company,omitempty"`
	Website        string                          `gorm:"size:255" json:"website,omitempty"`
	Location       string                          `gorm:"size:255" json:"location,omitempty"`
	Bio            string                          `gorm:"type:text" json:"bio,omitempty"`
	Status         string                          `gorm:"size:255;not null" json:"status"`
	GithubUsername string                          `gorm:"size:255" json:"githubusername,omitempty"`
	Skills         datatypes.JSONSlice[string]     `gorm:"type:jsonb" json:"skills"`
	Social         datatypes.JSONType[SocialLinks] `gorm:"type:jsonb" json:"social"`
	Experience     datatypes.JSONSlice[Experience] `gorm:"type:jsonb" json:"experience"`
	Education      datatypes.JSONSlice[Education]  `gorm:"type:jsonb" json:"education"`
	CreatedAt      time.Time                       `json:"created_at"`
	UpdatedAt      time.Time                       `json:"updated_at"`
}

type SocialLinks struct {
	Youtube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

type Experience struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Website     string    `json:"website,omitempty"`
	Location    string    `json:"location,omitempty"`
	From        string    `json:"from"`
	To          string    `json:"to,omitempty"`
	Current     bool      `json:"current"`
	Description string    `json:"description,omitempty"`
}

type Education struct {
	ID           uuid.UUID `json:"id"`
	School       string    `json:"school"`
	Degree       string    `json:"degree"`
	FieldOfStudy string    `json:"fieldofstudy"`
	From         string    `json:"from"`
	To           string    `json:"to,omitempty"`
	Current      bool      `json:"current"`
	Description  string    `json:"description,omitempty"`
}
