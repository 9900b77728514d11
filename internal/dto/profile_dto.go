package dto

import (
	"github.com/bigBrother1996/devConnector/internal/models"
	"github.com/google/uuid"
)

// ProfileRequest carries the upsert payload for POST /api/profile. Optional
// fields left empty are not written on update; skills arrive as one
// comma-delimited string.
type ProfileRequest struct {
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Bio            string `json:"bio"`
	Status         string `json:"status"`
	GithubUsername string `json:"githubusername"`
	Skills         string `json:"skills"`
	Youtube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Facebook       string `json:"facebook"`
	Linkedin       string `json:"linkedin"`
	Instagram      string `json:"instagram"`
}

type ExperienceRequest struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Website     string `json:"website"`
	Location    string `json:"location"`
	From        string `json:"from"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

type EducationRequest struct {
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldofstudy"`
	From         string `json:"from"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

type MessageResponse struct {
	Msg string `json:"msg"`
}

// Owner is the slice of the owning user exposed on profile reads.
type Owner struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Avatar string    `json:"avatar"`
}

// ProfileResponse is a profile joined with its owner. The outer User field
// shadows the model's full association so only name and avatar leak out.
type ProfileResponse struct {
	models.Profile
	User Owner `json:"user"`
}

func NewProfileResponse(p models.Profile, owner models.User) ProfileResponse {
	p.User = nil
	return ProfileResponse{
		Profile: p,
		User: Owner{
			ID:     owner.ID,
			Name:   owner.Name,
			Avatar: owner.Avatar,
		},
	}
}
