package services

import (
	"errors"
	"strings"

	"github.com/bigBrother1996/devConnector/internal/dto"
	"github.com/bigBrother1996/devConnector/internal/models"
	"github.com/bigBrother1996/devConnector/internal/store"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

var (
	ErrNoProfile          = errors.New("there is no profile for this user")
	ErrExperienceNotFound = errors.New("experience not found")
	ErrEducationNotFound  = errors.New("education not found")
)

type ProfileService struct {
	profiles store.ProfileStore
	users    store.UserStore
}

func NewProfileService(profiles store.ProfileStore, users store.UserStore) *ProfileService {
	return &ProfileService{profiles: profiles, users: users}
}

// ByUserID fetches a profile by its owning user's id, owner joined.
func (s *ProfileService) ByUserID(userID uuid.UUID) (*models.Profile, error) {
	profile, err := s.profiles.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNoProfile
		}
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) All() ([]models.Profile, error) {
	return s.profiles.FindAll()
}

// Upsert creates the caller's profile or updates it in place. Optional fields
// absent from the request keep their stored values; the social block is
// rebuilt from the request each time.
func (s *ProfileService) Upsert(userID uuid.UUID, req *dto.ProfileRequest) (*models.Profile, error) {
	social := models.SocialLinks{
		Youtube:   req.Youtube,
		Twitter:   req.Twitter,
		Facebook:  req.Facebook,
		Linkedin:  req.Linkedin,
		Instagram: req.Instagram,
	}

	profile, err := s.profiles.FindByUserID(userID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		profile = &models.Profile{
			ID:     uuid.New(),
			UserID: userID,
		}
		applyProfileFields(profile, req, social)
		if err := s.profiles.Create(profile); err != nil {
			return nil, err
		}
		return s.ByUserID(userID)
	}

	applyProfileFields(profile, req, social)
	if err := s.profiles.Save(profile); err != nil {
		return nil, err
	}
	return s.ByUserID(userID)
}

func applyProfileFields(profile *models.Profile, req *dto.ProfileRequest, social models.SocialLinks) {
	if req.Company != "" {
		profile.Company = req.Company
	}
	if req.Website != "" {
		profile.Website = req.Website
	}
	if req.Location != "" {
		profile.Location = req.Location
	}
	if req.Bio != "" {
		profile.Bio = req.Bio
	}
	if req.Status != "" {
		profile.Status = req.Status
	}
	if req.GithubUsername != "" {
		profile.GithubUsername = req.GithubUsername
	}
	if req.Skills != "" {
		profile.Skills = datatypes.NewJSONSlice(splitSkills(req.Skills))
	}
	profile.Social = datatypes.NewJSONType(social)
}

func splitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}

// Delete removes the caller's profile together with the caller's user record.
func (s *ProfileService) Delete(userID uuid.UUID) error {
	return s.profiles.DeleteWithUser(userID)
}

// AddExperience inserts a new entry at the head of the caller's experience
// list and returns the updated profile.
func (s *ProfileService) AddExperience(userID uuid.UUID, req *dto.ExperienceRequest) (*models.Profile, error) {
	profile, err := s.ByUserID(userID)
	if err != nil {
		return nil, err
	}

	entry := models.Experience{
		ID:          uuid.New(),
		Title:       req.Title,
		Company:     req.Company,
		Website:     req.Website,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	}

	profile.Experience = append(datatypes.JSONSlice[models.Experience]{entry}, profile.Experience...)
	if err := s.profiles.Save(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// RemoveExperience deletes the entry matching entryID, preserving the
// relative order of the rest, and returns the removed entry.
func (s *ProfileService) RemoveExperience(userID, entryID uuid.UUID) (*models.Experience, error) {
	profile, err := s.ByUserID(userID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, exp := range profile.Experience {
		if exp.ID == entryID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrExperienceNotFound
	}

	removed := profile.Experience[idx]
	profile.Experience = append(profile.Experience[:idx], profile.Experience[idx+1:]...)
	if err := s.profiles.Save(profile); err != nil {
		return nil, err
	}
	return &removed, nil
}

// AddEducation mirrors AddExperience for the education list.
func (s *ProfileService) AddEducation(userID uuid.UUID, req *dto.EducationRequest) (*models.Profile, error) {
	profile, err := s.ByUserID(userID)
	if err != nil {
		return nil, err
	}

	entry := models.Education{
		ID:           uuid.New(),
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	}

	profile.Education = append(datatypes.JSONSlice[models.Education]{entry}, profile.Education...)
	if err := s.profiles.Save(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) RemoveEducation(userID, entryID uuid.UUID) (*models.Education, error) {
	profile, err := s.ByUserID(userID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, edu := range profile.Education {
		if edu.ID == entryID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrEducationNotFound
	}

	removed := profile.Education[idx]
	profile.Education = append(profile.Education[:idx], profile.Education[idx+1:]...)
	if err := s.profiles.Save(profile); err != nil {
		return nil, err
	}
	return &removed, nil
}
