package services

import (
	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
)

func toUserBasicResponse(user *models.User) *dto.UserBasicResponse {
	if user == nil {
		return nil
	}
	return &dto.UserBasicResponse{
		ID:              user.ID,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		Email:           user.Email,
		ProfilePhotoURL: user.ProfilePhotoURL,
	}
}

func toUserProfileResponse(user *models.User) *dto.UserProfileResponse {
	return &dto.UserProfileResponse{
		ID:              user.ID,
		Email:           user.Email,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		RoleType:        string(user.RoleType),
		Bio:             user.Bio,
		ProfilePhotoURL: user.ProfilePhotoURL,
		LastLoginAt:     user.LastLoginAt,
		CreatedAt:       user.CreatedAt,
	}
}

func toClubResponse(club *models.Club, memberCount int, creator *models.User) dto.ClubResponse {
	return dto.ClubResponse{
		ID:          club.ID,
		Name:        club.Name,
		Description: club.Description,
		LogoURL:     club.LogoURL,
		CreatedBy:   club.CreatedBy,
		Creator:     toUserBasicResponse(creator),
		MemberCount: memberCount,
		CreatedAt:   club.CreatedAt,
		UpdatedAt:   club.UpdatedAt,
	}
}

func toEventResponse(event *models.Event, creator *models.User) dto.EventResponse {
	return dto.EventResponse{
		ID:            event.ID,
		Title:         event.Title,
		Description:   event.Description,
		EventMode:     string(event.EventMode),
		Location:      event.Location,
		StartDatetime: event.StartDatetime,
		EndDatetime:   event.EndDatetime,
		IsTeamBased:   event.IsTeamBased,
		MaxTeamSize:   event.MaxTeamSize,
		BannerURL:     event.BannerURL,
		CreatedBy:     event.CreatedBy,
		Creator:       toUserBasicResponse(creator),
		CreatedAt:     event.CreatedAt,
	}
}

func toTeamResponse(team *models.Team, memberCount int) dto.TeamResponse {
	return dto.TeamResponse{
		ID:           team.ID,
		EventID:      team.EventID,
		Name:         team.Name,
		Description:  team.Description,
		SkillsNeeded: team.SkillsNeeded,
		IsOpen:       team.IsOpen,
		MaxMembers:   team.MaxMembers,
		MemberCount:  memberCount,
		CreatedBy:    team.CreatedBy,
		CreatedAt:    team.CreatedAt,
	}
}

func toJobResponse(job *models.Job, poster *models.User) dto.JobResponse {
	return dto.JobResponse{
		ID:          job.ID,
		Title:       job.Title,
		Description: job.Description,
		Company:     job.Company,
		JobType:     job.JobType,
		Eligibility: job.Eligibility,
		Deadline:    job.Deadline,
		PostedBy:    job.PostedBy,
		Poster:      toUserBasicResponse(poster),
		CreatedAt:   job.CreatedAt,
	}
}
