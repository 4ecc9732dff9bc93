package handler

import (
	"time"

	"github.com/bagdasarian/league-picks/internal/domain"
)

func domainLeagueToHTTP(league *domain.League) LeagueResponse {
	members := make([]LeagueMemberResponse, 0, len(league.Members))
	for _, m := range league.Members {
		members = append(members, LeagueMemberResponse{
			UserID:      m.UserID,
			Email:       m.Email,
			DisplayName: m.DisplayName,
			IsAdmin:     m.IsAdmin,
			JoinedAt:    m.JoinedAt.Format(time.RFC3339),
		})
	}

	return LeagueResponse{
		ID:         league.ID,
		Name:       league.Name,
		InviteCode: league.InviteCode,
		CreatedAt:  league.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  league.UpdatedAt.Format(time.RFC3339),
		Members:    members,
	}
}

func domainLeagueItemsToHTTP(items []*domain.LeagueListItem) []LeagueListItemResponse {
	result := make([]LeagueListItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, LeagueListItemResponse{ID: item.ID, Name: item.Name})
	}
	return result
}

func domainTeamToHTTP(team *domain.Team) TeamResponse {
	return TeamResponse{
		ID:           team.ID,
		Name:         team.Name,
		ShortName:    team.ShortName,
		ImageURL:     team.ImageURL,
		PrimaryColor: team.PrimaryColor,
		Active:       team.Active,
	}
}

func domainTeamsToHTTP(teams []*domain.Team) []TeamResponse {
	result := make([]TeamResponse, 0, len(teams))
	for _, team := range teams {
		result = append(result, domainTeamToHTTP(team))
	}
	return result
}

func domainVotesToHTTP(votes []*domain.Vote) []VoteResponse {
	result := make([]VoteResponse, 0, len(votes))
	for _, v := range votes {
		result = append(result, VoteResponse{
			ID:       v.ID,
			LeagueID: v.LeagueID,
			TeamID:   v.TeamID,
			Round:    v.Round,
		})
	}
	return result
}
