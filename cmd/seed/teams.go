package main

import (
	"fmt"

	"github.com/bagdasarian/league-picks/internal/domain"
)

const badgeURL = "https://resources.premierleague.com/premierleague/badges/t%s.png"

func badge(code string) string {
	return fmt.Sprintf(badgeURL, code)
}

// Вылетевшие команды остаются в таблице, но неактивны
var premierLeagueTeams = []domain.Team{
	{Name: "Arsenal", ShortName: "ARS", ImageURL: badge("3"), PrimaryColor: "#EF0107", Active: true},
	{Name: "Aston Villa", ShortName: "AVL", ImageURL: badge("7"), PrimaryColor: "#95BFE5", Active: true},
	{Name: "Bournemouth", ShortName: "BOU", ImageURL: badge("91"), PrimaryColor: "#DA291C", Active: true},
	{Name: "Brentford", ShortName: "BRE", ImageURL: badge("94"), PrimaryColor: "#E30613", Active: true},
	{Name: "Brighton & Hove Albion", ShortName: "BHA", ImageURL: badge("36"), PrimaryColor: "#0057B8", Active: true},
	{Name: "Burnley", ShortName: "BUR", ImageURL: badge("90"), PrimaryColor: "#6C1D45", Active: true},
	{Name: "Chelsea", ShortName: "CHE", ImageURL: badge("8"), PrimaryColor: "#034694", Active: true},
	{Name: "Crystal Palace", ShortName: "CRY", ImageURL: badge("31"), PrimaryColor: "#1B458F", Active: true},
	{Name: "Everton", ShortName: "EVE", ImageURL: badge("11"), PrimaryColor: "#003399", Active: true},
	{Name: "Fulham", ShortName: "FUL", ImageURL: badge("54"), PrimaryColor: "#000000", Active: true},
	{Name: "Ipswich Town", ShortName: "IPS", ImageURL: badge("40"), PrimaryColor: "#0044A9", Active: false},
	{Name: "Leeds United", ShortName: "LEE", ImageURL: badge("2"), PrimaryColor: "#FFCD00", Active: true},
	{Name: "Leicester City", ShortName: "LEI", ImageURL: badge("13"), PrimaryColor: "#003090", Active: false},
	{Name: "Liverpool", ShortName: "LIV", ImageURL: badge("14"), PrimaryColor: "#C8102E", Active: true},
	{Name: "Manchester City", ShortName: "MCI", ImageURL: badge("43"), PrimaryColor: "#6CABDD", Active: true},
	{Name: "Manchester United", ShortName: "MUN", ImageURL: badge("1"), PrimaryColor: "#DA291C", Active: true},
	{Name: "Newcastle United", ShortName: "NEW", ImageURL: badge("4"), PrimaryColor: "#241F20", Active: true},
	{Name: "Nottingham Forest", ShortName: "NFO", ImageURL: badge("17"), PrimaryColor: "#DD0000", Active: true},
	{Name: "Southampton", ShortName: "SOU", ImageURL: badge("20"), PrimaryColor: "#D71920", Active: false},
	{Name: "Sunderland", ShortName: "SUN", ImageURL: badge("56"), PrimaryColor: "#EB172B", Active: true},
	{Name: "Tottenham Hotspur", ShortName: "TOT", ImageURL: badge("6"), PrimaryColor: "#132257", Active: true},
	{Name: "West Ham United", ShortName: "WHU", ImageURL: badge("21"), PrimaryColor: "#7A263A", Active: true},
	{Name: "Wolverhampton Wanderers", ShortName: "WOL", ImageURL: badge("39"), PrimaryColor: "#FDB913", Active: true},
}
