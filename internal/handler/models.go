package handler

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FormErrorResponse - ошибки формы по именам полей
type FormErrorResponse struct {
	Errors map[string]string `json:"errors"`
}

type LeagueListItemResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type LeagueListResponse struct {
	Leagues []LeagueListItemResponse `json:"leagues"`
}

type LeagueMemberResponse struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	IsAdmin     bool   `json:"is_admin"`
	JoinedAt    string `json:"joined_at"`
}

type LeagueResponse struct {
	ID         string                 `json:"id"`
	Name       string                 `json:"name"`
	InviteCode string                 `json:"invite_code"`
	CreatedAt  string                 `json:"created_at"`
	UpdatedAt  string                 `json:"updated_at"`
	Members    []LeagueMemberResponse `json:"members"`
}

type TeamResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ShortName    string `json:"short_name"`
	ImageURL     string `json:"image_url"`
	PrimaryColor string `json:"primary_color"`
	Active       bool   `json:"active"`
}

type TeamListResponse struct {
	Teams []TeamResponse `json:"teams"`
}

type VoteResponse struct {
	ID       string `json:"id"`
	LeagueID string `json:"league_id"`
	TeamID   string `json:"team_id"`
	Round    int    `json:"round"`
}

type LeagueDetailsResponse struct {
	League LeagueResponse `json:"league"`
	Teams  []TeamResponse `json:"teams"`
	Votes  []VoteResponse `json:"votes"`
}
