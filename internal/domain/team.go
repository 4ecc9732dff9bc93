package domain

type Team struct {
	ID           string
	Name         string
	ShortName    string
	ImageURL     string
	PrimaryColor string
	Active       bool
}
