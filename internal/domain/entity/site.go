package entity

// Site representa una obra (construcción en curso).
type Site struct {
	ID          string
	Name        string
	Location    string
	Description string
}

// Engineer ingeniero responsable de una o más obras.
type Engineer struct {
	ID      string
	Name    string
	Email   string
	SiteIDs []string
}
