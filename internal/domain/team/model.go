package team

// Team is a club as returned to clients.
type Team struct {
	ID      int64
	Name    string
	Code    string
	Country string
	Founded int
	Logo    string
	Venue   Venue
	League  string
}

type Venue struct {
	Name     string
	City     string
	Capacity int
}
