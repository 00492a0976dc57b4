package entities

type BookingEmailData struct {
	ClientName  string
	BookingCode string
	TrainerName string
	SessionType string
	Date        string
	StartTime   string
	EndTime     string
	Status      string
	CurrentYear int
}
