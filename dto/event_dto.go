package dto

type CreateEventDTO struct {
	EventTitle       string `json:"eventTitle"`
	EventVenue       string `json:"eventVenue"`
	EventStartTime   string `json:"eventStartTime"`
	EventEndTime     string `json:"eventEndTime"`
	EventStartDate   string `json:"eventStartDate"`
	EventEndDate     string `json:"eventEndDate"`
	EventCost        string `json:"eventCost"`
	EventDescription string `json:"eventDescription"`
	ImageBase64      string `json:"imageBase64"`
}

type GenerateDescriptionDTO struct {
	EventTitle     string `json:"eventTitle"`
	EventVenue     string `json:"eventVenue"`
	EventStartTime string `json:"eventStartTime"`
	EventEndTime   string `json:"eventEndTime"`
	EventStartDate string `json:"eventStartDate"`
	EventEndDate   string `json:"eventEndDate"`
	EventCost      string `json:"eventCost"`
}
