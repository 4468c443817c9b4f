package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Event struct {
	ID               bson.ObjectID `bson:"_id,omitempty" json:"id"`
	EventTitle       string        `bson:"eventTitle" json:"eventTitle"`
	EventVenue       string        `bson:"eventVenue" json:"eventVenue"`
	EventStartTime   string        `bson:"eventStartTime" json:"eventStartTime"`
	EventEndTime     string        `bson:"eventEndTime" json:"eventEndTime"`
	EventStartDate   string        `bson:"eventStartDate" json:"eventStartDate"`
	EventEndDate     string        `bson:"eventEndDate" json:"eventEndDate"`
	EventCost        string        `bson:"eventCost" json:"eventCost"`
	EventDescription string        `bson:"eventDescription" json:"eventDescription"`
	ImageBase64      string        `bson:"imageBase64" json:"imageBase64"`
	CreatedAt        time.Time     `bson:"createdAt" json:"createdAt"`
	AdminID          bson.ObjectID `bson:"adminId" json:"adminId"`
	AdminName        string        `bson:"adminName" json:"adminName"`
}
