package controllers

import (
	"errors"
	"time"

	"github.com/eventlyhq/eventbackend/dto"
	"github.com/eventlyhq/eventbackend/middleware"
	"github.com/eventlyhq/eventbackend/models"
	"github.com/eventlyhq/eventbackend/store"
	"github.com/eventlyhq/eventbackend/utils"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// CreateEvent inserts a new event on behalf of the authenticated admin.
// The role comes from the store-resolved identity, not from token claims,
// and the admin record is re-read so adminName is the canonical stored
// name even if the identity is stale.
func CreateEvent(events store.EventStore, users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := middleware.IdentityFrom(c)
		if !ok {
			utils.Fail(c, utils.E(utils.KindInvalidToken, "missing auth context"))
			return
		}
		if identity.Role != models.RoleAdmin {
			utils.Fail(c, utils.E(utils.KindForbidden, "Only admins can create events"))
			return
		}

		var body dto.CreateEventDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.Fail(c, utils.E(utils.KindValidation, "invalid request body"))
			return
		}
		if body.EventTitle == "" || body.EventVenue == "" ||
			body.EventStartTime == "" || body.EventEndTime == "" ||
			body.EventStartDate == "" || body.EventEndDate == "" ||
			body.EventCost == "" || body.EventDescription == "" {
			utils.Fail(c, utils.E(utils.KindValidation, "All fields are required"))
			return
		}

		admin, err := users.FindByID(c.Request.Context(), identity.ID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				utils.Fail(c, utils.E(utils.KindInvalidToken, "invalid or expired token"))
				return
			}
			utils.Fail(c, utils.Wrap(utils.KindInternal, "something went wrong", err))
			return
		}

		event := models.Event{
			EventTitle:       body.EventTitle,
			EventVenue:       body.EventVenue,
			EventStartTime:   body.EventStartTime,
			EventEndTime:     body.EventEndTime,
			EventStartDate:   body.EventStartDate,
			EventEndDate:     body.EventEndDate,
			EventCost:        body.EventCost,
			EventDescription: body.EventDescription,
			ImageBase64:      body.ImageBase64,
			CreatedAt:        time.Now().UTC(),
			AdminID:          admin.ID,
			AdminName:        admin.Name,
		}
		if _, err := events.Insert(c.Request.Context(), &event); err != nil {
			utils.Fail(c, utils.Wrap(utils.KindInternal, "something went wrong", err))
			return
		}

		utils.Success(c, gin.H{"message": "Event created successfully"})
	}
}

// GetEvents lists all events, newest first. Public.
func GetEvents(events store.EventStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := events.All(c.Request.Context())
		if err != nil {
			utils.Fail(c, utils.Wrap(utils.KindInternal, "something went wrong", err))
			return
		}
		utils.Success(c, gin.H{"events": list})
	}
}

// GetEventDetails returns a single event by id. Public.
func GetEventDetails(events store.EventStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			utils.Fail(c, utils.E(utils.KindValidation, "invalid event id"))
			return
		}

		event, err := events.FindByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				utils.Fail(c, utils.E(utils.KindNotFound, "event not found"))
				return
			}
			utils.Fail(c, utils.Wrap(utils.KindInternal, "something went wrong", err))
			return
		}

		utils.Success(c, gin.H{"event": event})
	}
}

// MyEvents lists the caller's own events, newest first. Any authenticated
// role may call it; non-admins simply get an empty list.
func MyEvents(events store.EventStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := middleware.IdentityFrom(c)
		if !ok {
			utils.Fail(c, utils.E(utils.KindInvalidToken, "missing auth context"))
			return
		}

		list, err := events.ByAdmin(c.Request.Context(), identity.ID)
		if err != nil {
			utils.Fail(c, utils.Wrap(utils.KindInternal, "something went wrong", err))
			return
		}
		utils.Success(c, gin.H{"events": list})
	}
}
