package controllers

import (
	"github.com/eventlyhq/eventbackend/dto"
	"github.com/eventlyhq/eventbackend/genai"
	"github.com/eventlyhq/eventbackend/utils"
	"github.com/gin-gonic/gin"
)

// GenerateDescription drafts an event description from the submitted fields
// via the Gemini client. Individual fields may be empty; only the external
// call itself can fail the request.
func GenerateDescription(client *genai.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.GenerateDescriptionDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.Fail(c, utils.E(utils.KindValidation, "invalid request body"))
			return
		}

		prompt := genai.BuildEventPrompt(genai.PromptInput{
			EventTitle:     body.EventTitle,
			EventVenue:     body.EventVenue,
			EventStartTime: body.EventStartTime,
			EventEndTime:   body.EventEndTime,
			EventStartDate: body.EventStartDate,
			EventEndDate:   body.EventEndDate,
			EventCost:      body.EventCost,
		})

		description, err := client.GenerateContent(c.Request.Context(), prompt)
		if err != nil {
			utils.Fail(c, utils.Wrap(utils.KindGeneration, "failed to generate description", err))
			return
		}

		utils.Success(c, gin.H{"description": description})
	}
}
