package controller

import (
	"olympus_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// PageController answers the informational pages. Rendering is left to the
// client; these return the data a page needs.
type PageController struct{}

func NewPageController() *PageController {
	return &PageController{}
}

type Resource struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

var studyResources = []Resource{
	{Title: "Art of Problem Solving", Description: "Olympiad forums and problem collections", URL: "https://artofproblemsolving.com"},
	{Title: "Bangladesh Math Olympiad", Description: "Past BdMO papers and announcements", URL: "https://matholympiad.org.bd"},
	{Title: "IMO Official", Description: "International Mathematical Olympiad problems and results", URL: "https://www.imo-official.org"},
}

// @Summary Platform landing info
// @Tags Pages
// @Produce json
// @Success 200 {object} util.Response
// @Router / [get]
func (c *PageController) Index(ctx *gin.Context) {
	data := gin.H{
		"name":    "Olympus",
		"tagline": "Math olympiad learning platform",
	}
	if identity := util.GetIdentityFromContext(ctx); identity != nil {
		data["user"] = identity
	}
	util.Success(ctx, data)
}

func (c *PageController) About(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"name":        "Olympus",
		"description": "Courses, olympiad problems, exams, live classes and an AI tutor for math olympiad students.",
	})
}

// @Summary Study resources
// @Tags Pages
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]Resource}
// @Router /resources [get]
func (c *PageController) Resources(ctx *gin.Context) {
	util.Success(ctx, studyResources)
}

// AIChat is the shell of the tutor page; the conversation itself goes
// through /api/ai/ask.
func (c *PageController) AIChat(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"user":     util.GetIdentityFromContext(ctx),
		"endpoint": "/api/ai/ask",
	})
}
