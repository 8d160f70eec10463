package routes

import (
	"elousia-backend/handlers/contacts"
	"elousia-backend/handlers/notifications"
	"elousia-backend/handlers/pages"

	"github.com/gin-gonic/gin"
)

func PagesRoutes(api *gin.RouterGroup) {
	api.GET("/notifications", notifications.List)

	api.GET("/faqs", pages.FAQs)
	api.GET("/about-us", pages.AboutUs)
	api.GET("/help-and-support", pages.HelpAndSupport)
	api.GET("/terms-and-conditions", pages.TermsAndConditions)
	api.GET("/privacy-policy", pages.PrivacyPolicy)

	api.POST("/contact-us", contacts.ContactUs)
	api.POST("/feedback", contacts.SubmitFeedback)
}
