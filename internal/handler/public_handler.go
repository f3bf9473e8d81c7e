package handler

import (
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/solarmach/internal/service"
)

const successFlashKey = "success"

// ShowHome renders the landing page.
func (a *API) ShowHome(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "index.html", gin.H{
		"title": "SolarMach Imports - Sustainable Energy Solutions",
	})
}

// ShowSolarTechnology renders the catalog listing page.
func (a *API) ShowSolarTechnology(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "solar_technology.html", gin.H{
		"title":  "Solar Technology",
		"panels": a.catalog.List(),
	})
}

// ShowPanelDetail renders the detail page for one panel type.
func (a *API) ShowPanelDetail(c *gin.Context) {
	slug := c.Param("slug")
	panel, err := a.catalog.Get(slug)
	if err != nil {
		a.ShowNotFound(c)
		return
	}

	a.renderHTML(c, http.StatusOK, "panel_detail.html", gin.H{
		"title":      panel.Name,
		"slug":       slug,
		"panel":      panel,
		"howItWorks": renderMarkdown(panel.HowItWorks),
	})
}

// ShowAbout renders the about page.
func (a *API) ShowAbout(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "about.html", gin.H{
		"title": "About Us",
	})
}

// ShowContact renders the contact form, draining any one-shot success
// notice left by a previous submission.
func (a *API) ShowContact(c *gin.Context) {
	session := sessions.Default(c)
	var notice string
	if flashes := session.Flashes(successFlashKey); len(flashes) > 0 {
		if msg, ok := flashes[0].(string); ok {
			notice = msg
		}
	}
	if err := session.Save(); err != nil {
		log.Printf("session: clear flash: %v", err)
	}

	a.renderHTML(c, http.StatusOK, "contact.html", gin.H{
		"title":   "Contact Us",
		"success": notice,
		"form":    service.ContactInput{},
	})
}

// SubmitContact runs the contact submission workflow. Validation
// failures re-render the form; a stored submission always redirects to
// the form with a success notice, whether or not notification mail
// went out.
func (a *API) SubmitContact(c *gin.Context) {
	input := service.ContactInput{
		Name:     c.PostForm("name"),
		Email:    c.PostForm("email"),
		Phone:    c.PostForm("phone"),
		Interest: c.PostForm("interest"),
		Message:  c.PostForm("message"),
	}

	record, err := a.contacts.Submit(input)
	if err != nil {
		if service.IsValidationError(err) {
			a.renderHTML(c, http.StatusBadRequest, "contact.html", gin.H{
				"title": "Contact Us",
				"error": "Please fill in your name, email and message.",
				"form":  input,
			})
			return
		}
		a.renderHTML(c, http.StatusInternalServerError, "contact.html", gin.H{
			"title": "Contact Us",
			"error": "Something went wrong while saving your message. Please try again later.",
			"form":  input,
		})
		return
	}

	notice := "Thanks for reaching out! We received your message."
	if record.Notified {
		notice = "Thanks for reaching out! We received your message and will get back to you by email."
	}

	session := sessions.Default(c)
	session.AddFlash(notice, successFlashKey)
	if err := session.Save(); err != nil {
		log.Printf("session: save flash: %v", err)
	}

	c.Redirect(http.StatusSeeOther, "/contact")
}

// ShowNotFound renders the 404 page for unknown routes and catalog
// entries.
func (a *API) ShowNotFound(c *gin.Context) {
	a.renderHTML(c, http.StatusNotFound, "404.html", gin.H{
		"title": "Page Not Found",
	})
}
