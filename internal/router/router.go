package router

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/solarmach/internal/handler"
)

// SetupRouter configures the gin engine and routes. templateGlob is
// overridable so tests can point at the templates relative to their
// own package directory; empty means the repo-root default.
func SetupRouter(api *handler.API, sessionSecret, templateGlob string) *gin.Engine {
	r := gin.Default()

	store := cookie.NewStore([]byte(sessionSecret))
	r.Use(sessions.Sessions("solarmach_session", store))
	r.Use(requestID())

	if templateGlob == "" {
		templateGlob = "web/template/*.html"
	}
	r.LoadHTMLGlob(templateGlob)
	r.Static("/static", "./web/static")

	r.GET("/", api.ShowHome)
	r.GET("/solar-technology", api.ShowSolarTechnology)
	r.GET("/solar-technology/:slug", api.ShowPanelDetail)
	r.GET("/about", api.ShowAbout)
	r.GET("/contact", api.ShowContact)
	r.POST("/contact", api.SubmitContact)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/panels", api.GetPanels)
		apiGroup.GET("/panels/:slug", api.GetPanel)
	}

	r.NoRoute(api.ShowNotFound)

	return r
}

// requestID tags every request with an id for log correlation,
// honouring one supplied by an upstream proxy.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}
