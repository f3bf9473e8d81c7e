package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/solarmach/internal/catalog"
	"github.com/solarmach/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	catalog  *catalog.Catalog
	contacts *service.ContactService
}

// NewAPI constructs a handler set over the catalog, the database and
// the notification seam.
func NewAPI(gdb *gorm.DB, cat *catalog.Catalog, notifier service.Notifier) *API {
	return &API{
		catalog:  cat,
		contacts: service.NewContactService(gdb, notifier),
	}
}

func (a *API) renderHTML(c *gin.Context, status int, template string, data gin.H) {
	payload := gin.H{"year": time.Now().Year()}
	for key, value := range data {
		payload[key] = value
	}
	c.HTML(status, template, payload)
}
