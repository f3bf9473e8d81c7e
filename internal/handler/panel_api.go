package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/solarmach/internal/catalog"
)

// GetPanels returns the whole catalog as a JSON object keyed by slug.
func (a *API) GetPanels(c *gin.Context) {
	panels := make(map[string]catalog.PanelType, a.catalog.Len())
	for _, entry := range a.catalog.List() {
		panels[entry.Slug] = entry.Panel
	}
	c.JSON(http.StatusOK, panels)
}

// GetPanel returns one panel type as JSON.
func (a *API) GetPanel(c *gin.Context) {
	panel, err := a.catalog.Get(c.Param("slug"))
	if err != nil {
		respondError(c, http.StatusNotFound, "Panel type not found")
		return
	}
	c.JSON(http.StatusOK, panel)
}
