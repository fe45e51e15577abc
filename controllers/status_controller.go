package controllers

import (
	"net/http"

	"storefront-service/database"

	"github.com/gin-gonic/gin"
)

const serviceName = "Skinny Fit Tea API"

// StatusController serves the service banner and connectivity probes.
// A nil store means the document store was never configured.
type StatusController struct {
	store *database.Store
}

func NewStatusController(store *database.Store) *StatusController {
	return &StatusController{store: store}
}

func (sc *StatusController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"name": serviceName, "status": "ok"})
}

func (sc *StatusController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

// Test reports backend and database connectivity, listing the collections
// of the configured database. It never fails the request: connectivity
// problems show up in the body instead.
func (sc *StatusController) Test(c *gin.Context) {
	resp := gin.H{
		"backend":     "running",
		"database":    "not configured",
		"collections": []string{},
	}
	if sc.store != nil {
		names, err := sc.store.Collections(c.Request.Context())
		if err != nil {
			resp["database"] = "error: " + err.Error()
		} else {
			resp["database"] = "connected"
			resp["collections"] = names
		}
	}
	c.JSON(http.StatusOK, resp)
}
