package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wgonzales/catalogd/internal/explore"
	"github.com/wgonzales/catalogd/internal/views"
)

// Saved-view request/response types
type CreateViewRequest struct {
	Name      string            `json:"name" binding:"required"`
	Selection explore.Selection `json:"selection"`
}

type ViewResponse struct {
	Name      string            `json:"name"`
	Selection explore.Selection `json:"selection"`
}

type ViewListResponse struct {
	Views []string `json:"views"`
}

// requireViewStore guards the saved-view endpoints.
func (s *Server) requireViewStore(c *gin.Context) bool {
	if s.viewStore == nil {
		errorResponse(c, http.StatusServiceUnavailable, "Saved views not configured")
		return false
	}
	return true
}

// listViews returns all saved view names
func (s *Server) listViews(c *gin.Context) {
	if !s.requireViewStore(c) {
		return
	}

	names, err := s.viewStore.List()
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "Failed to list views")
		return
	}
	if names == nil {
		names = []string{}
	}

	c.JSON(http.StatusOK, ViewListResponse{Views: names})
}

// createView saves a named selection
func (s *Server) createView(c *gin.Context) {
	if !s.requireViewStore(c) {
		return
	}

	var req CreateViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	if err := s.viewStore.Put(req.Name, req.Selection); err != nil {
		if errors.Is(err, views.ErrInvalidViewName) {
			errorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		errorResponse(c, http.StatusInternalServerError, "Failed to save view")
		return
	}

	c.JSON(http.StatusCreated, ViewResponse{Name: req.Name, Selection: req.Selection})
}

// getView returns a saved selection by name
func (s *Server) getView(c *gin.Context) {
	if !s.requireViewStore(c) {
		return
	}

	name := c.Param("name")
	sel, err := s.viewStore.Get(name)
	if err != nil {
		if errors.Is(err, views.ErrViewNotFound) {
			errorResponse(c, http.StatusNotFound, "View not found")
			return
		}
		errorResponse(c, http.StatusInternalServerError, "Failed to load view")
		return
	}

	c.JSON(http.StatusOK, ViewResponse{Name: name, Selection: sel})
}

// deleteView removes a saved selection
func (s *Server) deleteView(c *gin.Context) {
	if !s.requireViewStore(c) {
		return
	}

	name := c.Param("name")
	if err := s.viewStore.Delete(name); err != nil {
		if errors.Is(err, views.ErrViewNotFound) {
			errorResponse(c, http.StatusNotFound, "View not found")
			return
		}
		errorResponse(c, http.StatusInternalServerError, "Failed to delete view")
		return
	}

	c.Status(http.StatusNoContent)
}
