package transport

import (
	"net/http"
	"strconv"
	"time"

	"campus/internal/v0/common"

	"github.com/gin-gonic/gin"
)

// Handler exposes the transport collections over HTTP
type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) GetRoutes(c *gin.Context) {
	crit := Criteria{
		Search: c.Query("search"),
		Type:   c.Query("type"),
	}
	c.JSON(http.StatusOK, common.CreateSuccessResponse(Filter(h.store.All(), crit)))
}

func (h *Handler) GetStops(c *gin.Context) {
	c.JSON(http.StatusOK, common.CreateSuccessResponse(h.store.Stops()))
}

// GetNextDeparture answers the "when is the next bus" lookup for one route
func (h *Handler) GetNextDeparture(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse([]string{"Invalid route id"}))
		return
	}
	now := c.Query("at")
	if now == "" {
		now = time.Now().Format("15:04")
	}
	for _, r := range h.store.All() {
		if r.ID != id {
			continue
		}
		next, ok := NextDeparture(r.Schedule, now)
		if !ok {
			c.JSON(http.StatusOK, common.CreateSuccessResponse(nil))
			return
		}
		c.JSON(http.StatusOK, common.CreateSuccessResponse(gin.H{
			"next":      next,
			"occupancy": OccupancyPercentage(r),
		}))
		return
	}
	c.JSON(http.StatusOK, common.CreateSuccessResponse(nil))
}

func (h *Handler) PostRoute(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse([]string{err.Error()}))
		return
	}
	route := h.store.Create(req)
	c.JSON(http.StatusCreated, common.CreateSuccessResponse(route))
}

func (h *Handler) PutRoute(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse([]string{"Invalid route id"}))
		return
	}
	var patch UpdateRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse([]string{err.Error()}))
		return
	}
	h.store.Update(id, patch)
	c.JSON(http.StatusOK, common.CreateSuccessResponse(nil))
}

func (h *Handler) DeleteRoute(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse([]string{"Invalid route id"}))
		return
	}
	h.store.Delete(id)
	c.JSON(http.StatusOK, common.CreateSuccessResponse(nil))
}

func (h *Handler) PostActive(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse([]string{"Invalid route id"}))
		return
	}
	h.store.ToggleActive(id)
	c.JSON(http.StatusOK, common.CreateSuccessResponse(nil))
}

//   This project is the monolithic backend API for the Smart Campus portal. Announcements, events, dining menus, course schedules, transport, file sharing, notifications and the campus chatbot webhook for our apps.
//   API Copyright (C) 2025 Smart Campus
//       This program is free software: you can redistribute it and/or modify
//       it under the terms of the GNU General Public License as published by
//       the Free Software Foundation, either version 3 of the License, or
//       (at your option) any later version.

//       This program is distributed in the hope that it will be useful,
//       but WITHOUT ANY WARRANTY; without even the implied warranty of
//       MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//       GNU General Public License for more details.

//       You should have received a copy of the GNU General Public License
//       along with this program.  If not, see <https://www.gnu.org/licenses/>.
