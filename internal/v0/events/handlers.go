package events

import (
	"net/http"
	"strconv"

	"campus/internal/v0/common"

	"github.com/gin-gonic/gin"
)

// Handler exposes the event collection over HTTP
type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) GetEvents(c *gin.Context) {
	crit := Criteria{
		Search:   c.Query("search"),
		Category: c.Query("category"),
	}
	c.JSON(http.StatusOK, common.CreateSuccessResponse(Filter(h.store.All(), crit)))
}

func (h *Handler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, common.CreateSuccessResponse(h.store.Stats()))
}

func (h *Handler) PostEvent(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse([]string{err.Error()}))
		return
	}
	e := h.store.Create(req)
	c.JSON(http.StatusCreated, common.CreateSuccessResponse(e))
}

func (h *Handler) PutEvent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse([]string{"Invalid event id"}))
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

func (h *Handler) DeleteEvent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse([]string{"Invalid event id"}))
		return
	}
	h.store.Delete(id)
	c.JSON(http.StatusOK, common.CreateSuccessResponse(nil))
}

func (h *Handler) PostFavorite(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse([]string{"Invalid event id"}))
		return
	}
	h.store.ToggleFavorite(id)
	c.JSON(http.StatusOK, common.CreateSuccessResponse(nil))
}

func (h *Handler) PostRegister(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse([]string{"Invalid event id"}))
		return
	}
	h.store.Register(id)
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
