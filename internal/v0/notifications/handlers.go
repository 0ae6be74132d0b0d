package notifications

import (
	"net/http"

	"campus/internal/v0/common"

	"github.com/gin-gonic/gin"
)

// Handler exposes the inbox over HTTP
type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) GetNotifications(c *gin.Context) {
	crit := Criteria{
		Search: c.Query("search"),
		Type:   c.Query("type"),
		Status: c.Query("status"),
	}
	c.JSON(http.StatusOK, common.CreateSuccessResponse(Filter(h.store.All(), crit)))
}

func (h *Handler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, common.CreateSuccessResponse(h.store.Stats()))
}

func (h *Handler) PostNotification(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse([]string{err.Error()}))
		return
	}
	n := h.store.Create(req)
	c.JSON(http.StatusCreated, common.CreateSuccessResponse(n))
}

func (h *Handler) PostRead(c *gin.Context) {
	h.store.MarkRead(c.Param("id"))
	c.JSON(http.StatusOK, common.CreateSuccessResponse(nil))
}

func (h *Handler) PostUnread(c *gin.Context) {
	h.store.MarkUnread(c.Param("id"))
	c.JSON(http.StatusOK, common.CreateSuccessResponse(nil))
}

func (h *Handler) PostReadAll(c *gin.Context) {
	h.store.MarkAllRead()
	c.JSON(http.StatusOK, common.CreateSuccessResponse(nil))
}

func (h *Handler) DeleteNotification(c *gin.Context) {
	h.store.Delete(c.Param("id"))
	c.JSON(http.StatusOK, common.CreateSuccessResponse(nil))
}

func (h *Handler) DeleteSelected(c *gin.Context) {
	var req DeleteSelectedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse([]string{err.Error()}))
		return
	}
	h.store.DeleteSelected(req.IDs)
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
