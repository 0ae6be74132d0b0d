package webhook

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler exposes the fulfillment endpoint
type Handler struct {
	dispatcher *Dispatcher
}

func NewHandler(dispatcher *Dispatcher) *Handler {
	return &Handler{dispatcher: dispatcher}
}

// PostWebhook answers a fulfillment request. The chatbot platform expects
// 200 with a fulfillmentText even for intents we do not know.
func (h *Handler) PostWebhook(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{FulfillmentText: "Geçersiz istek."})
		return
	}
	text := h.dispatcher.Dispatch(req.QueryResult.Intent.DisplayName)
	c.JSON(http.StatusOK, Response{FulfillmentText: text})
}

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	rg.POST("/webhook", h.PostWebhook)
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
