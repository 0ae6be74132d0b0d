package menu

import (
	"net/http"
	"strconv"

	"campus/internal/v0/common"

	"github.com/gin-gonic/gin"
)

// Handler exposes the weekly menu over HTTP
type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) GetWeek(c *gin.Context) {
	c.JSON(http.StatusOK, common.CreateSuccessResponse(h.store.Week()))
}

func (h *Handler) GetMeal(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse([]string{"Invalid day index"}))
		return
	}
	dayMenu, ok := h.store.Day(day)
	if !ok {
		c.JSON(http.StatusNotFound, common.CreateErrorResponse([]string{"No menu for the requested day"}))
		return
	}
	items, ok := dayMenu.Meal(c.Param("meal"))
	if !ok {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse([]string{"Unknown meal"}))
		return
	}
	crit := Criteria{
		Search: c.Query("search"),
		Filter: c.Query("filter"),
	}
	c.JSON(http.StatusOK, common.CreateSuccessResponse(Filter(items, crit)))
}

func (h *Handler) PostItem(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse([]string{"Invalid day index"}))
		return
	}
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse([]string{err.Error()}))
		return
	}
	item, ok := h.store.AddItem(day, c.Param("meal"), req)
	if !ok {
		c.JSON(http.StatusNotFound, common.CreateErrorResponse([]string{"No menu for the requested day or meal"}))
		return
	}
	c.JSON(http.StatusCreated, common.CreateSuccessResponse(item))
}

func (h *Handler) DeleteItem(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse([]string{"Invalid day index"}))
		return
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse([]string{"Invalid item id"}))
		return
	}
	h.store.DeleteItem(day, c.Param("meal"), id)
	c.JSON(http.StatusOK, common.CreateSuccessResponse(nil))
}

func (h *Handler) PostAvailable(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse([]string{"Invalid day index"}))
		return
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse([]string{"Invalid item id"}))
		return
	}
	var req AvailableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse([]string{err.Error()}))
		return
	}
	if !h.store.SetAvailable(day, c.Param("meal"), id, *req.Available) {
		c.JSON(http.StatusNotFound, common.CreateErrorResponse([]string{"No such dish on the requested day and meal"}))
		return
	}
	c.JSON(http.StatusOK, common.CreateSuccessResponse(nil))
}

func (h *Handler) GetFavorites(c *gin.Context) {
	c.JSON(http.StatusOK, common.CreateSuccessResponse(h.store.Favorites()))
}

func (h *Handler) PostFavorite(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse([]string{"Invalid item id"}))
		return
	}
	h.store.ToggleFavorite(id)
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
