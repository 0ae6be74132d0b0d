package files

import (
	"net/http"

	"campus/internal/v0/common"

	"github.com/gin-gonic/gin"
)

// Handler exposes the shared files over HTTP
type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) GetFiles(c *gin.Context) {
	crit := Criteria{
		Search:     c.Query("search"),
		Category:   c.Query("category"),
		CourseCode: c.Query("courseCode"),
	}
	c.JSON(http.StatusOK, common.CreateSuccessResponse(Filter(h.store.All(), crit)))
}

func (h *Handler) GetCourseCodes(c *gin.Context) {
	c.JSON(http.StatusOK, common.CreateSuccessResponse(h.store.CourseCodes()))
}

func (h *Handler) GetByShareCode(c *gin.Context) {
	file, ok := h.store.ByShareCode(c.Param("code"))
	if !ok {
		c.JSON(http.StatusNotFound, common.CreateErrorResponse([]string{"Unknown share code"}))
		return
	}
	c.JSON(http.StatusOK, common.CreateSuccessResponse(file))
}

func (h *Handler) PostFile(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse([]string{err.Error()}))
		return
	}
	file, err := h.store.Create(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.CreateErrorResponse([]string{"Could not generate share code"}))
		return
	}
	c.JSON(http.StatusCreated, common.CreateSuccessResponse(file))
}

func (h *Handler) DeleteFile(c *gin.Context) {
	h.store.Delete(c.Param("id"))
	c.JSON(http.StatusOK, common.CreateSuccessResponse(nil))
}

func (h *Handler) PostDownload(c *gin.Context) {
	h.store.IncrementDownload(c.Param("id"))
	c.JSON(http.StatusOK, common.CreateSuccessResponse(nil))
}

func (h *Handler) PostVisible(c *gin.Context) {
	h.store.ToggleVisible(c.Param("id"))
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
