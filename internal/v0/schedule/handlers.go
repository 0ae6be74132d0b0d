package schedule

import (
	"net/http"
	"strconv"

	"campus/internal/v0/common"

	"github.com/gin-gonic/gin"
)

// Handler exposes the weekly schedule over HTTP
type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) GetCourses(c *gin.Context) {
	crit := Criteria{
		Search: c.Query("search"),
		Type:   c.Query("type"),
	}
	c.JSON(http.StatusOK, common.CreateSuccessResponse(Filter(h.store.All(), crit)))
}

func (h *Handler) GetDay(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil || day < 0 || day > 6 {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse([]string{"Invalid day"}))
		return
	}
	c.JSON(http.StatusOK, common.CreateSuccessResponse(h.store.CoursesForDay(day)))
}

// GetSlot answers the timetable grid lookup, e.g. /schedule/days/0/slots/10:00
func (h *Handler) GetSlot(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil || day < 0 || day > 6 {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse([]string{"Invalid day"}))
		return
	}
	course, ok := h.store.CourseAt(day, c.Param("slot"))
	if !ok {
		c.JSON(http.StatusOK, common.CreateSuccessResponse(nil))
		return
	}
	c.JSON(http.StatusOK, common.CreateSuccessResponse(course))
}

func (h *Handler) GetCredits(c *gin.Context) {
	c.JSON(http.StatusOK, common.CreateSuccessResponse(gin.H{"totalCredits": h.store.TotalCredits()}))
}

func (h *Handler) PostCourse(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse([]string{err.Error()}))
		return
	}
	course := h.store.Create(req)
	c.JSON(http.StatusCreated, common.CreateSuccessResponse(course))
}

func (h *Handler) PutCourse(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse([]string{"Invalid course id"}))
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

func (h *Handler) DeleteCourse(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse([]string{"Invalid course id"}))
		return
	}
	h.store.Delete(id)
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
