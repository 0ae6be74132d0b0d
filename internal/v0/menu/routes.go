package menu

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	menu := rg.Group("/menu")
	{
		menu.GET("", h.GetWeek)
		menu.GET("/days/:day/meals/:meal", h.GetMeal)
		menu.POST("/days/:day/meals/:meal", h.PostItem)
		menu.DELETE("/days/:day/meals/:meal/:id", h.DeleteItem)
		menu.POST("/days/:day/meals/:meal/:id/available", h.PostAvailable)
		menu.GET("/favorites", h.GetFavorites)
		menu.POST("/favorites/:id", h.PostFavorite)
	}
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
