package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Landing renders the public marketing page.
func Landing(c *gin.Context) {
	c.HTML(http.StatusOK, "landing.html", gin.H{
		"title": "AutoCheck Pro",
	})
}

// LoginPage renders the login form.
func LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"title": "Entrar - AutoCheck Pro",
	})
}

// DashboardPage renders the dashboard shell; data comes from /api.
func DashboardPage(c *gin.Context) {
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"title": "Dashboard - AutoCheck Pro",
	})
}
