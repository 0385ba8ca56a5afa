package controllers

import (
	"errors"
	"net/http"

	"tour-backend/config"
	"tour-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type siteSettingsPayload struct {
	Headline   string `json:"headline"`
	Subheading string `json:"subheading"`
	ImageURL   string `json:"image_url"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
}

// currentSiteSettings returns the singleton hero row, or a zero value
// when none has been configured yet.
func currentSiteSettings() models.SiteSetting {
	var site models.SiteSetting
	if config.DB != nil {
		config.DB.First(&site)
	}
	return site
}

func GetSiteSettings(c *gin.Context) {
	var site models.SiteSetting
	if err := config.DB.First(&site).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"site": models.SiteSetting{}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"site": site})
}

func UpdateSiteSettings(c *gin.Context) {
	var payload siteSettingsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var site models.SiteSetting
	err := config.DB.First(&site).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			site = models.SiteSetting{
				Headline:   payload.Headline,
				Subheading: payload.Subheading,
				ImageURL:   payload.ImageURL,
				Phone:      payload.Phone,
				Email:      payload.Email,
			}
			if err := config.DB.Create(&site).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, gin.H{"site": site})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	site.Headline = payload.Headline
	site.Subheading = payload.Subheading
	site.ImageURL = payload.ImageURL
	site.Phone = payload.Phone
	site.Email = payload.Email

	if err := config.DB.Save(&site).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"site": site})
}
