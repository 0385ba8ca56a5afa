package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"tour-backend/models"
	"tour-backend/services"
	"tour-backend/utils"

	"github.com/gin-gonic/gin"
)

type PackageController struct {
	PackageSvc *services.PackageService
	WeatherSvc *services.WeatherService
}

func NewPackageController(packageSvc *services.PackageService, weatherSvc *services.WeatherService) *PackageController {
	return &PackageController{PackageSvc: packageSvc, WeatherSvc: weatherSvc}
}

// intQuery parses an integer query parameter. Absent or non-numeric
// input yields nil and the corresponding filter is not applied; silently
// ignoring bad numeric filters is the documented listing behavior.
func intQuery(c *gin.Context, name string) *int {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// lookupWeather runs the best-effort enrichment. Any failure is logged
// and reported as "no weather data" so the caller's response never
// depends on the provider.
func (ctrl *PackageController) lookupWeather(destination string) *models.Weather {
	weather, err := ctrl.WeatherSvc.Current(destination)
	if err != nil {
		log.Printf("weather lookup for %q skipped: %v", destination, err)
		return nil
	}
	return weather
}

// ListPackages (GET /api/packages) lists packages with optional
// category, destination and price-ceiling filters, AND-combined. A
// destination filter also triggers the weather lookup.
func (ctrl *PackageController) ListPackages(c *gin.Context) {
	filter := services.ListFilter{
		Category:    strings.TrimSpace(c.Query("category")),
		Destination: strings.TrimSpace(c.Query("destination")),
		MaxPrice:    intQuery(c, "price"),
	}

	packages, err := ctrl.PackageSvc.List(filter)
	if err != nil {
		log.Printf("ListPackages error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch packages")
		return
	}

	resp := gin.H{
		"packages":   packages,
		"categories": models.Categories(),
		"site":       currentSiteSettings(),
	}
	if filter.Destination != "" {
		if weather := ctrl.lookupWeather(filter.Destination); weather != nil {
			resp["weather"] = weather
		}
	}

	c.JSON(http.StatusOK, resp)
}

// GetPackageDetail (GET /api/packages/:id) returns the package, its
// itineraries ordered by day, and up to three same-destination packages.
func (ctrl *PackageController) GetPackageDetail(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	pkg, itineraries, similar, err := ctrl.PackageSvc.GetDetail(id)
	if err != nil {
		if errors.Is(err, services.ErrPackageNotFound) {
			utils.JSONError(c, http.StatusNotFound, "package not found")
			return
		}
		log.Printf("GetPackageDetail error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch package")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"package":          pkg,
		"itineraries":      itineraries,
		"similar_packages": similar,
		"site":             currentSiteSettings(),
	})
}

// SearchPackages (GET /api/search) matches the free-text query against
// title, destination and description, with optional category, price
// bounds and exact duration filters. The query term doubles as the
// destination for the weather lookup.
func (ctrl *PackageController) SearchPackages(c *gin.Context) {
	filter := services.SearchFilter{
		Query:    strings.TrimSpace(c.Query("q")),
		Category: strings.TrimSpace(c.Query("category")),
		MinPrice: intQuery(c, "min_price"),
		MaxPrice: intQuery(c, "max_price"),
		Duration: intQuery(c, "duration"),
	}

	packages, total, err := ctrl.PackageSvc.Search(filter)
	if err != nil {
		log.Printf("SearchPackages error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "search failed")
		return
	}

	resp := gin.H{
		"packages":      packages,
		"query":         filter.Query,
		"total_results": total,
		"site":          currentSiteSettings(),
	}
	if filter.Query != "" {
		if weather := ctrl.lookupWeather(filter.Query); weather != nil {
			resp["weather"] = weather
		}
	}

	c.JSON(http.StatusOK, resp)
}
