package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"example.com/wellbeing-wheel/backend/internal/catalog"
)

type CatalogResponse struct {
	Categories []catalog.Category `json:"categories"`
	Items      []catalog.Item     `json:"items"`
}

// Catalog возвращает статический каталог категорий и пунктов колеса.
func Catalog(c echo.Context) error {
	return c.JSON(http.StatusOK, CatalogResponse{
		Categories: catalog.Categories(),
		Items:      catalog.Items(),
	})
}
