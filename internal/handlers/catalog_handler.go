package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"studio-backend/internal/models"
	"studio-backend/internal/services"
	"studio-backend/pkg/utils"
)

// CatalogHandler serves the three-level material catalog:
// categories > subcategories > sections.
type CatalogHandler struct {
	Service *services.CatalogService
}

func NewCatalogHandler(s *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: s}
}

func queryID(r *http.Request, name string) int {
	id, _ := strconv.Atoi(r.URL.Query().Get(name))
	return id
}

// Categories

func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req models.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.Service.CreateCategory(r.Context(), &req)
	if err != nil {
		serviceError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, category)
}

func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Service.ListCategories(r.Context())
	if err != nil {
		serviceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, categories)
}

func (h *CatalogHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req models.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.Service.UpdateCategory(r.Context(), idParam(r), &req)
	if err != nil {
		serviceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, category)
}

func (h *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteCategory(r.Context(), idParam(r)); err != nil {
		serviceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// SubCategories

func (h *CatalogHandler) CreateSubCategory(w http.ResponseWriter, r *http.Request) {
	var req models.SubCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sub, err := h.Service.CreateSubCategory(r.Context(), &req)
	if err != nil {
		serviceError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, sub)
}

// ListSubCategories filters by ?category_id= when present.
func (h *CatalogHandler) ListSubCategories(w http.ResponseWriter, r *http.Request) {
	subs, err := h.Service.ListSubCategories(r.Context(), queryID(r, "category_id"))
	if err != nil {
		serviceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, subs)
}

func (h *CatalogHandler) UpdateSubCategory(w http.ResponseWriter, r *http.Request) {
	var req models.SubCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sub, err := h.Service.UpdateSubCategory(r.Context(), idParam(r), &req)
	if err != nil {
		serviceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, sub)
}

func (h *CatalogHandler) DeleteSubCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteSubCategory(r.Context(), idParam(r)); err != nil {
		serviceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// Sections

func (h *CatalogHandler) CreateSection(w http.ResponseWriter, r *http.Request) {
	var req models.SectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	section, err := h.Service.CreateSection(r.Context(), &req)
	if err != nil {
		serviceError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, section)
}

// ListSections filters by ?subcategory_id= when present.
func (h *CatalogHandler) ListSections(w http.ResponseWriter, r *http.Request) {
	sections, err := h.Service.ListSections(r.Context(), queryID(r, "subcategory_id"))
	if err != nil {
		serviceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, sections)
}

func (h *CatalogHandler) UpdateSection(w http.ResponseWriter, r *http.Request) {
	var req models.SectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	section, err := h.Service.UpdateSection(r.Context(), idParam(r), &req)
	if err != nil {
		serviceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, section)
}

func (h *CatalogHandler) DeleteSection(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteSection(r.Context(), idParam(r)); err != nil {
		serviceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
