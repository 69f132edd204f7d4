package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskflow/internal/adapter/http/dto"
	"taskflow/internal/adapter/http/mapper"
	"taskflow/internal/adapter/http/middleware"
	"taskflow/internal/core/domain"
	"taskflow/internal/core/ports"
	"taskflow/pkg/apierrors"
)

type CategoryHandler struct {
	categoryService ports.CategoryService
}

func NewCategoryHandler(categoryService ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	lang := middleware.GetLang(c)

	categories, err := h.categoryService.ListCategories(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		zap.L().Error("failed to list categories", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListCategories, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToCategoryItems(categories))
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidCategory, lang),
		)
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), middleware.GetUserID(c), req.Name, req.Color)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryExists) {
			c.JSON(
				http.StatusConflict,
				apierrors.CreateError(http.StatusConflict, apierrors.MsgCategoryExists, lang),
			)
			return
		}

		zap.L().Error("failed to create category", zap.String("name", req.Name), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateCategory, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToCategoryItem(category))
}
