package api

import (
	"errors"
	"net/http"

	resdto "equiplend/internal/handler/dto/response"
	"equiplend/internal/pkg/errs"
	"equiplend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EquipmentHandler struct {
	reads queries.EquipmentQueries
}

func NewEquipmentHandler(reads queries.EquipmentQueries) *EquipmentHandler {
	return &EquipmentHandler{reads: reads}
}

// @Summary List equipment
// @Tags equipment
// @Produce json
// @Security BearerAuth
// @Param type_id query string false "Filter by type"
// @Param status query string false "Filter by status"
// @Success 200 {array} resdto.EquipmentResponse
// @Router /equipment [get]
func (h *EquipmentHandler) ListEquipment(c *gin.Context) {
	var f queries.ListEquipmentFilter

	if s := c.Query("type_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid type ID"})
			return
		}
		f.TypeID = &id
	}
	if s := c.Query("status"); s != "" {
		f.Status = &s
	}
	f.ActiveOnly = c.Query("include_inactive") != "true"

	views, err := h.reads.ListEquipment(c.Request.Context(), f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	out := make([]*resdto.EquipmentResponse, 0, len(views))
	for i := range views {
		out = append(out, resdto.FromEquipmentView(&views[i]))
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Get equipment
// @Tags equipment
// @Produce json
// @Security BearerAuth
// @Param id path string true "Equipment ID"
// @Success 200 {object} resdto.EquipmentResponse
// @Failure 404 {object} map[string]string
// @Router /equipment/{id} [get]
func (h *EquipmentHandler) GetEquipment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid equipment ID"})
		return
	}

	view, err := h.reads.EquipmentByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrEquipmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Equipment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromEquipmentView(view))
}

// @Summary List equipment types
// @Tags equipment
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.EquipmentTypeResponse
// @Router /equipment/types [get]
func (h *EquipmentHandler) ListEquipmentTypes(c *gin.Context) {
	views, err := h.reads.ListEquipmentTypes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	out := make([]*resdto.EquipmentTypeResponse, 0, len(views))
	for i := range views {
		out = append(out, resdto.FromEquipmentTypeView(&views[i]))
	}
	c.JSON(http.StatusOK, out)
}
