package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"medicare/models"
	"medicare/services/doctor"
	"medicare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DoctorHandler serves the admin-only doctor endpoints.
type DoctorHandler struct {
	Service doctor.DoctorService
	Logger  *zap.Logger
}

// NewDoctorHandler creates a new DoctorHandler.
func NewDoctorHandler(svc doctor.DoctorService, logger *zap.Logger) *DoctorHandler {
	return &DoctorHandler{Service: svc, Logger: logger}
}

// DoctorRequest is the validated POST /doctors body.
type DoctorRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Specialty string `json:"specialty" binding:"required"`
	Image     string `json:"img"`
}

// GetDoctors handles GET /doctors.
func (h *DoctorHandler) GetDoctors(c *gin.Context) {
	doctors, err := h.Service.GetAll()
	if err != nil {
		h.Logger.Error("doctor list failed", zap.Error(err))
		utils.SendFailure(c, err.Error())
		return
	}
	utils.SendData(c, doctors)
}

// CreateDoctor handles POST /doctors.
func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	var req DoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	d := &models.Doctor{
		Name:      req.Name,
		Email:     req.Email,
		Specialty: req.Specialty,
		Image:     req.Image,
	}
	if err := h.Service.Create(d); err != nil {
		if errors.Is(err, doctor.ErrNotCompleted) {
			utils.SendFailure(c, "Couldn't create the doctor")
			return
		}
		h.Logger.Error("doctor create failed", zap.String("name", req.Name), zap.Error(err))
		utils.SendFailure(c, err.Error())
		return
	}
	utils.SendMessage(c, fmt.Sprintf("%s successfully created", d.Name))
}

// DeleteDoctor handles DELETE /doctors/:id.
func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
	id := c.Param("id")

	deleted, err := h.Service.Delete(id)
	if err != nil {
		h.Logger.Error("doctor delete failed", zap.String("id", id), zap.Error(err))
		utils.SendFailure(c, err.Error())
		return
	}
	if !deleted {
		c.JSON(http.StatusOK, utils.APIResponse{Success: false})
		return
	}
	c.JSON(http.StatusOK, utils.APIResponse{Success: true})
}
