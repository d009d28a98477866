package handler

import (
	"log"

	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type PlanHandler struct {
	PlanService *usecase.PlanService
}

func NewPlanHandler(planService *usecase.PlanService) *PlanHandler {
	return &PlanHandler{PlanService: planService}
}

func (h *PlanHandler) ListPlans(c *gin.Context) {
	plans, err := h.PlanService.ListPlans(c.Request.Context())
	if err != nil {
		log.Printf("Failed to list plans: %v", err)
		utils.InternalError(c, "Failed to list plans")
		return
	}
	if plans == nil {
		plans = []*model.SubscriptionPlan{}
	}
	utils.Success(c, gin.H{"plans": plans})
}

func (h *PlanHandler) GetPlan(c *gin.Context) {
	plan, err := h.PlanService.GetPlan(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == usecase.ErrPlanNotFound {
			utils.NotFound(c, "Plan not found")
			return
		}
		utils.InternalError(c, "Failed to fetch plan")
		return
	}
	utils.Success(c, plan)
}

func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req model.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	plan, err := h.PlanService.CreatePlan(c.Request.Context(), req)
	if err != nil {
		switch err {
		case usecase.ErrPlanInvalid:
			utils.BadRequest(c, "Name and price are required")
		case usecase.ErrPlanNameTaken:
			utils.Conflict(c, "A plan with this name already exists")
		default:
			log.Printf("Failed to create plan: %v", err)
			utils.InternalError(c, "Failed to create plan")
		}
		return
	}

	utils.Created(c, plan)
}

func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	var req model.UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	plan, err := h.PlanService.UpdatePlan(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch err {
		case usecase.ErrPlanNotFound:
			utils.NotFound(c, "Plan not found")
		case usecase.ErrPlanInvalid:
			utils.BadRequest(c, "Plan name cannot be empty")
		case usecase.ErrPlanNameTaken:
			utils.Conflict(c, "A plan with this name already exists")
		default:
			log.Printf("Failed to update plan: %v", err)
			utils.InternalError(c, "Failed to update plan")
		}
		return
	}

	utils.Success(c, plan)
}

func (h *PlanHandler) DeletePlan(c *gin.Context) {
	if err := h.PlanService.DeletePlan(c.Request.Context(), c.Param("id")); err != nil {
		if err == usecase.ErrPlanNotFound {
			utils.NotFound(c, "Plan not found")
			return
		}
		log.Printf("Failed to delete plan: %v", err)
		utils.InternalError(c, "Failed to delete plan")
		return
	}

	utils.Success(c, gin.H{"message": "Plan deleted"})
}
