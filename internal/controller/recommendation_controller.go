package controller

import (
	"errors"
	"net/http"

	"unicourse_backend/internal/service"
	"unicourse_backend/internal/util"
	"unicourse_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RecommendationController struct {
	Service *service.RecommendationService
}

func NewRecommendationController(svc *service.RecommendationService) *RecommendationController {
	return &RecommendationController{Service: svc}
}

// swagger:model RecommendationRequest
type RecommendationRequest struct {
	StudentResponses service.StudentProfile `json:"studentResponses"`
}

// RecommendationResponse 与前端约定的响应结构，不走统一 Response 包装
// swagger:model RecommendationResponse
type RecommendationResponse struct {
	Success           bool                  `json:"success"`
	Recommendations   []service.CourseMatch `json:"recommendations,omitempty"`
	StudentResponseID string                `json:"studentResponseId,omitempty"`
	Error             string                `json:"error,omitempty"`
}

// @Summary 生成课程推荐
// @Description 根据学生问卷生成Top-5课程推荐并持久化
// @Tags 推荐
// @Accept json
// @Produce json
// @Param body body RecommendationRequest true "学生问卷"
// @Success 200 {object} RecommendationResponse
// @Failure 400 {object} RecommendationResponse
// @Failure 503 {object} RecommendationResponse
// @Router /recommendations [post]
func (c *RecommendationController) Generate(ctx *gin.Context) {
	var req RecommendationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, RecommendationResponse{Success: false, Error: err.Error()})
		return
	}

	result, err := c.Service.Recommend(ctx.Request.Context(), req.StudentResponses)
	if err != nil {
		c.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, RecommendationResponse{
		Success:           true,
		Recommendations:   result.Matches,
		StudentResponseID: result.StudentResponseID,
	})
}

func (c *RecommendationController) writeError(ctx *gin.Context, err error) {
	var providerErr *util.ProviderError

	switch {
	case errors.Is(err, util.ErrNoCandidatesAvailable):
		ctx.JSON(http.StatusBadRequest, RecommendationResponse{
			Success: false,
			Error:   "No courses have embeddings generated yet. Please run the course embedding generation first.",
		})
	case errors.As(err, &providerErr):
		logger.Log.Error("Embedding provider failure", zap.Error(err))
		if providerErr.RateLimited {
			ctx.JSON(http.StatusServiceUnavailable, RecommendationResponse{
				Success: false,
				Error:   "The recommendation service is receiving too many requests. Please try again later.",
			})
			return
		}
		ctx.JSON(http.StatusBadGateway, RecommendationResponse{
			Success: false,
			Error:   providerErr.Error(),
		})
	case errors.Is(err, util.ErrInvalidInput):
		ctx.JSON(http.StatusBadRequest, RecommendationResponse{Success: false, Error: err.Error()})
	default:
		logger.Log.Error("Recommendation pipeline failed", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, RecommendationResponse{
			Success: false,
			Error:   "Failed to generate recommendations. Please try again.",
		})
	}
}

// @Summary 查询历史推荐
// @Description 按提交ID读取已持久化的推荐集合
// @Tags 推荐
// @Produce json
// @Param responseId path string true "提交ID"
// @Success 200 {object} util.Response
// @Router /recommendations/{responseId} [get]
func (c *RecommendationController) GetByResponse(ctx *gin.Context) {
	responseID := ctx.Param("responseId")

	result, err := c.Service.GetByStudentResponse(responseID)
	if err != nil {
		if errors.Is(err, util.ErrResponseNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, result)
}
