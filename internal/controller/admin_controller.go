package controller

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"unicourse_backend/internal/config"
	"unicourse_backend/internal/service"
	"unicourse_backend/internal/util"
	"unicourse_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AdminController struct {
	Backfill *service.BackfillService
	Catalog  *service.CatalogService
	Config   *config.Config
}

func NewAdminController(backfill *service.BackfillService, catalog *service.CatalogService, cfg *config.Config) *AdminController {
	return &AdminController{Backfill: backfill, Catalog: catalog, Config: cfg}
}

type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// BackfillResponse 与管理端约定的响应结构
// swagger:model BackfillResponse
type BackfillResponse struct {
	Success          bool   `json:"success"`
	CoursesProcessed int    `json:"coursesProcessed"`
	Failures         int    `json:"failures"`
	Error            string `json:"error,omitempty"`
}

// @Summary 管理员登录
// @Tags 管理
// @Accept json
// @Produce json
// @Param body body AdminLoginRequest true "管理员口令"
// @Success 200 {object} util.Response
// @Router /admin/login [post]
func (c *AdminController) Login(ctx *gin.Context) {
	var req AdminLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(c.Config.Admin.Password)) != 1 {
		util.Unauthorized(ctx)
		return
	}

	token, err := util.GenerateJWT(util.RoleAdmin, c.Config.JWT.Secret, c.Config.JWT.ExpireTime)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"token": token})
}

// @Summary 触发向量回填
// @Description 为所有缺失向量的课程批量生成向量
// @Tags 管理
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} BackfillResponse
// @Failure 500 {object} BackfillResponse
// @Router /admin/embeddings/backfill [post]
func (c *AdminController) RunBackfill(ctx *gin.Context) {
	report, err := c.Backfill.BackfillAll(ctx.Request.Context())
	if err != nil {
		logger.Log.Error("Embedding backfill failed", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, BackfillResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, BackfillResponse{
		Success:          true,
		CoursesProcessed: report.Processed,
		Failures:         report.Failed,
	})
}

// @Summary 向量覆盖情况
// @Tags 管理
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /admin/embeddings/status [get]
func (c *AdminController) EmbeddingStatus(ctx *gin.Context) {
	status, err := c.Backfill.Status()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, status)
}

// @Summary 导入课程目录
// @Tags 管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body []service.CourseInput true "课程列表"
// @Success 201 {object} util.Response
// @Router /admin/courses/import [post]
func (c *AdminController) ImportCourses(ctx *gin.Context) {
	var inputs []service.CourseInput
	if err := ctx.ShouldBindJSON(&inputs); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	count, err := c.Catalog.Import(inputs)
	if err != nil {
		if errors.Is(err, util.ErrInvalidInput) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"imported": count})
}
