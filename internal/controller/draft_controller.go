package controller

import (
	"errors"

	"unicourse_backend/internal/service"
	"unicourse_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// DraftController 问卷两阶段之间的画像暂存接口
type DraftController struct {
	Drafts *service.DraftService
}

func NewDraftController(drafts *service.DraftService) *DraftController {
	return &DraftController{Drafts: drafts}
}

// @Summary 暂存问卷画像
// @Description 第一阶段问卷提交后暂存，返回草稿ID
// @Tags 问卷
// @Accept json
// @Produce json
// @Param body body service.StudentProfile true "问卷画像（允许部分字段）"
// @Success 201 {object} util.Response
// @Router /drafts [post]
func (c *DraftController) Save(ctx *gin.Context) {
	var profile service.StudentProfile
	if err := ctx.ShouldBindJSON(&profile); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	id, err := c.Drafts.Save(ctx.Request.Context(), profile)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"draftId": id})
}

// @Summary 领取问卷画像
// @Description 即读即删，同一草稿只能被领取一次
// @Tags 问卷
// @Produce json
// @Param id path string true "草稿ID"
// @Success 200 {object} util.Response
// @Router /drafts/{id}/claim [post]
func (c *DraftController) Claim(ctx *gin.Context) {
	profile, err := c.Drafts.Claim(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrDraftNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, profile)
}
