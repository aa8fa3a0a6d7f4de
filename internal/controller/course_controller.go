package controller

import (
	"errors"
	"strconv"

	"unicourse_backend/internal/service"
	"unicourse_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	Catalog *service.CatalogService
}

func NewCourseController(catalog *service.CatalogService) *CourseController {
	return &CourseController{Catalog: catalog}
}

// @Summary 课程目录列表
// @Tags 课程
// @Produce json
// @Param page query int false "页码"
// @Param limit query int false "每页数量"
// @Success 200 {object} util.Response
// @Router /courses [get]
func (c *CourseController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	courses, total, err := c.Catalog.List(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  courses,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// @Summary 课程详情
// @Tags 课程
// @Produce json
// @Param id path string true "课程ID"
// @Success 200 {object} util.Response
// @Router /courses/{id} [get]
func (c *CourseController) Get(ctx *gin.Context) {
	course, err := c.Catalog.Get(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, course)
}
