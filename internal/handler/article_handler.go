package handler

import (
	"anoa.com/classsite/internal/dto"
	"anoa.com/classsite/internal/model"
	"anoa.com/classsite/internal/service"
	"anoa.com/classsite/pkg/response"
	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	service service.ArticleService
}

func NewArticleHandler(service service.ArticleService) *ArticleHandler {
	return &ArticleHandler{service: service}
}

func (h *ArticleHandler) List(c *gin.Context) {
	var query dto.ListQuery
	if !bindQuery(c, &query) {
		return
	}
	query.Normalize(10)

	articles, total, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, articles, query.Page, query.Limit, total)
}

func (h *ArticleHandler) Search(c *gin.Context) {
	var query dto.SearchQuery
	if !bindQuery(c, &query) {
		return
	}

	articles, err := h.service.Search(c.Request.Context(), query.Q, query.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	if articles == nil {
		articles = []*model.Article{}
	}

	response.OK(c, articles)
}

func (h *ArticleHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	article, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, article)
}

func (h *ArticleHandler) Create(c *gin.Context) {
	var req dto.CreateArticleRequest
	if !bindJSON(c, &req) {
		return
	}

	article, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Article created successfully", article)
}

func (h *ArticleHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateArticleRequest
	if !bindJSON(c, &req) {
		return
	}

	article, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OKWithMessage(c, "Article updated successfully", article)
}

func (h *ArticleHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "Article deleted successfully")
}
