package article

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"

	"github.com/antoniomp17/WebPsicolog-a/infras/otel"
	"github.com/antoniomp17/WebPsicolog-a/internal/domains/article/model"
	"github.com/antoniomp17/WebPsicolog-a/internal/domains/article/model/dto"
	"github.com/antoniomp17/WebPsicolog-a/internal/domains/article/service"
	"github.com/antoniomp17/WebPsicolog-a/shared"
	"github.com/antoniomp17/WebPsicolog-a/shared/constant"
	gDto "github.com/antoniomp17/WebPsicolog-a/shared/dto"
	"github.com/antoniomp17/WebPsicolog-a/shared/validator"
	"github.com/antoniomp17/WebPsicolog-a/transport/http/response"
)

type Handler struct {
	service service.Article
	otel    otel.Otel
}

func New(service service.Article, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/articles", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetArticles)
		routerGroup.Get("/{id}", handler.GetArticle)
	})
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/articles", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateArticle)
		routerGroup.Get("/", handler.GetArticles)
		routerGroup.Patch("/{id}", handler.UpdateArticle)
		routerGroup.Delete("/{id}", handler.DeleteArticle)
	})
}

// CreateArticle handles the creation of a new article.
// @Summary Create a new article
// @Description Create a new blog article.
// @Tags Article
// @Accept json
// @Produce json
// @Param request body dto.CreateArticleRequest true "Create Article Request"
// @Success 201 {object} response.Message "Article created successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/articles [post]
// @Security BearerAuth
func (handler *Handler) CreateArticle(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateArticle")
	defer scope.End()

	req := dto.CreateArticleRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create article")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Article created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Article created successfully")
}

// GetArticles retrieves articles based on query parameters.
// @Summary Get all articles
// @Description Retrieve articles with optional author and published filters and pagination.
// @Tags Article
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param author query string false "Filter by author"
// @Param published query boolean false "Filter by published status"
// @Success 200 {object} response.Data[dto.GetArticlesResponse] "List of articles"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/articles [get]
func (handler *Handler) GetArticles(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetArticles")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if author := r.URL.Query().Get(model.FieldAuthor); author != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldAuthor,
			Operator: gDto.FilterOperatorEq,
			Value:    author,
			Table:    model.TableName,
		})
	}

	if published := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldPublished)); published != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldPublished,
			Operator: gDto.FilterOperatorEq,
			Value:    *published,
			Table:    model.TableName,
		})
	}

	articles, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get articles")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Articles retrieved successfully")

	response.WithJSON(w, http.StatusOK, articles)
}

// GetArticle retrieves an article by its ID or slug.
// @Summary Get an article
// @Description Retrieve an article by its unique identifier or URL slug.
// @Tags Article
// @Accept json
// @Produce json
// @Param id path string true "Article ID or slug"
// @Success 200 {object} response.Data[dto.ArticleResponse] "Article details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/articles/{id} [get]
func (handler *Handler) GetArticle(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetArticle")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	article, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get article")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Article retrieved successfully")

	response.WithJSON(w, http.StatusOK, article)
}

// UpdateArticle updates an existing article.
// @Summary Update an article
// @Description Update article fields.
// @Tags Article
// @Accept json
// @Produce json
// @Param id path string true "Article ID"
// @Param request body dto.UpdateArticleRequest true "Update Article Request"
// @Success 200 {object} response.Message "Article updated successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/admin/articles/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateArticle(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateArticle")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.UpdateArticleRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update article")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Article updated successfully by user " + user)

	response.WithMessage(writer, http.StatusOK, "Article updated successfully")
}

// DeleteArticle deletes an article by its ID.
// @Summary Delete an article
// @Description Delete an article.
// @Tags Article
// @Accept json
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} response.Message "Article deleted successfully"
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/admin/articles/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteArticle(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteArticle")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete article")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Article deleted successfully by user " + user)

	response.WithMessage(writer, http.StatusOK, "Article deleted successfully")
}
