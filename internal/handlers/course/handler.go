package course

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"

	"github.com/antoniomp17/WebPsicolog-a/infras/otel"
	"github.com/antoniomp17/WebPsicolog-a/internal/domains/course/model"
	"github.com/antoniomp17/WebPsicolog-a/internal/domains/course/model/dto"
	"github.com/antoniomp17/WebPsicolog-a/internal/domains/course/service"
	"github.com/antoniomp17/WebPsicolog-a/shared"
	"github.com/antoniomp17/WebPsicolog-a/shared/constant"
	gDto "github.com/antoniomp17/WebPsicolog-a/shared/dto"
	"github.com/antoniomp17/WebPsicolog-a/shared/validator"
	"github.com/antoniomp17/WebPsicolog-a/transport/http/response"
)

type Handler struct {
	service service.Course
	otel    otel.Otel
}

func New(service service.Course, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/courses", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetCourses)
		routerGroup.Get("/{id}", handler.GetCourse)
	})
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/courses", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateCourse)
		routerGroup.Get("/", handler.GetCourses)
		routerGroup.Patch("/{id}", handler.UpdateCourse)
		routerGroup.Delete("/{id}", handler.DeleteCourse)
	})
}

// CreateCourse handles the creation of a new course.
// @Summary Create a new course
// @Description Create a new course with an optional cover image.
// @Tags Course
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Course title"
// @Param slug formData string false "URL slug, derived from the title when empty"
// @Param description formData string false "Course description"
// @Param price_cents formData integer true "Price in euro cents"
// @Param duration formData string false "Course duration"
// @Param level formData string false "Course level"
// @Param featured formData boolean false "Show the course on the landing page"
// @Param active formData boolean false "Course active status"
// @Param image formData file false "Cover image"
// @Success 201 {object} response.Message "Course created successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/courses [post]
// @Security BearerAuth
func (handler *Handler) CreateCourse(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCourse")
	defer scope.End()

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(writer, err)

		return
	}

	req := dto.CreateCourseRequest{
		Title:       request.FormValue("title"),
		Slug:        request.FormValue("slug"),
		Description: request.FormValue("description"),
		Duration:    request.FormValue("duration"),
		Level:       request.FormValue("level"),
	}

	if priceStr := request.FormValue("price_cents"); priceStr != "" {
		if price, err := shared.ConvertStringToInt64(priceStr); err == nil {
			req.PriceCents = price
		}
	}

	req.Featured = shared.ConvertStringToBool(request.FormValue("featured"))
	req.Active = shared.ConvertStringToBool(request.FormValue("active"))

	file, fileHeader, err := request.FormFile("image")
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create course")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Course created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Course created successfully")
}

// GetCourses retrieves courses based on query parameters.
// @Summary Get all courses
// @Description Retrieve courses with optional level, featured and active filters and pagination.
// @Tags Course
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param level query string false "Filter by level"
// @Param featured query boolean false "Filter by featured"
// @Param active query boolean false "Filter by active status"
// @Success 200 {object} response.Data[dto.GetCoursesResponse] "List of courses"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/courses [get]
func (handler *Handler) GetCourses(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCourses")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if level := r.URL.Query().Get(model.FieldLevel); level != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldLevel,
			Operator: gDto.FilterOperatorEq,
			Value:    level,
			Table:    model.TableName,
		})
	}

	if featured := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldFeatured)); featured != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldFeatured,
			Operator: gDto.FilterOperatorEq,
			Value:    *featured,
			Table:    model.TableName,
		})
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	courses, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get courses")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Courses retrieved successfully")

	response.WithJSON(w, http.StatusOK, courses)
}

// GetCourse retrieves a course by its ID or slug.
// @Summary Get a course
// @Description Retrieve a course by its unique identifier or URL slug.
// @Tags Course
// @Accept json
// @Produce json
// @Param id path string true "Course ID or slug"
// @Success 200 {object} response.Data[dto.CourseResponse] "Course details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/courses/{id} [get]
func (handler *Handler) GetCourse(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCourse")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	course, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get course")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Course retrieved successfully")

	response.WithJSON(w, http.StatusOK, course)
}

// UpdateCourse updates an existing course.
// @Summary Update a course
// @Description Update course fields, optionally replacing the cover image.
// @Tags Course
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Course ID"
// @Param title formData string false "Course title"
// @Param slug formData string false "URL slug"
// @Param description formData string false "Course description"
// @Param price_cents formData integer false "Price in euro cents"
// @Param duration formData string false "Course duration"
// @Param level formData string false "Course level"
// @Param featured formData boolean false "Show the course on the landing page"
// @Param active formData boolean false "Course active status"
// @Param image formData file false "Cover image"
// @Success 200 {object} response.Message "Course updated successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/admin/courses/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateCourse(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCourse")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(writer, err)

		return
	}

	req := dto.UpdateCourseRequest{
		Title:       request.FormValue("title"),
		Slug:        request.FormValue("slug"),
		Description: request.FormValue("description"),
		Duration:    request.FormValue("duration"),
		Level:       request.FormValue("level"),
	}

	if priceStr := request.FormValue("price_cents"); priceStr != "" {
		if price, err := shared.ConvertStringToInt64(priceStr); err == nil {
			req.PriceCents = &price
		}
	}

	req.Featured = shared.ConvertStringToBool(request.FormValue("featured"))
	req.Active = shared.ConvertStringToBool(request.FormValue("active"))

	file, fileHeader, err := request.FormFile("image")
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update course")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Course updated successfully by user " + user)

	response.WithMessage(writer, http.StatusOK, "Course updated successfully")
}

// DeleteCourse deletes a course by its ID.
// @Summary Delete a course
// @Description Delete a course and its stored cover image.
// @Tags Course
// @Accept json
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} response.Message "Course deleted successfully"
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/admin/courses/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteCourse(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCourse")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete course")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Course deleted successfully by user " + user)

	response.WithMessage(writer, http.StatusOK, "Course deleted successfully")
}
