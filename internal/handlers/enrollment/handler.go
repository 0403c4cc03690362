package enrollment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"

	"github.com/antoniomp17/WebPsicolog-a/infras/otel"
	"github.com/antoniomp17/WebPsicolog-a/internal/domains/enrollment/model"
	"github.com/antoniomp17/WebPsicolog-a/internal/domains/enrollment/model/dto"
	"github.com/antoniomp17/WebPsicolog-a/internal/domains/enrollment/service"
	"github.com/antoniomp17/WebPsicolog-a/shared/constant"
	gDto "github.com/antoniomp17/WebPsicolog-a/shared/dto"
	"github.com/antoniomp17/WebPsicolog-a/shared/validator"
	"github.com/antoniomp17/WebPsicolog-a/transport/http/response"
)

type Handler struct {
	service service.Enrollment
	otel    otel.Otel
}

func New(service service.Enrollment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/enrollments", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateEnrollment)
		routerGroup.Get("/my", handler.GetMyEnrollments)
		routerGroup.Get("/{id}", handler.GetEnrollment)
	})
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/enrollments", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetEnrollments)
		routerGroup.Patch("/{id}/paid", handler.MarkEnrollmentPaid)
		routerGroup.Patch("/{id}/cancel", handler.CancelEnrollment)
	})
}

// CreateEnrollment enrolls the authenticated user in a course.
// @Summary Enroll in a course
// @Description Enroll in a course and receive a Stripe checkout URL. Free courses are paid immediately.
// @Tags Enrollment
// @Accept json
// @Produce json
// @Param request body dto.CreateEnrollmentRequest true "Create Enrollment Request"
// @Success 201 {object} response.Data[dto.CreateEnrollmentResponse] "Enrollment created"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/enrollments [post]
// @Security BearerAuth
func (handler *Handler) CreateEnrollment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEnrollment")
	defer scope.End()

	req := dto.CreateEnrollmentRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	enrollment, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create enrollment")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Enrollment created by user " + user)

	response.WithJSON(writer, http.StatusCreated, enrollment)
}

// GetMyEnrollments lists the enrollments of the authenticated user.
// @Summary Get my enrollments
// @Description Retrieve the enrollments of the authenticated user.
// @Tags Enrollment
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetEnrollmentsResponse] "List of enrollments"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/enrollments/my [get]
// @Security BearerAuth
func (handler *Handler) GetMyEnrollments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyEnrollments")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	enrollments, err := handler.service.GetMy(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get enrollments")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Enrollments retrieved successfully")

	response.WithJSON(w, http.StatusOK, enrollments)
}

// GetEnrollment retrieves a single enrollment.
// @Summary Get an enrollment
// @Description Retrieve an enrollment by its ID. Users can only read their own enrollments.
// @Tags Enrollment
// @Accept json
// @Produce json
// @Param id path string true "Enrollment ID"
// @Success 200 {object} response.Data[dto.EnrollmentResponse] "Enrollment details"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/enrollments/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetEnrollment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEnrollment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	enrollment, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get enrollment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Enrollment retrieved successfully")

	response.WithJSON(w, http.StatusOK, enrollment)
}

// GetEnrollments retrieves enrollments based on query parameters.
// @Summary Get all enrollments
// @Description Retrieve enrollments with optional course, user and status filters and pagination.
// @Tags Enrollment
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param course_id query string false "Filter by course"
// @Param user_id query string false "Filter by user"
// @Param status query string false "Filter by status (created, paid, cancelled)"
// @Success 200 {object} response.Data[dto.GetEnrollmentsResponse] "List of enrollments"
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/enrollments [get]
// @Security BearerAuth
func (handler *Handler) GetEnrollments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEnrollments")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	for _, field := range []string{model.FieldCourseID, model.FieldUserID, model.FieldStatus} {
		if value := r.URL.Query().Get(field); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	enrollments, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get enrollments")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Enrollments retrieved successfully")

	response.WithJSON(w, http.StatusOK, enrollments)
}

// MarkEnrollmentPaid confirms the payment of an enrollment.
// @Summary Mark an enrollment as paid
// @Description Confirm the payment of an enrollment and notify the student.
// @Tags Enrollment
// @Accept json
// @Produce json
// @Param id path string true "Enrollment ID"
// @Success 200 {object} response.Message "Enrollment marked as paid"
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/admin/enrollments/{id}/paid [patch]
// @Security BearerAuth
func (handler *Handler) MarkEnrollmentPaid(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkEnrollmentPaid")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.MarkPaid(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark enrollment as paid")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Enrollment marked as paid by user " + user)

	response.WithMessage(writer, http.StatusOK, "Enrollment marked as paid")
}

// CancelEnrollment cancels an enrollment.
// @Summary Cancel an enrollment
// @Description Cancel an enrollment.
// @Tags Enrollment
// @Accept json
// @Produce json
// @Param id path string true "Enrollment ID"
// @Success 200 {object} response.Message "Enrollment cancelled"
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/admin/enrollments/{id}/cancel [patch]
// @Security BearerAuth
func (handler *Handler) CancelEnrollment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelEnrollment")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.Cancel(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel enrollment")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Enrollment cancelled by user " + user)

	response.WithMessage(writer, http.StatusOK, "Enrollment cancelled")
}
