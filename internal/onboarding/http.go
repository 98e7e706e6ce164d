package onboarding

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/UjjwalTomar0808/artistly/internal/platform/request"
	"github.com/UjjwalTomar0808/artistly/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the artist onboarding flow under /onboarding.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/options", handler.options)
	router.Get("/steps", handler.steps)
	router.Post("/steps/{step}/validate", handler.validateStep)
	router.Post("/applications", handler.submitApplication)
}

func (handler *Handler) options(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.Options())
}

func (handler *Handler) steps(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.Steps())
}

func (handler *Handler) validateStep(writer http.ResponseWriter, request *http.Request) {
	number, err := requestutil.IntParam(request, FieldStep)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Application
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.ValidateStep(number, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}

func (handler *Handler) submitApplication(writer http.ResponseWriter, request *http.Request) {
	var input Application
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	ack, err := handler.service.Submit(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Accepted(writer, ack)
}
