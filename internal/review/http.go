package review

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/UjjwalTomar0808/artistly/internal/platform/ctxutil"
	requestutil "github.com/UjjwalTomar0808/artistly/internal/platform/request"
	"github.com/UjjwalTomar0808/artistly/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type statusInput struct {
	Status Status `json:"status"`
}

// RegisterRoutes mounts the manager dashboard under /dashboard.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/stats", handler.stats)

	router.Route("/submissions", func(submissions chi.Router) {
		submissions.Get("/", handler.listSubmissions)
		submissions.Get("/{id}", handler.getSubmission)
		submissions.Patch("/{id}", handler.updateStatus)
		submissions.Post("/{id}/approve", handler.decide(StatusApproved))
		submissions.Post("/{id}/reject", handler.decide(StatusRejected))
	})
}

func (handler *Handler) listSubmissions(writer http.ResponseWriter, request *http.Request) {
	query, err := ParseQuery(request.URL.Query())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.List(request.Context(), ctxutil.GetSessionID(request.Context()), query)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}

func (handler *Handler) getSubmission(writer http.ResponseWriter, request *http.Request) {
	submissionID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	submission, err := handler.service.Get(request.Context(), ctxutil.GetSessionID(request.Context()), submissionID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, submission)
}

func (handler *Handler) updateStatus(writer http.ResponseWriter, request *http.Request) {
	var input statusInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	handler.setStatus(writer, request, input.Status)
}

func (handler *Handler) decide(status Status) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		handler.setStatus(writer, request, status)
	}
}

func (handler *Handler) setStatus(writer http.ResponseWriter, request *http.Request, status Status) {
	submissionID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	submission, err := handler.service.SetStatus(request.Context(), ctxutil.GetSessionID(request.Context()), submissionID, status)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, submission)
}

func (handler *Handler) stats(writer http.ResponseWriter, request *http.Request) {
	stats, err := handler.service.Stats(request.Context(), ctxutil.GetSessionID(request.Context()))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, stats)
}
