package catalog

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/UjjwalTomar0808/artistly/internal/platform/request"
	"github.com/UjjwalTomar0808/artistly/internal/platform/respond"
	"github.com/UjjwalTomar0808/artistly/pkg/convert"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the artist listing under /artists.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listArtists)
	router.Get("/filters", handler.filterOptions)
	router.Get("/featured", handler.featuredArtists)
	router.Get("/{id}", handler.getArtist)
	router.Post("/{id}/quotes", handler.requestQuote)
}

// RegisterCategoryRoutes mounts the category cards under /categories.
func (handler *Handler) RegisterCategoryRoutes(router chi.Router) {
	router.Get("/", handler.listCategories)
}

func (handler *Handler) listArtists(writer http.ResponseWriter, request *http.Request) {
	criteria, view, err := handler.service.ParseCriteria(request.Context(), request.URL.Query())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	listing, err := handler.service.List(request.Context(), criteria, view)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if listing.Empty() || listing.HasActiveFilters {
		listing.ClearFilters = request.URL.Path + "?" + url.Values{FieldView: {string(view)}}.Encode()
	}
	respond.OK(writer, listing)
}

func (handler *Handler) filterOptions(writer http.ResponseWriter, request *http.Request) {
	options, err := handler.service.Options(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, options)
}

func (handler *Handler) featuredArtists(writer http.ResponseWriter, request *http.Request) {
	limit := convert.ToIntD(request.URL.Query().Get("limit"), DefaultFeaturedLimit)

	artists, err := handler.service.Featured(request.Context(), limit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, artists)
}

func (handler *Handler) getArtist(writer http.ResponseWriter, request *http.Request) {
	artistID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	artist, err := handler.service.GetArtist(request.Context(), artistID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, artist)
}

func (handler *Handler) requestQuote(writer http.ResponseWriter, request *http.Request) {
	artistID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input QuoteRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	ack, err := handler.service.RequestQuote(request.Context(), artistID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Accepted(writer, ack)
}

func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	cards, err := handler.service.CategoryCards(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, cards)
}
