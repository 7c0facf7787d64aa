package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	"github.com/lintang-b-s/greenroute/pkg/engine"
	"github.com/lintang-b-s/greenroute/pkg/geo"
	helper "github.com/lintang-b-s/greenroute/pkg/http/router/routerhelper"
	"github.com/lintang-b-s/greenroute/pkg/http/usecases"
	"go.uber.org/zap"
)

type routingAPI struct {
	routingService RoutingService
	log            *zap.Logger
	validate       *validator.Validate
	trans          ut.Translator
}

func New(routingService RoutingService, log *zap.Logger) *routingAPI {
	validate := validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	return &routingAPI{
		routingService: routingService,
		log:            log,
		validate:       validate,
		trans:          trans,
	}
}

func (api *routingAPI) Routes(group *helper.RouteGroup) {
	group.GET("/computeRoutes", api.computeRoutes)
	group.POST("/ecoRoute", api.ecoRoute)
	group.POST("/computeRoutesBatch", api.computeRoutesBatch)
	group.GET("/graph", api.graphInfo)
}

func (req routeRequest) toQuery() (usecases.RouteQuery, error) {
	mode, err := engine.ParseTransportMode(req.Mode)
	if err != nil {
		return usecases.RouteQuery{}, err
	}
	return usecases.NewRouteQuery(*req.FromLat, *req.FromLng, *req.ToLat, *req.ToLng, mode), nil
}

func parseFloatParam(r *http.Request, name string) (*float64, error) {
	val, err := strconv.ParseFloat(r.URL.Query().Get(name), 64)
	if err != nil {
		return nil, fmt.Errorf("%s is required and must be a valid float", name)
	}
	return &val, nil
}

// computeRoutes. GET /api/computeRoutes?from_lat=&from_lng=&to_lat=&to_lng=&mode=[&format=geojson]
func (api *routingAPI) computeRoutes(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request routeRequest
		err     error
	)

	params := []struct {
		name string
		dst  **float64
	}{
		{"from_lat", &request.FromLat},
		{"from_lng", &request.FromLng},
		{"to_lat", &request.ToLat},
		{"to_lng", &request.ToLng},
	}
	for _, param := range params {
		*param.dst, err = parseFloatParam(r, param.name)
		if err != nil {
			api.BadRequestResponse(w, r, err)
			return
		}
	}
	request.Mode = r.URL.Query().Get("mode")

	if !api.validateRequest(w, r, request) {
		return
	}

	query, err := request.toQuery()
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	plan, err := api.routingService.PlanRoutes(r.Context(), query)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if r.URL.Query().Get("format") == "geojson" {
		headers.Set("Content-Type", "application/geo+json")
		if err := api.writeJSON(w, http.StatusOK, geo.RoutePlanFeatureCollection(plan), headers); err != nil {
			api.ServerErrorResponse(w, r, err)
		}
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewRoutePlanResponse(plan)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// ecoRoute. POST /api/ecoRoute, body {from_lat, from_lng, to_lat, to_lng, mode}. responds with {eco_route, safe_route}.
func (api *routingAPI) ecoRoute(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request routeRequest
	if err := api.readJSON(w, r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if !api.validateRequest(w, r, request) {
		return
	}

	query, err := request.toQuery()
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	plan, err := api.routingService.PlanRoutes(r.Context(), query)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, NewRoutePlanResponse(plan), nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *routingAPI) computeRoutesBatch(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request batchRouteRequest
	if err := api.readJSON(w, r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if !api.validateRequest(w, r, request) {
		return
	}

	queries := make([]usecases.RouteQuery, len(request.Queries))
	for i, req := range request.Queries {
		q, err := req.toQuery()
		if err != nil {
			api.BadRequestResponse(w, r, fmt.Errorf("query %d: %w", i, err))
			return
		}
		queries[i] = q
	}

	results, err := api.routingService.PlanRoutesBatch(r.Context(), queries)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewBatchResponse(results)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *routingAPI) graphInfo(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	info, err := api.routingService.GraphInfo(r.Context())
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewGraphInfoResponse(info)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
