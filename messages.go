package main

const (
	RoutePlannerServiceName = "routeplanner.v1.RoutePlannerService"

	GetRouteProcedure            = "/" + RoutePlannerServiceName + "/GetRoute"
	GetReachableProcedure        = "/" + RoutePlannerServiceName + "/GetReachable"
	GetLargestComponentProcedure = "/" + RoutePlannerServiceName + "/GetLargestComponent"
	GetFurthestNodeProcedure     = "/" + RoutePlannerServiceName + "/GetFurthestNode"
	SetCostModelProcedure        = "/" + RoutePlannerServiceName + "/SetCostModel"
)

type GetRouteRequest struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type RouteBody struct {
	NodeIds     []int   `json:"node_ids"`
	CostModel   string  `json:"cost_model"`
	Cost        int64   `json:"cost"`
	DistanceKm  float64 `json:"distance_km"`
	TravelHours float64 `json:"travel_hours"`
	TravelTime  string  `json:"travel_time"`
}

// 无法找到通路时Route为空
type GetRouteResponse struct {
	Route *RouteBody `json:"route,omitempty"`
}

type GetReachableRequest struct {
	Start int `json:"start"`
}

type GetReachableResponse struct {
	Count   int   `json:"count"`
	NodeIds []int `json:"node_ids"`
}

type GetLargestComponentRequest struct{}

type GetLargestComponentResponse struct {
	Size    int   `json:"size"`
	NodeIds []int `json:"node_ids"`
}

type GetFurthestNodeRequest struct {
	Start int `json:"start"`
}

type GetFurthestNodeResponse struct {
	NodeId int        `json:"node_id"`
	Route  *RouteBody `json:"route"`
}

type SetCostModelRequest struct {
	CostModel       string  `json:"cost_model"`
	MaxVehicleSpeed float64 `json:"max_vehicle_speed"`
}

type SetCostModelResponse struct {
	CostModel string `json:"cost_model"`
}
