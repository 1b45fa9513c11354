package dto

type OrderResponse struct {
	ID             string  `json:"id"`
	OrderNumber    string  `json:"order_number"`
	PickupTime     string  `json:"pickup_time"`
	PickupAddress  string  `json:"pickup_address"`
	DropoffTime    string  `json:"dropoff_time"`
	DropoffAddress string  `json:"dropoff_address"`
	TimeBucket     string  `json:"time_bucket"`
	GroupID        *string `json:"group_id"`
}

type ListOrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
}
