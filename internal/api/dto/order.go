package dto

type OrderResponse struct {
	OrderID      int64    `json:"order_id"`
	SaleNumber   string   `json:"sale_number"`
	ClientName   string   `json:"client_name"`
	DeliveryDate *string  `json:"delivery_date"`
	Address      string   `json:"address"`
	AddressLat   *float64 `json:"address_lat"`
	AddressLng   *float64 `json:"address_lng"`
}

type ListOrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
}
