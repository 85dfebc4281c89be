package model

// OrderUiState is a snapshot of the order in progress.
// Price is always derived from Quantity and Date, never set on its own.
type OrderUiState struct {
	ID            string   `json:"id"`
	Quantity      int      `json:"quantity"`
	Flavor        string   `json:"flavor"`
	Date          string   `json:"date"`
	Price         string   `json:"price"`
	PickupOptions []string `json:"pickup_options"`
}

type SetQuantityDTO struct {
	Quantity int `json:"quantity"`
}

type SetFlavorDTO struct {
	Flavor string `json:"flavor"`
}

type SetDateDTO struct {
	Date string `json:"date"`
}
